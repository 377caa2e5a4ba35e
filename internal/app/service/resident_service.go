package service

import (
	"context"

	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"
	"green_valley_api/internal/domain/repository"
)

// ResidentService is the admin view over the same users table the auth
// flow registers into. Setting a resident inactive here is what makes
// their next login fail with a forbidden error.
type ResidentService struct {
	userRepo repository.UserRepository
}

func NewResidentService(userRepo repository.UserRepository) *ResidentService {
	return &ResidentService{userRepo: userRepo}
}

type UpdateResidentStatusRequest struct {
	Status string `json:"status"`
}

func (s *ResidentService) ListResidents(ctx context.Context, page, pageSize int) ([]model.User, int, error) {
	return s.userRepo.List(ctx, page, pageSize)
}

func (s *ResidentService) UpdateResidentStatus(ctx context.Context, residentID string, req UpdateResidentStatusRequest) (*model.User, error) {
	if req.Status != model.StatusActive && req.Status != model.StatusInactive {
		return nil, common.Errorf("status must be %q or %q: %w", model.StatusActive, model.StatusInactive, common.ErrValidation)
	}

	user, err := s.userRepo.FindByID(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleUser {
		// Admin accounts are provisioned and managed out of band.
		return nil, common.Errorf("only resident accounts can be updated here: %w", common.ErrForbidden)
	}

	if err := s.userRepo.UpdateStatus(ctx, residentID, req.Status); err != nil {
		return nil, err
	}
	user.Status = req.Status
	return user, nil
}
