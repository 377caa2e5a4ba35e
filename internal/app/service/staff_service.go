package service

import (
	"context"

	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"
	"green_valley_api/internal/domain/repository"

	"github.com/google/uuid"
)

type StaffService struct {
	staffRepo repository.StaffRepository
}

func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

type CreateStaffRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type UpdateStaffRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (s *StaffService) CreateStaff(ctx context.Context, req CreateStaffRequest) (*model.Staff, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Role == "" || req.Department == "" {
		return nil, common.Errorf("name, email, phone, role and department are required: %w", common.ErrValidation)
	}

	staff := &model.Staff{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		Department: req.Department,
		Status:     model.StatusActive,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) ListStaff(ctx context.Context) ([]model.Staff, error) {
	return s.staffRepo.List(ctx)
}

func (s *StaffService) UpdateStaff(ctx context.Context, id string, req UpdateStaffRequest) (*model.Staff, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if req.Department != nil {
		staff.Department = *req.Department
	}
	if req.Status != nil {
		if *req.Status != model.StatusActive && *req.Status != model.StatusInactive {
			return nil, common.Errorf("status must be %q or %q: %w", model.StatusActive, model.StatusInactive, common.ErrValidation)
		}
		staff.Status = *req.Status
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, id string) error {
	return s.staffRepo.Delete(ctx, id)
}
