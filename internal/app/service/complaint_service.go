package service

import (
	"context"

	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"
	"green_valley_api/internal/domain/repository"

	"github.com/google/uuid"
)

type ComplaintService struct {
	complaintRepo repository.ComplaintRepository
	userRepo      repository.UserRepository
}

func NewComplaintService(complaintRepo repository.ComplaintRepository, userRepo repository.UserRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo, userRepo: userRepo}
}

type CreateComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

type UpdateComplaintRequest struct {
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
	AdminRemark *string `json:"admin_remark,omitempty"`
}

func (s *ComplaintService) CreateComplaint(ctx context.Context, residentID string, req CreateComplaintRequest) (*model.Complaint, error) {
	if req.Title == "" || req.Description == "" || req.Category == "" {
		return nil, common.Errorf("title, description and category are required: %w", common.ErrValidation)
	}
	if req.Priority == "" {
		req.Priority = model.ComplaintPriorityMedium
	}
	if !model.ValidComplaintPriority(req.Priority) {
		return nil, common.Errorf("unknown complaint priority %q: %w", req.Priority, common.ErrValidation)
	}

	resident, err := s.userRepo.FindByID(ctx, residentID)
	if err != nil {
		return nil, common.Errorf("failed to load resident account: %w", err)
	}

	complaint := &model.Complaint{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Status:       model.ComplaintStatusPending,
		Priority:     req.Priority,
		ResidentID:   residentID,
		ResidentName: resident.Name,
		FlatNumber:   resident.FlatNumber,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// ListComplaints scopes the result to the caller: admins see everything,
// residents only their own filings.
func (s *ComplaintService) ListComplaints(ctx context.Context, userID, role, status string, page, pageSize int) ([]model.Complaint, int, error) {
	if role == model.RoleAdmin {
		if status != "" && !model.ValidComplaintStatus(status) {
			return nil, 0, common.Errorf("unknown complaint status %q: %w", status, common.ErrValidation)
		}
		return s.complaintRepo.ListAll(ctx, status, page, pageSize)
	}

	complaints, err := s.complaintRepo.ListByResident(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return complaints, len(complaints), nil
}

func (s *ComplaintService) GetComplaint(ctx context.Context, userID, role, complaintID string) (*model.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && complaint.ResidentID != userID {
		// Residents cannot read each other's complaints.
		return nil, common.ErrNotFound
	}
	return complaint, nil
}

func (s *ComplaintService) UpdateComplaint(ctx context.Context, complaintID string, req UpdateComplaintRequest) (*model.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !model.ValidComplaintStatus(*req.Status) {
			return nil, common.Errorf("unknown complaint status %q: %w", *req.Status, common.ErrValidation)
		}
		complaint.Status = *req.Status
	}
	if req.Priority != nil {
		if !model.ValidComplaintPriority(*req.Priority) {
			return nil, common.Errorf("unknown complaint priority %q: %w", *req.Priority, common.ErrValidation)
		}
		complaint.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		complaint.AssignedTo = req.AssignedTo
	}
	if req.AdminRemark != nil {
		complaint.AdminRemark = req.AdminRemark
	}

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}
