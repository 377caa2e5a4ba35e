package service

import (
	"context"

	"green_valley_api/internal/domain/model"
	"green_valley_api/internal/domain/repository"
)

// DashboardService aggregates the counters shown on the admin landing page.
type DashboardService struct {
	userRepo      repository.UserRepository
	staffRepo     repository.StaffRepository
	complaintRepo repository.ComplaintRepository
	noticeRepo    repository.NoticeRepository
}

func NewDashboardService(
	userRepo repository.UserRepository,
	staffRepo repository.StaffRepository,
	complaintRepo repository.ComplaintRepository,
	noticeRepo repository.NoticeRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:      userRepo,
		staffRepo:     staffRepo,
		complaintRepo: complaintRepo,
		noticeRepo:    noticeRepo,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}
	var err error

	if stats.TotalComplaints, err = s.complaintRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.PendingComplaints, err = s.complaintRepo.CountByStatus(ctx, model.ComplaintStatusPending); err != nil {
		return nil, err
	}
	if stats.ResolvedComplaints, err = s.complaintRepo.CountByStatus(ctx, model.ComplaintStatusResolved); err != nil {
		return nil, err
	}
	if stats.TotalResidents, err = s.userRepo.CountByRole(ctx, model.RoleUser); err != nil {
		return nil, err
	}
	if stats.TotalStaff, err = s.staffRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveNotices, err = s.noticeRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
