package service

import (
	"context"
	"errors"
	"time"

	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"
	"green_valley_api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type NoticeService struct {
	noticeRepo repository.NoticeRepository
}

func NewNoticeService(noticeRepo repository.NoticeRepository) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo}
}

type CreateNoticeRequest struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  string     `json:"category"`
	Priority  string     `json:"priority"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type UpdateNoticeRequest struct {
	Title     *string    `json:"title,omitempty"`
	Content   *string    `json:"content,omitempty"`
	Category  *string    `json:"category,omitempty"`
	Priority  *string    `json:"priority,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func validNoticePriority(p string) bool {
	switch p {
	case model.NoticePriorityNormal, model.NoticePriorityImportant, model.NoticePriorityUrgent:
		return true
	}
	return false
}

func (s *NoticeService) CreateNotice(ctx context.Context, req CreateNoticeRequest) (*model.Notice, error) {
	if req.Title == "" || req.Content == "" {
		return nil, common.Errorf("title and content are required: %w", common.ErrValidation)
	}
	if req.Priority == "" {
		req.Priority = model.NoticePriorityNormal
	}
	if !validNoticePriority(req.Priority) {
		return nil, common.Errorf("unknown notice priority %q: %w", req.Priority, common.ErrValidation)
	}
	if req.Category == "" {
		req.Category = "general"
	}

	notice := &model.Notice{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Content:     req.Content,
		Category:    req.Category,
		Priority:    req.Priority,
		IsActive:    true,
		PublishedAt: time.Now(),
		ExpiresAt:   req.ExpiresAt,
	}

	err := s.noticeRepo.Create(ctx, notice)
	if errors.Is(err, common.ErrConflict) {
		// Slug collision with an earlier notice of the same title; suffix
		// and try once more.
		notice.Slug = notice.Slug + "-" + notice.ID[:8]
		err = s.noticeRepo.Create(ctx, notice)
	}
	if err != nil {
		return nil, err
	}
	return notice, nil
}

// GetNotice returns a notice by slug for the public board; inactive or
// expired notices read as not found.
func (s *NoticeService) GetNotice(ctx context.Context, noticeSlug string) (*model.Notice, error) {
	notice, err := s.noticeRepo.FindBySlug(ctx, noticeSlug)
	if err != nil {
		return nil, err
	}
	if !notice.IsActive {
		return nil, common.ErrNotFound
	}
	if notice.ExpiresAt != nil && notice.ExpiresAt.Before(time.Now()) {
		return nil, common.ErrNotFound
	}
	return notice, nil
}

func (s *NoticeService) ListActiveNotices(ctx context.Context) ([]model.Notice, error) {
	return s.noticeRepo.ListActive(ctx)
}

func (s *NoticeService) ListAllNotices(ctx context.Context, page, pageSize int) ([]model.Notice, int, error) {
	return s.noticeRepo.ListAll(ctx, page, pageSize)
}

func (s *NoticeService) UpdateNotice(ctx context.Context, id string, req UpdateNoticeRequest) (*model.Notice, error) {
	notice, err := s.noticeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, common.Errorf("title cannot be empty: %w", common.ErrValidation)
		}
		notice.Title = *req.Title
	}
	if req.Content != nil {
		notice.Content = *req.Content
	}
	if req.Category != nil {
		notice.Category = *req.Category
	}
	if req.Priority != nil {
		if !validNoticePriority(*req.Priority) {
			return nil, common.Errorf("unknown notice priority %q: %w", *req.Priority, common.ErrValidation)
		}
		notice.Priority = *req.Priority
	}
	if req.IsActive != nil {
		notice.IsActive = *req.IsActive
	}
	if req.ExpiresAt != nil {
		notice.ExpiresAt = req.ExpiresAt
	}

	if err := s.noticeRepo.Update(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *NoticeService) DeleteNotice(ctx context.Context, id string) error {
	return s.noticeRepo.Delete(ctx, id)
}
