package service

import (
	"context"

	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"
	"green_valley_api/internal/domain/repository"

	"github.com/google/uuid"
)

type ContactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

type CreateContactRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Phone string `json:"phone"`
}

type UpdateContactRequest struct {
	Name      *string `json:"name,omitempty"`
	Type      *string `json:"type,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	IsEnabled *bool   `json:"is_enabled,omitempty"`
}

func (s *ContactService) CreateContact(ctx context.Context, req CreateContactRequest) (*model.EmergencyContact, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, common.Errorf("name and phone are required: %w", common.ErrValidation)
	}
	if !model.ValidContactType(req.Type) {
		return nil, common.Errorf("unknown contact type %q: %w", req.Type, common.ErrValidation)
	}

	contact := &model.EmergencyContact{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Type:      req.Type,
		Phone:     req.Phone,
		IsEnabled: true,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context, enabledOnly bool) ([]model.EmergencyContact, error) {
	return s.contactRepo.List(ctx, enabledOnly)
}

func (s *ContactService) UpdateContact(ctx context.Context, id string, req UpdateContactRequest) (*model.EmergencyContact, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Type != nil {
		if !model.ValidContactType(*req.Type) {
			return nil, common.Errorf("unknown contact type %q: %w", *req.Type, common.ErrValidation)
		}
		contact.Type = *req.Type
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.IsEnabled != nil {
		contact.IsEnabled = *req.IsEnabled
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	return s.contactRepo.Delete(ctx, id)
}
