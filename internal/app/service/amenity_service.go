package service

import (
	"context"

	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"
	"green_valley_api/internal/domain/repository"

	"github.com/google/uuid"
)

type AmenityService struct {
	amenityRepo repository.AmenityRepository
}

func NewAmenityService(amenityRepo repository.AmenityRepository) *AmenityService {
	return &AmenityService{amenityRepo: amenityRepo}
}

type CreateAmenityRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	TimeSlots         []string `json:"time_slots"`
	MaxBookingsPerDay int      `json:"max_bookings_per_day"`
	Rules             string   `json:"rules"`
}

type UpdateAmenityRequest struct {
	Name              *string   `json:"name,omitempty"`
	Description       *string   `json:"description,omitempty"`
	IsEnabled         *bool     `json:"is_enabled,omitempty"`
	TimeSlots         *[]string `json:"time_slots,omitempty"`
	MaxBookingsPerDay *int      `json:"max_bookings_per_day,omitempty"`
	Rules             *string   `json:"rules,omitempty"`
}

func (s *AmenityService) CreateAmenity(ctx context.Context, req CreateAmenityRequest) (*model.Amenity, error) {
	if req.Name == "" {
		return nil, common.Errorf("amenity name is required: %w", common.ErrValidation)
	}
	if req.MaxBookingsPerDay < 0 {
		return nil, common.Errorf("max bookings per day cannot be negative: %w", common.ErrValidation)
	}
	if req.TimeSlots == nil {
		req.TimeSlots = []string{}
	}

	amenity := &model.Amenity{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Description:       req.Description,
		IsEnabled:         true,
		TimeSlots:         req.TimeSlots,
		MaxBookingsPerDay: req.MaxBookingsPerDay,
		Rules:             req.Rules,
	}
	if err := s.amenityRepo.Create(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

func (s *AmenityService) ListAmenities(ctx context.Context, enabledOnly bool) ([]model.Amenity, error) {
	return s.amenityRepo.List(ctx, enabledOnly)
}

func (s *AmenityService) UpdateAmenity(ctx context.Context, id string, req UpdateAmenityRequest) (*model.Amenity, error) {
	amenity, err := s.amenityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, common.Errorf("amenity name cannot be empty: %w", common.ErrValidation)
		}
		amenity.Name = *req.Name
	}
	if req.Description != nil {
		amenity.Description = *req.Description
	}
	if req.IsEnabled != nil {
		amenity.IsEnabled = *req.IsEnabled
	}
	if req.TimeSlots != nil {
		amenity.TimeSlots = *req.TimeSlots
	}
	if req.MaxBookingsPerDay != nil {
		if *req.MaxBookingsPerDay < 0 {
			return nil, common.Errorf("max bookings per day cannot be negative: %w", common.ErrValidation)
		}
		amenity.MaxBookingsPerDay = *req.MaxBookingsPerDay
	}
	if req.Rules != nil {
		amenity.Rules = *req.Rules
	}

	if err := s.amenityRepo.Update(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

func (s *AmenityService) DeleteAmenity(ctx context.Context, id string) error {
	return s.amenityRepo.Delete(ctx, id)
}
