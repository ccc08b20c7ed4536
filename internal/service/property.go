package service

import (
	"context"
	"fmt"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/service/ports"
)

const (
	defaultBedrooms  = 1
	defaultBathrooms = 1
	defaultMaxGuests = 2
)

type PropertyService struct {
	repo ports.PropertyRepo
}

func NewPropertyService(repo ports.PropertyRepo) *PropertyService {
	return &PropertyService{repo: repo}
}

func (s *PropertyService) Create(ctx context.Context, ownerID int64, input domain.CreatePropertyInput) (*domain.Property, error) {
	if input.Title == "" || input.Location == "" {
		return nil, fmt.Errorf("%w: title and location are required", domain.ErrValidation)
	}
	if input.PricePerNight <= 0 {
		return nil, fmt.Errorf("%w: price_per_night must be greater than 0", domain.ErrValidation)
	}

	property := &domain.Property{
		OwnerID:       ownerID,
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		PricePerNight: input.PricePerNight,
		Bedrooms:      defaultBedrooms,
		Bathrooms:     defaultBathrooms,
		MaxGuests:     defaultMaxGuests,
		Amenities:     input.Amenities,
		ImageURL:      input.ImageURL,
		IsAvailable:   true,
	}
	if input.Bedrooms != nil {
		property.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = *input.Bathrooms
	}
	if input.MaxGuests != nil {
		property.MaxGuests = *input.MaxGuests
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	return property, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id int64) (*domain.PropertyInfo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PropertyService) ListAvailable(ctx context.Context) ([]*domain.PropertyInfo, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *PropertyService) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Property, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *PropertyService) Update(ctx context.Context, caller domain.Identity, id int64, input domain.UpdatePropertyInput) error {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get property: %w", err)
	}

	if property.OwnerID != caller.UserID {
		return domain.ErrForbidden
	}

	if input.PricePerNight != nil && *input.PricePerNight <= 0 {
		return fmt.Errorf("%w: price_per_night must be greater than 0", domain.ErrValidation)
	}

	if err = s.repo.Update(ctx, id, input); err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	return nil
}

func (s *PropertyService) Delete(ctx context.Context, caller domain.Identity, id int64) error {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get property: %w", err)
	}

	if property.OwnerID != caller.UserID {
		return domain.ErrForbidden
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	return nil
}
