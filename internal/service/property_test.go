package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/service/ports/mocks"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestPropertyService_Create_AppliesDefaults(t *testing.T) {
	repo := mocks.NewMockPropertyRepo(t)
	svc := NewPropertyService(repo)

	var got *domain.Property
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, p *domain.Property) {
		got = p
		p.ID = 1
	}).Return(nil)

	property, err := svc.Create(context.Background(), 2, domain.CreatePropertyInput{
		Title:         "Seaside Flat",
		Location:      "Brighton",
		PricePerNight: 150,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), property.ID)
	assert.Equal(t, int64(2), got.OwnerID)
	assert.Equal(t, 1, got.Bedrooms)
	assert.Equal(t, 1, got.Bathrooms)
	assert.Equal(t, 2, got.MaxGuests)
	assert.True(t, got.IsAvailable)
}

func TestPropertyService_Create_ExplicitCapacity(t *testing.T) {
	repo := mocks.NewMockPropertyRepo(t)
	svc := NewPropertyService(repo)

	var got *domain.Property
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, p *domain.Property) {
		got = p
	}).Return(nil)

	_, err := svc.Create(context.Background(), 2, domain.CreatePropertyInput{
		Title:         "Villa",
		Location:      "Nice",
		PricePerNight: 300,
		Bedrooms:      intPtr(4),
		Bathrooms:     intPtr(2),
		MaxGuests:     intPtr(8),
	})

	require.NoError(t, err)
	assert.Equal(t, 4, got.Bedrooms)
	assert.Equal(t, 2, got.Bathrooms)
	assert.Equal(t, 8, got.MaxGuests)
}

func TestPropertyService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockPropertyRepo(t)
	svc := NewPropertyService(repo)

	_, err := svc.Create(context.Background(), 2, domain.CreatePropertyInput{
		Location:      "Brighton",
		PricePerNight: 150,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), 2, domain.CreatePropertyInput{
		Title:    "Seaside Flat",
		Location: "Brighton",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), 2, domain.CreatePropertyInput{
		Title:         "Seaside Flat",
		Location:      "Brighton",
		PricePerNight: -10,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPropertyService_Update_Success(t *testing.T) {
	repo := mocks.NewMockPropertyRepo(t)
	svc := NewPropertyService(repo)

	property := &domain.PropertyInfo{Property: domain.Property{ID: 1, OwnerID: 2}}
	input := domain.UpdatePropertyInput{PricePerNight: floatPtr(200)}

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(property, nil)
	repo.EXPECT().Update(mock.Anything, int64(1), input).Return(nil)

	err := svc.Update(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleOwner}, 1, input)
	require.NoError(t, err)
}

func TestPropertyService_Update_NotOwner(t *testing.T) {
	repo := mocks.NewMockPropertyRepo(t)
	svc := NewPropertyService(repo)

	property := &domain.PropertyInfo{Property: domain.Property{ID: 1, OwnerID: 2}}
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(property, nil)

	err := svc.Update(context.Background(), domain.Identity{UserID: 5, Role: domain.RoleOwner}, 1, domain.UpdatePropertyInput{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPropertyService_Update_InvalidPrice(t *testing.T) {
	repo := mocks.NewMockPropertyRepo(t)
	svc := NewPropertyService(repo)

	property := &domain.PropertyInfo{Property: domain.Property{ID: 1, OwnerID: 2}}
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(property, nil)

	err := svc.Update(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleOwner}, 1, domain.UpdatePropertyInput{
		PricePerNight: floatPtr(0),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPropertyService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockPropertyRepo(t)
	svc := NewPropertyService(repo)

	property := &domain.PropertyInfo{Property: domain.Property{ID: 1, OwnerID: 2}}
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(property, nil)
	repo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleOwner}, 1)
	require.NoError(t, err)
}

func TestPropertyService_Delete_NotOwner(t *testing.T) {
	repo := mocks.NewMockPropertyRepo(t)
	svc := NewPropertyService(repo)

	property := &domain.PropertyInfo{Property: domain.Property{ID: 1, OwnerID: 2}}
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(property, nil)

	err := svc.Delete(context.Background(), domain.Identity{UserID: 5, Role: domain.RoleOwner}, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPropertyService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockPropertyRepo(t)
	svc := NewPropertyService(repo)

	repo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrPropertyNotFound)

	err := svc.Delete(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleOwner}, 99)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}
