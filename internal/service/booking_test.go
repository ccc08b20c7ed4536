package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockPropertyRepo, *mocks.MockUserRepo, *mocks.MockBookingNotifier) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	propertyRepo := mocks.NewMockPropertyRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(bookingRepo, propertyRepo, userRepo, notifier, newTestLogger(t))
	svc.now = func() time.Time { return date(2026, 1, 10) }

	return svc, bookingRepo, propertyRepo, userRepo, notifier
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, bookingRepo, propertyRepo, userRepo, notifier := newBookingService(t)

	property := &domain.PropertyInfo{Property: domain.Property{
		ID:            1,
		OwnerID:       2,
		Title:         "Seaside Flat",
		PricePerNight: 150,
		IsAvailable:   true,
	}}
	owner := &domain.User{ID: 2, FullName: "Bob Owner"}

	propertyRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(property, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, b *domain.Booking) {
		b.ID = 10
		b.TotalPrice = 450
		b.Status = domain.BookingStatusPending
	}).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(owner, nil)
	notifier.EXPECT().NotifyBookingRequested(mock.Anything, owner, mock.Anything, "Seaside Flat").Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PropertyID: 1,
		CustomerID: 3,
		StartDate:  date(2026, 1, 12),
		EndDate:    date(2026, 1, 15),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, 450.0, booking.TotalPrice)
	assert.Equal(t, 3, domain.Nights(booking.StartDate, booking.EndDate))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_TruncatesDates(t *testing.T) {
	svc, bookingRepo, propertyRepo, userRepo, notifier := newBookingService(t)

	property := &domain.PropertyInfo{Property: domain.Property{ID: 1, OwnerID: 2, IsAvailable: true}}
	propertyRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(property, nil)

	var got *domain.Booking
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, b *domain.Booking) {
		got = b
	}).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	notifier.EXPECT().NotifyBookingRequested(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PropertyID: 1,
		CustomerID: 3,
		StartDate:  time.Date(2026, 1, 12, 18, 30, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, date(2026, 1, 12), got.StartDate)
	assert.Equal(t, date(2026, 1, 15), got.EndDate)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_StartInPast(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PropertyID: 1,
		CustomerID: 3,
		StartDate:  date(2026, 1, 9),
		EndDate:    date(2026, 1, 15),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_EndNotAfterStart(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PropertyID: 1,
		CustomerID: 3,
		StartDate:  date(2026, 1, 15),
		EndDate:    date(2026, 1, 15),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_PropertyNotFound(t *testing.T) {
	svc, _, propertyRepo, _, _ := newBookingService(t)

	propertyRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrPropertyNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PropertyID: 99,
		CustomerID: 3,
		StartDate:  date(2026, 1, 12),
		EndDate:    date(2026, 1, 15),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestBookingService_Create_PropertyUnavailable(t *testing.T) {
	svc, _, propertyRepo, _, _ := newBookingService(t)

	property := &domain.PropertyInfo{Property: domain.Property{ID: 1, IsAvailable: false}}
	propertyRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(property, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PropertyID: 1,
		CustomerID: 3,
		StartDate:  date(2026, 1, 12),
		EndDate:    date(2026, 1, 15),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPropertyUnavailable)
}

func TestBookingService_Create_DatesUnavailable(t *testing.T) {
	svc, bookingRepo, propertyRepo, _, _ := newBookingService(t)

	property := &domain.PropertyInfo{Property: domain.Property{ID: 1, IsAvailable: true}}
	propertyRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(property, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDatesUnavailable)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PropertyID: 1,
		CustomerID: 3,
		StartDate:  date(2026, 1, 12),
		EndDate:    date(2026, 1, 15),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)
}

func TestBookingService_GetByID_Authz(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	info := &domain.BookingInfo{
		Booking: domain.Booking{ID: 10, CustomerID: 3},
		OwnerID: 2,
	}
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(info, nil)

	got, err := svc.GetByID(context.Background(), domain.Identity{UserID: 3, Role: domain.RoleCustomer}, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
}

func TestBookingService_GetByID_Forbidden(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	info := &domain.BookingInfo{
		Booking: domain.Booking{ID: 10, CustomerID: 3},
		OwnerID: 2,
	}
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(info, nil)

	_, err := svc.GetByID(context.Background(), domain.Identity{UserID: 7, Role: domain.RoleCustomer}, 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_ListForUser(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	customerBookings := []*domain.BookingInfo{{Booking: domain.Booking{ID: 1}}}
	ownerBookings := []*domain.BookingInfo{{Booking: domain.Booking{ID: 2}}, {Booking: domain.Booking{ID: 3}}}

	bookingRepo.EXPECT().ListByCustomer(mock.Anything, int64(3)).Return(customerBookings, nil)
	bookingRepo.EXPECT().ListByOwner(mock.Anything, int64(2)).Return(ownerBookings, nil)

	got, err := svc.ListForUser(context.Background(), domain.Identity{UserID: 3, Role: domain.RoleCustomer})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.ListForUser(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleOwner})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingService_Approve_Success(t *testing.T) {
	svc, bookingRepo, _, userRepo, notifier := newBookingService(t)

	info := &domain.BookingInfo{
		Booking:       domain.Booking{ID: 10, CustomerID: 3, Status: domain.BookingStatusPending},
		PropertyTitle: "Seaside Flat",
		OwnerID:       2,
	}
	customer := &domain.User{ID: 3, FullName: "Carol Customer"}

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(info, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, int64(10), domain.BookingStatusApproved).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(customer, nil)
	notifier.EXPECT().NotifyBookingApproved(mock.Anything, customer, mock.Anything, "Seaside Flat").Return()

	err := svc.Approve(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleOwner}, 10)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reject_Success(t *testing.T) {
	svc, bookingRepo, _, userRepo, notifier := newBookingService(t)

	info := &domain.BookingInfo{
		Booking:       domain.Booking{ID: 10, CustomerID: 3, Status: domain.BookingStatusPending},
		PropertyTitle: "Seaside Flat",
		OwnerID:       2,
	}
	customer := &domain.User{ID: 3}

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(info, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, int64(10), domain.BookingStatusRejected).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(customer, nil)
	notifier.EXPECT().NotifyBookingRejected(mock.Anything, customer, mock.Anything, "Seaside Flat").Return()

	err := svc.Reject(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleOwner}, 10)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Approve_NotOwner(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	info := &domain.BookingInfo{
		Booking: domain.Booking{ID: 10, CustomerID: 3, Status: domain.BookingStatusPending},
		OwnerID: 2,
	}
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(info, nil)

	err := svc.Approve(context.Background(), domain.Identity{UserID: 5, Role: domain.RoleOwner}, 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Approve_NotPending(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	info := &domain.BookingInfo{
		Booking: domain.Booking{ID: 10, CustomerID: 3, Status: domain.BookingStatusApproved},
		OwnerID: 2,
	}
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(info, nil)

	err := svc.Approve(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleOwner}, 10)
	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_RejectExpired(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	expired := []*domain.Booking{{ID: 1}, {ID: 2}}
	bookingRepo.EXPECT().RejectExpired(mock.Anything).Return(expired, nil)

	got, err := svc.RejectExpired(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingService_RejectExpired_Error(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().RejectExpired(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.RejectExpired(context.Background())
	assert.Error(t, err)
}
