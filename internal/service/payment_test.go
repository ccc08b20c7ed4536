package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/service/ports/mocks"
)

func newPaymentService(t *testing.T) (*PaymentService, *mocks.MockPaymentRepo, *mocks.MockBookingRepo, *mocks.MockUserRepo, *mocks.MockBookingNotifier) {
	t.Helper()
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, userRepo, notifier, newTestLogger(t))

	return svc, paymentRepo, bookingRepo, userRepo, notifier
}

func approvedBooking() *domain.BookingInfo {
	return &domain.BookingInfo{
		Booking: domain.Booking{
			ID:         10,
			CustomerID: 3,
			Status:     domain.BookingStatusApproved,
			TotalPrice: 450,
		},
		PropertyTitle: "Seaside Flat",
		OwnerID:       2,
	}
}

func TestPaymentService_Record_Success(t *testing.T) {
	svc, paymentRepo, bookingRepo, userRepo, notifier := newPaymentService(t)

	owner := &domain.User{ID: 2, FullName: "Bob Owner"}

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(approvedBooking(), nil)
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, p *domain.Payment) {
		p.ID = 5
		p.Amount = 450
		p.Status = "Completed"
	}).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(owner, nil)
	notifier.EXPECT().NotifyPaymentReceived(mock.Anything, owner, mock.Anything, "Seaside Flat").Return()

	payment, err := svc.Record(context.Background(), domain.RecordPaymentInput{
		BookingID:  10,
		CustomerID: 3,
		Method:     "PayPal",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), payment.ID)
	assert.Equal(t, 450.0, payment.Amount)
	assert.Equal(t, "PayPal", payment.Method)
	assert.NotEmpty(t, payment.TransactionID) // generated when absent

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_Record_DefaultMethod(t *testing.T) {
	svc, paymentRepo, bookingRepo, userRepo, notifier := newPaymentService(t)

	var got *domain.Payment
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(approvedBooking(), nil)
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, p *domain.Payment) {
		got = p
	}).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	notifier.EXPECT().NotifyPaymentReceived(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := svc.Record(context.Background(), domain.RecordPaymentInput{
		BookingID:  10,
		CustomerID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPaymentMethod, got.Method)

	time.Sleep(50 * time.Millisecond)
}

func TestPaymentService_Record_MissingBookingID(t *testing.T) {
	svc, _, _, _, _ := newPaymentService(t)

	_, err := svc.Record(context.Background(), domain.RecordPaymentInput{CustomerID: 3})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_Record_BookingNotFound(t *testing.T) {
	svc, _, bookingRepo, _, _ := newPaymentService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Record(context.Background(), domain.RecordPaymentInput{BookingID: 99, CustomerID: 3})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestPaymentService_Record_NotOwnBooking(t *testing.T) {
	svc, _, bookingRepo, _, _ := newPaymentService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(approvedBooking(), nil)

	_, err := svc.Record(context.Background(), domain.RecordPaymentInput{BookingID: 10, CustomerID: 7})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPaymentService_Record_BookingNotApproved(t *testing.T) {
	svc, _, bookingRepo, _, _ := newPaymentService(t)

	booking := approvedBooking()
	booking.Status = domain.BookingStatusPending
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(booking, nil)

	_, err := svc.Record(context.Background(), domain.RecordPaymentInput{BookingID: 10, CustomerID: 3})

	assert.ErrorIs(t, err, domain.ErrBookingNotApproved)
}

func TestPaymentService_Record_AlreadyPaid(t *testing.T) {
	svc, _, bookingRepo, _, _ := newPaymentService(t)

	booking := approvedBooking()
	booking.Status = domain.BookingStatusCompleted
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(booking, nil)

	_, err := svc.Record(context.Background(), domain.RecordPaymentInput{BookingID: 10, CustomerID: 3})

	assert.ErrorIs(t, err, domain.ErrPaymentExists)
}

func TestPaymentService_GetByID_Authz(t *testing.T) {
	svc, paymentRepo, _, _, _ := newPaymentService(t)

	info := &domain.PaymentInfo{
		Payment:    domain.Payment{ID: 5, BookingID: 10, Amount: 450},
		CustomerID: 3,
		OwnerID:    2,
	}
	paymentRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(info, nil)

	got, err := svc.GetByID(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleOwner}, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestPaymentService_GetByID_Forbidden(t *testing.T) {
	svc, paymentRepo, _, _, _ := newPaymentService(t)

	info := &domain.PaymentInfo{
		Payment:    domain.Payment{ID: 5},
		CustomerID: 3,
		OwnerID:    2,
	}
	paymentRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(info, nil)

	_, err := svc.GetByID(context.Background(), domain.Identity{UserID: 9, Role: domain.RoleCustomer}, 5)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPaymentService_ListForUser(t *testing.T) {
	svc, paymentRepo, _, _, _ := newPaymentService(t)

	paymentRepo.EXPECT().ListByCustomer(mock.Anything, int64(3)).Return([]*domain.PaymentInfo{{}}, nil)
	paymentRepo.EXPECT().ListByOwner(mock.Anything, int64(2)).Return([]*domain.PaymentInfo{{}, {}}, nil)

	got, err := svc.ListForUser(context.Background(), domain.Identity{UserID: 3, Role: domain.RoleCustomer})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.ListForUser(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleOwner})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
