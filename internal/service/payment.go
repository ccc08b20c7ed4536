package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *PaymentService) Record(ctx context.Context, input domain.RecordPaymentInput) (*domain.Payment, error) {
	if input.BookingID == 0 {
		return nil, fmt.Errorf("%w: booking_id is required", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.CustomerID != input.CustomerID {
		return nil, domain.ErrForbidden
	}

	switch booking.Status {
	case domain.BookingStatusApproved:
	case domain.BookingStatusCompleted:
		return nil, domain.ErrPaymentExists
	default:
		return nil, domain.ErrBookingNotApproved
	}

	method := input.Method
	if method == "" {
		method = domain.DefaultPaymentMethod
	}
	transactionID := input.TransactionID
	if transactionID == "" {
		transactionID = uuid.New().String()
	}

	payment := &domain.Payment{
		BookingID:     input.BookingID,
		Method:        method,
		TransactionID: transactionID,
	}
	// Amount is captured and the booking completed inside one
	// transaction; a payment row without a Completed booking cannot be
	// observed.
	if err = s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.logger.Info("payment recorded",
		logger.Int64("payment_id", payment.ID),
		logger.Int64("booking_id", payment.BookingID),
		logger.String("method", payment.Method),
	)

	go s.notifyOwner(context.WithoutCancel(ctx), booking, payment)

	return payment, nil
}

func (s *PaymentService) GetByID(ctx context.Context, caller domain.Identity, id int64) (*domain.PaymentInfo, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	if payment.CustomerID != caller.UserID && payment.OwnerID != caller.UserID {
		return nil, domain.ErrForbidden
	}

	return payment, nil
}

// ListForUser returns payments visible to the caller: a Customer sees
// their own payments, an Owner sees payments on their properties.
func (s *PaymentService) ListForUser(ctx context.Context, caller domain.Identity) ([]*domain.PaymentInfo, error) {
	if caller.Role == domain.RoleCustomer {
		return s.paymentRepo.ListByCustomer(ctx, caller.UserID)
	}
	return s.paymentRepo.ListByOwner(ctx, caller.UserID)
}

func (s *PaymentService) notifyOwner(ctx context.Context, booking *domain.BookingInfo, payment *domain.Payment) {
	owner, err := s.userRepo.GetByID(ctx, booking.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for payment notification",
			logger.Int64("owner_id", booking.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyPaymentReceived(ctx, owner, payment, booking.PropertyTitle)
}
