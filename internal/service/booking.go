package service

import (
	"context"
	"fmt"
	"time"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	propertyRepo ports.PropertyRepo
	userRepo     ports.UserRepo
	notifier     ports.BookingNotifier
	logger       logger.Logger
	now          func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	propertyRepo ports.PropertyRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	start := domain.TruncateToDate(input.StartDate)
	end := domain.TruncateToDate(input.EndDate)
	today := domain.TruncateToDate(s.now())

	if start.Before(today) {
		return nil, fmt.Errorf("%w: start date cannot be in the past", domain.ErrValidation)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end date must be after start date", domain.ErrValidation)
	}

	property, err := s.propertyRepo.GetByID(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("check property: %w", err)
	}
	if !property.IsAvailable {
		return nil, domain.ErrPropertyUnavailable
	}

	booking := &domain.Booking{
		PropertyID: input.PropertyID,
		CustomerID: input.CustomerID,
		StartDate:  start,
		EndDate:    end,
	}
	// The repository re-checks availability and overlap under lock and
	// fixes the total price from the property row it locked.
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("property_id", booking.PropertyID),
		logger.Int64("customer_id", booking.CustomerID),
		logger.Int("nights", domain.Nights(start, end)),
	)

	go s.notifyOwner(context.WithoutCancel(ctx), property.OwnerID, property.Title, booking)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, caller domain.Identity, id int64) (*domain.BookingInfo, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.CustomerID != caller.UserID && booking.OwnerID != caller.UserID {
		return nil, domain.ErrForbidden
	}

	return booking, nil
}

// ListForUser returns the caller's bookings: a Customer sees bookings
// they made, an Owner sees bookings on their properties.
func (s *BookingService) ListForUser(ctx context.Context, caller domain.Identity) ([]*domain.BookingInfo, error) {
	if caller.Role == domain.RoleCustomer {
		return s.bookingRepo.ListByCustomer(ctx, caller.UserID)
	}
	return s.bookingRepo.ListByOwner(ctx, caller.UserID)
}

func (s *BookingService) Approve(ctx context.Context, caller domain.Identity, id int64) error {
	return s.transition(ctx, caller, id, domain.BookingStatusApproved)
}

func (s *BookingService) Reject(ctx context.Context, caller domain.Identity, id int64) error {
	return s.transition(ctx, caller, id, domain.BookingStatusRejected)
}

func (s *BookingService) transition(ctx context.Context, caller domain.Identity, id int64, status domain.BookingStatus) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.OwnerID != caller.UserID {
		return domain.ErrForbidden
	}
	if booking.Status != domain.BookingStatusPending {
		return domain.ErrBookingNotPending
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.Int64("booking_id", id),
		logger.String("status", string(status)),
	)

	go s.notifyCustomer(context.WithoutCancel(ctx), booking, status)

	return nil
}

// RejectExpired rejects Pending bookings whose start date has passed.
// Called periodically by the scheduler.
func (s *BookingService) RejectExpired(ctx context.Context) ([]*domain.Booking, error) {
	rejected, err := s.bookingRepo.RejectExpired(ctx)
	if err != nil {
		return nil, fmt.Errorf("reject expired: %w", err)
	}

	if len(rejected) > 0 {
		s.logger.Info("expired pending bookings rejected",
			logger.Int("count", len(rejected)),
		)
	}

	return rejected, nil
}

func (s *BookingService) notifyOwner(ctx context.Context, ownerID int64, propertyTitle string, booking *domain.Booking) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to get owner for notification",
			logger.Int64("owner_id", ownerID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyBookingRequested(ctx, owner, booking, propertyTitle)
}

func (s *BookingService) notifyCustomer(ctx context.Context, booking *domain.BookingInfo, status domain.BookingStatus) {
	customer, err := s.userRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		s.logger.Error("failed to get customer for notification",
			logger.Int64("customer_id", booking.CustomerID),
			logger.String("error", err.Error()),
		)
		return
	}

	if status == domain.BookingStatusApproved {
		s.notifier.NotifyBookingApproved(ctx, customer, &booking.Booking, booking.PropertyTitle)
	} else {
		s.notifier.NotifyBookingRejected(ctx, customer, &booking.Booking, booking.PropertyTitle)
	}
}
