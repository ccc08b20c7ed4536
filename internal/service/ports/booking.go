package ports

import (
	"context"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
)

type BookingRepo interface {
	// Create checks availability and date overlap and inserts the booking
	// in a single transaction, filling in ID, TotalPrice and timestamps.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.BookingInfo, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.BookingInfo, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.BookingInfo, error)
	// UpdateStatus transitions a Pending booking to the given status. It
	// fails with ErrBookingNotFound or ErrBookingNotPending otherwise.
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	// RejectExpired rejects Pending bookings whose start date has passed
	// and returns them.
	RejectExpired(ctx context.Context) ([]*domain.Booking, error)
}
