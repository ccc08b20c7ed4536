package ports

import (
	"context"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingRequested(ctx context.Context, owner *domain.User, booking *domain.Booking, propertyTitle string)
	NotifyBookingApproved(ctx context.Context, customer *domain.User, booking *domain.Booking, propertyTitle string)
	NotifyBookingRejected(ctx context.Context, customer *domain.User, booking *domain.Booking, propertyTitle string)
	NotifyPaymentReceived(ctx context.Context, owner *domain.User, payment *domain.Payment, propertyTitle string)
}
