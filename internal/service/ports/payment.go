package ports

import (
	"context"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
)

type PaymentRepo interface {
	// Create inserts the payment and completes its booking in a single
	// transaction. Amount is captured from the booking row under lock.
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.PaymentInfo, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.PaymentInfo, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.PaymentInfo, error)
}
