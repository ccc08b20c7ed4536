package ports

import (
	"context"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
)

type PropertyRepo interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.PropertyInfo, error)
	ListAvailable(ctx context.Context) ([]*domain.PropertyInfo, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Property, error)
	Update(ctx context.Context, id int64, input domain.UpdatePropertyInput) error
	Delete(ctx context.Context, id int64) error
}
