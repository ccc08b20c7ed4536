package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PropertyRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPropertyRepo(db *dbpg.DB) *PropertyRepository {
	return &PropertyRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (owner_id, title, description, location, price_per_night,
									  bedrooms, bathrooms, max_guests, amenities, image_url, is_available, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id`
	p.CreatedAt = time.Now().UTC()

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		p.OwnerID, p.Title, p.Description, p.Location, p.PricePerNight,
		p.Bedrooms, p.Bathrooms, p.MaxGuests, p.Amenities, p.ImageURL,
		p.IsAvailable, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}

	if err = row.Scan(&p.ID); err != nil {
		return fmt.Errorf("insert property: %w", err)
	}

	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.PropertyInfo, error) {
	query := `SELECT p.id, p.owner_id, p.title, p.description, p.location, p.price_per_night,
					 p.bedrooms, p.bathrooms, p.max_guests, p.amenities, p.image_url,
					 p.is_available, p.created_at,
					 u.full_name, u.email
			  FROM properties p
			  JOIN users u ON p.owner_id = u.id
			  WHERE p.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}

	var p domain.PropertyInfo
	if err = row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Location, &p.PricePerNight,
		&p.Bedrooms, &p.Bathrooms, &p.MaxGuests, &p.Amenities, &p.ImageURL,
		&p.IsAvailable, &p.CreatedAt,
		&p.OwnerName, &p.OwnerEmail,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("scan property: %w", err)
	}

	return &p, nil
}

func (r *PropertyRepository) ListAvailable(ctx context.Context) ([]*domain.PropertyInfo, error) {
	query := `SELECT p.id, p.owner_id, p.title, p.description, p.location, p.price_per_night,
					 p.bedrooms, p.bathrooms, p.max_guests, p.amenities, p.image_url,
					 p.is_available, p.created_at,
					 u.full_name, u.email
			  FROM properties p
			  JOIN users u ON p.owner_id = u.id
			  WHERE p.is_available
			  ORDER BY p.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var res []*domain.PropertyInfo
	for rows.Next() {
		var p domain.PropertyInfo
		if err = rows.Scan(
			&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Location, &p.PricePerNight,
			&p.Bedrooms, &p.Bathrooms, &p.MaxGuests, &p.Amenities, &p.ImageURL,
			&p.IsAvailable, &p.CreatedAt,
			&p.OwnerName, &p.OwnerEmail,
		); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Property, error) {
	query := `SELECT id, owner_id, title, description, location, price_per_night,
					 bedrooms, bathrooms, max_guests, amenities, image_url, is_available, created_at
			  FROM properties
			  WHERE owner_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list properties by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.Property
	for rows.Next() {
		var p domain.Property
		if err = rows.Scan(
			&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Location, &p.PricePerNight,
			&p.Bedrooms, &p.Bathrooms, &p.MaxGuests, &p.Amenities, &p.ImageURL,
			&p.IsAvailable, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

// Update applies a partial update: nil input fields keep the stored value.
func (r *PropertyRepository) Update(ctx context.Context, id int64, input domain.UpdatePropertyInput) error {
	query := `UPDATE properties
			  SET title           = COALESCE($2, title),
				  description     = COALESCE($3, description),
				  location        = COALESCE($4, location),
				  price_per_night = COALESCE($5, price_per_night),
				  bedrooms        = COALESCE($6, bedrooms),
				  bathrooms       = COALESCE($7, bathrooms),
				  max_guests      = COALESCE($8, max_guests),
				  amenities       = COALESCE($9, amenities),
				  image_url       = COALESCE($10, image_url),
				  is_available    = COALESCE($11, is_available)
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, id,
		input.Title, input.Description, input.Location, input.PricePerNight,
		input.Bedrooms, input.Bathrooms, input.MaxGuests,
		input.Amenities, input.ImageURL, input.IsAvailable,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update property rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}

	return nil
}

// Delete removes the property; bookings and their payments go with it
// through the foreign-key cascade.
func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete property rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}

	return nil
}
