package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const pgExclusionViolation = "23P01"

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create admits a booking request. The property row is locked for the
// duration of the transaction so that the overlap check and the insert
// are observed together: two concurrent requests for intersecting dates
// cannot both pass. The price is read under the same lock, fixing
// TotalPrice at creation time.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	propertyQuery := `SELECT price_per_night, is_available FROM properties WHERE id = $1 FOR UPDATE`
	var pricePerNight float64
	var isAvailable bool
	if err = tx.QueryRowContext(ctx, propertyQuery, b.PropertyID).Scan(&pricePerNight, &isAvailable); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPropertyNotFound
		}
		return fmt.Errorf("lock property: %w", err)
	}

	if !isAvailable {
		return domain.ErrPropertyUnavailable
	}

	overlapQuery := `SELECT EXISTS (
						SELECT 1 FROM bookings
						WHERE property_id = $1
						  AND status = ANY($2)
						  AND start_date < $4
						  AND end_date > $3
					 )`
	var overlaps bool
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.PropertyID,
		pq.Array(domain.ActiveStatuses), b.StartDate, b.EndDate,
	).Scan(&overlaps); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}

	if overlaps {
		return domain.ErrDatesUnavailable
	}

	now := time.Now().UTC()
	b.TotalPrice = float64(domain.Nights(b.StartDate, b.EndDate)) * pricePerNight
	b.Status = domain.BookingStatusPending
	b.CreatedAt = now
	b.UpdatedAt = now

	insertQuery := `INSERT INTO bookings (property_id, customer_id, start_date, end_date, total_price, status, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
					RETURNING id`
	err = tx.QueryRowContext(
		ctx, insertQuery,
		b.PropertyID, b.CustomerID, b.StartDate, b.EndDate,
		b.TotalPrice, b.Status, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrDatesUnavailable
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.BookingInfo, error) {
	query := `SELECT b.id, b.property_id, b.customer_id, b.start_date, b.end_date,
					 b.total_price, b.status, b.created_at, b.updated_at,
					 p.title, p.location, p.owner_id,
					 o.full_name, o.email,
					 c.full_name, c.email
			  FROM bookings b
			  JOIN properties p ON b.property_id = p.id
			  JOIN users o ON p.owner_id = o.id
			  JOIN users c ON b.customer_id = c.id
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.BookingInfo
	if err = row.Scan(
		&b.ID, &b.PropertyID, &b.CustomerID, &b.StartDate, &b.EndDate,
		&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		&b.PropertyTitle, &b.Location, &b.OwnerID,
		&b.OwnerName, &b.OwnerEmail,
		&b.CustomerName, &b.CustomerEmail,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.BookingInfo, error) {
	query := `SELECT b.id, b.property_id, b.customer_id, b.start_date, b.end_date,
					 b.total_price, b.status, b.created_at, b.updated_at,
					 p.title, p.location, p.owner_id,
					 o.full_name, o.email
			  FROM bookings b
			  JOIN properties p ON b.property_id = p.id
			  JOIN users o ON p.owner_id = o.id
			  WHERE b.customer_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by customer: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingInfo
	for rows.Next() {
		var b domain.BookingInfo
		if err = rows.Scan(
			&b.ID, &b.PropertyID, &b.CustomerID, &b.StartDate, &b.EndDate,
			&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
			&b.PropertyTitle, &b.Location, &b.OwnerID,
			&b.OwnerName, &b.OwnerEmail,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.BookingInfo, error) {
	query := `SELECT b.id, b.property_id, b.customer_id, b.start_date, b.end_date,
					 b.total_price, b.status, b.created_at, b.updated_at,
					 p.title, p.location, p.owner_id,
					 c.full_name, c.email
			  FROM bookings b
			  JOIN properties p ON b.property_id = p.id
			  JOIN users c ON b.customer_id = c.id
			  WHERE p.owner_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingInfo
	for rows.Next() {
		var b domain.BookingInfo
		if err = rows.Scan(
			&b.ID, &b.PropertyID, &b.CustomerID, &b.StartDate, &b.EndDate,
			&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
			&b.PropertyTitle, &b.Location, &b.OwnerID,
			&b.CustomerName, &b.CustomerEmail,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// UpdateStatus atomically transitions a Pending booking; rows affected
// zero means the booking is missing or already left Pending.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, domain.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("check booking status: %w", err)
		}
		var current string
		if err = row.Scan(&current); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("check booking status: %w", err)
		}
		return domain.ErrBookingNotPending
	}

	return nil
}

// RejectExpired rejects Pending bookings whose stay has already started;
// they can no longer be meaningfully approved.
func (r *BookingRepository) RejectExpired(ctx context.Context) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND start_date < CURRENT_DATE
			  RETURNING id, property_id, customer_id, start_date, end_date,
						total_price, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusRejected,
	)
	if err != nil {
		return nil, fmt.Errorf("reject expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.PropertyID, &b.CustomerID, &b.StartDate, &b.EndDate,
			&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
