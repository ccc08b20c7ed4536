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

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create records the settlement and completes the booking in one
// transaction: either both writes land or neither does. The amount is
// captured from the booking row under lock, never recomputed.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookingQuery := `SELECT status, total_price FROM bookings WHERE id = $1 FOR UPDATE`
	var status domain.BookingStatus
	var totalPrice float64
	if err = tx.QueryRowContext(ctx, bookingQuery, p.BookingID).Scan(&status, &totalPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("lock booking: %w", err)
	}

	switch status {
	case domain.BookingStatusApproved:
		// settlement allowed
	case domain.BookingStatusCompleted:
		return domain.ErrPaymentExists
	default:
		return domain.ErrBookingNotApproved
	}

	p.Amount = totalPrice
	p.Status = "Completed"
	p.PaymentDate = time.Now().UTC()

	insertQuery := `INSERT INTO payments (booking_id, amount, payment_method, transaction_id, payment_status, payment_date)
					VALUES ($1, $2, $3, $4, $5, $6)
					RETURNING id`
	err = tx.QueryRowContext(
		ctx, insertQuery,
		p.BookingID, p.Amount, p.Method, p.TransactionID, p.Status, p.PaymentDate,
	).Scan(&p.ID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrPaymentExists
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	completeQuery := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, completeQuery, p.BookingID, domain.BookingStatusCompleted); err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}

	return tx.Commit()
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.PaymentInfo, error) {
	query := `SELECT pm.id, pm.booking_id, pm.amount, pm.payment_method, pm.transaction_id,
					 pm.payment_status, pm.payment_date,
					 b.start_date, b.end_date, b.status, b.customer_id,
					 p.title, p.location, p.owner_id,
					 c.full_name, c.email
			  FROM payments pm
			  JOIN bookings b ON pm.booking_id = b.id
			  JOIN properties p ON b.property_id = p.id
			  JOIN users c ON b.customer_id = c.id
			  WHERE pm.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var p domain.PaymentInfo
	if err = row.Scan(
		&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.TransactionID,
		&p.Status, &p.PaymentDate,
		&p.StartDate, &p.EndDate, &p.BookingStatus, &p.CustomerID,
		&p.PropertyTitle, &p.Location, &p.OwnerID,
		&p.CustomerName, &p.CustomerEmail,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return &p, nil
}

func (r *PaymentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.PaymentInfo, error) {
	query := `SELECT pm.id, pm.booking_id, pm.amount, pm.payment_method, pm.transaction_id,
					 pm.payment_status, pm.payment_date,
					 b.start_date, b.end_date, b.status, b.customer_id,
					 p.title, p.location, p.owner_id
			  FROM payments pm
			  JOIN bookings b ON pm.booking_id = b.id
			  JOIN properties p ON b.property_id = p.id
			  WHERE b.customer_id = $1
			  ORDER BY pm.payment_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list payments by customer: %w", err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *PaymentRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.PaymentInfo, error) {
	query := `SELECT pm.id, pm.booking_id, pm.amount, pm.payment_method, pm.transaction_id,
					 pm.payment_status, pm.payment_date,
					 b.start_date, b.end_date, b.status, b.customer_id,
					 p.title, p.location, p.owner_id,
					 c.full_name, c.email
			  FROM payments pm
			  JOIN bookings b ON pm.booking_id = b.id
			  JOIN properties p ON b.property_id = p.id
			  JOIN users c ON b.customer_id = c.id
			  WHERE p.owner_id = $1
			  ORDER BY pm.payment_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list payments by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.PaymentInfo
	for rows.Next() {
		var p domain.PaymentInfo
		if err = rows.Scan(
			&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.TransactionID,
			&p.Status, &p.PaymentDate,
			&p.StartDate, &p.EndDate, &p.BookingStatus, &p.CustomerID,
			&p.PropertyTitle, &p.Location, &p.OwnerID,
			&p.CustomerName, &p.CustomerEmail,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

func scanPayments(rows *sql.Rows) ([]*domain.PaymentInfo, error) {
	var res []*domain.PaymentInfo
	for rows.Next() {
		var p domain.PaymentInfo
		if err := rows.Scan(
			&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.TransactionID,
			&p.Status, &p.PaymentDate,
			&p.StartDate, &p.EndDate, &p.BookingStatus, &p.CustomerID,
			&p.PropertyTitle, &p.Location, &p.OwnerID,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
