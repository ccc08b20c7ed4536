package domain

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusApproved  BookingStatus = "Approved"
	BookingStatusRejected  BookingStatus = "Rejected"
	BookingStatusCompleted BookingStatus = "Completed"
)

// ActiveStatuses are the statuses that hold dates on a property's
// calendar. Rejected and Completed bookings never block new requests.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusApproved}

const DateLayout = "2006-01-02"

type Booking struct {
	ID         int64         `json:"id"`
	PropertyID int64         `json:"property_id"`
	CustomerID int64         `json:"customer_id"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// BookingInfo is a booking joined with property and counterpart details
// for list/detail views. OwnerID is the property owner, used for
// ownership checks without a second query.
type BookingInfo struct {
	Booking
	PropertyTitle string `json:"property_title"`
	Location      string `json:"location"`
	OwnerID       int64  `json:"-"`
	OwnerName     string `json:"owner_name,omitempty"`
	OwnerEmail    string `json:"owner_email,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

type CreateBookingInput struct {
	PropertyID int64
	CustomerID int64
	StartDate  time.Time
	EndDate    time.Time
}

// Nights returns the number of nights covered by [start, end).
func Nights(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// Overlaps reports whether the half-open date ranges [s1, e1) and
// [s2, e2) intersect. Adjacent ranges (e1 == s2) do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// TruncateToDate drops the time-of-day component, keeping the calendar
// date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
