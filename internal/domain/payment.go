package domain

import "time"

type Payment struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"booking_id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Status        string    `json:"payment_status"`
	PaymentDate   time.Time `json:"payment_date"`
}

// PaymentInfo is a payment joined with its booking and property for
// list/detail views.
type PaymentInfo struct {
	Payment
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	BookingStatus BookingStatus `json:"booking_status"`
	PropertyTitle string        `json:"property_title"`
	Location      string        `json:"location"`
	CustomerID    int64         `json:"-"`
	OwnerID       int64         `json:"-"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerEmail string        `json:"customer_email,omitempty"`
}

const DefaultPaymentMethod = "Credit Card"

type RecordPaymentInput struct {
	BookingID     int64
	CustomerID    int64
	Method        string
	TransactionID string
}
