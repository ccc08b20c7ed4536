package dto

import (
	"time"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type PropertyResponse struct {
	ID            int64   `json:"id"`
	OwnerID       int64   `json:"owner_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	MaxGuests     int     `json:"max_guests"`
	Amenities     string  `json:"amenities"`
	ImageURL      string  `json:"image_url,omitempty"`
	IsAvailable   bool    `json:"is_available"`
	CreatedAt     string  `json:"created_at"`
	OwnerName     string  `json:"owner_name,omitempty"`
	OwnerEmail    string  `json:"owner_email,omitempty"`
}

type CreatePropertyResponse struct {
	Message    string `json:"message"`
	PropertyID int64  `json:"propertyId"`
}

type BookingResponse struct {
	ID            int64   `json:"id"`
	PropertyID    int64   `json:"property_id"`
	CustomerID    int64   `json:"customer_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	PropertyTitle string  `json:"property_title,omitempty"`
	Location      string  `json:"location,omitempty"`
	OwnerName     string  `json:"owner_name,omitempty"`
	OwnerEmail    string  `json:"owner_email,omitempty"`
	CustomerName  string  `json:"customer_name,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty"`
}

type CreateBookingResponse struct {
	Message    string  `json:"message"`
	BookingID  int64   `json:"bookingId"`
	TotalPrice float64 `json:"total_price"`
	Nights     int     `json:"nights"`
}

type PaymentResponse struct {
	ID            int64   `json:"id"`
	BookingID     int64   `json:"booking_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id,omitempty"`
	PaymentStatus string  `json:"payment_status"`
	PaymentDate   string  `json:"payment_date"`
	StartDate     string  `json:"start_date,omitempty"`
	EndDate       string  `json:"end_date,omitempty"`
	BookingStatus string  `json:"booking_status,omitempty"`
	PropertyTitle string  `json:"property_title,omitempty"`
	Location      string  `json:"location,omitempty"`
	CustomerName  string  `json:"customer_name,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty"`
}

type RecordPaymentResponse struct {
	Message   string  `json:"message"`
	PaymentID int64   `json:"paymentId"`
	Amount    float64 `json:"amount"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		FullName:  u.FullName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		Title:         p.Title,
		Description:   p.Description,
		Location:      p.Location,
		PricePerNight: p.PricePerNight,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		MaxGuests:     p.MaxGuests,
		Amenities:     p.Amenities,
		ImageURL:      p.ImageURL,
		IsAvailable:   p.IsAvailable,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func ToPropertyInfoResponse(p *domain.PropertyInfo) PropertyResponse {
	resp := ToPropertyResponse(&p.Property)
	resp.OwnerName = p.OwnerName
	resp.OwnerEmail = p.OwnerEmail
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		CustomerID: b.CustomerID,
		StartDate:  b.StartDate.Format(domain.DateLayout),
		EndDate:    b.EndDate.Format(domain.DateLayout),
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingInfoResponse(b *domain.BookingInfo) BookingResponse {
	resp := ToBookingResponse(&b.Booking)
	resp.PropertyTitle = b.PropertyTitle
	resp.Location = b.Location
	resp.OwnerName = b.OwnerName
	resp.OwnerEmail = b.OwnerEmail
	resp.CustomerName = b.CustomerName
	resp.CustomerEmail = b.CustomerEmail
	return resp
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		PaymentMethod: p.Method,
		TransactionID: p.TransactionID,
		PaymentStatus: p.Status,
		PaymentDate:   p.PaymentDate.Format(time.RFC3339),
	}
}

func ToPaymentInfoResponse(p *domain.PaymentInfo) PaymentResponse {
	resp := ToPaymentResponse(&p.Payment)
	resp.StartDate = p.StartDate.Format(domain.DateLayout)
	resp.EndDate = p.EndDate.Format(domain.DateLayout)
	resp.BookingStatus = string(p.BookingStatus)
	resp.PropertyTitle = p.PropertyTitle
	resp.Location = p.Location
	resp.CustomerName = p.CustomerName
	resp.CustomerEmail = p.CustomerEmail
	return resp
}
