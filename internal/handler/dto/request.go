package dto

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Role           string `json:"role" binding:"required"`
	FullName       string `json:"full_name" binding:"required"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreatePropertyRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Location      string  `json:"location" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
	Bedrooms      *int    `json:"bedrooms"`
	Bathrooms     *int    `json:"bathrooms"`
	MaxGuests     *int    `json:"max_guests"`
	Amenities     string  `json:"amenities"`
	ImageURL      string  `json:"image_url"`
}

type UpdatePropertyRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Location      *string  `json:"location"`
	PricePerNight *float64 `json:"price_per_night"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	MaxGuests     *int     `json:"max_guests"`
	Amenities     *string  `json:"amenities"`
	ImageURL      *string  `json:"image_url"`
	IsAvailable   *bool    `json:"is_available"`
}

type CreateBookingRequest struct {
	PropertyID int64  `json:"property_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

type RecordPaymentRequest struct {
	BookingID     int64  `json:"booking_id" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	TransactionID string `json:"transaction_id"`
}
