package domain

import "time"

type Property struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"price_per_night"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	MaxGuests     int       `json:"max_guests"`
	Amenities     string    `json:"amenities"`
	ImageURL      string    `json:"image_url,omitempty"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
}

// PropertyInfo is a listing joined with its owner's contact details.
type PropertyInfo struct {
	Property
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}

type CreatePropertyInput struct {
	Title         string
	Description   string
	Location      string
	PricePerNight float64
	Bedrooms      *int
	Bathrooms     *int
	MaxGuests     *int
	Amenities     string
	ImageURL      string
}

// UpdatePropertyInput carries a partial update: nil fields keep their
// prior values.
type UpdatePropertyInput struct {
	Title         *string
	Description   *string
	Location      *string
	PricePerNight *float64
	Bedrooms      *int
	Bathrooms     *int
	MaxGuests     *int
	Amenities     *string
	ImageURL      *string
	IsAvailable   *bool
}
