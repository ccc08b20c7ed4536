package domain

import "time"

type Role string

const (
	RoleOwner    Role = "Owner"
	RoleCustomer Role = "Customer"
)

func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleCustomer
}

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone,omitempty"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Identity is the authenticated caller recovered from an access token.
type Identity struct {
	UserID int64
	Email  string
	Role   Role
}

type RegisterInput struct {
	Email          string
	Password       string
	Role           Role
	FullName       string
	Phone          string
	TelegramChatID *int64
}
