package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// SignupRequest is the request body for creating an account.
// @Description Request payload for account registration.
type SignupRequest struct {
	// Account email address
	Email string `json:"email" validate:"required,email" example:"sleeper@example.com"`
	// Password (minimum 8 characters)
	Password string `json:"password" validate:"required,min=8,max=72" example:"hunter2hunter2"`
}

// LoginRequest is the request body for logging in.
// @Description Request payload for password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"sleeper@example.com"`
	Password string `json:"password" validate:"required" example:"hunter2hunter2"`
}

// AuthResponse is returned by signup and login.
// @Description Issued access token and account identity.
type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
}
