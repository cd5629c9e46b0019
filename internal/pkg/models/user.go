package models

import (
	"time"

	"github.com/google/uuid"
)

// FullNameMinLength is the shortest accepted full name
const FullNameMinLength = 5

// User represents a registered driver
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"full_name" db:"full_name"`
	IsEVUser  bool      `json:"is_ev_user" db:"is_ev_user"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RegisterUserRequest is the payload for registering a user
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,min=5"`
	IsEVUser bool   `json:"is_ev_user"`
}

// UpdateUserRequest is the payload for updating a user's profile
type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=5"`
	IsEVUser bool   `json:"is_ev_user"`
}
