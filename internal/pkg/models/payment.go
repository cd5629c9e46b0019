package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// Payment is the settlement of a completed reservation's charge
type Payment struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	ReservationID uuid.UUID       `json:"reservation_id" db:"reservation_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Status        PaymentStatus   `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// PaymentQuote is the computed charge for a reservation
type PaymentQuote struct {
	ReservationID uuid.UUID       `json:"reservation_id"`
	Hours         decimal.Decimal `json:"hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	Amount        decimal.Decimal `json:"amount"`
}
