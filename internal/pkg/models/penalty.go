package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Penalty reasons applied by the reservation lifecycle
const (
	PenaltyReasonLateCancellation = "Late cancellation"
	PenaltyReasonTimeout          = "Reservation timeout"
)

// PenaltyReasonMinLength is the shortest accepted penalty reason
const PenaltyReasonMinLength = 5

// Penalty is an append-only charge for a rule violation
type Penalty struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	ReservationID uuid.UUID       `json:"reservation_id" db:"reservation_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Reason        string          `json:"reason" db:"reason"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// ApplyPenaltyRequest is the payload for applying a penalty manually
type ApplyPenaltyRequest struct {
	ReservationID uuid.UUID       `json:"reservation_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Reason        string          `json:"reason" validate:"required,min=5"`
}
