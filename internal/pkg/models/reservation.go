package models

import (
	"time"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
	ReservationStatusCompleted ReservationStatus = "Completed"
)

// IsTerminal reports whether no further transition is allowed
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCancelled || s == ReservationStatusCompleted
}

// Reservation represents a booking of a parking spot by a user
type Reservation struct {
	ID                   uuid.UUID         `json:"id" db:"id"`
	UserID               uuid.UUID         `json:"user_id" db:"user_id"`
	SpotID               uuid.UUID         `json:"spot_id" db:"spot_id"`
	StartTime            time.Time         `json:"start_time" db:"start_time"`
	EndTime              null.Time         `json:"end_time" db:"end_time"`
	Status               ReservationStatus `json:"status" db:"status"`
	CancellationDeadline time.Time         `json:"cancellation_deadline" db:"cancellation_deadline"`
	CreatedAt            time.Time         `json:"created_at" db:"created_at"`
}

// IsLate reports whether cancelling at now is past the cancellation deadline
func (r *Reservation) IsLate(now time.Time) bool {
	return now.After(r.CancellationDeadline)
}

// CreateReservationRequest is the payload for creating a reservation
type CreateReservationRequest struct {
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	SpotID         uuid.UUID `json:"spot_id" validate:"required"`
	TimeoutMinutes int       `json:"timeout_minutes" validate:"omitempty,min=1,max=60"`
}

// SweepResult summarizes a timeout sweep run
type SweepResult struct {
	Processed int       `json:"processed"`
	RanAt     time.Time `json:"ran_at"`
}
