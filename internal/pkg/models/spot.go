package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpotType classifies parking spots
type SpotType string

const (
	SpotTypeRegular SpotType = "Regular"
	SpotTypeEV      SpotType = "EV"
)

// IsValid reports whether the type is a known spot type
func (t SpotType) IsValid() bool {
	return t == SpotTypeRegular || t == SpotTypeEV
}

// SpotNumberMinLength is the shortest accepted spot number
const SpotNumberMinLength = 5

// ParkingSpot is a reservable parking spot
type ParkingSpot struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	SpotNumber string          `json:"spot_number" db:"spot_number"`
	SpotType   SpotType        `json:"spot_type" db:"spot_type"`
	HourlyRate decimal.Decimal `json:"hourly_rate" db:"hourly_rate"`
	IsOccupied bool            `json:"is_occupied" db:"is_occupied"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// CreateSpotRequest is the payload for registering a spot
type CreateSpotRequest struct {
	SpotNumber string          `json:"spot_number" validate:"required,min=5"`
	SpotType   SpotType        `json:"spot_type" validate:"required,oneof=Regular EV"`
	HourlyRate decimal.Decimal `json:"hourly_rate" validate:"required"`
}
