package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// ReservationReader resolves the reservation being charged
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/parkspot/services/payment ReservationReader,SpotReader,UserReader
type ReservationReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
}

// SpotReader resolves the hourly rate of a spot
type SpotReader interface {
	GetSpot(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error)
}

// UserReader resolves the recipient of payment receipts
type UserReader interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}
