package penalty

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// ReservationReader resolves the reservation a penalty is charged against
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/parkspot/services/penalty ReservationReader
type ReservationReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
}
