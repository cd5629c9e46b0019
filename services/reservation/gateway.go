package reservation

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// SpotDirectory is the spot eligibility and occupancy collaborator
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/parkspot/services/reservation SpotDirectory,UserDirectory
type SpotDirectory interface {
	ValidateSpotForUser(ctx context.Context, spotID uuid.UUID, isEVUser bool) (*models.ParkingSpot, error)
	GetSpot(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error)
	SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error
}

// UserDirectory resolves reservation owners
type UserDirectory interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}
