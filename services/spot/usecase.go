package spot

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// SpotUC defines the interface for the spot directory
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/parkspot/services/spot SpotUC
type SpotUC interface {
	CreateSpot(ctx context.Context, req models.CreateSpotRequest) (*models.ParkingSpot, error)
	GetSpot(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error)
	ListSpots(ctx context.Context) ([]*models.ParkingSpot, error)
	ListAvailableSpots(ctx context.Context, spotType string) ([]*models.ParkingSpot, error)
	ValidateSpotForUser(ctx context.Context, spotID uuid.UUID, isEVUser bool) (*models.ParkingSpot, error)
	SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error
}
