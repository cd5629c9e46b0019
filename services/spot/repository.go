package spot

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// SpotRepo defines the interface for parking spot data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/parkspot/services/spot SpotRepo,SpotCache
type SpotRepo interface {
	Create(ctx context.Context, spot *models.ParkingSpot) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error)
	ListAll(ctx context.Context) ([]*models.ParkingSpot, error)
	ListAvailable(ctx context.Context, spotType *models.SpotType) ([]*models.ParkingSpot, error)
	// SetOccupied claims a free spot or releases one. Claiming an occupied
	// spot fails with apperror.ErrSpotNotAvailable.
	SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error
}

// SpotCache is a read-through cache for spots. Get returns nil, nil on a miss.
type SpotCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.ParkingSpot, error)
	Set(ctx context.Context, spot *models.ParkingSpot) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}
