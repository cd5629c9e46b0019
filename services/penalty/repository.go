package penalty

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// PenaltyRepo defines the interface for penalty data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/parkspot/services/penalty PenaltyRepo
type PenaltyRepo interface {
	Create(ctx context.Context, penalty *models.Penalty) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Penalty, error)
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*models.Penalty, error)
}
