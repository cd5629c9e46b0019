package penalty

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// PenaltyUC defines the interface for the penalty engine
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/parkspot/services/penalty PenaltyUC
type PenaltyUC interface {
	ApplyPenalty(ctx context.Context, reservationID uuid.UUID, amount decimal.Decimal, reason string) (*models.Penalty, error)
	GetUserPenalties(ctx context.Context, userID uuid.UUID) ([]*models.Penalty, error)
	GetReservationPenalties(ctx context.Context, reservationID uuid.UUID) ([]*models.Penalty, error)
}
