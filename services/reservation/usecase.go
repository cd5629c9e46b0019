package reservation

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// ReservationUC defines the interface for the reservation state machine
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/parkspot/services/reservation ReservationUC
type ReservationUC interface {
	CreateReservation(ctx context.Context, userID, spotID uuid.UUID, timeoutMinutes int) (*models.Reservation, error)
	ConfirmReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	CompleteReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	GetUserReservations(ctx context.Context, userID uuid.UUID) ([]*models.Reservation, error)
	CheckAndApplyTimeoutPenalties(ctx context.Context) (int, error)
}
