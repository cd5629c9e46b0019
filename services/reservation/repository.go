package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
	"gopkg.in/guregu/null.v4"
)

// ReservationRepo defines the interface for reservation data access operations.
// UpdateStatus is a compare-and-swap on the current status and fails with
// apperror.ErrInvalidTransition when no row matched.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/parkspot/services/reservation ReservationRepo
type ReservationRepo interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ReservationStatus, endTime null.Time) error
	ListExpiredPending(ctx context.Context, now time.Time) ([]*models.Reservation, error)
}
