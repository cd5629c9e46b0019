package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// PaymentRepo defines the interface for payment data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/parkspot/services/payment PaymentRepo
type PaymentRepo interface {
	Create(ctx context.Context, payment *models.Payment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.PaymentStatus) error
	GetActiveByReservation(ctx context.Context, reservationID uuid.UUID) (*models.Payment, error)
	GetLatestByReservation(ctx context.Context, reservationID uuid.UUID) (*models.Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error)
}
