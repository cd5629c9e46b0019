package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// PaymentUC defines the interface for the payment calculator
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/parkspot/services/payment PaymentUC
type PaymentUC interface {
	CalculatePaymentAmount(ctx context.Context, reservationID uuid.UUID) (*models.PaymentQuote, error)
	ProcessPayment(ctx context.Context, reservationID uuid.UUID) (*models.Payment, error)
	GetPaymentByReservation(ctx context.Context, reservationID uuid.UUID) (*models.Payment, error)
	GetUserPayments(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error)
}
