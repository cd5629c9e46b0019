package notification

import (
	"context"

	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// Notifier is invoked after a commit. Failures never affect committed state.
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/parkspot/services/notification Notifier,EmailSender
type Notifier interface {
	SendPaymentConfirmation(ctx context.Context, email string, amount decimal.Decimal) error
	SendReservationConfirmation(ctx context.Context, email, spotLabel string) error
}

// EmailSender delivers a rendered message to an email provider
type EmailSender interface {
	Send(ctx context.Context, msg models.EmailMessage) error
}
