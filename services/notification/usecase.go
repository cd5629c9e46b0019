package notification

import (
	"context"

	"github.com/piresc/parkspot/internal/pkg/models"
)

// NotificationUC renders notification events and hands them to an EmailSender
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/parkspot/services/notification NotificationUC
type NotificationUC interface {
	NotifyPaymentCompleted(ctx context.Context, event models.PaymentNotificationEvent) error
	NotifyReservationConfirmed(ctx context.Context, event models.ReservationNotificationEvent) error
}
