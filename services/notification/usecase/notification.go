package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// NotifyPaymentCompleted emails a payment receipt
func (uc *NotificationUC) NotifyPaymentCompleted(ctx context.Context, event models.PaymentNotificationEvent) error {
	if event.Email == "" {
		return fmt.Errorf("payment notification has no recipient")
	}
	return uc.send(ctx, models.EmailMessage{
		To:      event.Email,
		Subject: "Payment Successful",
		Body:    fmt.Sprintf("We received %s RON.", event.Amount.StringFixed(2)),
	})
}

// NotifyReservationConfirmed emails a reservation confirmation
func (uc *NotificationUC) NotifyReservationConfirmed(ctx context.Context, event models.ReservationNotificationEvent) error {
	if event.Email == "" {
		return fmt.Errorf("reservation notification has no recipient")
	}
	return uc.send(ctx, models.EmailMessage{
		To:      event.Email,
		Subject: "Reservation Confirmed",
		Body:    fmt.Sprintf("Spot %s is yours.", event.SpotLabel),
	})
}

func (uc *NotificationUC) send(ctx context.Context, msg models.EmailMessage) error {
	if err := uc.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to deliver %q: %w", msg.Subject, err)
	}
	uc.logger.Info("Notification delivered",
		logger.String("to", msg.To),
		logger.String("subject", msg.Subject))
	return nil
}
