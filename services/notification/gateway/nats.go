package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/parkspot/internal/pkg/constants"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// SendPaymentConfirmation publishes a payment completed event
func (g *NATSNotifier) SendPaymentConfirmation(ctx context.Context, email string, amount decimal.Decimal) error {
	return g.publish(ctx, constants.SubjectPaymentCompleted, models.PaymentNotificationEvent{
		Email:      email,
		Amount:     amount,
		OccurredAt: g.now().UTC(),
	})
}

// SendReservationConfirmation publishes a reservation confirmed event
func (g *NATSNotifier) SendReservationConfirmation(ctx context.Context, email, spotLabel string) error {
	return g.publish(ctx, constants.SubjectReservationConfirmed, models.ReservationNotificationEvent{
		Email:      email,
		SpotLabel:  spotLabel,
		OccurredAt: g.now().UTC(),
	})
}

func (g *NATSNotifier) publish(ctx context.Context, subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}

	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.Publish(subject, data)
	})
	if err != nil {
		g.logger.Warn("Notification event not published",
			logger.String("subject", subject),
			logger.Err(err))
		return err
	}
	return nil
}
