package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/parkspot/internal/pkg/constants"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	natspkg "github.com/piresc/parkspot/internal/pkg/nats"
	"github.com/piresc/parkspot/services/notification"
)

const handleTimeout = 30 * time.Second

// NotificationHandler consumes notification events from NATS
type NotificationHandler struct {
	notificationUC notification.NotificationUC
	natsClient     *natspkg.Client
	queueGroup     string
	consumers      []*natspkg.Consumer
	logger         *logger.ZapLogger
}

// NewNotificationHandler creates a new notification NATS handler
func NewNotificationHandler(notificationUC notification.NotificationUC, client *natspkg.Client, queueGroup string, log *logger.ZapLogger) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		natsClient:     client,
		queueGroup:     queueGroup,
		logger:         log,
	}
}

// InitNATSConsumers subscribes to every notification subject
func (h *NotificationHandler) InitNATSConsumers() error {
	subjects := map[string]natspkg.MessageHandler{
		constants.SubjectPaymentCompleted:     h.handlePaymentCompleted,
		constants.SubjectReservationConfirmed: h.handleReservationConfirmed,
	}

	for subject, handler := range subjects {
		consumer, err := natspkg.NewConsumer(h.natsClient, subject, h.queueGroup, handler, h.logger)
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.consumers = append(h.consumers, consumer)
	}
	return nil
}

// Stop unsubscribes all consumers
func (h *NotificationHandler) Stop() {
	for _, c := range h.consumers {
		if err := c.Stop(); err != nil {
			h.logger.Warn("Failed to stop consumer",
				logger.String("subject", c.Subject()),
				logger.Err(err))
		}
	}
	h.consumers = nil
}

func (h *NotificationHandler) handlePaymentCompleted(data []byte) error {
	var event models.PaymentNotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()
	return h.notificationUC.NotifyPaymentCompleted(ctx, event)
}

func (h *NotificationHandler) handleReservationConfirmed(data []byte) error {
	var event models.ReservationNotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal reservation event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()
	return h.notificationUC.NotifyReservationConfirmed(ctx, event)
}
