package handler

import (
	"github.com/piresc/parkspot/internal/pkg/logger"
	natspkg "github.com/piresc/parkspot/internal/pkg/nats"
	"github.com/piresc/parkspot/services/notification"
	natsHandler "github.com/piresc/parkspot/services/notification/handler/nats"
)

// Handler groups the notification transports
type Handler struct {
	natsHandler *natsHandler.NotificationHandler
}

// NewHandler creates a new notification handler
func NewHandler(notificationUC notification.NotificationUC, client *natspkg.Client, queueGroup string, log *logger.ZapLogger) *Handler {
	return &Handler{
		natsHandler: natsHandler.NewNotificationHandler(notificationUC, client, queueGroup, log),
	}
}

// Start subscribes the NATS consumers
func (h *Handler) Start() error {
	return h.natsHandler.InitNATSConsumers()
}

// Stop unsubscribes the NATS consumers
func (h *Handler) Stop() {
	h.natsHandler.Stop()
}
