package usecase

import (
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/notification"
)

// NotificationUC renders notification events into emails
type NotificationUC struct {
	cfg    *models.Config
	sender notification.EmailSender
	logger *logger.ZapLogger
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(cfg *models.Config, sender notification.EmailSender, log *logger.ZapLogger) notification.NotificationUC {
	return &NotificationUC{
		cfg:    cfg,
		sender: sender,
		logger: log,
	}
}
