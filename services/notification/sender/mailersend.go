package sender

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mailersend/mailersend-go"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
)

// MailerSendSender delivers email through the MailerSend API
type MailerSendSender struct {
	client *mailersend.Mailersend
	from   mailersend.From
	logger *logger.ZapLogger
}

// NewMailerSendSender creates a MailerSend sender
func NewMailerSendSender(cfg models.NotificationConfig, log *logger.ZapLogger) *MailerSendSender {
	client := mailersend.NewMailersend(cfg.APIKey)
	client.SetClient(&http.Client{Timeout: sendTimeout})

	return &MailerSendSender{
		client: client,
		from: mailersend.From{
			Name:  cfg.FromName,
			Email: cfg.FromEmail,
		},
		logger: log,
	}
}

// Send delivers msg as a plain text email
func (s *MailerSendSender) Send(ctx context.Context, msg models.EmailMessage) error {
	message := s.client.Email.NewMessage()
	message.SetFrom(s.from)
	message.SetRecipients([]mailersend.Recipient{{Email: msg.To}})
	message.SetSubject(msg.Subject)
	message.SetText(msg.Body)

	res, err := s.client.Email.Send(ctx, message)
	if err != nil {
		if res != nil && res.StatusCode != 0 {
			return &ProviderError{StatusCode: res.StatusCode, Body: err.Error()}
		}
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debug("Email sent",
		logger.String("provider", ProviderMailerSend),
		logger.String("to", msg.To),
		logger.String("message_id", res.Header.Get("X-Message-Id")))
	return nil
}
