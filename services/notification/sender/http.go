package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	nrpkg "github.com/piresc/parkspot/internal/pkg/newrelic"
)

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// HTTPSender posts messages to a SendGrid-compatible mail endpoint
type HTTPSender struct {
	client *http.Client
	apiURL string
	apiKey string
	from   address
	logger *logger.ZapLogger
}

// NewHTTPSender creates a sender for cfg.APIURL
func NewHTTPSender(cfg models.NotificationConfig, log *logger.ZapLogger) *HTTPSender {
	return &HTTPSender{
		client: &http.Client{Timeout: sendTimeout},
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		from:   address{Email: cfg.FromEmail, Name: cfg.FromName},
		logger: log,
	}
}

// Send delivers msg as a plain text email
func (s *HTTPSender) Send(ctx context.Context, msg models.EmailMessage) error {
	payload, err := json.Marshal(mailRequest{
		Personalizations: []personalization{{To: []address{{Email: msg.To}}}},
		From:             s.from,
		Subject:          msg.Subject,
		Content:          []content{{Type: "text/plain", Value: msg.Body}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return s.client.Do(req)
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	s.logger.Debug("Email sent",
		logger.String("provider", ProviderHTTP),
		logger.String("to", msg.To),
		logger.Int("status", resp.StatusCode))
	return nil
}
