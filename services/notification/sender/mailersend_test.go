package sender

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mailerSendEmailURL = `=~^https://api\.mailersend\.com/v1/email`

func newTestMailerSendSender(t *testing.T) *MailerSendSender {
	s := NewMailerSendSender(models.NotificationConfig{
		APIKey:    "mlsn.test",
		FromEmail: "no-reply@parkspot.example",
		FromName:  "Parkspot",
	}, logger.NewNop())

	hc := &http.Client{}
	s.client.SetClient(hc)
	httpmock.ActivateNonDefault(hc)
	t.Cleanup(httpmock.DeactivateAndReset)
	return s
}

func TestMailerSendSender_Send(t *testing.T) {
	s := newTestMailerSendSender(t)

	httpmock.RegisterResponder(http.MethodPost, mailerSendEmailURL, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer mlsn.test", req.Header.Get("Authorization"))
		resp := httpmock.NewStringResponse(http.StatusAccepted, "")
		resp.Header.Set("X-Message-Id", "msg-1")
		return resp, nil
	})

	err := s.Send(context.Background(), models.EmailMessage{
		To:      "ana@example.com",
		Subject: "Reservation Confirmed",
		Body:    "Spot EV-0001 is yours.",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestMailerSendSender_Rejected(t *testing.T) {
	s := newTestMailerSendSender(t)
	httpmock.RegisterResponder(http.MethodPost, mailerSendEmailURL,
		httpmock.NewStringResponder(http.StatusUnprocessableEntity, `{"message":"The to.0.email must be a valid email address."}`))

	err := s.Send(context.Background(), models.EmailMessage{To: "nope"})

	assert.Error(t, err)
}
