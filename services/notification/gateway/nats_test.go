package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/piresc/parkspot/internal/pkg/constants"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	natspkg "github.com/piresc/parkspot/internal/pkg/nats"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsserver "github.com/nats-io/nats-server/v2/test"
)

var testNatsURL = "nats://127.0.0.1:8372"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8372
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func testConfig() *models.Config {
	return &models.Config{Notification: models.NotificationConfig{
		RetryAttempts: 3,
		RetryBackoff:  time.Millisecond,
	}}
}

func receive(t *testing.T, ch <-chan *nats.Msg) *nats.Msg {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
		return nil
	}
}

func TestSendPaymentConfirmation(t *testing.T) {
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()

	msgCh := make(chan *nats.Msg, 1)
	sub, err := client.Subscribe(constants.SubjectPaymentCompleted, func(msg *nats.Msg) { msgCh <- msg })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	notifier := NewNATSNotifier(testConfig(), client, logger.NewNop())
	require.NoError(t, notifier.SendPaymentConfirmation(context.Background(), "ana@example.com", decimal.RequireFromString("20.00")))

	var event models.PaymentNotificationEvent
	require.NoError(t, json.Unmarshal(receive(t, msgCh).Data, &event))
	assert.Equal(t, "ana@example.com", event.Email)
	assert.True(t, decimal.RequireFromString("20").Equal(event.Amount))
	assert.False(t, event.OccurredAt.IsZero())
}

func TestSendReservationConfirmation(t *testing.T) {
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()

	msgCh := make(chan *nats.Msg, 1)
	sub, err := client.Subscribe(constants.SubjectReservationConfirmed, func(msg *nats.Msg) { msgCh <- msg })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	notifier := NewNATSNotifier(testConfig(), client, logger.NewNop())
	require.NoError(t, notifier.SendReservationConfirmation(context.Background(), "ana@example.com", "EV-0001"))

	var event models.ReservationNotificationEvent
	require.NoError(t, json.Unmarshal(receive(t, msgCh).Data, &event))
	assert.Equal(t, "EV-0001", event.SpotLabel)
}

func TestSendPaymentConfirmation_ClosedConnectionExhaustsRetries(t *testing.T) {
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	client.Close()

	notifier := NewNATSNotifier(testConfig(), client, logger.NewNop())
	err = notifier.SendPaymentConfirmation(context.Background(), "ana@example.com", decimal.RequireFromString("5.00"))

	require.Error(t, err)
	assert.ErrorIs(t, err, nats.ErrConnectionClosed)
	assert.Contains(t, err.Error(), "retry limit exceeded after 3 attempts")
}

func TestNewNATSNotifier_Defaults(t *testing.T) {
	n := NewNATSNotifier(&models.Config{}, nil, logger.NewNop()).(*NATSNotifier)
	assert.NotNil(t, n.retrier)
}
