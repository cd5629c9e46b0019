package nats

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/parkspot/internal/pkg/constants"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	natspkg "github.com/piresc/parkspot/internal/pkg/nats"
	"github.com/piresc/parkspot/services/notification/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsserver "github.com/nats-io/nats-server/v2/test"
)

var testNatsURL = "nats://127.0.0.1:8373"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8373
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func TestNotificationHandler_ConsumesEvents(t *testing.T) {
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockNotificationUC(ctrl)

	paid := make(chan models.PaymentNotificationEvent, 1)
	confirmed := make(chan models.ReservationNotificationEvent, 1)
	uc.EXPECT().NotifyPaymentCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e models.PaymentNotificationEvent) error {
			paid <- e
			return nil
		})
	uc.EXPECT().NotifyReservationConfirmed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e models.ReservationNotificationEvent) error {
			confirmed <- e
			return nil
		})

	h := NewNotificationHandler(uc, client, "notifier", logger.NewNop())
	require.NoError(t, h.InitNATSConsumers())
	defer h.Stop()
	require.NoError(t, client.Flush())

	data, _ := json.Marshal(models.PaymentNotificationEvent{Email: "ana@example.com", Amount: decimal.RequireFromString("20.00")})
	require.NoError(t, client.Publish(constants.SubjectPaymentCompleted, data))
	data, _ = json.Marshal(models.ReservationNotificationEvent{Email: "ana@example.com", SpotLabel: "EV-0001"})
	require.NoError(t, client.Publish(constants.SubjectReservationConfirmed, data))

	select {
	case e := <-paid:
		assert.Equal(t, "ana@example.com", e.Email)
	case <-time.After(2 * time.Second):
		t.Fatal("payment event not handled")
	}
	select {
	case e := <-confirmed:
		assert.Equal(t, "EV-0001", e.SpotLabel)
	case <-time.After(2 * time.Second):
		t.Fatal("reservation event not handled")
	}
}

func TestNotificationHandler_MalformedPayload(t *testing.T) {
	h := NewNotificationHandler(nil, nil, "", logger.NewNop())

	assert.Error(t, h.handlePaymentCompleted([]byte("{")))
	assert.Error(t, h.handleReservationConfirmed([]byte("not json")))
}

func TestNotificationHandler_StopUnsubscribes(t *testing.T) {
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()

	h := NewNotificationHandler(nil, client, "", logger.NewNop())
	require.NoError(t, h.InitNATSConsumers())
	consumers := h.consumers
	require.Len(t, consumers, 2)

	h.Stop()

	for _, c := range consumers {
		assert.False(t, c.IsActive())
	}
}
