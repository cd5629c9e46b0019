package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/piresc/parkspot/services/notification/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestNotificationUC(t *testing.T) (*NotificationUC, *mocks.MockEmailSender) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockEmailSender(ctrl)
	return NewNotificationUC(&models.Config{}, sender, logger.NewNop()).(*NotificationUC), sender
}

func TestNotifyPaymentCompleted(t *testing.T) {
	uc, sender := newTestNotificationUC(t)
	sender.EXPECT().Send(gomock.Any(), models.EmailMessage{
		To:      "ana@example.com",
		Subject: "Payment Successful",
		Body:    "We received 20.00 RON.",
	}).Return(nil)

	err := uc.NotifyPaymentCompleted(context.Background(), models.PaymentNotificationEvent{
		Email:  "ana@example.com",
		Amount: decimal.RequireFromString("20"),
	})

	assert.NoError(t, err)
}

func TestNotifyReservationConfirmed(t *testing.T) {
	uc, sender := newTestNotificationUC(t)
	sender.EXPECT().Send(gomock.Any(), models.EmailMessage{
		To:      "ana@example.com",
		Subject: "Reservation Confirmed",
		Body:    "Spot EV-0001 is yours.",
	}).Return(nil)

	err := uc.NotifyReservationConfirmed(context.Background(), models.ReservationNotificationEvent{
		Email:     "ana@example.com",
		SpotLabel: "EV-0001",
	})

	assert.NoError(t, err)
}

func TestNotify_SendFailure(t *testing.T) {
	uc, sender := newTestNotificationUC(t)
	boom := errors.New("circuit breaker is open")
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(boom)

	err := uc.NotifyReservationConfirmed(context.Background(), models.ReservationNotificationEvent{Email: "ana@example.com"})

	assert.ErrorIs(t, err, boom)
}

func TestNotify_MissingRecipient(t *testing.T) {
	uc, _ := newTestNotificationUC(t)

	assert.Error(t, uc.NotifyPaymentCompleted(context.Background(), models.PaymentNotificationEvent{}))
	assert.Error(t, uc.NotifyReservationConfirmed(context.Background(), models.ReservationNotificationEvent{}))
}
