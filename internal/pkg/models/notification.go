package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentNotificationEvent is published after a payment is completed
type PaymentNotificationEvent struct {
	Email      string          `json:"email"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// ReservationNotificationEvent is published after a reservation is confirmed
type ReservationNotificationEvent struct {
	Email      string    `json:"email"`
	SpotLabel  string    `json:"spot_label"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EmailMessage is a rendered message ready to send
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}
