package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/parkspot/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject
type Consumer struct {
	subject      string
	subscription *nats.Subscription
}

// NewConsumer subscribes handler to subject. With a non-empty queueGroup the
// subscription joins that queue group.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler, log *logger.ZapLogger) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	cb := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			log.Error("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		sub *nats.Subscription
		err error
	)
	if queueGroup != "" {
		sub, err = client.QueueSubscribe(subject, queueGroup, cb)
	} else {
		sub, err = client.Subscribe(subject, cb)
	}
	if err != nil {
		return nil, err
	}

	log.Info("Subscribed to subject",
		logger.String("subject", subject),
		logger.String("queue_group", queueGroup))

	return &Consumer{subject: subject, subscription: sub}, nil
}

// Subject returns the subscribed subject
func (c *Consumer) Subject() string {
	return c.subject
}

// IsActive reports whether the subscription is still valid
func (c *Consumer) IsActive() bool {
	return c.subscription != nil && c.subscription.IsValid()
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription == nil {
		return nil
	}
	err := c.subscription.Unsubscribe()
	c.subscription = nil
	return err
}
