package amqp

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

type MessageHandler interface {
	Handle(ctx context.Context, delivery *amqp.Delivery)
}

type Consumer struct {
	client   *Client
	handler  MessageHandler
	prefetch int
}

// NewConsumer creates a consumer letting at most prefetch unacknowledged
// deliveries in flight.
func NewConsumer(client *Client, handler MessageHandler, prefetch int) *Consumer {
	if prefetch < 1 {
		prefetch = 1
	}
	return &Consumer{
		client:   client,
		handler:  handler,
		prefetch: prefetch,
	}
}

// Consume registers on queueName and dispatches deliveries to the handler
// until ctx is cancelled or the delivery channel closes.
func (c *Consumer) Consume(ctx context.Context, queueName string) error {
	ch := c.client.Channel()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := ch.Consume(
		queueName,
		"",    // consumer tag (auto-generated)
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.WithFields(log.Fields{
		"queue":    queueName,
		"prefetch": c.prefetch,
	}).Info("Started consuming messages")

	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info("Consumer stopped due to context cancellation")
				return
			case msg, ok := <-msgs:
				if !ok {
					log.Warn("Message channel closed")
					return
				}
				log.WithFields(log.Fields{
					"routingKey": msg.RoutingKey,
					"messageId":  msg.MessageId,
				}).Debug("Processing message")
				c.handler.Handle(ctx, &msg)
			}
		}
	}()

	return nil
}
