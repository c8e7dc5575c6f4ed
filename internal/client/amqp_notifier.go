package client

import (
	"context"

	"stoik.com/emailregistry/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifySuspectingFraudulentEmail(ctx context.Context, message *domain.SuspectingFraudulentEmailMessage) error {
	return n.publisher.Publish(ctx, domain.EmailExchange, domain.RoutingKeyFraudulentDetected, message)
}

func (n *AMQPNotifier) NotifyEmailBatchRegistered(ctx context.Context, message *domain.EmailBatchRegisteredMessage) error {
	return n.publisher.Publish(ctx, domain.EmailExchange, domain.RoutingKeyEmailBatchRegistered, message)
}
