package amqp

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"stoik.com/emailregistry/internal/core/domain"
)

const (
	EmailDeadLetterExchange = "email.dlx"
	EmailDeadLetterQueue    = "email.analysis.dead"
)

// TopologyManager handles the declaration of exchanges, queues, and bindings
type TopologyManager struct {
	client *Client
}

func NewTopologyManager(client *Client) *TopologyManager {
	return &TopologyManager{
		client: client,
	}
}

// Setup declares the email exchange, the analysis queue bound to registered
// batches, and the dead letter queue receiving nacked messages.
func (t *TopologyManager) Setup() error {
	ch := t.client.Channel()

	if err := t.declareExchange(ch, domain.EmailExchange, "topic"); err != nil {
		return err
	}
	if err := t.declareExchange(ch, EmailDeadLetterExchange, "fanout"); err != nil {
		return err
	}

	if err := t.declareQueue(ch, EmailDeadLetterQueue, nil); err != nil {
		return err
	}
	if err := t.bindQueue(ch, EmailDeadLetterQueue, EmailDeadLetterExchange, ""); err != nil {
		return err
	}

	if err := t.declareQueue(ch, domain.EmailAnalysisQueue, amqp.Table{
		"x-dead-letter-exchange": EmailDeadLetterExchange,
	}); err != nil {
		return err
	}
	if err := t.bindQueue(ch, domain.EmailAnalysisQueue, domain.EmailExchange, domain.RoutingKeyEmailBatchRegistered); err != nil {
		return err
	}

	log.Info("AMQP topology setup completed successfully")
	return nil
}

func (t *TopologyManager) declareExchange(ch *amqp.Channel, name, kind string) error {
	err := ch.ExchangeDeclare(
		name,
		kind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange '%s': %w", name, err)
	}

	log.WithField("exchange", name).Debug("Exchange declared")
	return nil
}

func (t *TopologyManager) declareQueue(ch *amqp.Channel, name string, args amqp.Table) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		args,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", name, err)
	}

	log.WithField("queue", name).Debug("Queue declared")
	return nil
}

func (t *TopologyManager) bindQueue(ch *amqp.Channel, queueName, exchangeName, routingKey string) error {
	err := ch.QueueBind(
		queueName,
		routingKey,
		exchangeName,
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue '%s' to exchange '%s' with routing key '%s': %w",
			queueName, exchangeName, routingKey, err)
	}

	log.WithFields(log.Fields{
		"queue":      queueName,
		"exchange":   exchangeName,
		"routingKey": routingKey,
	}).Debug("Queue bound to exchange")
	return nil
}
