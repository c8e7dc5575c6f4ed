package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"stoik.com/emailregistry/internal/core/domain"
	"stoik.com/emailregistry/internal/core/port"
)

const fraudJobTimeout = 5 * time.Minute

var errConsumerStopped = errors.New("consumer stopped")

type fraudDetectionJob struct {
	message domain.EmailBatchRegisteredMessage
}

// Acknowledger is the part of an amqp.Delivery the consumer settles.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type AMQPConsumer struct {
	fraudDetectionService port.FraudDetectionService
	validate              *validator.Validate
	jobQueue              chan fraudDetectionJob
	wg                    sync.WaitGroup
	numWorkers            int
	mu                    sync.RWMutex
	closed                bool
}

func NewAMQPConsumer(
	fraudDetectionService port.FraudDetectionService,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *AMQPConsumer {
	return &AMQPConsumer{
		fraudDetectionService: fraudDetectionService,
		validate:              validate,
		jobQueue:              make(chan fraudDetectionJob, queueSize),
		numWorkers:            numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *AMQPConsumer) Start(ctx context.Context) {
	for i := 0; i < c.numWorkers; i++ {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d fraud detection workers", c.numWorkers)
}

// Stop closes the job queue and waits for the workers to drain it, or for
// ctx to expire.
func (c *AMQPConsumer) Stop(ctx context.Context) {
	c.mu.Lock()
	c.closed = true
	close(c.jobQueue)
	c.mu.Unlock()

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All fraud detection workers stopped after drain")
	case <-ctx.Done():
		log.Warn("Fraud detection workers did not drain before shutdown deadline")
	}
}

func (c *AMQPConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[FraudWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Infof("[FraudWorker %d] Queue closed, stopping", workerID)
				return
			}
			jobCtx, cancel := context.WithTimeout(ctx, fraudJobTimeout)
			if err := c.fraudDetectionService.Run(jobCtx, job.message); err != nil {
				log.WithError(err).WithField("batchID", job.message.BatchID).Error("Fraud detection failed")
			}
			cancel()
		}
	}
}

func (c *AMQPConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	c.handle(ctx, delivery.RoutingKey, delivery.Body, delivery)
}

func (c *AMQPConsumer) handle(ctx context.Context, routingKey string, body []byte, ack Acknowledger) {
	var err error

	switch routingKey {
	case domain.RoutingKeyEmailBatchRegistered:
		err = c.handleEmailBatchRegisteredMessage(ctx, body)
	default:
		err = fmt.Errorf("unsupported routing key %s", routingKey)
		log.Error(err)
	}

	switch {
	case errors.Is(err, errConsumerStopped), errors.Is(err, context.Canceled):
		_ = ack.Nack(false, true) // redelivered to another consumer
	case err != nil:
		_ = ack.Nack(false, false) // dead-lettered
	default:
		_ = ack.Ack(false)
	}
}

func (c *AMQPConsumer) handleEmailBatchRegisteredMessage(ctx context.Context, body []byte) error {
	var batchMessage domain.EmailBatchRegisteredMessage

	if err := json.Unmarshal(body, &batchMessage); err != nil {
		log.Errorf("failed to unmarshal email batch message: %v", err)
		return err
	}

	if err := c.validate.Struct(batchMessage); err != nil {
		log.Errorf("email batch message validation failed: %v", err)
		return err
	}

	log.WithFields(log.Fields{
		"batchID":      batchMessage.BatchID,
		"emailCount":   len(batchMessage.EmailIDList),
		"registeredAt": batchMessage.RegisteredAt,
	}).Info("Received email batch for fraud detection")

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errConsumerStopped
	}

	// Blocks when the queue is full, which applies backpressure to the broker.
	select {
	case c.jobQueue <- fraudDetectionJob{message: batchMessage}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
