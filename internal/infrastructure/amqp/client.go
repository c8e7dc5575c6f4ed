package amqp

import (
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// Client owns one RabbitMQ connection and the channel shared by the
// publisher and the consumer.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.RWMutex
	lost    chan struct{}
}

func NewClient(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	c := &Client{
		conn:    conn,
		channel: ch,
		lost:    make(chan struct{}),
	}
	go c.watch(conn.NotifyClose(make(chan *amqp.Error, 1)))

	log.Info("AMQP client connected successfully")
	return c, nil
}

// watch closes lost once the connection goes away. A nil error means the
// connection was closed on purpose.
func (c *Client) watch(closeErr <-chan *amqp.Error) {
	if err := <-closeErr; err != nil {
		log.Errorf("AMQP connection closed: %v", err)
	}
	close(c.lost)
}

// ConnectionLost is closed when the underlying connection closes.
func (c *Client) ConnectionLost() <-chan struct{} {
	return c.lost
}

// Channel returns the shared channel (prefer Publisher/Consumer)
func (c *Client) Channel() *amqp.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channel
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.channel != nil && !c.channel.IsClosed() {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil && !c.conn.IsClosed() {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	log.Info("AMQP client closed successfully")
	return nil
}
