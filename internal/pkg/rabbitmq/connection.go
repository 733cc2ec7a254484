package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dinner-service/pkg/logger"
	retrierconfig "dinner-service/pkg/retrier"
	"dinner-service/pkg/retrier/backoff_adapter"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 10 * time.Second
	maxElapsedTime  = 1 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

var ErrConnectionClosed = errors.New("rabbitmq connection is closed")

// Channel то подмножество *amqp.Channel, которым пользуются паблишеры
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Connection struct {
	log  logger.Logger
	url  string
	mu   sync.RWMutex
	conn *amqp.Connection
}

func Connect(ctx context.Context, log logger.Logger, url string) (*Connection, error) {
	c := &Connection{
		log: log,
		url: url,
	}

	if err := c.dial(ctx); err != nil {
		return nil, fmt.Errorf("rabbitmq connection: %w", err)
	}
	return c, nil
}

// Channel открывает канал, при разорванном соединении один раз переподключается
func (c *Connection) Channel() (Channel, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return nil, ErrConnectionClosed
	}

	if conn.IsClosed() {
		c.log.Warn("rabbitmq connection lost, reconnecting")
		if err := c.dial(context.Background()); err != nil {
			return nil, fmt.Errorf("reconnect: %w", err)
		}
		c.mu.RLock()
		conn = c.conn
		c.mu.RUnlock()
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return ch, nil
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		c.conn = nil
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Connection) dial(ctx context.Context) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		c.log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting RabbitMQ connection")

		conn, err := amqp.Dial(c.url)
		if err != nil {
			return err
		}

		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()
		return nil
	})
	if err != nil {
		c.log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("RabbitMQ connection failed after retries")
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	c.log.With(
		logger.NewField("attempts", attempt),
	).Info("RabbitMQ connection established")
	return nil
}
