package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// Publisher delivers notification events to an external broker.
type Publisher interface {
	Publish(ctx context.Context, notification *model.Notification) error
	Close() error
}

// event is the wire format for published notifications.
type event struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	ReferenceID int64     `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AMQPPublisher publishes notification events to a RabbitMQ queue.
type AMQPPublisher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
	logger    *slog.Logger
}

// NewAMQPPublisher dials the broker and declares a durable queue.
func NewAMQPPublisher(brokerURL, queueName string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(brokerURL)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queueName, err)
	}

	return &AMQPPublisher{
		conn:      conn,
		channel:   channel,
		queueName: queueName,
		logger:    logger,
	}, nil
}

// Publish sends one notification as a persistent JSON message.
func (p *AMQPPublisher) Publish(ctx context.Context, notification *model.Notification) error {
	body, err := json.Marshal(event{
		ID:          notification.ID,
		UserID:      notification.UserID,
		Type:        string(notification.Type),
		Title:       notification.Title,
		Message:     notification.Message,
		ReferenceID: notification.ReferenceID,
		CreatedAt:   notification.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",          // default exchange
		p.queueName, // routing key
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("publish notification %d: %w", notification.ID, err)
	}

	p.logger.Debug("published notification",
		slog.Int64("notification_id", notification.ID),
		slog.String("queue", p.queueName))

	return nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NoopPublisher is used when no broker is configured. Notifications are
// still marked published so the outbox does not grow without bound.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(_ context.Context, notification *model.Notification) error {
	p.logger.Debug("event publishing disabled, dropping notification",
		slog.Int64("notification_id", notification.ID))
	return nil
}

func (p *NoopPublisher) Close() error { return nil }
