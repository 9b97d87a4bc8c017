package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jny0444/crowdfund/internal/core/domain"
)

// Publisher sends ledger events to a durable queue as persistent JSON
// messages. The message type is the event kind and the message id is the
// event seq, so consumers can drop redeliveries.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// NewPublisher connects to url and declares queue.
func NewPublisher(url, queue string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logger.Info("rabbitmq publisher ready", slog.String("queue", queue))
	return &Publisher{conn: conn, channel: channel, queue: queue, logger: logger}, nil
}

// Publish implements port.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, e domain.Event) error {
	msg, err := newMessage(e)
	if err != nil {
		return err
	}
	if err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func newMessage(e domain.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    strconv.FormatInt(e.Seq, 10),
		Type:         string(e.Kind),
		Timestamp:    e.CreatedAt,
		Body:         body,
	}, nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.logger.Warn("close rabbitmq channel", slog.Any("error", err))
	}
	return p.conn.Close()
}
