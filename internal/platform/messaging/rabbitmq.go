package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	portssvc "github.com/KamilKvasnicka/player-wallet/internal/core/ports/services"
)

// RabbitMQBus publishes and consumes JSON messages over durable RabbitMQ
// queues. Messages are persistent so committed wallet updates survive a
// broker restart.
type RabbitMQBus struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
}

// NewRabbitMQBus dials the broker and opens a channel.
func NewRabbitMQBus(url string, logger *slog.Logger) (*RabbitMQBus, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	return &RabbitMQBus{conn: conn, channel: channel, logger: logger}, nil
}

// Ensure RabbitMQBus implements portssvc.MessageBus
var _ portssvc.MessageBus = (*RabbitMQBus)(nil)

func (b *RabbitMQBus) declareQueue(queue string) error {
	_, err := b.channel.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return nil
}

// Publish serializes message as JSON and sends it to the named queue.
func (b *RabbitMQBus) Publish(ctx context.Context, queue string, message any) error {
	if err := b.declareQueue(queue); err != nil {
		return err
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message for queue %s: %w", queue, err)
	}

	err = b.channel.PublishWithContext(ctx,
		"",    // default exchange
		queue, // routing key is the queue name
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", queue, err)
	}
	return nil
}

// Subscribe consumes the named queue and feeds each delivery to handler.
// Deliveries are acked only after the handler returns nil; failures are
// requeued once via nack. The consumer loop stops when ctx is cancelled.
func (b *RabbitMQBus) Subscribe(ctx context.Context, queue string, handler func(ctx context.Context, body []byte) error) error {
	if err := b.declareQueue(queue); err != nil {
		return err
	}

	deliveries, err := b.channel.Consume(
		queue,
		"",    // consumer tag, server generated
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume queue %s: %w", queue, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				if err := handler(ctx, delivery.Body); err != nil {
					b.logger.Error("Message handler failed", slog.String("queue", queue), slog.String("error", err.Error()))
					_ = delivery.Nack(false, !delivery.Redelivered)
					continue
				}
				_ = delivery.Ack(false)
			}
		}
	}()

	return nil
}

// Close shuts down the channel and connection.
func (b *RabbitMQBus) Close() error {
	if err := b.channel.Close(); err != nil {
		b.conn.Close()
		return fmt.Errorf("failed to close rabbitmq channel: %w", err)
	}
	return b.conn.Close()
}
