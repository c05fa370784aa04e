package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"newsroom/internal/domain"
)

// ErrClosed is returned by Consume when the broker closes the delivery channel.
var ErrClosed = errors.New("delivery channel closed")

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	queue      string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// Handler processes one job. A returned error drops the message.
type Handler func(ctx context.Context, job domain.Job) error

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		queue:      cfg.QueueName,
		logger:     logger.With("component", "queue"),
	}, nil
}

func declare(ch *amqp.Channel, cfg Config) error {
	err := ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func (r *RabbitMQ) Enqueue(ctx context.Context, job domain.Job) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    job.RequestID,
			Type:         string(job.Type),
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish job: %w", err)
	}

	r.logger.Debug("published job", "type", job.Type, "request_id", job.RequestID)
	return nil
}

// Consume delivers jobs to handle one at a time until ctx is cancelled.
// Messages are acked after handle returns; failed or malformed jobs are
// rejected without requeue so a poisoned message cannot loop.
func (r *RabbitMQ) Consume(ctx context.Context, handle Handler) error {
	if err := r.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := r.channel.ConsumeWithContext(ctx, r.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", r.queue, err)
	}

	r.logger.Info("consuming jobs", "queue", r.queue)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return ErrClosed
			}
			r.deliver(ctx, d, handle)
		}
	}
}

func (r *RabbitMQ) deliver(ctx context.Context, d amqp.Delivery, handle Handler) {
	var job domain.Job
	if err := json.Unmarshal(d.Body, &job); err != nil {
		r.logger.Error("dropping malformed job", "error", err, "message_id", d.MessageId)
		_ = d.Nack(false, false)
		return
	}

	if err := handle(ctx, job); err != nil {
		r.logger.Error("job failed", "error", err, "type", job.Type, "request_id", job.RequestID)
		_ = d.Nack(false, false)
		return
	}

	if err := d.Ack(false); err != nil {
		r.logger.Warn("failed to ack job", "error", err, "request_id", job.RequestID)
	}
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
