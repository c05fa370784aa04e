//go:build integration

package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"newsroom/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) config(name string) Config {
	return Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-" + name,
		RoutingKey: "test-routing-key-" + name,
		QueueName:  "test-queue-" + name,
	}
}

func (s *RabbitMQIntegrationSuite) TestEnqueue_MessageFormat() {
	cfg := s.config("format")

	q, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer q.Close()

	requested := time.Now().UTC().Truncate(time.Millisecond)
	err = q.Enqueue(s.ctx, domain.Job{Type: domain.JobCollect, RequestID: "req-1", RequestedAt: requested})
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
	s.Equal("req-1", msg.MessageId)

	var received domain.Job
	s.NoError(json.Unmarshal(msg.Body, &received))
	s.Equal(domain.JobCollect, received.Type)
	s.True(requested.Equal(received.RequestedAt))
}

func (s *RabbitMQIntegrationSuite) TestConsume_HandlesJobs() {
	cfg := s.config("consume")

	q, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer q.Close()

	s.Require().NoError(q.Enqueue(s.ctx, domain.Job{Type: domain.JobTrend, RequestID: "bad"}))
	s.Require().NoError(q.Enqueue(s.ctx, domain.Job{Type: domain.JobCollect, RequestID: "good"}))

	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Second)
	defer cancel()

	var handled []string
	err = q.Consume(ctx, func(_ context.Context, job domain.Job) error {
		handled = append(handled, job.RequestID)
		if job.RequestID == "bad" {
			return errors.New("boom")
		}
		cancel()
		return nil
	})

	s.ErrorIs(err, context.Canceled)
	s.Equal([]string{"bad", "good"}, handled)

	// Both messages were settled: the failed one is not redelivered.
	ch, err := q.conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()
	info, err := ch.QueueDeclarePassive(cfg.QueueName, true, false, false, false, nil)
	s.Require().NoError(err)
	s.Equal(0, info.Messages)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
