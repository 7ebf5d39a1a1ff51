//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"newsdesk/internal/domain"
	"newsdesk/testdata/utils"
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

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) newPost(title string) *domain.Post {
	return &domain.Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   "Body of " + title,
		Excerpt:   domain.Excerpt("Body of " + title),
		ImageURL:  "https://example.com/image.jpg",
		Status:    domain.PostStatusDraft,
		Language:  "uz",
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishCreated() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-create",
		RoutingKey: "test-routing-key-create",
		QueueName:  "test-queue-create",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	post := s.newPost("Lab Opening")

	err = pub.Publish(s.ctx, post, domain.PostActionCreated)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received PostMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(domain.PostActionCreated, received.Action)
	s.Equal(post.ID, received.Post.ID)
	s.Equal("Lab Opening", received.Post.Title)
	s.Equal(domain.PostStatusDraft, received.Post.Status)
	s.Nil(received.Post.PublishedAt)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishPublished() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-publish",
		RoutingKey: "test-routing-key-publish",
		QueueName:  "test-queue-publish",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	post := s.newPost("Graduation")
	post.Status = domain.PostStatusPublished
	post.PublishedAt = utils.Ptr(time.Now().UTC().Truncate(time.Millisecond))

	err = pub.Publish(s.ctx, post, domain.PostActionPublished)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received PostMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(domain.PostActionPublished, received.Action)
	s.Equal(domain.PostStatusPublished, received.Post.Status)
	s.Require().NotNil(received.Post.PublishedAt)
	s.True(post.PublishedAt.Equal(*received.Post.PublishedAt))
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessageProperties() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-format",
		RoutingKey: "test-routing-key-format",
		QueueName:  "test-queue-format",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	post := s.newPost("Properties")

	err = pub.Publish(s.ctx, post, domain.PostActionCreated)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal("created", msg.Type)
	s.Equal(post.ID.String(), msg.MessageId)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
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
func (s *RabbitMQIntegrationSuite) TestPublisher_ConflictingExchangeIsReported() {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	s.Require().NoError(ch.ExchangeDeclare("test-exchange-fanout", amqp.ExchangeFanout, true, false, false, false, nil))
	ch.Close()

	pub, err := NewRabbitMQ(Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-fanout",
		RoutingKey: "posts",
		QueueName:  "test-queue-fanout",
	}, s.logger)
	s.Nil(pub)
	s.ErrorContains(err, `declare exchange "test-exchange-fanout"`)
}
