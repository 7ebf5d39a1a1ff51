package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"newsdesk/internal/domain"
)

// RabbitMQ announces post lifecycle changes on a direct exchange.
// Consumers such as the website cache read them from the bound queue.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

// Config names the post event topology. The queue is declared and bound so events
// published before the first consumer connects are kept.
type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// NewRabbitMQ dials the broker and declares the durable post event topology.
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

	if err := declarePostTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger = logger.With("component", "post_events")
	logger.Info("post event exchange ready",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

func declarePostTopology(ch *amqp.Channel, cfg Config) error {
	const (
		durable    = true
		autoDelete = false
		internal   = false
		exclusive  = false
		noWait     = false
	)

	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, durable, autoDelete, internal, noWait, nil); err != nil {
		return fmt.Errorf("declare exchange %q: %w", cfg.Exchange, err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, durable, autoDelete, exclusive, noWait, nil)
	if err != nil {
		return fmt.Errorf("declare queue %q: %w", cfg.QueueName, err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, noWait, nil); err != nil {
		return fmt.Errorf("bind queue %q to %q: %w", q.Name, cfg.Exchange, err)
	}
	return nil
}

// PostMessage is the body of every message put on the exchange.
type PostMessage struct {
	Action    domain.PostAction `json:"action"`
	Post      domain.Post       `json:"post"`
	Timestamp time.Time         `json:"timestamp"`
}

// Publish announces a post lifecycle change to downstream consumers such as the website cache.
func (r *RabbitMQ) Publish(ctx context.Context, post *domain.Post, action domain.PostAction) error {
	msg := PostMessage{
		Action:    action,
		Post:      *post,
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
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
			Type:         string(action),
			MessageId:    post.ID.String(),
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published post event",
		"post_id", post.ID,
		"action", action,
	)

	return nil
}

// Close releases the channel and the connection.
func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
