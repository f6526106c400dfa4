package events

import (
	"context"
	"fmt"
	"time"

	"financial-dashboard/internal/finance"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the subset of *amqp091.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher emits ledger events to a topic exchange. A nil *Publisher is
// valid and publishes nothing.
type Publisher struct {
	conn       *amqp091.Connection
	channel    channel
	exchange   string
	routingKey string
	log        *zap.Logger
}

// NewPublisher dials url and declares a durable topic exchange.
func NewPublisher(url, exchange, routingKey string, log *zap.Logger) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := newPublisher(ch, exchange, routingKey, log)
	p.conn = conn

	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange: %w", err)
	}

	return p, nil
}

func newPublisher(ch channel, exchange, routingKey string, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{
		channel:    ch,
		exchange:   exchange,
		routingKey: routingKey,
		log:        log,
	}
}

func (p *Publisher) setup() error {
	return p.channel.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
}

// PublishTransactionRecorded publishes a TransactionRecorded message for t.
func (p *Publisher) PublishTransactionRecorded(ctx context.Context, t finance.Transaction) error {
	if p == nil {
		return nil
	}

	body, err := NewTransactionRecorded(t).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,   // exchange
		p.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	p.log.Info("published transaction event",
		zap.Int64("id", t.ID),
		zap.String("exchange", p.exchange),
		zap.String("routing_key", p.routingKey),
	)
	return nil
}

// Hook adapts the publisher to finance.WithRecordHook. Publish failures
// are logged and never fail the recorded transaction.
func (p *Publisher) Hook() finance.RecordHook {
	return func(ctx context.Context, t finance.Transaction) {
		if err := p.PublishTransactionRecorded(ctx, t); err != nil {
			p.log.Error("failed to publish transaction event", zap.Int64("id", t.ID), zap.Error(err))
		}
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
