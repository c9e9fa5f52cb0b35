package consumer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"feedhub/internal/domain"
)

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
	Prefetch   int
}

// Consumer imports articles from the fetcher queue until its context ends.
type Consumer struct {
	cfg      Config
	importer Importer
	logger   zerolog.Logger
}

func New(cfg Config, importer Importer, logger zerolog.Logger) *Consumer {
	return &Consumer{
		cfg:      cfg,
		importer: importer,
		logger:   logger.With().Str("component", "consumer").Str("queue", cfg.QueueName).Logger(),
	}
}

// Run consumes and reconnects with exponential backoff whenever the broker
// connection drops. It returns nil once ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0

	for {
		connected, err := c.consume(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if connected {
			b.Reset()
		}

		wait := b.NextBackOff()
		c.logger.Warn().Err(err).Dur("retry_in", wait).Msg("consumer disconnected")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

// consume runs one connection lifetime. connected reports whether the
// topology was set up and deliveries started.
func (c *Consumer) consume(ctx context.Context) (connected bool, err error) {
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return false, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return false, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := c.declare(ch); err != nil {
		return false, err
	}

	if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		return false, fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.Consume(
		c.cfg.QueueName,
		"feedhub",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return false, fmt.Errorf("start consuming: %w", err)
	}

	c.logger.Info().
		Str("exchange", c.cfg.Exchange).
		Str("routing_key", c.cfg.RoutingKey).
		Msg("consuming articles")

	for {
		select {
		case <-ctx.Done():
			return true, nil
		case d, ok := <-deliveries:
			if !ok {
				return true, errors.New("delivery channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) declare(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(
		c.cfg.Exchange,
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
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, c.cfg.RoutingKey, c.cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// handle settles one delivery: ack on success, reject poison, requeue the rest.
func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	err := c.process(ctx, d.Body)

	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			c.logger.Error().Err(ackErr).Msg("ack failed")
		}
	case errors.Is(err, errPoison), errors.Is(err, domain.ErrValidation):
		c.logger.Error().Err(err).Uint64("delivery_tag", d.DeliveryTag).Msg("rejecting message")
		if rejErr := d.Reject(false); rejErr != nil {
			c.logger.Error().Err(rejErr).Msg("reject failed")
		}
	default:
		c.logger.Warn().Err(err).Uint64("delivery_tag", d.DeliveryTag).Msg("import failed, requeueing")
		if nackErr := d.Nack(false, true); nackErr != nil {
			c.logger.Error().Err(nackErr).Msg("nack failed")
		}
	}
}

func (c *Consumer) process(ctx context.Context, body []byte) error {
	msg, err := decodeMessage(body)
	if err != nil {
		return err
	}

	article := msg.toDomain()
	outcome, err := c.importer.ImportArticle(ctx, article)
	if err != nil {
		return err
	}

	c.logger.Debug().
		Str("action", msg.Action).
		Str("source_id", article.SourceID).
		Int64("external_id", msg.Article.ExternalID).
		Stringer("outcome", outcome).
		Msg("article processed")
	return nil
}
