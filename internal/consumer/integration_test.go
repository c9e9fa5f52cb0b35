//go:build integration

package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/mock/gomock"

	"feedhub/internal/consumer/mocks"
	"feedhub/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

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

func (s *RabbitMQIntegrationSuite) publish(cfg Config, body []byte) {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	err = ch.PublishWithContext(s.ctx, cfg.Exchange, cfg.RoutingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    time.Now(),
	})
	s.Require().NoError(err)
}

// queueDepth reports how many ready messages remain in the queue.
func (s *RabbitMQIntegrationSuite) queueDepth(name string) int {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	q, err := ch.QueueDeclarePassive(name, true, false, false, false, nil)
	s.Require().NoError(err)
	return q.Messages
}

func (s *RabbitMQIntegrationSuite) start(cfg Config, importer Importer) context.CancelFunc {
	ctx, cancel := context.WithCancel(s.ctx)
	c := New(cfg, importer, zerolog.Nop())
	go func() { _ = c.Run(ctx) }()

	// wait for the topology so published messages are routed
	s.Eventually(func() bool {
		conn, err := amqp.Dial(s.amqpURL)
		if err != nil {
			return false
		}
		defer conn.Close()
		ch, err := conn.Channel()
		if err != nil {
			return false
		}
		defer ch.Close()
		q, err := ch.QueueDeclarePassive(cfg.QueueName, true, false, false, false, nil)
		return err == nil && q.Consumers > 0
	}, 10*time.Second, 100*time.Millisecond)

	return cancel
}

func (s *RabbitMQIntegrationSuite) TestConsumer_ImportsPublishedArticle() {
	ctrl := gomock.NewController(s.T())
	importer := mocks.NewMockImporter(ctrl)

	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "articles",
		RoutingKey: "articles",
		QueueName:  "cms_articles_import",
		Prefetch:   1,
	}

	received := make(chan *domain.Article, 1)
	importer.EXPECT().ImportArticle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) (domain.UpsertOutcome, error) {
			received <- a
			return domain.UpsertInserted, nil
		},
	)

	cancel := s.start(cfg, importer)
	defer cancel()

	body, err := json.Marshal(ArticleMessage{
		Action: "create",
		Article: UpstreamArticle{
			SourceID:     "ecb",
			ExternalID:   42,
			Title:        "Integration article",
			PublishedAt:  time.Now().UTC(),
			LastModified: time.Now().UTC(),
		},
		Timestamp: time.Now().UTC(),
	})
	s.Require().NoError(err)
	s.publish(cfg, body)

	select {
	case a := <-received:
		s.Equal("Integration article", a.Title)
		s.Equal(int64(42), *a.ExternalID)
	case <-time.After(10 * time.Second):
		s.Fail("timeout waiting for import")
	}

	s.Eventually(func() bool { return s.queueDepth(cfg.QueueName) == 0 }, 5*time.Second, 100*time.Millisecond)
}

func (s *RabbitMQIntegrationSuite) TestConsumer_RejectsPoisonMessage() {
	ctrl := gomock.NewController(s.T())
	importer := mocks.NewMockImporter(ctrl)

	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "articles_poison",
		RoutingKey: "articles",
		QueueName:  "cms_articles_poison",
		Prefetch:   1,
	}

	cancel := s.start(cfg, importer)
	defer cancel()

	s.publish(cfg, []byte("not json"))

	s.Eventually(func() bool { return s.queueDepth(cfg.QueueName) == 0 }, 5*time.Second, 100*time.Millisecond)
}
