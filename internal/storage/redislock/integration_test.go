//go:build integration

package redislock

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisLockIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container testcontainers.Container
	client    *redis.Client
}

func (s *RedisLockIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	endpoint, err := container.Endpoint(s.ctx, "")
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{Addr: endpoint})
	s.Require().NoError(s.client.Ping(s.ctx).Err())
}

func (s *RedisLockIntegrationSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisLockIntegrationSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(s.ctx).Err())
}

func TestRedisLockIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RedisLockIntegrationSuite))
}

func (s *RedisLockIntegrationSuite) TestSingleHolder() {
	locker := New(s.client, time.Minute)

	release, ok, err := locker.TryLock(s.ctx, "reconcile")
	s.Require().NoError(err)
	s.Require().True(ok)

	_, ok, err = locker.TryLock(s.ctx, "reconcile")
	s.NoError(err)
	s.False(ok)

	release()

	again, ok, err := locker.TryLock(s.ctx, "reconcile")
	s.NoError(err)
	s.True(ok)
	again()
}

func (s *RedisLockIntegrationSuite) TestExpiredLockIsNotReleasedByFormerHolder() {
	locker := New(s.client, 200*time.Millisecond)

	stale, ok, err := locker.TryLock(s.ctx, "reconcile")
	s.Require().NoError(err)
	s.Require().True(ok)

	s.Eventually(func() bool {
		n, err := s.client.Exists(s.ctx, keyPrefix+"reconcile").Result()
		return err == nil && n == 0
	}, 5*time.Second, 50*time.Millisecond)

	current, ok, err := New(s.client, time.Minute).TryLock(s.ctx, "reconcile")
	s.Require().NoError(err)
	s.Require().True(ok)

	stale()

	n, err := s.client.Exists(s.ctx, keyPrefix+"reconcile").Result()
	s.NoError(err)
	s.Equal(int64(1), n)

	current()
}
