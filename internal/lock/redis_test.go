//go:build integration
// +build integration

package lock

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisLockerTestSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	client   *redis.Client
}

func (suite *RedisLockerTestSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	suite.Require().NoError(err)
	pool.MaxWait = 60 * time.Second

	resource, err := pool.Run("redis", "7-alpine", nil)
	suite.Require().NoError(err)
	suite.pool, suite.resource = pool, resource

	url := fmt.Sprintf("redis://localhost:%s/0", resource.GetPort("6379/tcp"))
	suite.Require().NoError(pool.Retry(func() error {
		client, err := NewRedisClient(context.Background(), url)
		if err != nil {
			return err
		}
		suite.client = client
		return nil
	}))
}

func (suite *RedisLockerTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.pool != nil && suite.resource != nil {
		_ = suite.pool.Purge(suite.resource)
	}
}

func (suite *RedisLockerTestSuite) TestLockAndRelease() {
	l := NewRedisLocker(suite.client, time.Second)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "teams")
	suite.Require().NoError(err)

	waitCtx, cancel := context.WithTimeout(ctx, 150*time.Millisecond)
	defer cancel()
	_, err = l.Lock(waitCtx, "teams")
	suite.ErrorIs(err, apperrors.ErrLockNotAcquired)

	unlock()
	n, err := suite.client.Exists(ctx, keyPrefix+"teams").Result()
	suite.Require().NoError(err)
	suite.Equal(int64(0), n)

	again, err := l.Lock(ctx, "teams")
	suite.Require().NoError(err)
	again()
}

func (suite *RedisLockerTestSuite) TestReleaseKeepsForeignToken() {
	l := NewRedisLocker(suite.client, 100*time.Millisecond)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "expiring")
	suite.Require().NoError(err)
	time.Sleep(200 * time.Millisecond)

	other, err := l.Lock(ctx, "expiring")
	suite.Require().NoError(err)
	defer other()

	unlock()
	n, err := suite.client.Exists(ctx, keyPrefix+"expiring").Result()
	suite.Require().NoError(err)
	suite.Equal(int64(1), n, "stale holder must not delete the new holder's key")
}

func TestRedisLockerTestSuite(t *testing.T) {
	if os.Getenv("SKIP_DOCKER_TESTS") != "" {
		t.Skip("docker tests disabled")
	}
	suite.Run(t, new(RedisLockerTestSuite))
}
