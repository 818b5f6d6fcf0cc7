// internal/common/database/database_test.go
package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresClient_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client := &PostgresClient{DB: db}

	mock.ExpectPing()
	assert.NoError(t, client.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	err = client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres ping failed")

	mock.ExpectClose()
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPostgres(t *testing.T) {
	client, err := NewPostgres(config.PostgresConfig{
		Host:           "localhost",
		Port:           5432,
		Database:       "matcher",
		User:           "matcher",
		MaxConnections: 4,
		MaxIdle:        2,
		SSLMode:        "disable",
	})

	require.NoError(t, err)
	require.NotNil(t, client.DB)
	assert.Equal(t, 4, client.DB.Stats().MaxOpenConnections)
	assert.NoError(t, client.Close())
}

func TestRedisClient_Ping(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))

	mr.SetError("ERR server unavailable")
	err = client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}

func TestNewRedis_RequiresAddress(t *testing.T) {
	client, err := NewRedis(config.RedisConfig{})

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestRetryWithBackoff(t *testing.T) {
	log := logger.NewNoOpLogger()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		err := RetryWithBackoff(context.Background(), func() error {
			attempts++
			if attempts < 3 {
				return errors.New("not yet")
			}
			return nil
		}, 5, time.Millisecond, log, "test operation")

		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		attempts := 0
		err := RetryWithBackoff(context.Background(), func() error {
			attempts++
			return errors.New("still down")
		}, 3, time.Millisecond, log, "test operation")

		require.Error(t, err)
		assert.Equal(t, 3, attempts)
		assert.Contains(t, err.Error(), "failed after 3 attempts")
		assert.Contains(t, err.Error(), "still down")
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		attempts := 0
		err := RetryWithBackoff(ctx, func() error {
			attempts++
			return errors.New("down")
		}, 5, time.Second, log, "test operation")

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})
}

func TestConnectRedis(t *testing.T) {
	log := logger.NewNoOpLogger()
	backoff := Backoff{Attempts: 2, InitialDelay: time.Millisecond}

	t.Run("connects to a live server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := ConnectRedis(context.Background(), config.RedisConfig{Address: mr.Addr()}, backoff, log)
		require.NoError(t, err)
		defer client.Close()

		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("gives up when the server keeps failing", func(t *testing.T) {
		mr := miniredis.RunT(t)
		mr.SetError("ERR loading")

		client, err := ConnectRedis(context.Background(), config.RedisConfig{Address: mr.Addr()}, backoff, log)
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "Redis connection failed after 2 attempts")
	})

	t.Run("rejects missing address", func(t *testing.T) {
		_, err := ConnectRedis(context.Background(), config.RedisConfig{}, backoff, log)
		assert.Error(t, err)
	})
}
