package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/nickolaylk/TicTacToe-assignment/internal/repository/storage"
	"github.com/nickolaylk/TicTacToe-assignment/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		ctx, st := suite.New(t)

		client, err := storage.NewRedis(ctx, st.RedisAddr)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = client.Close()
		})

		assert.Equal(t, "PONG", client.Ping(ctx).Val())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		client, err := storage.NewRedis(ctx, "127.0.0.1:1")

		require.Error(t, err)
		assert.Nil(t, client)
	})
}
