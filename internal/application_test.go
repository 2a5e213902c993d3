package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-authority/ludo-backend/internal/config"
)

func TestNewMatchRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory storage", func(t *testing.T) {
		repo, closeStorage, err := newMatchRepository(ctx, &config.Config{Storage: config.StorageMemory})

		require.NoError(t, err)
		assert.NotNil(t, repo)
		closeStorage()
	})

	t.Run("Redis storage without an address", func(t *testing.T) {
		_, _, err := newMatchRepository(ctx, &config.Config{Storage: config.StorageRedis})

		assert.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Unknown storage", func(t *testing.T) {
		_, _, err := newMatchRepository(ctx, &config.Config{Storage: "sqlite"})

		assert.ErrorIs(t, err, ErrUnknownStorage)
	})
}
