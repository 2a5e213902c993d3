package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
	"github.com/ludo-authority/ludo-backend/internal/entity"
	"github.com/ludo-authority/ludo-backend/internal/repository"
)

// collidingRepo reports a taken id for the first collisions calls to Create.
type collidingRepo struct {
	repository.MatchRepository
	collisions int
	attempts   int
}

func (that *collidingRepo) Create(ctx context.Context, match *entity.Match) error {
	that.attempts++
	if that.attempts <= that.collisions {
		return fmt.Errorf("%w: %s", repository.ErrMatchExists, match.ID)
	}

	return that.MatchRepository.Create(ctx, match)
}

func TestMatchService_CreateMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates an empty match", func(t *testing.T) {
		matches := NewMatchService(repository.NewMemoryMatchRepository())

		match, err := matches.CreateMatch(ctx)

		require.NoError(t, err)
		assert.NotEmpty(t, match.ID)
		assert.Equal(t, entity.StatusCreated, match.Status())

		stored, err := matches.GetMatchByID(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, match, stored)
	})

	t.Run("Retries when the id is taken", func(t *testing.T) {
		repo := &collidingRepo{MatchRepository: repository.NewMemoryMatchRepository(), collisions: 2}

		match, err := NewMatchService(repo).CreateMatch(ctx)

		require.NoError(t, err)
		assert.NotNil(t, match)
		assert.Equal(t, 3, repo.attempts)
	})

	t.Run("Gives up after repeated collisions", func(t *testing.T) {
		repo := &collidingRepo{MatchRepository: repository.NewMemoryMatchRepository(), collisions: maxCreateAttempts}

		_, err := NewMatchService(repo).CreateMatch(ctx)

		assert.ErrorIs(t, err, ErrGameIDExhausted)
		assert.Equal(t, maxCreateAttempts, repo.attempts)
	})
}

func TestMatchService_GetMatchByID(t *testing.T) {
	_, err := NewMatchService(repository.NewMemoryMatchRepository()).GetMatchByID(context.Background(), "missing")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
