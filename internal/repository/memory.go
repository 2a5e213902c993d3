package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
	"github.com/ludo-authority/ludo-backend/internal/entity"
)

// memoryMatch keeps private copies, so callers never share state with the store.
type memoryMatch struct {
	mu      sync.RWMutex
	matches map[string]*entity.Match
}

func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatch{
		matches: make(map[string]*entity.Match),
	}
}

func (that *memoryMatch) Create(_ context.Context, match *entity.Match) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, exists := that.matches[match.ID]; exists {
		return fmt.Errorf("%w: %s", ErrMatchExists, match.ID)
	}

	that.matches[match.ID] = match.Clone()

	return nil
}

func (that *memoryMatch) CreateOrUpdate(_ context.Context, match *entity.Match) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[match.ID] = match.Clone()

	return nil
}

func (that *memoryMatch) GetByID(_ context.Context, id string) (*entity.Match, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	match, exists := that.matches[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNotFound, id)
	}

	return match.Clone(), nil
}
