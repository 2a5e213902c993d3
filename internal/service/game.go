package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ludo-authority/ludo-backend/internal/entity"
	"github.com/ludo-authority/ludo-backend/internal/pkg"
	"github.com/ludo-authority/ludo-backend/internal/repository"
)

const maxCreateAttempts = 5

var ErrGameIDExhausted = errors.New("could not allocate a unique game id")

type MatchService interface {
	CreateMatch(ctx context.Context) (*entity.Match, error)
	GetMatchByID(ctx context.Context, id string) (*entity.Match, error)
	UpdateMatch(ctx context.Context, match *entity.Match) error
}

type matchRepo interface {
	Create(ctx context.Context, match *entity.Match) error
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
}

type matchService struct {
	matchRepo matchRepo
}

func NewMatchService(matchRepo matchRepo) MatchService {
	return &matchService{
		matchRepo: matchRepo,
	}
}

func (that *matchService) CreateMatch(ctx context.Context) (*entity.Match, error) {
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		matchID, err := pkg.GenerateGameID()
		if err != nil {
			return nil, fmt.Errorf("error generating game ID: %w", err)
		}

		match := entity.NewMatch(matchID)

		err = that.matchRepo.Create(ctx, match)
		if errors.Is(err, repository.ErrMatchExists) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to create match in storage: %w", err)
		}

		return match, nil
	}

	return nil, ErrGameIDExhausted
}

func (that *matchService) GetMatchByID(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve match from storage: %w", err)
	}

	return match, nil
}

func (that *matchService) UpdateMatch(ctx context.Context, match *entity.Match) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	return nil
}
