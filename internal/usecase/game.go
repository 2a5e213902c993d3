package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ludo-authority/ludo-backend/internal/entity"
)

const (
	ActionCreate = "create"
	ActionJoin   = "join"
	ActionStart  = "start"
	ActionRoll   = "roll"
	ActionMove   = "move"
)

type GameUseCase interface {
	CreateMatch(ctx context.Context) (*entity.Match, error)
	JoinMatch(ctx context.Context, matchID, name string) (*entity.Match, error)
	StartMatch(ctx context.Context, matchID string) (*entity.Match, error)
	RollDice(ctx context.Context, matchID string, playerIndex int) (*entity.Match, error)
	MoveToken(ctx context.Context, matchID string, playerIndex, tokenIndex int) (*entity.Match, error)
	GetMatch(ctx context.Context, matchID string) (*entity.Match, error)
}

type matchService interface {
	CreateMatch(ctx context.Context) (*entity.Match, error)
	GetMatchByID(ctx context.Context, id string) (*entity.Match, error)
}

type gamePlayService interface {
	JoinMatch(ctx context.Context, matchID, name string) (*entity.Match, error)
	StartMatch(ctx context.Context, matchID string) (*entity.Match, error)
	RollDice(ctx context.Context, matchID string, playerIndex int) (*entity.Match, error)
	MoveToken(ctx context.Context, matchID string, playerIndex, tokenIndex int) (*entity.Match, error)
}

type actionObserver interface {
	ObserveAction(action string, err error, elapsed time.Duration)
}

type matchPublisher interface {
	Publish(match *entity.Match)
}

type gameUseCase struct {
	logger *slog.Logger

	matchService    matchService
	gamePlayService gamePlayService

	observer  actionObserver
	publisher matchPublisher
}

func NewGameUseCase(
	logger *slog.Logger,
	matchService matchService,
	gamePlayService gamePlayService,
	observer actionObserver,
	publisher matchPublisher,
) GameUseCase {
	return &gameUseCase{
		logger:          logger.With("component", "usecase"),
		matchService:    matchService,
		gamePlayService: gamePlayService,
		observer:        observer,
		publisher:       publisher,
	}
}

func (that *gameUseCase) CreateMatch(ctx context.Context) (*entity.Match, error) {
	return that.track(ActionCreate, func() (*entity.Match, error) {
		match, err := that.matchService.CreateMatch(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not create match: %w", err)
		}

		return match, nil
	})
}

func (that *gameUseCase) JoinMatch(ctx context.Context, matchID, name string) (*entity.Match, error) {
	return that.track(ActionJoin, func() (*entity.Match, error) {
		match, err := that.gamePlayService.JoinMatch(ctx, matchID, name)
		if err != nil {
			return nil, fmt.Errorf("failed to join match: %w", err)
		}

		return match, nil
	})
}

func (that *gameUseCase) StartMatch(ctx context.Context, matchID string) (*entity.Match, error) {
	return that.track(ActionStart, func() (*entity.Match, error) {
		match, err := that.gamePlayService.StartMatch(ctx, matchID)
		if err != nil {
			return nil, fmt.Errorf("failed to start match: %w", err)
		}

		return match, nil
	})
}

func (that *gameUseCase) RollDice(ctx context.Context, matchID string, playerIndex int) (*entity.Match, error) {
	return that.track(ActionRoll, func() (*entity.Match, error) {
		match, err := that.gamePlayService.RollDice(ctx, matchID, playerIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to roll dice: %w", err)
		}

		return match, nil
	})
}

func (that *gameUseCase) MoveToken(ctx context.Context, matchID string, playerIndex, tokenIndex int) (*entity.Match, error) {
	return that.track(ActionMove, func() (*entity.Match, error) {
		match, err := that.gamePlayService.MoveToken(ctx, matchID, playerIndex, tokenIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to move token: %w", err)
		}

		return match, nil
	})
}

func (that *gameUseCase) GetMatch(ctx context.Context, matchID string) (*entity.Match, error) {
	match, err := that.matchService.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// track - records the outcome of a state-changing action and pushes the new state to listeners.
func (that *gameUseCase) track(action string, run func() (*entity.Match, error)) (*entity.Match, error) {
	started := time.Now()

	match, err := run()
	that.observer.ObserveAction(action, err, time.Since(started))

	if err != nil {
		that.logger.Info("action rejected", "action", action, "error", err)
		return nil, err
	}

	that.publisher.Publish(match)

	return match, nil
}
