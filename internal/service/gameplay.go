package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
	"github.com/ludo-authority/ludo-backend/internal/entity"
	"github.com/ludo-authority/ludo-backend/internal/ludo"
	"github.com/ludo-authority/ludo-backend/internal/pkg"
)

type GamePlayService interface {
	JoinMatch(ctx context.Context, matchID, name string) (*entity.Match, error)
	StartMatch(ctx context.Context, matchID string) (*entity.Match, error)
	RollDice(ctx context.Context, matchID string, playerIndex int) (*entity.Match, error)
	MoveToken(ctx context.Context, matchID string, playerIndex, tokenIndex int) (*entity.Match, error)
}

type gamePlayService struct {
	logger *slog.Logger

	matchService  MatchService
	playerService PlayerService
	rules         *ludo.Rules
	roller        *ludo.Roller

	locksMutex sync.Mutex
	locks      map[string]*sync.Mutex
}

func NewGamePlayService(logger *slog.Logger, matchService MatchService, playerService PlayerService, roller *ludo.Roller) GamePlayService {
	return &gamePlayService{
		logger:        logger.With("component", "gameplay"),
		matchService:  matchService,
		playerService: playerService,
		rules:         ludo.NewRules(),
		roller:        roller,
		locks:         make(map[string]*sync.Mutex),
	}
}

func (that *gamePlayService) JoinMatch(ctx context.Context, matchID, name string) (*entity.Match, error) {
	return that.apply(ctx, matchID, func(match *entity.Match) error {
		player, err := that.playerService.AddPlayer(match, name)
		if err != nil {
			return fmt.Errorf("failed to add player: %w", err)
		}

		that.logger.Info("player joined", "gameID", match.ID, "playerID", player.ID, "color", player.Color)

		return nil
	})
}

func (that *gamePlayService) StartMatch(ctx context.Context, matchID string) (*entity.Match, error) {
	return that.apply(ctx, matchID, func(match *entity.Match) error {
		if match.Started {
			return apperror.Invalid(apperror.ErrGameAlreadyStarted)
		}

		if len(match.Players) < entity.MinPlayers {
			return fmt.Errorf("%w: %d players", apperror.Invalid(apperror.ErrNotEnoughPlayers), len(match.Players))
		}

		// seat index keys the armies, colors only decide lane offsets
		match.Tokens = make(map[int][]*entity.Token, len(match.Players))
		for playerIndex, player := range match.Players {
			match.Tokens[playerIndex] = entity.NewArmy(player.Color)
		}

		match.Started = true
		match.SetCurrentPlayer(0)

		that.logger.Info("game started", "gameID", match.ID, "players", len(match.Players))

		return nil
	})
}

func (that *gamePlayService) RollDice(ctx context.Context, matchID string, playerIndex int) (*entity.Match, error) {
	return that.apply(ctx, matchID, func(match *entity.Match) error {
		log := that.logger.With("method", "RollDice", "gameID", match.ID, "playerIndex", playerIndex)

		if err := that.confirmTurn(match, playerIndex); err != nil {
			return err
		}

		if !that.rules.CanRollAgain(match) {
			return fmt.Errorf("%w: %d rolls this turn", apperror.Invalid(apperror.ErrRerollNotAllowed), len(match.CurrentDiceRolls))
		}

		roll, err := that.roller.Roll(match, playerIndex)
		if err != nil {
			return fmt.Errorf("failed to roll dice: %w", err)
		}

		match.LastDiceRoll = &entity.LastDiceRoll{
			PlayerIndex: playerIndex,
			Value:       roll.Value,
			Timestamp:   time.Now().UnixMilli(),
			RollID:      pkg.GenerateRollID(match.ID, playerIndex),
		}

		log.Debug("dice rolled", "value", roll.Value)

		turnOver := false

		if match.AllAtHome(playerIndex) && !roll.IsSix() {
			log.Debug("all tokens at home without a six")
			turnOver = true
		}

		if that.rules.HasThreeSixes(match) {
			log.Info("three sixes forfeit the turn")
			turnOver = true
		}

		if !turnOver && !that.rules.HasExtraTurnPending(match) && !that.rules.HasAnyLegalMove(match, playerIndex) {
			log.Debug("no legal move for the rolls of the turn")
			turnOver = true
		}

		if turnOver {
			return that.endTurn(match)
		}

		return nil
	})
}

func (that *gamePlayService) MoveToken(ctx context.Context, matchID string, playerIndex, tokenIndex int) (*entity.Match, error) {
	return that.apply(ctx, matchID, func(match *entity.Match) error {
		log := that.logger.With("method", "MoveToken", "gameID", match.ID, "playerIndex", playerIndex)

		if err := that.confirmTurn(match, playerIndex); err != nil {
			return err
		}

		if _, err := that.rules.IsLegalMove(match, playerIndex, tokenIndex); err != nil {
			return fmt.Errorf("invalid move: %w", err)
		}

		if that.rules.HasExtraTurnPending(match) {
			return apperror.Invalid(apperror.ErrExtraTurnPending)
		}

		roll := match.NextUnusedRoll()
		if roll == nil {
			return fmt.Errorf("%w: no unused dice", apperror.Invalid(apperror.ErrNoLegalMove))
		}

		token, err := ludo.MoveToken(match, playerIndex, tokenIndex, roll.Value)
		if err != nil {
			return fmt.Errorf("failed to move token: %w", err)
		}

		roll.Used = true
		match.CleanUsedRolls()

		if ludo.ResolveCapture(match, token) {
			log.Info("captured opponent token", "tokenIndex", tokenIndex, "trackPosition", token.TrackPosition)
		}

		if match.HasPlayerWon(playerIndex) {
			player := match.Players[playerIndex]
			if !match.IsWinner(player) {
				match.Winners = append(match.Winners, player)
				log.Info("player finished", "playerID", player.ID, "place", len(match.Winners))
			}

			if match.IsGameFinished() {
				match.Ended = true
				match.ClearDiceRolls()
				log.Info("game finished")

				return nil
			}
		}

		if len(match.CurrentDiceRolls) == 0 || match.HasPlayerWon(playerIndex) || !that.rules.HasAnyLegalMove(match, playerIndex) {
			return that.endTurn(match)
		}

		return nil
	})
}

func (that *gamePlayService) confirmTurn(match *entity.Match, playerIndex int) error {
	if err := match.ConfirmOngoingState(); err != nil {
		return err
	}

	if _, err := match.PlayerByIndex(playerIndex); err != nil {
		return err
	}

	if !match.IsCurrentPlayer(playerIndex) {
		return fmt.Errorf("%w: current turn belongs to %s", apperror.Invalid(apperror.ErrNotYourTurn), match.Players[match.CurrentPlayerIndex].Name)
	}

	return nil
}

func (that *gamePlayService) endTurn(match *entity.Match) error {
	match.ClearDiceRolls()

	if err := that.rules.AdvanceTurn(match); err != nil {
		return fmt.Errorf("failed to change turn: %w", err)
	}

	return nil
}

// apply - runs one action under the match lock on a private copy and stores it only on success.
func (that *gamePlayService) apply(ctx context.Context, matchID string, action func(match *entity.Match) error) (*entity.Match, error) {
	// matches are never removed, so a lock is only kept for ids that exist
	if _, err := that.matchService.GetMatchByID(ctx, matchID); err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	lock := that.lockFor(matchID)
	lock.Lock()
	defer lock.Unlock()

	match, err := that.matchService.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	working := match.Clone()
	if err = action(working); err != nil {
		return nil, err
	}

	if err = that.matchService.UpdateMatch(ctx, working); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return working, nil
}

func (that *gamePlayService) lockFor(matchID string) *sync.Mutex {
	that.locksMutex.Lock()
	defer that.locksMutex.Unlock()

	lock, ok := that.locks[matchID]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[matchID] = lock
	}

	return lock
}
