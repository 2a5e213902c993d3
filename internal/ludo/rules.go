package ludo

import (
	"fmt"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
	"github.com/ludo-authority/ludo-backend/internal/entity"
)

const maxRollsPerTurn = 3

type Rules struct{}

func NewRules() *Rules {
	return &Rules{}
}

// IsLegalMove - true when some unused roll of the turn can move the token.
func (that *Rules) IsLegalMove(match *entity.Match, playerIndex, tokenIndex int) (bool, error) {
	if !match.IsCurrentPlayer(playerIndex) {
		return false, fmt.Errorf("%w: player index %d", apperror.Invalid(apperror.ErrNotYourTurn), playerIndex)
	}

	if match.Ended {
		return false, apperror.Invalid(apperror.ErrGameFinished)
	}

	token, err := match.TokenByIndex(playerIndex, tokenIndex)
	if err != nil {
		return false, err
	}

	for _, roll := range match.CurrentDiceRolls {
		if roll.Used {
			continue
		}

		if canConsume(token, roll.Value) {
			return true, nil
		}
	}

	return false, fmt.Errorf("%w: player %d token %d", apperror.Invalid(apperror.ErrNoLegalMove), playerIndex, tokenIndex)
}

// HasAnyLegalMove - true when some token of the player can consume the next unused roll.
// Moves always spend that roll first, so later rolls do not count.
func (that *Rules) HasAnyLegalMove(match *entity.Match, playerIndex int) bool {
	roll := match.NextUnusedRoll()
	if roll == nil {
		return false
	}

	for _, token := range match.Tokens[playerIndex] {
		if canConsume(token, roll.Value) {
			return true
		}
	}

	return false
}

// HasExtraTurnPending - every roll of the turn so far is a six.
func (that *Rules) HasExtraTurnPending(match *entity.Match) bool {
	return match.CountSixes() == len(match.CurrentDiceRolls)
}

func (that *Rules) HasThreeSixes(match *entity.Match) bool {
	return match.CountSixes() == maxRollsPerTurn
}

// CanRollAgain - a roll is allowed on an empty turn, or after a six while fewer than three rolls exist.
func (that *Rules) CanRollAgain(match *entity.Match) bool {
	last := match.LastRoll()
	if last == nil {
		return true
	}

	return last.IsSix() && len(match.CurrentDiceRolls) < maxRollsPerTurn
}

// AdvanceTurn - hands the turn to the next player whose army is not finished.
func (that *Rules) AdvanceTurn(match *entity.Match) error {
	if match.IsGameFinished() {
		return fmt.Errorf("%w: cannot change turn", apperror.Invalid(apperror.ErrGameFinished))
	}

	playerCount := len(match.Players)
	for increment := 1; increment <= playerCount; increment++ {
		next := (match.CurrentPlayerIndex + increment) % playerCount
		if !match.HasPlayerWon(next) {
			match.SetCurrentPlayer(next)
			return nil
		}
	}

	return fmt.Errorf("%w: unable to change turn in game %s", apperror.ErrInternal, match.ID)
}
