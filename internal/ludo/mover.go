package ludo

import (
	"fmt"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
	"github.com/ludo-authority/ludo-backend/internal/entity"
)

// MoveToken - applies one dice value to one token. The token is untouched on error.
func MoveToken(match *entity.Match, playerIndex, tokenIndex, diceValue int) (*entity.Token, error) {
	token, err := match.TokenByIndex(playerIndex, tokenIndex)
	if err != nil {
		return nil, err
	}

	next, err := nextPosition(token, diceValue)
	if err != nil {
		return nil, err
	}

	token.TrackPosition = next

	return token, nil
}

// nextPosition - evaluates the opening and overshoot rules without mutating the token.
func nextPosition(token *entity.Token, diceValue int) (int, error) {
	if diceValue < 1 {
		return 0, fmt.Errorf("%w: %d", apperror.Invalid(apperror.ErrInvalidDiceValue), diceValue)
	}

	if token.IsFinished() {
		return 0, apperror.Invalid(apperror.ErrTokenFinished)
	}

	if !token.IsOpen() {
		if diceValue != entity.SixValue {
			return 0, fmt.Errorf("%w: rolled %d", apperror.Invalid(apperror.ErrMustRollSix), diceValue)
		}

		return 1, nil
	}

	candidate := token.TrackPosition + diceValue
	if candidate > entity.FinishPosition {
		return 0, fmt.Errorf("%w: %d + %d", apperror.Invalid(apperror.ErrOvershoot), token.TrackPosition, diceValue)
	}

	return candidate, nil
}

func canConsume(token *entity.Token, diceValue int) bool {
	_, err := nextPosition(token, diceValue)
	return err == nil
}
