package apperror

import "errors"

var (
	ErrNotFound      = errors.New("game not found")
	ErrInvalidAction = errors.New("invalid action")
	ErrInternal      = errors.New("internal error")
)

var (
	ErrGameNotStarted     = errors.New("game has not started yet")
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrGameFinished       = errors.New("game has ended")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrGameFull           = errors.New("game player size exceeded")
	ErrNotEnoughPlayers   = errors.New("not enough players")
	ErrEmptyPlayerName    = errors.New("player name cannot be empty")
	ErrRerollNotAllowed   = errors.New("you can only roll again if the previous roll was a six and less than 3 rolls in this turn")
	ErrExtraTurnPending   = errors.New("player has an extra turn, cannot move token now")
	ErrTokenNotFound      = errors.New("token not found")
	ErrInvalidDiceValue   = errors.New("move value must be positive")
	ErrTokenFinished      = errors.New("cannot move a finished token")
	ErrMustRollSix        = errors.New("must roll a six to open")
	ErrOvershoot          = errors.New("move overshoots finish")
	ErrNoLegalMove        = errors.New("no legal move for token")
)

// Invalid wraps a rule violation so that callers can match it with ErrInvalidAction.
func Invalid(cause error) error {
	return &ruleError{cause: cause}
}

type ruleError struct {
	cause error
}

func (that *ruleError) Error() string {
	return ErrInvalidAction.Error() + ": " + that.cause.Error()
}

func (that *ruleError) Unwrap() []error {
	return []error{ErrInvalidAction, that.cause}
}
