package ludo

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
	"github.com/ludo-authority/ludo-backend/internal/entity"
)

// Source returns a die face in 1..6. Implementations must be safe for concurrent use.
type Source interface {
	Roll() int
}

type randomSource struct{}

func NewRandomSource() Source {
	return randomSource{}
}

func (randomSource) Roll() int {
	return rand.IntN(entity.SixValue) + 1 //nolint: gosec // fairness, not secrecy
}

// FixedSource replays a scripted sequence of faces, cycling when exhausted.
type FixedSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

func NewFixedSource(values ...int) *FixedSource {
	return &FixedSource{values: values}
}

func (that *FixedSource) Roll() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.values) == 0 {
		return 1
	}

	value := that.values[that.next%len(that.values)]
	that.next++

	return value
}

type Roller struct {
	source Source
}

func NewRoller(source Source) *Roller {
	if source == nil {
		source = NewRandomSource()
	}

	return &Roller{source: source}
}

// Roll - appends an unused roll to the current turn of the acting player.
func (that *Roller) Roll(match *entity.Match, playerIndex int) (*entity.DiceRoll, error) {
	if match.Ended {
		return nil, apperror.Invalid(apperror.ErrGameFinished)
	}

	if !match.IsCurrentPlayer(playerIndex) {
		return nil, fmt.Errorf("%w: player index %d", apperror.Invalid(apperror.ErrNotYourTurn), playerIndex)
	}

	roll := &entity.DiceRoll{Value: that.source.Roll()}
	match.CurrentDiceRolls = append(match.CurrentDiceRolls, roll)

	return roll, nil
}
