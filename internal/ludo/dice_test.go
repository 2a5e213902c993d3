package ludo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
)

func TestRoller_Roll(t *testing.T) {
	t.Run("Appends an unused roll for the current player", func(t *testing.T) {
		// Given: a started match and a scripted source
		match := newTestMatch(2)
		roller := NewRoller(NewFixedSource(4))

		// When: the current player rolls
		roll, err := roller.Roll(match, 0)

		// Then: the roll is recorded unused
		require.NoError(t, err)
		assert.Equal(t, 4, roll.Value)
		assert.False(t, roll.Used)
		require.Len(t, match.CurrentDiceRolls, 1)
		assert.Same(t, roll, match.CurrentDiceRolls[0])
	})

	t.Run("Rejects a player out of turn", func(t *testing.T) {
		match := newTestMatch(2)

		_, err := NewRoller(NewFixedSource(4)).Roll(match, 1)

		assert.ErrorIs(t, err, apperror.ErrInvalidAction)
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Empty(t, match.CurrentDiceRolls)
	})

	t.Run("Rejects an ended match", func(t *testing.T) {
		match := newTestMatch(2)
		match.Ended = true

		_, err := NewRoller(NewFixedSource(4)).Roll(match, 0)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Random source stays within one to six", func(t *testing.T) {
		source := NewRandomSource()
		seen := make(map[int]bool)

		for i := 0; i < 1000; i++ {
			value := source.Roll()
			require.GreaterOrEqual(t, value, 1)
			require.LessOrEqual(t, value, 6)
			seen[value] = true
		}

		assert.Len(t, seen, 6)
	})
}

func TestFixedSource(t *testing.T) {
	source := NewFixedSource(6, 2)

	assert.Equal(t, 6, source.Roll())
	assert.Equal(t, 2, source.Roll())
	assert.Equal(t, 6, source.Roll())

	assert.Equal(t, 1, NewFixedSource().Roll())
}
