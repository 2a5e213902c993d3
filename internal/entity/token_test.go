package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArmy(t *testing.T) {
	// When: creating the tokens of a yellow player
	tokens := NewArmy(ColorYellow)

	// Then: four closed tokens indexed 0..3 are returned
	require.Len(t, tokens, TokensPerPlayer)
	for i, token := range tokens {
		assert.Equal(t, i, token.Index)
		assert.Equal(t, HomePosition, token.TrackPosition)
		assert.Equal(t, ColorYellow, token.Color)
		assert.False(t, token.IsOpen())
	}
}

func TestToken_Predicates(t *testing.T) {
	t.Run("Closed token", func(t *testing.T) {
		token := &Token{TrackPosition: HomePosition, Color: ColorBlue}

		assert.False(t, token.IsOpen())
		assert.False(t, token.IsFinished())
		assert.False(t, token.IsSafeCell())
	})

	t.Run("Token on its own entry cell is safe", func(t *testing.T) {
		token := &Token{TrackPosition: 0, Color: ColorGreen}

		global, ok := token.GlobalPosition()
		require.True(t, ok)
		assert.Equal(t, 26, global)
		assert.True(t, token.IsSafeCell())
	})

	t.Run("Token one cell before finish is on the boost cell", func(t *testing.T) {
		token := &Token{TrackPosition: BoostPosition, Color: ColorRed}

		assert.True(t, token.IsBoostCell())
		assert.False(t, token.IsFinished())
	})

	t.Run("Token on the finish cell", func(t *testing.T) {
		token := &Token{TrackPosition: FinishPosition, Color: ColorRed}

		assert.True(t, token.IsOpen())
		assert.True(t, token.IsFinished())
		assert.False(t, token.IsSafeCell())
	})

	t.Run("SendHome closes the token", func(t *testing.T) {
		token := &Token{TrackPosition: 20, Color: ColorRed}

		token.SendHome()

		assert.Equal(t, HomePosition, token.TrackPosition)
		assert.False(t, token.IsOpen())
	})
}
