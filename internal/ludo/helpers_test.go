package ludo

import (
	"fmt"

	"github.com/ludo-authority/ludo-backend/internal/entity"
)

func newTestMatch(players int) *entity.Match {
	match := entity.NewMatch("test")
	for i := 0; i < players; i++ {
		player := &entity.Player{ID: fmt.Sprintf("player-%d", i), Name: fmt.Sprintf("Player %d", i), Color: entity.Palette[i]}
		match.Players = append(match.Players, player)
		match.Tokens[i] = entity.NewArmy(player.Color)
	}
	match.Started = true
	match.SetCurrentPlayer(0)

	return match
}

func withRolls(match *entity.Match, values ...int) *entity.Match {
	for _, value := range values {
		match.CurrentDiceRolls = append(match.CurrentDiceRolls, &entity.DiceRoll{Value: value})
	}

	return match
}

func finishArmy(match *entity.Match, playerIndex int) {
	for _, token := range match.Tokens[playerIndex] {
		token.TrackPosition = entity.FinishPosition
	}
}
