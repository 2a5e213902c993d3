package entity

import (
	"fmt"
	"slices"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
)

const (
	StatusCreated = "created"
	StatusStarted = "started"
	StatusEnded   = "ended"
)

type Match struct {
	ID                 string           `json:"id"`
	Started            bool             `json:"started"`
	Ended              bool             `json:"ended"`
	CurrentPlayerID    string           `json:"current_player_id,omitempty"`
	CurrentPlayerIndex int              `json:"current_player_index"`
	Players            []*Player        `json:"players"`
	Tokens             map[int][]*Token `json:"tokens"`
	CurrentDiceRolls   []*DiceRoll      `json:"current_dice_rolls"`
	Winners            []*Player        `json:"winners"`
	LastDiceRoll       *LastDiceRoll    `json:"last_dice_roll,omitempty"`
}

func NewMatch(id string) *Match {
	return &Match{
		ID:               id,
		Players:          []*Player{},
		Tokens:           map[int][]*Token{},
		CurrentDiceRolls: []*DiceRoll{},
		Winners:          []*Player{},
	}
}

func (that *Match) Status() string {
	switch {
	case that.Ended:
		return StatusEnded
	case that.Started:
		return StatusStarted
	default:
		return StatusCreated
	}
}

// ConfirmOngoingState - returns an error unless roll and move actions are allowed.
func (that *Match) ConfirmOngoingState() error {
	switch that.Status() {
	case StatusCreated:
		return apperror.Invalid(apperror.ErrGameNotStarted)
	case StatusEnded:
		return apperror.Invalid(apperror.ErrGameFinished)
	default:
		return nil
	}
}

func (that *Match) IsCurrentPlayer(playerIndex int) bool {
	return that.CurrentPlayerIndex == playerIndex
}

func (that *Match) SetCurrentPlayer(playerIndex int) {
	that.CurrentPlayerIndex = playerIndex
	that.CurrentPlayerID = that.Players[playerIndex].ID
}

func (that *Match) PlayerByIndex(playerIndex int) (*Player, error) {
	if playerIndex < 0 || playerIndex >= len(that.Players) {
		return nil, fmt.Errorf("%w: player index %d", apperror.Invalid(apperror.ErrNotYourTurn), playerIndex)
	}

	return that.Players[playerIndex], nil
}

func (that *Match) TokenByIndex(playerIndex, tokenIndex int) (*Token, error) {
	for _, token := range that.Tokens[playerIndex] {
		if token.Index == tokenIndex {
			return token, nil
		}
	}

	return nil, fmt.Errorf("%w: player %d token %d", apperror.Invalid(apperror.ErrTokenNotFound), playerIndex, tokenIndex)
}

// AllAtHome - true when every token of the player is still closed.
func (that *Match) AllAtHome(playerIndex int) bool {
	tokens := that.Tokens[playerIndex]
	if len(tokens) == 0 {
		return false
	}

	for _, token := range tokens {
		if token.IsOpen() {
			return false
		}
	}

	return true
}

// HasPlayerWon - true when all four tokens of the player are finished.
func (that *Match) HasPlayerWon(playerIndex int) bool {
	tokens := that.Tokens[playerIndex]
	if len(tokens) == 0 {
		return false
	}

	for _, token := range tokens {
		if !token.IsFinished() {
			return false
		}
	}

	return true
}

func (that *Match) FinishedArmies() int {
	finished := 0
	for playerIndex := range that.Players {
		if that.HasPlayerWon(playerIndex) {
			finished++
		}
	}

	return finished
}

// IsGameFinished - all but one player have finished their army.
func (that *Match) IsGameFinished() bool {
	if len(that.Players) == 0 {
		return false
	}

	return len(that.Players)-1 <= that.FinishedArmies()
}

func (that *Match) IsWinner(player *Player) bool {
	return slices.ContainsFunc(that.Winners, func(winner *Player) bool {
		return winner.ID == player.ID
	})
}

func (that *Match) LastRoll() *DiceRoll {
	if len(that.CurrentDiceRolls) == 0 {
		return nil
	}

	return that.CurrentDiceRolls[len(that.CurrentDiceRolls)-1]
}

func (that *Match) NextUnusedRoll() *DiceRoll {
	for _, roll := range that.CurrentDiceRolls {
		if !roll.Used {
			return roll
		}
	}

	return nil
}

func (that *Match) CountSixes() int {
	sixes := 0
	for _, roll := range that.CurrentDiceRolls {
		if roll.IsSix() {
			sixes++
		}
	}

	return sixes
}

func (that *Match) ClearDiceRolls() {
	that.CurrentDiceRolls = []*DiceRoll{}
}

// CleanUsedRolls - drops the rolls of the turn once every one of them is consumed.
func (that *Match) CleanUsedRolls() {
	for _, roll := range that.CurrentDiceRolls {
		if !roll.Used {
			return
		}
	}

	that.ClearDiceRolls()
}

// Clone - deep copy, so an action can be applied and discarded on failure.
func (that *Match) Clone() *Match {
	clone := *that

	clone.Players = clonePlayers(that.Players)
	clone.Winners = clonePlayers(that.Winners)

	clone.Tokens = make(map[int][]*Token, len(that.Tokens))
	for playerIndex, tokens := range that.Tokens {
		copied := make([]*Token, 0, len(tokens))
		for _, token := range tokens {
			t := *token
			copied = append(copied, &t)
		}
		clone.Tokens[playerIndex] = copied
	}

	clone.CurrentDiceRolls = make([]*DiceRoll, 0, len(that.CurrentDiceRolls))
	for _, roll := range that.CurrentDiceRolls {
		r := *roll
		clone.CurrentDiceRolls = append(clone.CurrentDiceRolls, &r)
	}

	if that.LastDiceRoll != nil {
		last := *that.LastDiceRoll
		clone.LastDiceRoll = &last
	}

	return &clone
}

func clonePlayers(players []*Player) []*Player {
	copied := make([]*Player, 0, len(players))
	for _, player := range players {
		p := *player
		copied = append(copied, &p)
	}

	return copied
}
