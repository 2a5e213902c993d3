package entity

const SixValue = 6

type DiceRoll struct {
	Value int  `json:"value"`
	Used  bool `json:"used"`
}

func (that *DiceRoll) IsSix() bool {
	return that.Value == SixValue
}

// LastDiceRoll is kept for display even after the turn moves on.
type LastDiceRoll struct {
	PlayerIndex int    `json:"player_index"`
	Value       int    `json:"value"`
	Timestamp   int64  `json:"timestamp"`
	RollID      string `json:"roll_id"`
}
