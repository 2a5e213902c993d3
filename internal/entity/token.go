package entity

type Token struct {
	Index         int   `json:"token_index"`
	TrackPosition int   `json:"track_position"`
	Color         Color `json:"color"`
}

// NewArmy - returns the four closed tokens of one player.
func NewArmy(color Color) []*Token {
	tokens := make([]*Token, 0, TokensPerPlayer)
	for i := 0; i < TokensPerPlayer; i++ {
		tokens = append(tokens, &Token{Index: i, TrackPosition: HomePosition, Color: color})
	}

	return tokens
}

func (that *Token) GlobalPosition() (int, bool) {
	return GlobalPosition(that.Color, that.TrackPosition)
}

func (that *Token) IsOpen() bool {
	return that.TrackPosition != HomePosition
}

func (that *Token) IsFinished() bool {
	return that.TrackPosition == FinishPosition
}

func (that *Token) IsSafeCell() bool {
	global, ok := that.GlobalPosition()
	return ok && IsSafeCell(global)
}

// IsBoostCell reports the cell right before finish. No rule acts on it yet.
func (that *Token) IsBoostCell() bool {
	return that.TrackPosition == BoostPosition
}

func (that *Token) SendHome() {
	that.TrackPosition = HomePosition
}
