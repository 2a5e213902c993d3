package entity

const (
	RingSize        = 52
	HomePosition    = -1
	BoostPosition   = 56
	FinishPosition  = 57
	TokensPerPlayer = 4

	MinPlayers = 2
	MaxPlayers = 4
)

type Color string

const (
	ColorGreen  Color = "GREEN"
	ColorBlue   Color = "BLUE"
	ColorRed    Color = "RED"
	ColorYellow Color = "YELLOW"
)

// Palette is the join-order color assignment.
var Palette = [MaxPlayers]Color{ColorGreen, ColorBlue, ColorRed, ColorYellow}

var entryOffsets = map[Color]int{
	ColorBlue:   0,
	ColorRed:    13,
	ColorGreen:  26,
	ColorYellow: 39,
}

var safeCells = map[int]struct{}{
	0: {}, 8: {}, 13: {}, 21: {}, 26: {}, 34: {}, 39: {}, 47: {},
}

// EntryOffset - returns the ring cell where the color's lane starts.
func EntryOffset(color Color) int {
	return entryOffsets[color]
}

// GlobalPosition - maps a lane offset onto the shared ring.
// Returns false for tokens at home or on the finish cell.
func GlobalPosition(color Color, trackPosition int) (int, bool) {
	if trackPosition == HomePosition || trackPosition >= FinishPosition {
		return 0, false
	}

	return (EntryOffset(color) + trackPosition) % RingSize, true
}

func IsSafeCell(globalPosition int) bool {
	_, ok := safeCells[globalPosition]
	return ok
}
