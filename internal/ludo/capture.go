package ludo

import "github.com/ludo-authority/ludo-backend/internal/entity"

// ResolveCapture - sends home every opponent token sharing the moved token's ring cell,
// unless that cell is safe. Stacks give no protection.
func ResolveCapture(match *entity.Match, moved *entity.Token) bool {
	target, ok := moved.GlobalPosition()
	if !ok {
		return false
	}

	captured := false
	for _, tokens := range match.Tokens {
		for _, token := range tokens {
			if token.Color == moved.Color {
				continue
			}

			global, onRing := token.GlobalPosition()
			if !onRing || global != target || token.IsSafeCell() {
				continue
			}

			token.SendHome()
			captured = true
		}
	}

	return captured
}
