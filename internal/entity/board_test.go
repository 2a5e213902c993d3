package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalPosition(t *testing.T) {
	t.Run("Open tokens wrap around the shared ring", func(t *testing.T) {
		for color, entry := range entryOffsets {
			for track := 0; track < FinishPosition; track++ {
				// When: mapping a lane offset to the ring
				global, ok := GlobalPosition(color, track)

				// Then: it is the entry offset plus the track, modulo 52
				assert.True(t, ok)
				assert.Equal(t, (entry+track)%RingSize, global, "color %s track %d", color, track)
			}
		}
	})

	t.Run("Home and finish are off the ring", func(t *testing.T) {
		_, ok := GlobalPosition(ColorRed, HomePosition)
		assert.False(t, ok)

		_, ok = GlobalPosition(ColorRed, FinishPosition)
		assert.False(t, ok)
	})

	t.Run("Entry offsets are 13 cells apart", func(t *testing.T) {
		assert.Equal(t, 0, EntryOffset(ColorBlue))
		assert.Equal(t, 13, EntryOffset(ColorRed))
		assert.Equal(t, 26, EntryOffset(ColorGreen))
		assert.Equal(t, 39, EntryOffset(ColorYellow))
	})
}

func TestIsSafeCell(t *testing.T) {
	safe := []int{0, 8, 13, 21, 26, 34, 39, 47}

	for cell := 0; cell < RingSize; cell++ {
		assert.Equal(t, contains(safe, cell), IsSafeCell(cell), "cell %d", cell)
	}
}

func contains(values []int, value int) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
