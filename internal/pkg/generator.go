package pkg

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const gameIDLength = 8

// GenerateGameID - generates a short game id for sharing between players.
func GenerateGameID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return strings.ReplaceAll(id.String(), "-", "")[:gameIDLength], nil
}

func GeneratePlayerID() string {
	return uuid.NewString()
}

func GenerateRollID(gameID string, playerIndex int) string {
	return fmt.Sprintf("%s-%d-%s", gameID, playerIndex, uuid.NewString())
}
