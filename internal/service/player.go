package service

import (
	"fmt"
	"strings"

	"github.com/ludo-authority/ludo-backend/internal/apperror"
	"github.com/ludo-authority/ludo-backend/internal/entity"
	"github.com/ludo-authority/ludo-backend/internal/pkg"
)

type PlayerService interface {
	AddPlayer(match *entity.Match, name string) (*entity.Player, error)
}

type playerService struct{}

func NewPlayerService() PlayerService {
	return &playerService{}
}

// AddPlayer - seats a new player with the next palette color.
func (that *playerService) AddPlayer(match *entity.Match, name string) (*entity.Player, error) {
	if match.Started {
		return nil, apperror.Invalid(apperror.ErrGameAlreadyStarted)
	}

	seated := len(match.Players)
	if seated >= entity.MaxPlayers {
		return nil, fmt.Errorf("%w: %d players", apperror.Invalid(apperror.ErrGameFull), seated)
	}

	if strings.TrimSpace(name) == "" {
		return nil, apperror.Invalid(apperror.ErrEmptyPlayerName)
	}

	player := &entity.Player{
		ID:    pkg.GeneratePlayerID(),
		Name:  name,
		Color: entity.Palette[seated],
	}
	match.Players = append(match.Players, player)

	return player, nil
}
