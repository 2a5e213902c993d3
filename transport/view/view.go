package view

import "github.com/ludo-authority/ludo-backend/internal/entity"

// MatchView is the client shape of a match.
type MatchView struct {
	GameID             string               `json:"gameId"`
	Started            bool                 `json:"started"`
	End                bool                 `json:"end"`
	CurrentPlayerID    string               `json:"currentPlayerId"`
	CurrentPlayerIndex int                  `json:"currentPlayerIndex"`
	Players            []PlayerView         `json:"players"`
	CurrentDiceRolls   []DiceView           `json:"currentDiceRolls"`
	Winners            []PlayerView         `json:"winners"`
	PlayerPositions    map[int][]TokenView  `json:"playerPositions"`
	LastDiceRoll       *entity.LastDiceRoll `json:"lastDiceRoll,omitempty"`
}

type PlayerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type DiceView struct {
	Move int  `json:"move"`
	Used bool `json:"used"`
}

type TokenView struct {
	Position int  `json:"position"`
	Finished bool `json:"finished"`
}

func NewMatchView(match *entity.Match) *MatchView {
	view := &MatchView{
		GameID:             match.ID,
		Started:            match.Started,
		End:                match.Ended,
		CurrentPlayerID:    match.CurrentPlayerID,
		CurrentPlayerIndex: match.CurrentPlayerIndex,
		Players:            playerViews(match.Players),
		CurrentDiceRolls:   make([]DiceView, 0, len(match.CurrentDiceRolls)),
		Winners:            playerViews(match.Winners),
		PlayerPositions:    make(map[int][]TokenView, len(match.Tokens)),
		LastDiceRoll:       match.LastDiceRoll,
	}

	for _, roll := range match.CurrentDiceRolls {
		view.CurrentDiceRolls = append(view.CurrentDiceRolls, DiceView{Move: roll.Value, Used: roll.Used})
	}

	for playerIndex, tokens := range match.Tokens {
		positions := make([]TokenView, 0, len(tokens))
		for _, token := range tokens {
			positions = append(positions, TokenView{Position: token.TrackPosition, Finished: token.IsFinished()})
		}
		view.PlayerPositions[playerIndex] = positions
	}

	return view
}

func playerViews(players []*entity.Player) []PlayerView {
	views := make([]PlayerView, 0, len(players))
	for _, player := range players {
		views = append(views, PlayerView{ID: player.ID, Name: player.Name, Color: string(player.Color)})
	}

	return views
}
