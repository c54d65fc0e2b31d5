package entity

// MoveEvent describes one accepted move as seen by spectators of a match.
type MoveEvent struct {
	GameID string `json:"game_id"`
	Player string `json:"player"`
	Sign   Sign   `json:"sign"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Status Status `json:"status"`
	Winner string `json:"winner,omitempty"`
}

// NewMoveEvent builds the event for the most recent move of the game.
// It returns false when nothing has been played yet.
func NewMoveEvent(game *Game) (*MoveEvent, bool) {
	if len(game.history) == 0 {
		return nil, false
	}

	last := game.history[len(game.history)-1]
	event := &MoveEvent{
		GameID: game.ID,
		Player: last.Player.Name,
		Sign:   last.Player.Sign,
		Row:    last.Row,
		Column: last.Column,
		Status: game.Status,
	}

	if winner, ok := game.Winner(); ok {
		event.Winner = winner.Name
	}

	return event, true
}
