package entity

import (
	"fmt"
	"io"
	"strings"

	"github.com/nickolaylk/TicTacToe-assignment/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// MoveResult tells the caller what NextMove did with a move.
type MoveResult string

const (
	Accepted         MoveResult = "accepted"
	RejectedOccupied MoveResult = "rejected_occupied"
	RejectedGameOver MoveResult = "rejected_game_over"
)

const (
	maxPlayers = 2

	historyHeader = "+--History--------------------------------------+"
	historyFooter = "+-----------------------------------------------+"
)

// Move is a requested position, not yet validated against any board.
type Move struct {
	Row    int
	Column int
}

type MoveRecord struct {
	Player Player
	Row    int
	Column int
}

func (that MoveRecord) String() string {
	return fmt.Sprintf("%s(%s): row:%d ; column:%d", that.Player.Name, that.Player.Sign, that.Row, that.Column)
}

type Game struct {
	ID     string
	Status Status
	Board  *Board

	players     []Player
	playerIndex int
	winLength   int
	history     []MoveRecord
}

func NewGame(id string, rows, columns int) (*Game, error) {
	board, err := NewBoard(rows, columns)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		ID:        id,
		Status:    StatusInProgress,
		Board:     board,
		players:   make([]Player, 0, maxPlayers),
		winLength: min(rows, columns),
	}, nil
}

// AddPlayer - registers a player. The first registered player moves first.
func (that *Game) AddPlayer(player Player) error {
	if len(that.players) >= maxPlayers {
		return fmt.Errorf("%w: %s rejected", apperror.ErrRosterFull, player.Name)
	}

	if player.Sign == EmptySign {
		return fmt.Errorf("%w: player %s", apperror.ErrEmptySign, player.Name)
	}

	if !printable(player.Sign) {
		return fmt.Errorf("%w: %q of player %s", apperror.ErrInvalidSign, player.Sign, player.Name)
	}

	for _, existing := range that.players {
		if existing.Sign == player.Sign {
			return fmt.Errorf("%w: %q used by %s", apperror.ErrDuplicateSign, player.Sign, existing.Name)
		}
	}

	that.players = append(that.players, player)

	return nil
}

// printable reports whether the sign renders distinct from an empty cell and parses back from board text.
func printable(sign Sign) bool {
	return sign != "_" && !strings.ContainsAny(string(sign), cellSeparator+"\n\r")
}

// NextMove - plays the active player's sign at (row, column).
// Rejections leave the game untouched and are reported through MoveResult;
// errors are returned only for coordinates off the board or an empty roster.
func (that *Game) NextMove(row, column int) (MoveResult, error) {
	cell, err := that.Board.Cell(row, column)
	if err != nil {
		return "", err
	}

	if len(that.players) == 0 {
		return "", apperror.ErrNoPlayers
	}

	if that.IsCompleted() {
		return RejectedGameOver, nil
	}

	if !cell.IsEmpty() {
		return RejectedOccupied, nil
	}

	player := that.players[that.playerIndex]
	cell.SetSign(player.Sign)
	that.history = append(that.history, MoveRecord{
		Player: player,
		Row:    cell.Row,
		Column: cell.Column,
	})

	if that.chainFull(cell) {
		that.Status = StatusCompleted
	} else {
		that.playerIndex = (that.playerIndex + 1) % len(that.players)
	}

	return Accepted, nil
}

func (that *Game) IsCompleted() bool {
	return that.Status == StatusCompleted
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) WinLength() int {
	return that.winLength
}

// ActivePlayer returns the player whose move is expected, or the winner once the game is completed.
func (that *Game) ActivePlayer() (Player, bool) {
	if len(that.players) == 0 {
		return Player{}, false
	}

	return that.players[that.playerIndex], true
}

func (that *Game) Winner() (Player, bool) {
	if !that.IsCompleted() {
		return Player{}, false
	}

	return that.ActivePlayer()
}

func (that *Game) Players() []Player {
	return append([]Player(nil), that.players...)
}

func (that *Game) History() []MoveRecord {
	return append([]MoveRecord(nil), that.history...)
}

func (that *Game) Summary() string {
	var sb strings.Builder

	if winner, ok := that.Winner(); ok {
		sb.WriteString(winner.Name + " won!\n")
	} else {
		sb.WriteString("Game is in progress\n")
	}

	if len(that.history) > 0 {
		sb.WriteString(historyHeader + "\n")
		for _, record := range that.history {
			sb.WriteString(record.String() + "\n")
		}
		sb.WriteString(historyFooter + "\n")
	}

	return sb.String()
}

// PrintSummary - writes the result line and the move history to w.
func (that *Game) PrintSummary(w io.Writer) error {
	if _, err := io.WriteString(w, that.Summary()); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}

	return nil
}
