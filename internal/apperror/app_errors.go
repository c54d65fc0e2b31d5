package apperror

import "errors"

var (
	ErrInvalidBoardSize = errors.New("board dimensions must be positive")
	ErrOutOfBounds      = errors.New("cell is out of board bounds")
	ErrRosterFull       = errors.New("game already has two players")
	ErrNoPlayers        = errors.New("game has no players")
	ErrEmptySign        = errors.New("player sign is empty")
	ErrDuplicateSign    = errors.New("sign is already taken by another player")
	ErrInvalidSign      = errors.New("sign cannot be shown on the board")
	ErrMalformedBoard   = errors.New("malformed board text")
	ErrMalformedMove    = errors.New("move must be two integers: row column")
)
