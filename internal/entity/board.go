package entity

import (
	"fmt"
	"io"
	"strings"

	"github.com/nickolaylk/TicTacToe-assignment/internal/apperror"
)

const (
	cellSeparator = "|"
	emptyCellText = "___"
)

type Board struct {
	Rows    int
	Columns int
	Cells   [][]*Cell
}

func NewBoard(rows, columns int) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidBoardSize, rows, columns)
	}

	cells := make([][]*Cell, rows)
	for r := range cells {
		cells[r] = make([]*Cell, columns)
		for c := range cells[r] {
			cells[r][c] = NewCell(r, c)
		}
	}

	return &Board{
		Rows:    rows,
		Columns: columns,
		Cells:   cells,
	}, nil
}

func (that *Board) Contains(row, column int) bool {
	return row >= 0 && row < that.Rows && column >= 0 && column < that.Columns
}

func (that *Board) Cell(row, column int) (*Cell, error) {
	if !that.Contains(row, column) {
		return nil, fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfBounds, row, column)
	}

	return that.Cells[row][column], nil
}

// signAt returns EmptySign for positions outside the board, so scans stop at the edges.
func (that *Board) signAt(row, column int) Sign {
	if !that.Contains(row, column) {
		return EmptySign
	}

	return that.Cells[row][column].Sign()
}

func (that *Board) IsFull() bool {
	for _, row := range that.Cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// String renders one line per row, e.g. "|_x_|___|_o_|".
func (that *Board) String() string {
	var sb strings.Builder

	for _, row := range that.Cells {
		sb.WriteString(cellSeparator)
		for _, cell := range row {
			if cell.IsEmpty() {
				sb.WriteString(emptyCellText)
			} else {
				sb.WriteString("_" + string(cell.Sign()) + "_")
			}
			sb.WriteString(cellSeparator)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Print - writes the rendered board to w.
func (that *Board) Print(w io.Writer) error {
	if _, err := io.WriteString(w, that.String()); err != nil {
		return fmt.Errorf("failed to print board: %w", err)
	}

	return nil
}

// ParseBoard rebuilds a board from the text produced by Board.String.
// Signs that AddPlayer accepts always survive the round trip.
func ParseBoard(text string) (*Board, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	grid := make([][]Sign, 0, len(lines))
	for i, line := range lines {
		if !strings.HasPrefix(line, cellSeparator) || !strings.HasSuffix(line, cellSeparator) || len(line) < 2 {
			return nil, fmt.Errorf("%w: line %d is not wrapped in %q", apperror.ErrMalformedBoard, i, cellSeparator)
		}

		tokens := strings.Split(line[1:len(line)-1], cellSeparator)
		row := make([]Sign, 0, len(tokens))
		for _, token := range tokens {
			sign, err := parseCellText(token)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d", err, i)
			}
			row = append(row, sign)
		}

		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", apperror.ErrMalformedBoard, i, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}

	board, err := NewBoard(len(grid), len(grid[0]))
	if err != nil {
		return nil, err
	}

	for r, row := range grid {
		for c, sign := range row {
			board.Cells[r][c].SetSign(sign)
		}
	}

	return board, nil
}

func parseCellText(token string) (Sign, error) {
	if token == emptyCellText {
		return EmptySign, nil
	}

	if len(token) < 3 || !strings.HasPrefix(token, "_") || !strings.HasSuffix(token, "_") {
		return EmptySign, fmt.Errorf("%w: bad cell %q", apperror.ErrMalformedBoard, token)
	}

	return Sign(token[1 : len(token)-1]), nil
}
