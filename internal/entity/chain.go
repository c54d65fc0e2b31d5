package entity

// direction is a unit step as (row delta, column delta).
type direction struct {
	row    int
	column int
}

var (
	toRight       = direction{row: 0, column: 1}
	toBottom      = direction{row: 1, column: 0}
	toBottomRight = direction{row: 1, column: 1}
	toBottomLeft  = direction{row: 1, column: -1}
)

// chainFull - reports whether the cell closes a chain of at least winLength equal signs.
// Axes are checked in the order column, row, main diagonal, anti diagonal.
func (that *Game) chainFull(cell *Cell) bool {
	if that.columnChain(cell) >= that.winLength {
		return true
	}

	if that.rowChain(cell) >= that.winLength {
		return true
	}

	if that.mainDiagonalChain(cell) >= that.winLength {
		return true
	}

	return that.antiDiagonalChain(cell) >= that.winLength
}

func (that *Game) rowChain(cell *Cell) int {
	return that.chainLength(cell, toRight)
}

func (that *Game) columnChain(cell *Cell) int {
	return that.chainLength(cell, toBottom)
}

// mainDiagonalChain runs from top-left to bottom-right.
func (that *Game) mainDiagonalChain(cell *Cell) int {
	return that.chainLength(cell, toBottomRight)
}

// antiDiagonalChain runs from top-right to bottom-left.
func (that *Game) antiDiagonalChain(cell *Cell) int {
	return that.chainLength(cell, toBottomLeft)
}

// chainLength counts the cell itself plus the run of equal signs on both sides of it along d.
func (that *Game) chainLength(cell *Cell, d direction) int {
	sign := cell.Sign()
	// 0 marks an unplayed cell, which belongs to no chain.
	if sign == EmptySign {
		return 0
	}

	length := 1

	for r, c := cell.Row+d.row, cell.Column+d.column; that.Board.signAt(r, c) == sign; r, c = r+d.row, c+d.column {
		length++
	}

	for r, c := cell.Row-d.row, cell.Column-d.column; that.Board.signAt(r, c) == sign; r, c = r-d.row, c-d.column {
		length++
	}

	return length
}
