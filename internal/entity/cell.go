package entity

type Sign string

const EmptySign Sign = ""

// Cell is a board square. Its position never changes and its sign can be set only once.
type Cell struct {
	Row    int
	Column int

	sign Sign
}

func NewCell(row, column int) *Cell {
	return &Cell{
		Row:    row,
		Column: column,
	}
}

func (that *Cell) Sign() Sign {
	return that.sign
}

// SetSign - marks the cell. A cell that already carries a sign keeps it.
func (that *Cell) SetSign(value Sign) {
	if that.sign == EmptySign {
		that.sign = value
	}
}

func (that *Cell) IsEmpty() bool {
	return that.sign == EmptySign
}
