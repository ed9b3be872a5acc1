package game

import "strings"

type Side uint8

const (
	None Side = iota
	First
	Second
)

// Opponent returns the other playing side; None stays None
func (s Side) Opponent() Side {
	switch s {
	case First:
		return Second
	case Second:
		return First
	}
	return None
}

// Valid reports whether s is a side that can own a piece
func (s Side) Valid() bool { return s == First || s == Second }

func (s Side) String() string {
	switch s {
	case First:
		return "X"
	case Second:
		return "O"
	}
	return "."
}

type Board struct {
	rows  int
	cols  int
	cells []Side // row-major, row 0 on top
	moves int    // number of occupied cells
}

// NewBoard creates an empty rows x cols board
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Side, rows*cols),
	}
}

func (b *Board) Rows() int  { return b.rows }
func (b *Board) Cols() int  { return b.cols }
func (b *Board) Size() int  { return len(b.cells) }
func (b *Board) Moves() int { return b.moves }

// Index converts a row and column into a cell index
func (b *Board) Index(row, col int) int { return row*b.cols + col }

// CellAt returns the side occupying index, None when empty or out of range
func (b *Board) CellAt(index int) Side {
	if index < 0 || index >= len(b.cells) {
		return None
	}
	return b.cells[index]
}

// At returns the side occupying (row, col)
func (b *Board) At(row, col int) Side {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return None
	}
	return b.cells[b.Index(row, col)]
}

// IsFull returns whether no empty cell remains
func (b *Board) IsFull() bool {
	return b.moves >= len(b.cells)
}

// Count returns how many cells side occupies
func (b *Board) Count(side Side) int {
	n := 0
	for _, c := range b.cells {
		if c == side {
			n++
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	nb := *b
	nb.cells = make([]Side, len(b.cells))
	copy(nb.cells, b.cells)
	return &nb
}

// Equal reports whether both boards have the same shape and cells
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.rows != o.rows || b.cols != o.cols || b.moves != o.moves {
		return false
	}
	for i, c := range b.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders rows top to bottom separated by '/'
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < b.cols; c++ {
			sb.WriteString(b.At(r, c).String())
		}
	}
	return sb.String()
}

func (b *Board) set(index int, side Side) {
	b.cells[index] = side
	b.moves++
}

func (b *Board) clear(index int) {
	if b.cells[index] == None {
		return
	}
	b.cells[index] = None
	b.moves--
}
