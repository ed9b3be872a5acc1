package game

import "fmt"

type Discipline uint8

const (
	// FreePlacement moves name an exact empty cell
	FreePlacement Discipline = iota
	// GravityDrop moves name a column; the piece settles to the lowest empty row
	GravityDrop
)

func (d Discipline) String() string {
	if d == GravityDrop {
		return "gravity"
	}
	return "free"
}

// Line is one set of cell indexes that wins when a single side owns all of them
type Line []int

type Rules struct {
	Name       string
	Rows       int
	Cols       int
	WinLength  int
	Discipline Discipline

	lines []Line
}

// NewRules validates the geometry and precomputes every winning line
func NewRules(name string, rows, cols, winLength int, d Discipline) (*Rules, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("rules %q: %w: %dx%d board", name, ErrBadGeometry, rows, cols)
	}
	if winLength < 2 || (winLength > rows && winLength > cols) {
		return nil, fmt.Errorf("rules %q: %w: win length %d on %dx%d", name, ErrBadGeometry, winLength, rows, cols)
	}
	r := &Rules{Name: name, Rows: rows, Cols: cols, WinLength: winLength, Discipline: d}
	r.lines = buildLines(rows, cols, winLength)
	return r, nil
}

func mustRules(name string, rows, cols, winLength int, d Discipline) *Rules {
	r, err := NewRules(name, rows, cols, winLength, d)
	if err != nil {
		panic(err)
	}
	return r
}

// TicTacToe is the 3x3 free-placement game with three in a row
func TicTacToe() *Rules { return mustRules("tictactoe", 3, 3, 3, FreePlacement) }

// ConnectFour is the 6x7 gravity game with four in a row
func ConnectFour() *Rules { return mustRules("connect4", 6, 7, 4, GravityDrop) }

// buildLines walks horizontal, vertical, down-right and down-left runs that fit on the board
func buildLines(rows, cols, k int) []Line {
	directions := [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	var out []Line
	for _, d := range directions {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				er, ec := r+d[0]*(k-1), c+d[1]*(k-1)
				if er < 0 || er >= rows || ec < 0 || ec >= cols {
					continue
				}
				l := make(Line, k)
				for i := 0; i < k; i++ {
					l[i] = (r+d[0]*i)*cols + c + d[1]*i
				}
				out = append(out, l)
			}
		}
	}
	return out
}

// Lines returns the fixed winning line set; callers must not modify it
func (r *Rules) Lines() []Line { return r.lines }

func (r *Rules) NewBoard() *Board { return NewBoard(r.Rows, r.Cols) }

// BoardSize is the number of cells, also the exhaustive search depth
func (r *Rules) BoardSize() int { return r.Rows * r.Cols }

// CenterCol is the column the evaluator rewards
func (r *Rules) CenterCol() int { return r.Cols / 2 }

func (r *Rules) fits(b *Board) bool {
	return b != nil && b.rows == r.Rows && b.cols == r.Cols
}

// LegalMoves lists playable moves in ascending order, empty on a full board
func (r *Rules) LegalMoves(b *Board) []int {
	var out []int
	if r.Discipline == GravityDrop {
		for c := 0; c < b.cols; c++ {
			if b.cells[c] == None {
				out = append(out, c)
			}
		}
		return out
	}
	for i, c := range b.cells {
		if c == None {
			out = append(out, i)
		}
	}
	return out
}

// IsLegal reports whether move addresses an empty cell or a non-full column
func (r *Rules) IsLegal(b *Board, move int) bool {
	if r.Discipline == GravityDrop {
		return move >= 0 && move < b.cols && b.cells[move] == None
	}
	return move >= 0 && move < len(b.cells) && b.cells[move] == None
}

// Apply plays move for side and returns the cell index written
func (r *Rules) Apply(b *Board, move int, side Side) (int, error) {
	if r.Discipline == GravityDrop {
		row, err := Drop(b, move, side)
		if err != nil {
			return -1, err
		}
		return b.Index(row, move), nil
	}
	if err := Place(b, move, side); err != nil {
		return -1, err
	}
	return move, nil
}

// Undo clears a cell previously written by Apply
func (r *Rules) Undo(b *Board, cell int) { b.clear(cell) }

// HasWon reports whether any line is entirely owned by side
func (r *Rules) HasWon(b *Board, side Side) bool {
	if !side.Valid() {
		return false
	}
	for _, l := range r.lines {
		if owns(b, l, side) {
			return true
		}
	}
	return false
}

func owns(b *Board, l Line, side Side) bool {
	for _, i := range l {
		if b.cells[i] != side {
			return false
		}
	}
	return true
}

// Winner returns the side holding a complete line, if any
func (r *Rules) Winner(b *Board) (Side, bool) {
	if r.HasWon(b, First) {
		return First, true
	}
	if r.HasWon(b, Second) {
		return Second, true
	}
	return None, false
}

// IsDraw is a full board with no completed line
func (r *Rules) IsDraw(b *Board) bool {
	if !b.IsFull() {
		return false
	}
	_, won := r.Winner(b)
	return !won
}

func (r *Rules) IsTerminal(b *Board) bool {
	_, won := r.Winner(b)
	return won || r.IsDraw(b)
}

// SideToMove derives whose turn it is; First always moves first
func (r *Rules) SideToMove(b *Board) Side {
	if b.Count(First) > b.Count(Second) {
		return Second
	}
	return First
}

// Validate rejects boards that could not arise from alternating play
func (r *Rules) Validate(b *Board) error {
	if !r.fits(b) {
		return fmt.Errorf("%w: board shape does not match %s", ErrInvalidPosition, r.Name)
	}
	diff := b.Count(First) - b.Count(Second)
	if diff != 0 && diff != 1 {
		return fmt.Errorf("%w: piece balance %d", ErrInvalidPosition, diff)
	}
	if r.Discipline == GravityDrop {
		for c := 0; c < b.cols; c++ {
			for row := 1; row < b.rows; row++ {
				if b.At(row-1, c) != None && b.At(row, c) == None {
					return fmt.Errorf("%w: floating piece in column %d", ErrInvalidPosition, c)
				}
			}
		}
	}
	return nil
}
