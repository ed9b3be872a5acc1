package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, r *Rules, s string) *Board {
	t.Helper()
	b, err := ParseBoard(r, s)
	require.NoError(t, err)
	return b
}

func TestLineCounts(t *testing.T) {
	assert.Len(t, TicTacToe().Lines(), 8)
	// 24 horizontal, 21 vertical, 12 per diagonal direction
	assert.Len(t, ConnectFour().Lines(), 69)

	seen := map[[3]int]bool{}
	for _, l := range TicTacToe().Lines() {
		seen[[3]int{l[0], l[1], l[2]}] = true
	}
	for _, want := range [][3]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {0, 3, 6}, {1, 4, 7}, {2, 5, 8}, {0, 4, 8}, {2, 4, 6}} {
		assert.True(t, seen[want], "missing %v", want)
	}
}

func TestNewRulesRejectsBadGeometry(t *testing.T) {
	_, err := NewRules("tiny", 0, 3, 3, FreePlacement)
	assert.ErrorIs(t, err, ErrBadGeometry)
	_, err = NewRules("long", 3, 3, 4, FreePlacement)
	assert.ErrorIs(t, err, ErrBadGeometry)
}

func TestLegalMovesAscending(t *testing.T) {
	ttt := TicTacToe()
	b := mustParse(t, ttt, "X.O/.X./...")
	assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, ttt.LegalMoves(b))

	c4 := ConnectFour()
	cb := c4.NewBoard()
	for i := 0; i < 6; i++ {
		side := First
		if i%2 == 1 {
			side = Second
		}
		_, err := Drop(cb, 0, side)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, c4.LegalMoves(cb))
	assert.False(t, c4.IsLegal(cb, 0))
	assert.True(t, c4.IsLegal(cb, 6))
	assert.False(t, c4.IsLegal(cb, 7))
}

func TestFullBoardIsDraw(t *testing.T) {
	r := TicTacToe()
	b := mustParse(t, r, "XOX/XOO/OXX")
	assert.Empty(t, r.LegalMoves(b))
	assert.True(t, r.IsTerminal(b))
	assert.True(t, r.IsDraw(b))
	assert.False(t, r.HasWon(b, First))
	assert.False(t, r.HasWon(b, Second))
}

func TestFullBoardWithWinIsNotDraw(t *testing.T) {
	r := TicTacToe()
	b := mustParse(t, r, "XXX/OOX/XOO")
	assert.True(t, r.HasWon(b, First))
	assert.False(t, r.IsDraw(b))
	assert.True(t, r.IsTerminal(b))
}

func TestHasWonEverySingleLine(t *testing.T) {
	for _, r := range []*Rules{TicTacToe(), ConnectFour()} {
		for _, l := range r.Lines() {
			for _, side := range []Side{First, Second} {
				b := r.NewBoard()
				for _, i := range l {
					b.set(i, side)
				}
				assert.True(t, r.HasWon(b, side), "%s line %v for %s", r.Name, l, side)
				assert.False(t, r.HasWon(b, side.Opponent()))

				// flipping any one cell leaves K-1 pieces, too few for any line
				for _, i := range l {
					nb := b.Clone()
					nb.clear(i)
					nb.set(i, side.Opponent())
					assert.False(t, r.HasWon(nb, side), "%s line %v broken at %d", r.Name, l, i)
				}
			}
		}
	}
}

func TestHasWonFalseWithoutCompleteLine(t *testing.T) {
	r := TicTacToe()
	for _, s := range []string{".........", "XO./.X./O..", "XOX/.O./...", "XOX/XOO/OXX"} {
		b := mustParse(t, r, s)
		_, won := r.Winner(b)
		assert.False(t, won, s)
	}
}

func TestApplyUndoRoundTrip(t *testing.T) {
	r := ConnectFour()
	b := r.NewBoard()
	before := b.Clone()
	cell, err := r.Apply(b, 3, First)
	require.NoError(t, err)
	assert.Equal(t, b.Index(5, 3), cell)
	r.Undo(b, cell)
	assert.True(t, before.Equal(b))
}

func TestValidate(t *testing.T) {
	c4 := ConnectFour()
	b := c4.NewBoard()
	b.set(b.Index(4, 0), First)
	assert.ErrorIs(t, c4.Validate(b), ErrInvalidPosition, "floating piece")

	ttt := TicTacToe()
	tb := ttt.NewBoard()
	tb.set(0, Second)
	assert.ErrorIs(t, ttt.Validate(tb), ErrInvalidPosition, "second moved first")
	assert.ErrorIs(t, ttt.Validate(c4.NewBoard()), ErrInvalidPosition)
}

func TestSideToMove(t *testing.T) {
	r := TicTacToe()
	assert.Equal(t, First, r.SideToMove(r.NewBoard()))
	assert.Equal(t, Second, r.SideToMove(mustParse(t, r, "X../.../...")))
	assert.Equal(t, First, r.SideToMove(mustParse(t, r, "XO./.../...")))
}
