package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func swapColours(b *Board) *Board {
	nb := b.Clone()
	for i, c := range nb.cells {
		nb.cells[i] = c.Opponent()
	}
	return nb
}

// three first-side pieces on the bottom row, second side at a1 and on top of d1
const asymmetricC4 = "......./......./......./......./...O.../O..XXX."

func TestWindowEvaluatorScores(t *testing.T) {
	r := ConnectFour()
	e := NewWindowEvaluator(r, DefaultWindowWeights())
	b := mustParse(t, r, asymmetricC4)

	// center 3, two open threes 5+5, one open two 2
	assert.Equal(t, 15, e.Evaluate(b, First))
	// center 3, two opponent threats -4-4
	assert.Equal(t, -5, e.Evaluate(b, Second))
}

func TestWindowEvaluatorIsNotSymmetric(t *testing.T) {
	r := ConnectFour()
	e := NewWindowEvaluator(r, DefaultWindowWeights())
	b := mustParse(t, r, asymmetricC4)
	swapped := swapColours(b)

	first := e.Evaluate(b, First)
	assert.NotEqual(t, -first, e.Evaluate(b, Second))
	// swapping colours is the same rule applied to the other side, not a negation
	assert.Equal(t, e.Evaluate(b, Second), e.Evaluate(swapped, First))
	assert.Equal(t, first, e.Evaluate(swapped, Second))
	assert.NotEqual(t, -first, e.Evaluate(swapped, First))
}

func TestWindowEvaluatorEmptyBoard(t *testing.T) {
	r := ConnectFour()
	e := NewWindowEvaluator(r, DefaultWindowWeights())
	assert.Zero(t, e.Evaluate(r.NewBoard(), First))
}

func TestWindowGrades(t *testing.T) {
	r := ConnectFour()
	w := DefaultWindowWeights()
	e := NewWindowEvaluator(r, w)
	b := r.NewBoard()
	l := Line{0, 1, 2, 3}

	cases := []struct {
		name  string
		cells []Side
		want  int
	}{
		{"empty", []Side{None, None, None, None}, 0},
		{"single", []Side{First, None, None, None}, 0},
		{"open two", []Side{First, None, First, None}, w.Open2},
		{"open three", []Side{First, First, None, First}, w.Open1},
		{"four", []Side{First, First, First, First}, w.Win},
		{"threat", []Side{Second, Second, Second, None}, -w.Threat},
		{"opponent two", []Side{Second, Second, None, None}, 0},
		{"mixed", []Side{First, First, First, Second}, 0},
		{"mixed threat", []Side{Second, Second, Second, First}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i, s := range tc.cells {
				b.cells[l[i]] = s
			}
			assert.Equal(t, tc.want, e.window(b, l, First))
		})
	}
}

func TestLineEvaluatorMirrors(t *testing.T) {
	r := TicTacToe()
	e := NewLineEvaluator(r)
	b := mustParse(t, r, "X../.O./...")
	assert.Equal(t, -1, e.Evaluate(b, First))
	assert.Equal(t, 1, e.Evaluate(b, Second))

	two := mustParse(t, r, "XX./.O./...")
	// row 0 open two +10, col 0 +1, col 1 mixed, diagonal mixed; O holds row 1, anti-diagonal
	assert.Equal(t, 10+1-1-1, e.Evaluate(two, First))
}

func TestEvaluatorFunc(t *testing.T) {
	var e Evaluator = EvaluatorFunc(func(b *Board, side Side) int { return b.Count(side) })
	r := TicTacToe()
	assert.Equal(t, 2, e.Evaluate(mustParse(t, r, "XX./.O./..."), First))
}
