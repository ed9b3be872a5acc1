package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange      = errors.New("move out of range")
	ErrIllegalMove     = errors.New("illegal move")
	ErrColumnFull      = fmt.Errorf("%w: column full", ErrIllegalMove)
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidPosition = errors.New("invalid position")
	ErrBadGeometry     = errors.New("bad board geometry")
	ErrGameOver        = errors.New("game over")
	ErrEmptyMoveSet    = errors.New("no legal move")
)

type Game struct {
	Rules    *Rules
	Board    *Board
	Next     Side
	Over     bool
	Winner   Side
	LastMove int
	History  []int
}

func NewGame(rules *Rules) *Game {
	return &Game{
		Rules:    rules,
		Board:    rules.NewBoard(),
		Next:     First,
		Winner:   None,
		LastMove: NoMove,
	}
}

// NewGameFrom resumes play from an existing position
func NewGameFrom(rules *Rules, board *Board) (*Game, error) {
	if err := rules.Validate(board); err != nil {
		return nil, err
	}
	g := &Game{
		Rules:    rules,
		Board:    board.Clone(),
		Next:     rules.SideToMove(board),
		LastMove: NoMove,
	}
	settle(g)
	return g, nil
}

func ToggleTurn(g *Game) {
	g.Next = g.Next.Opponent()
}

// Play applies move for the side to move and updates the result
func Play(g *Game, move int) error {
	if g.Over {
		return ErrGameOver
	}
	if _, err := g.Rules.Apply(g.Board, move, g.Next); err != nil {
		return err
	}
	g.LastMove = move
	g.History = append(g.History, move)
	if settle(g) {
		return nil
	}
	ToggleTurn(g)
	return nil
}

// settle marks the game over on a win or a draw
func settle(g *Game) bool {
	if w, ok := g.Rules.Winner(g.Board); ok {
		g.Winner, g.Over = w, true
		return true
	}
	if g.Board.IsFull() {
		g.Over = true
		return true
	}
	return false
}

func Reset(g *Game) {
	*g = *NewGame(g.Rules)
}
