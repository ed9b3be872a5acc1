package match

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"boardsearch/internal/game"

	"github.com/google/uuid"
)

var (
	ErrNotYourTurn = errors.New("not your turn")
	ErrNotAITurn   = errors.New("not the engine's turn")
	ErrStale       = errors.New("position changed during search")
)

// Searcher picks a move for side; *game.Engine satisfies it
type Searcher interface {
	Search(b *game.Board, side game.Side) (game.Outcome, error)
}

// Result reports one engine turn. Applied is false when the move was
// discarded or no move existed.
type Result struct {
	Outcome game.Outcome
	Applied bool
	Stale   bool
	Err     error
	Elapsed time.Duration
}

// State is a copy of the match position safe to hand to a renderer
type State struct {
	ID     string
	Board  *game.Board
	Next   game.Side
	Over   bool
	Winner game.Side
	Rev    int
}

// Match alternates turns between humans and the engine. Engine searches
// run on a snapshot; the result is applied only if no newer position was
// committed in the meantime.
type Match struct {
	ID string

	mu       sync.Mutex
	game     *game.Game
	searcher Searcher
	ai       map[game.Side]bool
	rev      int
	subs     map[chan struct{}]struct{}
	logger   *log.Logger
}

func New(rules *game.Rules, s Searcher, logger *log.Logger, aiSides ...game.Side) *Match {
	m := &Match{
		ID:       uuid.NewString(),
		game:     game.NewGame(rules),
		searcher: s,
		ai:       make(map[game.Side]bool),
		rev:      1,
		subs:     make(map[chan struct{}]struct{}),
		logger:   logger,
	}
	for _, side := range aiSides {
		m.ai[side] = true
	}
	return m
}

func (m *Match) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf("match %s: "+format, append([]any{m.ID}, args...)...)
	}
}

func (m *Match) Rev() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rev
}

func (m *Match) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{
		ID:     m.ID,
		Board:  m.game.Board.Clone(),
		Next:   m.game.Next,
		Over:   m.game.Over,
		Winner: m.game.Winner,
		Rev:    m.rev,
	}
}

// AITurn reports whether the engine should move next
func (m *Match) AITurn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.game.Over && m.ai[m.game.Next]
}

// PlayHuman applies a human move for the side to move
func (m *Match) PlayHuman(move int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.game.Over {
		return game.ErrGameOver
	}
	if m.ai[m.game.Next] {
		return ErrNotYourTurn
	}
	if err := game.Play(m.game, move); err != nil {
		return fmt.Errorf("move %d: %w", move, err)
	}
	m.commit()
	return nil
}

// StartAI searches for the side to move in its own goroutine. Cancelling
// ctx does not interrupt the search; the finished result is discarded.
func (m *Match) StartAI(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)

	m.mu.Lock()
	if m.game.Over {
		m.mu.Unlock()
		out <- Result{Outcome: game.Outcome{Move: game.NoMove}, Err: game.ErrGameOver}
		return out
	}
	side := m.game.Next
	if !m.ai[side] {
		m.mu.Unlock()
		out <- Result{Outcome: game.Outcome{Move: game.NoMove}, Err: ErrNotAITurn}
		return out
	}
	board := m.game.Board.Clone()
	rev := m.rev
	m.mu.Unlock()

	go func() {
		start := time.Now()
		outcome, err := m.searcher.Search(board, side)
		res := Result{Outcome: outcome, Err: err, Elapsed: time.Since(start)}
		if err == nil {
			m.finish(ctx, side, rev, &res)
		}
		out <- res
	}()
	return out
}

func (m *Match) finish(ctx context.Context, side game.Side, rev int, res *Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		res.Stale, res.Err = true, err
		m.logf("discarding %s move %d: %v", side, res.Outcome.Move, err)
		return
	}
	if m.rev != rev {
		res.Stale, res.Err = true, ErrStale
		m.logf("discarding %s move %d: rev %d is now %d", side, res.Outcome.Move, rev, m.rev)
		return
	}
	if !res.Outcome.HasMove() {
		res.Err = game.ErrEmptyMoveSet
		return
	}
	if err := game.Play(m.game, res.Outcome.Move); err != nil {
		res.Err = fmt.Errorf("engine move %d: %w", res.Outcome.Move, err)
		return
	}
	res.Applied = true
	m.logf("%s plays %d score=%d nodes=%d in %s", side, res.Outcome.Move, res.Outcome.Score, res.Outcome.Nodes, res.Elapsed)
	m.commit()
}

// Restart clears the board; searches already in flight become stale
func (m *Match) Restart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	game.Reset(m.game)
	m.logf("restarted")
	m.commit()
}

// commit bumps the revision and wakes subscribers; m.mu must be held
func (m *Match) commit() {
	m.rev++
	for ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe returns a channel signalled after every committed change
func (m *Match) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	m.mu.Lock()
	m.subs[ch] = struct{}{}
	m.mu.Unlock()
	unsub := func() {
		m.mu.Lock()
		delete(m.subs, ch)
		m.mu.Unlock()
	}
	return ch, unsub
}

// Run plays engine turns until the game ends or a human must move
func (m *Match) Run(ctx context.Context) error {
	for m.AITurn() {
		res := <-m.StartAI(ctx)
		if res.Err != nil {
			return res.Err
		}
	}
	return ctx.Err()
}
