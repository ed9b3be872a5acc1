package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"
)

// NoMove is returned when the position offers nothing to play
const NoMove = -1

type Config struct {
	// Depth is the ply bound; 0 searches to the end of the game
	Depth int
	// WinScore is returned for a won position and must exceed any heuristic value
	WinScore int
	// Evaluator scores depth cutoffs; required when Depth is below the board size
	Evaluator Evaluator
	// Rand shuffles root moves so equal scores break differently; nil keeps generator order
	Rand *rand.Rand

	Logger   *log.Logger
	LogStats bool
}

// TicTacToeConfig searches the 3x3 game exhaustively
func TicTacToeConfig() Config {
	return Config{Depth: 0, WinScore: 1}
}

// ConnectFourConfig searches four plies with the window evaluator
func ConnectFourConfig(rules *Rules) Config {
	return Config{
		Depth:     4,
		WinScore:  1_000_000_000,
		Evaluator: NewWindowEvaluator(rules, DefaultWindowWeights()),
	}
}

// Outcome is the chosen move and its score for the root maximizer
type Outcome struct {
	Move    int
	Score   int
	Depth   int
	Nodes   int
	Cutoffs int
}

func (o Outcome) HasMove() bool { return o.Move != NoMove }

type Engine struct {
	rules *Rules
	cfg   Config
}

func NewEngine(rules *Rules, cfg Config) (*Engine, error) {
	if cfg.Depth < 0 {
		return nil, fmt.Errorf("engine %s: negative depth %d", rules.Name, cfg.Depth)
	}
	if cfg.WinScore <= 0 {
		return nil, fmt.Errorf("engine %s: win score must be positive", rules.Name)
	}
	if cfg.Depth != 0 && cfg.Depth < rules.BoardSize() && cfg.Evaluator == nil {
		return nil, fmt.Errorf("engine %s: depth %d needs an evaluator", rules.Name, cfg.Depth)
	}
	return &Engine{rules: rules, cfg: cfg}, nil
}

func (e *Engine) Rules() *Rules  { return e.rules }
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) depth() int {
	if e.cfg.Depth == 0 {
		return e.rules.BoardSize()
	}
	return e.cfg.Depth
}

// Search runs alpha-beta for side as the maximizer. The board is mutated
// while exploring and is restored before Search returns.
func (e *Engine) Search(b *Board, side Side) (Outcome, error) {
	return e.run(b, side, true)
}

// FullMinimax is Search without pruning; both always agree on move and score
func (e *Engine) FullMinimax(b *Board, side Side) (Outcome, error) {
	return e.run(b, side, false)
}

func (e *Engine) run(b *Board, side Side, prune bool) (Outcome, error) {
	if !side.Valid() {
		return Outcome{Move: NoMove}, ErrInvalidSide
	}
	if !e.rules.fits(b) {
		return Outcome{Move: NoMove}, fmt.Errorf("%w: board shape does not match %s", ErrInvalidPosition, e.rules.Name)
	}
	start := time.Now()
	s := &searcher{
		rules: e.rules,
		cfg:   &e.cfg,
		board: b,
		max:   side,
		prune: prune,
	}
	depth := e.depth()
	move, score := s.minimax(depth, 0, true, math.MinInt, math.MaxInt)
	out := Outcome{Move: move, Score: score, Depth: depth, Nodes: s.nodes, Cutoffs: s.cutoffs}
	if e.cfg.LogStats && e.cfg.Logger != nil {
		e.cfg.Logger.Printf("search %s side=%s depth=%d prune=%t move=%d score=%d nodes=%d cutoffs=%d elapsed=%s",
			e.rules.Name, side, depth, prune, out.Move, out.Score, out.Nodes, out.Cutoffs, time.Since(start))
	}
	return out, nil
}

type searcher struct {
	rules *Rules
	cfg   *Config
	board *Board
	max   Side
	prune bool

	nodes   int
	cutoffs int
}

func (s *searcher) terminal(depth int) (bool, int) {
	if s.rules.HasWon(s.board, s.max) {
		return true, s.cfg.WinScore
	}
	if s.rules.HasWon(s.board, s.max.Opponent()) {
		return true, -s.cfg.WinScore
	}
	if s.board.IsFull() {
		return true, 0
	}
	if depth == 0 {
		return true, s.cfg.Evaluator.Evaluate(s.board, s.max)
	}
	return false, 0
}

func (s *searcher) orderedMoves(ply int) []int {
	moves := s.rules.LegalMoves(s.board)
	if ply == 0 && s.cfg.Rand != nil {
		s.cfg.Rand.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
	}
	return moves
}

func (s *searcher) minimax(depth, ply int, maximizing bool, alpha, beta int) (int, int) {
	s.nodes++
	if done, score := s.terminal(depth); done {
		return NoMove, score
	}
	moves := s.orderedMoves(ply)
	if len(moves) == 0 {
		return NoMove, 0
	}

	if maximizing {
		best, bestMove := math.MinInt, moves[0]
		for _, m := range moves {
			cell, err := s.rules.Apply(s.board, m, s.max)
			if err != nil {
				continue
			}
			_, score := s.minimax(depth-1, ply+1, false, alpha, beta)
			s.rules.Undo(s.board, cell)
			if score > best {
				best, bestMove = score, m
			}
			alpha = max(alpha, best)
			if s.prune && alpha >= beta {
				s.cutoffs++
				break
			}
		}
		return bestMove, best
	}

	opp := s.max.Opponent()
	best, bestMove := math.MaxInt, moves[0]
	for _, m := range moves {
		cell, err := s.rules.Apply(s.board, m, opp)
		if err != nil {
			continue
		}
		_, score := s.minimax(depth-1, ply+1, true, alpha, beta)
		s.rules.Undo(s.board, cell)
		if score < best {
			best, bestMove = score, m
		}
		beta = min(beta, best)
		if s.prune && alpha >= beta {
			s.cutoffs++
			break
		}
	}
	return bestMove, best
}
