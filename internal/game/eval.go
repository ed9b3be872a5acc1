package game

// Evaluator scores a non-terminal board from side's point of view
type Evaluator interface {
	Evaluate(b *Board, side Side) int
}

type EvaluatorFunc func(b *Board, side Side) int

func (f EvaluatorFunc) Evaluate(b *Board, side Side) int { return f(b, side) }

// WindowWeights grade windows of K cells. Threat is a magnitude subtracted
// for K-1 opponent pieces with one empty cell and is kept below Open1.
type WindowWeights struct {
	Center int `json:"center"` // per own piece in the center column
	Win    int `json:"win"`    // K own pieces
	Open1  int `json:"open1"`  // K-1 own pieces, one empty
	Open2  int `json:"open2"`  // K-2 own pieces, two empty
	Threat int `json:"threat"` // K-1 opponent pieces, one empty
}

func DefaultWindowWeights() WindowWeights {
	return WindowWeights{Center: 3, Win: 100, Open1: 5, Open2: 2, Threat: 4}
}

// WindowEvaluator favours its own progress over blocking; swapping the
// colours of a position does not negate its score.
type WindowEvaluator struct {
	rules   *Rules
	weights WindowWeights
}

func NewWindowEvaluator(rules *Rules, w WindowWeights) *WindowEvaluator {
	return &WindowEvaluator{rules: rules, weights: w}
}

func (e *WindowEvaluator) Evaluate(b *Board, side Side) int {
	score := 0
	center := e.rules.CenterCol()
	for r := 0; r < b.rows; r++ {
		if b.At(r, center) == side {
			score += e.weights.Center
		}
	}
	for _, l := range e.rules.Lines() {
		score += e.window(b, l, side)
	}
	return score
}

func (e *WindowEvaluator) window(b *Board, l Line, me Side) int {
	meCount, oppCount, empty := tally(b, l, me)
	k := len(l)
	switch {
	case oppCount > 0 && meCount > 0:
		// mixed windows can never be completed
		return 0
	case meCount == k:
		return e.weights.Win
	case meCount == k-1 && empty == 1:
		return e.weights.Open1
	case meCount == k-2 && empty == 2 && meCount > 0:
		return e.weights.Open2
	case oppCount == k-1 && empty == 1:
		return -e.weights.Threat
	}
	return 0
}

func tally(b *Board, l Line, me Side) (meCount, oppCount, empty int) {
	opp := me.Opponent()
	for _, i := range l {
		switch b.cells[i] {
		case me:
			meCount++
		case opp:
			oppCount++
		default:
			empty++
		}
	}
	return meCount, oppCount, empty
}

// LineEvaluator is the small-board heuristic: a line held only by one side
// counts 10 when one cell short of complete and 1 otherwise, mirrored for
// the opponent.
type LineEvaluator struct {
	rules *Rules
}

func NewLineEvaluator(rules *Rules) *LineEvaluator {
	return &LineEvaluator{rules: rules}
}

func (e *LineEvaluator) Evaluate(b *Board, side Side) int {
	score := 0
	for _, l := range e.rules.Lines() {
		meCount, oppCount, _ := tally(b, l, side)
		switch {
		case meCount > 0 && oppCount == 0:
			score += lineWeight(meCount, len(l))
		case oppCount > 0 && meCount == 0:
			score -= lineWeight(oppCount, len(l))
		}
	}
	return score
}

func lineWeight(n, k int) int {
	if n == k-1 {
		return 10
	}
	return 1
}
