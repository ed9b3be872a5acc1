package game

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseBoard reads a position such as "X.O/.X./..." for the given rules.
// Whitespace and '/' separate rows and are otherwise ignored.
func ParseBoard(rules *Rules, text string) (*Board, error) {
	b := rules.NewBoard()
	i := 0
	for _, ch := range text {
		if ch == '/' || unicode.IsSpace(ch) {
			continue
		}
		side, ok := cellRune(ch)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidPosition, ch)
		}
		if i >= b.Size() {
			return nil, fmt.Errorf("%w: more than %d cells", ErrInvalidPosition, b.Size())
		}
		if side != None {
			b.set(i, side)
		}
		i++
	}
	if i != b.Size() {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidPosition, i, b.Size())
	}
	if err := rules.Validate(b); err != nil {
		return nil, err
	}
	return b, nil
}

func cellRune(ch rune) (Side, bool) {
	switch ch {
	case 'X', 'x', '1':
		return First, true
	case 'O', 'o', '2':
		return Second, true
	case '.', '_', '-', '0':
		return None, true
	}
	return None, false
}

// ParseSide accepts X/O, 1/2 or first/second
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "1", "first":
		return First, nil
	case "o", "2", "second":
		return Second, nil
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidSide, s)
}
