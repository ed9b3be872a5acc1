package game

// Place puts a piece for side on an exact empty cell
func Place(board *Board, index int, side Side) error {
	// rejects cells outside bounds
	if index < 0 || index >= board.Size() {
		return ErrOutOfRange
	}
	// rejects non playable side values
	if !side.Valid() {
		return ErrInvalidSide
	}
	if board.cells[index] != None {
		return ErrIllegalMove
	}
	board.set(index, side)
	return nil
}

// Drop adds a piece to the given column for side and returns the row it settled in
func Drop(board *Board, col int, side Side) (int, error) {
	// rejects columns outside bounds
	if col < 0 || col >= board.cols {
		return -1, ErrOutOfRange
	}
	// rejects non playable side values
	if !side.Valid() {
		return -1, ErrInvalidSide
	}
	// scans from bottom to top and tries to place the piece
	for r := board.rows - 1; r >= 0; r-- {
		i := board.Index(r, col)
		if board.cells[i] == None {
			board.set(i, side)
			return r, nil
		}
	}
	// reports a full column when no slots remain
	return -1, ErrColumnFull
}
