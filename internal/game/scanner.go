package game

// Lines returns every line of b in scan order: row i then column i for each
// index, then the main diagonal and the anti-diagonal.
func Lines(b *Board) []Line {
	lines := make([]Line, 0, 2*b.size+2)
	for i := range b.size {
		lines = append(lines, b.row(i), b.column(i))
	}
	return append(lines, b.Diagonals()...)
}

// ScanWin returns the mark that fills a complete line, if any.
func ScanWin(b *Board) (PlayerMark, bool) {
	var winner PlayerMark
	found := scan(b, func(line Line) bool {
		mark, ok := EvaluateWin(line)
		winner = mark
		return ok
	})
	return winner, found
}

// ScanThreat returns the slot to claim on the first line one move away from
// completion. It cannot tell a winning move from a blocking one.
func ScanThreat(b *Board) (int, bool) {
	var slot int
	found := scan(b, func(line Line) bool {
		s, ok := EvaluateThreat(line)
		slot = s
		return ok
	})
	return slot, found
}

// scan walks the lines of b in fixed order and stops at the first match.
func scan(b *Board, match func(Line) bool) bool {
	for i := range b.size {
		if match(b.row(i)) || match(b.column(i)) {
			return true
		}
	}
	for _, diagonal := range b.Diagonals() {
		if match(diagonal) {
			return true
		}
	}
	return false
}
