package game

// EvaluateWin reports whether every cell of line holds the same mark and
// returns that mark.
func EvaluateWin(line Line) (PlayerMark, bool) {
	if len(line) == 0 {
		return None, false
	}
	first, ok := line[0].Mark()
	if !ok {
		return None, false
	}
	for _, cell := range line[1:] {
		if mark, ok := cell.Mark(); !ok || mark != first {
			return None, false
		}
	}
	return first, true
}

// EvaluateThreat reports whether line holds exactly two distinct values and
// returns the first unclaimed slot in it, the cell that completes or blocks
// the line.
//
// On a line of three this means two equal marks and one free cell. Longer
// lines are judged by the same rule, which over- and under-detects.
func EvaluateThreat(line Line) (int, bool) {
	if distinctValues(line) != 2 {
		return 0, false
	}
	return firstSlot(line)
}

// distinctValues counts different values in line. Every slot id is its own
// value, as is each mark.
func distinctValues(line Line) int {
	seen := make(map[Cell]struct{}, len(line))
	for _, cell := range line {
		seen[cell] = struct{}{}
	}
	return len(seen)
}

func firstSlot(line Line) (int, bool) {
	for _, cell := range line {
		if slot, ok := cell.Slot(); ok {
			return slot, true
		}
	}
	return 0, false
}
