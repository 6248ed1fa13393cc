package game

import "strconv"

// PlayerMark represents the mark of a player (X, O) or the absence of one.
type PlayerMark string

const (
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"
)

// Opponent returns the other player's mark.
func (m PlayerMark) Opponent() PlayerMark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Valid reports whether m is one of the two player marks.
func (m PlayerMark) Valid() bool {
	return m == PlayerX || m == PlayerO
}

// Cell is either an unclaimed slot identified by its number or a claimed mark.
type Cell struct {
	slot int
	mark PlayerMark
}

// EmptyCell returns an unclaimed cell carrying slot.
func EmptyCell(slot int) Cell {
	return Cell{slot: slot}
}

// ClaimedCell returns a cell holding mark.
func ClaimedCell(mark PlayerMark) Cell {
	return Cell{mark: mark}
}

// Slot returns the slot identifier of an unclaimed cell.
func (c Cell) Slot() (int, bool) {
	return c.slot, c.mark == None
}

// Mark returns the mark of a claimed cell.
func (c Cell) Mark() (PlayerMark, bool) {
	return c.mark, c.mark != None
}

// Claimed reports whether a player owns the cell.
func (c Cell) Claimed() bool {
	return c.mark != None
}

func (c Cell) String() string {
	if c.Claimed() {
		return string(c.mark)
	}
	return strconv.Itoa(c.slot)
}
