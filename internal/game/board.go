package game

import "fmt"

const MinBoardSize = 3

// Line is an ordered copy of N cells taken from a row, column or diagonal.
type Line []Cell

// Board is an N×N grid. Unclaimed cells carry slot ids 1..N² assigned row-major.
type Board struct {
	size  int
	cells [][]Cell
}

// NewBoard creates a board of the given size with sequential slot ids.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	cells := make([][]Cell, size)
	for r := range size {
		cells[r] = make([]Cell, size)
		for c := range size {
			cells[r][c] = EmptyCell(r*size + c + 1)
		}
	}
	return &Board{size: size, cells: cells}, nil
}

func (b *Board) Size() int {
	return b.size
}

// Cell returns the cell at row, col. It panics on out of range indexes.
func (b *Board) Cell(row, col int) Cell {
	return b.cells[row][col]
}

// SlotAt returns the slot id at row, col if that cell is still unclaimed.
func (b *Board) SlotAt(row, col int) (int, bool) {
	return b.cells[row][col].Slot()
}

// Rows returns every row, top to bottom.
func (b *Board) Rows() []Line {
	rows := make([]Line, b.size)
	for r := range b.size {
		rows[r] = b.row(r)
	}
	return rows
}

// Columns returns every column, left to right.
func (b *Board) Columns() []Line {
	cols := make([]Line, b.size)
	for c := range b.size {
		cols[c] = b.column(c)
	}
	return cols
}

// Diagonals returns the main diagonal (0,0)-(N-1,N-1) followed by the
// anti-diagonal (0,N-1)-(N-1,0).
func (b *Board) Diagonals() []Line {
	main := make(Line, b.size)
	anti := make(Line, b.size)
	for i := range b.size {
		main[i] = b.cells[i][i]
		anti[i] = b.cells[i][b.size-1-i]
	}
	return []Line{main, anti}
}

func (b *Board) row(r int) Line {
	line := make(Line, b.size)
	copy(line, b.cells[r])
	return line
}

func (b *Board) column(c int) Line {
	line := make(Line, b.size)
	for r := range b.size {
		line[r] = b.cells[r][c]
	}
	return line
}

// Place claims the cell holding slot for mark.
func (b *Board) Place(slot int, mark PlayerMark) error {
	if !mark.Valid() {
		return fmt.Errorf("%w: unknown mark %q", ErrInvalidMove, mark)
	}
	row, col, ok := b.locate(slot)
	if !ok {
		return fmt.Errorf("%w: slot %d is not available", ErrInvalidMove, slot)
	}
	b.cells[row][col] = ClaimedCell(mark)
	return nil
}

// locate finds the unclaimed cell carrying slot.
func (b *Board) locate(slot int) (row, col int, found bool) {
	for r, rowData := range b.cells {
		for c, cell := range rowData {
			if s, ok := cell.Slot(); ok && s == slot {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// AvailableMoves returns the unclaimed slot ids in row-major order.
// An empty result means the board is full.
func (b *Board) AvailableMoves() []int {
	moves := make([]int, 0, b.size*b.size)
	for _, rowData := range b.cells {
		for _, cell := range rowData {
			if s, ok := cell.Slot(); ok {
				moves = append(moves, s)
			}
		}
	}
	return moves
}

// IsFull reports whether every cell has been claimed.
func (b *Board) IsFull() bool {
	return len(b.AvailableMoves()) == 0
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]Cell, b.size)
	for r := range b.cells {
		cells[r] = make([]Cell, b.size)
		copy(cells[r], b.cells[r])
	}
	return &Board{size: b.size, cells: cells}
}

// Strings renders the board as slot numbers and marks, row by row.
func (b *Board) Strings() [][]string {
	out := make([][]string, b.size)
	for r, rowData := range b.cells {
		out[r] = make([]string, b.size)
		for c, cell := range rowData {
			out[r][c] = cell.String()
		}
	}
	return out
}
