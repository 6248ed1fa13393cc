package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slots renders a line as strings for compact assertions.
func slots(line Line) []string {
	out := make([]string, len(line))
	for i, cell := range line {
		out[i] = cell.String()
	}
	return out
}

func TestNewBoard(t *testing.T) {
	for _, size := range []int{3, 5, 7, 9} {
		b, err := NewBoard(size)
		require.NoError(t, err, "size %d", size)

		moves := b.AvailableMoves()
		require.Len(t, moves, size*size)
		for i, slot := range moves {
			assert.Equal(t, i+1, slot, "size %d: slots must be 1..N² row-major", size)
		}
		assert.Equal(t, size, b.Size())
	}

	tests := []struct {
		name string
		size int
	}{
		{name: "Even size", size: 4},
		{name: "Too small odd size", size: 1},
		{name: "Zero", size: 0},
		{name: "Negative", size: -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.size)
			assert.ErrorIs(t, err, ErrInvalidSize)
			assert.Nil(t, b)
		})
	}
}

func TestBoard_Views(t *testing.T) {
	b, _ := NewBoard(3)

	rows := b.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "2", "3"}, slots(rows[0]))
	assert.Equal(t, []string{"7", "8", "9"}, slots(rows[2]))

	cols := b.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, []string{"1", "4", "7"}, slots(cols[0]))
	assert.Equal(t, []string{"3", "6", "9"}, slots(cols[2]))

	diagonals := b.Diagonals()
	require.Len(t, diagonals, 2)
	assert.Equal(t, []string{"1", "5", "9"}, slots(diagonals[0]))
	assert.Equal(t, []string{"3", "5", "7"}, slots(diagonals[1]))

	t.Run("Lines are copies", func(t *testing.T) {
		rows[0][0] = ClaimedCell(PlayerO)
		_, ok := b.SlotAt(0, 0)
		assert.True(t, ok)
	})

	t.Run("Diagonals on a larger board", func(t *testing.T) {
		b, _ := NewBoard(5)
		diagonals := b.Diagonals()
		assert.Equal(t, []string{"1", "7", "13", "19", "25"}, slots(diagonals[0]))
		assert.Equal(t, []string{"5", "9", "13", "17", "21"}, slots(diagonals[1]))
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Claims the cell holding the slot", func(t *testing.T) {
		b, _ := NewBoard(3)

		require.NoError(t, b.Place(5, PlayerX))

		mark, ok := b.Cell(1, 1).Mark()
		assert.True(t, ok)
		assert.Equal(t, PlayerX, mark)
		assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9}, b.AvailableMoves())
	})

	tests := []struct {
		name string
		slot int
		mark PlayerMark
	}{
		{name: "Already claimed", slot: 5, mark: PlayerO},
		{name: "Never existed", slot: 10, mark: PlayerX},
		{name: "Zero slot", slot: 0, mark: PlayerX},
		{name: "Missing mark", slot: 1, mark: None},
		{name: "Unknown mark", slot: 1, mark: PlayerMark("Y")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := NewBoard(3)
			require.NoError(t, b.Place(5, PlayerX))
			before := b.Strings()

			err := b.Place(tt.slot, tt.mark)

			assert.ErrorIs(t, err, ErrInvalidMove)
			assert.Equal(t, before, b.Strings())
		})
	}
}

func TestBoard_AvailableMoves(t *testing.T) {
	b, _ := NewBoard(3)
	for _, slot := range []int{1, 2, 3, 4, 6, 7, 8} {
		mark := PlayerX
		if slot%2 == 0 {
			mark = PlayerO
		}
		require.NoError(t, b.Place(slot, mark))
	}

	assert.Equal(t, []int{5, 9}, b.AvailableMoves())
	assert.False(t, b.IsFull())

	require.NoError(t, b.Place(5, PlayerO))
	require.NoError(t, b.Place(9, PlayerX))
	assert.Empty(t, b.AvailableMoves())
	assert.True(t, b.IsFull())
}

func TestBoard_Clone(t *testing.T) {
	b, _ := NewBoard(3)
	require.NoError(t, b.Place(1, PlayerX))

	clone := b.Clone()
	require.NoError(t, clone.Place(2, PlayerO))

	assert.Equal(t, [][]string{{"X", "2", "3"}, {"4", "5", "6"}, {"7", "8", "9"}}, b.Strings())
	assert.Equal(t, [][]string{{"X", "O", "3"}, {"4", "5", "6"}, {"7", "8", "9"}}, clone.Strings())
}
