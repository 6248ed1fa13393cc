package bot

import (
	"ctchen222/nxn-tictactoe/internal/game"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWith places the given marks on a fresh board of size.
func boardWith(t *testing.T, size int, marks map[int]game.PlayerMark) *game.Board {
	t.Helper()
	b, err := game.NewBoard(size)
	require.NoError(t, err)
	for slot, mark := range marks {
		require.NoError(t, b.Place(slot, mark))
	}
	return b
}

func TestChooseMove(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		marks map[int]game.PlayerMark
		want  int
	}{
		{
			name: "Empty board takes the center",
			size: 3,
			want: 5,
		},
		{
			name:  "Center taken goes to top-left",
			size:  3,
			marks: map[int]game.PlayerMark{5: game.PlayerX},
			want:  1,
		},
		{
			name:  "Then bottom-left",
			size:  3,
			marks: map[int]game.PlayerMark{5: game.PlayerX, 1: game.PlayerO},
			want:  7,
		},
		{
			name:  "Then bottom-right",
			size:  5,
			marks: map[int]game.PlayerMark{13: game.PlayerX, 1: game.PlayerO, 21: game.PlayerX},
			want:  25,
		},
		{
			name:  "Then top-right",
			size:  5,
			marks: map[int]game.PlayerMark{13: game.PlayerX, 1: game.PlayerO, 21: game.PlayerX, 25: game.PlayerO},
			want:  5,
		},
		{
			name:  "Wins when two in a row",
			size:  3,
			marks: map[int]game.PlayerMark{1: game.PlayerX, 2: game.PlayerX},
			want:  3,
		},
		{
			name:  "Blocks the opponent",
			size:  3,
			marks: map[int]game.PlayerMark{1: game.PlayerO, 2: game.PlayerO, 5: game.PlayerX},
			want:  3,
		},
		{
			name:  "Center of a larger board",
			size:  5,
			marks: nil,
			want:  13,
		},
		{
			name:  "Corners of a larger board",
			size:  5,
			marks: map[int]game.PlayerMark{13: game.PlayerX, 1: game.PlayerO},
			want:  21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, tt.size, tt.marks)
			got, err := ChooseMove(b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChooseMove_Random(t *testing.T) {
	t.Run("Only one spot left", func(t *testing.T) {
		// X O X / O O X / X X .  row 3 threatens 9.
		b := boardWith(t, 3, map[int]game.PlayerMark{
			1: game.PlayerX, 2: game.PlayerO, 3: game.PlayerX,
			4: game.PlayerO, 5: game.PlayerO, 6: game.PlayerX,
			7: game.PlayerX, 8: game.PlayerX,
		})
		got, err := ChooseMove(b)
		require.NoError(t, err)
		assert.Equal(t, 9, got)
	})

	t.Run("Falls back to the last free cell without a threat", func(t *testing.T) {
		// O X X / X O O / O . X : both lines through 8 hold two different marks.
		b := boardWith(t, 3, map[int]game.PlayerMark{
			1: game.PlayerO, 2: game.PlayerX, 3: game.PlayerX,
			4: game.PlayerX, 5: game.PlayerO, 6: game.PlayerO,
			7: game.PlayerO, 9: game.PlayerX,
		})
		for range 20 {
			got, err := ChooseMove(b)
			require.NoError(t, err)
			assert.Equal(t, 8, got)
		}
	})

	t.Run("Random choice stays within available moves", func(t *testing.T) {
		// Center and corners of a 5x5 board taken in a way that leaves no threat.
		b := boardWith(t, 5, map[int]game.PlayerMark{
			13: game.PlayerX, 1: game.PlayerO, 21: game.PlayerX, 25: game.PlayerO, 5: game.PlayerX,
		})
		calc := NewMoveCalculator(rand.New(rand.NewPCG(1, 2)))
		available := b.AvailableMoves()
		for range 50 {
			got, err := calc.CalculateNextMove(b)
			require.NoError(t, err)
			assert.Contains(t, available, got)
		}
	})
}

func TestChooseMove_FullBoard(t *testing.T) {
	b := boardWith(t, 3, map[int]game.PlayerMark{
		1: game.PlayerX, 2: game.PlayerO, 3: game.PlayerX,
		4: game.PlayerX, 5: game.PlayerO, 6: game.PlayerO,
		7: game.PlayerO, 8: game.PlayerX, 9: game.PlayerX,
	})

	_, err := ChooseMove(b)
	assert.ErrorIs(t, err, game.ErrNoMovesAvailable)
}

func TestMoveCalculator_Concurrent(t *testing.T) {
	calc := NewMoveCalculator(rand.New(rand.NewPCG(7, 7)))
	b := boardWith(t, 3, nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := calc.CalculateNextMove(b)
			assert.NoError(t, err)
			assert.Equal(t, 5, got)
		}()
	}
	wg.Wait()
}

func TestNewBotPlayer(t *testing.T) {
	p := NewBotPlayer()
	assert.True(t, p.IsBot)
	assert.Regexp(t, `^bot-[0-9a-f]{8}$`, p.ID)
	assert.Nil(t, p.Conn)
}
