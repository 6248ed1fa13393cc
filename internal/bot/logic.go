package bot

import (
	"ctchen222/nxn-tictactoe/internal/game"
	"math/rand/v2"
	"sync"
)

// MoveCalculator implements the room.MoveCalculator and
// console.MoveCalculator interfaces. It is safe for concurrent use.
type MoveCalculator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMoveCalculator returns a calculator drawing random fallbacks from rng.
// A nil rng uses the global source.
func NewMoveCalculator(rng *rand.Rand) *MoveCalculator {
	return &MoveCalculator{rng: rng}
}

// CalculateNextMove picks the computer's move on b.
func (c *MoveCalculator) CalculateNextMove(b *game.Board) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return chooseMove(b, c.intN)
}

func (c *MoveCalculator) intN(n int) int {
	if c.rng == nil {
		return rand.IntN(n)
	}
	return c.rng.IntN(n)
}

// ChooseMove determines the computer's next move:
//  1. complete or block the first threatened line,
//  2. take the center, then the corners,
//  3. otherwise play any free slot at random.
func ChooseMove(b *game.Board) (int, error) {
	return chooseMove(b, rand.IntN)
}

func chooseMove(b *game.Board, intN func(int) int) (int, error) {
	available := b.AvailableMoves()
	if len(available) == 0 {
		return 0, game.ErrNoMovesAvailable
	}

	// 1. Win or block
	if slot, found := game.ScanThreat(b); found {
		return slot, nil
	}

	// 2. Center and corners
	if preferred := preferredSlots(b); len(preferred) > 0 {
		return preferred[0], nil
	}

	// 3. Random
	return available[intN(len(available))], nil
}

// preferredSlots lists the center, top-left, bottom-left, bottom-right and
// top-right cells that are still free, in that order.
func preferredSlots(b *game.Board) []int {
	last := b.Size() - 1
	mid := b.Size() / 2
	positions := [][2]int{{mid, mid}, {0, 0}, {last, 0}, {last, last}, {0, last}}

	slots := make([]int, 0, len(positions))
	for _, pos := range positions {
		if slot, ok := b.SlotAt(pos[0], pos[1]); ok {
			slots = append(slots, slot)
		}
	}
	return slots
}
