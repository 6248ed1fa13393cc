package bot

import (
	"ctchen222/nxn-tictactoe/internal/player"

	"github.com/google/uuid"
)

// NewBotPlayer creates the player entry that stands for the computer in a
// room. It has no connection: the room asks a MoveCalculator for its moves.
func NewBotPlayer() *player.Player {
	botID := "bot-" + uuid.New().String()[:8]
	p := player.NewPlayer(botID, nil)
	p.IsBot = true
	return p
}
