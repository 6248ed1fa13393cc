package proto

import "ctchen222/nxn-tictactoe/internal/game"

// Message types
const (
	TypeMove    = "move"
	TypeRestart = "restart"
	TypeState   = "state"
	TypeError   = "error"
	TypeClosed  = "closed"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type string `json:"type" validate:"required,oneof=move restart"`
	Slot int    `json:"slot,omitempty" validate:"required_if=Type move,omitempty,min=1"`
	Size int    `json:"size,omitempty" validate:"required_if=Type restart,omitempty,boardsize"`
	Mode int    `json:"mode,omitempty" validate:"required_if=Type restart,omitempty,gamemode"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type   string           `json:"type" validate:"required"`
	Reason string           `json:"reason,omitempty"`
	State  *SessionState    `json:"state,omitempty"`
	Moves  []game.Placement `json:"moves,omitempty"`
}

// SessionState is a snapshot of a session as seen by clients.
type SessionState struct {
	ID        string          `json:"id"`
	Size      int             `json:"size"`
	Mode      game.Mode       `json:"mode"`
	Round     int             `json:"round"`
	Board     [][]string      `json:"board"`
	Available []int           `json:"available"`
	Current   game.PlayerMark `json:"current"`
	Status    game.Status     `json:"status"`
	Winner    game.PlayerMark `json:"winner,omitempty"`
	Computer  game.PlayerMark `json:"computer,omitempty"`
}

// NewSessionState captures s under the given session id.
func NewSessionState(id string, s *game.Session) *SessionState {
	outcome := s.Outcome()
	return &SessionState{
		ID:        id,
		Size:      s.Size(),
		Mode:      s.Mode(),
		Round:     s.Round(),
		Board:     s.Board().Strings(),
		Available: s.AvailableMoves(),
		Current:   s.CurrentPlayer(),
		Status:    outcome.Status,
		Winner:    outcome.Winner,
		Computer:  s.ComputerMark(),
	}
}
