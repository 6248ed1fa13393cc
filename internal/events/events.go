package events

import (
	"ctchen222/nxn-tictactoe/internal/game"
	"encoding/json"
)

// Pub/Sub channel constants
const (
	EventsChannel = "channel:events"
)

// Event types
const (
	TypeSessionCreated   = "session_created"
	TypeMoveApplied      = "move_applied"
	TypeGameFinished     = "game_finished"
	TypeSessionRestarted = "session_restarted"
	TypeSessionClosed    = "session_closed"
)

// Event represents a global message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// SessionCreatedPayload is the payload for the "session_created" event.
type SessionCreatedPayload struct {
	SessionID string    `json:"session_id"`
	OwnerID   string    `json:"owner_id"`
	Size      int       `json:"size"`
	Mode      game.Mode `json:"mode"`
}

// MoveAppliedPayload is the payload for the "move_applied" event.
type MoveAppliedPayload struct {
	SessionID string         `json:"session_id"`
	PlayerID  string         `json:"player_id"`
	Round     int            `json:"round"`
	Move      game.Placement `json:"move"`
}

// GameFinishedPayload is the payload for the "game_finished" event.
type GameFinishedPayload struct {
	SessionID string          `json:"session_id"`
	Round     int             `json:"round"`
	Status    game.Status     `json:"status"`
	Winner    game.PlayerMark `json:"winner,omitempty"`
	Moves     int             `json:"moves"`
}

// SessionRestartedPayload is the payload for the "session_restarted" event.
type SessionRestartedPayload struct {
	SessionID string    `json:"session_id"`
	Round     int       `json:"round"`
	Size      int       `json:"size"`
	Mode      game.Mode `json:"mode"`
}

// SessionClosedPayload is the payload for the "session_closed" event.
type SessionClosedPayload struct {
	SessionID string `json:"session_id"`
	Reason    string `json:"reason"`
}

// Marshal wraps payload in an Event envelope.
func Marshal(eventType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Event{Type: eventType, Payload: raw})
}
