package models

import (
	"ctchen222/nxn-tictactoe/internal/game"
	"ctchen222/nxn-tictactoe/pkg/proto"
)

// CreateSessionRequest defines the structure for a new session request.
type CreateSessionRequest struct {
	Size int `json:"size" binding:"required,boardsize"`
	Mode int `json:"mode" binding:"required,gamemode"`
}

// CreateSessionResponse carries the token that authorises later calls.
type CreateSessionResponse struct {
	SessionID string              `json:"session_id"`
	Token     string              `json:"token"`
	State     *proto.SessionState `json:"state"`
}

// MoveRequest defines the structure for a move request.
type MoveRequest struct {
	Slot int `json:"slot" binding:"required,min=1"`
}

// MoveResponse lists the placements made by the request, the computer's
// reply included.
type MoveResponse struct {
	Moves []game.Placement    `json:"moves"`
	State *proto.SessionState `json:"state"`
}

// RestartRequest starts a new round. Zero fields keep the current settings.
type RestartRequest struct {
	Size int `json:"size" binding:"omitempty,boardsize"`
	Mode int `json:"mode" binding:"omitempty,gamemode"`
}

// SuggestionResponse holds the move the computer would play.
type SuggestionResponse struct {
	Slot int `json:"slot"`
}
