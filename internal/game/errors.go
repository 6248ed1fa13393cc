package game

import "errors"

var (
	// ErrInvalidSize is returned when a board size is even or smaller than 3.
	ErrInvalidSize = errors.New("board size must be an odd number >= 3")
	// ErrInvalidMove is returned when a slot is already claimed or never existed.
	ErrInvalidMove = errors.New("invalid move")
	// ErrNoMovesAvailable means a move was requested on a full board.
	// Callers must never let this happen.
	ErrNoMovesAvailable = errors.New("no moves available")
	ErrGameFinished     = errors.New("game already finished")
)
