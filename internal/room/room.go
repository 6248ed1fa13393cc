package room

import (
	"context"
	"ctchen222/nxn-tictactoe/internal/bot"
	"ctchen222/nxn-tictactoe/internal/events"
	"ctchen222/nxn-tictactoe/internal/game"
	"ctchen222/nxn-tictactoe/internal/player"
	"ctchen222/nxn-tictactoe/internal/telemetry"
	"ctchen222/nxn-tictactoe/pkg/proto"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("room")

// ErrRoomClosed is returned by operations on a closed room.
var ErrRoomClosed = errors.New("room closed")

// MoveCalculator defines an interface for an agent that can calculate a game move.
type MoveCalculator interface {
	CalculateNextMove(b *game.Board) (int, error)
}

// MoveResult reports the placements made by one request, the human move
// first, then the computer's reply if any.
type MoveResult struct {
	Moves   []game.Placement
	Outcome game.Outcome
	State   *proto.SessionState
}

// Room hosts one game session. All session access goes through mu so that
// exactly one move is in flight at a time.
type Room struct {
	ID      string
	OwnerID string

	mu         sync.Mutex
	session    *game.Session
	computer   *player.Player
	lastActive time.Time
	closed     bool

	connMu  sync.Mutex
	players map[string]*player.Player

	moveCalculator MoveCalculator
	publisher      events.Publisher
	metrics        *telemetry.Metrics
}

// Option configures a Room.
type Option func(*Room)

// WithPublisher sets the event publisher. Defaults to events.NopPublisher.
func WithPublisher(p events.Publisher) Option {
	return func(r *Room) { r.publisher = p }
}

// WithMetrics sets the instruments updated on every move.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(r *Room) { r.metrics = m }
}

// moveRecord is a placement together with who made it.
type moveRecord struct {
	placement  game.Placement
	playerID   string
	byComputer bool
}

// NewRoom creates a room around a fresh session. When the computer opens,
// its first move is already on the board.
func NewRoom(ctx context.Context, id, ownerID string, size int, mode game.Mode, calculator MoveCalculator, opts ...Option) (*Room, error) {
	ctx, span := tracer.Start(ctx, "room.NewRoom", trace.WithAttributes(
		attribute.String("room.id", id),
		attribute.Int("game.size", size),
		attribute.String("game.mode", mode.String()),
	))
	defer span.End()

	session, err := game.NewSession(size, mode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid session parameters")
		return nil, err
	}

	r := &Room{
		ID:             id,
		OwnerID:        ownerID,
		session:        session,
		computer:       bot.NewBotPlayer(),
		lastActive:     time.Now(),
		players:        make(map[string]*player.Player),
		moveCalculator: calculator,
		publisher:      events.NopPublisher{},
	}
	for _, opt := range opts {
		opt(r)
	}

	r.mu.Lock()
	records, err := r.playComputerLocked()
	outcome, round, moves := r.session.Outcome(), r.session.Round(), len(r.session.History())
	r.mu.Unlock()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Computer failed to open")
		return nil, err
	}

	r.publish(ctx, events.TypeSessionCreated, events.SessionCreatedPayload{
		SessionID: id,
		OwnerID:   ownerID,
		Size:      size,
		Mode:      mode,
	})
	r.report(ctx, round, records, outcome, moves)
	return r, nil
}

// SubmitMove plays slot for the current human player and, in a game against
// the computer, the computer's reply.
func (r *Room) SubmitMove(ctx context.Context, slot int) (*MoveResult, error) {
	ctx, span := tracer.Start(ctx, "room.SubmitMove", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.Int("move.slot", slot),
	))
	defer span.End()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRoomClosed
	}

	p, outcome, err := r.session.SubmitMove(slot)
	if err != nil {
		r.mu.Unlock()
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid move")
		return nil, err
	}
	span.SetAttributes(attribute.Bool("move.valid", true))
	records := []moveRecord{{placement: p, playerID: r.OwnerID}}

	if !outcome.Terminal() {
		reply, err := r.playComputerLocked()
		if err != nil {
			r.mu.Unlock()
			span.RecordError(err)
			span.SetStatus(codes.Error, "Computer failed to move")
			return nil, err
		}
		records = append(records, reply...)
	}

	result := &MoveResult{
		Moves:   placements(records),
		Outcome: r.session.Outcome(),
		State:   proto.NewSessionState(r.ID, r.session),
	}
	round, moves := r.session.Round(), len(r.session.History())
	r.lastActive = time.Now()
	r.mu.Unlock()

	span.SetAttributes(attribute.String("game.status", string(result.Outcome.Status)))
	r.report(ctx, round, records, result.Outcome, moves)
	r.Broadcast(ctx, &proto.ServerToClientMessage{Type: proto.TypeState, State: result.State, Moves: result.Moves})
	return result, nil
}

// Suggest returns the move the computer would play for the current player.
func (r *Room) Suggest(ctx context.Context) (int, error) {
	_, span := tracer.Start(ctx, "room.Suggest", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return 0, ErrRoomClosed
	}
	if r.session.Outcome().Terminal() {
		r.mu.Unlock()
		return 0, game.ErrGameFinished
	}
	board := r.session.Board().Clone()
	r.mu.Unlock()

	return r.moveCalculator.CalculateNextMove(board)
}

// State returns a snapshot of the session.
func (r *Room) State() *proto.SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return proto.NewSessionState(r.ID, r.session)
}

// LastActive returns the time of the last move or restart.
func (r *Room) LastActive() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastActive
}

// playComputerLocked lets the computer move while it holds the turn.
// r.mu must be held.
func (r *Room) playComputerLocked() ([]moveRecord, error) {
	var records []moveRecord
	for r.session.IsComputerTurn() {
		slot, err := r.moveCalculator.CalculateNextMove(r.session.Board())
		if err != nil {
			return records, fmt.Errorf("failed to calculate computer move: %w", err)
		}
		p, _, err := r.session.SubmitMove(slot)
		if err != nil {
			return records, fmt.Errorf("computer played an invalid move: %w", err)
		}
		records = append(records, moveRecord{placement: p, playerID: r.computer.ID, byComputer: true})
	}
	return records, nil
}

// report publishes events and updates metrics for moves made under the lock.
func (r *Room) report(ctx context.Context, round int, records []moveRecord, outcome game.Outcome, moves int) {
	for _, rec := range records {
		r.metrics.RecordMove(ctx, rec.placement, rec.byComputer)
		r.publish(ctx, events.TypeMoveApplied, events.MoveAppliedPayload{
			SessionID: r.ID,
			PlayerID:  rec.playerID,
			Round:     round,
			Move:      rec.placement,
		})
	}
	if len(records) == 0 || !outcome.Terminal() {
		return
	}

	r.metrics.RecordOutcome(ctx, outcome)
	r.publish(ctx, events.TypeGameFinished, events.GameFinishedPayload{
		SessionID: r.ID,
		Round:     round,
		Status:    outcome.Status,
		Winner:    outcome.Winner,
		Moves:     moves,
	})
	slog.InfoContext(ctx, "Game finished", "room.id", r.ID, "round", round, "status", outcome.Status, "winner", outcome.Winner)
}

func (r *Room) publish(ctx context.Context, eventType string, payload any) {
	if err := r.publisher.Publish(ctx, eventType, payload); err != nil {
		slog.ErrorContext(ctx, "failed to publish event", "room.id", r.ID, "event", eventType, "error", err)
		trace.SpanFromContext(ctx).RecordError(err)
	}
}

func placements(records []moveRecord) []game.Placement {
	out := make([]game.Placement, len(records))
	for i, rec := range records {
		out[i] = rec.placement
	}
	return out
}
