package room

import (
	"context"
	"ctchen222/nxn-tictactoe/internal/events"
	"ctchen222/nxn-tictactoe/internal/game"
	"ctchen222/nxn-tictactoe/pkg/proto"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Restart begins a new round on a fresh board. The session keeps its id.
func (r *Room) Restart(ctx context.Context, size int, mode game.Mode) (*MoveResult, error) {
	ctx, span := tracer.Start(ctx, "room.Restart", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.Int("game.size", size),
		attribute.String("game.mode", mode.String()),
	))
	defer span.End()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRoomClosed
	}
	if err := r.session.Restart(size, mode); err != nil {
		r.mu.Unlock()
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to restart session")
		return nil, err
	}
	records, err := r.playComputerLocked()
	if err != nil {
		r.mu.Unlock()
		span.RecordError(err)
		span.SetStatus(codes.Error, "Computer failed to open")
		return nil, err
	}
	result := &MoveResult{
		Moves:   placements(records),
		Outcome: r.session.Outcome(),
		State:   proto.NewSessionState(r.ID, r.session),
	}
	round := r.session.Round()
	r.lastActive = time.Now()
	r.mu.Unlock()

	slog.InfoContext(ctx, "Session restarted", "room.id", r.ID, "round", round, "size", size, "mode", mode.String())
	r.publish(ctx, events.TypeSessionRestarted, events.SessionRestartedPayload{
		SessionID: r.ID,
		Round:     round,
		Size:      size,
		Mode:      mode,
	})
	r.report(ctx, round, records, result.Outcome, len(records))
	r.Broadcast(ctx, &proto.ServerToClientMessage{Type: proto.TypeState, State: result.State, Moves: result.Moves})
	return result, nil
}

// Close ends the room, notifies and disconnects every client. Closing twice
// is a no-op.
func (r *Room) Close(ctx context.Context, reason string) {
	ctx, span := tracer.Start(ctx, "room.Close", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("close.reason", reason),
	))
	defer span.End()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	r.Broadcast(ctx, &proto.ServerToClientMessage{Type: proto.TypeClosed, Reason: reason})

	r.connMu.Lock()
	for id, p := range r.players {
		if err := p.Conn.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close player connection", "player.id", id, "error", err)
		}
		delete(r.players, id)
	}
	r.connMu.Unlock()

	r.publish(ctx, events.TypeSessionClosed, events.SessionClosedPayload{SessionID: r.ID, Reason: reason})
	slog.InfoContext(ctx, "Room closed", "room.id", r.ID, "reason", reason)
}

// Closed reports whether Close has been called.
func (r *Room) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
