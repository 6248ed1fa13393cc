package telemetry

import (
	"context"
	"ctchen222/nxn-tictactoe/internal/game"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "ctchen222/nxn-tictactoe"

// Metrics groups the game instruments.
type Metrics struct {
	moves         metric.Int64Counter
	gamesFinished metric.Int64Counter
	activeRooms   metric.Int64UpDownCounter
}

// NewMetrics registers the instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Marks placed on a board"),
		metric.WithUnit("{move}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}
	gamesFinished, err := meter.Int64Counter("tictactoe.games.finished",
		metric.WithDescription("Rounds that reached a win or a draw"),
		metric.WithUnit("{game}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create games counter: %w", err)
	}
	activeRooms, err := meter.Int64UpDownCounter("tictactoe.rooms.active",
		metric.WithDescription("Sessions hosted by the hub"),
		metric.WithUnit("{room}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create rooms counter: %w", err)
	}

	return &Metrics{moves: moves, gamesFinished: gamesFinished, activeRooms: activeRooms}, nil
}

// RecordMove counts one placement. A nil Metrics records nothing.
func (m *Metrics) RecordMove(ctx context.Context, p game.Placement, byComputer bool) {
	if m == nil {
		return
	}
	m.moves.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mark", string(p.Mark)),
		attribute.Bool("computer", byComputer),
	))
}

// RecordOutcome counts a finished round.
func (m *Metrics) RecordOutcome(ctx context.Context, o game.Outcome) {
	if m == nil || !o.Terminal() {
		return
	}
	m.gamesFinished.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", string(o.Status)),
		attribute.String("winner", string(o.Winner)),
	))
}

// RoomOpened and RoomClosed track the number of live rooms.
func (m *Metrics) RoomOpened(ctx context.Context) {
	if m != nil {
		m.activeRooms.Add(ctx, 1)
	}
}

func (m *Metrics) RoomClosed(ctx context.Context) {
	if m != nil {
		m.activeRooms.Add(ctx, -1)
	}
}
