package hub

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const reasonIdle = "idle timeout"

// Run pings connected clients and evicts idle rooms until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	if h.sweepInterval <= 0 {
		slog.WarnContext(ctx, "Room sweeper disabled", "interval", h.sweepInterval)
		<-ctx.Done()
		return
	}

	slog.InfoContext(ctx, "Room sweeper started", "interval", h.sweepInterval, "idle_timeout", h.idleTimeout)
	ticker := time.NewTicker(h.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll(context.WithoutCancel(ctx))
			slog.InfoContext(ctx, "Room sweeper stopped")
			return
		case <-ticker.C:
			h.sweep(ctx)
		}
	}
}

// sweep closes rooms with no activity for longer than the idle timeout and
// pings the rest.
func (h *Hub) sweep(ctx context.Context) int {
	ctx, span := tracer.Start(ctx, "hub.sweep")
	defer span.End()

	evicted := 0
	now := h.now()
	for _, r := range h.snapshot() {
		if h.idleTimeout > 0 && now.Sub(r.LastActive()) > h.idleTimeout {
			if err := h.Remove(ctx, r.ID, reasonIdle); err == nil {
				slog.InfoContext(ctx, "Evicted idle room", "room.id", r.ID, "last_active", r.LastActive())
				evicted++
			}
			continue
		}
		r.Ping()
	}

	span.SetAttributes(attribute.Int("rooms.evicted", evicted), attribute.Int("rooms.active", h.Len()))
	return evicted
}

func (h *Hub) closeAll(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "hub.closeAll", trace.WithAttributes(
		attribute.Int("rooms.count", h.Len()),
	))
	defer span.End()

	for _, r := range h.snapshot() {
		_ = h.Remove(ctx, r.ID, "server shutting down")
	}
}
