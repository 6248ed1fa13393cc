package hub

import (
	"context"
	"ctchen222/nxn-tictactoe/internal/events"
	"ctchen222/nxn-tictactoe/internal/game"
	"ctchen222/nxn-tictactoe/internal/room"
	"ctchen222/nxn-tictactoe/internal/telemetry"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hub")

// ErrRoomNotFound is returned when no room is registered under an id.
var ErrRoomNotFound = errors.New("room not found")

// Hub manages all the rooms.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*room.Room

	moveCalculator room.MoveCalculator
	publisher      events.Publisher
	metrics        *telemetry.Metrics

	idleTimeout   time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

// Config holds the hub dependencies.
type Config struct {
	MoveCalculator room.MoveCalculator
	Publisher      events.Publisher
	Metrics        *telemetry.Metrics
	IdleTimeout    time.Duration
	SweepInterval  time.Duration
}

// NewHub creates a new hub.
func NewHub(cfg Config) *Hub {
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Hub{
		rooms:          make(map[string]*room.Room),
		moveCalculator: cfg.MoveCalculator,
		publisher:      publisher,
		metrics:        cfg.Metrics,
		idleTimeout:    cfg.IdleTimeout,
		sweepInterval:  cfg.SweepInterval,
		now:            time.Now,
	}
}

// Create opens a room for ownerID under a fresh id.
func (h *Hub) Create(ctx context.Context, ownerID string, size int, mode game.Mode) (*room.Room, error) {
	roomID := uuid.New().String()
	ctx, span := tracer.Start(ctx, "hub.Create", trace.WithAttributes(
		attribute.String("room.id", roomID),
		attribute.String("owner.id", ownerID),
	))
	defer span.End()

	r, err := room.NewRoom(ctx, roomID, ownerID, size, mode, h.moveCalculator,
		room.WithPublisher(h.publisher),
		room.WithMetrics(h.metrics),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create room")
		return nil, err
	}

	h.mu.Lock()
	h.rooms[roomID] = r
	h.mu.Unlock()
	h.metrics.RoomOpened(ctx)

	slog.InfoContext(ctx, "Room created", "room.id", roomID, "owner.id", ownerID, "size", size, "mode", mode.String())
	return r, nil
}

// Get returns the room registered under id.
func (h *Hub) Get(id string) (*room.Room, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

// Remove unregisters and closes the room.
func (h *Hub) Remove(ctx context.Context, id, reason string) error {
	h.mu.Lock()
	r, ok := h.rooms[id]
	delete(h.rooms, id)
	h.mu.Unlock()
	if !ok {
		return ErrRoomNotFound
	}

	r.Close(ctx, reason)
	h.metrics.RoomClosed(ctx)
	return nil
}

// Len returns the number of registered rooms.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}

// snapshot copies the room list so callers can work without the lock.
func (h *Hub) snapshot() []*room.Room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rooms := make([]*room.Room, 0, len(h.rooms))
	for _, r := range h.rooms {
		rooms = append(rooms, r)
	}
	return rooms
}
