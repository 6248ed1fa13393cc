package room

import (
	"context"
	"ctchen222/nxn-tictactoe/internal/player"
	"ctchen222/nxn-tictactoe/pkg/proto"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attach registers a client connection and sends it the current state.
func (r *Room) Attach(ctx context.Context, p *player.Player) error {
	if r.Closed() {
		return ErrRoomClosed
	}
	r.connMu.Lock()
	r.players[p.ID] = p
	r.connMu.Unlock()

	slog.InfoContext(ctx, "Player attached", "room.id", r.ID, "player.id", p.ID)
	r.send(ctx, p, &proto.ServerToClientMessage{Type: proto.TypeState, State: r.State()})
	return nil
}

// Detach removes a client connection.
func (r *Room) Detach(p *player.Player) {
	r.connMu.Lock()
	defer r.connMu.Unlock()
	p.Status = player.StatusDisconnected
	p.LastSeen = time.Now()
	delete(r.players, p.ID)
}

// Connections returns the number of attached clients.
func (r *Room) Connections() int {
	r.connMu.Lock()
	defer r.connMu.Unlock()
	return len(r.players)
}

// Broadcast sends a message to all connected players in the room.
func (r *Room) Broadcast(ctx context.Context, message *proto.ServerToClientMessage) {
	_, span := tracer.Start(ctx, "room.Broadcast", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("message.type", message.Type),
	))
	defer span.End()

	data, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error marshalling message")
		return
	}

	r.connMu.Lock()
	defer r.connMu.Unlock()
	for _, p := range r.players {
		if p.Status != player.StatusConnected {
			continue
		}
		if err := p.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.ErrorContext(ctx, "error writing message to player", "player.id", p.ID, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Error writing message to player")
			p.Status = player.StatusDisconnected
		}
	}
}

// send writes a message to a single player.
func (r *Room) send(ctx context.Context, p *player.Player, message *proto.ServerToClientMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message", "error", err)
		return
	}

	r.connMu.Lock()
	defer r.connMu.Unlock()
	if err := p.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.WarnContext(ctx, "error writing message to player", "player.id", p.ID, "error", err)
		p.Status = player.StatusDisconnected
	}
}

// Ping sends a websocket ping to every connected player.
func (r *Room) Ping() {
	r.connMu.Lock()
	defer r.connMu.Unlock()
	for _, p := range r.players {
		if p.Status != player.StatusConnected {
			continue
		}
		if err := p.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			slog.Warn("Failed to send ping to player, assuming disconnect", "player.id", p.ID, "error", err)
			p.Status = player.StatusDisconnected
		}
	}
}

// ReadPump reads client messages until the connection fails, then detaches
// the player.
func (r *Room) ReadPump(ctx context.Context, p *player.Player) {
	ctx, span := tracer.Start(ctx, "room.ReadPump", trace.WithAttributes(
		attribute.String("player.id", p.ID),
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	defer func() {
		r.Detach(p)
		p.Conn.Close()
		slog.InfoContext(ctx, "Player disconnected", "player.id", p.ID, "room.id", r.ID)
	}()

	for {
		_, msg, err := p.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "Player connection error", "player.id", p.ID, "room.id", r.ID, "error", err)
				span.RecordError(err)
				span.SetStatus(codes.Error, "Player connection error")
			}
			return
		}
		p.LastSeen = time.Now()
		r.HandleMessage(ctx, p, msg)
	}
}
