package room

import (
	"context"
	"ctchen222/nxn-tictactoe/internal/game"
	"ctchen222/nxn-tictactoe/internal/player"
	"ctchen222/nxn-tictactoe/internal/validator"
	"ctchen222/nxn-tictactoe/pkg/proto"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandleMessage handles a message from a player. It acts as a dispatcher.
// Successful moves and restarts reach every client through Broadcast; errors
// are reported to the sender only.
func (r *Room) HandleMessage(ctx context.Context, p *player.Player, rawMessage []byte) {
	ctx, span := tracer.Start(ctx, "room.HandleMessage", trace.WithAttributes(
		attribute.String("player.id", p.ID),
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		slog.WarnContext(ctx, "error unmarshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		r.send(ctx, p, &proto.ServerToClientMessage{Type: proto.TypeError, Reason: "malformed message"})
		return
	}

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from player", "player.id", p.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		r.send(ctx, p, &proto.ServerToClientMessage{Type: proto.TypeError, Reason: err.Error()})
		return
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	var err error
	switch message.Type {
	case proto.TypeMove:
		_, err = r.SubmitMove(ctx, message.Slot)
	case proto.TypeRestart:
		_, err = r.Restart(ctx, message.Size, game.Mode(message.Mode))
	}
	if err != nil {
		slog.InfoContext(ctx, "rejected player request", "player.id", p.ID, "type", message.Type, "error", err)
		r.send(ctx, p, &proto.ServerToClientMessage{Type: proto.TypeError, Reason: err.Error()})
	}
}
