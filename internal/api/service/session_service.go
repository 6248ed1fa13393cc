package service

import (
	"context"
	"ctchen222/nxn-tictactoe/internal/api/models"
	"ctchen222/nxn-tictactoe/internal/game"
	"ctchen222/nxn-tictactoe/internal/hub"
	"ctchen222/nxn-tictactoe/internal/room"
	"ctchen222/nxn-tictactoe/pkg/proto"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("service.session")

// ErrUnauthorized is returned for missing, invalid or foreign tokens.
var ErrUnauthorized = errors.New("unauthorized")

// SessionService defines the interface for session-related business logic.
type SessionService interface {
	Create(ctx context.Context, req *models.CreateSessionRequest) (*models.CreateSessionResponse, error)
	Get(ctx context.Context, id string) (*proto.SessionState, error)
	Move(ctx context.Context, id string, req *models.MoveRequest) (*models.MoveResponse, error)
	Restart(ctx context.Context, id string, req *models.RestartRequest) (*proto.SessionState, error)
	Suggest(ctx context.Context, id string) (*models.SuggestionResponse, error)
	Close(ctx context.Context, id string) error
	Room(id string) (*room.Room, error)
	Authorize(token, sessionID string) error
}

type sessionService struct {
	hub      *hub.Hub
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

// NewSessionService creates a new SessionService signing tokens with secret.
func NewSessionService(h *hub.Hub, secret string, tokenTTL time.Duration) SessionService {
	return &sessionService{
		hub:      h,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// Create opens a session and issues its token.
func (s *sessionService) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.CreateSessionResponse, error) {
	ctx, span := tracer.Start(ctx, "SessionService.Create", trace.WithAttributes(
		attribute.Int("game.size", req.Size),
		attribute.Int("game.mode", req.Mode),
	))
	defer span.End()

	ownerID := uuid.New().String()
	r, err := s.hub.Create(ctx, ownerID, req.Size, game.Mode(req.Mode))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create session")
		return nil, err
	}

	token, err := s.issueToken(r.ID, ownerID)
	if err != nil {
		_ = s.hub.Remove(ctx, r.ID, "token error")
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to sign token")
		return nil, err
	}

	return &models.CreateSessionResponse{
		SessionID: r.ID,
		Token:     token,
		State:     r.State(),
	}, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*proto.SessionState, error) {
	r, err := s.hub.Get(id)
	if err != nil {
		return nil, err
	}
	return r.State(), nil
}

func (s *sessionService) Move(ctx context.Context, id string, req *models.MoveRequest) (*models.MoveResponse, error) {
	r, err := s.hub.Get(id)
	if err != nil {
		return nil, err
	}
	result, err := r.SubmitMove(ctx, req.Slot)
	if err != nil {
		return nil, err
	}
	return &models.MoveResponse{Moves: result.Moves, State: result.State}, nil
}

// Restart begins a new round, keeping the current size and mode for zero
// request fields.
func (s *sessionService) Restart(ctx context.Context, id string, req *models.RestartRequest) (*proto.SessionState, error) {
	r, err := s.hub.Get(id)
	if err != nil {
		return nil, err
	}
	current := r.State()
	size, mode := current.Size, current.Mode
	if req.Size != 0 {
		size = req.Size
	}
	if req.Mode != 0 {
		mode = game.Mode(req.Mode)
	}
	result, err := r.Restart(ctx, size, mode)
	if err != nil {
		return nil, err
	}
	return result.State, nil
}

func (s *sessionService) Suggest(ctx context.Context, id string) (*models.SuggestionResponse, error) {
	r, err := s.hub.Get(id)
	if err != nil {
		return nil, err
	}
	slot, err := r.Suggest(ctx)
	if err != nil {
		return nil, err
	}
	return &models.SuggestionResponse{Slot: slot}, nil
}

func (s *sessionService) Close(ctx context.Context, id string) error {
	return s.hub.Remove(ctx, id, "closed by owner")
}

func (s *sessionService) Room(id string) (*room.Room, error) {
	return s.hub.Get(id)
}

// Authorize checks that token was issued for sessionID and has not expired.
func (s *sessionService) Authorize(token, sessionID string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if claims.Subject != sessionID {
		return fmt.Errorf("%w: token issued for another session", ErrUnauthorized)
	}
	return nil
}

func (s *sessionService) issueToken(sessionID, ownerID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sessionID,
		ID:        ownerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
