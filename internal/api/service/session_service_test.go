package service

import (
	"context"
	"ctchen222/nxn-tictactoe/internal/api/models"
	"ctchen222/nxn-tictactoe/internal/bot"
	"ctchen222/nxn-tictactoe/internal/game"
	"ctchen222/nxn-tictactoe/internal/hub"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *sessionService {
	h := hub.NewHub(hub.Config{MoveCalculator: bot.NewMoveCalculator(rand.New(rand.NewPCG(1, 2)))})
	return NewSessionService(h, "secret", time.Hour).(*sessionService)
}

func TestSessionService_Authorize(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	res, err := s.Create(ctx, &models.CreateSessionRequest{Size: 3, Mode: int(game.ModeTwoPlayers)})
	require.NoError(t, err)

	t.Run("Issued token is accepted", func(t *testing.T) {
		assert.NoError(t, s.Authorize(res.Token, res.SessionID))
	})

	t.Run("Other session is rejected", func(t *testing.T) {
		assert.ErrorIs(t, s.Authorize(res.Token, "other"), ErrUnauthorized)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { s.now = time.Now }()

		assert.ErrorIs(t, s.Authorize(res.Token, res.SessionID), ErrUnauthorized)
	})

	t.Run("Foreign signature is rejected", func(t *testing.T) {
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   res.SessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		assert.ErrorIs(t, s.Authorize(forged, res.SessionID), ErrUnauthorized)
	})

	t.Run("Token without expiry is rejected", func(t *testing.T) {
		forever, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject: res.SessionID,
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		assert.ErrorIs(t, s.Authorize(forever, res.SessionID), ErrUnauthorized)
	})
}

func TestSessionService_Restart(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	res, err := s.Create(ctx, &models.CreateSessionRequest{Size: 5, Mode: int(game.ModeTwoPlayers)})
	require.NoError(t, err)

	state, err := s.Restart(ctx, res.SessionID, &models.RestartRequest{})
	require.NoError(t, err)
	assert.Equal(t, 5, state.Size)
	assert.Equal(t, game.ModeTwoPlayers, state.Mode)
	assert.Equal(t, 2, state.Round)

	state, err = s.Restart(ctx, res.SessionID, &models.RestartRequest{Mode: int(game.ModeVsComputer)})
	require.NoError(t, err)
	assert.Equal(t, 5, state.Size)
	assert.Equal(t, game.PlayerX, state.Computer)

	_, err = s.Restart(ctx, "missing", &models.RestartRequest{})
	assert.ErrorIs(t, err, hub.ErrRoomNotFound)
}
