package controller

import (
	"ctchen222/nxn-tictactoe/internal/api/models"
	"ctchen222/nxn-tictactoe/internal/api/response"
	"ctchen222/nxn-tictactoe/internal/api/service"
	"ctchen222/nxn-tictactoe/internal/game"
	"ctchen222/nxn-tictactoe/internal/hub"
	"ctchen222/nxn-tictactoe/internal/room"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionController handles session-related HTTP requests.
type SessionController struct {
	sessionService service.SessionService
}

// NewSessionController creates a new SessionController.
func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// Create handles the session creation endpoint.
func (sc *SessionController) Create(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := sc.sessionService.Create(c.Request.Context(), &req)
	if err != nil {
		sc.fail(c, err)
		return
	}

	response.SuccessResponseCode(c, http.StatusCreated, res)
}

// Get returns the session state.
func (sc *SessionController) Get(c *gin.Context) {
	state, err := sc.sessionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		sc.fail(c, err)
		return
	}

	response.SuccessResponse(c, state)
}

// Move plays a slot for the current player.
func (sc *SessionController) Move(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := sc.sessionService.Move(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		sc.fail(c, err)
		return
	}

	response.SuccessResponse(c, res)
}

// Restart begins a new round. An empty body keeps size and mode.
func (sc *SessionController) Restart(c *gin.Context) {
	var req models.RestartRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	state, err := sc.sessionService.Restart(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		sc.fail(c, err)
		return
	}

	response.SuccessResponse(c, state)
}

// Suggest returns the move the computer would play next.
func (sc *SessionController) Suggest(c *gin.Context) {
	res, err := sc.sessionService.Suggest(c.Request.Context(), c.Param("id"))
	if err != nil {
		sc.fail(c, err)
		return
	}

	response.SuccessResponse(c, res)
}

// Delete closes the session.
func (sc *SessionController) Delete(c *gin.Context) {
	if err := sc.sessionService.Close(c.Request.Context(), c.Param("id")); err != nil {
		sc.fail(c, err)
		return
	}

	response.SuccessResponse(c, gin.H{"message": "Session closed"})
}

func (sc *SessionController) fail(c *gin.Context, err error) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}
	response.ErrorResponse(c, code, err.Error())
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, hub.ErrRoomNotFound), errors.Is(err, room.ErrRoomClosed):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInvalidMove), errors.Is(err, game.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidSize):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
