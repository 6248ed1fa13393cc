package server

import (
	"ctchen222/nxn-tictactoe/internal/api/controller"
	"ctchen222/nxn-tictactoe/internal/api/response"
	"ctchen222/nxn-tictactoe/internal/api/service"
	"ctchen222/nxn-tictactoe/internal/player"
	apivalidator "ctchen222/nxn-tictactoe/internal/validator"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

var registerOnce sync.Once

type Server struct {
	engine   *gin.Engine
	sessions service.SessionService
	upgrader websocket.Upgrader
}

func NewServer(sessions service.SessionService, sessionController *controller.SessionController) *Server {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := apivalidator.Register(v); err != nil {
				panic(err)
			}
		}
	})

	s := &Server{
		engine:   gin.New(),
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.engine.Use(gin.Recovery(), requestLogger())
	s.registerHandlers(sessionController)
	return s
}

// Engine returns the http handler.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerHandlers(sc *controller.SessionController) {
	s.engine.GET("/healthz", func(c *gin.Context) {
		response.SuccessResponse(c, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api/sessions")
	api.POST("", sc.Create)

	owned := api.Group("/:id", s.authorize())
	owned.GET("", sc.Get)
	owned.DELETE("", sc.Delete)
	owned.POST("/moves", sc.Move)
	owned.GET("/moves/suggestion", sc.Suggest)
	owned.POST("/restart", sc.Restart)

	s.engine.GET("/ws/sessions/:id", s.authorize(), s.handleWebSocket)
}

// authorize accepts a bearer token or a token query parameter issued for the
// session in the path.
func (s *Server) authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if header := c.GetHeader("Authorization"); header != "" {
			token = strings.TrimPrefix(header, "Bearer ")
		}
		if token == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "missing token")
			return
		}
		if err := s.sessions.Authorize(token, c.Param("id")); err != nil {
			slog.WarnContext(c.Request.Context(), "rejected token", "session.id", c.Param("id"), "error", err)
			response.AbortWithError(c, http.StatusUnauthorized, service.ErrUnauthorized.Error())
			return
		}
		c.Next()
	}
}

// handleWebSocket upgrades the connection, attaches it to the room and reads
// client messages until it closes.
func (s *Server) handleWebSocket(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("session.id", c.Param("id")),
	))
	defer span.End()

	r, err := s.sessions.Room(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, controller.StatusFor(err), err.Error())
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	p := player.NewPlayer("client-"+uuid.New().String()[:8], conn)
	span.SetAttributes(attribute.String("player.id", p.ID))
	if err := r.Attach(ctx, p); err != nil {
		slog.WarnContext(ctx, "Failed to attach player", "player.id", p.ID, "error", err)
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, err.Error()))
		conn.Close()
		return
	}
	r.ReadPump(ctx, p)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		slog.DebugContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
		)
	}
}
