package main

import (
	"context"
	"ctchen222/nxn-tictactoe/internal/api/controller"
	"ctchen222/nxn-tictactoe/internal/api/service"
	"ctchen222/nxn-tictactoe/internal/bot"
	"ctchen222/nxn-tictactoe/internal/config"
	"ctchen222/nxn-tictactoe/internal/db"
	"ctchen222/nxn-tictactoe/internal/events"
	"ctchen222/nxn-tictactoe/internal/hub"
	"ctchen222/nxn-tictactoe/internal/logger"
	"ctchen222/nxn-tictactoe/internal/server"
	"ctchen222/nxn-tictactoe/internal/telemetry"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logFile, err := logger.Init(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logFile.Close()

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Redis.Enabled {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("failed to initialize redis: %v", err)
		}
		defer rdb.Close()
		publisher = events.NewRedisPublisher(rdb)
		slog.InfoContext(ctx, "Publishing session events", "redis.addr", cfg.Redis.Addr, "channel", events.EventsChannel)
	}

	// Create hub
	h := hub.NewHub(hub.Config{
		MoveCalculator: bot.NewMoveCalculator(nil),
		Publisher:      publisher,
		Metrics:        metrics,
		IdleTimeout:    cfg.Hub.IdleTimeout,
		SweepInterval:  cfg.Hub.SweepInterval,
	})
	hubDone := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(hubDone)
	}()

	// Create services and controllers
	sessionService := service.NewSessionService(h, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	sessionController := controller.NewSessionController(sessionService)

	gin.SetMode(gin.ReleaseMode)
	srv := server.NewServer(sessionService, sessionController)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: otelhttp.NewHandler(srv.Engine(), "http.server"),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	<-hubDone

	slog.Info("Server exiting")
}
