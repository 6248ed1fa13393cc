package main

import (
	"context"
	"ctchen222/nxn-tictactoe/internal/bot"
	"ctchen222/nxn-tictactoe/internal/config"
	"ctchen222/nxn-tictactoe/internal/console"
	"ctchen222/nxn-tictactoe/internal/game"
	"ctchen222/nxn-tictactoe/internal/logger"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

const defaultLogFile = "tictactoe.log"

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The terminal belongs to the game.
	if cfg.Log.File == "" {
		cfg.Log.File = defaultLogFile
	}
	logFile, err := logger.Init(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logFile.Close()

	shell := console.NewShell(os.Stdin, os.Stdout, bot.NewMoveCalculator(nil))
	err = shell.Run(context.Background(), console.Settings{Size: cfg.Game.Size, Mode: game.Mode(cfg.Game.Mode)})
	switch {
	case errors.Is(err, console.ErrQuitRequested):
		fmt.Println("\nBye Bye Bye\nSee you later!!!")
	default:
		logFile.Close()
		log.Fatalf("game aborted: %v", err)
	}
}
