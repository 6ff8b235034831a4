package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-whack/internal/audio"
	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/games/whack"
	"github.com/vovakirdan/tui-whack/internal/storage"
)

// env holds what a local run needs: settings, storage, sound and logs.
type env struct {
	cfg     config.WhackConfig
	store   *storage.Store
	player  audio.Player
	logger  *log.Logger
	logFile *os.File
}

// newLogger returns a logger writing to --log-file, or a silent one. The
// terminal belongs to the game while it runs.
func newLogger() (*log.Logger, *os.File) {
	if flagLogFile == "" {
		return log.New(io.Discard), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), nil
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "whack",
		Level:           log.DebugLevel,
	})
	return logger, f
}

// loadConfig loads --config, falling back to the defaults with a warning.
func loadConfig(logger *log.Logger) config.WhackConfig {
	cfg, err := config.LoadWhack(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		logger.Warn("config load failed", "path", flagConfig, "error", err)
	}
	return cfg
}

// setup prepares a local run and wires it into the game defaults.
// Missing storage or sound degrade the game rather than stop it.
func setup() *env {
	logger, logFile := newLogger()
	e := &env{
		cfg:     loadConfig(logger),
		player:  audio.Silent{},
		logger:  logger,
		logFile: logFile,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("storage unavailable", "path", flagDBPath, "error", err)
	} else {
		e.store = store
		keeper := storage.NewKeeper(store, whack.ID)
		whack.SetPersistence(keeper, keeper)
	}

	if !flagMute {
		speaker, err := audio.NewSpeaker()
		if err != nil {
			logger.Warn("sound unavailable", "error", err)
		} else {
			e.player = speaker
		}
	}

	whack.SetConfig(e.cfg)
	whack.SetPlayer(e.player)
	whack.SetLogger(logger)

	return e
}

// close releases the store, the sound device and the log file.
func (e *env) close() {
	e.player.Close()
	if e.store != nil {
		e.store.Close()
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
