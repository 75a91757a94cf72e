package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/eggcatch/internal/config"
	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/games/catch"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

// appLogger is set up by the root command before any subcommand runs.
// closeLog releases its output once the subcommand returns.
var (
	appLogger = log.New(io.Discard)
	closeLog  = func() error { return nil }
)

// newLogger creates the command's logger. Interactive commands own the
// terminal, so without a log file their output is discarded; servers log to
// stderr. The returned close function releases the log file, if any.
func newLogger(command, path string, debug bool) (*log.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	switch {
	case path != "":
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	case command == "serve" || command == "web":
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "eggcatch",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// mustValidConfig exits with status 1 when the configuration cannot be played.
func mustValidConfig(mode catch.Mode) config.CatchConfig {
	cfg, err := catch.LoadConfig(mode)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", cfgErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		}
		os.Exit(1)
	}
	return cfg
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		appLogger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
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

// modeFromArgs maps an optional mode argument to a game mode.
func modeFromArgs(args []string) (catch.Mode, error) {
	if len(args) == 0 {
		return catch.ModeClassic, nil
	}
	switch catch.Mode(args[0]) {
	case catch.ModeClassic, "eggcatch":
		return catch.ModeClassic, nil
	case catch.ModeMarathon, "eggcatch_marathon":
		return catch.ModeMarathon, nil
	}
	return "", fmt.Errorf("unknown mode %q (want classic or marathon)", args[0])
}

// gameID returns the registry id of a mode.
func gameID(mode catch.Mode) string {
	if mode == catch.ModeMarathon {
		return "eggcatch_marathon"
	}
	return "eggcatch"
}
