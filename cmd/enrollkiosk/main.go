package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wolftech/enrollkiosk/internal/catalog"
	"github.com/wolftech/enrollkiosk/internal/config"
	"github.com/wolftech/enrollkiosk/internal/enroll"
	"github.com/wolftech/enrollkiosk/internal/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Log.AppPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer closeLog()
	logger = logger.With().Str("session", uuid.NewString()).Logger()

	cat, err := catalog.Load(cfg.Catalog.BuildingsPath)
	if err != nil {
		logger.Error().Err(err).Msg("building catalog unavailable")
		closeLog()
		os.Exit(1)
	}
	logger.Info().
		Int("buildings", len(cat.Buildings())).
		Int("departments", len(cat.Departments())).
		Msg("catalogs loaded")

	sink := &enroll.FileSink{
		Path:    cfg.Log.RecordPath,
		Command: cfg.Announce.Command,
		Args:    cfg.Announce.Args,
	}
	service := enroll.NewService(cat, sink, cfg.UI.ClockFormat, logger)

	// Fullscreen kiosk loop. The wizard has no quit binding; the program
	// ends when a record is saved or the save fails.
	program := tea.NewProgram(wizard.New(cat, service), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		logger.Error().Err(err).Msg("wizard crashed")
		closeLog()
		os.Exit(1)
	}

	m, ok := final.(wizard.Model)
	if !ok || !m.Saved() {
		if ok && m.Err() != nil {
			logger.Error().Err(m.Err()).Msg("enrollment failed")
		} else {
			logger.Error().Msg("wizard exited without saving")
		}
		closeLog()
		os.Exit(1)
	}
	logger.Info().Msg("enrollment complete")
}

// newLogger writes diagnostics to the configured file, or stderr when no
// path is set. Stdout belongs to the TUI.
func newLogger(path string) (zerolog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeLog := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("open app log %s: %w", path, err)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}
	return zerolog.New(w).With().Timestamp().Logger(), closeLog, nil
}
