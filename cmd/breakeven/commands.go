package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/breakeven/internal/config"
	"github.com/muurk/breakeven/internal/editor"
	"github.com/muurk/breakeven/internal/logging"
	"github.com/muurk/breakeven/internal/store"
	"github.com/muurk/breakeven/internal/tui"
	"github.com/muurk/breakeven/internal/version"
)

// errNoTerminal is returned when stdin or stdout is not a terminal
var errNoTerminal = errors.New("breakeven needs an interactive terminal")

// isTerminal is replaced in tests
var isTerminal = tui.IsTerminal

// runTUI is replaced in tests
var runTUI = func(ed *editor.Editor) error {
	return tui.Run(ed)
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return withExitCode(exitUsage, err)
	}

	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return withExitCode(exitError, err)
	}
	defer logging.Sync()

	if !isTerminal() {
		return withExitCode(exitNoTerminal, errNoTerminal)
	}

	logging.Info("Starting breakeven",
		zap.String("version", version.Full()),
		zap.Bool("random_colors", cfg.RandomizeColors()),
		zap.Bool("clear_on_submit", cfg.ClearOnSubmit))

	ed := editor.New(editor.Options{
		RandomizeColors: cfg.RandomizeColors(),
		Store:           store.New(store.DefaultDir),
		ClearOnSubmit:   cfg.ClearOnSubmit,
	})

	if err := runTUI(ed); err != nil {
		logging.Error("Terminal UI failed", zap.Error(err))
		return withExitCode(exitTUIFailure, fmt.Errorf("terminal UI failed: %w", err))
	}

	logging.Info("Exiting", zap.Int("devices", ed.Len()))
	return nil
}
