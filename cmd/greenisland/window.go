package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/green-island/internal/assets"
	"github.com/vovakirdan/green-island/internal/platform/desktop"
	"github.com/vovakirdan/green-island/internal/session"
)

var (
	flagFullscreen bool
	flagWindowMode string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Explore in a desktop window",
	Long: `Generate an island and explore it in a resizable window.

Controls:
  Arrows/WASD      - Walk
  Mouse/touch      - Move to show the on-screen pad, click or tap to walk
  F11, Alt+Enter   - Toggle fullscreen
  Q/Esc            - Quit

Examples:
  greenisland window
  greenisland window --fullscreen
  greenisland window --mode pixel-perfect --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	windowCmd.Flags().StringVar(&flagWindowMode, "mode", "", "Layout mode: pixel-perfect, continuous, ui-margin")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)
	cfg := loadConfig(logger)
	if flagWindowMode != "" {
		cfg.Desktop.Surface.Mode = flagWindowMode
	}
	if flagFullscreen {
		cfg.Desktop.Fullscreen = true
	}

	art, err := assets.Load()
	if err != nil {
		logger.Fatal("could not load assets", "error", err)
	}
	s, err := session.New(cfg, cfg.Desktop.Surface, playerName(), flagSeed, logger)
	if err != nil {
		logger.Fatal("could not start expedition", "error", err)
	}
	logger.Info("expedition started", "player", s.Player, "seed", s.Seed)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := desktop.Run(s, art, store, cfg.Desktop, cfg.TickRate, logger); err != nil {
		logger.Error("desktop frontend failed", "error", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
