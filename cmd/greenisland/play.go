package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/green-island/internal/assets"
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/platform/tui"
	"github.com/vovakirdan/green-island/internal/session"
)

var flagPlayMode string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore in the terminal",
	Long: `Generate an island and explore it in the terminal.

Controls:
  Arrows/WASD  - Walk
  Mouse        - Move to show the on-screen pad, click its arrows to walk
  F11          - Hide the status bar
  Ctrl+S       - Save a text screenshot
  ?            - Toggle help
  Q/Esc        - Quit

Layout modes:
  pixel-perfect - Integer scaling of the whole view (default)
  continuous    - Fractional scaling of the whole view
  ui-margin     - Scale to the control area, the view may be cropped

Examples:
  greenisland play
  greenisland play --seed 1234
  greenisland play --mode continuous`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayMode, "mode", "", "Layout mode: pixel-perfect, continuous, ui-margin")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The terminal belongs to the game while it runs; debug output goes to a file.
	logger := newLogger(os.Stderr)
	if flagDebug {
		f, err := debugLogFile()
		if err != nil {
			logger.Fatal("could not open debug log", "error", err)
		}
		defer f.Close()
		logger = newLogger(f)
	}

	cfg := loadConfig(logger)
	if flagPlayMode != "" {
		cfg.Terminal.Surface.Mode = flagPlayMode
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	art, err := assets.Load()
	if err != nil {
		logger.Fatal("could not load assets", "error", err)
	}
	s, err := session.New(cfg, cfg.Terminal.Surface, playerName(), flagSeed, logger)
	if err != nil {
		logger.Fatal("could not start expedition", "error", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rt.TickRate = cfg.TickRate
	rt.Seed = s.Seed
	rt.Player = s.Player
	if err := tui.Run(s, art, store, rt, logger); err != nil {
		logger.Error("terminal frontend failed", "error", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
