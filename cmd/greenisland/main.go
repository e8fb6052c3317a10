// greenisland is a desert exploration toy: walk a generated island of cacti
// and wildlife in the terminal, in a window, or over SSH.
//
// Usage:
//
//	greenisland play      - Explore in the terminal
//	greenisland window    - Explore in a desktop window
//	greenisland serve     - Start SSH server for remote exploring
//	greenisland journal   - Show past expeditions
//	greenisland survey    - Count what a seed's world holds
//	greenisland config    - Print the effective configuration
//
// Global flags:
//
//	--seed <value>  - World seed for reproducible islands
//	--fps <rate>    - Set tick rate (default from config: 60)
//	--db <path>     - Set journal path (default: ~/.greenisland/journal.db)
//	--config <path> - Use a custom config YAML
//	--player <name> - Name recorded in the journal
//	--debug         - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/green-island/internal/config"
	"github.com/vovakirdan/green-island/internal/storage"
)

var (
	// Global flags
	flagSeed   int64
	flagFPS    int
	flagDBPath string
	flagConfig string
	flagPlayer string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "greenisland",
	Short: "Green Island - wander a desert island of cacti and critters",
	Long: `Green Island generates a large desert island, plants it with nopales,
ocotillos and saguaros, lets thousands of animals loose, and drops you in
the middle to look around.

Available commands:
  play     - Explore in the terminal
  window   - Explore in a desktop window
  serve    - Start SSH server for remote exploring
  journal  - Show past expeditions
  survey   - Count what a seed's world holds
  config   - Print the effective configuration

Examples:
  greenisland play
  greenisland play --seed 42
  greenisland window --fullscreen
  greenisland serve --ssh :2222
  greenisland journal --browse`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.greenisland/journal.db", "Path to expedition journal")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Name recorded in the journal (default $USER)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(surveyCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "greenisland",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig(logger *log.Logger) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// openStore opens the journal. The game still works without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open journal", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName returns the name recorded in the journal.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "wanderer"
}

// debugLogFile opens ~/.greenisland/debug.log for appending.
func debugLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".greenisland")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
