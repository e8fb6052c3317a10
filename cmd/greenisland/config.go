package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/green-island/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the other commands would use, as YAML.

The output is a complete config file; save it to ~/.greenisland/config.yaml
or ./configs/green_island.yaml and edit to taste.

Examples:
  greenisland config
  greenisland config --config ./small-island.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)
	cfg := loadConfig(logger)

	data, err := config.Marshal(cfg)
	if err != nil {
		logger.Fatal("could not encode config", "error", err)
	}
	os.Stdout.Write(data)
}
