package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/green-island/internal/world"
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Count what a seed's world holds",
	Long: `Generate the world for --seed (random if unset) and print a census of
its tiles: empty sand, each plant, each kind of animal.

Examples:
  greenisland survey --seed 42
  greenisland survey --config ./small-island.yaml`,
	Args: cobra.NoArgs,
	Run:  runSurvey,
}

func runSurvey(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)
	cfg := loadConfig(logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	w, err := world.New(world.OptionsFromConfig(cfg.World), rand.New(rand.NewSource(seed)))
	if err != nil {
		logger.Fatal("could not generate world", "seed", seed, "error", err)
	}
	took := time.Since(start)
	if err := w.Verify(); err != nil {
		logger.Fatal("generated world is inconsistent", "seed", seed, "error", err)
	}

	size := w.Size()
	total := size.X * size.Y
	c := w.Census()

	fmt.Printf("Survey of seed %d (%dx%d, generated in %s)\n", seed, size.X, size.Y, took.Round(time.Millisecond))
	fmt.Println()

	row := func(name string, n int) {
		fmt.Printf("  %-14s %9d  %6.2f%%\n", name, n, 100*float64(n)/float64(total))
	}
	row("sand", c.Empty)
	for _, p := range world.Plants {
		row(p.String(), c.Plants[p])
	}
	for _, k := range world.AnimalKinds {
		row(k.String(), c.Animals[k])
	}
	fmt.Println()
	fmt.Printf("  %d plants, %d animals on %d tiles\n", c.PlantTotal(), c.AnimalTotal(), total)
}
