package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/green-island/internal/platform/tui"
	"github.com/vovakirdan/green-island/internal/storage"
)

var (
	flagBrowse  bool
	flagLongest bool
	flagLimit   int
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show past expeditions",
	Long: `List the expeditions recorded in the journal, newest first.

Examples:
  greenisland journal
  greenisland journal --longest --limit 5
  greenisland journal --browse`,
	Args: cobra.NoArgs,
	Run:  runJournal,
}

func init() {
	journalCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive journal")
	journalCmd.Flags().BoolVar(&flagLongest, "longest", false, "Sort by steps instead of date")
	journalCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of expeditions to list")
}

func runJournal(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("could not open journal", "path", flagDBPath, "error", err)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunJournal(store, width, height); err != nil {
			logger.Error("journal browser failed", "error", err)
		}
		return
	}

	var list []storage.Expedition
	title := "Recent expeditions"
	if flagLongest {
		title = "Longest expeditions"
		list, err = store.LongestExpeditions(flagLimit)
	} else {
		list, err = store.RecentExpeditions(flagLimit)
	}
	if err != nil {
		store.Close()
		logger.Fatal("could not read journal", "error", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(list) == 0 {
		fmt.Println("No expeditions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'greenisland play' to go for a walk!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-20s  %6s  %5s  %8s  %s\n", "#", "Player", "Seed", "Steps", "Seen", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-20s  %6s  %5s  %8s  %s\n", "-", "------", "----", "-----", "----", "----", "----")
	for i, e := range list {
		fmt.Printf("  %-4d  %-12s  %-20d  %6d  %5d  %8s  %s\n",
			i+1, e.Player, e.Seed, e.Steps, e.TotalSightings(),
			e.Duration.Round(time.Second), e.CreatedAt.Format("2006-01-02 15:04"))
		if len(e.Sightings) > 0 {
			fmt.Printf("        seen: %s\n", formatCounts(e.Sightings))
		}
	}

	if totals, err := store.Totals(); err == nil && totals.Expeditions > 0 {
		fmt.Println()
		fmt.Printf("All time: %d expeditions by %d players, %d steps (longest %d), %s outdoors\n",
			totals.Expeditions, totals.Players, totals.Steps, totals.LongestSteps, totals.Duration.Round(time.Second))
		if len(totals.Sightings) > 0 {
			fmt.Printf("Seen: %s\n", formatCounts(totals.Sightings))
		}
	}
}

// formatCounts renders sightings as "coyote 2, turkey 1" in name order.
func formatCounts(counts map[string]int) string {
	parts := make([]string, 0, len(counts))
	for _, k := range storage.SortedKinds(counts) {
		parts = append(parts, fmt.Sprintf("%s %d", k, counts[k]))
	}
	return strings.Join(parts, ", ")
}
