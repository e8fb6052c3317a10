// Package session sets up one expedition: it generates the world from the
// configuration and seed, places the explorer, and turns the result into a
// journal entry when the player leaves.
package session

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/green-island/internal/config"
	"github.com/vovakirdan/green-island/internal/explore"
	"github.com/vovakirdan/green-island/internal/layout"
	"github.com/vovakirdan/green-island/internal/storage"
	"github.com/vovakirdan/green-island/internal/world"
)

// Session is one player's expedition through a freshly generated world.
type Session struct {
	Player   string
	Seed     int64
	Design   layout.Design
	Mode     layout.Mode
	Explorer *explore.Explorer
	Started  time.Time

	mu    sync.Mutex
	saved bool
}

// New generates a world for seed (0 picks one from the clock) and places an
// explorer laid out for surface.
func New(cfg config.Config, surface config.SurfaceConfig, player string, seed int64, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mode, err := layout.ParseMode(surface.Mode)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	start := time.Now()
	w, err := world.New(world.OptionsFromConfig(cfg.World), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	logger.Debug("world generated",
		"seed", seed,
		"size", w.Size(),
		"animals", w.AnimalCount(),
		"took", time.Since(start).Round(time.Millisecond),
	)

	d := layout.DesignFromConfig(cfg.Layout, surface)
	return &Session{
		Player:   player,
		Seed:     seed,
		Design:   d,
		Mode:     mode,
		Explorer: explore.New(w, d),
		Started:  time.Now(),
	}, nil
}

// Expedition returns the journal entry for the session as of now.
func (s *Session) Expedition(now time.Time) storage.Expedition {
	stats := s.Explorer.Stats()
	size := s.Explorer.World().Size()

	sightings := make(map[string]int)
	for _, k := range world.AnimalKinds {
		if n := stats.Sightings[k]; n > 0 {
			sightings[k.String()] = n
		}
	}
	return storage.Expedition{
		Player:    s.Player,
		Seed:      s.Seed,
		WorldW:    size.X,
		WorldH:    size.Y,
		Steps:     stats.Steps,
		Bumps:     stats.Bumps,
		Visited:   stats.Visited,
		Duration:  now.Sub(s.Started).Round(time.Millisecond),
		Sightings: sightings,
		CreatedAt: now,
	}
}

// Save records the expedition in store once. Later calls, a nil store and
// expeditions without a single step save nothing.
func (s *Session) Save(store *storage.Store, now time.Time) (saved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saved || store == nil || s.Explorer.Stats().Steps == 0 {
		return false, nil
	}
	if _, err := store.SaveExpedition(s.Expedition(now)); err != nil {
		return false, err
	}
	s.saved = true
	return true, nil
}

// Finish saves the expedition, logging the outcome. Frontends call it when
// the player leaves.
func (s *Session) Finish(store *storage.Store, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	saved, err := s.Save(store, time.Now())
	switch {
	case err != nil:
		logger.Warn("could not save expedition", "player", s.Player, "error", err)
	case saved:
		stats := s.Explorer.Stats()
		logger.Info("expedition saved",
			"player", s.Player,
			"seed", s.Seed,
			"steps", stats.Steps,
			"seen", stats.SightingsTotal(),
		)
	}
}
