package session

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/green-island/internal/config"
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/layout"
	"github.com/vovakirdan/green-island/internal/storage"
	"github.com/vovakirdan/green-island/internal/world"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.World.Width = 60
	cfg.World.Height = 40
	cfg.World.Animals = 200
	return cfg
}

func TestNewSession(t *testing.T) {
	cfg := smallConfig()
	s, err := New(cfg, cfg.Desktop.Surface, "ana", 77, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Seed != 77 || s.Player != "ana" {
		t.Errorf("session = %+v", s)
	}
	if s.Mode != layout.UIMargin {
		t.Errorf("Mode = %v, expected ui-margin", s.Mode)
	}
	if got := s.Explorer.World().AnimalCount(); got != 200 {
		t.Errorf("AnimalCount() = %d, expected 200", got)
	}
	if s.Explorer.Pos() != core.Pt(30, 20) {
		t.Errorf("explorer at %s, expected (30,20)", s.Explorer.Pos())
	}
}

func TestNewSessionPicksSeed(t *testing.T) {
	cfg := smallConfig()
	s, err := New(cfg, cfg.Terminal.Surface, "ana", 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Seed == 0 {
		t.Error("seed 0 should be replaced by a clock seed")
	}
}

func TestNewSessionErrors(t *testing.T) {
	cfg := smallConfig()
	surface := cfg.Desktop.Surface
	surface.Mode = "stretch"
	if _, err := New(cfg, surface, "ana", 1, nil); !errors.Is(err, layout.ErrUnknownMode) {
		t.Errorf("bad mode error = %v, expected ErrUnknownMode", err)
	}

	cfg.World.Animals = cfg.World.Width * cfg.World.Height
	if _, err := New(cfg, cfg.Desktop.Surface, "ana", 1, nil); !errors.Is(err, world.ErrOvercrowded) {
		t.Errorf("overcrowded error = %v, expected ErrOvercrowded", err)
	}
}

func TestSaveSkipsIdleExpeditions(t *testing.T) {
	cfg := smallConfig()
	s, err := New(cfg, cfg.Desktop.Surface, "ana", 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if saved, err := s.Save(store, time.Now()); saved || err != nil {
		t.Errorf("Save() without steps = %v, %v; expected skip", saved, err)
	}
	if saved, err := s.Save(nil, time.Now()); saved || err != nil {
		t.Errorf("Save(nil) = %v, %v; expected skip", saved, err)
	}
}

func TestSaveRecordsExpedition(t *testing.T) {
	cfg := smallConfig()
	cfg.World.Animals = 0
	cfg.World.Plants = config.PlantThresholds{Empty: 1, NopalSmall: 1, NopalBig: 1, Ocotillo: 1}
	s, err := New(cfg, cfg.Desktop.Surface, "ana", 9, nil)
	if err != nil {
		t.Fatal(err)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 4; i++ {
		s.Explorer.Step(in)
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	now := s.Started.Add(90 * time.Second)
	saved, err := s.Save(store, now)
	if err != nil || !saved {
		t.Fatalf("Save() = %v, %v", saved, err)
	}

	if again, err := s.Save(store, now); again || err != nil {
		t.Errorf("second Save() = %v, %v; expected no-op", again, err)
	}

	list, err := store.RecentExpeditions(10)
	if err != nil || len(list) != 1 {
		t.Fatalf("RecentExpeditions() = %v, %v", list, err)
	}
	e := list[0]
	if e.Player != "ana" || e.Seed != 9 || e.Steps != 4 || e.Visited != 5 || e.WorldW != 60 || e.WorldH != 40 {
		t.Errorf("saved expedition = %+v", e)
	}
	if e.Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 90s", e.Duration)
	}
}

func TestFinishLogsSave(t *testing.T) {
	cfg := smallConfig()
	cfg.World.Animals = 0
	cfg.World.Plants = config.PlantThresholds{Empty: 1, NopalSmall: 1, NopalBig: 1, Ocotillo: 1}
	s, err := New(cfg, cfg.Terminal.Surface, "ana", 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	s.Explorer.Step(in)

	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var buf bytes.Buffer
	logger := log.New(&buf)
	s.Finish(store, logger)
	s.Finish(store, logger)

	if n := strings.Count(buf.String(), "expedition saved"); n != 1 {
		t.Errorf("logged %d saves, expected 1:\n%s", n, buf.String())
	}
	list, err := store.RecentExpeditions(10)
	if err != nil || len(list) != 1 {
		t.Errorf("RecentExpeditions() = %d entries, %v; expected 1", len(list), err)
	}
}
