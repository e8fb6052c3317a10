// Package desktop is the windowed frontend, drawing the scene with ebiten.
package desktop

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/green-island/internal/assets"
	"github.com/vovakirdan/green-island/internal/config"
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/layout"
	"github.com/vovakirdan/green-island/internal/scene"
	"github.com/vovakirdan/green-island/internal/session"
	"github.com/vovakirdan/green-island/internal/storage"
)

// Game implements ebiten.Game for one expedition.
type Game struct {
	session *session.Session
	store   *storage.Store
	logger  *log.Logger
	calc    *layout.Calculator
	canvas  *canvas

	input    core.InputFrame
	window   core.Vec2
	cursor   core.Point
	keys     []ebiten.Key
	touches  []ebiten.TouchID
	finished bool
}

// NewGame creates a game exploring s.
func NewGame(s *session.Session, art *assets.Assets, store *storage.Store, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		session: s,
		store:   store,
		logger:  logger,
		calc:    layout.NewCalculator(s.Design, s.Mode),
		canvas:  newCanvas(art),
		input:   core.NewInputFrame(),
	}
}

// Update reads input and steps the explorer once per tick.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return g.finish()
	}

	e := g.session.Explorer
	if fs := ebiten.IsFullscreen(); fs != e.Fullscreen() {
		// Left fullscreen through the window manager.
		e.SetFullscreen(fs)
	}

	g.readInput()
	res := e.Step(g.input)
	g.input.Clear()

	if res.FullscreenToggled {
		ebiten.SetFullscreen(e.Fullscreen())
	}
	for _, k := range res.Sighted {
		g.logger.Debug("animal spotted", "kind", k, "pos", e.Pos())
	}
	if res.Quit {
		return g.finish()
	}
	return nil
}

func (g *Game) readInput() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	keyActions(g.keys, ebiten.IsKeyPressed(ebiten.KeyAlt), &g.input)

	var presses []core.Vec2
	x, y := ebiten.CursorPosition()
	moved := core.Pt(x, y) != g.cursor
	g.cursor = core.Pt(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		presses = append(presses, core.V(float64(x), float64(y)))
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		presses = append(presses, core.V(float64(tx), float64(ty)))
	}

	pad := scene.NewControlPad(g.calc.Design(), g.calc.Metrics())
	pointerActions(pad, moved, presses, &g.input)
}

// finish records the expedition and ends the game loop.
func (g *Game) finish() error {
	if !g.finished {
		g.finished = true
		g.session.Finish(g.store, g.logger)
	}
	return ebiten.Termination
}

// Draw composes the frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.begin(screen)
	scene.Draw(g.canvas, g.session.Explorer, g.calc.Design(), g.calc.Metrics())
}

// Layout uses the window size as the screen size so the scene scales itself.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	window := core.V(float64(outsideWidth), float64(outsideHeight))
	if window != g.window {
		g.window = window
		m, scaleChanged := g.calc.Update(window)
		if scaleChanged {
			g.logger.Debug("scale changed",
				"window", fmt.Sprintf("%dx%d", outsideWidth, outsideHeight),
				"scale", m.Scale,
				"mode", g.calc.Mode(),
			)
		}
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and explores s until the player quits or closes it.
func Run(s *session.Session, art *assets.Assets, store *storage.Store, cfg config.DesktopConfig, tickRate int, logger *log.Logger) error {
	g := NewGame(s, art, store, logger)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if tickRate > 0 {
		ebiten.SetTPS(tickRate)
	}
	if cfg.Fullscreen {
		s.Explorer.SetFullscreen(true)
		ebiten.SetFullscreen(true)
	}

	err := ebiten.RunGame(g)
	// Covers a loop that ended without reaching finish.
	g.finish()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
