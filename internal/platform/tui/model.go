package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/green-island/internal/assets"
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/layout"
	"github.com/vovakirdan/green-island/internal/scene"
	"github.com/vovakirdan/green-island/internal/session"
	"github.com/vovakirdan/green-island/internal/storage"
)

// How long a status message stays up.
const statusDuration = 2 * time.Second

// Model is the Bubble Tea model for one expedition.
type Model struct {
	session  *session.Session
	store    *storage.Store
	logger   *log.Logger
	calc     *layout.Calculator
	screen   *core.Screen
	canvas   *ScreenCanvas
	painter  *Painter
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	tickRate int
	width    int
	height   int

	status      string
	statusTicks int
	quitting    bool
}

// NewModel creates a model exploring s. A nil painter draws with the
// default renderer.
func NewModel(s *session.Session, art *assets.Assets, store *storage.Store, painter *Painter, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if painter == nil {
		painter = NewPainter(nil)
	}
	if logger == nil {
		logger = log.Default()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	h := help.New()
	h.ShowAll = false

	m := Model{
		session:  s,
		store:    store,
		logger:   logger,
		calc:     layout.NewCalculator(s.Design, s.Mode),
		screen:   screen,
		canvas:   NewScreenCanvas(screen, art),
		painter:  painter,
		keys:     DefaultKeyMap(),
		help:     h,
		input:    core.NewInputFrame(),
		tickRate: cfg.TickRate,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.resize()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			m.setStatus("screenshot failed")
		} else {
			m.setStatus("saved " + filepath.Base(path))
		}
	}
	return m, nil
}

// handleMouse shows the controls on any pointer activity and presses the
// button under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.input.Set(core.ActionShowControls)
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	pad := scene.NewControlPad(m.calc.Design(), m.calc.Metrics())
	// Hit-test the middle of the clicked cell.
	m.input.Set(pad.HitTest(core.V(float64(msg.X)+0.5, float64(msg.Y)+0.5)))
	return m, nil
}

// handleTick steps the explorer with the input gathered since the last frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Explorer.Step(m.input)
	m.input.Clear()

	if res.FullscreenToggled {
		m.resize()
	}
	if len(res.Sighted) > 0 {
		names := make([]string, len(res.Sighted))
		for i, k := range res.Sighted {
			names[i] = k.String()
		}
		m.setStatus("spotted " + strings.Join(names, ", "))
	}
	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.tickRate)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTicks = int(statusDuration.Seconds() * float64(m.tickRate))
}

// statusRows returns how many rows below the scene the status bar takes.
func (m Model) statusRows() int {
	if m.session.Explorer.Fullscreen() {
		return 0
	}
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, group := range m.keys.FullHelp() {
		rows = max(rows, len(group))
	}
	return 1 + rows
}

// resize fits the screen buffer and the layout to the terminal.
func (m *Model) resize() {
	w := max(m.width, 0)
	h := max(m.height-m.statusRows(), 0)
	m.screen.Resize(w, h)

	metrics, scaleChanged := m.calc.Update(core.V(float64(w), float64(h)))
	if scaleChanged {
		m.logger.Debug("scale changed",
			"window", fmt.Sprintf("%dx%d", w, h),
			"scale", metrics.Scale,
			"mode", m.calc.Mode(),
		)
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: home directory: %w", err)
	}
	dir := filepath.Join(home, ".greenisland", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot directory: %w", err)
	}

	m.draw()
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("expedition_%d_%s.txt", m.session.Seed, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

func (m Model) draw() {
	scene.Draw(m.canvas, m.session.Explorer, m.calc.Design(), m.calc.Metrics())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	body := m.painter.Render(m.screen)
	if m.statusRows() == 0 {
		return body
	}
	return body + "\n" + m.statusBar()
}

// statusBar renders the expedition summary and the key help.
func (m Model) statusBar() string {
	e := m.session.Explorer
	stats := e.Stats()

	info := fmt.Sprintf("%s %v  steps %d  seen %d", m.session.Player, e.Pos(), stats.Steps, stats.SightingsTotal())
	if m.status != "" {
		info += "  " + m.status
	}

	r := m.painter.Renderer()
	infoStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle := r.NewStyle().Foreground(lipgloss.Color("241"))

	bar := infoStyle.Render(info)
	if m.help.ShowAll {
		return r.NewStyle().MaxWidth(m.width).Render(bar + "\n" + helpStyle.Render(m.help.View(m.keys)))
	}
	bar += "  " + helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	return r.NewStyle().MaxWidth(m.width).Render(bar)
}

// Run starts the Bubble Tea program for s in the local terminal and records
// the expedition in store when it ends.
func Run(s *session.Session, art *assets.Assets, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	model := NewModel(s, art, store, NewPainter(nil), cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	s.Finish(store, logger)
	return err
}
