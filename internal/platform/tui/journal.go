package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/green-island/internal/storage"
)

const maxJournalRows = 100

// JournalView selects which expeditions the journal lists.
type JournalView int

const (
	JournalRecent JournalView = iota
	JournalLongest
)

// String returns the tab title.
func (v JournalView) String() string {
	if v == JournalLongest {
		return "Longest"
	}
	return "Recent"
}

// JournalKeyMap defines the key bindings for the journal.
type JournalKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "switch list"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "switch list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing past expeditions.
type JournalModel struct {
	store       *storage.Store
	view        JournalView
	expeditions []storage.Expedition
	totals      *storage.Totals
	err         error
	table       table.Model
	help        help.Model
	keys        JournalKeyMap
	width       int
	height      int
	quitting    bool
}

// NewJournalModel creates a journal browser.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		store:  store,
		keys:   DefaultJournalKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Seed", Width: 20},
		{Title: "Steps", Width: 7},
		{Title: "Seen", Width: 5},
		{Title: "Time", Width: 9},
		{Title: "Date", Width: 13},
	}

	// Narrow terminals lose the seed column first.
	if m.width > 0 && m.width < 90 {
		columns[2].Width = 0
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the current list and the journal totals.
func (m *JournalModel) load() {
	m.expeditions = nil
	m.totals = nil
	m.err = nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	var err error
	switch m.view {
	case JournalLongest:
		m.expeditions, err = m.store.LongestExpeditions(maxJournalRows)
	default:
		m.expeditions, err = m.store.RecentExpeditions(maxJournalRows)
	}
	if err == nil {
		m.totals, err = m.store.Totals()
	}
	m.err = err
	m.updateTableRows()
}

func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.expeditions))
	for i, e := range m.expeditions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.Player,
			fmt.Sprintf("%d", e.Seed),
			fmt.Sprintf("%d", e.Steps),
			fmt.Sprintf("%d", e.TotalSightings()),
			e.Duration.Round(time.Second).String(),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
			m.view = 1 - m.view
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("EXPEDITION JOURNAL", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if summary := m.renderTotals(); summary != "" {
		b.WriteString(centerText(summary, m.width))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m JournalModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Padding(0, 1)

	tabs := make([]string, 0, 2)
	for _, v := range []JournalView{JournalRecent, JournalLongest} {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+v.String()+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No journal available.")
	case m.err != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.err.Error())
	case len(m.expeditions) == 0:
		return emptyStyle.Render("No expeditions recorded yet.\nGo for a walk to fill the journal!")
	}
	return m.table.View()
}

// renderTotals summarises the whole journal in one line.
func (m JournalModel) renderTotals() string {
	if m.totals == nil || m.totals.Expeditions == 0 {
		return ""
	}
	t := m.totals
	seen := 0
	for _, n := range t.Sightings {
		seen += n
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	return style.Render(fmt.Sprintf("%d expeditions by %d players  %d steps  %d animals seen  %s outdoors",
		t.Expeditions, t.Players, t.Steps, seen, t.Duration.Round(time.Second)))
}

// RunJournal runs the journal browser.
func RunJournal(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewJournalModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	centered := make([]string, len(lines))

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth >= width {
			centered[i] = line
			continue
		}
		padding := (width - lineWidth) / 2
		centered[i] = strings.Repeat(" ", padding) + line
	}

	return strings.Join(centered, "\n")
}
