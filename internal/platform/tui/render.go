package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/green-island/internal/core"
)

// paletteCodes maps named core colors to ANSI 256 codes.
var paletteCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorSky:           "117",
	core.ColorSand:          "180",
	core.ColorBrown:         "94",
}

// terminalColor converts c for lipgloss. ColorDefault reports false: the
// terminal's own color is left alone.
func terminalColor(c core.Color) (lipgloss.TerminalColor, bool) {
	if c.IsRGB() {
		return lipgloss.Color(c.Hex()), true
	}
	code, ok := paletteCodes[c]
	if !ok {
		return nil, false
	}
	return lipgloss.Color(code), true
}

type styleKey struct {
	fg, bg core.Color
}

// Painter turns a Screen into styled text. Styles come from one renderer so
// an SSH session gets the color profile of its own terminal.
// A Painter is not safe for concurrent use.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

// NewPainter creates a painter for r, or for the default renderer when nil.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[styleKey]lipgloss.Style),
	}
}

// Renderer returns the lipgloss renderer the painter styles with.
func (p *Painter) Renderer() *lipgloss.Renderer {
	return p.renderer
}

func (p *Painter) style(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}
	if s, ok := p.styles[k]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if c, ok := terminalColor(fg); ok {
		s = s.Foreground(c)
	}
	if c, ok := terminalColor(bg); ok {
		s = s.Background(c)
	}
	p.styles[k] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors are grouped to keep escape sequences down.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Color == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(start.Color, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
