package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/green-island/internal/core"
)

func TestTerminalColor(t *testing.T) {
	testCases := []struct {
		name     string
		c        core.Color
		expected lipgloss.TerminalColor
		ok       bool
	}{
		{"default", core.ColorDefault, nil, false},
		{"palette", core.ColorGray, lipgloss.Color("245"), true},
		{"sky", core.ColorSky, lipgloss.Color("117"), true},
		{"rgb", core.RGB(0xa5, 0xc7, 0xed), lipgloss.Color("#a5c7ed"), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := terminalColor(tc.c)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("terminalColor(%v) = %v, %v; expected %v, %v", tc.c, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestPainterRenderKeepsText(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.Paint(core.NewRect(0, 0, 6, 1), core.RGB(10, 20, 30))
	screen.DrawText(1, 1, "dune", core.ColorSand)

	p := NewPainter(nil)
	out := p.Render(screen)

	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	if !strings.Contains(out, "dune") {
		t.Errorf("rendered output lost the text: %q", out)
	}
	if len(p.styles) != 2 {
		t.Errorf("expected 2 cached styles, got %d", len(p.styles))
	}

	p.Render(screen)
	if len(p.styles) != 2 {
		t.Errorf("second render grew the style cache to %d", len(p.styles))
	}
}
