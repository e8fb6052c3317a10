package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/green-island/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	testCases := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"f11", tea.KeyMsg{Type: tea.KeyF11}, core.ActionToggleFullscreen},
		{"alt+enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, core.ActionToggleFullscreen},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"plain enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
		{"help", runeKey('?'), core.ActionNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestMapKeyToFrameHidesControls(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if quit := keys.MapKeyToFrame(runeKey('x'), &frame); quit {
		t.Error("unbound key reported quit")
	}
	if !frame.Has(core.ActionHideControls) {
		t.Error("any key press should hide the controls")
	}

	frame.Clear()
	keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionHideControls) {
		t.Errorf("left arrow frame = %v, expected Left and HideControls", frame.Actions)
	}

	frame.Clear()
	if quit := keys.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Error("q should report quit")
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	n := 0
	for _, group := range keys.FullHelp() {
		n += len(group)
	}
	if n != 8 {
		t.Errorf("full help lists %d bindings, expected 8", n)
	}
}
