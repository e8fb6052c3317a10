package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/scene"
)

// keyBindings maps keys to actions.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyF11:        core.ActionToggleFullscreen,
	ebiten.KeyEscape:     core.ActionQuit,
	ebiten.KeyQ:          core.ActionQuit,
}

// keyActions records the keys pressed this frame. Any press hides the
// on-screen controls; Alt+Enter toggles fullscreen.
func keyActions(pressed []ebiten.Key, altHeld bool, frame *core.InputFrame) {
	for _, k := range pressed {
		frame.Set(core.ActionHideControls)
		if k == ebiten.KeyEnter && altHeld {
			frame.Set(core.ActionToggleFullscreen)
			continue
		}
		frame.Set(keyBindings[k])
	}
}

// pointerActions records pointer activity: movement shows the controls and
// every press lands on whichever button it hits.
func pointerActions(pad scene.ControlPad, moved bool, presses []core.Vec2, frame *core.InputFrame) {
	if moved || len(presses) > 0 {
		frame.Set(core.ActionShowControls)
	}
	for _, p := range presses {
		frame.Set(pad.HitTest(p))
	}
}
