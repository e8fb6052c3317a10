package scene

import (
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/layout"
)

// Button is one on-screen direction control.
type Button struct {
	Rect   core.RectF
	Action core.Action
}

// ControlPad holds the four direction buttons: up and down stacked at the
// left edge of the window, left and right at the right edge.
type ControlPad struct {
	Buttons [4]Button
}

// NewControlPad lays out the buttons for metrics m.
func NewControlPad(d layout.Design, m layout.ScreenMetrics) ControlPad {
	icon := core.Splat(m.IconSize)
	leftGap := d.PadGapLeft.Scale(m.Scale)
	rightGap := d.PadGapRight.Scale(m.Scale)
	step := core.V(0, m.IconSize+2*leftGap.Y)

	upDown := core.V(0, m.UIStart.Y).Add(leftGap)
	leftRight := core.V(m.Window.X, m.UIStart.Y).Add(core.V(-rightGap.X-m.IconSize, rightGap.Y))

	return ControlPad{Buttons: [4]Button{
		{Rect: core.RF(upDown, icon), Action: core.ActionUp},
		{Rect: core.RF(upDown.Add(step), icon), Action: core.ActionDown},
		{Rect: core.RF(leftRight, icon), Action: core.ActionLeft},
		{Rect: core.RF(leftRight.Add(step), icon), Action: core.ActionRight},
	}}
}

// HitTest returns the action of the button under p, or ActionNone.
func (p ControlPad) HitTest(pt core.Vec2) core.Action {
	for _, b := range p.Buttons {
		if b.Rect.Contains(pt) {
			return b.Action
		}
	}
	return core.ActionNone
}
