package ebitenplatform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/digits"
)

// ebitenButtons maps digits mouse buttons to Ebitengine's, indexed by
// digits.MouseButton.
var ebitenButtons = [...]ebiten.MouseButton{
	digits.MouseButtonLeft:   ebiten.MouseButtonLeft,
	digits.MouseButtonMiddle: ebiten.MouseButtonMiddle,
	digits.MouseButtonRight:  ebiten.MouseButtonRight,
	digits.MouseButtonX1:     ebiten.MouseButton3,
	digits.MouseButtonX2:     ebiten.MouseButton4,
}

// inputSnapshot is the input state read once per frame.
type inputSnapshot struct {
	x, y         int
	justPressed  [len(ebitenButtons)]bool
	justReleased [len(ebitenButtons)]bool
	closing      bool
}

func readInput() inputSnapshot {
	var snap inputSnapshot
	snap.x, snap.y = ebiten.CursorPosition()
	for i, b := range ebitenButtons {
		snap.justPressed[i] = inpututil.IsMouseButtonJustPressed(b)
		snap.justReleased[i] = inpututil.IsMouseButtonJustReleased(b)
	}
	snap.closing = ebiten.IsWindowBeingClosed()
	return snap
}

// translateInput turns the difference between two frames' input into digits
// events: a move when the cursor moved, then presses, then releases, then a
// close request when the window started closing.
func translateInput(id digits.SurfaceID, prev, cur inputSnapshot) []digits.Event {
	var events []digits.Event
	if cur.x != prev.x || cur.y != prev.y {
		events = append(events, digits.Event{Type: digits.EventPointerMove, Window: id, X: cur.x, Y: cur.y})
	}
	for i, pressed := range cur.justPressed {
		if pressed {
			events = append(events, digits.Event{
				Type: digits.EventPointerDown, Window: id,
				X: cur.x, Y: cur.y, Button: digits.MouseButton(i),
			})
		}
	}
	for i, released := range cur.justReleased {
		if released {
			events = append(events, digits.Event{
				Type: digits.EventPointerUp, Window: id,
				X: cur.x, Y: cur.y, Button: digits.MouseButton(i),
			})
		}
	}
	if cur.closing && !prev.closing {
		events = append(events, digits.Event{Type: digits.EventWindowClosed, Window: id})
	}
	return events
}

// pollInput queues the events for this frame.
func (p *Platform) pollInput() {
	if p.surface == nil {
		return
	}
	cur := readInput()
	p.events = append(p.events, translateInput(p.surface.id, p.prev, cur)...)
	p.prev = cur
}
