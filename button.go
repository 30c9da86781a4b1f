package digits

type buttonState struct {
	pressed bool
}

func constructButton(w *Widget, rec *record, child *Widget) {
	expectRecord(rec, KindButton)
	constructBin(w, rec.super)

	rec.state = &buttonState{}
	rec.ops.redraw = buttonRedraw

	// The button's own handlers run before any the caller connects.
	w.Connect(SignalPress, buttonPress, nil)
	w.Connect(SignalRelease, buttonRelease, nil)
	w.Connect(SignalLeave, buttonLeave, nil)

	if child != nil {
		w.Add(child)
	}
}

// NewButton creates a Button, optionally holding child. A Button emits
// SignalClick when a press on it is followed by a release on it.
func NewButton(child *Widget) *Widget {
	w := newWidget(KindButton)
	constructButton(w, w.head, child)
	return w
}

func (w *Widget) buttonState() *buttonState {
	return w.mustLayer(KindButton).state.(*buttonState)
}

// Pressed reports whether the button is held down.
func (w *Widget) Pressed() bool {
	return w.buttonState().pressed
}

func (w *Widget) setPressed(pressed bool) {
	w.buttonState().pressed = pressed
	w.markDirty()
}

func buttonRedraw(w *Widget, rec *record, c *Canvas) {
	fill := ButtonColor
	if rec.state.(*buttonState).pressed {
		fill = ButtonPressedColor
	}
	c.FillRect(w.Bounds(), fill)
	redrawFrom(w, rec.super, c)
}

func buttonPress(ev *SignalEvent, _ any) SignalResult {
	w := ev.Widget
	if w.Pressed() {
		return Continue
	}
	w.setPressed(true)
	return Stop
}

func buttonRelease(ev *SignalEvent, _ any) SignalResult {
	w := ev.Widget
	if !w.Pressed() {
		return Continue
	}
	w.setPressed(false)
	InvokeSignal(&SignalEvent{
		Kind:   SignalClick,
		Widget: w,
		Target: ev.Target,
		Button: ev.Button,
		X:      ev.X,
		Y:      ev.Y,
	})
	return Stop
}

// buttonLeave aborts a press when the pointer moves off the button.
func buttonLeave(ev *SignalEvent, _ any) SignalResult {
	if w := ev.Widget; w.Pressed() {
		w.setPressed(false)
	}
	return Continue
}
