package digits

import "fmt"

type windowState struct {
	app     *App
	title   string
	surface SurfaceID
	canvas  *Canvas
	dirty   bool
	focus   *Widget // deepest widget under the pointer, or nil
}

// NewWindow creates a platform surface and a Window widget bound to it, and
// registers the window with app.
func NewWindow(app *App, title string, width, height int) (*Widget, error) {
	if app == nil {
		fatalf("new window %q: nil app", title)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("digits: create window %q: invalid size %dx%d", title, width, height)
	}
	id, err := app.platform.CreateSurface(title, width, height)
	if err != nil {
		return nil, fmt.Errorf("digits: create window %q: %w", title, err)
	}
	w := newWidget(KindWindow)
	constructWindow(w, w.head, app, title, id)
	return w, nil
}

func constructWindow(w *Widget, rec *record, app *App, title string, id SurfaceID) {
	expectRecord(rec, KindWindow)
	constructBin(w, rec.super)

	rec.state = &windowState{
		app:     app,
		title:   title,
		surface: id,
		canvas:  NewCanvas(app.platform, app.platform, id),
		dirty:   true,
	}
	rec.ops.destroy = windowDestroy
	rec.ops.redraw = windowRedraw
	rec.ops.width = windowWidth
	rec.ops.height = windowHeight

	app.register(w)
}

func (w *Widget) windowState() *windowState {
	return w.mustLayer(KindWindow).state.(*windowState)
}

// Title returns the window title.
func (w *Widget) Title() string { return w.windowState().title }

// SurfaceID returns the platform surface backing the window.
func (w *Widget) SurfaceID() SurfaceID { return w.windowState().surface }

// Dirty reports whether the window will be redrawn on the next pass.
func (w *Widget) Dirty() bool { return w.windowState().dirty }

// SetDirty schedules a redraw of the window.
func (w *Widget) SetDirty() { w.windowState().dirty = true }

// FocusWidget returns the widget currently under the pointer, or nil.
func (w *Widget) FocusWidget() *Widget { return w.windowState().focus }

// SetFocusWidget moves the window's pointer focus to focus (nil for none),
// emitting Leave on every widget the pointer left and then Enter on every
// widget it entered, outermost first. Widgets above the common ancestor of
// the old and new focus receive neither.
//
// focus must be nil, w itself or a descendant of w.
func (w *Widget) SetFocusWidget(focus *Widget) {
	st := w.windowState()
	if focus != nil && focus != w && !w.IsAncestorOf(focus) {
		fatalf("window %d: focus widget %d is not in the window", w.ID, focus.ID)
	}
	old := st.focus
	if old == focus {
		return
	}

	// focus and its ancestors, nearest first.
	var lineage []*Widget
	walkAncestors(focus, func(a *Widget) bool {
		lineage = append(lineage, a)
		return true
	})

	common := len(lineage)
	walkAncestors(old, func(a *Widget) bool {
		for i, l := range lineage {
			if l == a {
				common = i
				return false
			}
		}
		InvokeSignal(&SignalEvent{Kind: SignalLeave, Widget: a, Target: old})
		return true
	})

	for i := common - 1; i >= 0; i-- {
		InvokeSignal(&SignalEvent{Kind: SignalEnter, Widget: lineage[i], Target: focus})
	}
	st.focus = focus
}

// forgetFocus is called before removed is detached from parent. Focus inside
// the removed subtree moves to parent without any Leave signals.
func (w *Widget) forgetFocus(removed, parent *Widget) {
	st := w.windowState()
	if st.focus == nil {
		return
	}
	if st.focus == removed || removed.IsAncestorOf(st.focus) {
		st.focus = parent
	}
}

func windowWidth(w *Widget) int {
	width, _ := w.windowState().canvas.Size()
	return width
}

func windowHeight(w *Widget) int {
	_, height := w.windowState().canvas.Size()
	return height
}

// windowRedraw repaints the window when it is dirty.
func windowRedraw(w *Widget, rec *record, c *Canvas) {
	st := rec.state.(*windowState)
	if !st.dirty {
		return
	}
	c.Clear(st.app.background)
	redrawFrom(w, rec.super, c)
	c.Present()
	st.dirty = false
}

func windowDestroy(w *Widget, rec *record) {
	st := rec.state.(*windowState)
	st.focus = nil
	st.app.platform.DestroySurface(st.surface)
	destroyFrom(w, rec.super)
	st.app.unregister(w)
}
