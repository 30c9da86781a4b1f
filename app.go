package digits

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultIdleInterval is how long Run sleeps between steps.
const DefaultIdleInterval = 10 * time.Millisecond

var (
	// ErrUnknownWindow is returned when an event or request names a surface
	// that no registered window owns.
	ErrUnknownWindow = errors.New("digits: unknown window")

	// ErrScreenshotUnsupported is returned by App.Screenshot when the
	// platform does not implement Screenshotter.
	ErrScreenshotUnsupported = errors.New("digits: platform cannot take screenshots")
)

// App owns the platform, the registry of windows keyed by surface, and the
// event loop that turns platform events into signals.
type App struct {
	platform Platform
	windows  map[SurfaceID]*Widget
	order    []*Widget // registration order, for redraw and Windows

	background Color
	idle       time.Duration
	store      SignalStore
	debug      bool
	stopped    bool

	injectQueue []Event
	runner      *ScriptRunner
	updateFunc  func()
}

// Option configures an App.
type Option func(*App)

// WithBackground sets the colour windows are cleared to before redrawing.
func WithBackground(c Color) Option {
	return func(a *App) { a.background = c }
}

// WithIdleInterval sets the sleep between Run steps. Zero or negative
// disables sleeping.
func WithIdleInterval(d time.Duration) Option {
	return func(a *App) { a.idle = d }
}

// WithMaxAncestorDepth sets the ancestor walk bound (see SetMaxAncestorDepth).
// The bound is process-wide: widgets are measured without an App, so every
// App sees the value set by the most recently constructed one.
func WithMaxAncestorDepth(depth int) Option {
	return func(*App) { SetMaxAncestorDepth(depth) }
}

// WithSignalStore forwards signal invocations on widgets with a non-zero
// EntityID to store.
func WithSignalStore(store SignalStore) Option {
	return func(a *App) { a.store = store }
}

// WithLogger sets the toolkit logger (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(*App) { SetLogger(l) }
}

// WithDebug enables debug mode (see App.SetDebugMode). Like the ancestor
// bound, the Add checks it enables are process-wide.
func WithDebug(enabled bool) Option {
	return func(a *App) { a.SetDebugMode(enabled) }
}

// NewApp creates an App running on platform.
func NewApp(platform Platform, opts ...Option) *App {
	if platform == nil {
		fatalf("new app: nil platform")
	}
	a := &App{
		platform:   platform,
		windows:    make(map[SurfaceID]*Widget),
		background: DefaultBackground,
		idle:       DefaultIdleInterval,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Platform returns the platform the App runs on.
func (a *App) Platform() Platform {
	return a.platform
}

func (a *App) register(win *Widget) {
	id := win.SurfaceID()
	if _, exists := a.windows[id]; exists {
		fatalf("surface %d already belongs to a window", id)
	}
	a.windows[id] = win
	a.order = append(a.order, win)
}

func (a *App) unregister(win *Widget) {
	for id, w := range a.windows {
		if w == win {
			delete(a.windows, id)
			break
		}
	}
	for i, w := range a.order {
		if w == win {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// SetSignalStore sets the optional signal store. nil disables publishing.
func (a *App) SetSignalStore(store SignalStore) {
	a.store = store
}

// Window returns the window bound to surface id, or nil.
func (a *App) Window(id SurfaceID) *Widget {
	return a.windows[id]
}

// WindowByTitle returns the first registered window with the given title,
// or nil.
func (a *App) WindowByTitle(title string) *Widget {
	for _, w := range a.order {
		if w.Title() == title {
			return w
		}
	}
	return nil
}

// Windows returns the registered windows in creation order. The returned
// slice MUST NOT be mutated.
func (a *App) Windows() []*Widget {
	return a.order
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are logged on Add and every dispatched event is
// logged at Debug level. Event logging is per App; the Add checks follow
// the last App to call SetDebugMode.
func (a *App) SetDebugMode(enabled bool) {
	a.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set App debug flag so that widget
// operations, which have no App pointer, can check it.
var globalDebug bool

// SetUpdateFunc sets a callback run once per Step, after events are
// dispatched and before dirty windows are redrawn.
func (a *App) SetUpdateFunc(fn func()) {
	a.updateFunc = fn
}

// Stop makes the current and every later Step return false.
func (a *App) Stop() {
	a.stopped = true
}

// Stopped reports whether Stop has been called or a quit event received.
func (a *App) Stopped() bool {
	return a.stopped
}

// Step runs one iteration of the loop: the script runner, at most one
// injected event, every pending platform event, the update func, then a
// redraw of every dirty window. It returns false once the App has stopped.
func (a *App) Step() bool {
	if a.stopped {
		return false
	}
	if a.runner != nil {
		a.runner.step(a)
	}
	injected := a.processInjectedInput()

	for !a.stopped {
		ev, ok := a.platform.PollEvent()
		if !ok {
			break
		}
		// Real pointer input is ignored while synthetic input is replaying.
		if injected && ev.isPointer() {
			continue
		}
		_ = a.Dispatch(ev)
	}

	if a.updateFunc != nil && !a.stopped {
		a.updateFunc()
	}
	a.redrawDirty()
	return !a.stopped
}

// Run calls Step until the App stops or ctx is cancelled, sleeping for the
// idle interval between steps. It returns ctx.Err() on cancellation.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !a.Step() {
			return nil
		}
		if a.idle <= 0 {
			continue
		}
		timer := time.NewTimer(a.idle)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Dispatch translates one platform event. Pointer events move the window's
// focus to the widget under the pointer; presses and releases then bubble
// from that widget towards the window until a handler stops them.
// Events for unknown surfaces are logged and return ErrUnknownWindow.
func (a *App) Dispatch(ev Event) error {
	if a.debug {
		logger().Debug("dispatch", "event", ev.Type.String(), "window", ev.Window, "x", ev.X, "y", ev.Y)
	}
	if ev.Type == EventQuit {
		a.Stop()
		return nil
	}
	win := a.windows[ev.Window]
	if win == nil {
		warn("dispatch: event for unknown window", "event", ev.Type.String(), "window", ev.Window)
		return fmt.Errorf("%w: surface %d", ErrUnknownWindow, ev.Window)
	}

	switch ev.Type {
	case EventPointerMove:
		a.movePointer(win, ev.X, ev.Y)
	case EventPointerDown:
		a.bubble(SignalPress, a.movePointer(win, ev.X, ev.Y), ev)
	case EventPointerUp:
		a.bubble(SignalRelease, a.movePointer(win, ev.X, ev.Y), ev)
	case EventWindowExposed:
		win.SetDirty()
	case EventWindowClosed:
		InvokeSignal(&SignalEvent{Kind: SignalWindowClose, Widget: win})
	default:
		warn("dispatch: unknown event type", "event", ev.Type)
	}
	return nil
}

// movePointer updates win's focus for a pointer at (x, y) and returns the
// widget under it.
func (a *App) movePointer(win *Widget, x, y int) *Widget {
	leaf := win.WidgetAt(x, y)
	win.SetFocusWidget(leaf)
	return leaf
}

// bubble invokes kind on leaf and then each ancestor until a handler stops
// it. Returns Continue if nothing did.
func (a *App) bubble(kind SignalKind, leaf *Widget, ev Event) SignalResult {
	result := Continue
	walkAncestors(leaf, func(w *Widget) bool {
		result = InvokeSignal(&SignalEvent{
			Kind:   kind,
			Widget: w,
			Target: leaf,
			Button: ev.Button,
			X:      ev.X,
			Y:      ev.Y,
		})
		return result == Continue
	})
	return result
}

func (a *App) redrawDirty() {
	for _, win := range append([]*Widget(nil), a.order...) {
		if win.IsFreed() || !win.Dirty() {
			continue
		}
		win.Redraw(win.windowState().canvas)
	}
}

// Screenshot asks the platform to capture the window bound to id.
func (a *App) Screenshot(id SurfaceID, label string) error {
	if a.windows[id] == nil {
		return fmt.Errorf("%w: surface %d", ErrUnknownWindow, id)
	}
	s, ok := a.platform.(Screenshotter)
	if !ok {
		return ErrScreenshotUnsupported
	}
	if err := s.Screenshot(id, label); err != nil {
		return fmt.Errorf("digits: screenshot %q: %w", label, err)
	}
	return nil
}
