package digits

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatchUnknownWindow(t *testing.T) {
	app, _ := newTestApp(t)
	err := app.Dispatch(Event{Type: EventPointerDown, Window: 99})
	if !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("err = %v, want ErrUnknownWindow", err)
	}
}

func TestDispatchQuit(t *testing.T) {
	app, p := newTestApp(t)
	p.events = []Event{{Type: EventQuit}, {Type: EventWindowExposed, Window: 1}}
	if app.Step() {
		t.Error("Step should return false after quit")
	}
	if !app.Stopped() {
		t.Error("app not stopped")
	}
	if len(p.events) != 1 {
		t.Error("events after quit should stay queued")
	}
	if app.Step() {
		t.Error("Step after stop should return false")
	}
}

func TestDispatchExposed(t *testing.T) {
	app, p := newTestApp(t)
	win := newTestWindow(t, app, 10, 10)
	app.Step()
	p.calls = nil

	p.events = []Event{{Type: EventWindowExposed, Window: win.SurfaceID()}}
	app.Step()
	assertStrings(t, p.ops(), []string{"clear", "present"})
}

func TestDispatchWindowClose(t *testing.T) {
	app, p := newTestApp(t)
	win := newTestWindow(t, app, 10, 10)
	closed := 0
	win.Connect(SignalWindowClose, func(ev *SignalEvent, _ any) SignalResult {
		if ev.Widget != win {
			t.Errorf("close on %v", ev.Widget)
		}
		closed++
		app.Stop()
		return Continue
	}, nil)

	p.events = []Event{{Type: EventWindowClosed, Window: win.SurfaceID()}}
	if app.Step() {
		t.Error("Step should report stop")
	}
	if closed != 1 {
		t.Errorf("closed = %d, want 1", closed)
	}
	if win.IsFreed() {
		t.Error("closing must not free the window")
	}
}

func TestDispatchRoutesByWindow(t *testing.T) {
	app, _ := newTestApp(t)
	w1 := newTestWindow(t, app, 50, 50)
	w2 := newTestWindow(t, app, 50, 50)
	log := &signalLog{}
	log.record(w1, "w1", SignalPress)
	log.record(w2, "w2", SignalPress)

	app.Dispatch(Event{Type: EventPointerDown, Window: w2.SurfaceID(), X: 5, Y: 5})
	assertStrings(t, *log, []string{"Press:w2"})
	if w1.FocusWidget() != nil || w2.FocusWidget() != w2 {
		t.Error("focus updated in the wrong window")
	}
}

func TestDispatchPointerOutside(t *testing.T) {
	app, _ := newTestApp(t)
	win := newTestWindow(t, app, 50, 50)
	log := &signalLog{}
	log.record(win, "win", SignalEnter, SignalLeave, SignalPress)

	app.Dispatch(Event{Type: EventPointerMove, Window: win.SurfaceID(), X: 5, Y: 5})
	app.Dispatch(Event{Type: EventPointerDown, Window: win.SurfaceID(), X: 500, Y: 5})
	assertStrings(t, *log, []string{"Enter:win", "Leave:win"})
}

func TestUpdateFunc(t *testing.T) {
	app, _ := newTestApp(t)
	calls := 0
	app.SetUpdateFunc(func() { calls++ })
	app.Step()
	app.Step()
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestRunStops(t *testing.T) {
	app, _ := newTestApp(t, WithIdleInterval(0))
	steps := 0
	app.SetUpdateFunc(func() {
		steps++
		if steps == 3 {
			app.Stop()
		}
	})
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 3 {
		t.Errorf("steps = %d, want 3", steps)
	}
}

func TestRunContextCancel(t *testing.T) {
	app, _ := newTestApp(t, WithIdleInterval(time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := app.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run = %v, want DeadlineExceeded", err)
	}
}

func TestWindowByTitle(t *testing.T) {
	app, _ := newTestApp(t)
	a, _ := NewWindow(app, "A", 10, 10)
	b, _ := NewWindow(app, "B", 10, 10)
	if app.WindowByTitle("B") != b || app.WindowByTitle("A") != a || app.WindowByTitle("C") != nil {
		t.Error("WindowByTitle mismatch")
	}
}

func TestScreenshot(t *testing.T) {
	app, p := newTestApp(t)
	win := newTestWindow(t, app, 10, 10)
	if err := app.Screenshot(win.SurfaceID(), "shot"); err != nil {
		t.Fatalf("Screenshot: %v", err)
	}
	assertStrings(t, p.shots, []string{"shot"})
	if err := app.Screenshot(99, "x"); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("err = %v, want ErrUnknownWindow", err)
	}

	bare := newFakePlatform()
	app2 := NewApp(noShotPlatform{bare, bare, bare})
	win2 := newTestWindow(t, app2, 10, 10)
	if err := app2.Screenshot(win2.SurfaceID(), "x"); !errors.Is(err, ErrScreenshotUnsupported) {
		t.Errorf("err = %v, want ErrScreenshotUnsupported", err)
	}
}

func TestDebugModeOption(t *testing.T) {
	defer func() { globalDebug = false }()
	app, _ := newTestApp(t, WithDebug(true))
	if !globalDebug {
		t.Error("WithDebug did not enable debug mode")
	}
	app.SetDebugMode(false)
	if globalDebug {
		t.Error("SetDebugMode(false) did not disable debug mode")
	}
}

func TestMaxAncestorDepthOption(t *testing.T) {
	defer SetMaxAncestorDepth(DefaultMaxAncestorDepth)
	newTestApp(t, WithMaxAncestorDepth(8))
	if MaxAncestorDepth() != 8 {
		t.Errorf("MaxAncestorDepth = %d, want 8", MaxAncestorDepth())
	}
}

func TestProcessWideSettingsFollowLatestApp(t *testing.T) {
	defer SetMaxAncestorDepth(DefaultMaxAncestorDepth)
	defer func() { globalDebug = false }()

	first, _ := newTestApp(t, WithMaxAncestorDepth(8), WithDebug(true))
	second, _ := newTestApp(t, WithMaxAncestorDepth(16), WithDebug(false))

	if MaxAncestorDepth() != 16 {
		t.Errorf("MaxAncestorDepth = %d, want the latest App's 16", MaxAncestorDepth())
	}
	if globalDebug {
		t.Error("Add checks should follow the latest App")
	}
	// Dispatch logging stays per App.
	if !first.debug || second.debug {
		t.Errorf("debug = %v/%v, want true/false", first.debug, second.debug)
	}
}
