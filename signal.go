package digits

// MaxSignalHandlers is the number of handlers each widget can hold per
// signal kind.
const MaxSignalHandlers = 16

// SignalKind identifies a signal.
type SignalKind uint8

const (
	SignalClick       SignalKind = iota // Button pressed and released
	SignalPress                         // pointer button pressed over the widget
	SignalRelease                       // pointer button released over the widget
	SignalEnter                         // pointer entered the widget
	SignalLeave                         // pointer left the widget
	SignalWindowClose                   // platform asked to close the window
	signalCount
)

var signalNames = [signalCount]string{
	SignalClick:       "Click",
	SignalPress:       "Press",
	SignalRelease:     "Release",
	SignalEnter:       "Enter",
	SignalLeave:       "Leave",
	SignalWindowClose: "WindowClose",
}

// signalKinds is the widget kind a handler's widget must derive from.
var signalKinds = [signalCount]Kind{
	SignalClick:       KindButton,
	SignalPress:       KindWidget,
	SignalRelease:     KindWidget,
	SignalEnter:       KindWidget,
	SignalLeave:       KindWidget,
	SignalWindowClose: KindWindow,
}

// Valid reports whether k is a known signal kind.
func (k SignalKind) Valid() bool {
	return k < signalCount
}

func (k SignalKind) String() string {
	if !k.Valid() {
		return "Invalid"
	}
	return signalNames[k]
}

// RequiredKind returns the kind a widget must derive from to accept
// handlers for k.
func (k SignalKind) RequiredKind() Kind {
	if !k.Valid() {
		fatalf("invalid signal kind %d", k)
	}
	return signalKinds[k]
}

// SignalResult is returned by handlers. Stop ends the current invocation.
type SignalResult uint8

const (
	Continue SignalResult = iota
	Stop
)

func (r SignalResult) String() string {
	if r == Stop {
		return "Stop"
	}
	return "Continue"
}

// SignalEvent is passed to every handler of one invocation.
type SignalEvent struct {
	Kind SignalKind
	// Widget is the widget whose handlers are running. While a Press or
	// Release bubbles it moves up the tree; Target stays on the widget the
	// pointer was over.
	Widget *Widget
	Target *Widget

	// Pointer fields, set for Press, Release and Click.
	Button MouseButton
	X, Y   int
}

// SignalHandler handles a signal. ctx is the value given to Connect.
type SignalHandler func(ev *SignalEvent, ctx any) SignalResult

type signalSlot struct {
	fn  SignalHandler
	ctx any
}

// signalRegistry holds a widget's handlers, per kind, in connection order.
type signalRegistry struct {
	slots [signalCount][]signalSlot
}

// Connect registers fn for signals of kind on w. It fails (returns false and
// logs a warning) if w does not derive from kind.RequiredKind() or already
// holds MaxSignalHandlers handlers for kind.
func (w *Widget) Connect(kind SignalKind, fn SignalHandler, ctx any) bool {
	if !kind.Valid() {
		fatalf("connect: invalid signal kind %d", kind)
	}
	if fn == nil {
		fatalf("connect: nil %s handler for widget %d", kind, w.ID)
	}
	if w.IsFreed() {
		fatalf("connect: widget %d is freed", w.ID)
	}
	if required := kind.RequiredKind(); !w.HasKind(required) {
		warn("connect: widget does not accept signal", widgetAttr(w), "signal", kind.String(), "requires", required.String())
		return false
	}
	slots := w.signals.slots[kind]
	if len(slots) >= MaxSignalHandlers {
		warn("connect: handler table full", widgetAttr(w), "signal", kind.String(), "max", MaxSignalHandlers)
		return false
	}
	w.signals.slots[kind] = append(slots, signalSlot{fn: fn, ctx: ctx})
	return true
}

// HandlerCount returns the number of handlers connected for kind.
func (w *Widget) HandlerCount(kind SignalKind) int {
	if !kind.Valid() {
		return 0
	}
	return len(w.signals.slots[kind])
}

// InvokeSignal runs ev.Widget's handlers for ev.Kind in connection order and
// returns Stop as soon as one does. With no handlers, or when all continue,
// the result is Continue. ev.Target defaults to ev.Widget.
//
// Widgets with a non-zero EntityID also have the invocation published to the
// App's SignalStore.
func InvokeSignal(ev *SignalEvent) SignalResult {
	if ev == nil || ev.Widget == nil {
		fatalf("invoke: signal event has no widget")
	}
	if !ev.Kind.Valid() {
		fatalf("invoke: invalid signal kind %d", ev.Kind)
	}
	w := ev.Widget
	if w.IsFreed() {
		fatalf("invoke: %s on freed widget %d", ev.Kind, w.ID)
	}
	if ev.Target == nil {
		ev.Target = w
	}

	result := Continue
	// Handlers may connect more handlers or free w; run the set connected
	// at the start of the invocation.
	slots := w.signals.slots[ev.Kind]
	slots = slots[:len(slots):len(slots)]
	for _, slot := range slots {
		if slot.fn(ev, slot.ctx) == Stop {
			result = Stop
			break
		}
		if w.IsFreed() {
			break
		}
	}

	if w.EntityID != 0 {
		publishSignal(ev, result)
	}
	return result
}

// SignalStore receives a record of every signal invocation on widgets with
// a non-zero EntityID.
type SignalStore interface {
	EmitSignal(rec SignalRecord)
}

// SignalRecord describes one finished signal invocation.
type SignalRecord struct {
	Kind     SignalKind
	EntityID uint32
	WidgetID uint32
	TargetID uint32
	Button   MouseButton
	X, Y     int
	Result   SignalResult
}

func publishSignal(ev *SignalEvent, result SignalResult) {
	w := ev.Widget
	win := w.Window()
	if win == nil {
		return
	}
	app := win.windowState().app
	if app == nil || app.store == nil {
		return
	}
	rec := SignalRecord{
		Kind:     ev.Kind,
		EntityID: w.EntityID,
		WidgetID: w.ID,
		Button:   ev.Button,
		X:        ev.X,
		Y:        ev.Y,
		Result:   result,
	}
	if ev.Target != nil {
		rec.TargetID = ev.Target.ID
	}
	app.store.EmitSignal(rec)
}
