package digits

// DefaultMaxAncestorDepth bounds every upward walk of the widget tree
// (global position, focus lineage, bubbling). Exceeding it is fatal.
const DefaultMaxAncestorDepth = 64

var maxAncestorDepth = DefaultMaxAncestorDepth

// SetMaxAncestorDepth changes the ancestor walk bound for every widget in
// the process. Values below 1 are a programming error.
func SetMaxAncestorDepth(depth int) {
	if depth < 1 {
		fatalf("max ancestor depth must be positive, got %d", depth)
	}
	maxAncestorDepth = depth
}

// MaxAncestorDepth returns the current ancestor walk bound.
func MaxAncestorDepth() int {
	return maxAncestorDepth
}

// widgetIDCounter is not atomic; widgets are only touched from the loop goroutine.
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// Widget is a single UI element. Its behavior is the capability chain rooted
// at head: one record per kind from the most-derived kind up to KindWidget.
// A parent owns its children; the parent field is only a back-reference.
type Widget struct {
	// Identity
	ID   uint32
	Name string

	// Metadata
	UserData any
	EntityID uint32 // non-zero to have signals forwarded to the App's SignalStore

	kind    Kind
	head    *record
	parent  *Widget
	signals signalRegistry
}

// widgetState holds the fields every widget carries.
type widgetState struct {
	paddingTop    int
	paddingBottom int
	paddingLeft   int
	paddingRight  int
	orientation   Orientation
	hexpand       bool
	vexpand       bool
}

// newWidget allocates a widget of the given kind with an empty chain. The
// caller runs the kind's constructor on w.head.
func newWidget(kind Kind) *Widget {
	if !kind.Valid() {
		fatalf("invalid widget kind %d", kind)
	}
	return &Widget{
		ID:   nextWidgetID(),
		kind: kind,
		head: newChain(kind),
	}
}

func constructWidget(w *Widget, rec *record) {
	expectRecord(rec, KindWidget)
	if rec.super != nil {
		fatalf("Widget record of %d has a super record", w.ID)
	}
	rec.state = &widgetState{orientation: Horizontal}
	rec.ops.minWidth = widgetHorizontalPadding
	rec.ops.minHeight = widgetVerticalPadding
	rec.ops.width = widgetHorizontalPadding
	rec.ops.height = widgetVerticalPadding
}

func widgetHorizontalPadding(w *Widget) int {
	st := w.state()
	return st.paddingLeft + st.paddingRight
}

func widgetVerticalPadding(w *Widget) int {
	st := w.state()
	return st.paddingTop + st.paddingBottom
}

func (w *Widget) state() *widgetState {
	return w.mustLayer(KindWidget).state.(*widgetState)
}

// --- Lifecycle ---

// Free destroys the widget. The most-derived destroy override releases
// kind-specific resources, then every capability record is dropped.
//
// Free detaches w from its parent but does not destroy w's children: they
// are orphaned (parent cleared) and stay usable. Free them first if they
// should go too.
func (w *Widget) Free() {
	if w == nil || w.head == nil {
		return
	}
	if w.parent != nil {
		w.parent.Remove(w)
	}
	destroyFrom(w, w.head)

	if c := w.layer(KindContainer); c != nil {
		for _, child := range c.state.(*containerState).children {
			child.parent = nil
		}
	}
	for rec := w.head; rec != nil; {
		next := rec.super
		rec.super = nil
		rec.state = nil
		rec.ops = opTable{}
		rec = next
	}
	w.head = nil
	w.signals = signalRegistry{}
	w.UserData = nil
}

// IsFreed reports whether Free has been called on w.
func (w *Widget) IsFreed() bool {
	return w.head == nil
}

// --- Type queries ---

// Kind returns the most-derived kind of w.
func (w *Widget) Kind() Kind {
	return w.kind
}

// HasKind reports whether w's capability chain includes kind, i.e. whether w
// "is a" kind.
func (w *Widget) HasKind(kind Kind) bool {
	return w.layer(kind) != nil
}

// --- Hierarchy ---

// Parent returns w's parent, or nil.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// IsAncestorOf reports whether w appears among other's ancestors.
func (w *Widget) IsAncestorOf(other *Widget) bool {
	found := false
	walkAncestors(other.parent, func(a *Widget) bool {
		found = a == w
		return !found
	})
	return found
}

// Window returns the nearest Window-kind widget among w and its ancestors,
// or nil if w is not inside a Window.
func (w *Widget) Window() *Widget {
	var win *Widget
	walkAncestors(w, func(a *Widget) bool {
		if a.HasKind(KindWindow) {
			win = a
			return false
		}
		return true
	})
	return win
}

// walkAncestors calls fn on w and then each ancestor, nearest first, until fn
// returns false or the root has been visited. The walk is bounded by
// MaxAncestorDepth.
func walkAncestors(w *Widget, fn func(*Widget) bool) {
	depth := 0
	for a := w; a != nil; a = a.parent {
		depth++
		if depth > maxAncestorDepth {
			fatalf("widget %d has more than %d ancestors", w.ID, maxAncestorDepth)
		}
		if !fn(a) {
			return
		}
	}
}

// markDirty flags the owning window for redraw. No-op outside a window.
func (w *Widget) markDirty() {
	if win := w.Window(); win != nil {
		win.SetDirty()
	}
}

// --- Geometry ---

// MinWidth returns the smallest width w can occupy.
func (w *Widget) MinWidth() int {
	return w.mustResolve(OpMinWidth).ops.minWidth(w)
}

// MinHeight returns the smallest height w can occupy.
func (w *Widget) MinHeight() int {
	return w.mustResolve(OpMinHeight).ops.minHeight(w)
}

// Width returns the width used for drawing and hit-testing.
func (w *Widget) Width() int {
	return w.mustResolve(OpWidth).ops.width(w)
}

// Height returns the height used for drawing and hit-testing.
func (w *Widget) Height() int {
	return w.mustResolve(OpHeight).ops.height(w)
}

// ChildXOffset returns child's x position relative to w's top-left corner.
// child must be a direct child of w.
func (w *Widget) ChildXOffset(child *Widget) int {
	if child == nil || child.parent != w {
		fatalf("childXOffset: widget is not a child of %d", w.ID)
	}
	return w.mustResolve(OpChildXOffset).ops.childXOffset(w, child)
}

// ChildYOffset returns child's y position relative to w's top-left corner.
// child must be a direct child of w.
func (w *Widget) ChildYOffset(child *Widget) int {
	if child == nil || child.parent != w {
		fatalf("childYOffset: widget is not a child of %d", w.ID)
	}
	return w.mustResolve(OpChildYOffset).ops.childYOffset(w, child)
}

// GlobalX returns w's x position relative to the root of its tree
// (normally the top-left of its Window).
func (w *Widget) GlobalX() int {
	x := 0
	walkAncestors(w, func(a *Widget) bool {
		if a.parent == nil {
			return false
		}
		x += a.parent.ChildXOffset(a)
		return true
	})
	return x
}

// GlobalY returns w's y position relative to the root of its tree.
func (w *Widget) GlobalY() int {
	y := 0
	walkAncestors(w, func(a *Widget) bool {
		if a.parent == nil {
			return false
		}
		y += a.parent.ChildYOffset(a)
		return true
	})
	return y
}

// Bounds returns w's global rectangle.
func (w *Widget) Bounds() Rect {
	return Rect{X: w.GlobalX(), Y: w.GlobalY(), Width: w.Width(), Height: w.Height()}
}

// --- Drawing ---

// Redraw draws w onto c using the most-derived redraw override. Widgets
// without one draw nothing.
func (w *Widget) Redraw(c *Canvas) {
	if c == nil {
		fatalf("redraw of widget %d with nil canvas", w.ID)
	}
	if w.head == nil {
		fatalf("redraw of freed widget %d", w.ID)
	}
	redrawFrom(w, w.head, c)
}

// --- Properties ---

// PaddingTop returns the top padding.
func (w *Widget) PaddingTop() int { return w.state().paddingTop }

// PaddingBottom returns the bottom padding.
func (w *Widget) PaddingBottom() int { return w.state().paddingBottom }

// PaddingLeft returns the left padding.
func (w *Widget) PaddingLeft() int { return w.state().paddingLeft }

// PaddingRight returns the right padding.
func (w *Widget) PaddingRight() int { return w.state().paddingRight }

// Orientation returns the stored orientation. Only Box consumes it.
func (w *Widget) Orientation() Orientation { return w.state().orientation }

// HExpand returns the horizontal expand flag.
func (w *Widget) HExpand() bool { return w.state().hexpand }

// VExpand returns the vertical expand flag.
func (w *Widget) VExpand() bool { return w.state().vexpand }

// SetPadding sets all four paddings to the same value.
func (w *Widget) SetPadding(padding int) {
	w.SetPaddingTop(padding)
	w.SetPaddingBottom(padding)
	w.SetPaddingLeft(padding)
	w.SetPaddingRight(padding)
}

// SetPaddingTop sets the top padding and marks the window dirty.
func (w *Widget) SetPaddingTop(padding int) {
	checkPadding(padding)
	w.state().paddingTop = padding
	w.markDirty()
}

// SetPaddingBottom sets the bottom padding and marks the window dirty.
func (w *Widget) SetPaddingBottom(padding int) {
	checkPadding(padding)
	w.state().paddingBottom = padding
	w.markDirty()
}

// SetPaddingLeft sets the left padding and marks the window dirty.
func (w *Widget) SetPaddingLeft(padding int) {
	checkPadding(padding)
	w.state().paddingLeft = padding
	w.markDirty()
}

// SetPaddingRight sets the right padding and marks the window dirty.
func (w *Widget) SetPaddingRight(padding int) {
	checkPadding(padding)
	w.state().paddingRight = padding
	w.markDirty()
}

func checkPadding(padding int) {
	if padding < 0 {
		fatalf("negative padding %d", padding)
	}
}

// SetOrientation sets the orientation and marks the window dirty.
func (w *Widget) SetOrientation(o Orientation) {
	if !o.Valid() {
		fatalf("invalid orientation %d", o)
	}
	w.state().orientation = o
	w.markDirty()
}

// SetHExpand stores the horizontal expand flag and marks the window dirty.
// No layout currently distributes surplus space, so the flag has no effect
// on geometry.
func (w *Widget) SetHExpand(expand bool) {
	w.state().hexpand = expand
	w.markDirty()
}

// SetVExpand stores the vertical expand flag and marks the window dirty.
// Like SetHExpand it does not affect geometry.
func (w *Widget) SetVExpand(expand bool) {
	w.state().vexpand = expand
	w.markDirty()
}
