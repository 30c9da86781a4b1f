package digits

// containerState is the child list shared by every Container-kind widget.
// Bin-kind widgets use the same list, capped at one entry.
type containerState struct {
	children []*Widget
}

func constructContainer(w *Widget, rec *record) {
	expectRecord(rec, KindContainer)
	constructWidget(w, rec.super)

	rec.state = &containerState{}
	rec.ops.redraw = containerRedraw
	rec.ops.minWidth = containerSumMinWidth
	rec.ops.minHeight = containerSumMinHeight
	rec.ops.width = containerSumMinWidth
	rec.ops.height = containerSumMinHeight
}

func (w *Widget) containerState() *containerState {
	return w.mustLayer(KindContainer).state.(*containerState)
}

func containerSumMinWidth(w *Widget) int {
	sum := 0
	for _, child := range w.containerState().children {
		sum += child.MinWidth()
	}
	return sum
}

func containerSumMinHeight(w *Widget) int {
	sum := 0
	for _, child := range w.containerState().children {
		sum += child.MinHeight()
	}
	return sum
}

// containerRedraw draws each child in order.
func containerRedraw(w *Widget, _ *record, c *Canvas) {
	for _, child := range w.containerState().children {
		child.Redraw(c)
	}
}

// --- Tree manipulation ---

// Add appends child to a Container, or installs it as the single child of a
// Bin. It fails (returns false and logs a warning) if child already has a
// parent or if w is a Bin that already holds a child. On success the owning
// window is marked dirty.
// Panics if w is not Container-kind, child is nil, or child is an ancestor
// of w (cycle).
func (w *Widget) Add(child *Widget) bool {
	st := w.containerState()
	if child == nil {
		fatalf("cannot add nil child to widget %d", w.ID)
	}
	if child.IsFreed() {
		fatalf("cannot add freed widget %d", child.ID)
	}
	if child.parent != nil {
		warn("add: child already has a parent", widgetAttr(child), "parent", child.parent.ID)
		return false
	}
	if w.HasKind(KindBin) && len(st.children) > 0 {
		warn("add: bin already holds a child", widgetAttr(w))
		return false
	}
	if child == w || child.IsAncestorOf(w) {
		fatalf("adding widget %d to %d would create a cycle", child.ID, w.ID)
	}

	st.children = append(st.children, child)
	child.parent = w
	w.markDirty()

	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
	return true
}

// Remove detaches child from w. Returns false if child is not a child of w.
// The child is not freed. Any window focus inside the removed subtree moves
// to w without emitting Leave signals.
func (w *Widget) Remove(child *Widget) bool {
	st := w.containerState()
	if child == nil || child.parent != w {
		warn("remove: widget is not a child", widgetAttr(w))
		return false
	}
	for i, c := range st.children {
		if c == child {
			copy(st.children[i:], st.children[i+1:])
			st.children[len(st.children)-1] = nil
			st.children = st.children[:len(st.children)-1]
			break
		}
	}
	if win := w.Window(); win != nil {
		win.forgetFocus(child, w)
		win.SetDirty()
	}
	child.parent = nil
	return true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (w *Widget) Children() []*Widget {
	return w.containerState().children
}

// ChildCount returns the number of children.
func (w *Widget) ChildCount() int {
	return len(w.containerState().children)
}

// ChildAt returns the child at index, or nil if index is out of range.
func (w *Widget) ChildAt(index int) *Widget {
	children := w.containerState().children
	if index < 0 || index >= len(children) {
		return nil
	}
	return children[index]
}
