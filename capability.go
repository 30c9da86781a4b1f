package digits

// Op names one of the operations a capability record may override.
type Op uint8

const (
	OpDestroy Op = iota
	OpRedraw
	OpMinWidth
	OpMinHeight
	OpWidth
	OpHeight
	OpChildXOffset
	OpChildYOffset
	opCount
)

var opNames = [opCount]string{
	OpDestroy:      "destroy",
	OpRedraw:       "redraw",
	OpMinWidth:     "minWidth",
	OpMinHeight:    "minHeight",
	OpWidth:        "width",
	OpHeight:       "height",
	OpChildXOffset: "childXOffset",
	OpChildYOffset: "childYOffset",
}

func (op Op) String() string {
	if op >= opCount {
		return "invalid"
	}
	return opNames[op]
}

// opTable holds one record's overrides. Every entry is independently
// nullable; a nil entry defers to the next more general record.
//
// destroy and redraw receive the record that supplied them so they can
// continue the walk from rec.super (the equivalent of calling super).
type opTable struct {
	destroy      func(w *Widget, rec *record)
	redraw       func(w *Widget, rec *record, c *Canvas)
	minWidth     func(w *Widget) int
	minHeight    func(w *Widget) int
	width        func(w *Widget) int
	height       func(w *Widget) int
	childXOffset func(parent, child *Widget) int
	childYOffset func(parent, child *Widget) int
}

func (t *opTable) has(op Op) bool {
	switch op {
	case OpDestroy:
		return t.destroy != nil
	case OpRedraw:
		return t.redraw != nil
	case OpMinWidth:
		return t.minWidth != nil
	case OpMinHeight:
		return t.minHeight != nil
	case OpWidth:
		return t.width != nil
	case OpHeight:
		return t.height != nil
	case OpChildXOffset:
		return t.childXOffset != nil
	case OpChildYOffset:
		return t.childYOffset != nil
	}
	return false
}

// record is one layer of a widget: the data and overrides contributed by a
// single kind. The most-derived record exclusively owns the chain through
// super down to the KindWidget record.
type record struct {
	kind  Kind
	super *record
	ops   opTable
	state any // *widgetState, *containerState, *labelState, ...; nil for kinds without fields
}

// newChain allocates one empty record per kind from kind up to KindWidget.
// Constructors fill the records in afterwards, root first.
func newChain(kind Kind) *record {
	rec := &record{kind: kind}
	if parent, ok := kind.Parent(); ok {
		rec.super = newChain(parent)
	}
	return rec
}

// resolve returns the first record, walking from rec towards the root, that
// supplies op. Returns nil if none does.
func resolve(rec *record, op Op) *record {
	for ; rec != nil; rec = rec.super {
		if rec.ops.has(op) {
			return rec
		}
	}
	return nil
}

// expectRecord guards constructors against being handed the wrong layer.
func expectRecord(rec *record, kind Kind) {
	if rec == nil || rec.kind != kind {
		fatalf("constructor for %s called on a %s record", kind, recordKind(rec))
	}
}

func recordKind(rec *record) string {
	if rec == nil {
		return "nil"
	}
	return rec.kind.String()
}

// layer returns w's record for kind, or nil if w does not derive from kind.
func (w *Widget) layer(kind Kind) *record {
	for rec := w.head; rec != nil; rec = rec.super {
		if rec.kind == kind {
			return rec
		}
	}
	return nil
}

// mustLayer is layer for accessors that require the kind. A miss is a
// programming error.
func (w *Widget) mustLayer(kind Kind) *record {
	if w == nil {
		fatalf("nil widget used as %s", kind)
	}
	if w.head == nil {
		fatalf("use of freed widget %d as %s", w.ID, kind)
	}
	rec := w.layer(kind)
	if rec == nil {
		fatalf("widget %d (%s) does not derive from %s", w.ID, w.Kind(), kind)
	}
	return rec
}

// mustResolve finds the most-derived record of w supplying op. Every chain
// ends at KindWidget which supplies all measurement defaults, so a miss
// means the chain is corrupt or the op is not a measurement.
func (w *Widget) mustResolve(op Op) *record {
	if w.head == nil {
		fatalf("use of freed widget %d (%s)", w.ID, op)
	}
	rec := resolve(w.head, op)
	if rec == nil {
		fatalf("widget %d (%s) has no %s operation", w.ID, w.Kind(), op)
	}
	return rec
}

// destroyFrom runs the first destroy override found from rec upward.
func destroyFrom(w *Widget, rec *record) {
	if r := resolve(rec, OpDestroy); r != nil {
		r.ops.destroy(w, r)
	}
}

// redrawFrom runs the first redraw override found from rec upward.
func redrawFrom(w *Widget, rec *record, c *Canvas) {
	if r := resolve(rec, OpRedraw); r != nil {
		r.ops.redraw(w, r, c)
	}
}
