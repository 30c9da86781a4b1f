package digits

func constructBox(w *Widget, rec *record, orientation Orientation) {
	expectRecord(rec, KindBox)
	if !orientation.Valid() {
		fatalf("invalid box orientation %d", orientation)
	}
	constructContainer(w, rec.super)

	rec.ops.minWidth = boxMinWidth
	rec.ops.minHeight = boxMinHeight
	rec.ops.width = boxWidth
	rec.ops.height = boxHeight
	rec.ops.childXOffset = boxChildXOffset
	rec.ops.childYOffset = boxChildYOffset

	w.SetOrientation(orientation)
}

// NewBox creates a Box laying its children out along orientation.
func NewBox(orientation Orientation) *Widget {
	w := newWidget(KindBox)
	constructBox(w, w.head, orientation)
	return w
}

// boxExtent folds a per-child size along one axis: summed along the main
// axis, max across it.
func boxExtent(w *Widget, mainAxis bool, size func(*Widget) int) int {
	extent := 0
	for _, child := range w.containerState().children {
		s := size(child)
		if mainAxis {
			extent += s
		} else if s > extent {
			extent = s
		}
	}
	return extent
}

func boxMinWidth(w *Widget) int {
	return boxExtent(w, w.Orientation() == Horizontal, (*Widget).MinWidth) +
		w.PaddingLeft() + w.PaddingRight()
}

func boxMinHeight(w *Widget) int {
	return boxExtent(w, w.Orientation() == Vertical, (*Widget).MinHeight) +
		w.PaddingTop() + w.PaddingBottom()
}

func boxWidth(w *Widget) int {
	return boxExtent(w, w.Orientation() == Horizontal, (*Widget).Width) +
		w.PaddingLeft() + w.PaddingRight()
}

func boxHeight(w *Widget) int {
	return boxExtent(w, w.Orientation() == Vertical, (*Widget).Height) +
		w.PaddingTop() + w.PaddingBottom()
}

func boxChildXOffset(parent, child *Widget) int {
	offset := parent.PaddingLeft()
	if parent.Orientation() != Horizontal {
		return offset
	}
	for _, c := range parent.containerState().children {
		if c == child {
			break
		}
		offset += c.Width()
	}
	return offset
}

func boxChildYOffset(parent, child *Widget) int {
	offset := parent.PaddingTop()
	if parent.Orientation() != Vertical {
		return offset
	}
	for _, c := range parent.containerState().children {
		if c == child {
			break
		}
		offset += c.Height()
	}
	return offset
}
