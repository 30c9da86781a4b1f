package digits

func constructBin(w *Widget, rec *record) {
	expectRecord(rec, KindBin)
	constructContainer(w, rec.super)

	rec.ops.minWidth = binMinWidth
	rec.ops.minHeight = binMinHeight
	rec.ops.width = binWidth
	rec.ops.height = binHeight
	rec.ops.childXOffset = binChildXOffset
	rec.ops.childYOffset = binChildYOffset
}

// NewBin creates a Bin, optionally holding child.
func NewBin(child *Widget) *Widget {
	w := newWidget(KindBin)
	constructBin(w, w.head)
	if child != nil {
		w.Add(child)
	}
	return w
}

// Child returns the single child of a Bin-kind widget, or nil.
func (w *Widget) Child() *Widget {
	w.mustLayer(KindBin)
	return w.ChildAt(0)
}

func binMinWidth(w *Widget) int {
	width := 0
	if child := w.Child(); child != nil {
		width = child.MinWidth()
	}
	return width + w.PaddingLeft() + w.PaddingRight()
}

func binMinHeight(w *Widget) int {
	height := 0
	if child := w.Child(); child != nil {
		height = child.MinHeight()
	}
	return height + w.PaddingTop() + w.PaddingBottom()
}

func binWidth(w *Widget) int {
	width := 0
	if child := w.Child(); child != nil {
		width = child.Width()
	}
	return width + w.PaddingLeft() + w.PaddingRight()
}

func binHeight(w *Widget) int {
	height := 0
	if child := w.Child(); child != nil {
		height = child.Height()
	}
	return height + w.PaddingTop() + w.PaddingBottom()
}

func binChildXOffset(parent, _ *Widget) int {
	return parent.PaddingLeft()
}

func binChildYOffset(parent, _ *Widget) int {
	return parent.PaddingTop()
}
