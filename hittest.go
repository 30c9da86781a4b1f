package digits

// WidgetAt returns the deepest widget under (x, y), or nil if the point is
// outside w. Coordinates are relative to the root of w's tree. Overlapping
// children resolve to the first one added.
func (w *Widget) WidgetAt(x, y int) *Widget {
	if w == nil || w.IsFreed() || !w.Bounds().Contains(x, y) {
		return nil
	}
	hit := w
	for depth := 1; hit.HasKind(KindContainer); depth++ {
		if depth > maxAncestorDepth {
			fatalf("hit test below widget %d exceeds depth %d", w.ID, maxAncestorDepth)
		}
		var next *Widget
		for _, child := range hit.containerState().children {
			if child.Bounds().Contains(x, y) {
				next = child
				break
			}
		}
		if next == nil {
			break
		}
		hit = next
	}
	return hit
}
