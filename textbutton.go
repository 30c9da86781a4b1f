package digits

func constructTextButton(w *Widget, rec *record, text string) {
	expectRecord(rec, KindTextButton)
	constructButton(w, rec.super, NewLabel(text))
	w.textLabel() // fatal if the label did not attach
}

// NewTextButton creates a Button holding a Label showing text. Text and
// SetText on the result act on the label.
func NewTextButton(text string) *Widget {
	w := newWidget(KindTextButton)
	constructTextButton(w, w.head, text)
	return w
}
