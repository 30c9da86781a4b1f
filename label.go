package digits

// DefaultFontSize is the point size of a new Label.
const DefaultFontSize = 16

type labelState struct {
	text     string
	fontPath string // empty selects the platform's default font
	fontSize int
	color    Color

	// Rendered text, created lazily through the owning window's renderer.
	texture    TextureID
	hasTexture bool
	renderer   TextRenderer
	failed     bool // last render failed; retried after the next property change
}

func constructLabel(w *Widget, rec *record, text string) {
	expectRecord(rec, KindLabel)
	constructWidget(w, rec.super)

	rec.state = &labelState{
		text:     text,
		fontSize: DefaultFontSize,
		color:    DefaultTextColor,
	}
	rec.ops.destroy = labelDestroy
	rec.ops.redraw = labelRedraw
	rec.ops.minWidth = labelWidth
	rec.ops.width = labelWidth
	rec.ops.minHeight = labelHeight
	rec.ops.height = labelHeight
}

// NewLabel creates a Label showing text.
func NewLabel(text string) *Widget {
	w := newWidget(KindLabel)
	constructLabel(w, w.head, text)
	return w
}

func (w *Widget) labelState() *labelState {
	return w.mustLayer(KindLabel).state.(*labelState)
}

// textLabel returns the Label that holds w's text: w itself, or the label
// child of a TextButton.
func (w *Widget) textLabel() *Widget {
	if w != nil && !w.IsFreed() && w.HasKind(KindTextButton) {
		child := w.Child()
		if child == nil || !child.HasKind(KindLabel) {
			fatalf("text button %d has no label child", w.ID)
		}
		return child
	}
	return w
}

// Text returns the text of a Label or TextButton.
func (w *Widget) Text() string {
	return w.textLabel().labelState().text
}

// SetText changes the text of a Label or TextButton.
func (w *Widget) SetText(text string) {
	l := w.textLabel()
	st := l.labelState()
	if st.text == text {
		return
	}
	st.text = text
	l.invalidateText()
}

// FontPath returns the label's font file, empty for the default font.
func (w *Widget) FontPath() string { return w.labelState().fontPath }

// SetFontPath selects the font file used to render the label.
func (w *Widget) SetFontPath(path string) {
	st := w.labelState()
	if st.fontPath == path {
		return
	}
	st.fontPath = path
	w.invalidateText()
}

// FontSize returns the label's font size.
func (w *Widget) FontSize() int { return w.labelState().fontSize }

// SetFontSize sets the label's font size. Sizes below 1 are fatal.
func (w *Widget) SetFontSize(size int) {
	if size < 1 {
		fatalf("label %d: invalid font size %d", w.ID, size)
	}
	st := w.labelState()
	if st.fontSize == size {
		return
	}
	st.fontSize = size
	w.invalidateText()
}

// TextColor returns the label's text colour.
func (w *Widget) TextColor() Color { return w.labelState().color }

// SetTextColor sets the label's text colour.
func (w *Widget) SetTextColor(c Color) {
	st := w.labelState()
	if st.color == c {
		return
	}
	st.color = c
	w.invalidateText()
}

func (w *Widget) invalidateText() {
	w.labelState().releaseTexture()
	w.markDirty()
}

func (st *labelState) releaseTexture() {
	if st.hasTexture && st.renderer != nil {
		st.renderer.DestroyTexture(st.texture)
	}
	st.hasTexture = false
	st.renderer = nil
	st.failed = false
}

// labelTexture returns the label's rendered text, rendering it on first use.
// ok is false when the label is outside a window or rendering failed.
func (w *Widget) labelTexture() (tex TextureID, renderer TextRenderer, ok bool) {
	st := w.labelState()
	if st.hasTexture {
		return st.texture, st.renderer, true
	}
	if st.failed || st.text == "" {
		return 0, nil, false
	}
	win := w.Window()
	if win == nil {
		return 0, nil, false
	}
	renderer = win.windowState().canvas.text
	if renderer == nil {
		return 0, nil, false
	}
	tex, err := renderer.RenderText(st.text, st.fontPath, st.fontSize, st.color)
	if err != nil {
		st.failed = true
		warn("label: render text failed", widgetAttr(w), "font", st.fontPath, "error", err)
		return 0, nil, false
	}
	st.texture, st.renderer, st.hasTexture = tex, renderer, true
	return tex, renderer, true
}

func (w *Widget) textExtent() (width, height int) {
	tex, renderer, ok := w.labelTexture()
	if !ok {
		return 0, 0
	}
	return renderer.TextureExtent(tex)
}

func labelWidth(w *Widget) int {
	tw, _ := w.textExtent()
	return tw + w.PaddingLeft() + w.PaddingRight()
}

func labelHeight(w *Widget) int {
	_, th := w.textExtent()
	return th + w.PaddingTop() + w.PaddingBottom()
}

func labelRedraw(w *Widget, _ *record, c *Canvas) {
	tex, _, ok := w.labelTexture()
	if !ok {
		return
	}
	c.DrawTexture(tex, w.GlobalX()+w.PaddingLeft(), w.GlobalY()+w.PaddingTop())
}

func labelDestroy(w *Widget, rec *record) {
	rec.state.(*labelState).releaseTexture()
	destroyFrom(w, rec.super)
}
