package digits

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func init() {
	SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeCall records one drawing call made on a fakePlatform.
type fakeCall struct {
	op      string
	surface SurfaceID
	rect    Rect
	color   Color
	tex     TextureID
	x, y    int
}

type fakeTexture struct {
	text string
	size int
}

// fakePlatform is an in-memory Platform. Text renders at half the font size
// per byte wide and the font size tall.
type fakePlatform struct {
	nextSurface SurfaceID
	sizes       map[SurfaceID][2]int
	titles      map[SurfaceID]string
	destroyed   []SurfaceID
	calls       []fakeCall

	nextTex      TextureID
	textures     map[TextureID]fakeTexture
	destroyedTex []TextureID
	renders      int

	events []Event
	shots  []string

	createErr error
	renderErr error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		sizes:    make(map[SurfaceID][2]int),
		titles:   make(map[SurfaceID]string),
		textures: make(map[TextureID]fakeTexture),
	}
}

func (p *fakePlatform) CreateSurface(title string, width, height int) (SurfaceID, error) {
	if p.createErr != nil {
		return 0, p.createErr
	}
	p.nextSurface++
	p.sizes[p.nextSurface] = [2]int{width, height}
	p.titles[p.nextSurface] = title
	return p.nextSurface, nil
}

func (p *fakePlatform) DestroySurface(id SurfaceID) {
	delete(p.sizes, id)
	p.destroyed = append(p.destroyed, id)
}

func (p *fakePlatform) SurfaceSize(id SurfaceID) (int, int) {
	s := p.sizes[id]
	return s[0], s[1]
}

func (p *fakePlatform) Present(id SurfaceID) {
	p.calls = append(p.calls, fakeCall{op: "present", surface: id})
}

func (p *fakePlatform) Clear(id SurfaceID, c Color) {
	p.calls = append(p.calls, fakeCall{op: "clear", surface: id, color: c})
}

func (p *fakePlatform) FillRect(id SurfaceID, r Rect, c Color) {
	p.calls = append(p.calls, fakeCall{op: "fill", surface: id, rect: r, color: c})
}

func (p *fakePlatform) DrawTexture(id SurfaceID, tex TextureID, x, y int) {
	p.calls = append(p.calls, fakeCall{op: "texture", surface: id, tex: tex, x: x, y: y})
}

func (p *fakePlatform) RenderText(text, _ string, size int, _ Color) (TextureID, error) {
	if p.renderErr != nil {
		return 0, p.renderErr
	}
	p.renders++
	p.nextTex++
	p.textures[p.nextTex] = fakeTexture{text: text, size: size}
	return p.nextTex, nil
}

func (p *fakePlatform) TextureExtent(tex TextureID) (int, int) {
	t, ok := p.textures[tex]
	if !ok {
		return 0, 0
	}
	return len(t.text) * t.size / 2, t.size
}

func (p *fakePlatform) DestroyTexture(tex TextureID) {
	delete(p.textures, tex)
	p.destroyedTex = append(p.destroyedTex, tex)
}

func (p *fakePlatform) PollEvent() (Event, bool) {
	if len(p.events) == 0 {
		return Event{}, false
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev, true
}

func (p *fakePlatform) Screenshot(id SurfaceID, label string) error {
	if _, ok := p.sizes[id]; !ok {
		return errors.New("no such surface")
	}
	p.shots = append(p.shots, label)
	return nil
}

func (p *fakePlatform) ops() []string {
	ops := make([]string, len(p.calls))
	for i, c := range p.calls {
		ops[i] = c.op
	}
	return ops
}

// noShotPlatform hides fakePlatform's Screenshot method.
type noShotPlatform struct {
	Surface
	TextRenderer
	EventSource
}

func newTestApp(t *testing.T, opts ...Option) (*App, *fakePlatform) {
	t.Helper()
	p := newFakePlatform()
	return NewApp(p, opts...), p
}

func newTestWindow(t *testing.T, app *App, width, height int) *Widget {
	t.Helper()
	win, err := NewWindow(app, "test", width, height)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	return win
}

// sized returns a childless Bin whose left and top padding give it the
// requested size.
func sized(width, height int) *Widget {
	w := NewBin(nil)
	w.SetPaddingLeft(width)
	w.SetPaddingTop(height)
	return w
}

// stretched returns a childless Bin whose minimum size comes from its
// padding and whose actual size is overridden to width x height.
func stretched(minWidth, minHeight, width, height int) *Widget {
	w := sized(minWidth, minHeight)
	w.head.ops.width = func(*Widget) int { return width }
	w.head.ops.height = func(*Widget) int { return height }
	return w
}

func newContainer() *Widget {
	w := newWidget(KindContainer)
	constructContainer(w, w.head)
	return w
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for %s, got none", what)
		}
	}()
	fn()
}

// signalLog records handler invocations as "Kind:name" strings.
type signalLog []string

func (l *signalLog) record(w *Widget, name string, kinds ...SignalKind) {
	for _, kind := range kinds {
		w.Connect(kind, func(ev *SignalEvent, _ any) SignalResult {
			*l = append(*l, ev.Kind.String()+":"+name)
			return Continue
		}, nil)
	}
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
