package digits

// SurfaceID identifies a platform drawing surface (one per Window).
type SurfaceID uint32

// TextureID identifies a texture produced by a TextRenderer.
type TextureID uint32

// Surface is the drawing side of a platform: windows and the primitives the
// toolkit draws with.
type Surface interface {
	CreateSurface(title string, width, height int) (SurfaceID, error)
	DestroySurface(id SurfaceID)
	SurfaceSize(id SurfaceID) (width, height int)
	Present(id SurfaceID)
	Clear(id SurfaceID, c Color)
	FillRect(id SurfaceID, r Rect, c Color)
	DrawTexture(id SurfaceID, tex TextureID, x, y int)
}

// TextRenderer turns text into textures.
type TextRenderer interface {
	RenderText(text, fontPath string, size int, c Color) (TextureID, error)
	TextureExtent(tex TextureID) (width, height int)
	DestroyTexture(tex TextureID)
}

// EventSource delivers input events without blocking. ok is false when no
// event is pending.
type EventSource interface {
	PollEvent() (ev Event, ok bool)
}

// Platform is everything an App needs from the host environment.
type Platform interface {
	Surface
	TextRenderer
	EventSource
}

// Screenshotter is an optional Platform capability used by scripted
// screenshot steps.
type Screenshotter interface {
	Screenshot(id SurfaceID, label string) error
}

// EventType identifies a platform event.
type EventType uint8

const (
	EventPointerMove EventType = iota
	EventPointerDown
	EventPointerUp
	EventWindowExposed
	EventWindowClosed
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventPointerMove:
		return "PointerMove"
	case EventPointerDown:
		return "PointerDown"
	case EventPointerUp:
		return "PointerUp"
	case EventWindowExposed:
		return "WindowExposed"
	case EventWindowClosed:
		return "WindowClosed"
	case EventQuit:
		return "Quit"
	}
	return "Invalid"
}

// Event is a single platform input event. Window is ignored for EventQuit.
// X and Y are surface-relative pixels.
type Event struct {
	Type   EventType
	Window SurfaceID
	X, Y   int
	Button MouseButton
}

// isPointer reports whether e carries a pointer position.
func (e Event) isPointer() bool {
	return e.Type == EventPointerMove || e.Type == EventPointerDown || e.Type == EventPointerUp
}

// Canvas binds a surface to the renderer that produced its textures. Redraw
// overrides draw through it.
type Canvas struct {
	surface Surface
	text    TextRenderer
	id      SurfaceID
}

// NewCanvas returns a canvas drawing onto surface id.
func NewCanvas(surface Surface, text TextRenderer, id SurfaceID) *Canvas {
	if surface == nil {
		fatalf("canvas for surface %d has no surface", id)
	}
	return &Canvas{surface: surface, text: text, id: id}
}

// SurfaceID returns the surface the canvas draws onto.
func (c *Canvas) SurfaceID() SurfaceID { return c.id }

// Size returns the surface size.
func (c *Canvas) Size() (width, height int) { return c.surface.SurfaceSize(c.id) }

// Clear fills the whole surface.
func (c *Canvas) Clear(col Color) { c.surface.Clear(c.id, col) }

// FillRect fills r.
func (c *Canvas) FillRect(r Rect, col Color) { c.surface.FillRect(c.id, r, col) }

// DrawTexture blits tex with its top-left corner at (x, y).
func (c *Canvas) DrawTexture(tex TextureID, x, y int) { c.surface.DrawTexture(c.id, tex, x, y) }

// Present shows everything drawn since the last Present.
func (c *Canvas) Present() { c.surface.Present(c.id) }
