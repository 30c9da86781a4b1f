// Package ebitenplatform runs a digits App on Ebitengine.
//
// Ebitengine drives a single window, so a Platform supports one surface at
// a time. Widgets draw into an offscreen back buffer; Present copies it to
// the front buffer that Ebitengine shows every frame.
package ebitenplatform

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/digits"
)

// ErrSurfaceLimit is returned by CreateSurface when the platform already
// has a surface.
var ErrSurfaceLimit = errors.New("ebitenplatform: only one surface is supported")

// DefaultScreenshotDir is where screenshots are written unless
// WithScreenshotDir says otherwise.
const DefaultScreenshotDir = "screenshots"

type surface struct {
	id            digits.SurfaceID
	title         string
	width, height int
	back, front   *ebiten.Image
}

// Platform implements digits.Platform and digits.Screenshotter.
type Platform struct {
	surface   *surface
	nextID    digits.SurfaceID
	resizable bool

	textures map[digits.TextureID]*ebiten.Image
	nextTex  digits.TextureID
	faces    map[string]*text.GoTextFaceSource

	events []digits.Event
	prev   inputSnapshot

	screenshotDir string
}

// Option configures a Platform.
type Option func(*Platform)

// WithScreenshotDir sets the directory screenshots are written to.
func WithScreenshotDir(dir string) Option {
	return func(p *Platform) { p.screenshotDir = dir }
}

// WithResizable lets the user resize the window. Each resize marks the
// window dirty.
func WithResizable(resizable bool) Option {
	return func(p *Platform) { p.resizable = resizable }
}

// New creates a Platform.
func New(opts ...Option) *Platform {
	p := &Platform{
		textures:      make(map[digits.TextureID]*ebiten.Image),
		faces:         make(map[string]*text.GoTextFaceSource),
		screenshotDir: DefaultScreenshotDir,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CreateSurface configures the Ebitengine window. Only one surface may exist.
func (p *Platform) CreateSurface(title string, width, height int) (digits.SurfaceID, error) {
	if p.surface != nil {
		return 0, ErrSurfaceLimit
	}
	p.nextID++
	p.surface = &surface{
		id:     p.nextID,
		title:  title,
		width:  width,
		height: height,
		back:   ebiten.NewImage(width, height),
		front:  ebiten.NewImage(width, height),
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	if p.resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetWindowClosingHandled(true)
	return p.surface.id, nil
}

// lookup returns the surface for id, or nil.
func (p *Platform) lookup(id digits.SurfaceID) *surface {
	if p.surface == nil || p.surface.id != id {
		return nil
	}
	return p.surface
}

// DestroySurface releases the surface's images. Unknown ids are ignored.
func (p *Platform) DestroySurface(id digits.SurfaceID) {
	s := p.lookup(id)
	if s == nil {
		return
	}
	s.back.Deallocate()
	s.front.Deallocate()
	p.surface = nil
}

// SurfaceSize returns the current size of the surface, or zero for an
// unknown id.
func (p *Platform) SurfaceSize(id digits.SurfaceID) (width, height int) {
	s := p.lookup(id)
	if s == nil {
		return 0, 0
	}
	return s.width, s.height
}

// Clear fills the back buffer.
func (p *Platform) Clear(id digits.SurfaceID, c digits.Color) {
	if s := p.lookup(id); s != nil {
		s.back.Fill(c)
	}
}

// FillRect fills r, clipped to the surface.
func (p *Platform) FillRect(id digits.SurfaceID, r digits.Rect, c digits.Color) {
	s := p.lookup(id)
	if s == nil {
		return
	}
	rect := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height).Intersect(s.back.Bounds())
	if rect.Empty() {
		return
	}
	s.back.SubImage(rect).(*ebiten.Image).Fill(c)
}

// DrawTexture blits a texture made by RenderText.
func (p *Platform) DrawTexture(id digits.SurfaceID, tex digits.TextureID, x, y int) {
	s := p.lookup(id)
	img := p.textures[tex]
	if s == nil || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	s.back.DrawImage(img, op)
}

// Present copies the back buffer to the front buffer shown by Draw.
func (p *Platform) Present(id digits.SurfaceID) {
	s := p.lookup(id)
	if s == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendCopy
	s.front.DrawImage(s.back, op)
}

// PollEvent returns the oldest pending event.
func (p *Platform) PollEvent() (digits.Event, bool) {
	if len(p.events) == 0 {
		return digits.Event{}, false
	}
	ev := p.events[0]
	copy(p.events, p.events[1:])
	p.events = p.events[:len(p.events)-1]
	return ev, true
}

// resize adopts a new outside size. Both buffers are reallocated and the
// window is reported as exposed so it gets redrawn.
func (p *Platform) resize(width, height int) {
	s := p.surface
	if s == nil || width <= 0 || height <= 0 || (s.width == width && s.height == height) {
		return
	}
	s.back.Deallocate()
	s.front.Deallocate()
	s.width, s.height = width, height
	s.back = ebiten.NewImage(width, height)
	s.front = ebiten.NewImage(width, height)
	p.events = append(p.events, digits.Event{Type: digits.EventWindowExposed, Window: s.id})
}
