package ebitenplatform

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/digits"
)

// game adapts an App to ebiten.Game.
type game struct {
	p   *Platform
	app *digits.App
}

func (g *game) Update() error {
	g.p.pollInput()
	if !g.app.Step() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if s := g.p.surface; s != nil {
		screen.DrawImage(s.front, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.p.surface
	if s == nil {
		return outsideWidth, outsideHeight
	}
	if g.p.resizable {
		g.p.resize(outsideWidth, outsideHeight)
	}
	return s.width, s.height
}

// Run drives app from Ebitengine's game loop until the app stops. Closing
// the window only emits SignalWindowClose; a handler decides whether to
// stop. app must have been created on p.
func Run(p *Platform, app *digits.App) error {
	if app.Platform() != digits.Platform(p) {
		panic("ebitenplatform: app does not run on this platform")
	}
	return ebiten.RunGame(&game{p: p, app: app})
}
