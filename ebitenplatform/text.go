package ebitenplatform

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/digits"
)

// faceSource returns the parsed font for path, loading it on first use. An
// empty path selects Go Regular.
func (p *Platform) faceSource(path string) (*text.GoTextFaceSource, error) {
	if src, ok := p.faces[path]; ok {
		return src, nil
	}
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ebitenplatform: read font: %w", err)
		}
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ebitenplatform: parse font %q: %w", path, err)
	}
	p.faces[path] = src
	return src, nil
}

// RenderText draws s into a new texture sized to fit it.
func (p *Platform) RenderText(s, fontPath string, size int, c digits.Color) (digits.TextureID, error) {
	src, err := p.faceSource(fontPath)
	if err != nil {
		return 0, err
	}
	face := &text.GoTextFace{Source: src, Size: float64(size)}
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	w, h := text.Measure(s, face, lh)
	img := ebiten.NewImage(max(1, int(math.Ceil(w))), max(1, int(math.Ceil(h))))

	op := &text.DrawOptions{}
	op.LineSpacing = lh
	op.ColorScale.ScaleWithColor(c)
	text.Draw(img, s, face, op)

	p.nextTex++
	p.textures[p.nextTex] = img
	return p.nextTex, nil
}

// TextureExtent returns a texture's size, or zero for an unknown texture.
func (p *Platform) TextureExtent(tex digits.TextureID) (width, height int) {
	img := p.textures[tex]
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// DestroyTexture releases a texture. Unknown textures are ignored.
func (p *Platform) DestroyTexture(tex digits.TextureID) {
	if img := p.textures[tex]; img != nil {
		img.Deallocate()
		delete(p.textures, tex)
	}
}
