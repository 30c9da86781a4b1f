package ebitenplatform

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phanxgames/digits"
)

// Screenshot writes the last presented frame of surface id to a PNG named
// after label and the current time. It must be called while the game loop
// is running.
func (p *Platform) Screenshot(id digits.SurfaceID, label string) error {
	s := p.lookup(id)
	if s == nil {
		return fmt.Errorf("screenshot: unknown surface %d", id)
	}
	if err := os.MkdirAll(p.screenshotDir, 0o755); err != nil {
		return fmt.Errorf("screenshot: mkdir %s: %w", p.screenshotDir, err)
	}

	bounds := s.front.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	s.front.ReadPixels(pixels)

	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(p.screenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	return writePNG(path, unpremultiply(pixels, w, h))
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes img in memory and writes it to path in one call, so a
// failed encode leaves no partial file behind.
func writePNG(path string, img *image.NRGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("screenshot: encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("screenshot: write %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel makes label usable as part of a file name. Anything but
// ASCII letters, digits, '-' and '.' becomes '_'.
func sanitizeLabel(label string) string {
	if label = strings.TrimSpace(label); label == "" {
		return "unlabeled"
	}
	return strings.Map(fileNameRune, label)
}

func fileNameRune(r rune) rune {
	if r == '-' || r == '.' || ('0' <= r && r <= '9') ||
		('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
		return r
	}
	return '_'
}
