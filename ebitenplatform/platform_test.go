package ebitenplatform

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/digits"
)

func TestTranslateInput(t *testing.T) {
	const id = digits.SurfaceID(3)
	var idle inputSnapshot
	idle.x, idle.y = 10, 20

	t.Run("no change", func(t *testing.T) {
		if got := translateInput(id, idle, idle); len(got) != 0 {
			t.Errorf("events = %v", got)
		}
	})

	t.Run("move press release close", func(t *testing.T) {
		cur := idle
		cur.x = 15
		cur.justPressed[digits.MouseButtonLeft] = true
		cur.justReleased[digits.MouseButtonRight] = true
		cur.closing = true

		got := translateInput(id, idle, cur)
		want := []digits.Event{
			{Type: digits.EventPointerMove, Window: id, X: 15, Y: 20},
			{Type: digits.EventPointerDown, Window: id, X: 15, Y: 20, Button: digits.MouseButtonLeft},
			{Type: digits.EventPointerUp, Window: id, X: 15, Y: 20, Button: digits.MouseButtonRight},
			{Type: digits.EventWindowClosed, Window: id},
		}
		if len(got) != len(want) {
			t.Fatalf("events = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("close reported once", func(t *testing.T) {
		prev := idle
		prev.closing = true
		cur := prev
		if got := translateInput(id, prev, cur); len(got) != 0 {
			t.Errorf("events = %v", got)
		}
	})
}

func TestPollEventOrder(t *testing.T) {
	p := New()
	if _, ok := p.PollEvent(); ok {
		t.Fatal("new platform should have no events")
	}
	p.events = []digits.Event{
		{Type: digits.EventPointerMove, X: 1},
		{Type: digits.EventPointerDown, X: 2},
	}
	for _, want := range []int{1, 2} {
		ev, ok := p.PollEvent()
		if !ok || ev.X != want {
			t.Fatalf("PollEvent = %+v, %v; want X=%d", ev, ok, want)
		}
	}
	if _, ok := p.PollEvent(); ok {
		t.Error("queue should be empty")
	}
}

func TestUnknownSurfaceIsIgnored(t *testing.T) {
	p := New()
	if w, h := p.SurfaceSize(1); w != 0 || h != 0 {
		t.Errorf("SurfaceSize = %dx%d", w, h)
	}
	p.Clear(1, digits.DefaultBackground)
	p.FillRect(1, digits.Rect{Width: 5, Height: 5}, digits.DefaultBackground)
	p.DrawTexture(1, 1, 0, 0)
	p.Present(1)
	p.DestroySurface(1)
	if err := p.Screenshot(1, "x"); err == nil {
		t.Error("Screenshot of unknown surface should fail")
	}
	if w, h := p.TextureExtent(9); w != 0 || h != 0 {
		t.Errorf("TextureExtent = %dx%d", w, h)
	}
	p.DestroyTexture(9)
}

func TestOptions(t *testing.T) {
	p := New(WithScreenshotDir("shots"), WithResizable(true))
	if p.screenshotDir != "shots" || !p.resizable {
		t.Errorf("platform = %+v", p)
	}
	if New().screenshotDir != DefaultScreenshotDir {
		t.Error("default screenshot dir not applied")
	}
}

func TestFaceSourceMissingFile(t *testing.T) {
	p := New()
	if _, err := p.faceSource(filepath.Join(t.TempDir(), "none.ttf")); err == nil {
		t.Error("missing font should fail")
	}
	if _, err := p.RenderText("hi", filepath.Join(t.TempDir(), "none.ttf"), 12, digits.Color{A: 255}); err == nil {
		t.Error("RenderText with missing font should fail")
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"":             "unlabeled",
		"   ":          "unlabeled",
		"after-click":  "after-click",
		"step 1/2":     "step_1_2",
		"v1.0":         "v1.0",
		" padded ":     "padded",
		"héllo":        "h_llo",
		"../../escape": ".._.._escape",
	}
	for in, want := range tests {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque
		64, 32, 0, 128, // half alpha
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	img := unpremultiply([]byte{1, 2, 3, 255, 4, 5, 6, 255}, 2, 1)
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Errorf("bounds = %v", b)
	}
}

func TestWritePNGMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "shot.png")
	err := writePNG(path, unpremultiply([]byte{0, 0, 0, 255}, 1, 1))
	if err == nil || !strings.HasPrefix(err.Error(), "screenshot: write") {
		t.Errorf("err = %v, want a screenshot write error", err)
	}
}
