package digits

import "image/color"

// Color represents an 8-bit RGBA color. Not premultiplied.
// Color implements color.Color so it can be handed straight to image APIs.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color. The returned components are premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

var (
	// ColorBlack is opaque black.
	ColorBlack = Color{0, 0, 0, 255}
	// ColorWhite is opaque white.
	ColorWhite = Color{255, 255, 255, 255}
	// DefaultBackground is the color a Window is cleared to before drawing.
	DefaultBackground = Color{32, 32, 32, 255}
	// DefaultTextColor is the color new Labels render with.
	DefaultTextColor = Color{220, 220, 220, 255}
	// ButtonColor and ButtonPressedColor fill a Button's area behind its child.
	ButtonColor        = Color{64, 64, 72, 255}
	ButtonPressedColor = Color{40, 40, 46, 255}
)

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left of a Window, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether (x, y) lies inside the half-open rectangle
// [X, X+Width) × [Y, Y+Height).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Orientation selects the main axis of a Box.
type Orientation uint8

const (
	Horizontal Orientation = iota // children laid out left to right
	Vertical                      // children laid out top to bottom
)

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "invalid"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonX1                        // first extra button (usually "back")
	MouseButtonX2                        // second extra button (usually "forward")
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	case MouseButtonX1:
		return "x1"
	case MouseButtonX2:
		return "x2"
	default:
		return "unknown"
	}
}
