package markup

import (
	"fmt"
	"strings"

	"github.com/phanxgames/digits"
	"github.com/phanxgames/digits/config"
)

// Defaults fill in what a document leaves unset.
type Defaults struct {
	Title    string
	Width    int
	Height   int
	FontPath string
	FontSize int
}

// DefaultsFromConfig takes window and font defaults from cfg.
func DefaultsFromConfig(cfg *config.Config) Defaults {
	return Defaults{
		Title:    cfg.Window.Title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		FontPath: cfg.Font.Path,
		FontSize: cfg.Font.Size,
	}
}

// Tree is a built widget tree.
type Tree struct {
	Root *digits.Widget
	ids  map[string]*digits.Widget
}

// Widget returns the widget declared with id, or nil.
func (t *Tree) Widget(id string) *digits.Widget {
	return t.ids[id]
}

// IDs returns the declared ids and their widgets.
func (t *Tree) IDs() map[string]*digits.Widget {
	return t.ids
}

// Build validates d and creates the widgets of d.Root. The result is not
// attached to any window.
func (d *Document) Build(def Defaults) (*Tree, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	t := &Tree{ids: make(map[string]*digits.Widget)}
	t.Root = d.Root.build(def, t.ids)
	return t, nil
}

// BuildWindow creates a window on app, sized from the document or def, and
// adds the built tree to it. The window is Tree.Root's parent.
func (d *Document) BuildWindow(app *digits.App, def Defaults) (*digits.Widget, *Tree, error) {
	title, width, height := def.Title, def.Width, def.Height
	if w := d.Window; w != nil {
		if w.Title != "" {
			title = w.Title
		}
		if w.Width > 0 {
			width = w.Width
		}
		if w.Height > 0 {
			height = w.Height
		}
	}
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}
	win, err := digits.NewWindow(app, title, width, height)
	if err != nil {
		return nil, nil, fmt.Errorf("markup: %w", err)
	}
	t, err := d.Build(def)
	if err != nil {
		win.Free()
		return nil, nil, err
	}
	win.Add(t.Root)
	return win, t, nil
}

// build assumes n has been validated.
func (n *Node) build(def Defaults, ids map[string]*digits.Widget) *digits.Widget {
	var w *digits.Widget
	switch strings.ToLower(n.Kind) {
	case "bin":
		w = digits.NewBin(nil)
	case "box":
		o, _ := parseOrientation(n.Orientation)
		w = digits.NewBox(o)
	case "button":
		w = digits.NewButton(nil)
	case "label":
		w = digits.NewLabel(n.Text)
		n.applyText(w, def)
	case "textbutton":
		w = digits.NewTextButton(n.Text)
		n.applyText(w.Child(), def)
	}
	w.Name = n.ID
	if n.ID != "" {
		ids[n.ID] = w
	}

	if n.Padding != nil {
		w.SetPadding(*n.Padding)
	}
	if n.PaddingTop != nil {
		w.SetPaddingTop(*n.PaddingTop)
	}
	if n.PaddingBottom != nil {
		w.SetPaddingBottom(*n.PaddingBottom)
	}
	if n.PaddingLeft != nil {
		w.SetPaddingLeft(*n.PaddingLeft)
	}
	if n.PaddingRight != nil {
		w.SetPaddingRight(*n.PaddingRight)
	}
	w.SetHExpand(n.HExpand)
	w.SetVExpand(n.VExpand)

	for i := range n.Children {
		w.Add(n.Children[i].build(def, ids))
	}
	return w
}

func (n *Node) applyText(label *digits.Widget, def Defaults) {
	font := n.Font
	if font == "" {
		font = def.FontPath
	}
	label.SetFontPath(font)

	size := n.FontSize
	if size == 0 {
		size = def.FontSize
	}
	if size > 0 {
		label.SetFontSize(size)
	}
	if n.Color != "" {
		c, _ := config.ParseColor(n.Color)
		label.SetTextColor(c)
	}
}
