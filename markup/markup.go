// Package markup builds widget trees from YAML documents.
//
//	window:
//	  title: Demo
//	  width: 320
//	  height: 200
//	root:
//	  kind: box
//	  orientation: vertical
//	  padding: 8
//	  children:
//	    - kind: label
//	      text: Hello
//	    - kind: textbutton
//	      id: quit
//	      text: Quit
//
// Kinds are bin, box, button, label and textbutton. Bins and buttons hold at
// most one child; labels and text buttons hold none.
package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/digits"
	"github.com/phanxgames/digits/config"
)

// Document is a parsed markup file.
type Document struct {
	Window *WindowSpec `yaml:"window,omitempty"`
	Root   Node        `yaml:"root"`
}

// WindowSpec describes the window a document wants. Zero fields fall back
// to the caller's defaults.
type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Node describes one widget.
type Node struct {
	Kind        string `yaml:"kind"`
	ID          string `yaml:"id,omitempty"`
	Text        string `yaml:"text,omitempty"`
	Orientation string `yaml:"orientation,omitempty"`

	Padding       *int `yaml:"padding,omitempty"`
	PaddingTop    *int `yaml:"padding_top,omitempty"`
	PaddingBottom *int `yaml:"padding_bottom,omitempty"`
	PaddingLeft   *int `yaml:"padding_left,omitempty"`
	PaddingRight  *int `yaml:"padding_right,omitempty"`
	HExpand       bool `yaml:"hexpand,omitempty"`
	VExpand       bool `yaml:"vexpand,omitempty"`

	Font     string `yaml:"font,omitempty"`
	FontSize int    `yaml:"font_size,omitempty"`
	Color    string `yaml:"color,omitempty"`

	Children []Node `yaml:"children,omitempty"`
}

var maxChildren = map[string]int{
	"bin":        1,
	"button":     1,
	"box":        -1,
	"label":      0,
	"textbutton": 0,
}

// Parse decodes and validates a document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("markup: empty document")
		}
		return nil, fmt.Errorf("markup: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("markup: %w", err)
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks kinds, child counts, ids, orientations, paddings, colours
// and nesting depth without creating widgets.
func (d *Document) Validate() error {
	if d.Window != nil && (d.Window.Width < 0 || d.Window.Height < 0) {
		return fmt.Errorf("markup: window: negative size %dx%d", d.Window.Width, d.Window.Height)
	}
	ids := make(map[string]bool)
	return d.Root.validate("root", 1, ids)
}

// validate checks n, which sits depth levels below the window.
func (n *Node) validate(path string, depth int, ids map[string]bool) error {
	// The window is one more ancestor on top of the document's nodes.
	if limit := digits.MaxAncestorDepth(); depth+1 > limit {
		return fmt.Errorf("markup: %s: nesting exceeds %d", path, limit)
	}
	kind := strings.ToLower(n.Kind)
	limit, ok := maxChildren[kind]
	if !ok {
		return fmt.Errorf("markup: %s: unknown kind %q", path, n.Kind)
	}
	if limit >= 0 && len(n.Children) > limit {
		return fmt.Errorf("markup: %s: %s holds at most %d children, got %d", path, kind, limit, len(n.Children))
	}
	if n.ID != "" {
		if ids[n.ID] {
			return fmt.Errorf("markup: %s: duplicate id %q", path, n.ID)
		}
		ids[n.ID] = true
	}
	if _, err := parseOrientation(n.Orientation); err != nil {
		return fmt.Errorf("markup: %s: %w", path, err)
	}
	for _, p := range []*int{n.Padding, n.PaddingTop, n.PaddingBottom, n.PaddingLeft, n.PaddingRight} {
		if p != nil && *p < 0 {
			return fmt.Errorf("markup: %s: negative padding %d", path, *p)
		}
	}
	if n.FontSize < 0 {
		return fmt.Errorf("markup: %s: negative font size %d", path, n.FontSize)
	}
	if n.Color != "" {
		if _, err := config.ParseColor(n.Color); err != nil {
			return fmt.Errorf("markup: %s: %w", path, err)
		}
	}
	for i := range n.Children {
		if err := n.Children[i].validate(fmt.Sprintf("%s.children[%d]", path, i), depth+1, ids); err != nil {
			return err
		}
	}
	return nil
}

func parseOrientation(s string) (digits.Orientation, error) {
	switch strings.ToLower(s) {
	case "", "horizontal":
		return digits.Horizontal, nil
	case "vertical":
		return digits.Vertical, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}
