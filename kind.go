package digits

// Kind identifies a widget type and its place in the single-inheritance
// type tree rooted at KindWidget.
type Kind uint8

const (
	KindWidget     Kind = iota // common base of every widget
	KindContainer              // holds an ordered list of children
	KindBin                    // container with at most one child
	KindBox                    // container laying children out along one axis
	KindButton                 // bin that emits Click on press+release
	KindLabel                  // single line of text
	KindTextButton             // button created with a Label child
	KindWindow                 // bin backed by a platform surface
	kindCount
)

// kindNone marks the absence of a parent kind. Only KindWidget has none.
const kindNone = kindCount

// kindExtends maps every kind to the kind it derives from.
var kindExtends = [kindCount]Kind{
	KindWidget:     kindNone,
	KindContainer:  KindWidget,
	KindBin:        KindContainer,
	KindBox:        KindContainer,
	KindButton:     KindBin,
	KindLabel:      KindWidget,
	KindTextButton: KindButton,
	KindWindow:     KindBin,
}

var kindNames = [kindCount]string{
	KindWidget:     "Widget",
	KindContainer:  "Container",
	KindBin:        "Bin",
	KindBox:        "Box",
	KindButton:     "Button",
	KindLabel:      "Label",
	KindTextButton: "TextButton",
	KindWindow:     "Window",
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Invalid"
	}
	return kindNames[k]
}

// Parent returns the kind k derives from. ok is false for KindWidget.
func (k Kind) Parent() (parent Kind, ok bool) {
	if !k.Valid() {
		fatalf("invalid widget kind %d", k)
	}
	p := kindExtends[k]
	return p, p != kindNone
}

// Depth returns the number of kinds from k up to and including KindWidget.
// A widget of kind k carries exactly this many capability records.
func (k Kind) Depth() int {
	depth := 1
	for p, ok := k.Parent(); ok; p, ok = p.Parent() {
		depth++
	}
	return depth
}

// Extends reports whether k is other or derives from it.
func (k Kind) Extends(other Kind) bool {
	for c, ok := k, true; ok; c, ok = c.Parent() {
		if c == other {
			return true
		}
	}
	return false
}
