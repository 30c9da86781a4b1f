package digits

import (
	"fmt"
	"io"
	"strings"
)

// DebugDump writes one line per widget in the tree rooted at w: kind, id
// and global geometry, children indented by two more spaces.
func DebugDump(out io.Writer, w *Widget, indent int) error {
	if w == nil {
		fatalf("debug dump of nil widget")
	}
	if indent < 0 {
		fatalf("debug dump with negative indent %d", indent)
	}
	type entry struct {
		w      *Widget
		indent int
	}
	stack := []entry{{w, indent}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		_, err := fmt.Fprintf(out, "%s%s 0x%04x (x,y,w,h)=(%d,%d,%d,%d)\n",
			strings.Repeat(" ", e.indent), e.w.Kind(), e.w.ID,
			e.w.GlobalX(), e.w.GlobalY(), e.w.Width(), e.w.Height())
		if err != nil {
			return err
		}
		if e.w.HasKind(KindContainer) {
			children := e.w.Children()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, entry{children[i], e.indent + 2})
			}
		}
	}
	return nil
}

// debugMaxTreeDepth is the depth past which debug mode warns on Add.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil && depth <= maxAncestorDepth; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		warn("debug: tree depth exceeds threshold", widgetAttr(w), "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugMaxChildCount is the child count past which debug mode warns on Add.
const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if n := len(w.containerState().children); n > debugMaxChildCount {
		warn("debug: child count exceeds threshold", widgetAttr(w), "children", n, "threshold", debugMaxChildCount)
	}
}
