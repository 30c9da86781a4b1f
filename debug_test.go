package digits

import (
	"bytes"
	"fmt"
	"testing"
)

func TestDebugDump(t *testing.T) {
	app, _ := newTestApp(t)
	win := newTestWindow(t, app, 100, 50)
	box := NewBox(Horizontal)
	a := sized(10, 5)
	b := NewLabel("ab") // 16x16
	win.Add(box)
	box.Add(a)
	box.Add(b)

	var buf bytes.Buffer
	if err := DebugDump(&buf, win, 0); err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("Window 0x%04x (x,y,w,h)=(0,0,100,50)\n", win.ID) +
		fmt.Sprintf("  Box 0x%04x (x,y,w,h)=(0,0,26,16)\n", box.ID) +
		fmt.Sprintf("    Bin 0x%04x (x,y,w,h)=(0,0,10,5)\n", a.ID) +
		fmt.Sprintf("    Label 0x%04x (x,y,w,h)=(10,0,16,16)\n", b.ID)
	if buf.String() != want {
		t.Errorf("dump =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestDebugDumpIndent(t *testing.T) {
	var buf bytes.Buffer
	w := NewLabel("")
	if err := DebugDump(&buf, w, 3); err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("   Label 0x%04x (x,y,w,h)=(0,0,0,0)\n", w.ID)
	if buf.String() != want {
		t.Errorf("dump = %q, want %q", buf.String(), want)
	}
	expectPanic(t, "negative indent", func() { DebugDump(&buf, w, -1) })
}

func TestDebugChecksRunOnAdd(t *testing.T) {
	defer func() { globalDebug = false }()
	globalDebug = true
	box := NewBox(Vertical)
	for range debugMaxChildCount + 1 {
		box.Add(NewLabel(""))
	}
	if box.ChildCount() != debugMaxChildCount+1 {
		t.Errorf("ChildCount = %d", box.ChildCount())
	}
}
