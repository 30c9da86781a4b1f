package digits

import "testing"

func TestChainOrder(t *testing.T) {
	w := NewTextButton("ok")
	want := []Kind{KindTextButton, KindButton, KindBin, KindContainer, KindWidget}
	var got []Kind
	for rec := w.head; rec != nil; rec = rec.super {
		got = append(got, rec.kind)
	}
	if len(got) != len(want) {
		t.Fatalf("chain = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain = %v, want %v", got, want)
		}
	}
}

func TestResolveMostDerived(t *testing.T) {
	tests := []struct {
		name string
		w    *Widget
		op   Op
		want Kind
	}{
		{"label width", NewLabel("x"), OpWidth, KindLabel},
		{"bin width", NewBin(nil), OpWidth, KindBin},
		{"box child offset", NewBox(Vertical), OpChildYOffset, KindBox},
		{"button redraw", NewButton(nil), OpRedraw, KindButton},
		{"button width", NewButton(nil), OpWidth, KindBin},
		{"text button min height", NewTextButton("x"), OpMinHeight, KindBin},
		{"container redraw", NewBox(Horizontal), OpRedraw, KindContainer},
		{"label destroy", NewLabel("x"), OpDestroy, KindLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := resolve(tt.w.head, tt.op)
			if rec == nil {
				t.Fatalf("no record supplies %s", tt.op)
			}
			if rec.kind != tt.want {
				t.Errorf("%s resolved to %s, want %s", tt.op, rec.kind, tt.want)
			}
		})
	}
}

func TestResolveMissing(t *testing.T) {
	if rec := resolve(NewLabel("x").head, OpChildXOffset); rec != nil {
		t.Errorf("label resolved childXOffset to %s", rec.kind)
	}
	if rec := resolve(NewBox(Horizontal).head, OpDestroy); rec != nil {
		t.Errorf("box resolved destroy to %s", rec.kind)
	}
}

func TestHasKind(t *testing.T) {
	w := NewTextButton("x")
	for _, k := range []Kind{KindWidget, KindContainer, KindBin, KindButton, KindTextButton} {
		if !w.HasKind(k) {
			t.Errorf("text button should have kind %s", k)
		}
	}
	for _, k := range []Kind{KindBox, KindLabel, KindWindow} {
		if w.HasKind(k) {
			t.Errorf("text button should not have kind %s", k)
		}
	}
	if w.Kind() != KindTextButton {
		t.Errorf("Kind = %s", w.Kind())
	}
}

func TestMustLayerWrongKindPanics(t *testing.T) {
	expectPanic(t, "label as container", func() { NewLabel("x").Children() })
	expectPanic(t, "box as button", func() { NewBox(Horizontal).Pressed() })
	expectPanic(t, "bin as window", func() { NewBin(nil).Title() })
}

func TestConstructorWrongRecordPanics(t *testing.T) {
	w := newWidget(KindBox)
	expectPanic(t, "bin constructor on box record", func() { constructBin(w, w.head) })
}
