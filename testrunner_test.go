package digits

import "testing"

func TestLoadScriptYAML(t *testing.T) {
	r, err := LoadScript([]byte(`
steps:
  - action: click
    x: 10
    y: 10
  - action: wait
    steps: 2
  - action: screenshot
    label: done
`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(r.steps) != 3 || r.steps[1].Steps != 2 || r.steps[2].Label != "done" {
		t.Errorf("steps = %+v", r.steps)
	}
}

func TestLoadScriptJSON(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "steps": 3}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	st := r.steps[0]
	if st.Action != "drag" || st.FromX != 1 || st.ToY != 4 || st.Steps != 3 {
		t.Errorf("step = %+v", st)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no steps", `steps: []`},
		{"unknown action", `steps: [{action: teleport}]`},
		{"malformed", `steps: [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptRunnerClicksAndScreenshots(t *testing.T) {
	app, win, _, _, _, clicks := buttonScene(t)
	p := app.platform.(*fakePlatform)
	r, err := LoadScript([]byte(`
steps:
  - {action: click, window: test, x: 10, y: 10}
  - {action: wait, steps: 2}
  - {action: screenshot, label: after}
`))
	if err != nil {
		t.Fatal(err)
	}
	app.SetScriptRunner(r)

	for i := 0; i < 20 && !r.Done(); i++ {
		app.Step()
	}
	if !r.Done() {
		t.Fatal("script did not finish")
	}
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}
	assertStrings(t, p.shots, []string{"after"})
	if len(r.Errors()) != 0 {
		t.Errorf("errors = %v", r.Errors())
	}
	_ = win
}

func TestScriptRunnerUnknownWindow(t *testing.T) {
	app, _ := newTestApp(t)
	newTestWindow(t, app, 10, 10)
	r, err := LoadScript([]byte(`steps: [{action: press, window: nowhere}]`))
	if err != nil {
		t.Fatal(err)
	}
	app.SetScriptRunner(r)
	app.Step()
	if !r.Done() {
		t.Error("runner should finish after its only step")
	}
	if len(r.Errors()) != 1 {
		t.Errorf("errors = %v, want one", r.Errors())
	}
}

func TestScriptRunnerWaits(t *testing.T) {
	app, _ := newTestApp(t)
	newTestWindow(t, app, 10, 10)
	r, err := LoadScript([]byte(`steps: [{action: wait, steps: 3}, {action: move, x: 1, y: 1}]`))
	if err != nil {
		t.Fatal(err)
	}
	app.SetScriptRunner(r)
	for range 3 {
		app.Step()
		if r.cursor != 1 {
			t.Fatalf("advanced during wait: cursor = %d", r.cursor)
		}
	}
	app.Step()
	if r.cursor != 2 {
		t.Errorf("cursor = %d, want 2", r.cursor)
	}
}
