package digits

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `yaml:"action"`
	Window string `yaml:"window,omitempty"` // window title; empty selects the first window
	Label  string `yaml:"label,omitempty"`
	X      int    `yaml:"x,omitempty"`
	Y      int    `yaml:"y,omitempty"`
	FromX  int    `yaml:"fromX,omitempty"`
	FromY  int    `yaml:"fromY,omitempty"`
	ToX    int    `yaml:"toX,omitempty"`
	ToY    int    `yaml:"toY,omitempty"`
	Steps  int    `yaml:"steps,omitempty"`
}

type script struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"move":       true,
	"press":      true,
	"release":    true,
	"click":      true,
	"drag":       true,
	"wait":       true,
	"screenshot": true,
}

// ScriptRunner replays injected input and screenshots across Steps for
// automated UI testing. Attach it with App.SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadScript parses an input script. YAML and JSON are both accepted:
//
//	steps:
//	  - {action: click, window: Main, x: 20, y: 10}
//	  - {action: wait, steps: 3}
//	  - {action: screenshot, label: after-click}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches runner to the App. It advances once per Step,
// before input is processed.
func (a *App) SetScriptRunner(runner *ScriptRunner) {
	a.runner = runner
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Errors returns the failures of steps that could not be executed, such as
// screenshots the platform rejected or unknown window titles.
func (r *ScriptRunner) Errors() []error {
	return r.errs
}

func (r *ScriptRunner) step(a *App) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(a.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if st.Action == "wait" {
		if st.Steps > 0 {
			r.waitCount = st.Steps - 1 // this step counts as one
		}
	} else if err := r.run(a, st); err != nil {
		warn("script step failed", "step", r.cursor-1, "action", st.Action, "error", err)
		r.errs = append(r.errs, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(a.injectQueue) == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) run(a *App, st scriptStep) error {
	win := a.scriptWindow(st.Window)
	if win == nil {
		return fmt.Errorf("step %d: %w %q", r.cursor-1, ErrUnknownWindow, st.Window)
	}
	id := win.SurfaceID()
	switch st.Action {
	case "move":
		a.InjectMove(id, st.X, st.Y)
	case "press":
		a.InjectPress(id, st.X, st.Y)
	case "release":
		a.InjectRelease(id, st.X, st.Y)
	case "click":
		a.InjectClick(id, st.X, st.Y)
	case "drag":
		a.InjectDrag(id, st.FromX, st.FromY, st.ToX, st.ToY, st.Steps)
	case "screenshot":
		return a.Screenshot(id, st.Label)
	}
	return nil
}

func (a *App) scriptWindow(title string) *Widget {
	if title == "" {
		if len(a.order) == 0 {
			return nil
		}
		return a.order[0]
	}
	return a.WindowByTitle(title)
}
