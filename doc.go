// Package digits is a small retained-mode widget toolkit.
//
// Widgets form a tree: Windows hold a single child, Boxes lay their children
// out along one axis, Buttons turn a press followed by a release into a
// Click. Every widget is built from a chain of capability records, one per
// kind it derives from, and each operation (measure, draw, destroy, child
// offsets) is answered by the most-derived record that supplies it.
//
// # Quick start
//
// An [App] runs on a [Platform]. The ebitenplatform package provides one
// backed by [Ebitengine]:
//
//	p := ebitenplatform.New()
//	app := digits.NewApp(p)
//
//	win, err := digits.NewWindow(app, "Hello", 320, 200)
//	if err != nil {
//		log.Fatal(err)
//	}
//	box := digits.NewBox(digits.Vertical)
//	win.Add(box)
//
//	quit := digits.NewTextButton("Quit")
//	quit.Connect(digits.SignalClick, func(*digits.SignalEvent, any) digits.SignalResult {
//		app.Stop()
//		return digits.Stop
//	}, nil)
//	box.Add(digits.NewLabel("Hello, world"))
//	box.Add(quit)
//
//	ebitenplatform.Run(p, app)
//
// # Layout
//
// There is a single measurement pass. [Widget.MinWidth] and [Widget.Width]
// (and their height counterparts) are computed on demand from padding and
// children; nothing is cached. Horizontal and vertical expand flags are
// stored but do not distribute surplus space.
//
// # Signals
//
// Handlers are connected per widget with [Widget.Connect] and run in
// connection order until one returns [Stop]. Press and Release bubble from
// the widget under the pointer towards its Window. Enter and Leave are
// generated by each Window's focus tracker as the pointer moves.
//
// # Errors
//
// Contract violations (using a freed widget, wrong-kind access, cyclic
// trees, trees deeper than [MaxAncestorDepth]) are logged and panic.
// Expected failures (adding a child that already has a parent, connecting
// a signal a widget does not accept) log a warning and return false.
//
// # Lifetime
//
// [Widget.Free] does not free children. Detach and free them first when
// they should not outlive their parent.
//
// [Ebitengine]: https://ebitengine.org
package digits
