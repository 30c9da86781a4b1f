// digits-demo shows a window with a click counter and a quit button. The
// layout comes from markup, the runtime settings from a TOML file, and every
// button signal is mirrored into a Donburi world.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/digits"
	"github.com/phanxgames/digits/config"
	"github.com/phanxgames/digits/ebitenplatform"
	"github.com/phanxgames/digits/ecs"
	"github.com/phanxgames/digits/markup"
)

//go:embed layout.yaml
var defaultLayout []byte

const (
	countEntity uint32 = iota + 1
	quitEntity
)

func main() {
	configPath := flag.String("config", "digits.toml", "TOML configuration file")
	scriptPath := flag.String("script", "", "input script to replay (overrides runtime.script)")
	screenshotDir := flag.String("screenshots", ebitenplatform.DefaultScreenshotDir, "directory for scripted screenshots")
	dump := flag.Bool("dump", false, "print the widget tree after building it")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	doc, err := loadLayout(cfg.Layout.Markup)
	if err != nil {
		log.Fatal(err)
	}

	world := donburi.NewWorld()
	ecs.SignalEventType.Subscribe(world, func(_ donburi.World, rec digits.SignalRecord) {
		logger.Info("signal", "kind", rec.Kind.String(), "entity", rec.EntityID, "widget", rec.WidgetID, "result", rec.Result.String())
	})

	platform := ebitenplatform.New(ebitenplatform.WithScreenshotDir(*screenshotDir))
	opts := append(cfg.AppOptions(),
		digits.WithLogger(logger),
		digits.WithSignalStore(ecs.NewDonburiStore(world, digits.SignalClick)),
	)
	app := digits.NewApp(platform, opts...)
	app.SetUpdateFunc(func() { ecs.SignalEventType.ProcessEvents(world) })

	win, tree, err := doc.BuildWindow(app, markup.DefaultsFromConfig(cfg))
	if err != nil {
		log.Fatal(err)
	}
	if err := wire(app, win, tree); err != nil {
		log.Fatal(err)
	}
	if *dump {
		if err := digits.DebugDump(os.Stdout, win, 0); err != nil {
			log.Fatal(err)
		}
	}

	script := cfg.Runtime.Script
	if *scriptPath != "" {
		script = *scriptPath
	}
	if script != "" {
		data, err := os.ReadFile(script)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := digits.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
		app.SetScriptRunner(runner)
	}

	if err := ebitenplatform.Run(platform, app); err != nil {
		log.Fatal(err)
	}
}

func loadLayout(path string) (*markup.Document, error) {
	if path == "" {
		return markup.Parse(defaultLayout)
	}
	return markup.Load(path)
}

// wire connects the demo's handlers. The layout must declare a "status"
// label and "count" and "quit" text buttons.
func wire(app *digits.App, win *digits.Widget, tree *markup.Tree) error {
	status, count, quit := tree.Widget("status"), tree.Widget("count"), tree.Widget("quit")
	if status == nil || count == nil || quit == nil {
		return fmt.Errorf("layout must declare status, count and quit widgets")
	}
	if !count.HasKind(digits.KindButton) || !quit.HasKind(digits.KindButton) {
		return fmt.Errorf("count and quit must be buttons")
	}
	count.EntityID = countEntity
	quit.EntityID = quitEntity

	clicks := 0
	count.Connect(digits.SignalClick, func(*digits.SignalEvent, any) digits.SignalResult {
		clicks++
		status.SetText(fmt.Sprintf("Clicked %d times", clicks))
		return digits.Stop
	}, nil)
	quit.Connect(digits.SignalClick, func(*digits.SignalEvent, any) digits.SignalResult {
		app.Stop()
		return digits.Stop
	}, nil)
	win.Connect(digits.SignalWindowClose, func(ev *digits.SignalEvent, _ any) digits.SignalResult {
		slog.Info("window closed", "title", ev.Widget.Title())
		app.Stop()
		return digits.Continue
	}, nil)
	return nil
}
