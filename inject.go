package digits

// InjectMove queues a synthetic pointer move over window id. Injected events
// are consumed one per Step, ahead of platform events.
func (a *App) InjectMove(id SurfaceID, x, y int) {
	a.injectQueue = append(a.injectQueue, Event{Type: EventPointerMove, Window: id, X: x, Y: y})
}

// InjectPress queues a left-button press at (x, y).
func (a *App) InjectPress(id SurfaceID, x, y int) {
	a.injectQueue = append(a.injectQueue, Event{Type: EventPointerDown, Window: id, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at (x, y).
func (a *App) InjectRelease(id SurfaceID, x, y int) {
	a.injectQueue = append(a.injectQueue, Event{Type: EventPointerUp, Window: id, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectClick queues a move, press and release at (x, y). Consumes three
// steps.
func (a *App) InjectClick(id SurfaceID, x, y int) {
	a.InjectMove(id, x, y)
	a.InjectPress(id, x, y)
	a.InjectRelease(id, x, y)
}

// InjectDrag queues a press at (fromX, fromY), moves linearly interpolated
// over steps-2 intermediate steps, and a release at (toX, toY). Minimum
// steps is 2 (press + release).
func (a *App) InjectDrag(id SurfaceID, fromX, fromY, toX, toY, steps int) {
	if steps < 2 {
		steps = 2
	}
	a.InjectPress(id, fromX, fromY)
	moves := steps - 2
	for i := 1; i <= moves; i++ {
		x := fromX + (toX-fromX)*i/(moves+1)
		y := fromY + (toY-fromY)*i/(moves+1)
		a.InjectMove(id, x, y)
	}
	a.InjectRelease(id, toX, toY)
}

// PendingInjected returns the number of queued synthetic events.
func (a *App) PendingInjected() int {
	return len(a.injectQueue)
}

// processInjectedInput dispatches the oldest queued synthetic event. Returns
// true if one was consumed.
func (a *App) processInjectedInput() bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	ev := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	_ = a.Dispatch(ev)
	return true
}
