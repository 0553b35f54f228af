package curtain

// syntheticEvent is a single injected input event. Pointer events use screen
// coordinates, identical to real mouse input.
type syntheticEvent struct {
	screenX, screenY float64
	pressed          bool
	// scroll events move the viewport by dy instead of moving the pointer.
	scroll bool
	dy     float64
}

// InjectMove queues a hover move to the given screen coordinates. The event
// is consumed on the next Update.
func (s *Shell) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{screenX: x, screenY: y})
}

// InjectPress queues a pointer press at the given screen coordinates.
func (s *Shell) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Shell) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{screenX: x, screenY: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Shell) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectLeave queues a move off the left edge of the viewport, so whatever
// the pointer hovered receives a leave.
func (s *Shell) InjectLeave() {
	s.InjectMove(-1, -1)
}

// InjectScroll queues an immediate scroll by dy pixels.
func (s *Shell) InjectScroll(dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{scroll: true, dy: dy})
}

// PendingInjections returns the number of queued synthetic events.
func (s *Shell) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (s *Shell) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.scroll {
		s.vp.ScrollBy(evt.dy)
		return true
	}
	s.processPointer(evt.screenX, evt.screenY, evt.pressed)
	return true
}
