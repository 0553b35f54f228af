package curtain

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	seen      bool
	lastX     float64
	lastY     float64
	hitElem   *Element // element under the pointer at press time
	hoverElem *Element // last element the pointer was hovering over (for enter/leave)
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order, appending visible
// interactable elements to buf. Invisible subtrees are skipped.
func collectInteractable(e *Element, buf []*Element) []*Element {
	if !e.Visible || e.disposed {
		return buf
	}
	if e.Interactable && e.Width > 0 && e.Height > 0 {
		buf = append(buf, e)
	}
	for _, c := range e.children {
		buf = collectInteractable(c, buf)
	}
	return buf
}

// hitTest finds the topmost interactable element at screen point (sx, sy).
// Fixed elements are tested in screen space, document elements in scrolled
// space, both against their transformed bounds. Returns nil if nothing is
// hit.
func (s *Shell) hitTest(sx, sy float64) *Element {
	buf := collectInteractable(s.root, nil)
	buf = collectInteractable(s.overlay, buf)
	docY := sy + s.vp.ScrollY()
	for i := len(buf) - 1; i >= 0; i-- {
		e := buf[i]
		y := docY
		if e.IsFixed() {
			y = sy
		}
		if e.visualBounds().Contains(sx, y) {
			return e
		}
	}
	return nil
}

// --- Input processing ---

// HandlePointer feeds one frame of real pointer state at screen coordinates.
// Run calls it every frame with the mouse; injected events take its place
// while any are queued.
func (s *Shell) HandlePointer(sx, sy float64, pressed bool) {
	if len(s.injectQueue) > 0 {
		return
	}
	s.processPointer(sx, sy, pressed)
}

// processPointer runs the pointer state machine. While a transition is in
// flight the overlay owns the pointer: nothing underneath receives events,
// and a press that started before the transition never becomes a click.
func (s *Shell) processPointer(sx, sy float64, pressed bool) {
	ps := &s.pointer
	if s.transitions.Snapshot().Animating {
		if ps.hoverElem != nil {
			s.fire(EventPointerLeave, ps.hoverElem, sx, sy)
			ps.hoverElem = nil
		}
		ps.down = pressed
		ps.hitElem = nil
		ps.lastX, ps.lastY = sx, sy
		return
	}

	target := s.hitTest(sx, sy)
	if ps.hoverElem != nil && ps.hoverElem.disposed {
		ps.hoverElem = nil
	}

	// Fire hover enter/leave when the hovered element changes.
	if target != ps.hoverElem {
		if ps.hoverElem != nil {
			s.fire(EventPointerLeave, ps.hoverElem, sx, sy)
		}
		if target != nil {
			s.fire(EventPointerEnter, target, sx, sy)
		}
		ps.hoverElem = target
	}

	moved := !ps.seen || sx != ps.lastX || sy != ps.lastY
	ps.seen = true
	if moved && target != nil {
		s.fire(EventPointerMove, target, sx, sy)
	}
	ps.lastX, ps.lastY = sx, sy

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.hitElem = target
	case !pressed && ps.down:
		if ps.hitElem != nil && ps.hitElem == target {
			s.fire(EventClick, target, sx, sy)
		}
		ps.down = false
		ps.hitElem = nil
	}
}

// fire dispatches one event to el's callback.
func (s *Shell) fire(kind EventType, el *Element, sx, sy float64) {
	ctx := PointerContext{Element: el, ScreenX: sx, ScreenY: sy, DocX: sx, DocY: sy}
	if !el.IsFixed() {
		ctx.DocY += s.vp.ScrollY()
	}
	var fn func(PointerContext)
	switch kind {
	case EventPointerEnter:
		fn = el.OnPointerEnter
	case EventPointerLeave:
		fn = el.OnPointerLeave
	case EventPointerMove:
		fn = el.OnPointerMove
	case EventClick:
		fn = el.OnClick
	}
	if fn != nil {
		fn(ctx)
	}
}
