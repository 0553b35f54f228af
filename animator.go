package curtain

// animEntry is one slot in the animator arena. el is zero for timelines.
type animEntry struct {
	anim  Animation
	el    uint32
	props Props
	keep  bool
}

// Animator owns the clock for every live tween and timeline, and indexes
// tweens by target element so conflicting tweens can be killed instead of
// stacked. There is no global animator; each Shell owns one.
type Animator struct {
	entries []animEntry
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// To starts a tween from the element's current values toward to.
func (a *Animator) To(el *Element, to Props, cfg TweenConfig) *Tween {
	return a.add(newTween(el, nil, to, cfg), cfg)
}

// From starts a tween from the given values toward the element's current
// values. The start values are applied immediately.
func (a *Animator) From(el *Element, from Props, cfg TweenConfig) *Tween {
	to := el.capture(from)
	tw := newTween(el, from, to, cfg)
	el.apply(from)
	return a.add(tw, cfg)
}

// FromTo starts a tween between explicit start and end values.
func (a *Animator) FromTo(el *Element, from, to Props, cfg TweenConfig) *Tween {
	return a.add(newTween(el, from, to, cfg), cfg)
}

func (a *Animator) add(tw *Tween, cfg TweenConfig) *Tween {
	if cfg.Overwrite {
		a.killConflicting(tw.target.ID, tw.to)
	}
	a.entries = append(a.entries, animEntry{
		anim:  tw,
		el:    tw.target.ID,
		props: tw.to,
		keep:  cfg.Paused,
	})
	return tw
}

// Set kills tweens animating the given properties on el and assigns the
// values immediately.
func (a *Animator) Set(el *Element, props Props) {
	a.killConflicting(el.ID, props)
	el.apply(props)
}

// Play registers a timeline with the animator's clock and returns it.
func (a *Animator) Play(tl *Timeline) *Timeline {
	a.entries = append(a.entries, animEntry{anim: tl, keep: tl.cfg.Paused})
	return tl
}

// killConflicting kills live tweens on element id that share a property
// with props.
func (a *Animator) killConflicting(id uint32, props Props) int {
	n := 0
	for _, e := range a.entries {
		if e.el != id || e.anim.Killed() {
			continue
		}
		for p := range props {
			if _, ok := e.props[p]; ok {
				e.anim.Kill()
				n++
				break
			}
		}
	}
	return n
}

// KillTweensOf kills every live tween targeting el and returns how many
// were killed. Timelines are not affected, including their entries that
// target el.
func (a *Animator) KillTweensOf(el *Element) int {
	n := 0
	for _, e := range a.entries {
		if e.el == el.ID && !e.anim.Killed() {
			e.anim.Kill()
			n++
		}
	}
	return n
}

// Active returns the number of live (not killed, not released) tweens
// targeting el.
func (a *Animator) Active(el *Element) int {
	n := 0
	for _, e := range a.entries {
		if e.el == el.ID && !e.anim.Killed() {
			n++
		}
	}
	return n
}

// Len returns the number of live animations of any kind.
func (a *Animator) Len() int {
	n := 0
	for _, e := range a.entries {
		if !e.anim.Killed() {
			n++
		}
	}
	return n
}

// Update advances every live animation by dt seconds, then releases killed
// animations and finished ones that nobody controls. Animations started by
// callbacks during this update first tick on the next update.
func (a *Animator) Update(dt float32) {
	n := len(a.entries)
	for i := 0; i < n; i++ {
		a.entries[i].anim.Update(dt)
	}
	live := a.entries[:0]
	for _, e := range a.entries {
		if e.anim.Killed() || e.anim.Done() && !e.keep {
			continue
		}
		live = append(live, e)
	}
	for i := len(live); i < len(a.entries); i++ {
		a.entries[i] = animEntry{}
	}
	a.entries = live
}

// KillAll kills and releases every animation.
func (a *Animator) KillAll() {
	for _, e := range a.entries {
		e.anim.Kill()
	}
	clear(a.entries)
	a.entries = a.entries[:0]
}
