package curtain

import (
	"log/slog"

	"github.com/tanema/gween/ease"
)

// ThresholdState is where a bound section stands relative to its line.
type ThresholdState uint8

const (
	ThresholdPending ThresholdState = iota // not yet crossed
	ThresholdEntered                       // top edge above the line
	ThresholdExited                        // crossed back below the line
)

// String returns the lower-case state name.
func (s ThresholdState) String() string {
	switch s {
	case ThresholdEntered:
		return "entered"
	case ThresholdExited:
		return "exited"
	}
	return "pending"
}

// RevealOptions configures an entrance animation. Zero fields take defaults.
type RevealOptions struct {
	// EntranceOffset is how far below its resting place the section starts,
	// in pixels. Default 50.
	EntranceOffset float64
	// StaggerChildren animates each child instead of the section as a whole.
	StaggerChildren bool
	// Stagger is the delay between children. Default 0.1s.
	Stagger float32
	// Replay reverses the entrance when the section crosses back below the
	// line and plays it again on re-entry. Without it the entrance plays once.
	Replay bool
	// Threshold is the viewport fraction of the line. Default DefaultThreshold.
	Threshold float64
	// Duration of the entrance in seconds. Default 1.
	Duration float32
	// Ease defaults to ease.OutQuart.
	Ease ease.TweenFunc
	// FromScale, when non-zero, also scales up from this factor.
	FromScale float64
	// OnToggle runs on every crossing with whether the section is now above
	// the line, regardless of Replay.
	OnToggle func(entered bool)
}

func (o RevealOptions) withDefaults() RevealOptions {
	if o.EntranceOffset == 0 {
		o.EntranceOffset = 50
	}
	if o.Stagger <= 0 {
		o.Stagger = 0.1
	}
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Duration <= 0 {
		o.Duration = 1
	}
	if o.Ease == nil {
		o.Ease = ease.OutQuart
	}
	return o
}

// RevealBinding is the controller's record for one bound section. Each
// binding owns exactly one animation; replays drive that same animation
// forward and backward rather than creating new ones.
type RevealBinding struct {
	Element   *Element
	State     ThresholdState
	Plays     int
	Reversals int

	opts     RevealOptions
	anim     Animation
	observer ObserverHandle
	released bool
	// rest holds the resting values of each animated element, captured
	// before the start state was applied.
	targets []*Element
	rest    []Props
}

// restore puts every animated element back at its resting values.
func (b *RevealBinding) restore() {
	for i, el := range b.targets {
		if !el.IsDisposed() {
			el.apply(b.rest[i])
		}
	}
}

// Animation returns the binding's single animation handle.
func (b *RevealBinding) Animation() Animation { return b.anim }

// ProgressOptions configures a continuous-progress binding. The animated
// property is mapped linearly from scroll progress between two anchors, with
// no easing and no timed playback.
type ProgressOptions struct {
	// Trigger is the container whose edges define the anchors. Defaults to
	// the bound element.
	Trigger *Element
	// StartAt is the viewport fraction the trigger's top must reach for
	// progress 0. Default 0.5 ("top center").
	StartAt float64
	// EndAt is the viewport fraction the trigger's bottom must reach for
	// progress 1. Default 1 ("bottom bottom").
	EndAt float64
	// Prop is the animated property. Default PropScaleY.
	Prop Prop
	// From and To are the property values at progress 0 and 1. Default 0 and 1.
	From, To float64
}

// ProgressBinding is a live continuous-progress binding.
type ProgressBinding struct {
	Element  *Element
	opts     ProgressOptions
	progress float64
	listener ObserverHandle
	released bool
}

// Progress returns the last computed progress in [0, 1].
func (p *ProgressBinding) Progress() float64 { return p.progress }

// RevealController binds scroll-triggered animations to sections. Bindings
// are keyed by element ID; unbinding kills the animation and unregisters the
// observer so nothing fires against a destroyed section.
type RevealController struct {
	anim     *Animator
	vp       *Viewport
	bindings map[uint32]*RevealBinding
	progress map[uint32]*ProgressBinding
	log      *slog.Logger
}

// NewRevealController creates a controller driving anim from vp's crossings.
func NewRevealController(anim *Animator, vp *Viewport, opts ...Option) *RevealController {
	return &RevealController{
		anim:     anim,
		vp:       vp,
		bindings: make(map[uint32]*RevealBinding),
		progress: make(map[uint32]*ProgressBinding),
		log:      buildOptions(opts).logger,
	}
}

// Bind registers el for a scroll-triggered entrance and returns the unbind
// function. The section is put in its hidden start state immediately.
// Binding an element twice replaces the earlier binding. Panics if el is nil
// or disposed.
func (rc *RevealController) Bind(el *Element, opts RevealOptions) (unbind func()) {
	if el == nil {
		panic("curtain: reveal target is nil")
	}
	if el.IsDisposed() {
		panic("curtain: reveal target " + el.Name + " is disposed")
	}
	if old, ok := rc.bindings[el.ID]; ok {
		rc.release(old)
		old.restore()
	}
	opts = opts.withDefaults()
	b := &RevealBinding{Element: el, opts: opts}
	b.anim = rc.buildEntrance(b, opts)
	b.observer = rc.vp.Observe(el, opts.Threshold, func(d Direction) { rc.cross(b, d) })
	rc.bindings[el.ID] = b
	return func() { rc.release(b) }
}

// buildEntrance creates the binding's paused animation and applies the
// start state.
func (rc *RevealController) buildEntrance(b *RevealBinding, opts RevealOptions) Animation {
	el := b.Element
	from := Props{PropY: opts.EntranceOffset, PropAlpha: 0}
	if opts.FromScale != 0 {
		from[PropScaleX] = opts.FromScale
		from[PropScaleY] = opts.FromScale
	}
	b.targets = []*Element{el}
	if opts.StaggerChildren && el.NumChildren() > 0 {
		b.targets = append([]*Element(nil), el.Children()...)
	}
	for _, t := range b.targets {
		b.rest = append(b.rest, t.capture(from))
	}

	cfg := TweenConfig{Duration: opts.Duration, Ease: opts.Ease, Paused: true}
	if opts.StaggerChildren && el.NumChildren() > 0 {
		tl := NewTimeline(TimelineConfig{Ease: opts.Ease, Paused: true})
		tl.StaggerFrom(b.targets, from, cfg, opts.Stagger, At(0))
		return rc.anim.Play(tl)
	}
	return rc.anim.From(el, from, cfg)
}

// cross applies a threshold crossing to b.
func (rc *RevealController) cross(b *RevealBinding, d Direction) {
	if b.released {
		return
	}
	if b.opts.OnToggle != nil {
		b.opts.OnToggle(d == DirectionForward)
	}
	switch d {
	case DirectionForward:
		b.State = ThresholdEntered
		if b.Plays > 0 && !b.opts.Replay {
			return
		}
		b.Plays++
		b.anim.Play()
		rc.log.Debug("reveal play", "element", b.Element.Name, "plays", b.Plays)
	case DirectionBackward:
		b.State = ThresholdExited
		if !b.opts.Replay {
			return
		}
		b.Reversals++
		b.anim.Reverse()
		rc.log.Debug("reveal reverse", "element", b.Element.Name)
	}
}

// Binding returns the binding for el, or nil.
func (rc *RevealController) Binding(el *Element) *RevealBinding {
	return rc.bindings[el.ID]
}

// Len returns the number of live reveal and progress bindings.
func (rc *RevealController) Len() int {
	return len(rc.bindings) + len(rc.progress)
}

func (rc *RevealController) release(b *RevealBinding) {
	if b.released {
		return
	}
	b.released = true
	b.anim.Kill()
	b.observer.Remove()
	if cur, ok := rc.bindings[b.Element.ID]; ok && cur == b {
		delete(rc.bindings, b.Element.ID)
	}
}

// BindProgress registers a continuous-progress binding on el and returns the
// unbind function. Panics if el is nil or disposed.
func (rc *RevealController) BindProgress(el *Element, opts ProgressOptions) (unbind func()) {
	if el == nil {
		panic("curtain: progress target is nil")
	}
	if el.IsDisposed() {
		panic("curtain: progress target " + el.Name + " is disposed")
	}
	if opts.Trigger == nil {
		opts.Trigger = el
	}
	if opts.StartAt == 0 {
		opts.StartAt = 0.5
	}
	if opts.EndAt == 0 {
		opts.EndAt = 1
	}
	if opts.Prop == PropX && opts.From == 0 && opts.To == 0 {
		opts.Prop = PropScaleY
		opts.To = 1
	}
	if old, ok := rc.progress[el.ID]; ok {
		rc.releaseProgress(old)
	}
	rc.anim.KillTweensOf(el)
	p := &ProgressBinding{Element: el, opts: opts}
	p.apply(rc.vp)
	p.listener = rc.vp.OnScroll(func(float64) {
		if !p.released {
			p.apply(rc.vp)
		}
	})
	rc.progress[el.ID] = p
	return func() { rc.releaseProgress(p) }
}

// ProgressBinding returns the progress binding for el, or nil.
func (rc *RevealController) ProgressBinding(el *Element) *ProgressBinding {
	return rc.progress[el.ID]
}

func (rc *RevealController) releaseProgress(p *ProgressBinding) {
	if p.released {
		return
	}
	p.released = true
	p.listener.Remove()
	if cur, ok := rc.progress[p.Element.ID]; ok && cur == p {
		delete(rc.progress, p.Element.ID)
	}
}

// ScrollProgress maps scrollY to [0, 1] between the scroll offset where the
// trigger's top meets startAt and where its bottom meets endAt.
func ScrollProgress(trigger Rect, viewportHeight, startAt, endAt, scrollY float64) float64 {
	start := trigger.Y - startAt*viewportHeight
	end := trigger.Bottom() - endAt*viewportHeight
	if end <= start {
		if scrollY >= start {
			return 1
		}
		return 0
	}
	return clamp01((scrollY - start) / (end - start))
}

func (p *ProgressBinding) apply(vp *Viewport) {
	if p.Element.IsDisposed() || p.opts.Trigger.IsDisposed() {
		return
	}
	p.progress = ScrollProgress(p.opts.Trigger.DocumentBounds(), vp.Height, p.opts.StartAt, p.opts.EndAt, vp.ScrollY())
	*p.Element.field(p.opts.Prop) = p.opts.From + (p.opts.To-p.opts.From)*p.progress
}

// Close releases every binding.
func (rc *RevealController) Close() {
	for _, b := range rc.bindings {
		rc.release(b)
	}
	for _, p := range rc.progress {
		rc.releaseProgress(p)
	}
}
