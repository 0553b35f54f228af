package curtain

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
)

var (
	// ErrNoOverlay is returned when the overlay layers or label are missing.
	ErrNoOverlay = errors.New("curtain: overlay target missing")
	// ErrNoRouter is returned when an orchestrator is built without a router.
	ErrNoRouter = errors.New("curtain: router missing")
)

// Phase is the orchestrator's position in a transition.
type Phase uint8

const (
	PhaseIdle       Phase = iota // no transition in flight
	PhaseCovering                // overlay sliding over the viewport
	PhaseNavigating              // viewport occluded, route changing
	PhaseRevealing               // overlay sliding off the viewport
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCovering:
		return "covering"
	case PhaseNavigating:
		return "navigating"
	case PhaseRevealing:
		return "revealing"
	}
	return fmt.Sprintf("phase(%d)", p)
}

// TransitionRequest is one accepted navigation intent.
type TransitionRequest struct {
	// ID correlates the log lines of one transition.
	ID     string
	From   string
	Target string
	// Back pops the router's history instead of pushing Target.
	Back bool
}

// TransitionState is a read-only snapshot of the orchestrator.
type TransitionState struct {
	Animating bool
	Label     string
	Phase     Phase
	Target    string
}

// Overlay names the elements the orchestrator animates. Layers are stacked
// full-viewport panels, bottom-most first.
type Overlay struct {
	Layers []*Element
	Label  *Element
}

// TransitionConfig controls overlay timing. Zero fields take the defaults
// of DefaultTransitionConfig.
type TransitionConfig struct {
	CoverDuration  float32
	RevealDuration float32
	// LayerStagger delays each layer after the first. The reveal staggers in
	// reverse layer order.
	LayerStagger float32
	// LabelInDuration is the label fade-in, which starts LabelOverlap
	// seconds before the cover finishes.
	LabelInDuration  float32
	LabelOverlap     float32
	LabelOutDuration float32
	// LabelRise is the vertical travel of the label in pixels.
	LabelRise float64
	Ease      ease.TweenFunc
}

// DefaultTransitionConfig returns the summit site's overlay timing.
func DefaultTransitionConfig() TransitionConfig {
	return TransitionConfig{
		CoverDuration:    0.7,
		RevealDuration:   0.7,
		LabelInDuration:  0.4,
		LabelOverlap:     0.45,
		LabelOutDuration: 0.3,
		LabelRise:        20,
		Ease:             ease.InOutQuint,
	}
}

func (c TransitionConfig) withDefaults() TransitionConfig {
	d := DefaultTransitionConfig()
	if c.CoverDuration <= 0 {
		c.CoverDuration = d.CoverDuration
	}
	if c.RevealDuration <= 0 {
		c.RevealDuration = d.RevealDuration
	}
	if c.LabelInDuration <= 0 {
		c.LabelInDuration = d.LabelInDuration
	}
	if c.LabelOverlap < 0 {
		c.LabelOverlap = 0
	}
	if c.LabelOutDuration <= 0 {
		c.LabelOutDuration = d.LabelOutDuration
	}
	if c.LabelRise == 0 {
		c.LabelRise = d.LabelRise
	}
	if c.Ease == nil {
		c.Ease = d.Ease
	}
	return c
}

// Orchestrator plays the overlay wipe around route changes and guarantees
// that at most one transition is in flight. It runs on the shell's single
// update loop; the guard in RequestTransition is checked before any state
// changes, so re-entrant calls (double clicks, navigation listeners) are
// rejected.
type Orchestrator struct {
	router  Router
	vp      *Viewport
	anim    *Animator
	overlay Overlay
	labels  *LabelMap
	cfg     TransitionConfig
	log     *slog.Logger

	state   TransitionState
	req     TransitionRequest
	active  *Timeline
	closed  bool
	onPhase func(Phase)
}

// NewOrchestrator validates the overlay and puts it in its baseline state.
// A missing overlay target is a setup fault reported here rather than a
// silent no-op later.
func NewOrchestrator(router Router, vp *Viewport, anim *Animator, overlay Overlay, labels *LabelMap, cfg TransitionConfig, opts ...Option) (*Orchestrator, error) {
	if router == nil {
		return nil, ErrNoRouter
	}
	if vp == nil || anim == nil {
		return nil, errors.New("curtain: viewport and animator are required")
	}
	if len(overlay.Layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrNoOverlay)
	}
	for i, l := range overlay.Layers {
		if l == nil || l.IsDisposed() {
			return nil, fmt.Errorf("%w: layer %d", ErrNoOverlay, i)
		}
	}
	if overlay.Label == nil || overlay.Label.IsDisposed() {
		return nil, fmt.Errorf("%w: label", ErrNoOverlay)
	}
	o := &Orchestrator{
		router:  router,
		vp:      vp,
		anim:    anim,
		overlay: overlay,
		labels:  labels,
		cfg:     cfg.withDefaults(),
		log:     buildOptions(opts).logger,
	}
	o.reset()
	return o, nil
}

// OnPhase registers fn to run on every phase change.
func (o *Orchestrator) OnPhase(fn func(Phase)) {
	o.onPhase = fn
}

// Snapshot returns the current state.
func (o *Orchestrator) Snapshot() TransitionState {
	return o.state
}

// Active returns the in-flight timeline, or nil when idle or navigating.
func (o *Orchestrator) Active() *Timeline {
	return o.active
}

// RequestTransition starts a transition to target. It returns false, with
// no effect, when target is empty, equals the current route, a transition
// is already in flight, or the orchestrator is closed.
func (o *Orchestrator) RequestTransition(target string) bool {
	return o.request(target, false)
}

// RequestBack starts a transition to the previous route, popping the
// current one from history. It returns false when the router has no
// history to return to, or for any reason RequestTransition would.
func (o *Orchestrator) RequestBack() bool {
	hr, ok := o.router.(HistoryRouter)
	if !ok {
		return false
	}
	prev, ok := hr.Previous()
	if !ok {
		return false
	}
	return o.request(prev, true)
}

func (o *Orchestrator) request(target string, back bool) bool {
	if o.closed || target == "" {
		return false
	}
	if o.state.Animating {
		o.log.Debug("transition ignored", "target", target, "reason", "in flight", "active", o.req.Target)
		return false
	}
	current := o.router.CurrentRoute()
	if target == current {
		o.log.Debug("transition ignored", "target", target, "reason", "current route")
		return false
	}

	o.req = TransitionRequest{ID: uuid.NewString(), From: current, Target: target, Back: back}
	label := o.labels.Resolve(target)
	o.state = TransitionState{Animating: true, Label: label, Target: target}
	o.overlay.Label.Text = label
	o.log.Info("transition started", "id", o.req.ID, "from", current, "to", target, "label", label, "back", back)
	o.enter(PhaseCovering)
	return true
}

// enter performs the side effects of phase p. It is the only place the
// phase changes.
func (o *Orchestrator) enter(p Phase) {
	o.state.Phase = p
	o.log.Debug("transition phase", "id", o.req.ID, "phase", p.String())
	if o.onPhase != nil {
		o.onPhase(p)
	}
	switch p {
	case PhaseCovering:
		for _, l := range o.overlay.Layers {
			l.Visible = true
		}
		o.active = o.anim.Play(o.coverTimeline())
	case PhaseNavigating:
		o.active = nil
		if hr, ok := o.router.(HistoryRouter); ok && o.req.Back {
			hr.Back()
		} else {
			o.router.Navigate(o.req.Target)
		}
		o.vp.SetScroll(0)
		o.advance()
	case PhaseRevealing:
		o.active = o.anim.Play(o.revealTimeline())
	case PhaseIdle:
		id := o.req.ID
		o.reset()
		o.log.Info("transition complete", "id", id, "route", o.router.CurrentRoute())
	}
}

// advance moves to the phase after the current one.
func (o *Orchestrator) advance() {
	if o.closed {
		return
	}
	switch o.state.Phase {
	case PhaseCovering:
		o.enter(PhaseNavigating)
	case PhaseNavigating:
		o.enter(PhaseRevealing)
	case PhaseRevealing:
		o.enter(PhaseIdle)
	}
}

// completion returns an OnComplete callback that advances only while tl is
// still the active timeline.
func (o *Orchestrator) completion(tl **Timeline) func() {
	return func() {
		if o.active == *tl {
			o.advance()
		}
	}
}

func (o *Orchestrator) coverTimeline() *Timeline {
	var tl *Timeline
	tl = NewTimeline(TimelineConfig{Ease: o.cfg.Ease, OnComplete: o.completion(&tl)})
	tl.StaggerTo(o.overlay.Layers, Props{PropY: 0},
		TweenConfig{Duration: o.cfg.CoverDuration}, o.cfg.LayerStagger, At(0))
	tl.To(o.overlay.Label, Props{PropAlpha: 1, PropY: 0},
		TweenConfig{Duration: o.cfg.LabelInDuration}, Offset(-o.cfg.LabelOverlap))
	return tl
}

func (o *Orchestrator) revealTimeline() *Timeline {
	var tl *Timeline
	tl = NewTimeline(TimelineConfig{Ease: o.cfg.Ease, OnComplete: o.completion(&tl)})
	tl.To(o.overlay.Label, Props{PropAlpha: 0, PropY: -o.cfg.LabelRise},
		TweenConfig{Duration: o.cfg.LabelOutDuration}, At(0))
	layers := make([]*Element, len(o.overlay.Layers))
	for i, l := range o.overlay.Layers {
		layers[len(layers)-1-i] = l
	}
	tl.StaggerTo(layers, Props{PropY: -o.vp.Height},
		TweenConfig{Duration: o.cfg.RevealDuration}, o.cfg.LayerStagger, End)
	return tl
}

// reset returns the overlay and state to baseline: layers hidden one
// viewport below, label transparent and empty, no active timeline.
func (o *Orchestrator) reset() {
	for _, l := range o.overlay.Layers {
		if l.IsDisposed() {
			continue
		}
		o.anim.KillTweensOf(l)
		l.TranslateY = o.vp.Height
		l.Visible = false
	}
	if lb := o.overlay.Label; !lb.IsDisposed() {
		o.anim.KillTweensOf(lb)
		lb.Alpha = 0
		lb.TranslateY = o.cfg.LabelRise
		lb.Text = ""
	}
	o.active = nil
	o.state = TransitionState{}
	o.req = TransitionRequest{}
}

// Close kills the in-flight timeline, restores the baseline, and rejects
// all further requests. Call it when the shell unmounts.
func (o *Orchestrator) Close() {
	if o.closed {
		return
	}
	if o.active != nil {
		o.active.Kill()
	}
	o.reset()
	o.closed = true
}
