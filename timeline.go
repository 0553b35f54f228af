package curtain

import (
	"sort"

	"github.com/tanema/gween/ease"
)

type posKind uint8

const (
	posEnd posKind = iota
	posOffset
	posAt
)

// Position places a timeline entry. The zero value appends at the current end.
type Position struct {
	kind posKind
	v    float32
}

// End appends an entry at the current end of the timeline.
var End = Position{}

// Offset places an entry relative to the current end of the timeline.
// Offset(-0.45) starts 0.45s before the end, overlapping the tail.
func Offset(d float32) Position { return Position{kind: posOffset, v: d} }

// At places an entry at an absolute time.
func At(t float32) Position { return Position{kind: posAt, v: t} }

type entryKind uint8

const (
	entryTween entryKind = iota
	entrySet
	entryCall
)

type timelineEntry struct {
	kind  entryKind
	at    float32
	tween *Tween
	// set entries
	el    *Element
	props Props
	prev  Props
	// call entries
	fn func()

	reached bool
}

func (e *timelineEntry) end() float32 {
	if e.kind == entryTween {
		return e.at + e.tween.totalDuration()
	}
	return e.at
}

// TimelineConfig controls a timeline.
type TimelineConfig struct {
	// Ease is the default ease for child tweens without one.
	Ease ease.TweenFunc
	// Paused creates the timeline without starting it; see TweenConfig.Paused.
	Paused bool

	OnComplete        func()
	OnReverseComplete func()
}

// Timeline sequences tweens, instant sets and callbacks on one playhead.
// Child tweens are driven by the timeline and must not be added to an
// Animator separately.
type Timeline struct {
	cfg      TimelineConfig
	entries  []*timelineEntry
	duration float32

	time     float32
	reversed bool
	paused   bool
	killed   bool
	finished bool
}

// NewTimeline creates an empty timeline.
func NewTimeline(cfg TimelineConfig) *Timeline {
	if cfg.Ease == nil {
		cfg.Ease = ease.OutQuad
	}
	return &Timeline{cfg: cfg, paused: cfg.Paused}
}

// Duration returns the end time of the last entry.
func (tl *Timeline) Duration() float32 { return tl.duration }

// Len returns the number of entries.
func (tl *Timeline) Len() int { return len(tl.entries) }

func (tl *Timeline) resolve(pos Position) float32 {
	var at float32
	switch pos.kind {
	case posEnd:
		at = tl.duration
	case posOffset:
		at = tl.duration + pos.v
	case posAt:
		at = pos.v
	}
	if at < 0 {
		at = 0
	}
	return at
}

// insert keeps entries ordered by start time; equal starts keep insertion order.
func (tl *Timeline) insert(e *timelineEntry) {
	i := sort.Search(len(tl.entries), func(i int) bool { return tl.entries[i].at > e.at })
	tl.entries = append(tl.entries, nil)
	copy(tl.entries[i+1:], tl.entries[i:])
	tl.entries[i] = e
	if end := e.end(); end > tl.duration {
		tl.duration = end
	}
}

func (tl *Timeline) childConfig(cfg TweenConfig) TweenConfig {
	if cfg.Ease == nil {
		cfg.Ease = tl.cfg.Ease
	}
	cfg.Paused = false
	cfg.Overwrite = false
	cfg.Repeat = 0
	cfg.Delay = 0
	return cfg
}

// To adds a tween toward the given values. Start values are captured when
// the playhead first reaches the entry.
func (tl *Timeline) To(el *Element, to Props, cfg TweenConfig, pos Position) *Timeline {
	tw := newTween(el, nil, to, tl.childConfig(cfg))
	tl.insert(&timelineEntry{kind: entryTween, at: tl.resolve(pos) + cfg.Delay, tween: tw})
	return tl
}

// From adds a tween from the given values to the element's current values.
// The start values are applied immediately.
func (tl *Timeline) From(el *Element, from Props, cfg TweenConfig, pos Position) *Timeline {
	to := el.capture(from)
	tw := newTween(el, from, to, tl.childConfig(cfg))
	el.apply(from)
	tl.insert(&timelineEntry{kind: entryTween, at: tl.resolve(pos) + cfg.Delay, tween: tw})
	return tl
}

// StaggerTo adds one To tween per element, each starting `each` seconds
// after the previous one.
func (tl *Timeline) StaggerTo(els []*Element, to Props, cfg TweenConfig, each float32, pos Position) *Timeline {
	at := tl.resolve(pos)
	for i, el := range els {
		tl.To(el, to, cfg, At(at+float32(i)*each))
	}
	return tl
}

// StaggerFrom adds one From tween per element, each starting `each` seconds
// after the previous one.
func (tl *Timeline) StaggerFrom(els []*Element, from Props, cfg TweenConfig, each float32, pos Position) *Timeline {
	at := tl.resolve(pos)
	for i, el := range els {
		tl.From(el, from, cfg, At(at+float32(i)*each))
	}
	return tl
}

// Set adds an instant property assignment. Playing backward past it
// restores the values it replaced.
func (tl *Timeline) Set(el *Element, props Props, pos Position) *Timeline {
	if el == nil {
		panic("curtain: set target is nil")
	}
	tl.insert(&timelineEntry{kind: entrySet, at: tl.resolve(pos), el: el, props: props})
	return tl
}

// Call adds a callback fired when the playhead passes it moving forward.
func (tl *Timeline) Call(fn func(), pos Position) *Timeline {
	tl.insert(&timelineEntry{kind: entryCall, at: tl.resolve(pos), fn: fn})
	return tl
}

// ahead reports whether the playhead has not reached e. Rewinding to zero
// also un-reaches entries placed at zero.
func (tl *Timeline) ahead(e *timelineEntry) bool {
	return tl.time < e.at || tl.reversed && tl.time == 0 && e.at == 0
}

// render brings every entry in line with the playhead. Reached entries that
// are now ahead of the playhead are rewound first (latest first), then
// reached entries are rendered in start order.
func (tl *Timeline) render() {
	for i := len(tl.entries) - 1; i >= 0; i-- {
		e := tl.entries[i]
		if !e.reached || !tl.ahead(e) {
			continue
		}
		e.reached = false
		switch e.kind {
		case entryTween:
			e.tween.seek(0)
		case entrySet:
			if !e.el.IsDisposed() {
				e.el.apply(e.prev)
			}
		}
	}
	for _, e := range tl.entries {
		if tl.ahead(e) {
			break
		}
		switch e.kind {
		case entryTween:
			e.tween.seek(tl.time - e.at)
		case entrySet:
			if !e.reached && !e.el.IsDisposed() {
				e.prev = e.el.capture(e.props)
				e.el.apply(e.props)
			}
		case entryCall:
			if !e.reached && !tl.reversed {
				e.fn()
			}
		}
		e.reached = true
		if tl.killed {
			return
		}
	}
}

// Update advances the timeline by dt seconds.
func (tl *Timeline) Update(dt float32) {
	if tl.killed || tl.paused || tl.finished {
		return
	}
	if !tl.reversed {
		tl.time += dt
		if tl.time >= tl.duration {
			tl.time = tl.duration
			tl.finished = true
		}
		tl.render()
		if tl.finished && !tl.killed && tl.cfg.OnComplete != nil {
			tl.cfg.OnComplete()
		}
		return
	}
	tl.time -= dt
	if tl.time <= 0 {
		tl.time = 0
		tl.finished = true
	}
	tl.render()
	if tl.finished && !tl.killed && tl.cfg.OnReverseComplete != nil {
		tl.cfg.OnReverseComplete()
	}
}

// Play resumes forward playback.
func (tl *Timeline) Play() {
	tl.paused = false
	tl.reversed = false
	tl.finished = tl.time >= tl.duration && tl.time > 0
}

// Reverse resumes backward playback.
func (tl *Timeline) Reverse() {
	tl.paused = false
	tl.reversed = true
	tl.finished = tl.time <= 0
}

// Pause freezes the playhead.
func (tl *Timeline) Pause() { tl.paused = true }

// Restart rewinds to zero and plays forward.
func (tl *Timeline) Restart() {
	tl.reversed = true
	tl.time = 0
	tl.render()
	tl.reversed = false
	tl.paused = false
	tl.finished = false
}

// Kill stops the timeline and all its children permanently.
func (tl *Timeline) Kill() {
	tl.killed = true
	for _, e := range tl.entries {
		if e.kind == entryTween {
			e.tween.Kill()
		}
	}
}

// Progress returns the playhead as a fraction of the duration.
func (tl *Timeline) Progress() float64 {
	if tl.duration <= 0 {
		if tl.finished && !tl.reversed {
			return 1
		}
		return 0
	}
	return float64(tl.time / tl.duration)
}

// SetProgress moves the playhead and renders immediately. Callbacks between
// the old and new playhead fire when moving forward.
func (tl *Timeline) SetProgress(p float64) {
	tl.time = float32(clamp01(p)) * tl.duration
	tl.render()
}

// Time returns the playhead in seconds.
func (tl *Timeline) Time() float32 { return tl.time }

// Done reports whether the playhead has reached the end in its direction.
func (tl *Timeline) Done() bool { return tl.finished }

// Killed reports whether Kill was called.
func (tl *Timeline) Killed() bool { return tl.killed }

// Reversed reports whether the timeline is playing backward.
func (tl *Timeline) Reversed() bool { return tl.reversed }
