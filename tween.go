package curtain

import (
	"math"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Prop names an animatable element field.
type Prop uint8

const (
	PropX      Prop = iota // TranslateX
	PropY                  // TranslateY
	PropScaleX             // ScaleX
	PropScaleY             // ScaleY
	PropAlpha              // Alpha
)

// Props maps properties to target (or start) values.
type Props map[Prop]float64

// field returns a pointer to the element field backing p.
func (e *Element) field(p Prop) *float64 {
	switch p {
	case PropX:
		return &e.TranslateX
	case PropY:
		return &e.TranslateY
	case PropScaleX:
		return &e.ScaleX
	case PropScaleY:
		return &e.ScaleY
	case PropAlpha:
		return &e.Alpha
	}
	panic("curtain: unknown prop")
}

// apply writes every value in props to the element immediately.
func (e *Element) apply(props Props) {
	for p, v := range props {
		*e.field(p) = v
	}
}

// capture reads the current values of the given props.
func (e *Element) capture(props Props) Props {
	out := make(Props, len(props))
	for p := range props {
		out[p] = *e.field(p)
	}
	return out
}

// sortedProps returns the keys of props in ascending order so that writes
// happen in a deterministic sequence.
func sortedProps(props Props) []Prop {
	keys := make([]Prop, 0, len(props))
	for p := range props {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Animation is the common control surface of tweens and timelines.
type Animation interface {
	// Update advances the playhead by dt seconds in the current direction.
	Update(dt float32)
	Play()
	Reverse()
	Pause()
	Restart()
	Kill()
	Progress() float64
	SetProgress(p float64)
	Done() bool
	Killed() bool
	Reversed() bool
}

// TweenConfig controls the timing of a tween.
type TweenConfig struct {
	// Duration of one iteration in seconds.
	Duration float32
	// Delay before the first forward iteration starts.
	Delay float32
	// Ease defaults to ease.OutQuad.
	Ease ease.TweenFunc
	// Repeat is the number of extra iterations; -1 repeats forever.
	Repeat int
	// Yoyo alternates direction on every repeat.
	Yoyo bool
	// Paused creates the tween without starting it. Paused tweens are
	// controlled by their owner and are not released by the Animator when
	// they finish.
	Paused bool
	// Overwrite kills other Animator tweens on the same element that animate
	// any of the same properties. Tweens inside a Timeline are not reached;
	// they keep writing until the timeline moves past them.
	Overwrite bool

	OnComplete        func()
	OnReverseComplete func()
}

type track struct {
	field *float64
	from  float64
	to    float64
	tw    *gween.Tween
}

// Tween animates one or more properties of a single element. The playhead
// moves forward or backward; values are always derived from the playhead so
// reversing mid-flight retraces the same curve.
type Tween struct {
	target *Element
	to     Props
	from   Props // explicit start values; nil captures on start
	cfg    TweenConfig
	tracks []track

	time      float32
	delayLeft float32
	started   bool
	reversed  bool
	paused    bool
	killed    bool
	finished  bool
}

func newTween(el *Element, from, to Props, cfg TweenConfig) *Tween {
	if el == nil {
		panic("curtain: tween target is nil")
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.OutQuad
	}
	if cfg.Duration < 0 {
		cfg.Duration = 0
	}
	return &Tween{
		target:    el,
		to:        to,
		from:      from,
		cfg:       cfg,
		delayLeft: cfg.Delay,
		paused:    cfg.Paused,
	}
}

// Target returns the animated element.
func (t *Tween) Target() *Element { return t.target }

// Props returns the animated property set.
func (t *Tween) Props() Props { return t.to }

// totalDuration returns the length of all iterations, +Inf when infinite.
func (t *Tween) totalDuration() float32 {
	if t.cfg.Repeat < 0 {
		return float32(math.Inf(1))
	}
	return t.cfg.Duration * float32(t.cfg.Repeat+1)
}

// start captures start values and builds the gween tracks.
func (t *Tween) start() {
	t.started = true
	keys := sortedProps(t.to)
	t.tracks = t.tracks[:0]
	for _, p := range keys {
		f := t.target.field(p)
		from := *f
		if v, ok := t.from[p]; ok {
			from = v
		}
		to := t.to[p]
		t.tracks = append(t.tracks, track{
			field: f,
			from:  from,
			to:    to,
			tw:    gween.New(float32(from), float32(to), t.cfg.Duration, t.cfg.Ease),
		})
	}
}

// localTime folds the playhead into one iteration, honoring yoyo.
func (t *Tween) localTime() float32 {
	d := t.cfg.Duration
	if d <= 0 {
		if t.time > 0 || t.finished && !t.reversed {
			return 1
		}
		return 0
	}
	iter := int(t.time / d)
	local := t.time - float32(iter)*d
	total := t.totalDuration()
	if t.time >= total {
		// Exactly at the end: the last iteration is complete.
		iter = t.cfg.Repeat
		local = d
	}
	if t.cfg.Yoyo && iter%2 == 1 {
		local = d - local
	}
	return local
}

// render writes the values for the current playhead.
func (t *Tween) render() {
	if !t.started {
		t.start()
	}
	local := t.localTime()
	for i := range t.tracks {
		tr := &t.tracks[i]
		if t.cfg.Duration <= 0 {
			if local > 0 {
				*tr.field = tr.to
			} else {
				*tr.field = tr.from
			}
			continue
		}
		val, _ := tr.tw.Set(local)
		switch {
		case local <= 0:
			*tr.field = tr.from
		case local >= t.cfg.Duration:
			*tr.field = tr.to
		default:
			*tr.field = float64(val)
		}
	}
}

// Update advances the tween by dt seconds. If the target element has been
// disposed, the tween is killed and no writes occur.
func (t *Tween) Update(dt float32) {
	if t.killed || t.paused || t.finished {
		return
	}
	if t.target.IsDisposed() {
		t.killed = true
		return
	}
	total := t.totalDuration()
	if !t.reversed {
		if t.delayLeft > 0 {
			t.delayLeft -= dt
			if t.delayLeft > 0 {
				return
			}
			dt = -t.delayLeft
			t.delayLeft = 0
		}
		t.time += dt
		if t.time >= total {
			t.time = total
			t.finished = true
		}
		t.render()
		if t.finished && t.cfg.OnComplete != nil {
			t.cfg.OnComplete()
		}
		return
	}
	t.time -= dt
	if t.time <= 0 {
		t.time = 0
		t.finished = true
	}
	t.render()
	if t.finished && t.cfg.OnReverseComplete != nil {
		t.cfg.OnReverseComplete()
	}
}

// seek renders the tween at absolute time tm without firing callbacks.
// Used by timelines, which own the clock of their children.
func (t *Tween) seek(tm float32) {
	if t.killed || t.target.IsDisposed() {
		return
	}
	total := t.totalDuration()
	if tm < 0 {
		tm = 0
	}
	if tm > total {
		tm = total
	}
	t.time = tm
	t.render()
}

// Play resumes forward playback from the current playhead.
func (t *Tween) Play() {
	t.paused = false
	t.reversed = false
	t.finished = t.time >= t.totalDuration() && t.started
}

// Reverse resumes backward playback from the current playhead.
func (t *Tween) Reverse() {
	t.paused = false
	t.reversed = true
	t.delayLeft = 0
	t.finished = t.time <= 0
}

// Pause freezes the playhead.
func (t *Tween) Pause() { t.paused = true }

// Restart rewinds to the start (including delay) and plays forward.
func (t *Tween) Restart() {
	t.time = 0
	t.delayLeft = t.cfg.Delay
	t.reversed = false
	t.paused = false
	t.finished = false
	if t.started {
		t.render()
	}
}

// Kill stops the tween permanently. Values stay where they are.
func (t *Tween) Kill() { t.killed = true }

// Progress returns the playhead as a fraction of the total duration. For
// infinite tweens it is the progress within the current iteration.
func (t *Tween) Progress() float64 {
	total := t.totalDuration()
	if math.IsInf(float64(total), 1) {
		if t.cfg.Duration <= 0 {
			return 0
		}
		return float64(t.localTime() / t.cfg.Duration)
	}
	if total <= 0 {
		if t.finished || t.time > 0 {
			return 1
		}
		return 0
	}
	return float64(t.time / total)
}

// SetProgress moves the playhead to fraction p of the total duration and
// renders immediately.
func (t *Tween) SetProgress(p float64) {
	total := t.totalDuration()
	if math.IsInf(float64(total), 1) {
		total = t.cfg.Duration
	}
	t.time = float32(clamp01(p)) * total
	t.delayLeft = 0
	t.render()
}

// Done reports whether the playhead has reached the end in its direction.
func (t *Tween) Done() bool { return t.finished }

// Killed reports whether Kill was called or the target was disposed.
func (t *Tween) Killed() bool { return t.killed }

// Reversed reports whether the tween is playing backward.
func (t *Tween) Reversed() bool { return t.reversed }

// Paused reports whether the playhead is frozen.
func (t *Tween) Paused() bool { return t.paused }
