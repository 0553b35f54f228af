package curtain

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultThreshold is the viewport fraction, measured from the top, that a
// section's top edge must cross to count as entered.
const DefaultThreshold = 0.8

// observer tracks one element against one viewport line.
type observer struct {
	id       uint32
	el       *Element
	fraction float64
	onCross  func(Direction)
	entered  bool
	primed   bool
	removed  bool
}

type scrollListener struct {
	id uint32
	fn func(scrollY float64)
}

// ObserverHandle allows removing a registered observer or scroll listener.
type ObserverHandle struct {
	id uint32
	vp *Viewport
}

// Remove unregisters the observer or listener so it no longer fires.
// Safe to call more than once.
func (h ObserverHandle) Remove() {
	if h.vp == nil {
		return
	}
	h.vp.remove(h.id)
}

// Viewport is the visible window onto the scrolling document. It owns the
// scroll offset and reports threshold crossings of observed elements.
type Viewport struct {
	// Width and Height are the viewport size in pixels.
	Width, Height float64
	// ContentHeight is the document height. Scrolling is clamped to
	// [0, ContentHeight-Height].
	ContentHeight float64

	scrollY     float64
	scrollTween *gween.Tween
	dirty       bool

	observers []*observer
	listeners []scrollListener
	nextID    uint32
}

// NewViewport creates a viewport of the given size at scroll offset zero.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height, ContentHeight: height}
}

// ScrollY returns the current scroll offset.
func (v *Viewport) ScrollY() float64 { return v.scrollY }

// MaxScroll returns the largest valid scroll offset.
func (v *Viewport) MaxScroll() float64 {
	return math.Max(0, v.ContentHeight-v.Height)
}

// SetScroll jumps to y (clamped) and cancels any scroll animation.
func (v *Viewport) SetScroll(y float64) {
	v.scrollTween = nil
	v.setScroll(y)
}

// ScrollBy scrolls by dy pixels (clamped) and cancels any scroll animation.
func (v *Viewport) ScrollBy(dy float64) {
	v.SetScroll(v.scrollY + dy)
}

// ScrollTo animates the scroll offset to y over duration seconds.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	y = math.Max(0, math.Min(y, v.MaxScroll()))
	if duration <= 0 {
		v.SetScroll(y)
		return
	}
	v.scrollTween = gween.New(float32(v.scrollY), float32(y), duration, easeFn)
}

// ScrollIntoView animates so that el's center sits in the middle of the
// viewport.
func (v *Viewport) ScrollIntoView(el *Element, duration float32, easeFn ease.TweenFunc) {
	c := el.DocumentBounds().Center()
	v.ScrollTo(c.Y-v.Height/2, duration, easeFn)
}

// Scrolling reports whether a scroll animation is in progress.
func (v *Viewport) Scrolling() bool { return v.scrollTween != nil }

func (v *Viewport) setScroll(y float64) {
	y = math.Max(0, math.Min(y, v.MaxScroll()))
	if y != v.scrollY {
		v.scrollY = y
		v.dirty = true
	}
}

// Observe registers onCross to fire whenever el's top edge crosses the line
// at fraction of the viewport height. Crossings are evaluated on the next
// update, so an element already past the line enters on the first tick.
func (v *Viewport) Observe(el *Element, fraction float64, onCross func(Direction)) ObserverHandle {
	if el == nil {
		panic("curtain: observe target is nil")
	}
	v.nextID++
	v.observers = append(v.observers, &observer{
		id:       v.nextID,
		el:       el,
		fraction: fraction,
		onCross:  onCross,
	})
	return ObserverHandle{id: v.nextID, vp: v}
}

// OnScroll registers fn to run after every scroll offset change. fn is also
// called once on the next update with the current offset.
func (v *Viewport) OnScroll(fn func(scrollY float64)) ObserverHandle {
	v.nextID++
	v.listeners = append(v.listeners, scrollListener{id: v.nextID, fn: fn})
	v.dirty = true
	return ObserverHandle{id: v.nextID, vp: v}
}

// NumObservers returns the number of registered observers and listeners.
func (v *Viewport) NumObservers() int {
	return len(v.observers) + len(v.listeners)
}

func (v *Viewport) remove(id uint32) {
	for i, o := range v.observers {
		if o.id == id {
			o.removed = true
			copy(v.observers[i:], v.observers[i+1:])
			v.observers[len(v.observers)-1] = nil
			v.observers = v.observers[:len(v.observers)-1]
			return
		}
	}
	for i, l := range v.listeners {
		if l.id == id {
			copy(v.listeners[i:], v.listeners[i+1:])
			v.listeners[len(v.listeners)-1] = scrollListener{}
			v.listeners = v.listeners[:len(v.listeners)-1]
			return
		}
	}
}

// line returns the document Y of the threshold line for fraction.
func (v *Viewport) line(fraction float64) float64 {
	return v.scrollY + fraction*v.Height
}

// update advances the scroll animation, then notifies listeners and
// evaluates observers. Called from Shell.Update.
func (v *Viewport) update(dt float32) {
	if v.scrollTween != nil {
		val, done := v.scrollTween.Update(dt)
		v.setScroll(float64(val))
		if done {
			v.scrollTween = nil
		}
	}

	if v.dirty {
		v.dirty = false
		// Listeners may remove themselves; iterate over a snapshot.
		ls := append([]scrollListener(nil), v.listeners...)
		for _, l := range ls {
			l.fn(v.scrollY)
		}
	}
	v.evaluate()
}

// evaluate fires crossings for observers whose state changed. Observers on
// disposed elements are dropped.
func (v *Viewport) evaluate() {
	obs := append([]*observer(nil), v.observers...)
	for _, o := range obs {
		if o.removed {
			continue
		}
		if o.el.IsDisposed() {
			v.remove(o.id)
			continue
		}
		top := o.el.DocumentBounds().Y
		if o.el.IsFixed() {
			top += v.scrollY
		}
		entered := top <= v.line(o.fraction)
		if !o.primed {
			o.primed = true
			if !entered {
				continue
			}
		} else if entered == o.entered {
			continue
		}
		o.entered = entered
		if entered {
			o.onCross(DirectionForward)
		} else {
			o.onCross(DirectionBackward)
		}
	}
}
