package curtain

import "github.com/tanema/gween/ease"

// The controllers in this file hold configuration only. Per-element state
// lives in the Animator's handles, so one controller value can serve any
// number of elements.

// Magnetic pulls an element toward the pointer while it hovers and springs
// it back on leave.
type Magnetic struct {
	Anim *Animator
	// Strength scales the pointer's offset from the element center.
	Strength float64
	// Duration and Ease shape the pull toward the pointer.
	Duration float32
	Ease     ease.TweenFunc
	// ReturnDuration and ReturnEase shape the spring back to rest.
	ReturnDuration float32
	ReturnEase     ease.TweenFunc
	// Follower, if set, trails the element at FollowerScale times its offset
	// and fades to FollowerAlpha while the pointer hovers.
	Follower      *Element
	FollowerScale float64
	FollowerAlpha float64
}

// NewMagnetic returns a magnetic controller with the site's feel: 0.3
// strength, fast power2.out pull, elastic return.
func NewMagnetic(anim *Animator) Magnetic {
	return Magnetic{
		Anim:           anim,
		Strength:       0.3,
		Duration:       0.3,
		Ease:           ease.OutCubic,
		ReturnDuration: 0.5,
		ReturnEase:     ease.OutElastic,
		FollowerScale:  1.5,
		FollowerAlpha:  0.5,
	}
}

// Move pulls el toward the pointer at document coordinates (px, py). The
// new tween overwrites any in-flight pull or return on el.
func (m Magnetic) Move(el *Element, px, py float64) *Tween {
	c := el.DocumentBounds().Center()
	dx := (px - c.X) * m.Strength
	dy := (py - c.Y) * m.Strength
	tw := m.Anim.To(el, Props{PropX: dx, PropY: dy}, TweenConfig{
		Duration:  m.Duration,
		Ease:      m.Ease,
		Overwrite: true,
	})
	if m.Follower != nil && !m.Follower.IsDisposed() {
		m.Anim.To(m.Follower, Props{
			PropX:     dx * m.FollowerScale,
			PropY:     dy * m.FollowerScale,
			PropAlpha: m.FollowerAlpha,
		}, TweenConfig{Duration: m.Duration, Ease: m.Ease, Overwrite: true})
	}
	return tw
}

// Leave springs el back to zero offset.
func (m Magnetic) Leave(el *Element) *Tween {
	tw := m.Anim.To(el, Props{PropX: 0, PropY: 0}, TweenConfig{
		Duration:  m.ReturnDuration,
		Ease:      m.ReturnEase,
		Overwrite: true,
	})
	if m.Follower != nil && !m.Follower.IsDisposed() {
		m.Anim.To(m.Follower, Props{PropAlpha: 0}, TweenConfig{
			Duration:  m.ReturnDuration,
			Overwrite: true,
		})
	}
	return tw
}

// Bind wires el's pointer callbacks to Move and Leave and makes it
// interactable. The returned function unwires them.
func (m Magnetic) Bind(el *Element) (unbind func()) {
	el.Interactable = true
	el.OnPointerMove = func(ctx PointerContext) { m.Move(el, ctx.DocX, ctx.DocY) }
	el.OnPointerLeave = func(PointerContext) { m.Leave(el) }
	return func() {
		el.OnPointerMove = nil
		el.OnPointerLeave = nil
	}
}

// Float bobs an element up and down forever.
type Float struct {
	Anim *Animator
	// Amplitude is the vertical travel in pixels.
	Amplitude float64
	// Duration of one half-cycle in seconds.
	Duration float32
	Ease     ease.TweenFunc
}

// NewFloat returns a float controller with an 8px, 3s sine.inOut bob.
func NewFloat(anim *Animator) Float {
	return Float{Anim: anim, Amplitude: 8, Duration: 3, Ease: ease.InOutSine}
}

// Start begins the infinite yoyo on el, replacing any earlier float. The
// bob is anchored on the TranslateY el had at its first Start, so
// restarting mid-cycle does not shift it. The animation runs until Stop is
// called; unmounting does not stop it.
func (f Float) Start(el *Element) *Tween {
	if !el.floatAnchored {
		el.floatRest, el.floatAnchored = el.TranslateY, true
	}
	rest := el.floatRest
	return f.Anim.FromTo(el, Props{PropY: rest}, Props{PropY: rest + f.Amplitude}, TweenConfig{
		Duration:  f.Duration,
		Ease:      f.Ease,
		Repeat:    -1,
		Yoyo:      true,
		Overwrite: true,
	})
}

// Stop kills every tween on el, the float included.
func (f Float) Stop(el *Element) {
	f.Anim.KillTweensOf(el)
}

// Lift raises and slightly enlarges an element while hovered.
type Lift struct {
	Anim     *Animator
	Rise     float64
	Scale    float64
	Duration float32
	Ease     ease.TweenFunc
}

// NewLift returns the event card hover: 6px up, 1% larger, power3.out.
func NewLift(anim *Animator) Lift {
	return Lift{Anim: anim, Rise: 6, Scale: 1.01, Duration: 0.4, Ease: ease.OutQuart}
}

// Enter lifts el.
func (l Lift) Enter(el *Element) *Tween {
	return l.Anim.To(el, Props{PropY: -l.Rise, PropScaleX: l.Scale, PropScaleY: l.Scale},
		TweenConfig{Duration: l.Duration, Ease: l.Ease, Overwrite: true})
}

// Leave settles el back to rest.
func (l Lift) Leave(el *Element) *Tween {
	return l.Anim.To(el, Props{PropY: 0, PropScaleX: 1, PropScaleY: 1},
		TweenConfig{Duration: l.Duration, Ease: l.Ease, Overwrite: true})
}

// Bind wires el's enter and leave callbacks. The returned function unwires
// them.
func (l Lift) Bind(el *Element) (unbind func()) {
	el.Interactable = true
	el.OnPointerEnter = func(PointerContext) { l.Enter(el) }
	el.OnPointerLeave = func(PointerContext) { l.Leave(el) }
	return func() {
		el.OnPointerEnter = nil
		el.OnPointerLeave = nil
	}
}
