package curtain

import (
	"testing"

	"github.com/tanema/gween/ease"
)

type revealFixture struct {
	vp   *Viewport
	anim *Animator
	rc   *RevealController
}

func newRevealFixture() *revealFixture {
	vp := NewViewport(800, 600)
	vp.ContentHeight = 4000
	anim := NewAnimator()
	return &revealFixture{vp: vp, anim: anim, rc: NewRevealController(anim, vp)}
}

func (f *revealFixture) scrollTo(y float64, frames int) {
	f.vp.SetScroll(y)
	for range frames {
		f.vp.update(1.0 / 60)
		f.anim.Update(1.0 / 60)
	}
}

func TestRevealHiddenUntilCrossed(t *testing.T) {
	f := newRevealFixture()
	sec := NewBox("about", 0, 1500, 800, 400, ColorWhite)
	f.rc.Bind(sec, RevealOptions{})

	if sec.TranslateY != 50 || sec.Alpha != 0 {
		t.Fatalf("start state = (%f, %f), want (50, 0)", sec.TranslateY, sec.Alpha)
	}
	f.scrollTo(0, 120)
	if sec.Alpha != 0 {
		t.Error("revealed while below the line")
	}
	f.scrollTo(1100, 90) // line at 1580
	b := f.rc.Binding(sec)
	if b.State != ThresholdEntered || b.Plays != 1 {
		t.Errorf("state %v plays %d", b.State, b.Plays)
	}
	if sec.TranslateY != 0 || sec.Alpha != 1 {
		t.Errorf("end state = (%f, %f), want (0, 1)", sec.TranslateY, sec.Alpha)
	}
}

func TestRevealOncePlaysOnce(t *testing.T) {
	f := newRevealFixture()
	sec := NewBox("sec", 0, 1500, 800, 400, ColorWhite)
	var toggles []bool
	f.rc.Bind(sec, RevealOptions{OnToggle: func(in bool) { toggles = append(toggles, in) }})

	for range 3 {
		f.scrollTo(1100, 70)
		f.scrollTo(0, 70)
	}
	b := f.rc.Binding(sec)
	if b.Plays != 1 || b.Reversals != 0 {
		t.Errorf("plays %d reversals %d, want 1 0", b.Plays, b.Reversals)
	}
	if sec.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1 (stays revealed)", sec.Alpha)
	}
	if b.State != ThresholdExited {
		t.Errorf("State = %v, want exited", b.State)
	}
	if len(toggles) != 6 {
		t.Errorf("toggles = %v, want 6 crossings", toggles)
	}
}

func TestRevealReplayReusesOneHandle(t *testing.T) {
	f := newRevealFixture()
	sec := NewBox("sec", 0, 1500, 800, 400, ColorWhite)
	f.rc.Bind(sec, RevealOptions{Replay: true})
	b := f.rc.Binding(sec)
	handle := b.Animation()

	for i := range 5 {
		f.scrollTo(1100, 70)
		if sec.Alpha != 1 {
			t.Errorf("cycle %d: not revealed, Alpha = %f", i, sec.Alpha)
		}
		f.scrollTo(0, 70)
		if sec.Alpha != 0 || sec.TranslateY != 50 {
			t.Errorf("cycle %d: not hidden, (%f, %f)", i, sec.TranslateY, sec.Alpha)
		}
		if f.anim.Active(sec) > 1 {
			t.Fatalf("cycle %d: %d tweens on one section", i, f.anim.Active(sec))
		}
	}
	if b.Animation() != handle {
		t.Error("binding replaced its animation")
	}
	if b.Plays != 5 || b.Reversals != 5 {
		t.Errorf("plays %d reversals %d", b.Plays, b.Reversals)
	}
}

func TestRevealReplayMidFlightReverse(t *testing.T) {
	f := newRevealFixture()
	sec := NewBox("sec", 0, 1500, 800, 400, ColorWhite)
	f.rc.Bind(sec, RevealOptions{Replay: true, Ease: ease.Linear})
	f.scrollTo(1100, 30) // half way in
	mid := sec.Alpha
	if mid <= 0 || mid >= 1 {
		t.Fatalf("Alpha = %f, want mid-flight", mid)
	}
	f.scrollTo(0, 1)
	if sec.Alpha >= mid {
		t.Errorf("Alpha = %f did not reverse from %f", sec.Alpha, mid)
	}
}

func TestRevealStaggerChildren(t *testing.T) {
	f := newRevealFixture()
	grid := NewBox("grid", 0, 1500, 800, 400, ColorWhite)
	cards := make([]*Element, 3)
	for i := range cards {
		cards[i] = NewBox("card", float64(i)*250, 0, 200, 300, ColorWhite)
		grid.AddChild(cards[i])
	}
	f.rc.Bind(grid, RevealOptions{StaggerChildren: true, Stagger: 0.2})
	for _, c := range cards {
		if c.Alpha != 0 || c.TranslateY != 50 {
			t.Fatalf("card start = (%f, %f)", c.TranslateY, c.Alpha)
		}
	}
	if grid.Alpha != 1 {
		t.Error("container hidden instead of children")
	}
	f.scrollTo(1100, 12) // 0.2s: first card moving, third not started
	if cards[0].Alpha == 0 || cards[2].Alpha != 0 {
		t.Errorf("stagger alphas = %f %f", cards[0].Alpha, cards[2].Alpha)
	}
	f.scrollTo(1100, 120)
	for i, c := range cards {
		if c.Alpha != 1 || c.TranslateY != 0 {
			t.Errorf("card %d end = (%f, %f)", i, c.TranslateY, c.Alpha)
		}
	}
}

func TestRevealUnbindReleases(t *testing.T) {
	f := newRevealFixture()
	sec := NewBox("sec", 0, 1500, 800, 400, ColorWhite)
	unbind := f.rc.Bind(sec, RevealOptions{Replay: true})
	if f.rc.Len() != 1 || f.vp.NumObservers() != 1 {
		t.Fatalf("Len %d observers %d", f.rc.Len(), f.vp.NumObservers())
	}
	unbind()
	unbind()
	if f.rc.Len() != 0 || f.vp.NumObservers() != 0 {
		t.Errorf("after unbind Len %d observers %d", f.rc.Len(), f.vp.NumObservers())
	}
	f.scrollTo(1100, 70)
	if sec.Alpha != 0 {
		t.Error("unbound section animated")
	}
	if f.anim.Len() != 0 {
		t.Errorf("animator holds %d animations", f.anim.Len())
	}
}

func TestRevealRebindReplaces(t *testing.T) {
	f := newRevealFixture()
	sec := NewBox("sec", 0, 1500, 800, 400, ColorWhite)
	f.rc.Bind(sec, RevealOptions{})
	first := f.rc.Binding(sec)
	f.rc.Bind(sec, RevealOptions{Replay: true})
	if f.rc.Len() != 1 || f.rc.Binding(sec) == first {
		t.Error("rebind did not replace the binding")
	}
	if !first.Animation().Killed() {
		t.Error("old animation still live")
	}
	f.scrollTo(1100, 90)
	if sec.TranslateY != 0 || sec.Alpha != 1 {
		t.Errorf("rebound entrance ended at (%f, %f), want resting (0, 1)", sec.TranslateY, sec.Alpha)
	}
}

func TestRevealDisposedSection(t *testing.T) {
	f := newRevealFixture()
	sec := NewBox("sec", 0, 1500, 800, 400, ColorWhite)
	f.rc.Bind(sec, RevealOptions{Replay: true})
	sec.Dispose()
	f.scrollTo(1100, 10)
	if f.vp.NumObservers() != 0 {
		t.Error("observer kept for disposed section")
	}
}

func TestRevealBindPanics(t *testing.T) {
	f := newRevealFixture()
	gone := NewBox("gone", 0, 0, 1, 1, ColorWhite)
	gone.Dispose()
	for name, el := range map[string]*Element{"nil": nil, "disposed": gone} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			f.rc.Bind(el, RevealOptions{})
		}()
	}
}

func TestScrollProgressBoundsAndMonotonic(t *testing.T) {
	trigger := Rect{Y: 1000, Height: 1200}
	// start = 1000 - 300 = 700, end = 2200 - 600 = 1600
	if p := ScrollProgress(trigger, 600, 0.5, 1, 0); p != 0 {
		t.Errorf("before start = %f, want 0", p)
	}
	if p := ScrollProgress(trigger, 600, 0.5, 1, 5000); p != 1 {
		t.Errorf("after end = %f, want 1", p)
	}
	if p := ScrollProgress(trigger, 600, 0.5, 1, 1150); !approx(p, 0.5) {
		t.Errorf("midpoint = %f, want 0.5", p)
	}
	prev := -1.0
	for y := 0.0; y <= 2400; y += 37 {
		p := ScrollProgress(trigger, 600, 0.5, 1, y)
		if p < 0 || p > 1 {
			t.Fatalf("progress %f out of range at %f", p, y)
		}
		if p < prev {
			t.Fatalf("progress decreased at %f: %f < %f", y, p, prev)
		}
		prev = p
	}
}

func TestScrollProgressDegenerate(t *testing.T) {
	trigger := Rect{Y: 1000, Height: 10}
	// end <= start collapses to a step.
	if p := ScrollProgress(trigger, 600, 0, 1, 900); p != 0 {
		t.Errorf("p = %f, want 0", p)
	}
	if p := ScrollProgress(trigger, 600, 0, 1, 1000); p != 1 {
		t.Errorf("p = %f, want 1", p)
	}
}

func TestBindProgressScrubsLinearly(t *testing.T) {
	f := newRevealFixture()
	timeline := NewBox("timeline", 0, 1000, 800, 1200, ColorWhite)
	line := NewBox("line", 400, 0, 2, 1200, ColorWhite)
	timeline.AddChild(line)

	unbind := f.rc.BindProgress(line, ProgressOptions{Trigger: timeline})
	if line.ScaleY != 0 {
		t.Fatalf("initial ScaleY = %f, want 0", line.ScaleY)
	}
	f.scrollTo(1150, 1)
	if !approx(line.ScaleY, 0.5) {
		t.Errorf("ScaleY = %f, want 0.5", line.ScaleY)
	}
	f.scrollTo(3000, 1)
	if line.ScaleY != 1 {
		t.Errorf("ScaleY = %f, want 1", line.ScaleY)
	}
	if p := f.rc.ProgressBinding(line).Progress(); p != 1 {
		t.Errorf("Progress = %f", p)
	}
	f.scrollTo(700, 1)
	if line.ScaleY != 0 {
		t.Errorf("ScaleY = %f after scrolling back, want 0", line.ScaleY)
	}

	unbind()
	f.scrollTo(1150, 1)
	if line.ScaleY != 0 {
		t.Error("unbound progress still scrubbing")
	}
	if f.rc.Len() != 0 {
		t.Errorf("Len = %d", f.rc.Len())
	}
}

func TestRevealControllerClose(t *testing.T) {
	f := newRevealFixture()
	for i := range 4 {
		f.rc.Bind(NewBox("s", 0, float64(1000+i*500), 800, 400, ColorWhite), RevealOptions{Replay: true})
	}
	f.rc.BindProgress(NewBox("p", 0, 0, 2, 100, ColorWhite), ProgressOptions{})
	f.rc.Close()
	if f.rc.Len() != 0 || f.vp.NumObservers() != 0 {
		t.Errorf("Len %d observers %d", f.rc.Len(), f.vp.NumObservers())
	}
}
