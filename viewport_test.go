package curtain

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newTestViewport() *Viewport {
	vp := NewViewport(800, 600)
	vp.ContentHeight = 3000
	return vp
}

func TestViewportScrollClamped(t *testing.T) {
	vp := newTestViewport()
	vp.SetScroll(-50)
	if vp.ScrollY() != 0 {
		t.Errorf("ScrollY = %f, want 0", vp.ScrollY())
	}
	vp.ScrollBy(5000)
	if vp.ScrollY() != 2400 {
		t.Errorf("ScrollY = %f, want 2400", vp.ScrollY())
	}
}

func TestViewportScrollTo(t *testing.T) {
	vp := newTestViewport()
	vp.ScrollTo(1000, 1, ease.Linear)
	if !vp.Scrolling() {
		t.Fatal("expected scroll animation")
	}
	vp.update(0.5)
	if !approx(vp.ScrollY(), 500) {
		t.Errorf("ScrollY = %f, want ~500", vp.ScrollY())
	}
	vp.update(0.5)
	if !approx(vp.ScrollY(), 1000) || vp.Scrolling() {
		t.Errorf("ScrollY = %f scrolling = %v", vp.ScrollY(), vp.Scrolling())
	}
}

func TestViewportObserveCrossings(t *testing.T) {
	vp := newTestViewport()
	section := NewBox("section", 0, 1000, 800, 400, ColorWhite)
	var got []Direction
	vp.Observe(section, DefaultThreshold, func(d Direction) { got = append(got, d) })

	// Line at 0.8 * 600 = 480; section top at 1000.
	vp.update(0)
	if len(got) != 0 {
		t.Fatalf("fired below the line: %v", got)
	}
	vp.SetScroll(519)
	vp.update(0)
	if len(got) != 0 {
		t.Fatalf("fired before crossing: %v", got)
	}
	vp.SetScroll(520)
	vp.update(0)
	if len(got) != 1 || got[0] != DirectionForward {
		t.Fatalf("got %v, want [forward]", got)
	}
	vp.SetScroll(700)
	vp.update(0)
	if len(got) != 1 {
		t.Fatalf("refired while past the line: %v", got)
	}
	vp.SetScroll(100)
	vp.update(0)
	if len(got) != 2 || got[1] != DirectionBackward {
		t.Fatalf("got %v, want [forward backward]", got)
	}
}

func TestViewportObserveAlreadyPastLine(t *testing.T) {
	vp := newTestViewport()
	hero := NewBox("hero", 0, 0, 800, 600, ColorWhite)
	var got []Direction
	vp.Observe(hero, DefaultThreshold, func(d Direction) { got = append(got, d) })
	if len(got) != 0 {
		t.Fatal("fired synchronously on registration")
	}
	vp.update(0)
	if len(got) != 1 || got[0] != DirectionForward {
		t.Errorf("got %v, want [forward] on first tick", got)
	}
}

func TestViewportObserverRemove(t *testing.T) {
	vp := newTestViewport()
	el := NewBox("el", 0, 1000, 10, 10, ColorWhite)
	var n int
	h := vp.Observe(el, DefaultThreshold, func(Direction) { n++ })
	h.Remove()
	h.Remove()
	vp.SetScroll(900)
	vp.update(0)
	if n != 0 || vp.NumObservers() != 0 {
		t.Errorf("n = %d observers = %d", n, vp.NumObservers())
	}
}

func TestViewportDropsDisposed(t *testing.T) {
	vp := newTestViewport()
	el := NewBox("el", 0, 1000, 10, 10, ColorWhite)
	var n int
	vp.Observe(el, DefaultThreshold, func(Direction) { n++ })
	el.Dispose()
	vp.SetScroll(900)
	vp.update(0)
	if n != 0 {
		t.Error("fired for disposed element")
	}
	if vp.NumObservers() != 0 {
		t.Errorf("observers = %d, want 0", vp.NumObservers())
	}
}

func TestViewportRemoveDuringCallback(t *testing.T) {
	vp := newTestViewport()
	a := NewBox("a", 0, 0, 10, 10, ColorWhite)
	b := NewBox("b", 0, 0, 10, 10, ColorWhite)
	var hb ObserverHandle
	var bFired bool
	vp.Observe(a, DefaultThreshold, func(Direction) { hb.Remove() })
	hb = vp.Observe(b, DefaultThreshold, func(Direction) { bFired = true })
	vp.update(0)
	if bFired {
		t.Error("observer removed by an earlier callback still fired")
	}
}

func TestViewportOnScroll(t *testing.T) {
	vp := newTestViewport()
	var calls []float64
	h := vp.OnScroll(func(y float64) { calls = append(calls, y) })
	vp.update(0)
	if len(calls) != 1 || calls[0] != 0 {
		t.Fatalf("initial call = %v, want [0]", calls)
	}
	vp.update(0)
	if len(calls) != 1 {
		t.Error("called without a scroll change")
	}
	vp.ScrollBy(120)
	vp.update(0)
	if len(calls) != 2 || calls[1] != 120 {
		t.Errorf("calls = %v", calls)
	}
	h.Remove()
	vp.ScrollBy(10)
	vp.update(0)
	if len(calls) != 2 {
		t.Error("removed listener called")
	}
}

func TestViewportFixedElementNeverCrosses(t *testing.T) {
	vp := newTestViewport()
	nav := NewBox("nav", 0, 0, 800, 60, ColorWhite)
	nav.Fixed = true
	var got []Direction
	vp.Observe(nav, DefaultThreshold, func(d Direction) { got = append(got, d) })
	for _, y := range []float64{0, 500, 2000, 0} {
		vp.SetScroll(y)
		vp.update(0)
	}
	if len(got) != 1 || got[0] != DirectionForward {
		t.Errorf("got %v, want a single forward", got)
	}
}
