package curtain

import (
	"math"
	"testing"
)

func TestTextSize(t *testing.T) {
	w, h := textSize("ABOUT\nUS")
	if w != 5*glyphWidth || h != 2*glyphHeight {
		t.Errorf("size = %dx%d", w, h)
	}
}

func TestTextBoundsScales(t *testing.T) {
	w, h := TextBounds("HOME", 2)
	if w != 4*glyphWidth*2 || h != glyphHeight*2 {
		t.Errorf("bounds = %vx%v", w, h)
	}
	w0, h0 := TextBounds("HOME", 0)
	w1, h1 := TextBounds("HOME", 1)
	if w0 != w1 || h0 != h1 {
		t.Errorf("zero scale = %vx%v, want %vx%v", w0, h0, w1, h1)
	}
}

func TestSetTextResizes(t *testing.T) {
	e := NewText("t", "AB", 10, 20)
	if e.Width != 2*glyphWidth || e.Height != glyphHeight {
		t.Fatalf("NewText size = %vx%v", e.Width, e.Height)
	}
	e.SetText("ABCD\nE", 3)
	if e.Width != 4*glyphWidth*3 || e.Height != 2*glyphHeight*3 || e.TextScale != 3 {
		t.Errorf("SetText size = %vx%v scale %v", e.Width, e.Height, e.TextScale)
	}
	if e.X != 10 || e.Y != 20 {
		t.Error("SetText moved the element")
	}
}

func TestVisualBoundsOrigin(t *testing.T) {
	e := NewBox("bar", 0, 100, 10, 200, ColorWhite)
	e.ScaleY = 0.5

	// Centered origin shrinks toward the middle.
	r := e.visualBounds()
	if math.Abs(r.Y-150) > 1e-9 || math.Abs(r.Height-100) > 1e-9 {
		t.Errorf("centered = %+v", r)
	}

	// Top origin keeps the top edge in place.
	e.Origin = Vec2{X: 0.5, Y: 0}
	r = e.visualBounds()
	if math.Abs(r.Y-100) > 1e-9 || math.Abs(r.Height-100) > 1e-9 {
		t.Errorf("top origin = %+v", r)
	}

	e.TranslateY = 5
	if r = e.visualBounds(); math.Abs(r.Y-105) > 1e-9 {
		t.Errorf("translated Y = %v", r.Y)
	}
}
