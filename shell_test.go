package curtain

import "testing"

func TestNewShellValidatesSize(t *testing.T) {
	if _, err := NewShell(NewMemoryRouter("/"), ShellConfig{}); err == nil {
		t.Error("expected error for zero size")
	}
	if _, err := NewShell(nil, ShellConfig{Width: 10, Height: 10}); err == nil {
		t.Error("expected error for nil router")
	}
}

func TestShellOverlayBaseline(t *testing.T) {
	s := newTestShell(t, "/")
	if n := s.Overlay().NumChildren(); n != 3 {
		t.Fatalf("overlay children = %d, want 2 layers + label", n)
	}
	if !s.Overlay().IsFixed() {
		t.Error("overlay scrolls with the document")
	}
	for _, l := range s.Overlay().Children()[:2] {
		if l.Visible || l.TranslateY != 600 {
			t.Errorf("layer %s visible %v y %f", l.Name, l.Visible, l.TranslateY)
		}
	}
}

func TestShellEndToEndHomeToAbout(t *testing.T) {
	s := newTestShell(t, "/home")
	page := NewBox("page", 0, 0, 800, 2400, ColorWhite)
	s.Mount(page)
	s.Viewport().SetScroll(900)

	if !s.RequestTransition("/about") {
		t.Fatal("transition rejected")
	}
	if got := s.Transitions().Snapshot().Label; got != "ABOUT" {
		t.Errorf("label = %q, want ABOUT", got)
	}
	label := s.Overlay().FindChild("overlay-label")
	if label.Text != "ABOUT" {
		t.Errorf("overlay label text = %q", label.Text)
	}
	for range 300 {
		s.Update(1.0 / 60)
	}
	if got := s.Router().CurrentRoute(); got != "/about" {
		t.Errorf("route = %q", got)
	}
	if s.Viewport().ScrollY() != 0 {
		t.Errorf("ScrollY = %f, want 0", s.Viewport().ScrollY())
	}
	if s.Transitions().Snapshot().Animating {
		t.Error("still animating")
	}
}

func TestShellMountUnmount(t *testing.T) {
	s := newTestShell(t, "/")
	page := NewBox("page", 0, 0, 800, 2400, ColorWhite)
	s.Mount(page)
	if s.Viewport().ContentHeight != 2400 {
		t.Errorf("ContentHeight = %f", s.Viewport().ContentHeight)
	}
	s.Viewport().SetScroll(1500)
	s.Unmount(page)
	if !page.IsDisposed() || s.Viewport().ContentHeight != 600 || s.Viewport().ScrollY() != 0 {
		t.Errorf("disposed %v content %f scroll %f", page.IsDisposed(), s.Viewport().ContentHeight, s.Viewport().ScrollY())
	}
}

func TestShellCloseStopsEverything(t *testing.T) {
	s := newTestShell(t, "/home")
	sec := NewBox("sec", 0, 0, 800, 400, ColorWhite)
	s.Mount(sec)
	s.Reveals().Bind(sec, RevealOptions{Replay: true})
	s.RequestTransition("/about")
	s.Update(1.0 / 60)
	s.Close()
	s.Close()
	if s.Animator().Len() != 0 || s.Reveals().Len() != 0 {
		t.Errorf("animations %d bindings %d", s.Animator().Len(), s.Reveals().Len())
	}
	frames := s.Frames()
	s.Update(1.0 / 60)
	if s.Frames() != frames {
		t.Error("closed shell kept updating")
	}
	if s.RequestTransition("/contact") {
		t.Error("closed shell accepted a transition")
	}
}

func TestShellUpdateFunc(t *testing.T) {
	s := newTestShell(t, "/")
	var total float32
	s.SetUpdateFunc(func(dt float32) { total += dt })
	s.Update(0.25)
	s.Update(0.25)
	if total != 0.5 {
		t.Errorf("total = %f", total)
	}
}
