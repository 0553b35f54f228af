package curtain

import (
	"errors"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[
		{"action":"navigate","route":"/about"},
		{"action":"wait","frames":10},
		{"action":"scroll","dy":200},
		{"action":"move","x":10,"y":20},
		{"action":"leave"},
		{"action":"click","x":10,"y":20}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.steps) != 6 || r.Done() {
		t.Errorf("steps = %d done = %v", len(r.steps), r.Done())
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	if _, err := LoadTestScript([]byte(`{"steps":[]}`)); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("empty err = %v", err)
	}
	if _, err := LoadTestScript([]byte(`{`)); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadTestScript([]byte(`{"steps":[{"action":"screenshot"}]}`)); err == nil {
		t.Error("expected unknown action error")
	}
}

func TestTestRunnerDrivesTransition(t *testing.T) {
	s := newTestShell(t, "/home")
	r, err := LoadTestScript([]byte(`{"steps":[
		{"action":"navigate","route":"/about"},
		{"action":"navigate","route":"/contact"},
		{"action":"wait","frames":180}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(r)
	for i := 0; i < 400 && !r.Done(); i++ {
		s.Update(1.0 / 60)
	}
	if !r.Done() {
		t.Fatal("runner did not finish")
	}
	if got := s.Router().CurrentRoute(); got != "/about" {
		t.Errorf("route = %q, want /about", got)
	}
	if r.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1 (second navigate mid transition)", r.Rejected)
	}
	if s.Transitions().Snapshot().Animating {
		t.Error("transition still running after wait")
	}
}

func TestTestRunnerClick(t *testing.T) {
	s := newTestShell(t, "/")
	btn := NewBox("btn", 0, 0, 100, 100, ColorWhite)
	btn.Interactable = true
	var clicks int
	btn.OnClick = func(PointerContext) { clicks++ }
	s.Root().AddChild(btn)

	r, _ := LoadTestScript([]byte(`{"steps":[{"action":"click","x":50,"y":50}]}`))
	s.SetTestRunner(r)
	for range 5 {
		s.Update(1.0 / 60)
	}
	if clicks != 1 || !r.Done() {
		t.Errorf("clicks = %d done = %v", clicks, r.Done())
	}
}

func TestTestRunnerBack(t *testing.T) {
	s := newTestShell(t, "/home")
	r, err := LoadTestScript([]byte(`{"steps":[
		{"action":"back"},
		{"action":"navigate","route":"/about"},
		{"action":"wait","frames":120},
		{"action":"back"},
		{"action":"wait","frames":120}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(r)
	for i := 0; i < 600 && !r.Done(); i++ {
		s.Update(1.0 / 60)
	}
	if !r.Done() {
		t.Fatal("runner did not finish")
	}
	if got := s.Router().CurrentRoute(); got != "/home" {
		t.Errorf("route = %q, want /home", got)
	}
	if r.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1 (back at the first entry)", r.Rejected)
	}
}
