package curtain

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestShellDebugLogsStats(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := NewShell(NewMemoryRouter("/"), ShellConfig{Width: 800, Height: 600}, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	s.SetDebugMode(true)
	for range debugLogEvery {
		s.Update(1.0 / 60)
	}
	if !strings.Contains(buf.String(), "shell stats") {
		t.Errorf("no stats logged: %q", buf.String())
	}
	st := s.Stats()
	if st.Frame != debugLogEvery || st.Phase != PhaseIdle {
		t.Errorf("stats = %+v", st)
	}
}

func TestDebugCheckDisposedPanics(t *testing.T) {
	s := newTestShell(t, "/")
	s.SetDebugMode(true)
	page := NewElement("page")
	page.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic mounting a disposed page")
		}
	}()
	s.Mount(page)
}

func TestDebugTreeDepthWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := NewShell(NewMemoryRouter("/"), ShellConfig{Width: 800, Height: 600}, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	parent := NewElement("page")
	s.Mount(parent)
	for i := range debugMaxTreeDepth + 1 {
		child := NewElement(fmt.Sprintf("level-%d", i))
		parent.AddChild(child)
		parent = child
	}
	s.SetDebugMode(true)
	for range debugLogEvery {
		s.Update(1.0 / 60)
	}
	if !strings.Contains(buf.String(), "element tree too deep") {
		t.Errorf("no depth warning: %q", buf.String())
	}
}

func TestCountElements(t *testing.T) {
	root := NewElement("root")
	a := NewElement("a")
	root.AddChild(a)
	a.AddChild(NewElement("b"))
	root.AddChild(NewElement("c"))
	if n := countElements(root); n != 4 {
		t.Errorf("countElements = %d, want 4", n)
	}
	if d := treeDepth(root); d != 3 {
		t.Errorf("treeDepth = %d, want 3", d)
	}
}
