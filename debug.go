package curtain

import "fmt"

// debugLogEvery is the frame interval between debug stat lines.
const debugLogEvery = 60

// debugMaxTreeDepth is the depth past which debug mode warns.
const debugMaxTreeDepth = 32

// SetDebugMode enables periodic stat logging and disposed-element checks.
func (s *Shell) SetDebugMode(on bool) {
	s.debug = on
}

// Stats is a point-in-time count of the shell's live work.
type Stats struct {
	Frame      uint64
	Animations int
	Observers  int
	Bindings   int
	Elements   int
	Phase      Phase
	ScrollY    float64
}

// Stats returns the shell's current counts.
func (s *Shell) Stats() Stats {
	return Stats{
		Frame:      s.frames,
		Animations: s.anim.Len(),
		Observers:  s.vp.NumObservers(),
		Bindings:   s.reveals.Len(),
		Elements:   countElements(s.root),
		Phase:      s.transitions.Snapshot().Phase,
		ScrollY:    s.vp.ScrollY(),
	}
}

// debugLog writes stats every debugLogEvery frames.
func (s *Shell) debugLog() {
	if s.frames%debugLogEvery != 0 {
		return
	}
	st := s.Stats()
	s.log.Debug("shell stats",
		"frame", st.Frame,
		"animations", st.Animations,
		"observers", st.Observers,
		"bindings", st.Bindings,
		"elements", st.Elements,
		"phase", st.Phase.String(),
		"scroll", st.ScrollY)
	if d := treeDepth(s.root); d > debugMaxTreeDepth {
		s.log.Warn("element tree too deep", "depth", d, "threshold", debugMaxTreeDepth)
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed
// element is used. Only called in debug mode.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("curtain debug: %s on disposed element %q (ID was %d)", op, e.Name, e.ID))
	}
}

func countElements(e *Element) int {
	n := 1
	for _, c := range e.children {
		n += countElements(c)
	}
	return n
}

func treeDepth(e *Element) int {
	d := 0
	for _, c := range e.children {
		d = max(d, treeDepth(c))
	}
	return d + 1
}
