package curtain

import (
	"fmt"
	"log/slog"
)

// ShellConfig sizes the shell and styles its overlay.
type ShellConfig struct {
	Width, Height float64
	// Layers is the number of stacked overlay panels. Default 1.
	Layers int
	// LayerColors colors the panels bottom-most first; missing entries reuse
	// the last color.
	LayerColors []Color
	LabelColor  Color
	// Labels maps route prefixes to overlay labels. Nil uses DefaultLabels.
	Labels     map[string]string
	Transition TransitionConfig
	Background Color
}

// Shell is the mounted application shell. It owns the document tree, the
// overlay, the viewport, the animation clock, and the two orchestration
// controllers. Everything runs on the goroutine that calls Update and Draw.
type Shell struct {
	root    *Element
	overlay *Element

	vp          *Viewport
	anim        *Animator
	router      Router
	transitions *Orchestrator
	reveals     *RevealController

	// Background fills the screen before drawing.
	Background Color

	// Input state
	pointer     pointerState
	injectQueue []syntheticEvent
	testRunner  *TestRunner

	updateFunc func(dt float32)
	textCache  map[uint32]*textImage

	debug  bool
	frames uint64
	log    *slog.Logger
	closed bool
}

// NewShell builds the overlay and wires the orchestrator and reveal
// controller to router.
func NewShell(router Router, cfg ShellConfig, opts ...Option) (*Shell, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("curtain: invalid shell size %vx%v", cfg.Width, cfg.Height)
	}
	o := buildOptions(opts)
	s := &Shell{
		root:       NewElement("root"),
		overlay:    NewElement("overlay"),
		vp:         NewViewport(cfg.Width, cfg.Height),
		anim:       NewAnimator(),
		router:     router,
		Background: cfg.Background,
		textCache:  make(map[uint32]*textImage),
		log:        o.logger,
	}
	s.root.Width, s.root.Height = cfg.Width, cfg.Height
	s.overlay.Fixed = true
	s.overlay.Width, s.overlay.Height = cfg.Width, cfg.Height

	n := cfg.Layers
	if n <= 0 {
		n = 1
	}
	layers := make([]*Element, n)
	for i := range layers {
		c := Color{R: 0.04, G: 0.06, B: 0.11, A: 1}
		if len(cfg.LayerColors) > 0 {
			c = cfg.LayerColors[min(i, len(cfg.LayerColors)-1)]
		}
		layers[i] = NewBox(fmt.Sprintf("overlay-layer-%d", i), 0, 0, cfg.Width, cfg.Height, c)
		s.overlay.AddChild(layers[i])
	}
	label := NewElement("overlay-label")
	label.Color = cfg.LabelColor
	if label.Color == (Color{}) {
		label.Color = ColorWhite
	}
	label.Y = cfg.Height/2 - glyphHeight/2
	label.Width, label.Height = cfg.Width, glyphHeight
	label.CenterText = true
	s.overlay.AddChild(label)

	labels := cfg.Labels
	if labels == nil {
		labels = DefaultLabels()
	}
	var err error
	s.transitions, err = NewOrchestrator(router, s.vp, s.anim,
		Overlay{Layers: layers, Label: label}, NewLabelMap(labels), cfg.Transition, opts...)
	if err != nil {
		return nil, fmt.Errorf("new shell: %w", err)
	}
	s.reveals = NewRevealController(s.anim, s.vp, opts...)
	return s, nil
}

// Root returns the document root. Page content goes under it.
func (s *Shell) Root() *Element { return s.root }

// Overlay returns the fixed overlay container.
func (s *Shell) Overlay() *Element { return s.overlay }

// Viewport returns the scrolling viewport.
func (s *Shell) Viewport() *Viewport { return s.vp }

// Animator returns the shell's animation clock.
func (s *Shell) Animator() *Animator { return s.anim }

// Router returns the navigation collaborator.
func (s *Shell) Router() Router { return s.router }

// Transitions returns the transition orchestrator.
func (s *Shell) Transitions() *Orchestrator { return s.transitions }

// Reveals returns the reveal controller.
func (s *Shell) Reveals() *RevealController { return s.reveals }

// Mount adds page to the document and grows the scrollable area to fit it.
func (s *Shell) Mount(page *Element) {
	if s.debug {
		debugCheckDisposed(page, "Mount")
	}
	s.root.AddChild(page)
	s.FitContent()
}

// Unmount disposes page and shrinks the scrollable area. Callers release
// bindings on the page first.
func (s *Shell) Unmount(page *Element) {
	if page.Parent != s.root {
		return
	}
	page.Dispose()
	s.FitContent()
}

// FitContent sizes the scrollable area to the bottom of the lowest mounted
// page and clamps the scroll offset. Call it after a page changes height.
func (s *Shell) FitContent() {
	h := s.vp.Height
	for _, c := range s.root.children {
		h = max(h, c.DocumentBounds().Bottom())
	}
	s.vp.ContentHeight = h
	s.vp.SetScroll(s.vp.ScrollY())
}

// RequestTransition is shorthand for Transitions().RequestTransition.
func (s *Shell) RequestTransition(route string) bool {
	return s.transitions.RequestTransition(route)
}

// RequestBack is shorthand for Transitions().RequestBack.
func (s *Shell) RequestBack() bool {
	return s.transitions.RequestBack()
}

// SetUpdateFunc registers fn to run at the end of every Update.
func (s *Shell) SetUpdateFunc(fn func(dt float32)) {
	s.updateFunc = fn
}

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update.
func (s *Shell) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Update advances one frame of dt seconds: scripted steps and injected
// input first, then scrolling and threshold crossings, then animations.
func (s *Shell) Update(dt float32) {
	if s.closed {
		return
	}
	s.frames++
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()
	s.vp.update(dt)
	s.anim.Update(dt)
	if s.updateFunc != nil {
		s.updateFunc(dt)
	}
	if s.debug {
		s.debugLog()
	}
}

// Frames returns the number of Update calls so far.
func (s *Shell) Frames() uint64 { return s.frames }

// Close tears the shell down: the in-flight transition is killed, every
// binding released, and every animation stopped. Further updates are no-ops.
func (s *Shell) Close() {
	if s.closed {
		return
	}
	s.transitions.Close()
	s.reveals.Close()
	s.anim.KillAll()
	for id, t := range s.textCache {
		t.img.Deallocate()
		delete(s.textCache, id)
	}
	s.closed = true
}
