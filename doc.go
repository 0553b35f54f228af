// Package curtain is a view-transition and scroll-reveal choreography engine
// for retained-mode 2D interfaces built on [Ebitengine].
//
// Curtain provides the element tree, a tween/timeline engine (via [gween]),
// a scrolling viewport with threshold observers, and the controllers that a
// presentational multi-page interface needs to feel alive: full-screen
// overlay wipes around route changes, viewport-triggered section reveals,
// and pointer-driven micro-interactions.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// event loop for a [Shell]:
//
//	router := curtain.NewMemoryRouter("/")
//	shell, err := curtain.NewShell(router, curtain.ShellConfig{Width: 1280, Height: 720})
//	if err != nil {
//		log.Fatal(err)
//	}
//	curtain.Run(shell, curtain.RunConfig{Title: "Summit", Width: 1280, Height: 720})
//
// For full control, implement [ebiten.Game] yourself and call
// [Shell.Update] and [Shell.Draw] directly.
//
// # Elements
//
// Every visual element is an [Element]. Elements form a tree rooted at
// [Shell.Root]. Layout boxes (X, Y, Width, Height) are parent-relative and
// never animated; animations write the transform fields (TranslateX,
// TranslateY, ScaleX, ScaleY, Alpha) on top of the layout box.
//
// # Animation
//
// All animation runs on one clock: [Shell.Update] advances the [Animator],
// which ticks every live [Tween] and [Timeline]. The animator doubles as the
// per-element handle arena, so a new overwriting tween on an element kills
// the tweens it conflicts with instead of stacking behind them.
//
// # Transitions
//
// [Orchestrator.RequestTransition] plays the cover half of the overlay,
// navigates while the viewport is fully occluded, plays the reveal half and
// unlocks. At most one transition is ever in flight; requests made while one
// is running, or for the current route, are ignored.
//
// # Reveals
//
// [RevealController.Bind] attaches an entrance animation to a section that
// plays when the section's top edge crosses a viewport fraction, once or
// reversibly. [RevealController.BindProgress] scrubs a property directly
// from scroll progress.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package curtain
