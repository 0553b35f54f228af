// Package site is the E-Summit presentational site built on curtain: a
// landing intro, the events grid, event detail pages, about and contact,
// all joined by overlay transitions and scroll reveals.
package site

import (
	"errors"
	"log/slog"

	"github.com/phanxgames/curtain"
	"github.com/phanxgames/curtain/catalog"
)

// Settings tunes the site's motion. Zero controllers are replaced with the
// curtain defaults bound to the shell's animator.
type Settings struct {
	Reveal   curtain.RevealOptions
	Magnetic curtain.Magnetic
	Float    curtain.Float
	Lift     curtain.Lift
	Logger   *slog.Logger
}

// Site mounts one page at a time under a shell and swaps pages when the
// router navigates.
type Site struct {
	shell    *curtain.Shell
	router   *curtain.MemoryRouter
	catalog  *catalog.Catalog
	settings Settings
	log      *slog.Logger

	nav     *navbar
	page    *Page
	version uint64
}

// New builds the navbar, mounts the page for the router's current route and
// starts following navigation. router must be the shell's router.
func New(shell *curtain.Shell, router *curtain.MemoryRouter, cat *catalog.Catalog, settings Settings) (*Site, error) {
	if shell == nil || router == nil || cat == nil {
		return nil, errors.New("site: shell, router and catalog are required")
	}
	if shell.Router() != curtain.Router(router) {
		return nil, errors.New("site: router is not the shell's router")
	}
	anim := shell.Animator()
	if settings.Magnetic.Anim == nil {
		settings.Magnetic = curtain.NewMagnetic(anim)
	}
	if settings.Float.Anim == nil {
		settings.Float = curtain.NewFloat(anim)
	}
	if settings.Lift.Anim == nil {
		settings.Lift = curtain.NewLift(anim)
	}
	logger := settings.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Site{
		shell:    shell,
		router:   router,
		catalog:  cat,
		settings: settings,
		log:      logger,
	}
	s.nav = newNavbar(s)
	router.OnNavigate(func(from, to string) { s.show(to) })
	shell.SetUpdateFunc(s.update)
	s.show(router.CurrentRoute())
	return s, nil
}

// Navigate requests an overlay transition to route. It reports whether the
// request was accepted.
func (s *Site) Navigate(route string) bool {
	return s.shell.RequestTransition(route)
}

// Back transitions to the previous route in history, popping the current
// one.
func (s *Site) Back() bool {
	return s.shell.RequestBack()
}

// Page returns the mounted page.
func (s *Site) Page() *Page { return s.page }

// Scrolled reports whether the navbar is in its scrolled state.
func (s *Site) Scrolled() bool { return s.nav.scrolled }

func (s *Site) width() float64  { return s.shell.Viewport().Width }
func (s *Site) height() float64 { return s.shell.Viewport().Height }

// contentBox returns the x and width of the centered content column.
func (s *Site) contentBox() (x, w float64) {
	w = min(s.width()-2*pageMargin, maxContent)
	return (s.width() - w) / 2, w
}

// show replaces the mounted page with the one for route.
func (s *Site) show(route string) {
	if s.page != nil {
		s.page.release()
		s.page = nil
	}
	p := s.build(route)
	s.shell.Mount(p.Root)
	// Pages mount above the navbar in paint order; move it back on top.
	s.shell.Root().AddChild(s.nav.root)
	s.nav.setActive(route)
	s.page = p
	s.version = s.catalog.Version()
	s.log.Debug("page mounted", "route", route, "kind", p.Kind.String(), "height", p.Root.Height)
}

func (s *Site) build(route string) *Page {
	kind, slug := Resolve(route)
	p := s.newPage(route, kind)
	switch kind {
	case KindLanding:
		s.buildLanding(p)
	case KindHome:
		s.buildHome(p)
	case KindEvent:
		s.buildEvent(p, slug)
	case KindAbout:
		s.buildAbout(p)
	case KindContact:
		s.buildContact(p)
	default:
		s.buildNotFound(p, "PAGE NOT FOUND", "")
	}
	p.Root.Height = max(p.Root.Height, s.height())
	return p
}

// update runs once per frame after animations. Pages that render catalog
// records are rebuilt when the catalog reloads. A reload seen mid-transition
// waits for the next idle frame; show re-syncs the version if the
// transition mounts a fresh page first.
func (s *Site) update(float32) {
	v := s.catalog.Version()
	if v == s.version || s.page == nil {
		return
	}
	if s.shell.Transitions().Snapshot().Animating {
		return
	}
	s.version = v
	switch s.page.Kind {
	case KindHome, KindEvent, KindNotFound:
		s.log.Info("catalog changed, rebuilding page", "route", s.page.Route)
		scroll := s.shell.Viewport().ScrollY()
		s.show(s.page.Route)
		s.shell.Viewport().SetScroll(scroll)
	}
}

// Close releases the mounted page and the navbar.
func (s *Site) Close() {
	if s.page != nil {
		s.page.release()
		s.page = nil
	}
	s.nav.close()
}
