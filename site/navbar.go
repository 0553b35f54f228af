package site

import (
	"strings"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/curtain"
)

// scrolledAt is the scroll offset past which the navbar gets its backdrop.
const scrolledAt = 30

var navLinks = []struct {
	label, route string
}{
	{"EVENTS", "/home"},
	{"ABOUT", "/about"},
	{"CONTACT", "/contact"},
}

type navLink struct {
	route string
	el    *curtain.Element
}

// navbar is the fixed top bar. It outlives pages.
type navbar struct {
	site     *Site
	root     *curtain.Element
	backdrop *curtain.Element
	logo     *curtain.Element
	links    []navLink
	scrolled bool
	scroll   curtain.ObserverHandle
}

func newNavbar(s *Site) *navbar {
	w := s.width()
	anim := s.shell.Animator()
	n := &navbar{site: s}

	n.root = curtain.NewElement("navbar")
	n.root.Fixed = true
	n.root.Width, n.root.Height = w, navHeight

	n.backdrop = curtain.NewBox("navbar-backdrop", 0, 0, w, navHeight, withAlpha(colorBase, 0.92))
	n.backdrop.Alpha = 0
	n.root.AddChild(n.backdrop)

	n.logo = curtain.NewText("navbar-logo", "E-SUMMIT", 32, 0)
	n.logo.SetText("E-SUMMIT", 2)
	n.logo.Y = (navHeight - n.logo.Height) / 2
	n.logo.Color = colorGold
	n.logo.Interactable = true
	n.logo.OnClick = func(curtain.PointerContext) { s.Navigate("/") }
	n.root.AddChild(n.logo)

	x := w - 32
	n.links = make([]navLink, len(navLinks))
	for i := len(navLinks) - 1; i >= 0; i-- {
		l := navLinks[i]
		el := curtain.NewText("navbar-link-"+strings.TrimPrefix(l.route, "/"), l.label, 0, 0)
		el.X = x - el.Width
		el.Y = (navHeight - el.Height) / 2
		el.Color = colorMuted
		el.Interactable = true
		route := l.route
		el.OnClick = func(curtain.PointerContext) { s.Navigate(route) }
		n.root.AddChild(el)
		n.links[i] = navLink{route: l.route, el: el}
		x = el.X - 40
	}

	anim.From(n.root, curtain.Props{curtain.PropY: -navHeight, curtain.PropAlpha: 0},
		curtain.TweenConfig{Duration: 1, Delay: 0.3, Ease: ease.OutExpo})
	n.scroll = s.shell.Viewport().OnScroll(n.onScroll)
	return n
}

// onScroll fades the backdrop in past scrolledAt and out again above it.
func (n *navbar) onScroll(y float64) {
	scrolled := y > scrolledAt
	if scrolled == n.scrolled {
		return
	}
	n.scrolled = scrolled
	alpha := 0.0
	if scrolled {
		alpha = 1
	}
	n.site.shell.Animator().To(n.backdrop, curtain.Props{curtain.PropAlpha: alpha},
		curtain.TweenConfig{Duration: 0.3, Ease: ease.OutCubic, Overwrite: true})
}

// setActive highlights the link whose section contains route. Event detail
// pages belong to EVENTS.
func (n *navbar) setActive(route string) {
	for _, l := range n.links {
		active := route == l.route || l.route == "/home" && strings.HasPrefix(route, eventPrefix)
		if active {
			l.el.Color = colorGold
		} else {
			l.el.Color = colorMuted
		}
	}
}

func (n *navbar) close() {
	n.scroll.Remove()
	n.site.shell.Animator().KillTweensOf(n.root)
	n.root.Dispose()
}
