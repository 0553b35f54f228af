package site

import "github.com/phanxgames/curtain"

// Page is one mounted view. It remembers every binding, loop and timeline
// it started so that unmounting leaves nothing running.
type Page struct {
	Route string
	Kind  Kind
	Root  *curtain.Element

	// Event is set on event routes, found or not.
	Event *EventDetail
	// Active is the id of the highlighted section on event pages.
	Active string
	// FAQ is the accordion state on the contact page.
	FAQ *FAQ

	site     *Site
	unbinds  []func()
	loops    []*curtain.Element
	anims    []curtain.Animation
	released bool
}

func (s *Site) newPage(route string, kind Kind) *Page {
	root := curtain.NewElement("page:" + kind.String())
	root.Width = s.width()
	return &Page{Route: route, Kind: kind, Root: root, site: s}
}

// track registers an unbind function to run on release.
func (p *Page) track(unbind func()) {
	p.unbinds = append(p.unbinds, unbind)
}

// play starts tl on the shell's animator and kills it on release.
func (p *Page) play(tl *curtain.Timeline) *curtain.Timeline {
	p.anims = append(p.anims, tl)
	return p.site.shell.Animator().Play(tl)
}

// loop records an element that carries an infinite tween.
func (p *Page) loop(el *curtain.Element) {
	p.loops = append(p.loops, el)
}

// reveal binds a scroll reveal and releases it with the page.
func (p *Page) reveal(el *curtain.Element, opts curtain.RevealOptions) {
	p.track(p.site.shell.Reveals().Bind(el, opts))
}

// release undoes everything the page started, then unmounts it.
func (p *Page) release() {
	if p.released {
		return
	}
	p.released = true
	for _, fn := range p.unbinds {
		fn()
	}
	for _, a := range p.anims {
		a.Kill()
	}
	for _, el := range p.loops {
		p.site.settings.Float.Stop(el)
	}
	p.unbinds, p.anims, p.loops = nil, nil, nil
	p.site.shell.Unmount(p.Root)
}
