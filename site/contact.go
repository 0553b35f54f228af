package site

import (
	"fmt"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/curtain"
)

var contactFields = []struct {
	label  string
	height float64
}{
	{"NAME", 44},
	{"EMAIL", 44},
	{"SUBJECT", 44},
	{"MESSAGE", 120},
}

var contactSocials = []struct {
	network, handle string
}{
	{"Instagram", "@esummit2026"},
	{"LinkedIn", "E-Summit Official"},
	{"Twitter / X", "@esummit_"},
	{"Email", "hello@esummit.in"},
}

var contactFAQ = []struct {
	question, answer string
}{
	{
		"Who can participate in E-Summit?",
		"E-Summit is open to all college students across India. Some events have specific team size requirements - check individual event pages for details.",
	},
	{
		"Is there a registration fee?",
		"Early bird registration is free! Regular passes are priced affordably. Premium passes with exclusive perks are also available.",
	},
	{
		"What do I need to bring?",
		"Just your ID, creativity, and competitive spirit. Laptops may be required for certain events. All materials and refreshments are provided.",
	},
	{
		"Where is E-Summit held?",
		"E-Summit 2026 will be held at the main campus auditorium and adjacent seminar halls. Detailed venue maps will be shared before the event.",
	},
}

const (
	faqRowHeight  = 56
	faqAnswerGap  = 16
	formThreshold = 0.85
)

func (s *Site) buildContact(p *Page) {
	x, w := s.contentBox()
	col := newColumn(p.Root, x, w, pageTop)

	badge := col.text("contact-badge", "GET IN TOUCH", 1, colorGold)
	col.space(16)
	title := col.text("contact-title", "LET'S\nCONNECT", 5, colorCream)
	col.space(24)
	intro := col.paragraph("contact-intro",
		"Have questions? Want to sponsor? Or just want to say hello? We'd love to hear from you.",
		1.5, colorMuted)
	col.space(sectionGap)

	formW := (w - gridGap) * 0.6
	infoW := w - gridGap - formW
	top := col.y

	form := newColumn(p.Root, x, formW, top).section("section-form", func(sc *column) {
		panel := curtain.NewBox("form-panel", 0, 0, sc.w, 0, colorSurface)
		pc := newColumn(panel, 32, sc.w-64, 32)
		for i, f := range contactFields {
			pc.text(fmt.Sprintf("form-field-%d-label", i), f.label, 1, colorMuted)
			pc.space(8)
			pc.box(fmt.Sprintf("form-field-%d", i), f.height, withAlpha(colorBase, 0.6))
			pc.space(20)
		}
		pc.space(12)
		send := button("form-send", "SEND MESSAGE", 200, 52, colorGold, colorBase)
		send.OnClick = func(curtain.PointerContext) {
			s.log.Info("contact form submitted")
		}
		pc.add(send)
		p.track(s.settings.Lift.Bind(send))
		panel.Height = pc.y + 32
		sc.add(panel)
	})
	s.revealSection(p, form, curtain.RevealOptions{Threshold: formThreshold})

	info := newColumn(p.Root, x+formW+gridGap, infoW, top).section("section-socials", func(sc *column) {
		sc.text("socials-heading", "FIND US", 2, colorCream)
		sc.space(24)
		for i, so := range contactSocials {
			row := curtain.NewBox(fmt.Sprintf("social-%d", i), 0, 0, sc.w, 64, colorSurface)
			network := curtain.NewText(fmt.Sprintf("social-%d-network", i), so.network, 20, 14)
			network.Color = colorMuted
			row.AddChild(network)
			handle := curtain.NewText(fmt.Sprintf("social-%d-handle", i), so.handle, 20, 34)
			handle.Color = colorCream
			row.AddChild(handle)
			sc.add(row)
			sc.space(12)
		}
		sc.space(24)
		card := curtain.NewBox("sponsor-card", 0, 0, sc.w, 0, withAlpha(colorGold, 0.12))
		cc := newColumn(card, 24, sc.w-48, 24)
		cc.text("sponsor-heading", "SPONSORSHIP", 1.5, colorGold)
		cc.space(12)
		cc.paragraph("sponsor-text",
			"Interested in partnering with E-Summit 2026? We offer tiered sponsorship packages with premium visibility.",
			1, colorCream)
		cc.space(12)
		cc.text("sponsor-email", "sponsors@esummit.in", 1, colorGold)
		card.Height = cc.y + 24
		sc.add(card)
	})
	s.revealSection(p, info, curtain.RevealOptions{StaggerChildren: true, Stagger: 0.08})

	col.y = max(form.Y+form.Height, info.Y+info.Height)
	col.space(sectionGap)
	col.heading("faq-heading", "FREQUENTLY ASKED")
	p.FAQ = s.newFAQ(p, col)
	s.revealSection(p, p.FAQ.section, curtain.RevealOptions{Threshold: formThreshold})

	col.space(96)
	p.Root.Height = col.y

	tl := curtain.NewTimeline(curtain.TimelineConfig{})
	tl.StaggerFrom([]*curtain.Element{badge, title, intro}, curtain.Props{curtain.PropY: 60, curtain.PropAlpha: 0},
		curtain.TweenConfig{Duration: 1.2, Ease: ease.OutQuint}, 0.15, curtain.At(0.2))
	p.play(tl)
}

// FAQ is the contact page accordion. At most one answer is open.
type FAQ struct {
	// Open is the index of the open item, or -1.
	Open int

	page    *Page
	section *curtain.Element
	items   []faqItem
}

type faqItem struct {
	el, marker, answer *curtain.Element
}

func (s *Site) newFAQ(p *Page, col *column) *FAQ {
	f := &FAQ{Open: -1, page: p}
	f.section = col.section("section-faq", func(sc *column) {
		for i, q := range contactFAQ {
			item := curtain.NewElement(fmt.Sprintf("faq-%d", i))
			item.Width = sc.w

			row := curtain.NewBox(fmt.Sprintf("faq-%d-question", i), 0, 0, sc.w, faqRowHeight, colorSurface)
			row.Interactable = true
			row.OnClick = func(curtain.PointerContext) { f.Toggle(i) }
			qt := curtain.NewText(fmt.Sprintf("faq-%d-text", i), q.question, 24, 0)
			qt.SetText(q.question, 1.5)
			qt.Y = (faqRowHeight - qt.Height) / 2
			qt.Color = colorCream
			row.AddChild(qt)
			marker := curtain.NewText(fmt.Sprintf("faq-%d-marker", i), "+", 0, 0)
			marker.SetText("+", 2)
			marker.X = sc.w - 24 - marker.Width
			marker.Y = (faqRowHeight - marker.Height) / 2
			marker.Color = colorGold
			row.AddChild(marker)
			item.AddChild(row)

			ac := newColumn(item, 24, sc.w-48, faqRowHeight+faqAnswerGap)
			answer := ac.paragraph(fmt.Sprintf("faq-%d-answer", i), q.answer, 1, colorMuted)
			answer.Visible = false

			item.Height = faqRowHeight
			sc.add(item)
			sc.space(12)
			f.items = append(f.items, faqItem{el: item, marker: marker, answer: answer})
		}
		sc.y -= 12
	})
	return f
}

// Toggle opens item i, closing any other, or closes it if it is already
// open. Content below the accordion moves with it and the scrollable area
// is refitted.
func (f *FAQ) Toggle(i int) {
	if i < 0 || i >= len(f.items) {
		return
	}
	anim := f.page.site.shell.Animator()
	if f.Open >= 0 {
		prev := f.items[f.Open]
		prev.answer.Visible = false
		prev.marker.SetText("+", 2)
		anim.KillTweensOf(prev.answer)
	}
	if f.Open == i {
		f.Open = -1
	} else {
		f.Open = i
		it := f.items[i]
		it.answer.Visible = true
		it.marker.SetText("-", 2)
		anim.FromTo(it.answer, curtain.Props{curtain.PropAlpha: 0, curtain.PropY: -8},
			curtain.Props{curtain.PropAlpha: 1, curtain.PropY: 0},
			curtain.TweenConfig{Duration: 0.3, Ease: ease.OutCubic, Overwrite: true})
	}
	f.relayout()
}

// IsOpen reports whether item i shows its answer.
func (f *FAQ) IsOpen(i int) bool { return f.Open == i && i >= 0 }

func (f *FAQ) relayout() {
	y := 0.0
	for i, it := range f.items {
		it.el.Y = y
		it.el.Height = faqRowHeight
		if i == f.Open {
			it.el.Height += faqAnswerGap + it.answer.Height + faqAnswerGap
		}
		y += it.el.Height + 12
	}
	y -= 12
	delta := y - f.section.Height
	if delta == 0 {
		return
	}
	bottom := f.section.Y + f.section.Height
	f.section.Height = y
	root := f.page.Root
	for _, c := range root.Children() {
		if c != f.section && c.Y >= bottom {
			c.Y += delta
		}
	}
	root.Height = max(root.Height+delta, f.page.site.height())
	f.page.site.shell.FitContent()
}
