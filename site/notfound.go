package site

import (
	"strings"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/curtain"
)

// buildNotFound renders the fallback view. A non-empty suggestion is a slug
// offered as a link.
func (s *Site) buildNotFound(p *Page, title, suggestion string) {
	x, w := s.contentBox()
	col := newColumn(p.Root, x, w, s.height()/2-120)

	msg := col.centered("not-found", title, 4, colorCream)
	col.space(24)
	col.centered("not-found-route", p.Route, 1, colorMuted)
	col.space(32)

	if suggestion != "" {
		label := "DID YOU MEAN " + strings.ToUpper(strings.ReplaceAll(suggestion, "-", " ")) + "?"
		hint := col.centered("not-found-suggestion", label, 1.5, colorGold)
		hint.Interactable = true
		hint.OnClick = func(curtain.PointerContext) { s.Navigate(EventRoute(suggestion)) }
		col.space(32)
	}

	back := button("not-found-back", "BACK TO EVENTS", 220, 52, colorGold, colorBase)
	back.X = (w - back.Width) / 2
	back.OnClick = func(curtain.PointerContext) { s.Navigate("/home") }
	col.add(back)
	p.track(s.settings.Lift.Bind(back))
	p.Root.Height = col.y

	tl := curtain.NewTimeline(curtain.TimelineConfig{})
	tl.From(msg, curtain.Props{curtain.PropY: 40, curtain.PropAlpha: 0},
		curtain.TweenConfig{Duration: 0.8, Ease: ease.OutQuart}, curtain.End)
	p.play(tl)
}
