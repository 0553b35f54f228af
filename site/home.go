package site

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/curtain"
	"github.com/phanxgames/curtain/catalog"
)

const (
	gridColumns = 3
	gridGap     = 32
	cardHeight  = 240
	// marqueeSpeed is in pixels per second.
	marqueeSpeed = 40
)

// buildHome is the events grid: a hero, a looping marquee of event titles
// and one card per catalog record.
func (s *Site) buildHome(p *Page) {
	x, w := s.contentBox()
	anim := s.shell.Animator()
	records := s.catalog.All()
	col := newColumn(p.Root, x, w, pageTop)

	title := col.centered("home-title", "CHOOSE YOUR\nBATTLEFIELD", 5, colorCream)
	col.space(24)
	subtitle := col.centered("home-subtitle",
		fmt.Sprintf("%d ARENAS - ONE SUMMIT - INFINITE POSSIBILITIES", len(records)), 1.5, colorMuted)
	col.space(72)

	// The marquee spans the full window, outside the content column.
	strip := curtain.NewBox("marquee", -x, 0, s.width(), 56, withAlpha(colorSurface, 0.5))
	col.add(strip)
	titles := make([]string, len(records))
	for i, r := range records {
		titles[i] = strings.ToUpper(r.Title)
	}
	loop := strings.Join(titles, "   *   ") + "   *   "
	ticker := curtain.NewText("marquee-text", loop+loop, 0, 0)
	ticker.SetText(loop+loop, 1.5)
	ticker.Y = (strip.Height - ticker.Height) / 2
	ticker.Color = withAlpha(colorCream, 0.4)
	strip.AddChild(ticker)
	half := ticker.Width / 2
	anim.To(ticker, curtain.Props{curtain.PropX: -half}, curtain.TweenConfig{
		Duration: float32(half / marqueeSpeed),
		Ease:     ease.Linear,
		Repeat:   -1,
	})
	p.loop(ticker)
	col.space(72)

	grid := col.section("event-grid", func(g *column) {
		cw := (g.w - gridGap*(gridColumns-1)) / gridColumns
		for i, r := range records {
			card := s.eventCard(r, cw)
			card.X = float64(i%gridColumns) * (cw + gridGap)
			card.Y = float64(i/gridColumns) * (cardHeight + gridGap)
			g.parent.AddChild(card)
			p.track(s.settings.Lift.Bind(card))
		}
		rows := (len(records) + gridColumns - 1) / gridColumns
		g.y = float64(rows)*(cardHeight+gridGap) - gridGap
	})
	opts := s.settings.Reveal
	opts.StaggerChildren = true
	opts.Stagger = 0.1
	opts.Replay = true
	opts.EntranceOffset = 80
	opts.FromScale = 0.97
	opts.Duration = 1
	opts.Ease = ease.OutQuint
	p.reveal(grid, opts)

	col.space(128)
	col.box("home-divider", 1, colorHairline)
	col.space(32)
	col.centered("home-footer", "E-SUMMIT 2026 - WHERE VISION MEETS VICTORY", 1, withAlpha(colorCream, 0.35))
	col.space(96)
	p.Root.Height = col.y

	tl := curtain.NewTimeline(curtain.TimelineConfig{})
	tl.From(title, curtain.Props{curtain.PropY: 60, curtain.PropAlpha: 0},
		curtain.TweenConfig{Duration: 1.2, Ease: ease.OutQuint}, curtain.End)
	tl.From(subtitle, curtain.Props{curtain.PropY: 30, curtain.PropAlpha: 0},
		curtain.TweenConfig{Duration: 0.8, Ease: ease.OutQuart}, curtain.Offset(-0.5))
	tl.From(strip, curtain.Props{curtain.PropAlpha: 0},
		curtain.TweenConfig{Duration: 1, Ease: ease.OutCubic}, curtain.Offset(-0.3))
	p.play(tl)
}

// eventCard builds the clickable card for r. The card lifts on hover and
// opens the event page on click.
func (s *Site) eventCard(r catalog.Record, w float64) *curtain.Element {
	card := curtain.NewBox("card-"+r.Slug, 0, 0, w, cardHeight, colorSurface)
	card.UserData = r.Slug

	band := curtain.NewBox("card-"+r.Slug+"-image", 0, 0, w, cardHeight*0.45, withAlpha(colorRed, 0.35))
	card.AddChild(band)

	cc := newColumn(card, 24, w-48, cardHeight*0.45+24)
	cc.paragraph("card-"+r.Slug+"-title", r.Title, 2, colorCream)
	cc.space(12)
	cc.add(curtain.NewBox("card-"+r.Slug+"-rule", 0, 0, 40, 1, withAlpha(colorGold, 0.6)))
	cc.space(12)
	cc.text("card-"+r.Slug+"-tagline", strings.ToUpper(r.Tagline), 1, colorGold)
	cc.space(12)
	cc.text("card-"+r.Slug+"-explore", "EXPLORE ->", 1, colorMuted)

	slug := r.Slug
	card.OnClick = func(curtain.PointerContext) { s.Navigate(EventRoute(slug)) }
	return card
}
