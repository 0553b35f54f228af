package site

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/curtain"
)

var aboutStats = []struct {
	value, label string
}{
	{"500+", "PARTICIPANTS"},
	{"6", "EVENTS"},
	{"3", "DAYS"},
	{"Rs 2L+", "PRIZE POOL"},
}

var aboutTeam = []struct {
	name, role string
}{
	{"Arjun Patel", "President"},
	{"Riya Sharma", "Vice President"},
	{"Karan Mehta", "Tech Lead"},
	{"Priya Desai", "Creative Director"},
	{"Vikram Singh", "Events Head"},
	{"Ananya Iyer", "Marketing Lead"},
}

// initials returns the upper-case first letter of each word in name.
func initials(name string) string {
	var b strings.Builder
	for _, f := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(f[:1]))
	}
	return b.String()
}

func (s *Site) buildAbout(p *Page) {
	x, w := s.contentBox()
	col := newColumn(p.Root, x, w, pageTop)

	badge := col.text("about-badge", "ABOUT US", 1, colorGold)
	col.space(16)
	title := col.text("about-title", "THE SUMMIT\nEXPERIENCE", 5, colorCream)
	col.space(24)
	intro := col.paragraph("about-intro",
		"E-Summit is the flagship entrepreneurship festival where students pitch, trade, negotiate and build. "+
			"Three days of competition, mentorship and the people who turn ideas into companies.",
		1.5, colorMuted)
	col.space(sectionGap)

	mission := col.section("section-mission", func(sc *column) {
		sc.heading("mission-heading", "OUR MISSION")
		sc.paragraph("mission-text",
			"We exist to give every student with an idea a stage, a sparring partner and a room full of people "+
				"who will take it seriously. Every event is built to reward clear thinking under pressure.",
			1.5, colorCream)
	})
	s.revealSection(p, mission, curtain.RevealOptions{})
	col.space(sectionGap)

	stats := col.section("section-stats", func(sc *column) {
		cw := (sc.w - gridGap*float64(len(aboutStats)-1)) / float64(len(aboutStats))
		for i, st := range aboutStats {
			cell := curtain.NewBox(fmt.Sprintf("stat-%d", i), float64(i)*(cw+gridGap), 0, cw, 128, colorSurface)
			value := curtain.NewElement(fmt.Sprintf("stat-%d-value", i))
			value.Text, value.TextScale, value.CenterText = st.value, 4, true
			value.Width, value.Height = cw, 80
			value.Y = 16
			value.Color = colorGold
			cell.AddChild(value)
			label := curtain.NewElement(fmt.Sprintf("stat-%d-label", i))
			label.Text, label.CenterText = st.label, true
			label.Width, label.Height = cw, 16
			label.Y = 96
			label.Color = colorMuted
			cell.AddChild(label)
			sc.parent.AddChild(cell)
		}
		sc.y = 128
	})
	s.revealSection(p, stats, curtain.RevealOptions{
		StaggerChildren: true,
		EntranceOffset:  40,
		Duration:        0.8,
		Stagger:         0.1,
	})
	col.space(sectionGap)

	col.heading("team-heading", "THE TEAM")
	team := col.section("section-team", func(sc *column) {
		const perRow = 3
		cw := (sc.w - gridGap*(perRow-1)) / perRow
		for i, m := range aboutTeam {
			card := curtain.NewBox(fmt.Sprintf("team-%d", i), 0, 0, cw, 112, colorSurface)
			card.X = float64(i%perRow) * (cw + gridGap)
			card.Y = float64(i/perRow) * (112 + gridGap)
			avatar := curtain.NewBox(fmt.Sprintf("team-%d-avatar", i), 24, 24, 64, 64, withAlpha(colorGold, 0.2))
			mono := curtain.NewElement(fmt.Sprintf("team-%d-initials", i))
			mono.Text, mono.TextScale, mono.CenterText = initials(m.name), 2, true
			mono.Width, mono.Height = 64, 64
			mono.Color = colorGold
			avatar.AddChild(mono)
			card.AddChild(avatar)
			cc := newColumn(card, 112, cw-136, 36)
			cc.text(fmt.Sprintf("team-%d-name", i), m.name, 1.5, colorCream)
			cc.space(8)
			cc.text(fmt.Sprintf("team-%d-role", i), strings.ToUpper(m.role), 1, colorMuted)
			sc.parent.AddChild(card)
		}
		rows := (len(aboutTeam) + perRow - 1) / perRow
		sc.y = float64(rows)*(112+gridGap) - gridGap
	})
	s.revealSection(p, team, curtain.RevealOptions{
		StaggerChildren: true,
		EntranceOffset:  50,
		FromScale:       0.95,
		Stagger:         0.08,
	})

	col.space(sectionGap)
	col.box("about-divider", 1, colorHairline)
	col.space(32)
	col.centered("about-footer", "BUILT WITH PASSION - E-SUMMIT 2026", 1, withAlpha(colorCream, 0.35))
	col.space(96)
	p.Root.Height = col.y

	tl := curtain.NewTimeline(curtain.TimelineConfig{})
	tl.StaggerFrom([]*curtain.Element{badge, title, intro}, curtain.Props{curtain.PropY: 60, curtain.PropAlpha: 0},
		curtain.TweenConfig{Duration: 1.2, Ease: ease.OutQuint}, 0.15, curtain.At(0.2))
	p.play(tl)
}

// revealSection binds a one-shot reveal on el. Zero fields in opts fall back
// to the site's reveal settings.
func (s *Site) revealSection(p *Page, el *curtain.Element, opts curtain.RevealOptions) {
	base := s.settings.Reveal
	if opts.EntranceOffset != 0 {
		base.EntranceOffset = opts.EntranceOffset
	}
	if opts.Duration != 0 {
		base.Duration = opts.Duration
	}
	if opts.Stagger != 0 {
		base.Stagger = opts.Stagger
	}
	if opts.FromScale != 0 {
		base.FromScale = opts.FromScale
	}
	if opts.Threshold != 0 {
		base.Threshold = opts.Threshold
	}
	base.StaggerChildren = opts.StaggerChildren
	p.reveal(el, base)
}
