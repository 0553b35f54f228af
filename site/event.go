package site

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/curtain"
	"github.com/phanxgames/curtain/catalog"
)

// EventDetail is the outcome of looking up an event route.
type EventDetail struct {
	Slug   string
	Found  bool
	Record catalog.Record
	// Suggestion is the closest known slug when the lookup missed, or "".
	Suggestion string
}

// LoadEventDetail looks slug up in cat. A miss is not an error: the detail
// comes back with Found false and, when one is close enough, a suggestion.
func LoadEventDetail(cat *catalog.Catalog, slug string) EventDetail {
	d := EventDetail{Slug: slug}
	if r, ok := cat.FindBySlug(slug); ok {
		d.Found = true
		d.Record = r
		return d
	}
	d.Suggestion = closestSlug(cat.All(), slug)
	return d
}

// closestSlug returns the slug with the smallest edit distance to slug,
// provided the distance is under half the slug's length.
func closestSlug(records []catalog.Record, slug string) string {
	slug = strings.ToLower(slug)
	best, bestDist := "", len(slug)/2
	for _, r := range records {
		if d := levenshtein.ComputeDistance(slug, r.Slug); d < bestDist {
			best, bestDist = r.Slug, d
		}
	}
	return best
}

const (
	sideNavX      = 24
	sideNavTop    = pageTop + 72
	sideNavStep   = 44
	sideNavIndent = 140
	rulesColumns  = 2
)

var eventSections = []struct {
	id, label string
}{
	{"about", "MISSION"},
	{"rules", "RULES"},
	{"rounds", "TIMELINE"},
	{"register", "REGISTER"},
}

// sideNav is the fixed section index on event pages.
type sideNav struct {
	page      *Page
	items     map[string]int
	indicator *curtain.Element
}

func (s *Site) newSideNav(p *Page, sections map[string]*curtain.Element) *sideNav {
	n := &sideNav{page: p, items: make(map[string]int, len(eventSections))}
	root := curtain.NewElement("side-nav")
	root.Fixed = true
	root.X, root.Y = sideNavX, sideNavTop
	root.Width = sideNavIndent - 2*sideNavX
	p.Root.AddChild(root)

	back := curtain.NewText("side-nav-back", "<- BACK", 12, 0)
	back.Color = colorMuted
	back.Interactable = true
	back.OnClick = func(curtain.PointerContext) { s.Navigate("/home") }
	root.AddChild(back)

	y := float64(sideNavStep)
	n.indicator = curtain.NewBox("side-nav-indicator", 0, y, 2, 16, colorGold)
	root.AddChild(n.indicator)
	for i, sec := range eventSections {
		item := curtain.NewText("side-nav-"+sec.id, sec.label, 12, y+float64(i*sideNavStep)+2)
		item.Color = colorMuted
		item.Interactable = true
		target := sections[sec.id]
		item.OnClick = func(curtain.PointerContext) {
			s.shell.Viewport().ScrollIntoView(target, 1, ease.InOutCubic)
		}
		root.AddChild(item)
		n.items[sec.id] = i
	}
	root.Height = y + float64(len(eventSections)*sideNavStep)
	return n
}

// setActive highlights id and slides the indicator next to it.
func (n *sideNav) setActive(id string) {
	i, ok := n.items[id]
	if !ok || n.page.Active == id {
		return
	}
	n.page.Active = id
	for sid, j := range n.items {
		el := n.indicator.Parent.FindChild("side-nav-" + sid)
		if j == i {
			el.Color = colorGold
		} else {
			el.Color = colorMuted
		}
	}
	n.page.site.shell.Animator().To(n.indicator, curtain.Props{curtain.PropY: float64(i * sideNavStep)},
		curtain.TweenConfig{Duration: 0.4, Ease: ease.OutCubic, Overwrite: true})
}

// buildEvent renders the detail page for slug, or the not-found view when
// the catalog has no such event.
func (s *Site) buildEvent(p *Page, slug string) {
	d := LoadEventDetail(s.catalog, slug)
	p.Event = &d
	if !d.Found {
		p.Kind = KindNotFound
		s.log.Info("event not found", "slug", slug, "suggestion", d.Suggestion)
		s.buildNotFound(p, "EVENT NOT FOUND", d.Suggestion)
		return
	}
	r := d.Record
	x, w := s.contentBox()
	x, w = max(x, sideNavIndent), w-max(0, sideNavIndent-x)
	col := newColumn(p.Root, x, w, pageTop)

	badge := col.text("event-badge", "FEATURED EVENT", 1, colorGold)
	col.space(16)
	title := col.paragraph("event-title", strings.ToUpper(r.Title), 4, colorCream)
	col.space(16)
	tagline := col.text("event-tagline", r.Tagline, 1.5, colorMuted)
	col.space(sectionGap)

	sections := make(map[string]*curtain.Element, len(eventSections))
	sections["about"] = col.section("section-about", func(sc *column) {
		sc.heading("about-heading", "MISSION BRIEF")
		sc.paragraph("about-text", r.Description, 1.5, colorCream)
	})
	col.space(sectionGap)
	sections["rules"] = col.section("section-rules", func(sc *column) {
		sc.heading("rules-heading", "PROTOCOLS")
		s.rulesGrid(sc, r.Rules)
	})
	col.space(sectionGap)
	var content *curtain.Element
	sections["rounds"] = col.section("section-rounds", func(sc *column) {
		sc.heading("rounds-heading", "BATTLE TIMELINE")
		content = s.roundsTimeline(sc, r.Rounds)
	})
	col.space(sectionGap)
	sections["register"] = col.section("section-register", func(sc *column) {
		sc.box("register-rule", 1, colorHairline)
		sc.space(48)
		sc.centered("register-title", "READY TO CONQUER?", 3, colorCream)
		sc.space(16)
		sc.centered("register-text", "Registrations close soon. Assemble your team and claim your arena.", 1, colorMuted)
		sc.space(40)
		join := button("register-join", "JOIN THE SUMMIT", 240, 52, colorGold, colorBase)
		join.X = (sc.w - join.Width) / 2
		join.OnClick = func(curtain.PointerContext) {
			s.log.Info("registration requested", "event", r.Slug)
		}
		sc.add(join)
		p.track(s.settings.Lift.Bind(join))
	})
	col.space(sectionGap)
	p.Root.Height = col.y

	nav := s.newSideNav(p, sections)
	nav.setActive(eventSections[0].id)
	for i, sec := range eventSections {
		prev := eventSections[max(i-1, 0)].id
		id := sec.id
		opts := s.settings.Reveal
		opts.Replay = true
		opts.OnToggle = func(entered bool) {
			if entered {
				nav.setActive(id)
			} else {
				nav.setActive(prev)
			}
		}
		p.reveal(sections[id], opts)
	}

	bar := findElement(content, "rounds-progress")
	p.track(s.shell.Reveals().BindProgress(bar, curtain.ProgressOptions{Trigger: content}))

	tl := curtain.NewTimeline(curtain.TimelineConfig{})
	tl.StaggerFrom([]*curtain.Element{badge, title, tagline}, curtain.Props{curtain.PropY: 80, curtain.PropAlpha: 0},
		curtain.TweenConfig{Duration: 1.2, Ease: ease.OutQuint}, 0.1, curtain.At(0.2))
	p.play(tl)
}

// rulesGrid lays the rules out as numbered cards, rulesColumns per row.
func (s *Site) rulesGrid(sc *column, rules []string) {
	cw := (sc.w - gridGap*(rulesColumns-1)) / rulesColumns
	var rowH float64
	top := sc.y
	for i, rule := range rules {
		card := curtain.NewBox(fmt.Sprintf("rule-%d", i), 0, 0, cw, 0, colorSurface)
		cc := newColumn(card, 24, cw-48, 24)
		cc.text(fmt.Sprintf("rule-%d-number", i), fmt.Sprintf("%02d", i+1), 2, colorGold)
		cc.space(12)
		cc.paragraph(fmt.Sprintf("rule-%d-text", i), rule, 1, colorCream)
		card.Height = cc.y + 24

		if i%rulesColumns == 0 && i > 0 {
			top += rowH + gridGap
			rowH = 0
		}
		card.X = sc.x + float64(i%rulesColumns)*(cw+gridGap)
		card.Y = top
		sc.parent.AddChild(card)
		rowH = max(rowH, card.Height)
	}
	sc.y = top + rowH
}

// roundsTimeline adds the vertical rounds track and returns its container,
// which also serves as the progress bar's trigger.
func (s *Site) roundsTimeline(sc *column, rounds []catalog.Round) *curtain.Element {
	return sc.section("rounds-content", func(rc *column) {
		items := newColumn(rc.parent, 48, rc.w-48, 0)
		for i, round := range rounds {
			item := items.section(fmt.Sprintf("round-%d", i), func(ic *column) {
				ic.text(fmt.Sprintf("round-%d-label", i), fmt.Sprintf("ROUND %02d", i+1), 1, colorGold)
				ic.space(8)
				ic.text(fmt.Sprintf("round-%d-name", i), round.Name, 2, colorCream)
				ic.space(12)
				ic.paragraph(fmt.Sprintf("round-%d-text", i), round.Description, 1, colorMuted)
			})
			dot := curtain.NewBox(fmt.Sprintf("round-%d-dot", i), -48+4-5, 4, 10, 10, colorGold)
			item.AddChild(dot)
			items.space(48)
		}
		rc.y = max(items.y-48, 0)
		rc.parent.AddChild(curtain.NewBox("rounds-track", 4, 0, 2, rc.y, colorHairline))
		bar := curtain.NewBox("rounds-progress", 4, 0, 2, rc.y, colorGold)
		bar.Origin = curtain.Vec2{X: 0.5, Y: 0}
		bar.ScaleY = 0
		rc.parent.AddChild(bar)
	})
}
