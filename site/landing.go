package site

import (
	"fmt"
	"math/rand/v2"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/curtain"
)

const landingParticles = 14

// buildLanding is the intro: a gold line draws and bursts, particles pop in
// around the wordmark, then the tagline and the magnetic Enter button rise.
// Particles drift forever once the intro ends.
func (s *Site) buildLanding(p *Page) {
	w, h := s.width(), s.height()
	cx, cy := w/2, h/2
	root := p.Root
	root.Height = h

	line := curtain.NewBox("intro-line", cx-150, cy-90, 300, 2, colorGold)
	line.ScaleX = 0
	root.AddChild(line)

	rng := rand.New(rand.NewPCG(2026, landingParticles))
	particles := make([]*curtain.Element, landingParticles)
	for i := range particles {
		size := 2 + rng.Float64()*4
		pe := curtain.NewBox(fmt.Sprintf("particle-%d", i),
			w*(0.1+0.8*rng.Float64()), h*(0.1+0.8*rng.Float64()), size, size, withAlpha(colorGold, 0.6))
		pe.Alpha, pe.ScaleX, pe.ScaleY = 0, 0, 0
		root.AddChild(pe)
		particles[i] = pe
	}

	wordmark := curtain.NewElement("wordmark")
	wordmark.Text = "E-SUMMIT"
	wordmark.TextScale = 8
	_, wh := curtain.TextBounds(wordmark.Text, wordmark.TextScale)
	wordmark.Width, wordmark.Height = w, wh
	wordmark.Y = cy - wh/2 - 40
	wordmark.CenterText = true
	wordmark.Color = colorCream
	root.AddChild(wordmark)

	tagline := curtain.NewElement("tagline")
	tagline.Text = "WHERE VISION MEETS VICTORY"
	tagline.TextScale = 2
	_, th := curtain.TextBounds(tagline.Text, tagline.TextScale)
	tagline.Width, tagline.Height = w, th
	tagline.Y = wordmark.Y + wh + 24
	tagline.CenterText = true
	tagline.Color = colorMuted
	root.AddChild(tagline)

	const bw, bh = 220, 52
	by := tagline.Y + th + 56
	glow := curtain.NewBox("enter-glow", cx-bw/2-12, by-8, bw+24, bh+16, withAlpha(colorGold, 0.25))
	glow.Alpha = 0
	root.AddChild(glow)

	enter := button("enter", "ENTER SUMMIT", bw, bh, colorGold, colorBase)
	enter.X, enter.Y = cx-bw/2, by
	enter.OnClick = func(curtain.PointerContext) { s.Navigate("/home") }
	root.AddChild(enter)

	m := s.settings.Magnetic
	m.Strength = 0.25
	m.Follower = glow
	p.track(m.Bind(enter))

	tl := curtain.NewTimeline(curtain.TimelineConfig{
		OnComplete: func() { s.driftParticles(p, particles, rng) },
	})
	tl.To(line, curtain.Props{curtain.PropScaleX: 1},
		curtain.TweenConfig{Duration: 1.2, Ease: ease.InOutQuart}, curtain.End)
	tl.To(line, curtain.Props{curtain.PropAlpha: 0, curtain.PropScaleX: 1.5},
		curtain.TweenConfig{Duration: 0.6, Ease: ease.InCubic}, curtain.End)
	tl.StaggerTo(particles, curtain.Props{curtain.PropAlpha: 1, curtain.PropScaleX: 1, curtain.PropScaleY: 1},
		curtain.TweenConfig{Duration: 0.8, Ease: ease.OutBack}, 0.4/landingParticles, curtain.Offset(-0.3))
	tl.From(wordmark, curtain.Props{curtain.PropAlpha: 0, curtain.PropY: 30},
		curtain.TweenConfig{Duration: 1.2, Ease: ease.OutExpo}, curtain.Offset(-0.5))
	tl.From(tagline, curtain.Props{curtain.PropAlpha: 0, curtain.PropY: 20},
		curtain.TweenConfig{Duration: 0.8, Ease: ease.OutQuart}, curtain.Offset(-0.3))
	tl.From(enter, curtain.Props{curtain.PropAlpha: 0, curtain.PropY: 20},
		curtain.TweenConfig{Duration: 0.6, Ease: ease.OutQuart}, curtain.Offset(-0.3))
	p.play(tl)
}

// driftParticles starts an endless sine drift on every particle, each with
// its own travel and period.
func (s *Site) driftParticles(p *Page, particles []*curtain.Element, rng *rand.Rand) {
	if p.released {
		return
	}
	anim := s.shell.Animator()
	for _, pe := range particles {
		f := s.settings.Float
		f.Amplitude = -30 + rng.Float64()*60
		f.Duration = float32(4 + rng.Float64()*4)
		f.Ease = ease.InOutSine
		f.Start(pe)
		anim.To(pe, curtain.Props{curtain.PropX: -20 + rng.Float64()*40}, curtain.TweenConfig{
			Duration: f.Duration,
			Ease:     ease.InOutSine,
			Repeat:   -1,
			Yoyo:     true,
		})
		p.loop(pe)
	}
}
