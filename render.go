package curtain

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Glyph cell of ebitenutil's debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Filled boxes are drawn by scaling and tinting it.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// textImage is an element's rasterized text, rebuilt when the text changes.
type textImage struct {
	text string
	img  *ebiten.Image
	seen uint64
}

// textSize returns the pixel size of text in the debug font.
func textSize(text string) (w, h int) {
	lines := strings.Split(text, "\n")
	for _, l := range lines {
		w = max(w, len(l)*glyphWidth)
	}
	return w, len(lines) * glyphHeight
}

// TextBounds returns the size of text drawn at scale. A non-positive scale
// means 1.
func TextBounds(text string, scale float64) (w, h float64) {
	if scale <= 0 {
		scale = 1
	}
	tw, th := textSize(text)
	return float64(tw) * scale, float64(th) * scale
}

// Draw renders the document, then the overlay, onto screen. Document
// elements scroll with the viewport; fixed elements do not. Text and fills
// are tinted by each element's color and inherited alpha.
func (s *Shell) Draw(screen *ebiten.Image) {
	if s.Background.A > 0 {
		screen.Fill(s.Background.toRGBA(1))
	}
	s.drawElement(screen, s.root, 1)
	s.drawElement(screen, s.overlay, 1)

	for id, t := range s.textCache {
		if t.seen != s.frames {
			t.img.Deallocate()
			delete(s.textCache, id)
		}
	}
}

func (s *Shell) drawElement(dst *ebiten.Image, e *Element, parentAlpha float64) {
	if !e.Visible || e.disposed {
		return
	}
	alpha := parentAlpha * e.Alpha
	if alpha <= 0 {
		return
	}
	r := e.visualBounds()
	if !e.IsFixed() {
		r.Y -= s.vp.ScrollY()
	}
	onScreen := r.Bottom() >= 0 && r.Y <= s.vp.Height

	if onScreen && e.Fill && r.Width > 0 && r.Height > 0 {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(r.Width, r.Height)
		op.GeoM.Translate(r.X, r.Y)
		scaleColor(&op.ColorScale, e.Color, alpha)
		dst.DrawImage(ensureWhitePixel(), &op)
	}
	if onScreen && e.Text != "" {
		s.drawText(dst, e, r, alpha)
	}

	for _, c := range e.children {
		s.drawElement(dst, c, alpha)
	}
}

func (s *Shell) drawText(dst *ebiten.Image, e *Element, r Rect, alpha float64) {
	t := s.textCache[e.ID]
	if t == nil || t.text != e.Text {
		if t != nil {
			t.img.Deallocate()
		}
		w, h := textSize(e.Text)
		t = &textImage{text: e.Text, img: ebiten.NewImage(max(w, 1), max(h, 1))}
		ebitenutil.DebugPrint(t.img, e.Text)
		s.textCache[e.ID] = t
	}
	t.seen = s.frames

	w, h := textSize(e.Text)
	var op ebiten.DrawImageOptions
	ts := e.TextScale
	if ts <= 0 {
		ts = 1
	}
	sx, sy := e.ScaleX*ts, e.ScaleY*ts
	op.GeoM.Scale(sx, sy)
	x, y := r.X, r.Y
	if e.CenterText {
		x += (r.Width - float64(w)*sx) / 2
		y += (r.Height - float64(h)*sy) / 2
	}
	op.GeoM.Translate(x, y)
	scaleColor(&op.ColorScale, e.Color, alpha)
	dst.DrawImage(t.img, &op)
}

// scaleColor applies c with extra alpha as a premultiplied color scale.
func scaleColor(cs *ebiten.ColorScale, c Color, alpha float64) {
	a := float32(clamp01(c.A * alpha))
	cs.Scale(float32(clamp01(c.R))*a, float32(clamp01(c.G))*a, float32(clamp01(c.B))*a, a)
}
