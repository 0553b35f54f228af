package site

import (
	"strings"

	"github.com/phanxgames/curtain"
)

// Palette.
var (
	colorBase     = curtain.Color{R: 0.039, G: 0.059, B: 0.110, A: 1}
	colorSurface  = curtain.Color{R: 0.106, G: 0.149, B: 0.231, A: 1}
	colorGold     = curtain.Color{R: 0.957, G: 0.635, B: 0.380, A: 1}
	colorRed      = curtain.Color{R: 0.769, G: 0.271, B: 0.212, A: 1}
	colorCream    = curtain.Color{R: 0.960, G: 0.940, B: 0.890, A: 1}
	colorMuted    = curtain.Color{R: 0.960, G: 0.940, B: 0.890, A: 0.55}
	colorHairline = curtain.Color{R: 1, G: 1, B: 1, A: 0.1}
)

const (
	navHeight    = 64
	pageTop      = navHeight + 64
	pageMargin   = 96
	maxContent   = 1088
	sectionGap   = 112
	headingScale = 2
)

// withAlpha returns c with its alpha replaced.
func withAlpha(c curtain.Color, a float64) curtain.Color {
	c.A = a
	return c
}

// column stacks elements top to bottom inside parent, starting at y.
type column struct {
	parent *curtain.Element
	x, w   float64
	y      float64
}

func newColumn(parent *curtain.Element, x, w, y float64) *column {
	return &column{parent: parent, x: x, w: w, y: y}
}

func (c *column) space(h float64) { c.y += h }

// add places el at the cursor, keeping its X offset, and advances past it.
func (c *column) add(el *curtain.Element) *curtain.Element {
	el.X += c.x
	el.Y = c.y
	c.parent.AddChild(el)
	c.y += el.Height
	return el
}

// text adds left-aligned text.
func (c *column) text(name, s string, scale float64, col curtain.Color) *curtain.Element {
	el := curtain.NewText(name, s, 0, 0)
	el.SetText(s, scale)
	el.Color = col
	return c.add(el)
}

// centered adds text centered across the column.
func (c *column) centered(name, s string, scale float64, col curtain.Color) *curtain.Element {
	el := c.text(name, s, scale, col)
	el.X = c.x
	el.Width = c.w
	el.CenterText = true
	return el
}

// paragraph adds text wrapped to the column width.
func (c *column) paragraph(name, s string, scale float64, col curtain.Color) *curtain.Element {
	w, _ := curtain.TextBounds("m", scale)
	return c.text(name, wrap(s, int(c.w/w)), scale, col)
}

// box adds a full-width filled box.
func (c *column) box(name string, h float64, col curtain.Color) *curtain.Element {
	return c.add(curtain.NewBox(name, 0, 0, c.w, h, col))
}

// heading adds a section heading with a short gold rule before it.
func (c *column) heading(name, s string) *curtain.Element {
	tw, th := curtain.TextBounds(s, headingScale)
	h := curtain.NewElement(name)
	h.Width, h.Height = 56+tw, th
	h.AddChild(curtain.NewBox(name+"-rule", 0, th/2, 40, 1, colorGold))
	label := curtain.NewText(name+"-text", s, 56, 0)
	label.SetText(s, headingScale)
	label.Color = colorCream
	h.AddChild(label)
	c.add(h)
	c.space(32)
	return h
}

// section adds a container and fills it through a nested column whose
// coordinates are relative to the container. The container's height is the
// nested column's final cursor.
func (c *column) section(name string, fill func(sc *column)) *curtain.Element {
	sec := curtain.NewElement(name)
	sec.Width = c.w
	sc := newColumn(sec, 0, c.w, 0)
	fill(sc)
	sec.Height = sc.y
	return c.add(sec)
}

// wrap breaks s into lines of at most cols characters on word boundaries.
// Words longer than cols get a line of their own.
func wrap(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(s) {
		switch {
		case n == 0:
		case n+1+len(word) > cols:
			b.WriteByte('\n')
			n = 0
		default:
			b.WriteByte(' ')
			n++
		}
		b.WriteString(word)
		n += len(word)
	}
	return b.String()
}

// button builds a filled box with a centered label child.
func button(name, label string, w, h float64, fill, ink curtain.Color) *curtain.Element {
	btn := curtain.NewBox(name, 0, 0, w, h, fill)
	txt := curtain.NewElement(name + "-label")
	txt.Text = label
	txt.Width, txt.Height = w, h
	txt.CenterText = true
	txt.Color = ink
	btn.AddChild(txt)
	btn.Interactable = true
	return btn
}

// findElement searches el's subtree depth-first for name.
func findElement(el *curtain.Element, name string) *curtain.Element {
	if el.Name == name {
		return el
	}
	for _, c := range el.Children() {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}
