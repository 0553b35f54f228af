package curtain

// PointerContext carries pointer event data.
type PointerContext struct {
	Element *Element
	// ScreenX and ScreenY are viewport coordinates.
	ScreenX, ScreenY float64
	// DocX and DocY are document coordinates (screen plus scroll for
	// non-fixed elements).
	DocX, DocY float64
}

// elementIDCounter is a plain counter (no atomic; curtain is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is the fundamental tree node. A single flat struct is used for all
// element kinds: boxes, text and containers differ only by which fields are set.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout box, parent-relative. Never animated.
	X, Y          float64
	Width, Height float64

	// Animated transform, applied on top of the layout box.
	TranslateX, TranslateY float64
	ScaleX, ScaleY         float64
	Alpha                  float64
	// Origin is the scale pivot as a fraction of the layout box. NewElement
	// centers it.
	Origin Vec2

	// Visibility & interaction
	Visible      bool
	Interactable bool
	// Fixed anchors the element (and its subtree) to the viewport instead
	// of the scrolling document.
	Fixed bool

	// Appearance
	Color Color
	// Fill paints the layout box with Color. Text elements use Color as
	// the text tint instead.
	Fill bool
	Text string
	// CenterText draws Text centered in the layout box instead of at its
	// top-left corner.
	CenterText bool
	// TextScale enlarges the glyphs. Zero means 1.
	TextScale float64

	// Metadata
	UserData any

	// Per-element callbacks (nil by default)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)
	OnPointerMove  func(PointerContext)
	OnClick        func(PointerContext)

	// floatRest is the TranslateY a Float bobs around, captured by the
	// first Start.
	floatRest     float64
	floatAnchored bool

	disposed bool
}

// NewElement creates an element with identity transform and full opacity.
func NewElement(name string) *Element {
	return &Element{
		ID:      nextElementID(),
		Name:    name,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Origin:  Vec2{X: 0.5, Y: 0.5},
		Visible: true,
		Color:   ColorWhite,
	}
}

// NewBox creates an element with the given layout box and color.
func NewBox(name string, x, y, w, h float64, c Color) *Element {
	e := NewElement(name)
	e.X, e.Y, e.Width, e.Height = x, y, w, h
	e.Color = c
	e.Fill = true
	return e
}

// NewText creates a text element at the given position, sized to its text.
func NewText(name, text string, x, y float64) *Element {
	e := NewElement(name)
	e.X, e.Y = x, y
	e.SetText(text, 1)
	return e
}

// SetText replaces the text and resizes the layout box to fit it at scale.
func (e *Element) SetText(text string, scale float64) {
	e.Text = text
	e.TextScale = scale
	e.Width, e.Height = TextBounds(text, scale)
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, disposed, or an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("curtain: cannot add nil child")
	}
	if child.disposed || e.disposed {
		panic("curtain: cannot add disposed element")
	}
	if isAncestor(child, e) {
		panic("curtain: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("curtain: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// FindChild returns the first descendant (depth-first) with the given name,
// or nil.
func (e *Element) FindChild(name string) *Element {
	for _, c := range e.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Geometry ---

// DocumentBounds returns the untransformed layout box in document space.
// Fixed ancestors are ignored; use IsFixed to know which space applies.
func (e *Element) DocumentBounds() Rect {
	x, y := e.X, e.Y
	for p := e.Parent; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return Rect{X: x, Y: y, Width: e.Width, Height: e.Height}
}

// IsFixed reports whether this element or any ancestor is viewport-anchored.
func (e *Element) IsFixed() bool {
	for p := e; p != nil; p = p.Parent {
		if p.Fixed {
			return true
		}
	}
	return false
}

// visualBounds returns the document bounds with the translations of the
// element and its ancestors applied, scaled around the element's Origin.
func (e *Element) visualBounds() Rect {
	r := e.DocumentBounds()
	tx, ty := 0.0, 0.0
	for p := e; p != nil; p = p.Parent {
		tx += p.TranslateX
		ty += p.TranslateY
	}
	w := r.Width * e.ScaleX
	h := r.Height * e.ScaleY
	px := r.X + r.Width*e.Origin.X
	py := r.Y + r.Height*e.Origin.Y
	return Rect{X: px - w*e.Origin.X + tx, Y: py - h*e.Origin.Y + ty, Width: w, Height: h}
}

// worldAlpha multiplies Alpha up the ancestor chain.
func (e *Element) worldAlpha() float64 {
	a := 1.0
	for p := e; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed, and
// recursively disposes all descendants. Animations targeting a disposed
// element stop on their next tick.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.UserData = nil
	e.OnPointerEnter = nil
	e.OnPointerLeave = nil
	e.OnPointerMove = nil
	e.OnClick = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
