package microgui

import "fmt"

type nextType uint8

const (
	nextNone nextType = iota
	nextRelative
	nextAbsolute
)

// Layout is one frame of the layout stack: a body rect that cells are
// handed out from, row by row, and the extent of everything handed out.
type Layout struct {
	Body Rect // Shifted by the container scroll
	Max  Vec2 // Bottom-right of all cells handed out so far

	position  Vec2 // Cursor relative to Body
	size      Vec2 // Row-wide width and height overrides
	nextRow   int
	indent    int
	widths    []int
	items     int
	itemIndex int
	next      Rect
	nextType  nextType
}

// LayoutStack hands out widget rects. A container pushes one frame over
// its body; columns push nested frames.
type LayoutStack struct {
	style *Style
	stack []Layout
	last  Rect
}

// NewLayoutStack creates an empty stack that sizes default cells from style.
func NewLayoutStack(style *Style) *LayoutStack {
	return &LayoutStack{style: style, stack: make([]Layout, 0, 4)}
}

// Reset drops every frame.
func (s *LayoutStack) Reset() {
	s.stack = s.stack[:0]
	s.last = Rect{}
}

// Push starts a new frame over body shifted by -scroll. Max extents are
// reset and a single default-width row is declared.
func (s *LayoutStack) Push(body Rect, scroll Vec2) {
	s.stack = append(s.stack, Layout{
		Body: Rect{X: body.X - scroll.X, Y: body.Y - scroll.Y, W: body.W, H: body.H},
		Max:  Vec2{X: -0x1000000, Y: -0x1000000},
	})
	s.RowItems(1, nil, 0)
}

// Pop removes the top frame.
func (s *LayoutStack) Pop() {
	n := len(s.stack)
	if n == 0 {
		panic(fmt.Errorf("Pop: %w", ErrLayoutUnderflow))
	}
	s.stack = s.stack[:n-1]
}

// Top returns the active frame, or nil when the stack is empty.
func (s *LayoutStack) Top() *Layout {
	if n := len(s.stack); n > 0 {
		return &s.stack[n-1]
	}
	return nil
}

// Depth returns the number of frames.
func (s *LayoutStack) Depth() int {
	return len(s.stack)
}

// LastRect returns the rect most recently returned by Next.
func (s *LayoutStack) LastRect() Rect {
	return s.last
}

func (s *LayoutStack) top() *Layout {
	l := s.Top()
	if l == nil {
		panic(fmt.Errorf("layout: %w", ErrLayoutUnderflow))
	}
	return l
}

// Row declares a row with one cell per entry in widths.
// A width of 0 means the default width, a negative width fills the rest
// of the body minus its magnitude.
func (s *LayoutStack) Row(widths []int, height int) {
	s.RowItems(len(widths), widths, height)
}

// RowItems declares a row of n cells. Cells past len(widths) reuse the
// last declared width; with no widths every cell gets the default width.
func (s *LayoutStack) RowItems(n int, widths []int, height int) {
	l := s.top()
	l.widths = l.widths[:0]
	last := 0
	for i := 0; i < n; i++ {
		if i < len(widths) {
			last = widths[i]
		}
		l.widths = append(l.widths, last)
	}
	l.items = n
	l.newRow(height)
}

func (l *Layout) newRow(height int) {
	l.position = Vec2{X: l.indent, Y: l.nextRow}
	l.size.Y = height
	l.itemIndex = 0
}

// SetWidth sets the width of cells in rows declared with no items.
func (s *LayoutStack) SetWidth(w int) {
	s.top().size.X = w
}

// SetHeight overrides the height of the current row.
func (s *LayoutStack) SetHeight(h int) {
	s.top().size.Y = h
}

// Indent shifts the start of following rows by delta.
func (s *LayoutStack) Indent(delta int) {
	s.top().indent += delta
}

// SetNext fixes the rect returned by the next call to Next. A relative
// rect is offset by the body position and advances the cursor; an
// absolute rect is returned as is.
func (s *LayoutStack) SetNext(r Rect, relative bool) {
	l := s.top()
	l.next = r
	if relative {
		l.nextType = nextRelative
	} else {
		l.nextType = nextAbsolute
	}
}

// Next returns the rect for the next widget.
func (s *LayoutStack) Next() Rect {
	l := s.top()
	var r Rect

	if l.nextType != nextNone {
		t := l.nextType
		l.nextType = nextNone
		r = l.next
		if t == nextAbsolute {
			s.last = r
			return r
		}
	} else {
		if l.itemIndex == l.items {
			l.newRow(l.size.Y)
		}
		r.X = l.position.X
		r.Y = l.position.Y
		if l.items > 0 {
			r.W = l.widths[l.itemIndex]
		} else {
			r.W = l.size.X
		}
		r.H = l.size.Y
		if r.W == 0 {
			r.W = s.style.Size.X + s.style.Padding*2
		}
		if r.H == 0 {
			r.H = s.style.Size.Y + s.style.Padding*2
		}
		if r.W < 0 {
			r.W += l.Body.W - r.X + 1
		}
		if r.H < 0 {
			r.H += l.Body.H - r.Y + 1
		}
		l.itemIndex++
	}

	l.position.X += r.W + s.style.Spacing
	l.nextRow = max(l.nextRow, r.Y+r.H+s.style.Spacing)

	r.X += l.Body.X
	r.Y += l.Body.Y

	l.Max.X = max(l.Max.X, r.X+r.W)
	l.Max.Y = max(l.Max.Y, r.Y+r.H)

	s.last = r
	return r
}

// BeginColumn pushes a nested frame over the next cell.
func (s *LayoutStack) BeginColumn() {
	s.Push(s.Next(), Vec2{})
}

// EndColumn pops the column frame. The parent absorbs the column's
// cursor, next row and extents where they reach further.
func (s *LayoutStack) EndColumn() {
	b := *s.top()
	s.Pop()
	a := s.top()
	a.position.X = max(a.position.X, b.position.X+b.Body.X-a.Body.X)
	a.nextRow = max(a.nextRow, b.nextRow+b.Body.Y-a.Body.Y)
	a.Max.X = max(a.Max.X, b.Max.X)
	a.Max.Y = max(a.Max.Y, b.Max.Y)
}
