package microgui

// ListClipper limits a long list of equal-height rows to those inside
// the container's clip rect. The rows before and after the visible range
// are reserved as one layout cell each, so the content size and the
// scrollbars come out as if every row had been declared.
//
// Usage:
//
//	lc := c.ListClipper(len(items), 0)
//	for i := lc.Start; i < lc.End; i++ {
//	    c.Label(items[i])
//	}
//	lc.Finish()
type ListClipper struct {
	Start     int // First visible row (inclusive)
	End       int // Last visible row (exclusive)
	Total     int
	RowHeight int

	c    *Container
	step int
	top  int // Screen y of row 0
}

// ListClipper starts a clipped list of total rows of rowHeight pixels
// (0 for the style's default cell height). The visible rows are laid out
// as full-width cells of RowHeight. Call Finish after declaring them.
func (c *Container) ListClipper(total, rowHeight int) *ListClipper {
	style := c.sh.style
	if rowHeight <= 0 {
		rowHeight = style.Size.Y + style.Padding*2
	}
	l := c.layout.top()
	lc := &ListClipper{
		Total:     total,
		RowHeight: rowHeight,
		c:         c,
		step:      rowHeight + style.Spacing,
		top:       l.Body.Y + l.nextRow,
	}

	clip := c.ClipRect()
	lc.Start = clampi((clip.Y-lc.top)/lc.step, 0, total)
	lc.End = clampi((clip.Y+clip.H-lc.top+lc.step-1)/lc.step, lc.Start, total)

	lc.reserve(lc.Start)
	c.layout.Row([]int{-1}, rowHeight)
	return lc
}

// Finish reserves the space of the rows after End.
func (lc *ListClipper) Finish() {
	lc.reserve(lc.Total - lc.End)
}

// reserve takes one cell as tall as n rows, spacing included.
func (lc *ListClipper) reserve(n int) {
	if n <= 0 {
		return
	}
	l := lc.c.layout
	l.Row([]int{-1}, n*lc.step-lc.c.sh.style.Spacing)
	l.Next()
}

// ScrollTo adjusts the container scroll so row i is visible from the
// next frame on. Rows already inside the clip rect leave it unchanged.
func (lc *ListClipper) ScrollTo(i int) {
	if i < 0 || i >= lc.Total {
		return
	}
	clip := lc.c.ClipRect()
	top := lc.top + i*lc.step
	bottom := top + lc.RowHeight
	switch {
	case top < clip.Y:
		lc.c.scroll.Y -= clip.Y - top
	case bottom > clip.Y+clip.H:
		lc.c.scroll.Y += bottom - (clip.Y + clip.H)
	}
}
