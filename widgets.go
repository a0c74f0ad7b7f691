package microgui

import (
	"math"
	"strconv"
)

// Label draws a single line of text in the next cell.
func (c *Container) Label(text string) {
	c.DrawControlText(text, c.layout.Next(), ColorText, 0)
}

// Text draws text word-wrapped to the width of a column spanning the row.
// Newlines force a break.
func (c *Container) Text(text string) {
	atlas := c.sh.atlas
	color := c.sh.style.Colors[ColorText]

	c.layout.BeginColumn()
	c.layout.Row([]int{-1}, atlas.TextHeight())
	p := 0
	for {
		r := c.layout.Next()
		w := 0
		start, end := p, p
		for {
			word := p
			for p < len(text) && text[p] != ' ' && text[p] != '\n' {
				p++
			}
			w += atlas.TextWidth(text[word:p])
			if w > r.W && end != start {
				break
			}
			if p < len(text) {
				w += atlas.TextWidth(text[p : p+1])
			}
			end = p
			p++
			if end >= len(text) || text[end] == '\n' {
				break
			}
		}
		if end > start {
			c.DrawText(text[start:end], Vec2{X: r.X, Y: r.Y}, color)
		}
		p = end + 1
		if end >= len(text) {
			break
		}
	}
	c.layout.EndColumn()
}

// Button draws a button and reports whether it was pressed this frame.
func (c *Container) Button(label string, opt Option) bool {
	id := c.ids.GetIDFromStr(label)
	r := c.layout.Next()
	c.UpdateControl(id, r, opt)
	pressed := c.sh.input.MousePressed() == MouseLeft && c.sh.focus == id
	c.DrawControlFrame(id, r, ColorButton, opt)
	c.DrawControlText(label, r, ColorText, opt)
	return pressed
}

// Checkbox draws a box toggling *state and reports whether it changed.
func (c *Container) Checkbox(label string, state *bool) bool {
	id := c.ids.GetIDFromStr(label)
	r := c.layout.Next()
	box := Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}
	c.UpdateControl(id, r, 0)

	changed := false
	if c.sh.input.MousePressed() == MouseLeft && c.sh.focus == id {
		*state = !*state
		changed = true
	}

	c.DrawControlFrame(id, box, ColorBase, 0)
	if *state {
		c.DrawIcon(IconCheck, box, c.sh.style.Colors[ColorText])
	}
	r = Rect{X: r.X + box.W, Y: r.Y, W: r.W - box.W, H: r.H}
	c.DrawControlText(label, r, ColorText, 0)
	return changed
}

// Slider lets the user drag *value between lo and hi, snapped to step
// when step is positive. It reports whether the value changed.
func (c *Container) Slider(label string, value *float64, lo, hi, step float64) bool {
	in := c.sh.input
	style := c.sh.style
	id := c.ids.GetIDFromStr(label)
	base := c.layout.Next()

	last := *value
	v := last
	c.UpdateControl(id, base, 0)
	if c.sh.focus == id && (in.MouseDown()|in.MousePressed()) == MouseLeft && base.W > 0 {
		v = lo + float64(in.MousePos().X-base.X)*(hi-lo)/float64(base.W)
		if step > 0 {
			v = math.Floor((v+step/2)/step) * step
		}
	}
	v = clampf(v, lo, hi)
	*value = v

	c.DrawControlFrame(id, base, ColorBase, 0)
	if hi > lo {
		w := style.ThumbSize
		x := int((v - lo) * float64(base.W-w) / (hi - lo))
		c.DrawControlFrame(id, Rect{X: base.X + x, Y: base.Y, W: w, H: base.H}, ColorButton, 0)
	}
	c.DrawControlText(strconv.FormatFloat(v, 'f', 2, 64), base, ColorText, OptAlignCenter)
	return v != last
}

// Header draws a full-width collapsible header and reports whether it is
// expanded. Headers start collapsed unless opt has OptExpanded.
// The toggled state is kept while the window is closed and dropped once
// the window is drawn without declaring the header.
func (c *Container) Header(label string, opt Option) bool {
	return c.header(label, false, opt)
}

// TreeNode is a Header drawn without a frame that indents and scopes the
// ids of what fn declares. fn only runs while the node is expanded.
func (c *Container) TreeNode(label string, opt Option, fn func()) bool {
	if !c.header(label, true, opt) {
		return false
	}
	indent := c.sh.style.Indent
	c.layout.Indent(indent)
	c.ids.PushID(label)
	fn()
	c.ids.PopID()
	c.layout.Indent(-indent)
	return true
}

func (c *Container) header(label string, treeNode bool, opt Option) bool {
	style := c.sh.style
	id := c.ids.GetIDFromStr(label)
	toggled := c.expanded.Get(id, false)

	c.layout.Row([]int{-1}, 0)
	r := c.layout.Next()
	c.UpdateControl(id, r, 0)
	if c.sh.input.MousePressed() == MouseLeft && c.sh.focus == id {
		*toggled = !*toggled
	}
	expanded := *toggled != (opt&OptExpanded != 0)

	if treeNode {
		if c.sh.hover == id {
			c.DrawFrame(r, ColorButtonHover)
		}
	} else {
		c.DrawControlFrame(id, r, ColorButton, 0)
	}
	icon := IconCollapsed
	if expanded {
		icon = IconExpanded
	}
	c.DrawIcon(icon, Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}, style.Colors[ColorText])
	r.X += r.H - style.Padding
	r.W -= r.H - style.Padding
	c.DrawControlText(label, r, ColorText, 0)
	return expanded
}
