package microgui

import (
	"fmt"
	"log/slog"
)

// shared is the canvas-wide state every container reads and the
// controls update. It lives as long as the Canvas.
type shared struct {
	style  *Style
	input  *InputState
	atlas  Atlas
	logger *slog.Logger

	focus        ID
	hover        ID
	updatedFocus bool // A control saw the focused ID this frame

	hoverRoot    *Container
	scrollTarget *Container
}

func (sh *shared) setFocus(id ID) {
	if sh.focus != id && guiVerbose() {
		sh.logger.Debug("focus changed", "from", sh.focus, "to", id)
	}
	sh.focus = id
	sh.updatedFocus = true
}

// Container is the drawing surface of one window. Its rect, scroll
// offset and content size persist across frames; the command list, clip
// stack, layout stack and id stack are rebuilt every frame.
type Container struct {
	name        string
	rect        Rect
	body        Rect
	contentSize Vec2
	scroll      Vec2
	zIndex      int

	sh    *shared
	owner *Window

	commands  []Command
	clipStack []Rect
	layout    *LayoutStack
	ids       *IDManager

	// Header expansion state, aged by the frames this container is drawn
	// in so it survives while the window is closed.
	expanded *FrameStore[bool]
	frames   uint64
}

func newContainer(name string, rect Rect, sh *shared) *Container {
	return &Container{
		name:      name,
		rect:      rect,
		sh:        sh,
		commands:  make([]Command, 0, 64),
		clipStack: make([]Rect, 0, 8),
		layout:    NewLayoutStack(sh.style),
		ids:       NewIDManager(name),
		expanded:  NewFrameStore[bool](),
	}
}

// Name returns the name the container was created with.
func (c *Container) Name() string { return c.name }

// Rect returns the outer rect, chrome included.
func (c *Container) Rect() Rect { return c.rect }

// SetRect moves or resizes the container.
func (c *Container) SetRect(r Rect) { c.rect = r }

// Body returns the area inside the chrome and scrollbars.
func (c *Container) Body() Rect { return c.body }

// ContentSize returns the extent of what the layout handed out in the
// last finished frame.
func (c *Container) ContentSize() Vec2 { return c.contentSize }

// Scroll returns the scroll offset.
func (c *Container) Scroll() Vec2 { return c.scroll }

// SetScroll sets the scroll offset. It is clamped when scrollbars are laid out.
func (c *Container) SetScroll(v Vec2) { c.scroll = v }

// ZIndex returns the stacking order; higher is drawn later.
func (c *Container) ZIndex() int { return c.zIndex }

// Commands returns the commands recorded this frame.
func (c *Container) Commands() []Command { return c.commands }

// Layout returns the layout stack.
func (c *Container) Layout() *LayoutStack { return c.layout }

// IDs returns the id stack.
func (c *Container) IDs() *IDManager { return c.ids }

// Style returns the shared style.
func (c *Container) Style() *Style { return c.sh.style }

// Input returns the shared input snapshot.
func (c *Container) Input() *InputState { return c.sh.input }

// Atlas returns the shared atlas.
func (c *Container) Atlas() Atlas { return c.sh.atlas }

// Focus returns the focused control, 0 if none.
func (c *Container) Focus() ID { return c.sh.focus }

// Hover returns the hovered control, 0 if none.
func (c *Container) Hover() ID { return c.sh.hover }

// SetFocus gives focus to id.
func (c *Container) SetFocus(id ID) { c.sh.setFocus(id) }

// InHoverRoot reports whether this container is the current hover root.
func (c *Container) InHoverRoot() bool { return c.sh.hoverRoot == c }

// prepare resets the per-frame state and pushes the unclipped root rect.
func (c *Container) prepare() {
	c.frames++
	c.expanded.Cleanup(c.frames)
	c.commands = c.commands[:0]
	c.clipStack = c.clipStack[:0]
	c.layout.Reset()
	c.ids.Reset(HashString(HashInitial, c.name))
	c.clipStack = append(c.clipStack, unclippedRect)
}

// finish records the content size of the body layout and pops the root
// clip rect.
func (c *Container) finish() {
	if l := c.layout.Top(); l != nil {
		c.contentSize = Vec2{X: l.Max.X - l.Body.X, Y: l.Max.Y - l.Body.Y}
		c.layout.Pop()
	}
	if len(c.clipStack) != 1 {
		panic(fmt.Errorf("container %q ends with %d clip rects: %w", c.name, len(c.clipStack), ErrClipImbalance))
	}
	c.PopClipRect()
}

// PushClipRect pushes r intersected with the active clip rect.
func (c *Container) PushClipRect(r Rect) {
	c.clipStack = append(c.clipStack, r.Intersect(c.ClipRect()))
}

// PopClipRect removes the active clip rect.
func (c *Container) PopClipRect() {
	n := len(c.clipStack)
	if n == 0 {
		panic(fmt.Errorf("container %q: %w", c.name, ErrClipUnderflow))
	}
	c.clipStack = c.clipStack[:n-1]
}

// ClipRect returns the active clip rect.
func (c *Container) ClipRect() Rect {
	n := len(c.clipStack)
	if n == 0 {
		panic(fmt.Errorf("container %q: %w", c.name, ErrClipUnderflow))
	}
	return c.clipStack[n-1]
}

// ClipDepth returns the number of clip rects on the stack.
func (c *Container) ClipDepth() int { return len(c.clipStack) }

// CheckClip tells whether r is fully visible, partially visible or hidden
// under the active clip rect.
func (c *Container) CheckClip(r Rect) ClipResult {
	cr := c.ClipRect()
	if r.X > cr.X+cr.W || r.X+r.W < cr.X || r.Y > cr.Y+cr.H || r.Y+r.H < cr.Y {
		return ClipAll
	}
	if r.X >= cr.X && r.X+r.W <= cr.X+cr.W && r.Y >= cr.Y && r.Y+r.H <= cr.Y+cr.H {
		return ClipNone
	}
	return ClipPart
}

// DrawRect fills the visible part of r.
func (c *Container) DrawRect(r Rect, color uint32) {
	clip := c.ClipRect()
	r = r.Intersect(clip)
	if r.Empty() {
		return
	}
	c.commands = append(c.commands, Command{Kind: CommandRect, Rect: r, Clip: clip, Color: color})
}

// DrawBox outlines r with 1px lines.
func (c *Container) DrawBox(r Rect, color uint32) {
	c.DrawRect(Rect{X: r.X + 1, Y: r.Y, W: r.W - 2, H: 1}, color)
	c.DrawRect(Rect{X: r.X + 1, Y: r.Y + r.H - 1, W: r.W - 2, H: 1}, color)
	c.DrawRect(Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, color)
	c.DrawRect(Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, color)
}

// DrawFrame fills r with the role's color and outlines it with the
// border color. Scrollbars and title bars get no border.
func (c *Container) DrawFrame(r Rect, role ColorRole) {
	if !r.Intersects(c.ClipRect()) {
		return
	}
	style := c.sh.style
	c.DrawRect(r, style.Colors[role])
	switch role {
	case ColorScrollBase, ColorScrollThumb, ColorTitleBG:
		return
	}
	if border := style.Colors[ColorBorder]; alpha(border) != 0 {
		c.DrawBox(r.Expand(1), border)
	}
}

// DrawText records text with its top-left corner at pos.
func (c *Container) DrawText(text string, pos Vec2, color uint32) {
	atlas := c.sh.atlas
	r := Rect{X: pos.X, Y: pos.Y, W: atlas.TextWidth(text), H: atlas.TextHeight()}
	if c.CheckClip(r) == ClipAll {
		return
	}
	c.commands = append(c.commands, Command{Kind: CommandText, Pos: pos, Clip: c.ClipRect(), Color: color, Text: text})
}

// DrawIcon records an icon centered in r.
func (c *Container) DrawIcon(id IconID, r Rect, color uint32) {
	if c.CheckClip(r) == ClipAll {
		return
	}
	c.commands = append(c.commands, Command{Kind: CommandIcon, Rect: r, Clip: c.ClipRect(), Color: color, Icon: id})
}

// DrawControlText draws text vertically centered in r and aligned per
// opt, clipped to r.
func (c *Container) DrawControlText(text string, r Rect, role ColorRole, opt Option) {
	atlas := c.sh.atlas
	style := c.sh.style
	tw := atlas.TextWidth(text)

	c.PushClipRect(r)
	pos := Vec2{Y: r.Y + (r.H-atlas.TextHeight())/2}
	switch {
	case opt&OptAlignCenter != 0:
		pos.X = r.X + (r.W-tw)/2
	case opt&OptAlignRight != 0:
		pos.X = r.X + r.W - tw - style.Padding
	default:
		pos.X = r.X + style.Padding
	}
	c.DrawText(text, pos, style.Colors[role])
	c.PopClipRect()
}

// DrawControlFrame draws a control background, picking role+1 when the
// control is hovered and role+2 when it is focused.
func (c *Container) DrawControlFrame(id ID, r Rect, role ColorRole, opt Option) {
	if opt&OptNoFrame != 0 {
		return
	}
	switch {
	case c.sh.focus == id:
		role += 2
	case c.sh.hover == id:
		role++
	}
	c.DrawFrame(r, role)
}

// MouseOver reports whether the pointer is inside r, inside the active
// clip rect, and this container is the hover root.
func (c *Container) MouseOver(r Rect) bool {
	p := c.sh.input.MousePos()
	return r.Contains(p) && c.ClipRect().Contains(p) && c.InHoverRoot()
}

// UpdateControl runs the hover and focus logic for the control id
// occupying r. It is the only place hover and focus change.
func (c *Container) UpdateControl(id ID, r Rect, opt Option) {
	sh := c.sh
	in := sh.input
	over := c.MouseOver(r)

	if sh.focus == id {
		sh.updatedFocus = true
	}
	if opt&OptNoInteract != 0 {
		return
	}
	if over && in.MouseDown().IsNone() {
		sh.hover = id
	}

	if sh.focus == id {
		if !in.MousePressed().IsNone() && !over {
			sh.setFocus(0)
		}
		if in.MouseDown().IsNone() && opt&OptHoldFocus == 0 {
			sh.setFocus(0)
		}
	}

	// Hover can be a frame stale, so a press only focuses under the pointer.
	if sh.hover == id {
		if !in.MousePressed().IsNone() && over {
			sh.setFocus(id)
		} else if !over {
			sh.hover = 0
		}
	}
}

// PushContainerBody lays out scrollbars (unless OptNoScroll) and pushes
// the layout frame over body shrunk by the style padding.
func (c *Container) PushContainerBody(body Rect, opt Option) {
	if opt&OptNoScroll == 0 {
		body = c.scrollbars(body)
	}
	c.layout.Push(body.Expand(-c.sh.style.Padding), c.scroll)
	c.body = body
}

// scrollbars shrinks body to make room for the scrollbars the previous
// frame's content needs, and handles thumb dragging.
func (c *Container) scrollbars(body Rect) Rect {
	style := c.sh.style
	sz := style.ScrollbarSize
	cs := c.contentSize
	cs.X += style.Padding * 2
	cs.Y += style.Padding * 2

	c.PushClipRect(body)
	if cs.Y > c.body.H {
		body.W -= sz
	}
	if cs.X > c.body.W {
		body.H -= sz
	}
	c.verticalScrollbar(body, cs)
	c.horizontalScrollbar(body, cs)
	c.PopClipRect()
	return body
}

func (c *Container) verticalScrollbar(b Rect, cs Vec2) {
	style := c.sh.style
	in := c.sh.input
	maxScroll := cs.Y - b.H
	if maxScroll <= 0 || b.H <= 0 {
		c.scroll.Y = 0
		return
	}

	id := c.ids.GetIDFromStr("!scrollbary")
	base := Rect{X: b.X + b.W, Y: b.Y, W: style.ScrollbarSize, H: b.H}
	c.UpdateControl(id, base, 0)
	if c.sh.focus == id && in.MouseDown() == MouseLeft {
		c.scroll.Y += in.MouseDelta().Y * cs.Y / base.H
	}
	c.scroll.Y = clampi(c.scroll.Y, 0, maxScroll)

	c.DrawFrame(base, ColorScrollBase)
	thumb := base
	thumb.H = max(style.ThumbSize, base.H*b.H/cs.Y)
	thumb.Y += c.scroll.Y * (base.H - thumb.H) / maxScroll
	c.DrawFrame(thumb, ColorScrollThumb)

	if c.MouseOver(b) {
		c.sh.scrollTarget = c
	}
}

func (c *Container) horizontalScrollbar(b Rect, cs Vec2) {
	style := c.sh.style
	in := c.sh.input
	maxScroll := cs.X - b.W
	if maxScroll <= 0 || b.W <= 0 {
		c.scroll.X = 0
		return
	}

	id := c.ids.GetIDFromStr("!scrollbarx")
	base := Rect{X: b.X, Y: b.Y + b.H, W: b.W, H: style.ScrollbarSize}
	c.UpdateControl(id, base, 0)
	if c.sh.focus == id && in.MouseDown() == MouseLeft {
		c.scroll.X += in.MouseDelta().X * cs.X / base.W
	}
	c.scroll.X = clampi(c.scroll.X, 0, maxScroll)

	c.DrawFrame(base, ColorScrollBase)
	thumb := base
	thumb.W = max(style.ThumbSize, base.W*b.W/cs.X)
	thumb.X += c.scroll.X * (base.W - thumb.W) / maxScroll
	c.DrawFrame(thumb, ColorScrollThumb)

	if c.MouseOver(b) {
		c.sh.scrollTarget = c
	}
}
