package microgui

import (
	"fmt"
	"sync"
)

// Option is a set of flags that change how a window or control behaves.
type Option uint32

const (
	OptAlignCenter Option = 1 << iota
	OptAlignRight
	OptNoInteract
	OptNoFrame
	OptNoResize
	OptNoScroll
	OptNoClose
	OptNoTitle
	OptHoldFocus
	OptAutoSize
	OptExpanded
)

// popupOptions are added to the options of every popup.
const popupOptions = OptAutoSize | OptNoResize | OptNoScroll | OptNoTitle

// Window sizes never go below these when resized by dragging.
const (
	MinWindowWidth  = 96
	MinWindowHeight = 64
)

// WindowType distinguishes regular windows from popups.
type WindowType uint8

const (
	TypeWindow WindowType = iota
	TypePopup
)

func (t WindowType) String() string {
	if t == TypePopup {
		return "popup"
	}
	return "window"
}

// Activity is the open/closed state of a window.
type Activity uint8

const (
	ActivityOpen Activity = iota
	ActivityClosed
)

func (a Activity) String() string {
	if a == ActivityClosed {
		return "closed"
	}
	return "open"
}

// Window is a named top-level container with chrome. Windows start Open,
// popups start Closed. Only the application opens them; the close
// button and, for popups, a press elsewhere close them.
type Window struct {
	Type     WindowType
	Activity Activity

	c *Container
	// Frame the window was last drawn in.
	drawnFrame uint64
}

// Container returns the window's container.
func (w *Window) Container() *Container { return w.c }

// IsOpen reports whether the window is drawn.
func (w *Window) IsOpen() bool { return w.Activity == ActivityOpen }

func (w *Window) setActivity(a Activity, reason string) {
	if w.Activity == a {
		return
	}
	w.Activity = a
	if guiVerbose() {
		w.c.sh.logger.Debug("window activity changed", "name", w.c.name, "type", w.Type, "activity", a, "reason", reason)
	}
}

// begin draws the chrome, handles dragging, closing and resizing,
// pushes the container body and clips to it.
func (w *Window) begin(opt Option) {
	c := w.c
	sh := c.sh
	style := sh.style
	in := sh.input
	r := c.rect
	body := r

	if opt&OptNoFrame == 0 {
		c.DrawFrame(r, ColorWindowBG)
	}

	if opt&OptNoTitle == 0 {
		tr := r
		tr.H = style.TitleHeight
		c.DrawFrame(tr, ColorTitleBG)

		id := c.ids.GetIDFromStr("!title")
		c.UpdateControl(id, tr, opt)
		c.DrawControlText(c.name, tr, ColorTitleText, opt)
		if id == sh.focus && in.MouseDown().IsLeft() {
			d := in.MouseDelta()
			c.rect.X += d.X
			c.rect.Y += d.Y
		}
		body.Y += tr.H
		body.H -= tr.H

		if opt&OptNoClose == 0 {
			id := c.ids.GetIDFromStr("!close")
			cr := Rect{X: tr.X + tr.W - tr.H, Y: tr.Y, W: tr.H, H: tr.H}
			c.DrawIcon(IconClose, cr, style.Colors[ColorTitleText])
			c.UpdateControl(id, cr, opt)
			if in.MousePressed().IsLeft() && id == sh.focus {
				w.setActivity(ActivityClosed, "close button")
			}
		}
	}

	c.PushContainerBody(body, opt)

	if opt&(OptNoResize|OptAutoSize) == 0 {
		sz := style.TitleHeight
		id := c.ids.GetIDFromStr("!resize")
		rr := Rect{X: r.X + r.W - sz, Y: r.Y + r.H - sz, W: sz, H: sz}
		c.DrawIcon(IconResize, rr, style.Colors[ColorTitleBG])
		c.UpdateControl(id, rr, opt)
		if id == sh.focus && in.MouseDown().IsLeft() {
			d := in.MouseDelta()
			c.rect.W = max(MinWindowWidth, c.rect.W+d.X)
			c.rect.H = max(MinWindowHeight, c.rect.H+d.Y)
		}
	}

	if opt&OptAutoSize != 0 {
		lb := c.layout.Top().Body
		c.rect.W = c.contentSize.X + (c.rect.W - lb.W)
		c.rect.H = c.contentSize.Y + (c.rect.H - lb.H)
	}

	if w.Type == TypePopup && !in.MousePressed().IsNone() && !c.InHoverRoot() {
		w.setActivity(ActivityClosed, "pressed outside")
	}

	c.PushClipRect(c.body)
}

// end pops the body clip rect pushed by begin.
func (w *Window) end() {
	w.c.PopClipRect()
}

// Close closes the window that owns the container, for example from a
// button inside a popup. The window stops being drawn next frame.
func (c *Container) Close() {
	if c.owner != nil {
		c.owner.setActivity(ActivityClosed, "closed by application")
	}
}

// WindowHandle is the shared reference to a window held by the canvas
// registry and by application code. Access is exclusive: borrowing a
// window that is already borrowed panics with ErrWindowBorrowed.
type WindowHandle struct {
	mu   sync.Mutex
	name string
	w    *Window
}

func newWindowHandle(w *Window) *WindowHandle {
	return &WindowHandle{name: w.c.name, w: w}
}

func (h *WindowHandle) borrow() *Window {
	if !h.mu.TryLock() {
		panic(fmt.Errorf("window %q: %w", h.name, ErrWindowBorrowed))
	}
	return h.w
}

func (h *WindowHandle) release() {
	h.mu.Unlock()
}

// With borrows the window for the duration of fn.
func (h *WindowHandle) With(fn func(w *Window)) {
	w := h.borrow()
	defer h.release()
	fn(w)
}

// Name returns the window name. It never changes, so no borrow is taken.
func (h *WindowHandle) Name() string { return h.name }

// IsOpen reports whether the window is Open.
func (h *WindowHandle) IsOpen() bool {
	w := h.borrow()
	defer h.release()
	return w.IsOpen()
}

// Open makes the window Open.
func (h *WindowHandle) Open() {
	w := h.borrow()
	defer h.release()
	w.setActivity(ActivityOpen, "opened by application")
}

// Close makes the window Closed.
func (h *WindowHandle) Close() {
	w := h.borrow()
	defer h.release()
	w.setActivity(ActivityClosed, "closed by application")
}

// Type returns whether the handle refers to a window or a popup.
func (h *WindowHandle) Type() WindowType {
	w := h.borrow()
	defer h.release()
	return w.Type
}

// Rect returns the outer rect.
func (h *WindowHandle) Rect() Rect {
	w := h.borrow()
	defer h.release()
	return w.c.rect
}

// SetRect moves or resizes the window.
func (h *WindowHandle) SetRect(r Rect) {
	w := h.borrow()
	defer h.release()
	w.c.rect = r
}

// ZIndex returns the stacking order.
func (h *WindowHandle) ZIndex() int {
	w := h.borrow()
	defer h.release()
	return w.c.zIndex
}
