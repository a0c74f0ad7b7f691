package microgui

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
)

// Canvas owns every window, the shared input snapshot and style, and
// the z-order. A frame is Begin, any number of Window/Popup calls, End,
// then Render.
type Canvas struct {
	renderer Renderer
	style    Style
	input    *InputState
	sh       *shared
	logger   *slog.Logger

	handles map[string]*WindowHandle
	drawn   []*WindowHandle // Windows drawn this frame
	prev    []*WindowHandle // Windows drawn last frame, ascending z
	lastZ   int

	stores  []Cleanable
	frame   uint64
	inFrame bool
	depth   int // Window calls in progress
}

// CanvasOption configures a Canvas instance.
type CanvasOption func(*Canvas)

// WithStyle sets the canvas style.
func WithStyle(style Style) CanvasOption {
	return func(c *Canvas) { c.style = style }
}

// WithAtlas sets the atlas used for text measurement. By default the
// renderer's atlas is used.
func WithAtlas(a Atlas) CanvasOption {
	return func(c *Canvas) { c.sh.atlas = a }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *slog.Logger) CanvasOption {
	return func(c *Canvas) { c.logger = l }
}

// New creates a canvas drawing through renderer. A nil renderer gives a
// canvas that lays out and hit-tests but draws nothing.
func New(renderer Renderer, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		renderer: renderer,
		style:    DefaultStyle(),
		input:    NewInputState(),
		logger:   guiLogger,
		handles:  make(map[string]*WindowHandle),
	}
	c.sh = &shared{
		style: &c.style,
		input: c.input,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sh.atlas == nil && renderer != nil {
		c.sh.atlas = renderer.Atlas()
	}
	if c.sh.atlas == nil {
		c.sh.atlas = NewBitmapAtlas()
	}
	c.sh.logger = c.logger
	return c
}

// Input returns the input snapshot. Feed it between End and Begin.
func (c *Canvas) Input() *InputState { return c.input }

// Style returns the current style.
func (c *Canvas) Style() Style { return c.style }

// SetStyle replaces the style. It must not be called inside a frame.
func (c *Canvas) SetStyle(style Style) {
	if c.inFrame {
		panic(fmt.Errorf("SetStyle: %w", ErrFrameActive))
	}
	c.style = style
}

// Atlas returns the atlas used for text measurement.
func (c *Canvas) Atlas() Atlas { return c.sh.atlas }

// FrameCount returns the number of frames begun so far.
func (c *Canvas) FrameCount() uint64 { return c.frame }

// Focus returns the focused control, 0 if none.
func (c *Canvas) Focus() ID { return c.sh.focus }

// Hover returns the hovered control, 0 if none.
func (c *Canvas) Hover() ID { return c.sh.hover }

// HoverRoot returns the name of the window whose controls receive the
// pointer this frame, or "" if the pointer is over no window.
func (c *Canvas) HoverRoot() string {
	if c.sh.hoverRoot == nil {
		return ""
	}
	return c.sh.hoverRoot.name
}

// RegisterStore adds a store that is cleaned at every Begin.
func (c *Canvas) RegisterStore(s Cleanable) {
	c.stores = append(c.stores, s)
}

// WindowHandle returns the window called name, creating it with rect
// initial on first use. A new window is Open and on top.
func (c *Canvas) WindowHandle(name string, initial Rect) *WindowHandle {
	return c.handle(name, TypeWindow, initial)
}

// PopupHandle returns the popup called name, creating it Closed on first use.
func (c *Canvas) PopupHandle(name string) *WindowHandle {
	return c.handle(name, TypePopup, Rect{})
}

func (c *Canvas) handle(name string, t WindowType, initial Rect) *WindowHandle {
	if h, ok := c.handles[name]; ok {
		return h
	}

	w := &Window{Type: t, c: newContainer(name, initial, c.sh)}
	w.c.owner = w
	if t == TypePopup {
		w.Activity = ActivityClosed
	}
	c.lastZ++
	w.c.zIndex = c.lastZ

	h := newWindowHandle(w)
	c.handles[name] = h
	if guiVerbose() {
		c.logger.Debug("window created", "name", name, "type", t, "rect", initial, "z", w.c.zIndex)
	}
	return h
}

// Begin starts a frame: computes the mouse delta, picks the hover root
// from last frame's windows and resets per-frame bookkeeping.
func (c *Canvas) Begin() {
	if c.inFrame {
		panic(fmt.Errorf("Begin: %w", ErrFrameActive))
	}
	c.inFrame = true
	c.frame++
	for _, s := range c.stores {
		s.Cleanup(c.frame)
	}

	c.input.prelude()
	c.sh.updatedFocus = false
	c.sh.scrollTarget = nil
	c.sh.hoverRoot = c.pickHoverRoot()
	c.drawn = c.drawn[:0]
}

// pickHoverRoot returns the topmost window drawn last frame that is
// still open and under the pointer. It reads h.w directly: Begin runs
// with no Window call in progress, so no handle is borrowed.
func (c *Canvas) pickHoverRoot() *Container {
	p := c.input.MousePos()
	var root *Container
	for _, h := range c.prev {
		w := h.w
		if !w.IsOpen() || !w.c.rect.Contains(p) {
			continue
		}
		if root == nil || w.c.zIndex > root.zIndex {
			root = w.c
		}
	}
	return root
}

// Window draws h for this frame if it is Open. fn declares the window
// contents. It reports whether the window was drawn.
func (c *Canvas) Window(h *WindowHandle, opt Option, fn func(*Container)) bool {
	if !c.inFrame {
		panic(fmt.Errorf("window %q: %w", h.name, ErrNotInFrame))
	}

	w := h.borrow()
	defer h.release()
	if !w.IsOpen() {
		return false
	}
	if w.drawnFrame == c.frame {
		panic(fmt.Errorf("window %q: %w", h.name, ErrWindowRedeclared))
	}
	w.drawnFrame = c.frame
	if w.Type == TypePopup {
		opt |= popupOptions
	}

	cnt := w.c
	c.depth++
	cnt.prepare()
	w.begin(opt)
	if fn != nil {
		fn(cnt)
	}
	w.end()
	cnt.finish()
	c.depth--

	c.drawn = append(c.drawn, h)
	return true
}

// Popup draws the popup h for this frame if it is Open.
func (c *Canvas) Popup(h *WindowHandle, fn func(*Container)) bool {
	return c.Window(h, 0, fn)
}

// OpenPopup opens h at the pointer, raises it, and makes it the hover
// root for the rest of the frame so the press that opened it does not
// dismiss it.
func (c *Canvas) OpenPopup(h *WindowHandle) {
	w := h.borrow()
	defer h.release()

	p := c.input.MousePos()
	w.c.rect = Rect{X: p.X, Y: p.Y, W: 1, H: 1}
	w.setActivity(ActivityOpen, "popup opened")
	c.raise(w.c)
	c.sh.hoverRoot = w.c
}

// BringToFront puts h above every other window.
func (c *Canvas) BringToFront(h *WindowHandle) {
	w := h.borrow()
	defer h.release()
	c.raise(w.c)
}

func (c *Canvas) raise(cnt *Container) {
	c.lastZ++
	cnt.zIndex = c.lastZ
	if guiVerbose() {
		c.logger.Debug("window raised", "name", cnt.name, "z", cnt.zIndex)
	}
}

// End finishes the frame: applies the wheel to the scroll target,
// drops focus no control claimed, raises the window a press landed on,
// and orders the drawn windows by z.
func (c *Canvas) End() {
	if !c.inFrame {
		panic(fmt.Errorf("End: %w", ErrNotInFrame))
	}
	if c.depth != 0 {
		panic(fmt.Errorf("End with %d windows open: %w", c.depth, ErrFrameActive))
	}

	if t := c.sh.scrollTarget; t != nil {
		d := c.input.ScrollDelta()
		t.scroll.X += d.X
		t.scroll.Y += d.Y
	}

	if !c.sh.updatedFocus && c.sh.focus != 0 {
		if guiVerbose() {
			c.logger.Debug("focus dropped", "id", c.sh.focus)
		}
		c.sh.focus = 0
	}

	if root := c.sh.hoverRoot; root != nil && !c.input.MousePressed().IsNone() &&
		root.zIndex < c.lastZ && root.zIndex >= 0 {
		c.raise(root)
	}

	// depth is 0 here, so no handle is borrowed and h.w is safe to read.
	slices.SortStableFunc(c.drawn, func(a, b *WindowHandle) int {
		return cmp.Compare(a.w.c.zIndex, b.w.c.zIndex)
	})
	c.prev = append(c.prev[:0], c.drawn...)

	c.input.epilogue()
	c.inFrame = false
}

// Frame runs fn between Begin and End.
func (c *Canvas) Frame(fn func()) {
	c.Begin()
	fn()
	c.End()
}

// Windows returns the windows drawn in the last frame in ascending z
// order. Valid after End.
func (c *Canvas) Windows() []*WindowHandle {
	return slices.Clone(c.drawn)
}

// Render clears the target and replays every drawn window, bottom to top.
func (c *Canvas) Render(width, height int, clearColor uint32) {
	if c.renderer == nil {
		return
	}
	if c.inFrame {
		panic(fmt.Errorf("Render: %w", ErrFrameActive))
	}

	c.renderer.Clear(width, height, clearColor)
	atlas := c.renderer.Atlas()
	for _, h := range c.drawn {
		w := h.borrow()
		replay(c.renderer, atlas, w.c.commands)
		h.release()
	}
	c.renderer.Flush()
}
