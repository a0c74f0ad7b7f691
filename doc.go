/*
Package microgui is an immediate-mode GUI core built around windows.

# Overview

The application redeclares its windows and widgets every frame; the
Canvas keeps only the state that must survive between frames (window
rects, scroll offsets, z-order, focus and hover) and turns what was
declared into a renderer-agnostic stream of clipped quads.

# Quick Start

	atlas := microgui.NewBitmapAtlas()
	renderer, _ := opengl.NewRenderer(atlas, 1280, 720)
	ui := microgui.New(renderer, microgui.WithStyle(microgui.GTAStyle()))
	input := opengl.NewGLFWInputAdapter(window, ui.Input())

	settings := ui.WindowHandle("Settings", microgui.NewRect(40, 40, 300, 200))

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    input.Update()

	    ui.Frame(func() {
	        ui.Window(settings, 0, func(c *microgui.Container) {
	            c.Label("Hello World")
	            if c.Button("Click Me", microgui.OptAlignCenter) {
	                // Button was clicked
	            }
	        })
	    })

	    ui.Render(1280, 720, microgui.RGBA(30, 30, 36, 255))
	    window.SwapBuffers()
	}

# Frame Lifecycle

  - Input is written to Canvas.Input() between frames.
  - Canvas.Begin computes the mouse delta and picks the hover root: the
    topmost window drawn last frame that is under the pointer. Only
    controls of the hover root can be hovered or focused.
  - Canvas.Window borrows the window, resets its command list, draws the
    chrome, runs the body callback and finishes the container.
  - Canvas.End applies the wheel to the scrollable body under the
    pointer, drops focus that no control claimed, raises the window a
    press landed on and orders the drawn windows by z.
  - Canvas.Render replays the drawn windows bottom to top.

# Windows and Popups

Windows are created Open on first reference and stay in the registry.
The title bar drags the window, the cross closes it, the bottom-right
handle resizes it (never below 96x64). Popups are created Closed; they
open at the pointer with Canvas.OpenPopup, size themselves to their
content and close on any press outside them.

A WindowHandle may be borrowed by one caller at a time. Calling a handle
method while Canvas.Window holds the same handle panics with
ErrWindowBorrowed.

# Identifiers

Widget IDs are FNV-1a hashes of the label folded into the seed on top of
the container's id stack. Two widgets with the same label in the same
scope share an ID; use IDs().PushID to scope repeated labels.

# Layout

	c.Layout().Row([]int{80, -1}, 0)  // 80px cell, then a cell filling the rest
	c.Layout().RowItems(3, []int{60}, 24) // three 60px cells, 24px high
	c.Layout().BeginColumn()
	// ...
	c.Layout().EndColumn()

A width or height of 0 means the style default, a negative value fills
the remaining space minus its magnitude.

# Widgets

	c.Label(text)
	c.Text(text)                           // word-wrapped
	c.Button(label, opt) bool              // pressed this frame
	c.Checkbox(label, &state) bool         // changed
	c.Slider(label, &v, lo, hi, step) bool // changed
	c.Header(label, opt) bool              // expanded
	c.TreeNode(label, opt, func() { ... }) // indented, runs while expanded

Long lists of equal-height rows only declare what is visible:

	lc := c.ListClipper(len(items), 0)
	for i := lc.Start; i < lc.End; i++ {
	    c.Label(items[i])
	}
	lc.Finish()

Custom widgets call Container.UpdateControl with their ID and rect and
draw with the Draw* methods.

# Themes

Styles can be loaded from YAML over a base style:

	colors:
	  window_bg: "#202020f0"
	  title_text: "#ffc800"
	padding: 6
	title_height: 26

See LoadStyle and LoadStyleFile.

# Backends

  - backend/opengl: go-gl 4.1 core renderer and GLFW input adapter.
  - backend/software: CPU renderer into an *image.RGBA.

Both batch through QuadBatcher, which flushes when the buffers fill up
or the atlas changed.
*/
package microgui
