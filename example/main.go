// Example demonstrates a few windows, a popup and the basic widgets.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -theme theme.yaml -v
//
// The example creates a GLFW window, initializes the OpenGL renderer,
// and draws two overlapping windows and a context popup.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/microgui"
	"github.com/go-theft-auto/microgui/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "microgui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	themePath := flag.String("theme", "", "YAML theme applied over the GTA style")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	microgui.SetVerbose(*verbose)

	if err := run(*themePath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(themePath string) error {
	style := microgui.GTAStyle()
	if themePath != "" {
		var err error
		style, err = microgui.LoadStyleFile(themePath, style)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas := microgui.NewBitmapAtlas()
	renderer, err := opengl.NewRenderer(atlas, windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	ui := microgui.New(renderer, microgui.WithStyle(style))
	input := opengl.NewGLFWInputAdapter(window, ui.Input())

	demo := ui.WindowHandle("Demo", microgui.NewRect(40, 40, 300, 260))
	log := ui.WindowHandle("Log", microgui.NewRect(240, 160, 320, 220))
	menu := ui.PopupHandle("Menu")

	// Application state.
	clicks := 0
	volume := 0.5
	mute := false
	var lines []string
	shown := 0 // Log lines the Log window has scrolled to

	for !window.ShouldClose() {
		glfw.PollEvents()
		input.Update()

		ui.Frame(func() {
			ui.Window(demo, 0, func(c *microgui.Container) {
				c.Label("Hello from microgui!")
				c.Layout().Row([]int{120, -1}, 0)
				if c.Button(fmt.Sprintf("Click me (%d)", clicks), microgui.OptAlignCenter) {
					clicks++
					lines = append(lines, fmt.Sprintf("clicked %d times", clicks))
				}
				if c.Button("Menu", microgui.OptAlignCenter) {
					ui.OpenPopup(menu)
				}
				c.Layout().Row([]int{-1}, 0)
				if c.Checkbox("Mute", &mute) {
					lines = append(lines, fmt.Sprintf("mute: %v", mute))
				}
				c.Slider("volume", &volume, 0, 1, 0.05)
				if c.Header("About", 0) {
					c.Text("Windows can be dragged by their title bar, resized from the bottom-right corner and closed with the cross.")
				}
			})

			ui.Window(log, 0, func(c *microgui.Container) {
				lc := c.ListClipper(len(lines), 0)
				for i := lc.Start; i < lc.End; i++ {
					c.Label(lines[i])
				}
				if len(lines) != shown {
					lc.ScrollTo(len(lines) - 1)
					shown = len(lines)
				}
				lc.Finish()
			})

			ui.Popup(menu, func(c *microgui.Container) {
				if c.Button("Clear log", 0) {
					lines = lines[:0]
					c.Close()
				}
				if c.Button("Reopen Log", 0) {
					log.Open()
					c.Close()
				}
			})
		})

		w, h := window.GetFramebufferSize()
		ui.Render(w, h, microgui.RGBA(30, 30, 36, 255))

		window.SwapBuffers()
	}

	return nil
}
