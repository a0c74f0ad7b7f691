// Command gen renders sample windows with the software backend and saves
// JPEG screenshots to doc/imgs/. It needs no display or GPU.
//
// Usage:
//
//	go run ./doc/gen/
//	go run ./doc/gen/ -theme theme.yaml -out /tmp/shots
package main

import (
	"flag"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/microgui"
	"github.com/go-theft-auto/microgui/backend/software"
)

func main() {
	themePath := flag.String("theme", "", "YAML theme applied over the GTA style")
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	flag.Parse()

	if err := run(*themePath, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single screenshot to capture.
type screenshot struct {
	name   string                        // filename without extension
	width  int                           // image width
	height int                           // image height
	draw   func(ui *microgui.Canvas)     // declares the windows of one frame
	input  func(in *microgui.InputState) // optional input applied before each frame
	frames int                           // frames to render (0 = default 3)
}

func run(themePath, outDir string) error {
	style := microgui.GTAStyle()
	if themePath != "" {
		var err error
		style, err = microgui.LoadStyleFile(themePath, style)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(style, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(style microgui.Style, s screenshot, outDir string) error {
	// Fresh canvas per screenshot to avoid state leaking between captures.
	renderer := software.New(microgui.NewBitmapAtlas())
	ui := microgui.New(renderer, microgui.WithStyle(style))

	frames := 3
	if s.frames > 0 {
		frames = s.frames
	}
	for i := 0; i < frames; i++ {
		if s.input != nil {
			s.input(ui.Input())
		}
		ui.Frame(func() { s.draw(ui) })
		ui.Render(s.width, s.height, microgui.RGBA(30, 30, 36, 255))
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := jpeg.Encode(f, renderer.Image(), &jpeg.Options{Quality: 92}); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func buildScreenshots() []screenshot {
	volume := 0.35
	mute := true

	return []screenshot{
		{
			name: "window", width: 320, height: 220,
			draw: func(ui *microgui.Canvas) {
				h := ui.WindowHandle("Window", microgui.NewRect(10, 10, 300, 200))
				ui.Window(h, 0, func(c *microgui.Container) {
					c.Label("A label")
					c.Layout().Row([]int{90, 90, -1}, 0)
					c.Button("One", microgui.OptAlignCenter)
					c.Button("Two", microgui.OptAlignCenter)
					c.Button("Three", microgui.OptAlignCenter)
					c.Layout().Row([]int{-1}, 0)
					c.Checkbox("Mute", &mute)
					c.Slider("volume", &volume, 0, 1, 0.05)
				})
			},
		},
		{
			name: "text", width: 260, height: 200,
			draw: func(ui *microgui.Canvas) {
				h := ui.WindowHandle("Text", microgui.NewRect(10, 10, 240, 180))
				ui.Window(h, 0, func(c *microgui.Container) {
					c.Layout().Row([]int{-1}, 0)
					c.Text("Text wraps at word boundaries to the width of the window body.\nNewlines force a break.")
				})
			},
		},
		{
			name: "scroll", width: 260, height: 200,
			draw: func(ui *microgui.Canvas) {
				h := ui.WindowHandle("Scroll", microgui.NewRect(10, 10, 240, 180))
				ui.Window(h, 0, func(c *microgui.Container) {
					lc := c.ListClipper(1000, 0)
					for i := lc.Start; i < lc.End; i++ {
						c.Label(fmt.Sprintf("Row %d", i))
					}
					lc.Finish()
				})
			},
		},
		{
			name: "overlap", width: 360, height: 260,
			draw: func(ui *microgui.Canvas) {
				back := ui.WindowHandle("Back", microgui.NewRect(10, 10, 220, 160))
				front := ui.WindowHandle("Front", microgui.NewRect(120, 80, 220, 160))
				ui.Window(back, 0, func(c *microgui.Container) { c.Label("Behind") })
				ui.Window(front, 0, func(c *microgui.Container) { c.Label("On top") })
			},
		},
		{
			name: "tree", width: 260, height: 220,
			input: func(in *microgui.InputState) {
				// Pointer over the nested node's row.
				in.SetMousePos(80, 80)
			},
			draw: func(ui *microgui.Canvas) {
				h := ui.WindowHandle("Tree", microgui.NewRect(10, 10, 240, 200))
				ui.Window(h, microgui.OptNoResize, func(c *microgui.Container) {
					c.TreeNode("Node", microgui.OptExpanded, func() {
						c.Label("Child")
						c.TreeNode("Nested", 0, func() {
							c.Label("Grandchild")
						})
					})
				})
			},
		},
	}
}
