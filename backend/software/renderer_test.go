package software_test

import (
	"image/color"
	"testing"

	"github.com/go-theft-auto/microgui"
	"github.com/go-theft-auto/microgui/backend/software"
)

func renderWindow(t *testing.T, r *software.Renderer, clear uint32) *microgui.Canvas {
	t.Helper()
	ui := microgui.New(r)
	h := ui.WindowHandle("Win", microgui.NewRect(10, 10, 100, 80))
	ui.Frame(func() {
		ui.Window(h, 0, nil)
	})
	ui.Render(200, 150, clear)
	return ui
}

func TestRenderer_DrawsWindow(t *testing.T) {
	r := software.New(microgui.NewBitmapAtlas())
	clear := microgui.RGBA(1, 2, 3, 255)
	renderWindow(t, r, clear)

	img := r.Image()
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("expected a 200x150 target, got %v", b)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"clear color", 5, 5, color.RGBA{R: 1, G: 2, B: 3, A: 255}},
		{"window body", 50, 70, color.RGBA{R: 50, G: 50, B: 50, A: 255}},
		{"title bar", 60, 12, color.RGBA{R: 25, G: 25, B: 25, A: 255}},
		{"border", 9, 50, color.RGBA{R: 25, G: 25, B: 25, A: 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s at (%d,%d) = %+v, want %+v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderer_DrawsTitleText(t *testing.T) {
	r := software.New(microgui.NewBitmapAtlas())
	renderWindow(t, r, microgui.ColorBlack)

	// The title "Win" starts after the padding, vertically centered in the bar.
	text := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	lit := 0
	img := r.Image()
	for y := 10; y < 34; y++ {
		for x := 15; x < 36; x++ {
			if img.RGBAAt(x, y) == text {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected title glyph pixels")
	}
}

func TestRenderer_UploadsAtlasOnce(t *testing.T) {
	r := software.New(microgui.NewBitmapAtlas())
	renderWindow(t, r, microgui.ColorBlack)
	renderWindow(t, r, microgui.ColorBlack)

	if r.Uploads() != 1 {
		t.Errorf("expected a single atlas upload, got %d", r.Uploads())
	}
	if r.Pending() != 0 {
		t.Errorf("expected nothing pending after Render, got %d", r.Pending())
	}
}

func TestRenderer_ReuploadsChangedAtlas(t *testing.T) {
	atlas := microgui.NewBitmapAtlas()
	r := software.New(atlas)
	renderWindow(t, r, microgui.ColorBlack)

	if err := atlas.SetIcon(microgui.IconClose, []string{"#"}); err != nil {
		t.Fatal(err)
	}
	renderWindow(t, r, microgui.ColorBlack)
	if r.Uploads() != 2 {
		t.Errorf("expected a second upload after the atlas changed, got %d", r.Uploads())
	}
}
