// Package software provides a CPU backend for the microgui package that
// rasterizes quads into an *image.RGBA. It needs no GPU, which makes it
// suitable for tests, screenshots and headless tools.
package software

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/go-theft-auto/microgui"
)

// Renderer implements microgui.Renderer on an *image.RGBA.
type Renderer struct {
	*microgui.QuadBatcher

	target  *image.RGBA
	texture *image.RGBA // Copy of the atlas as of the last upload
	mask    *image.Alpha
	uploads int
}

// New creates a renderer sampling from atlas.
func New(atlas microgui.Atlas) *Renderer {
	r := &Renderer{
		target: image.NewRGBA(image.Rect(0, 0, 0, 0)),
		mask:   image.NewAlpha(image.Rect(0, 0, 0, 0)),
	}
	r.QuadBatcher = microgui.NewQuadBatcher(atlas, r)
	return r
}

// Image returns the render target.
func (r *Renderer) Image() *image.RGBA { return r.target }

// Uploads returns how many times the atlas was copied.
func (r *Renderer) Uploads() int { return r.uploads }

// Clear flushes, resizes the target if needed and fills it with c.
func (r *Renderer) Clear(width, height int, c uint32) {
	r.QuadBatcher.Clear()
	if b := r.target.Bounds(); b.Dx() != width || b.Dy() != height {
		r.target = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	draw.Draw(r.target, r.target.Bounds(), image.NewUniform(toColor(c)), image.Point{}, draw.Src)
}

// UploadAtlas copies the atlas pixels into the renderer's texture.
func (r *Renderer) UploadAtlas(a microgui.Atlas) {
	w, h := a.Width(), a.Height()
	if r.texture == nil || r.texture.Bounds().Dx() != w || r.texture.Bounds().Dy() != h {
		r.texture = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	copy(r.texture.Pix, a.Pixels())
	r.uploads++
}

// DrawBatch rasterizes axis-aligned quads. Each group of four vertices
// is one quad; the indices always describe two triangles over it.
func (r *Renderer) DrawBatch(vertices []microgui.Vertex, _ []uint16) {
	if r.texture == nil {
		return
	}
	tb := r.texture.Bounds()
	for i := 0; i+3 < len(vertices); i += 4 {
		v0, v2 := vertices[i], vertices[i+2]
		dr := image.Rect(
			int(v0.Pos[0]), int(v0.Pos[1]),
			int(v2.Pos[0]), int(v2.Pos[1]),
		)
		if dr.Empty() {
			continue
		}
		sr := image.Rect(
			int(v0.TexCoord[0]*float32(tb.Dx())+0.5), int(v0.TexCoord[1]*float32(tb.Dy())+0.5),
			int(v2.TexCoord[0]*float32(tb.Dx())+0.5), int(v2.TexCoord[1]*float32(tb.Dy())+0.5),
		)
		if sr.Empty() {
			continue
		}
		r.drawQuad(dr, sr, toColor(v0.Color))
	}
}

// drawQuad scales the atlas coverage of sr into a mask the size of dr
// and composites the vertex color through it.
func (r *Renderer) drawQuad(dr, sr image.Rectangle, c color.NRGBA) {
	mr := image.Rect(0, 0, dr.Dx(), dr.Dy())
	if !r.mask.Bounds().Eq(mr) {
		r.mask = image.NewAlpha(mr)
	}
	draw.NearestNeighbor.Scale(r.mask, mr, r.texture, sr, draw.Src, nil)
	draw.DrawMask(r.target, dr, image.NewUniform(c), image.Point{}, r.mask, image.Point{}, draw.Over)
}

func toColor(c uint32) color.NRGBA {
	cr, cg, cb, ca := microgui.UnpackRGBA(c)
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}
}
