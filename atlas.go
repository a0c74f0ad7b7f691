package microgui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// IconID names one of the atlas icons.
type IconID int

const (
	IconClose IconID = iota + 1
	IconCheck
	IconCollapsed
	IconExpanded
	IconResize
	iconCount
)

// Atlas supplies glyph and icon pixel data to renderers. Pixels are
// white with alpha coverage, so a quad's vertex color tints them.
// LastUpdateID grows every time the pixel data changes; renderers
// re-upload their texture when it differs from what they uploaded.
type Atlas interface {
	Width() int
	Height() int
	Pixels() []uint8 // Flat RGBA, Width*Height*4 bytes
	LastUpdateID() uint64

	Glyph(r rune) (src Rect, advance int)
	Icon(id IconID) Rect
	White() Rect // Opaque white region used for solid rects

	TextWidth(s string) int
	TextHeight() int
}

// Atlas layout. Row 0 holds the white texel and the icon cells, glyph
// cells follow below in 16 columns.
const (
	atlasSize      = 128
	iconCell       = 16
	glyphFirst     = 32
	glyphLast      = 126
	glyphCols      = 16
	glyphCellW     = 8
	glyphCellH     = 14
	glyphOriginY   = iconCell
	fallbackGlyph  = '?'
	iconPatternMax = iconCell - 2
)

var defaultIcons = map[IconID][]string{
	IconClose: {
		"#.....#",
		".#...#.",
		"..#.#..",
		"...#...",
		"..#.#..",
		".#...#.",
		"#.....#",
	},
	IconCheck: {
		"......#",
		".....##",
		"#...##.",
		"##.##..",
		".###...",
		"..#....",
	},
	IconCollapsed: {
		"#...",
		"##..",
		"###.",
		"####",
		"###.",
		"##..",
		"#...",
	},
	IconExpanded: {
		"#######",
		".#####.",
		"..###..",
		"...#...",
	},
	IconResize: {
		".....#",
		"....##",
		"...###",
		"..####",
		".#####",
		"######",
	},
}

// BitmapAtlas is an Atlas rendered from basicfont.Face7x13 plus a small
// set of bitmap icons.
type BitmapAtlas struct {
	img      *image.RGBA
	face     *basicfont.Face
	ascent   int
	height   int
	glyphs   [glyphLast - glyphFirst + 1]Rect
	advance  int
	icons    [iconCount]Rect
	updateID uint64
}

// NewBitmapAtlas renders the glyph and icon atlas.
func NewBitmapAtlas() *BitmapAtlas {
	face := basicfont.Face7x13
	m := face.Metrics()
	a := &BitmapAtlas{
		img:    image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize)),
		face:   face,
		ascent: m.Ascent.Ceil(),
		height: m.Height.Ceil(),
	}

	draw.Draw(a.img, image.Rect(0, 0, 3, 3), image.White, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  a.img,
		Src:  image.White,
		Face: face,
	}
	adv, _ := face.GlyphAdvance('M')
	a.advance = adv.Round()
	for r := rune(glyphFirst); r <= glyphLast; r++ {
		i := int(r - glyphFirst)
		x := (i % glyphCols) * glyphCellW
		y := glyphOriginY + (i/glyphCols)*glyphCellH
		drawer.Dot = fixed.P(x, y+a.ascent)
		drawer.DrawString(string(r))
		a.glyphs[i] = Rect{X: x, Y: y, W: a.advance, H: a.height}
	}

	for id := IconClose; id < iconCount; id++ {
		a.paintIcon(id, defaultIcons[id])
	}
	return a
}

// Width returns the atlas width in pixels.
func (a *BitmapAtlas) Width() int { return atlasSize }

// Height returns the atlas height in pixels.
func (a *BitmapAtlas) Height() int { return atlasSize }

// Pixels returns the RGBA pixel data. The slice is owned by the atlas.
func (a *BitmapAtlas) Pixels() []uint8 { return a.img.Pix }

// Image returns the atlas as an image.
func (a *BitmapAtlas) Image() *image.RGBA { return a.img }

// LastUpdateID returns the current update id.
func (a *BitmapAtlas) LastUpdateID() uint64 { return a.updateID }

// Glyph returns the atlas region and advance for r.
// Runes outside printable ASCII render as '?'.
func (a *BitmapAtlas) Glyph(r rune) (Rect, int) {
	if r < glyphFirst || r > glyphLast {
		r = fallbackGlyph
	}
	return a.glyphs[r-glyphFirst], a.advance
}

// Icon returns the atlas region holding id, or an empty rect.
func (a *BitmapAtlas) Icon(id IconID) Rect {
	if id <= 0 || id >= iconCount {
		return Rect{}
	}
	return a.icons[id]
}

// White returns a region of opaque white texels.
func (a *BitmapAtlas) White() Rect {
	return Rect{X: 1, Y: 1, W: 1, H: 1}
}

// TextWidth returns the width of s in pixels.
func (a *BitmapAtlas) TextWidth(s string) int {
	w := 0
	for _, r := range s {
		_, adv := a.Glyph(r)
		w += adv
	}
	return w
}

// TextHeight returns the line height in pixels.
func (a *BitmapAtlas) TextHeight() int { return a.height }

// SetIcon repaints an icon from a bitmap pattern ('#' set, anything else
// clear) and bumps the update id.
func (a *BitmapAtlas) SetIcon(id IconID, pattern []string) error {
	if id <= 0 || id >= iconCount {
		return fmt.Errorf("set icon %d: no such icon", id)
	}
	if len(pattern) > iconPatternMax {
		return fmt.Errorf("set icon %d: pattern taller than %d", id, iconPatternMax)
	}
	for _, row := range pattern {
		if len(row) > iconPatternMax {
			return fmt.Errorf("set icon %d: pattern wider than %d", id, iconPatternMax)
		}
	}
	a.paintIcon(id, pattern)
	a.updateID++
	return nil
}

func (a *BitmapAtlas) paintIcon(id IconID, pattern []string) {
	cell := image.Rect(int(id)*iconCell, 0, int(id+1)*iconCell, iconCell)
	draw.Draw(a.img, cell, image.Transparent, image.Point{}, draw.Src)

	w := 0
	for _, row := range pattern {
		w = max(w, len(row))
	}
	h := len(pattern)
	ox := cell.Min.X + (iconCell-w)/2
	oy := cell.Min.Y + (iconCell-h)/2
	for y, row := range pattern {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				a.img.SetRGBA(ox+x, oy+y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	a.icons[id] = Rect{X: ox, Y: oy, W: w, H: h}
}
