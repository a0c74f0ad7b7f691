package microgui

// Renderer is the interface for drawing the quads a frame produces.
// Implementations batch quads and draw them when the batch is full,
// when the atlas changed, or on Flush.
type Renderer interface {
	// PushQuad queues one textured quad. Vertices go clockwise from the
	// top-left corner.
	PushQuad(v0, v1, v2, v3 Vertex)
	// Flush draws pending quads. It does nothing when none are pending.
	Flush()
	// Clear flushes, then resets the target to width x height filled with color.
	Clear(width, height int, color uint32)
	// Atlas returns the atlas the renderer samples from.
	Atlas() Atlas
}

// replay turns a command list into quads.
func replay(r Renderer, atlas Atlas, cmds []Command) {
	aw, ah := atlas.Width(), atlas.Height()
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Kind {
		case CommandRect:
			emitQuad(r, cmd.Rect, atlas.White(), cmd.Clip, cmd.Color, aw, ah)

		case CommandText:
			x := cmd.Pos.X
			for _, ch := range cmd.Text {
				src, adv := atlas.Glyph(ch)
				dst := Rect{X: x, Y: cmd.Pos.Y, W: src.W, H: src.H}
				emitQuad(r, dst, src, cmd.Clip, cmd.Color, aw, ah)
				x += adv
			}

		case CommandIcon:
			src := atlas.Icon(cmd.Icon)
			dst := Rect{
				X: cmd.Rect.X + (cmd.Rect.W-src.W)/2,
				Y: cmd.Rect.Y + (cmd.Rect.H-src.H)/2,
				W: src.W,
				H: src.H,
			}
			emitQuad(r, dst, src, cmd.Clip, cmd.Color, aw, ah)
		}
	}
}

func emitQuad(r Renderer, dst, src, clip Rect, color uint32, aw, ah int) {
	q, ok := clipQuad(dst, src, clip, color, aw, ah)
	if !ok {
		return
	}
	r.PushQuad(q[0], q[1], q[2], q[3])
}

// clipQuad builds the vertices of dst sampling src, cut to clip. The
// texture coordinates shrink in proportion to what was cut. Quads with
// no visible area report false.
func clipQuad(dst, src, clip Rect, color uint32, aw, ah int) ([4]Vertex, bool) {
	var q [4]Vertex
	if dst.Empty() {
		return q, false
	}
	c := dst.Intersect(clip)
	if c.Empty() {
		return q, false
	}

	fw, fh := float32(dst.W), float32(dst.H)
	tx0 := float32(src.X) + float32(c.X-dst.X)/fw*float32(src.W)
	tx1 := float32(src.X) + float32(c.X+c.W-dst.X)/fw*float32(src.W)
	ty0 := float32(src.Y) + float32(c.Y-dst.Y)/fh*float32(src.H)
	ty1 := float32(src.Y) + float32(c.Y+c.H-dst.Y)/fh*float32(src.H)

	u0, u1 := tx0/float32(aw), tx1/float32(aw)
	v0, v1 := ty0/float32(ah), ty1/float32(ah)
	x0, y0 := float32(c.X), float32(c.Y)
	x1, y1 := float32(c.X+c.W), float32(c.Y+c.H)

	q[0] = Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color}
	q[1] = Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color}
	q[2] = Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color}
	q[3] = Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color}
	return q, true
}
