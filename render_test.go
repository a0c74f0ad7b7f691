package microgui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type quadRecorder struct {
	atlas Atlas
	quads [][4]Vertex
}

func (r *quadRecorder) PushQuad(v0, v1, v2, v3 Vertex) {
	r.quads = append(r.quads, [4]Vertex{v0, v1, v2, v3})
}

func (r *quadRecorder) Flush() {}

func (r *quadRecorder) Clear(int, int, uint32) {}

func (r *quadRecorder) Atlas() Atlas {
	return r.atlas
}

func TestClipQuad_Unclipped(t *testing.T) {
	q, ok := clipQuad(NewRect(10, 20, 30, 40), NewRect(0, 0, 64, 64), unclippedRect, ColorWhite, 128, 128)
	if !ok {
		t.Fatal("expected visible quad")
	}
	want := [4]Vertex{
		{Pos: [2]float32{10, 20}, TexCoord: [2]float32{0, 0}, Color: ColorWhite},
		{Pos: [2]float32{40, 20}, TexCoord: [2]float32{0.5, 0}, Color: ColorWhite},
		{Pos: [2]float32{40, 60}, TexCoord: [2]float32{0.5, 0.5}, Color: ColorWhite},
		{Pos: [2]float32{10, 60}, TexCoord: [2]float32{0, 0.5}, Color: ColorWhite},
	}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Errorf("quad (-want +got):\n%s", diff)
	}
}

func TestClipQuad_ShrinksTexCoords(t *testing.T) {
	q, ok := clipQuad(NewRect(0, 0, 10, 10), NewRect(20, 30, 10, 10), NewRect(5, 0, 10, 10), ColorBlack, 128, 128)
	if !ok {
		t.Fatal("expected visible quad")
	}
	want := [4]Vertex{
		{Pos: [2]float32{5, 0}, TexCoord: [2]float32{25.0 / 128, 30.0 / 128}, Color: ColorBlack},
		{Pos: [2]float32{10, 0}, TexCoord: [2]float32{30.0 / 128, 30.0 / 128}, Color: ColorBlack},
		{Pos: [2]float32{10, 10}, TexCoord: [2]float32{30.0 / 128, 40.0 / 128}, Color: ColorBlack},
		{Pos: [2]float32{5, 10}, TexCoord: [2]float32{25.0 / 128, 40.0 / 128}, Color: ColorBlack},
	}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Errorf("quad (-want +got):\n%s", diff)
	}
}

func TestClipQuad_Hidden(t *testing.T) {
	if _, ok := clipQuad(NewRect(0, 0, 10, 10), NewRect(0, 0, 1, 1), NewRect(20, 20, 5, 5), ColorWhite, 128, 128); ok {
		t.Error("expected quad outside the clip to be dropped")
	}
	if _, ok := clipQuad(NewRect(0, 0, 0, 10), NewRect(0, 0, 1, 1), unclippedRect, ColorWhite, 128, 128); ok {
		t.Error("expected empty quad to be dropped")
	}
}

func TestReplay_TextOneQuadPerGlyph(t *testing.T) {
	atlas := NewBitmapAtlas()
	rec := &quadRecorder{atlas: atlas}

	replay(rec, atlas, []Command{{Kind: CommandText, Pos: Vec2{}, Clip: unclippedRect, Color: ColorWhite, Text: "AB"}})
	if len(rec.quads) != 2 {
		t.Fatalf("expected 2 quads, got %d", len(rec.quads))
	}
	if x := rec.quads[1][0].Pos[0]; x != 7 {
		t.Errorf("expected second glyph at x=7, got %v", x)
	}

	rec.quads = nil
	replay(rec, atlas, []Command{{Kind: CommandText, Pos: Vec2{}, Clip: NewRect(0, 0, 7, 13), Color: ColorWhite, Text: "AB"}})
	if len(rec.quads) != 1 {
		t.Errorf("expected the clipped glyph to be dropped, got %d quads", len(rec.quads))
	}
}

func TestReplay_RectAndIcon(t *testing.T) {
	atlas := NewBitmapAtlas()
	rec := &quadRecorder{atlas: atlas}

	replay(rec, atlas, []Command{
		{Kind: CommandRect, Rect: NewRect(0, 0, 10, 10), Clip: unclippedRect, Color: ColorBlack},
		{Kind: CommandIcon, Rect: NewRect(100, 100, 24, 24), Clip: unclippedRect, Color: ColorWhite, Icon: IconClose},
	})
	if len(rec.quads) != 2 {
		t.Fatalf("expected 2 quads, got %d", len(rec.quads))
	}

	white := atlas.White()
	wantUV := [2]float32{float32(white.X) / 128, float32(white.Y) / 128}
	if diff := cmp.Diff(wantUV, rec.quads[0][0].TexCoord); diff != "" {
		t.Errorf("rect samples white texel (-want +got):\n%s", diff)
	}

	icon := atlas.Icon(IconClose)
	wantPos := [2]float32{float32(100 + (24-icon.W)/2), float32(100 + (24-icon.H)/2)}
	if diff := cmp.Diff(wantPos, rec.quads[1][0].Pos); diff != "" {
		t.Errorf("icon centered (-want +got):\n%s", diff)
	}
}
