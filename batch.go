package microgui

import "math"

// MaxBatchVertices is the vertex and index capacity of one batch.
// Indices are 16-bit, so a batch never references more vertices.
const MaxBatchVertices = 65536

// BatchSink receives what a QuadBatcher produces. Backends implement it
// with their texture upload and draw calls.
type BatchSink interface {
	UploadAtlas(a Atlas)
	DrawBatch(vertices []Vertex, indices []uint16)
}

// QuadBatcher accumulates quads into vertex and index buffers and hands
// them to a sink. It flushes before a quad would fill the buffers and
// whenever the atlas update id changed since the last upload.
type QuadBatcher struct {
	atlas        Atlas
	sink         BatchSink
	vertices     []Vertex
	indices      []uint16
	lastUpdateID uint64
	draws        int
}

// NewQuadBatcher creates a batcher over atlas. The first flush always
// uploads the atlas.
func NewQuadBatcher(atlas Atlas, sink BatchSink) *QuadBatcher {
	return &QuadBatcher{
		atlas:        atlas,
		sink:         sink,
		vertices:     make([]Vertex, 0, 4096),
		indices:      make([]uint16, 0, 6144),
		lastUpdateID: math.MaxUint64,
	}
}

// Atlas returns the atlas the batcher keeps uploaded.
func (b *QuadBatcher) Atlas() Atlas { return b.atlas }

// PushQuad appends a quad, flushing first if needed.
func (b *QuadBatcher) PushQuad(v0, v1, v2, v3 Vertex) {
	if len(b.vertices)+4 >= MaxBatchVertices || len(b.indices)+6 >= MaxBatchVertices {
		b.Flush()
	}
	if b.atlas.LastUpdateID() != b.lastUpdateID {
		b.Flush()
	}

	base := uint16(len(b.vertices))
	b.vertices = append(b.vertices, v0, v1, v2, v3)
	b.indices = append(b.indices, base, base+1, base+2, base+2, base+3, base)
}

// Flush uploads the atlas if it changed and draws pending quads.
func (b *QuadBatcher) Flush() {
	if id := b.atlas.LastUpdateID(); id != b.lastUpdateID {
		b.sink.UploadAtlas(b.atlas)
		b.lastUpdateID = id
	}
	if len(b.vertices) == 0 {
		return
	}
	b.sink.DrawBatch(b.vertices, b.indices)
	b.draws++
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// Clear flushes pending quads. Backends clear their target afterwards.
func (b *QuadBatcher) Clear() {
	b.Flush()
}

// Pending returns the number of queued quads.
func (b *QuadBatcher) Pending() int { return len(b.vertices) / 4 }

// Draws returns how many batches were drawn since creation.
func (b *QuadBatcher) Draws() int { return b.draws }
