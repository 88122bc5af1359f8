package mesh

import (
	"fmt"
	"unsafe"
)

// Maximum vertices addressable with 16-bit indices.
const maxVertices = 1 << 16

// Builder accumulates vertices and triangle indices into growable scratch
// buffers and finalizes them into an immutable Mesh. V must be a
// fixed-layout value type whose byte size equals the schema's stride; the
// match is checked at construction.
//
// A builder exclusively owns its scratch buffers from construction until
// Dispose. Finalize is one-shot; a second call returns ErrFinalized, and
// Add methods panic after Finalize or Dispose.
type Builder[V any] struct {
	schema      *Schema
	verts       []V
	indices     []uint32
	indexOffset uint32
	done        bool
}

// NewBuilder creates a builder with the given capacity hints. The vertex
// capacity must be positive; the index capacity must not be negative.
func NewBuilder[V any](schema *Schema, vertexCapacity, indexCapacity int) (*Builder[V], error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrInvalidArgument)
	}
	if vertexCapacity <= 0 {
		return nil, fmt.Errorf("%w: vertex capacity %d, want > 0", ErrInvalidArgument, vertexCapacity)
	}
	if indexCapacity < 0 {
		return nil, fmt.Errorf("%w: index capacity %d, want >= 0", ErrInvalidArgument, indexCapacity)
	}
	if size := int(unsafe.Sizeof(*new(V))); size != schema.Stride() {
		return nil, fmt.Errorf("%w: vertex type is %d bytes but schema stride is %d", ErrInvalidArgument, size, schema.Stride())
	}

	return &Builder[V]{
		schema:  schema,
		verts:   make([]V, 0, vertexCapacity),
		indices: make([]uint32, 0, indexCapacity),
	}, nil
}

func (b *Builder[V]) checkLive() {
	if b.done {
		panic("mesh: builder used after Finalize/Dispose")
	}
}

// AddVertex appends one vertex. Amortized O(1).
func (b *Builder[V]) AddVertex(v V) {
	b.checkLive()
	b.verts = append(b.verts, v)
}

// AppendVertices appends a pre-populated vertex slice.
func (b *Builder[V]) AppendVertices(vs []V) {
	b.checkLive()
	b.verts = append(b.verts, vs...)
}

// VertexCount returns the number of vertices added so far.
func (b *Builder[V]) VertexCount() int {
	return len(b.verts)
}

// SetIndexOffset sets the offset added to every index of subsequent
// Add calls, supporting sequential sub-mesh composition into one buffer.
func (b *Builder[V]) SetIndexOffset(off uint32) {
	b.checkLive()
	b.indexOffset = off
}

// IndexOffset returns the current index offset.
func (b *Builder[V]) IndexOffset() uint32 {
	return b.indexOffset
}

// AddTriangle appends one triangle, each index shifted by the offset.
func (b *Builder[V]) AddTriangle(i0, i1, i2 uint32) {
	b.checkLive()
	o := b.indexOffset
	b.indices = append(b.indices, o+i0, o+i1, o+i2)
}

// AddQuad appends a quad laid out as (top-left, top-right, bottom-right,
// bottom-left) as the two triangles (i0,i1,i2) and (i0,i2,i3), each index
// shifted by the offset.
func (b *Builder[V]) AddQuad(i0, i1, i2, i3 uint32) {
	b.checkLive()
	o := b.indexOffset
	b.indices = QuadSplit(b.indices, o+i0, o+i1, o+i2, o+i3)
}

// AddFan appends the fan triangulation of the face run vs (vs[0] is the
// apex), each index shifted by the offset. reversed flips the winding.
func (b *Builder[V]) AddFan(vs []uint32, reversed bool) {
	b.checkLive()
	if b.indexOffset == 0 {
		b.indices = Fan(b.indices, vs, reversed)
		return
	}
	shifted := make([]uint32, len(vs))
	for i, v := range vs {
		shifted[i] = v + b.indexOffset
	}
	b.indices = Fan(b.indices, shifted, reversed)
}

// AddTriangleList appends an already-triangulated index list, each index
// shifted by the offset. len(indices) must be a multiple of 3.
func (b *Builder[V]) AddTriangleList(indices []uint32) error {
	b.checkLive()
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: triangle list length %d is not a multiple of 3", ErrInvalidArgument, len(indices))
	}
	o := b.indexOffset
	for _, idx := range indices {
		b.indices = append(b.indices, o+idx)
	}
	return nil
}

// Finalize copies the scratch buffers into an immutable Mesh: a byte-exact
// vertex buffer and a checked 16-bit index buffer. It is one-shot; calling
// it again returns ErrFinalized. The scratch buffers stay owned by the
// builder until Dispose.
func (b *Builder[V]) Finalize() (*Mesh, error) {
	if b.done {
		return nil, ErrFinalized
	}
	if len(b.verts) > maxVertices {
		return nil, fmt.Errorf("%w: %d vertices, want <= %d", ErrIndexRangeExceeded, len(b.verts), maxVertices)
	}

	indices := make([]uint16, len(b.indices))
	for i, idx := range b.indices {
		if idx >= maxVertices {
			return nil, fmt.Errorf("%w: index %d at position %d", ErrIndexRangeExceeded, idx, i)
		}
		if int(idx) >= len(b.verts) {
			return nil, fmt.Errorf("%w: index %d out of range for %d vertices", ErrInvalidTopology, idx, len(b.verts))
		}
		indices[i] = uint16(idx)
	}

	stride := b.schema.Stride()
	data := make([]byte, len(b.verts)*stride)
	if len(b.verts) > 0 {
		src := unsafe.Slice((*byte)(unsafe.Pointer(&b.verts[0])), len(b.verts)*stride)
		copy(data, src)
	}

	b.done = true
	return &Mesh{
		VertexData:  data,
		Indices:     indices,
		Schema:      b.schema,
		Submesh:     Submesh{IndexStart: 0, IndexCount: len(indices), Topology: TriangleList},
		VertexCount: len(b.verts),
	}, nil
}

// Dispose releases the scratch buffers. Call it exactly once after
// Finalize, or on any abandoned or failed build path; extra calls are
// no-ops.
func (b *Builder[V]) Dispose() {
	b.verts = nil
	b.indices = nil
	b.done = true
}
