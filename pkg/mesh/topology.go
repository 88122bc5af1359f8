package mesh

import "fmt"

// Topology is a compact description of polygonal faces: a flattened vertex
// index array, a per-face size table, and a per-face offset table (prefix
// sums of the sizes, computed once at construction).
type Topology struct {
	indices []uint32
	sizes   []int
	offsets []int
}

// NewTopology flattens variable-length face runs into a Topology. Every
// run must have at least three indices.
func NewTopology(faces [][]uint32) (*Topology, error) {
	total := 0
	for i, f := range faces {
		if len(f) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d vertices, want >= 3", ErrInvalidTopology, i, len(f))
		}
		total += len(f)
	}

	t := &Topology{
		indices: make([]uint32, 0, total),
		sizes:   make([]int, len(faces)),
		offsets: make([]int, len(faces)),
	}
	for i, f := range faces {
		t.offsets[i] = len(t.indices)
		t.sizes[i] = len(f)
		t.indices = append(t.indices, f...)
	}
	return t, nil
}

// NewTopologyFlat builds a Topology from an already-flattened index array
// and a size table. Unlike NewTopology it tolerates degenerate runs
// (size < 3, including 0); the triangulator skips them. The sizes must be
// non-negative and sum to len(indices).
func NewTopologyFlat(indices []uint32, sizes []int) (*Topology, error) {
	total := 0
	for i, sz := range sizes {
		if sz < 0 {
			return nil, fmt.Errorf("%w: face %d has negative size %d", ErrInvalidTopology, i, sz)
		}
		total += sz
	}
	if total != len(indices) {
		return nil, fmt.Errorf("%w: sizes sum to %d but %d indices given", ErrInvalidTopology, total, len(indices))
	}

	t := &Topology{
		indices: indices,
		sizes:   sizes,
		offsets: make([]int, len(sizes)),
	}
	off := 0
	for i, sz := range sizes {
		t.offsets[i] = off
		off += sz
	}
	return t, nil
}

// NewUniformTopology builds a Topology where every face has the same size,
// for example a quad list. len(indices) must be a multiple of faceSize.
func NewUniformTopology(faceSize int, indices []uint32) (*Topology, error) {
	if faceSize < 3 {
		return nil, fmt.Errorf("%w: face size %d, want >= 3", ErrInvalidTopology, faceSize)
	}
	if len(indices)%faceSize != 0 {
		return nil, fmt.Errorf("%w: %d indices do not divide into faces of %d", ErrInvalidTopology, len(indices), faceSize)
	}

	faceCount := len(indices) / faceSize
	t := &Topology{
		indices: indices,
		sizes:   make([]int, faceCount),
		offsets: make([]int, faceCount),
	}
	for i := range t.sizes {
		t.sizes[i] = faceSize
		t.offsets[i] = i * faceSize
	}
	return t, nil
}

// FaceCount returns the number of faces.
func (t *Topology) FaceCount() int {
	return len(t.sizes)
}

// FaceSize returns the number of vertices of face i.
func (t *Topology) FaceSize(i int) int {
	return t.sizes[i]
}

// OffsetOf returns the position of face i's first index in the flattened
// array. O(1) via the offset table.
func (t *Topology) OffsetOf(i int) int {
	return t.offsets[i]
}

// Face returns face i's index run as a view into the flattened array.
func (t *Topology) Face(i int) []uint32 {
	off := t.offsets[i]
	return t.indices[off : off+t.sizes[i]]
}

// IndexCount returns the length of the flattened index array.
func (t *Topology) IndexCount() int {
	return len(t.indices)
}

// Validate checks that every index references an existing vertex.
func (t *Topology) Validate(vertexCount int) error {
	for _, idx := range t.indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("%w: index %d out of range for %d vertices", ErrInvalidTopology, idx, vertexCount)
		}
	}
	return nil
}
