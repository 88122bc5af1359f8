package mesh

import "sort"

// QuadSplit appends the two triangles of a quad laid out as (top-left,
// top-right, bottom-right, bottom-left): (v0,v1,v2) and (v0,v2,v3).
func QuadSplit(dst []uint32, v0, v1, v2, v3 uint32) []uint32 {
	return append(dst, v0, v1, v2, v0, v2, v3)
}

// Fan appends the fan triangulation of a convex polygon face. vs[0] is the
// apex; n-2 triangles (apex, vs[i+1], vs[i+2]) are emitted. With reversed
// set, the last two indices of every triangle are swapped, flipping the
// winding. Faces with fewer than 3 vertices emit nothing.
func Fan(dst []uint32, vs []uint32, reversed bool) []uint32 {
	for i := 0; i+2 < len(vs); i++ {
		if reversed {
			dst = append(dst, vs[0], vs[i+2], vs[i+1])
		} else {
			dst = append(dst, vs[0], vs[i+1], vs[i+2])
		}
	}
	return dst
}

// Triangulation plans the conversion of a Topology into a flat triangle
// list. The per-face triangle offset table is a prefix sum over
// max(0, faceSize-2), computed sequentially once so that per-face emission
// can then run in parallel into disjoint output slots.
type Triangulation struct {
	topo    *Topology
	offsets []int // per-face first triangle slot
	total   int
}

// NewTriangulation computes the triangle offset table for a topology.
// Degenerate faces (size < 3) occupy zero slots and are skipped during
// emission, leaving no gaps in the output.
func NewTriangulation(t *Topology) *Triangulation {
	tr := &Triangulation{
		topo:    t,
		offsets: make([]int, t.FaceCount()),
	}
	for i := 0; i < t.FaceCount(); i++ {
		tr.offsets[i] = tr.total
		if n := t.FaceSize(i); n >= 3 {
			tr.total += n - 2
		}
	}
	return tr
}

// TriangleCount returns the total number of triangles the topology yields.
func (tr *Triangulation) TriangleCount() int {
	return tr.total
}

// FaceOf maps a global triangle slot back to its (face, local triangle)
// pair via binary search over the offset table.
func (tr *Triangulation) FaceOf(tri int) (face, local int) {
	// First face whose slot range ends beyond tri.
	face = sort.Search(len(tr.offsets), func(i int) bool {
		end := tr.total
		if i+1 < len(tr.offsets) {
			end = tr.offsets[i+1]
		}
		return tri < end
	})
	return face, tri - tr.offsets[face]
}

// Indices emits the full triangle index list: each face's own fan relative
// to its own first vertex, written at the face's precomputed slot. Faces
// run in parallel on the pool (serially if pool is nil); each face writes
// only its own disjoint output range. reversed flips the winding of every
// emitted triangle.
func (tr *Triangulation) Indices(pool *Pool, reversed bool) []uint32 {
	out := make([]uint32, tr.total*3)
	emit := func(f int) {
		n := tr.topo.FaceSize(f)
		if n < 3 {
			return
		}
		face := tr.topo.Face(f)
		base := tr.offsets[f] * 3
		// Appends land in the face's own slot of out; capacity is exact.
		Fan(out[base:base:base+(n-2)*3], face, reversed)
	}
	if pool == nil {
		for f := 0; f < tr.topo.FaceCount(); f++ {
			emit(f)
		}
	} else {
		pool.ForEach(tr.topo.FaceCount(), emit)
	}
	return out
}
