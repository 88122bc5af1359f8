package mesh

import "github.com/forgelab3d/meshforge/pkg/math"

// TriangleNormal returns the unit normal of the triangle (a, b, c), or the
// zero vector when the triangle is degenerate.
func TriangleNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// FaceNormals computes one flat normal per face from the first three
// vertices of its index run, in winding order. Faces run in parallel on
// the pool (serially if pool is nil); each face writes only its own slot.
// Degenerate faces (size < 3 or zero-area) get a zero normal.
func FaceNormals(verts []Vertex, topo *Topology, pool *Pool) []math.Vec3 {
	normals := make([]math.Vec3, topo.FaceCount())
	compute := func(f int) {
		if topo.FaceSize(f) < 3 {
			return
		}
		face := topo.Face(f)
		normals[f] = TriangleNormal(
			verts[face[0]].Position,
			verts[face[1]].Position,
			verts[face[2]].Position,
		)
	}
	if pool == nil {
		for f := 0; f < topo.FaceCount(); f++ {
			compute(f)
		}
	} else {
		pool.ForEach(topo.FaceCount(), compute)
	}
	return normals
}

// AccumulateNormals smooths vertex normals: for every vertex it sums the
// normals of all faces referencing it and renormalizes. A vertex with no
// incident face, or whose incident normals cancel exactly, keeps its
// current normal. Vertices run in parallel on the pool; every task rereads
// the whole face table but writes only its own vertex slot.
func AccumulateNormals(verts []Vertex, faceNormals []math.Vec3, topo *Topology, pool *Pool) {
	accumulate := func(v int) {
		var sum math.Vec3
		for f := 0; f < topo.FaceCount(); f++ {
			for _, idx := range topo.Face(f) {
				if int(idx) == v {
					sum = sum.Add(faceNormals[f])
					break
				}
			}
		}
		if !sum.IsZero() {
			verts[v].Normal = sum.Normalize()
		}
	}
	if pool == nil {
		for v := range verts {
			accumulate(v)
		}
	} else {
		pool.ForEach(len(verts), accumulate)
	}
}

// AssignFlatNormals writes each face's normal onto the vertices the face
// references. Meant for pre-split meshes where no two faces share a
// vertex, so each slot has exactly one writer.
func AssignFlatNormals(verts []Vertex, faceNormals []math.Vec3, topo *Topology, pool *Pool) {
	assign := func(f int) {
		for _, idx := range topo.Face(f) {
			verts[idx].Normal = faceNormals[f]
		}
	}
	if pool == nil {
		for f := 0; f < topo.FaceCount(); f++ {
			assign(f)
		}
	} else {
		pool.ForEach(topo.FaceCount(), assign)
	}
}
