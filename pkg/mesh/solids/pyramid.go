package solids

import (
	"github.com/forgelab3d/meshforge/pkg/math"
	"github.com/forgelab3d/meshforge/pkg/mesh"
)

// Pyramid builds an n-sided pyramid with its base on the XZ plane and
// its apex at (0, height, 0). The topology mixes face sizes: n triangle
// walls plus one n-gon base, all with split vertices (4n total), which
// exercises the general fan path of the triangulator.
func Pyramid(p *mesh.Pipeline, sides int, radius, height float32) (*mesh.Mesh, error) {
	if err := checkPipeline(p); err != nil {
		return nil, err
	}
	if err := checkRadial(sides, radius, height); err != nil {
		return nil, err
	}

	n := sides
	apex := math.Vec3{Y: height}
	// Clockwise seen from above for the outward-facing walls; the base
	// needs the opposite order to face -Y.
	wallRing := ring(n, radius, 0, -1)
	baseRing := ring(n, radius, 0, 1)

	verts := make([]mesh.Vertex, 0, 4*n)
	faces := make([][]uint32, 0, n+1)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		u0 := float32(i) / float32(n)
		u1 := float32(i+1) / float32(n)

		base := uint32(len(verts))
		verts = append(verts,
			mesh.Vertex{Position: wallRing[i], TexCoord: math.Vec2{X: u0, Y: 0}},
			mesh.Vertex{Position: wallRing[j], TexCoord: math.Vec2{X: u1, Y: 0}},
			mesh.Vertex{Position: apex, TexCoord: math.Vec2{X: (u0 + u1) / 2, Y: 1}},
		)
		faces = append(faces, []uint32{base, base + 1, base + 2})
	}

	baseStart := uint32(len(verts))
	baseFace := make([]uint32, n)
	for i, pos := range baseRing {
		verts = append(verts, mesh.Vertex{
			Position: pos,
			TexCoord: math.Vec2{X: 0.5 + pos.X/(2*radius), Y: 0.5 + pos.Z/(2*radius)},
		})
		baseFace[i] = baseStart + uint32(i)
	}
	faces = append(faces, baseFace)

	topo, err := mesh.NewTopology(faces)
	if err != nil {
		return nil, err
	}
	return p.Build(verts, topo, mesh.DefaultSchema(), mesh.BuildOptions{Normals: mesh.NormalsFlat})
}
