package solids

import (
	"fmt"

	"github.com/forgelab3d/meshforge/pkg/math"
	"github.com/forgelab3d/meshforge/pkg/mesh"
)

// Cube builds an axis-aligned cube centered at the origin with the given
// edge length. Each face owns its four vertices, so the result has 24
// vertices and 36 indices with flat per-face normals.
func Cube(p *mesh.Pipeline, size float32) (*mesh.Mesh, error) {
	if err := checkPipeline(p); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %v, want > 0", mesh.ErrInvalidArgument, size)
	}

	h := size / 2
	// Corners in CCW order seen from outside the face.
	quads := [6][4]math.Vec3{
		{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}},
		{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}},
		{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}},
		{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}},
		{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}},
		{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}},
	}
	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	verts := make([]mesh.Vertex, 0, 24)
	faces := make([][]uint32, 0, 6)
	for _, q := range quads {
		base := uint32(len(verts))
		for c, pos := range q {
			verts = append(verts, mesh.Vertex{Position: pos, TexCoord: uvs[c]})
		}
		faces = append(faces, []uint32{base, base + 1, base + 2, base + 3})
	}

	topo, err := mesh.NewTopology(faces)
	if err != nil {
		return nil, err
	}
	return p.Build(verts, topo, mesh.DefaultSchema(), mesh.BuildOptions{Normals: mesh.NormalsFlat})
}
