package solids

import (
	"github.com/forgelab3d/meshforge/pkg/math"
	"github.com/forgelab3d/meshforge/pkg/mesh"
)

// Prism builds an upright n-sided prism centered at the origin,
// composing it part by part through a builder: a fanned top cap, a
// bottom cap with reversed winding, and one quad per side wall. Every
// part owns its vertices, giving 6n vertices and 4n-4 triangles.
func Prism(sides int, radius, height float32) (*mesh.Mesh, error) {
	if err := checkRadial(sides, radius, height); err != nil {
		return nil, err
	}

	n := sides
	h := height / 2
	// Clockwise seen from above, so the top fan faces +Y as emitted.
	top := ring(n, radius, h, -1)
	bottom := ring(n, radius, -h, -1)

	b, err := mesh.NewBuilder[mesh.Vertex](mesh.DefaultSchema(), 6*n, (4*n-4)*3)
	if err != nil {
		return nil, err
	}
	defer b.Dispose()

	capUV := func(pos math.Vec3) math.Vec2 {
		return math.Vec2{X: 0.5 + pos.X/(2*radius), Y: 0.5 + pos.Z/(2*radius)}
	}
	fan := make([]uint32, n)
	for i := range fan {
		fan[i] = uint32(i)
	}

	// Top cap.
	for _, pos := range top {
		b.AddVertex(mesh.Vertex{Position: pos, Normal: math.Vec3{Y: 1}, TexCoord: capUV(pos)})
	}
	b.AddFan(fan, false)

	// Bottom cap reuses the same ring order; reversing the fan flips it
	// to face -Y.
	b.SetIndexOffset(uint32(n))
	for _, pos := range bottom {
		b.AddVertex(mesh.Vertex{Position: pos, Normal: math.Vec3{Y: -1}, TexCoord: capUV(pos)})
	}
	b.AddFan(fan, true)

	// Side walls, one quad each, wound to face outward.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		normal := mesh.TriangleNormal(top[j], top[i], bottom[i])
		u0 := float32(i) / float32(n)
		u1 := float32(i+1) / float32(n)

		base := uint32(2*n + 4*i)
		b.SetIndexOffset(base)
		b.AddVertex(mesh.Vertex{Position: top[j], Normal: normal, TexCoord: math.Vec2{X: u1, Y: 1}})
		b.AddVertex(mesh.Vertex{Position: top[i], Normal: normal, TexCoord: math.Vec2{X: u0, Y: 1}})
		b.AddVertex(mesh.Vertex{Position: bottom[i], Normal: normal, TexCoord: math.Vec2{X: u0, Y: 0}})
		b.AddVertex(mesh.Vertex{Position: bottom[j], Normal: normal, TexCoord: math.Vec2{X: u1, Y: 0}})
		b.AddQuad(0, 1, 2, 3)
	}

	m, err := b.Finalize()
	if err != nil {
		return nil, err
	}

	bounds := mesh.NewBounds()
	for _, pos := range top {
		bounds.Extend(pos)
	}
	for _, pos := range bottom {
		bounds.Extend(pos)
	}
	m.Bounds = bounds
	return m, nil
}
