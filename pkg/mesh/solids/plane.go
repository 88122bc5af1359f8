package solids

import (
	"fmt"

	"github.com/forgelab3d/meshforge/pkg/math"
	"github.com/forgelab3d/meshforge/pkg/mesh"
)

// Plane builds a segmented rectangle in the XZ plane centered at the
// origin, facing +Y. The grid shares vertices between neighboring quads:
// (segX+1)*(segZ+1) vertices over segX*segZ quad faces.
func Plane(p *mesh.Pipeline, width, depth float32, segX, segZ int) (*mesh.Mesh, error) {
	if err := checkPipeline(p); err != nil {
		return nil, err
	}
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: plane %v x %v, want positive extents", mesh.ErrInvalidArgument, width, depth)
	}
	if segX < 1 || segZ < 1 {
		return nil, fmt.Errorf("%w: %d x %d segments, want >= 1", mesh.ErrInvalidArgument, segX, segZ)
	}

	cols, rows := segX+1, segZ+1
	verts := make([]mesh.Vertex, 0, cols*rows)
	for iz := 0; iz < rows; iz++ {
		for ix := 0; ix < cols; ix++ {
			u := float32(ix) / float32(segX)
			v := float32(iz) / float32(segZ)
			verts = append(verts, mesh.Vertex{
				Position: math.Vec3{X: (u - 0.5) * width, Z: (v - 0.5) * depth},
				TexCoord: math.Vec2{X: u, Y: v},
			})
		}
	}

	at := func(ix, iz int) uint32 { return uint32(iz*cols + ix) }
	faces := make([][]uint32, 0, segX*segZ)
	for iz := 0; iz < segZ; iz++ {
		for ix := 0; ix < segX; ix++ {
			// CCW seen from +Y.
			faces = append(faces, []uint32{
				at(ix, iz+1), at(ix+1, iz+1), at(ix+1, iz), at(ix, iz),
			})
		}
	}

	topo, err := mesh.NewTopology(faces)
	if err != nil {
		return nil, err
	}
	// The grid shares vertices between faces, so flat assignment would
	// give one vertex several concurrent writers. Smooth accumulation is
	// per-vertex disjoint and yields the same +Y normal on a flat grid.
	return p.Build(verts, topo, mesh.DefaultSchema(), mesh.BuildOptions{Normals: mesh.NormalsSmooth})
}
