// Package solids generates procedural primitive meshes on top of the
// mesh core. The bulk generators (Cube, Plane, Pyramid) feed a vertex
// array and face topology through a Pipeline; Prism composes its caps
// and walls incrementally through a Builder.
package solids

import (
	"fmt"
	gomath "math"

	"github.com/forgelab3d/meshforge/pkg/math"
	"github.com/forgelab3d/meshforge/pkg/mesh"
)

// ring returns n points of radius r in the XZ plane at height y.
// Positive step winds counterclockwise seen from above (+Y); negative
// winds clockwise, which a fan triangulates into an upward-facing cap.
func ring(n int, r, y float32, step float32) []math.Vec3 {
	pts := make([]math.Vec3, n)
	for i := 0; i < n; i++ {
		a := float64(step) * 2 * gomath.Pi * float64(i) / float64(n)
		pts[i] = math.Vec3{
			X: r * float32(gomath.Cos(a)),
			Y: y,
			Z: r * float32(gomath.Sin(a)),
		}
	}
	return pts
}

func checkPipeline(p *mesh.Pipeline) error {
	if p == nil {
		return fmt.Errorf("%w: nil pipeline", mesh.ErrInvalidArgument)
	}
	return nil
}

func checkRadial(sides int, radius, height float32) error {
	if sides < 3 {
		return fmt.Errorf("%w: %d sides, want >= 3", mesh.ErrInvalidArgument, sides)
	}
	if radius <= 0 {
		return fmt.Errorf("%w: radius %v, want > 0", mesh.ErrInvalidArgument, radius)
	}
	if height <= 0 {
		return fmt.Errorf("%w: height %v, want > 0", mesh.ErrInvalidArgument, height)
	}
	return nil
}
