package mesh

import "github.com/forgelab3d/meshforge/pkg/math"

// Vertex is the standard vertex record used by the build pipeline and the
// solid generators: position, normal, and texture coordinates, all float32.
// Its memory layout matches DefaultSchema byte for byte.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// DefaultSchema returns the attribute layout of Vertex:
// position 3×float32, normal 3×float32, texcoord 2×float32 (32 bytes).
func DefaultSchema() *Schema {
	s, err := NewSchema(
		Channel{Semantic: Position, Format: Float32, Count: 3},
		Channel{Semantic: Normal, Format: Float32, Count: 3},
		Channel{Semantic: TexCoord, Format: Float32, Count: 2},
	)
	if err != nil {
		// The default layout is a compile-time constant; this cannot fail.
		panic(err)
	}
	return s
}
