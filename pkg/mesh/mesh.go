package mesh

import (
	gomath "math"

	"github.com/forgelab3d/meshforge/pkg/math"
)

// PrimitiveTopology describes how a submesh's index range is interpreted.
type PrimitiveTopology uint8

const (
	// TriangleList groups indices in runs of three.
	TriangleList PrimitiveTopology = iota
)

// Submesh describes one contiguous index range inside a mesh.
type Submesh struct {
	IndexStart int
	IndexCount int
	Topology   PrimitiveTopology
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// NewBounds returns an empty bounds ready for Extend: Min at +Inf and
// Max at -Inf, so the first extended point defines both corners.
func NewBounds() Bounds {
	pos := float32(gomath.Inf(1))
	neg := float32(gomath.Inf(-1))
	return Bounds{
		Min: math.Vec3{X: pos, Y: pos, Z: pos},
		Max: math.Vec3{X: neg, Y: neg, Z: neg},
	}
}

// Extend grows the bounds to contain p.
func (b *Bounds) Extend(p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// Center returns the midpoint of the bounds.
func (b *Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Mesh is the immutable output of a finalized builder: a byte-exact vertex
// buffer conforming to the schema, a 16-bit index buffer, and a single
// triangle-list submesh covering the whole index range.
type Mesh struct {
	VertexData  []byte
	Indices     []uint16
	Schema      *Schema
	Submesh     Submesh
	VertexCount int
	Bounds      Bounds
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Uploader consumes a finalized mesh. Implementations live outside this
// package: GPU upload, file export, debug display.
type Uploader interface {
	Upload(m *Mesh) error
}
