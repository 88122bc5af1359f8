// Package export writes finalized meshes to interchange formats. The
// writers consume the byte-exact vertex buffer through the mesh's
// attribute schema, so they work with any layout that carries the
// attributes they need.
package export

import (
	"encoding/binary"
	"fmt"
	gomath "math"

	"github.com/forgelab3d/meshforge/pkg/math"
	"github.com/forgelab3d/meshforge/pkg/mesh"
)

// attrReader decodes one attribute column out of a vertex buffer.
type attrReader struct {
	data   []byte
	stride int
	offset int
}

func newAttrReader(m *mesh.Mesh, sem mesh.Semantic) (attrReader, bool) {
	off, ok := m.Schema.Offset(sem)
	if !ok {
		return attrReader{}, false
	}
	return attrReader{data: m.VertexData, stride: m.Schema.Stride(), offset: off}, true
}

func (r attrReader) float(i, component int) float32 {
	base := i*r.stride + r.offset + component*4
	return gomath.Float32frombits(binary.LittleEndian.Uint32(r.data[base:]))
}

func (r attrReader) vec3(i int) math.Vec3 {
	return math.Vec3{X: r.float(i, 0), Y: r.float(i, 1), Z: r.float(i, 2)}
}

func (r attrReader) vec2(i int) math.Vec2 {
	return math.Vec2{X: r.float(i, 0), Y: r.float(i, 1)}
}

func checkTriangleMesh(m *mesh.Mesh) error {
	if m == nil {
		return fmt.Errorf("%w: nil mesh", mesh.ErrInvalidArgument)
	}
	if m.Submesh.Topology != mesh.TriangleList {
		return fmt.Errorf("%w: topology %d, want triangle list", mesh.ErrInvalidArgument, m.Submesh.Topology)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices, want a multiple of 3", mesh.ErrInvalidTopology, len(m.Indices))
	}
	return nil
}
