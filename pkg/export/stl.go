package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/forgelab3d/meshforge/pkg/mesh"
)

// stlHeaderSize is the fixed comment block leading a binary STL file.
const stlHeaderSize = 80

// WriteSTL writes a mesh as binary STL: the 80-byte header, a uint32
// triangle count, then 50 bytes per triangle (normal, three corners, a
// zero attribute word). STL has no shared vertices or texcoords, so
// only positions are read; per-triangle normals are recomputed from the
// corner positions.
func WriteSTL(w io.Writer, name string, m *mesh.Mesh) error {
	if err := checkTriangleMesh(m); err != nil {
		return err
	}
	pos, ok := newAttrReader(m, mesh.Position)
	if !ok {
		return fmt.Errorf("%w: schema has no position attribute", mesh.ErrInvalidArgument)
	}

	bw := bufio.NewWriter(w)

	var header [stlHeaderSize]byte
	copy(header[:], name)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return err
	}

	var rec [12]float32
	for t := 0; t < len(m.Indices); t += 3 {
		a := pos.vec3(int(m.Indices[t]))
		b := pos.vec3(int(m.Indices[t+1]))
		c := pos.vec3(int(m.Indices[t+2]))
		n := mesh.TriangleNormal(a, b, c)

		rec = [12]float32{
			n.X, n.Y, n.Z,
			a.X, a.Y, a.Z,
			b.X, b.Y, b.Z,
			c.X, c.Y, c.Z,
		}
		if err := binary.Write(bw, binary.LittleEndian, rec); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// STL streams meshes to a writer as they are uploaded.
type STL struct {
	W    io.Writer
	Name string
}

func (s *STL) Upload(m *mesh.Mesh) error {
	return WriteSTL(s.W, s.Name, m)
}
