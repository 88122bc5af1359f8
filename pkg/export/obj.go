package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/forgelab3d/meshforge/pkg/mesh"
)

// WriteOBJ writes a mesh as Wavefront OBJ text. Positions are required;
// texcoords and normals are written only when the schema carries them.
// Face indices are 1-based per the format.
func WriteOBJ(w io.Writer, name string, m *mesh.Mesh) error {
	if err := checkTriangleMesh(m); err != nil {
		return err
	}
	pos, ok := newAttrReader(m, mesh.Position)
	if !ok {
		return fmt.Errorf("%w: schema has no position attribute", mesh.ErrInvalidArgument)
	}
	uv, hasUV := newAttrReader(m, mesh.TexCoord)
	norm, hasNorm := newAttrReader(m, mesh.Normal)

	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	for i := 0; i < m.VertexCount; i++ {
		p := pos.vec3(i)
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	if hasUV {
		for i := 0; i < m.VertexCount; i++ {
			t := uv.vec2(i)
			fmt.Fprintf(bw, "vt %g %g\n", t.X, t.Y)
		}
	}
	if hasNorm {
		for i := 0; i < m.VertexCount; i++ {
			n := norm.vec3(i)
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
	}

	for t := 0; t < len(m.Indices); t += 3 {
		fmt.Fprint(bw, "f")
		for k := 0; k < 3; k++ {
			idx := int(m.Indices[t+k]) + 1
			switch {
			case hasUV && hasNorm:
				fmt.Fprintf(bw, " %d/%d/%d", idx, idx, idx)
			case hasUV:
				fmt.Fprintf(bw, " %d/%d", idx, idx)
			case hasNorm:
				fmt.Fprintf(bw, " %d//%d", idx, idx)
			default:
				fmt.Fprintf(bw, " %d", idx)
			}
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// OBJ streams meshes to a writer as they are uploaded, so a generator
// can hand it anywhere an Uploader is expected.
type OBJ struct {
	W    io.Writer
	Name string
}

func (o *OBJ) Upload(m *mesh.Mesh) error {
	return WriteOBJ(o.W, o.Name, m)
}
