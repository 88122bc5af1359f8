package mesh

import (
	"fmt"
	"sync"

	"github.com/forgelab3d/meshforge/pkg/math"
)

// NormalMode selects how the pipeline generates vertex normals.
type NormalMode uint8

const (
	// NormalsNone leaves the input normals untouched.
	NormalsNone NormalMode = iota
	// NormalsFlat assigns each face's flat normal to its vertices.
	// Requires split vertices (no vertex shared between faces).
	NormalsFlat
	// NormalsSmooth accumulates incident face normals per vertex and
	// renormalizes, for shared-vertex smooth shading.
	NormalsSmooth
)

// BuildOptions configures one bulk pipeline run.
type BuildOptions struct {
	Normals        NormalMode
	ReverseWinding bool
}

// Pipeline runs the full bulk build over a vertex array and a face
// topology: triangulation and face normals in parallel over faces, then —
// only after both have completed — normal assignment, then copy-out
// through a builder into the finalized buffer pair. All scratch is
// acquired inside Build and released on every exit path.
type Pipeline struct {
	pool *Pool
}

// NewPipeline creates a pipeline with its own worker pool.
func NewPipeline(workers int) (*Pipeline, error) {
	pool, err := NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &Pipeline{pool: pool}, nil
}

// Pool exposes the pipeline's worker pool for callers running their own
// parallel stages against the same workers.
func (p *Pipeline) Pool() *Pool {
	return p.pool
}

// Close shuts down the worker pool.
func (p *Pipeline) Close() {
	p.pool.Close()
}

// Build triangulates the topology, generates normals per opts (writing
// the normal field of verts in place), and finalizes everything into a
// Mesh. The input slices are not retained.
func (p *Pipeline) Build(verts []Vertex, topo *Topology, schema *Schema, opts BuildOptions) (*Mesh, error) {
	if len(verts) == 0 {
		return nil, fmt.Errorf("%w: empty vertex array", ErrInvalidArgument)
	}
	if err := topo.Validate(len(verts)); err != nil {
		return nil, err
	}

	// Sequential prefix sum over per-face triangle counts, before any
	// parallel dispatch.
	tr := NewTriangulation(topo)

	b, err := NewBuilder[Vertex](schema, len(verts), tr.TriangleCount()*3)
	if err != nil {
		return nil, err
	}
	// Scratch is released whether the build finishes or fails.
	defer b.Dispose()

	// Stage A: triangle emission and face normals are independent and run
	// concurrently, each parallel over faces. The join is the barrier the
	// vertex-normal stage depends on.
	var (
		tris        []uint32
		faceNormals []math.Vec3
		wg          sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		tris = tr.Indices(p.pool, opts.ReverseWinding)
	}()
	if opts.Normals != NormalsNone {
		wg.Add(1)
		go func() {
			defer wg.Done()
			faceNormals = FaceNormals(verts, topo, p.pool)
		}()
	}
	wg.Wait()

	// Stage B: vertex normals, after every face task has completed.
	switch opts.Normals {
	case NormalsFlat:
		AssignFlatNormals(verts, faceNormals, topo, p.pool)
	case NormalsSmooth:
		AccumulateNormals(verts, faceNormals, topo, p.pool)
	}

	b.AppendVertices(verts)
	if err := b.AddTriangleList(tris); err != nil {
		return nil, err
	}

	m, err := b.Finalize()
	if err != nil {
		return nil, err
	}

	bounds := NewBounds()
	for i := range verts {
		bounds.Extend(verts[i].Position)
	}
	m.Bounds = bounds

	return m, nil
}
