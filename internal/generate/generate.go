// Package generate turns a tool configuration into a finalized mesh
// and routes it to an export format.
package generate

import (
	"fmt"
	"os"
	"strings"

	"github.com/forgelab3d/meshforge/internal/config"
	"github.com/forgelab3d/meshforge/pkg/export"
	"github.com/forgelab3d/meshforge/pkg/mesh"
	"github.com/forgelab3d/meshforge/pkg/mesh/solids"
)

// Build generates the solid selected by cfg.Solid.
func Build(cfg *config.Config) (*mesh.Mesh, error) {
	p, err := mesh.NewPipeline(cfg.Pipeline.Workers)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	s := cfg.Solid
	switch strings.ToLower(s.Kind) {
	case "cube":
		return solids.Cube(p, s.Size)
	case "plane":
		return solids.Plane(p, s.Width, s.Depth, s.Segments, s.Segments)
	case "prism":
		return solids.Prism(s.Sides, s.Radius, s.Height)
	case "pyramid":
		return solids.Pyramid(p, s.Sides, s.Radius, s.Height)
	default:
		return nil, fmt.Errorf("%w: unknown solid %q", mesh.ErrInvalidArgument, s.Kind)
	}
}

// Export writes the mesh to cfg.Output.Path in the configured format.
func Export(cfg *config.Config, m *mesh.Mesh) error {
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	var up mesh.Uploader
	switch strings.ToLower(cfg.Output.Format) {
	case "obj":
		up = &export.OBJ{W: f, Name: cfg.Output.Name}
	case "stl":
		up = &export.STL{W: f, Name: cfg.Output.Name}
	default:
		return fmt.Errorf("%w: unknown format %q", mesh.ErrInvalidArgument, cfg.Output.Format)
	}
	if err := up.Upload(m); err != nil {
		return err
	}
	return f.Sync()
}
