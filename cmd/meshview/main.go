// Package main is the entry point for the meshview CLI, which builds a
// procedural solid and previews it in a window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/forgelab3d/meshforge/internal/config"
	"github.com/forgelab3d/meshforge/internal/generate"
	"github.com/forgelab3d/meshforge/internal/logger"
	"github.com/forgelab3d/meshforge/internal/preview"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	m, err := generate.Build(cfg)
	if err != nil {
		logger.Error("failed to build mesh", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("mesh built",
		zap.String("solid", cfg.Solid.Kind),
		zap.Int("vertices", m.VertexCount),
		zap.Int("triangles", m.TriangleCount()),
	)

	viewer, err := preview.NewViewer(preview.WindowConfig{
		Title:  "meshview - " + cfg.Solid.Kind,
		Width:  cfg.Preview.Width,
		Height: cfg.Preview.Height,
		VSync:  cfg.Preview.VSync,
	})
	if err != nil {
		logger.Error("failed to open viewer", zap.Error(err))
		os.Exit(1)
	}
	defer viewer.Close()

	if err := viewer.Upload(m); err != nil {
		logger.Error("failed to upload mesh", zap.Error(err))
		os.Exit(1)
	}

	viewer.Run()
	logger.Info("viewer closed")
}
