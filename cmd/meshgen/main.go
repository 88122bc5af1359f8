// Package main is the entry point for the meshgen CLI, which builds a
// procedural solid and exports it to OBJ or STL.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/forgelab3d/meshforge/internal/config"
	"github.com/forgelab3d/meshforge/internal/generate"
	"github.com/forgelab3d/meshforge/internal/logger"
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

	logger.Sugar.Debugf("Config: %+v", cfg)

	m, err := generate.Build(cfg)
	if err != nil {
		logger.Error("failed to build mesh", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("mesh built",
		zap.String("solid", cfg.Solid.Kind),
		zap.Int("vertices", m.VertexCount),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("bytes", len(m.VertexData)),
	)

	if err := generate.Export(cfg, m); err != nil {
		logger.Error("failed to export mesh", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("mesh exported",
		zap.String("format", cfg.Output.Format),
		zap.String("path", cfg.Output.Path),
	)
}
