package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Solid.Kind != "cube" {
		t.Errorf("expected default solid 'cube', got %s", cfg.Solid.Kind)
	}
	if cfg.Solid.Size != 1 {
		t.Errorf("expected size 1, got %v", cfg.Solid.Size)
	}
	if cfg.Solid.Sides != 6 {
		t.Errorf("expected 6 sides, got %d", cfg.Solid.Sides)
	}

	if cfg.Output.Format != "obj" {
		t.Errorf("expected format 'obj', got %s", cfg.Output.Format)
	}
	if cfg.Output.Path != "mesh.obj" {
		t.Errorf("expected path 'mesh.obj', got %s", cfg.Output.Path)
	}

	if cfg.Pipeline.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Pipeline.Workers)
	}

	if cfg.Preview.Width != 1280 || cfg.Preview.Height != 720 {
		t.Errorf("expected 1280x720 preview, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if !cfg.Preview.VSync {
		t.Error("expected vsync on by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
solid:
  kind: prism
  sides: 8
  radius: 2.5
  height: 3

output:
  format: stl
  path: prism.stl
  name: prism

pipeline:
  workers: 8

logging:
  level: debug
  log_file: meshgen.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Solid.Kind != "prism" {
		t.Errorf("expected solid 'prism', got %s", cfg.Solid.Kind)
	}
	if cfg.Solid.Sides != 8 {
		t.Errorf("expected 8 sides, got %d", cfg.Solid.Sides)
	}
	if cfg.Solid.Radius != 2.5 {
		t.Errorf("expected radius 2.5, got %v", cfg.Solid.Radius)
	}
	if cfg.Output.Format != "stl" {
		t.Errorf("expected format 'stl', got %s", cfg.Output.Format)
	}
	if cfg.Output.Path != "prism.stl" {
		t.Errorf("expected path 'prism.stl', got %s", cfg.Output.Path)
	}
	if cfg.Pipeline.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Pipeline.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "meshgen.log" {
		t.Errorf("expected log file 'meshgen.log', got %s", cfg.Logging.LogFile)
	}

	// Fields absent from the file keep their defaults.
	if cfg.Preview.Width != 1280 {
		t.Errorf("expected preview width 1280 kept from defaults, got %d", cfg.Preview.Width)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
solid:
  sides: not a number
  broken syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Fatal("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "meshforge.yaml")
	if err := os.WriteFile(configPath, []byte("solid:\n  kind: cube\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find meshforge.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "solid flag",
			setup: func() { *flagSolid = "pyramid" },
			verify: func(cfg *Config) {
				if cfg.Solid.Kind != "pyramid" {
					t.Errorf("expected solid 'pyramid', got %s", cfg.Solid.Kind)
				}
			},
			teardown: func() { *flagSolid = "" },
		},
		{
			name:  "output flags",
			setup: func() { *flagOut = "out.stl"; *flagFormat = "stl" },
			verify: func(cfg *Config) {
				if cfg.Output.Path != "out.stl" {
					t.Errorf("expected path 'out.stl', got %s", cfg.Output.Path)
				}
				if cfg.Output.Format != "stl" {
					t.Errorf("expected format 'stl', got %s", cfg.Output.Format)
				}
			},
			teardown: func() { *flagOut = ""; *flagFormat = "" },
		},
		{
			name:  "workers and sides flags",
			setup: func() { *flagWorkers = 16; *flagSides = 12 },
			verify: func(cfg *Config) {
				if cfg.Pipeline.Workers != 16 {
					t.Errorf("expected 16 workers, got %d", cfg.Pipeline.Workers)
				}
				if cfg.Solid.Sides != 12 {
					t.Errorf("expected 12 sides, got %d", cfg.Solid.Sides)
				}
			},
			teardown: func() { *flagWorkers = 0; *flagSides = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
pipeline:
  workers: 2
solid:
  sides: 5
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWorkers = 8
	defer func() {
		*flagConfig = ""
		*flagWorkers = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Workers come from the flag, not the file.
	if cfg.Pipeline.Workers != 8 {
		t.Errorf("expected 8 workers from flag, got %d", cfg.Pipeline.Workers)
	}
	// Sides come from the file since no flag override.
	if cfg.Solid.Sides != 5 {
		t.Errorf("expected 5 sides from file, got %d", cfg.Solid.Sides)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Solid.Kind = "prism"
	cfg.Solid.Sides = 7
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Solid.Kind != "prism" || loaded.Solid.Sides != 7 {
		t.Errorf("round trip lost values: %+v", loaded.Solid)
	}
}
