// Package config handles tool configuration loading and management.
package config

// Config holds all settings for the mesh tools.
type Config struct {
	Solid    SolidConfig    `yaml:"solid"`
	Output   OutputConfig   `yaml:"output"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Preview  PreviewConfig  `yaml:"preview"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SolidConfig selects which primitive to generate and its dimensions.
// Each generator reads only the fields that apply to it.
type SolidConfig struct {
	Kind     string  `yaml:"kind"` // cube, plane, prism, pyramid
	Size     float32 `yaml:"size"`
	Sides    int     `yaml:"sides"`
	Radius   float32 `yaml:"radius"`
	Height   float32 `yaml:"height"`
	Width    float32 `yaml:"width"`
	Depth    float32 `yaml:"depth"`
	Segments int     `yaml:"segments"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Format string `yaml:"format"` // obj or stl
	Path   string `yaml:"path"`
	Name   string `yaml:"name"`
}

// PipelineConfig holds build parallelism settings.
type PipelineConfig struct {
	Workers int `yaml:"workers"`
}

// PreviewConfig holds preview window settings.
type PreviewConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Solid: SolidConfig{
			Kind:     "cube",
			Size:     1,
			Sides:    6,
			Radius:   0.5,
			Height:   1,
			Width:    1,
			Depth:    1,
			Segments: 1,
		},
		Output: OutputConfig{
			Format: "obj",
			Path:   "mesh.obj",
			Name:   "mesh",
		},
		Pipeline: PipelineConfig{
			Workers: 4,
		},
		Preview: PreviewConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
