package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagSolid   = flag.String("solid", "", "Solid to generate (cube, plane, prism, pyramid)")
	flagOut     = flag.String("out", "", "Output file path")
	flagFormat  = flag.String("format", "", "Output format (obj, stl)")
	flagWorkers = flag.Int("workers", 0, "Worker goroutines for the build pipeline")
	flagSides   = flag.Int("sides", 0, "Side count for prism and pyramid")
	flagSize    = flag.Float64("size", 0, "Edge length for cube")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSolid != "" {
		cfg.Solid.Kind = *flagSolid
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagWorkers > 0 {
		cfg.Pipeline.Workers = *flagWorkers
	}
	if *flagSides > 0 {
		cfg.Solid.Sides = *flagSides
	}
	if *flagSize > 0 {
		cfg.Solid.Size = float32(*flagSize)
	}
}
