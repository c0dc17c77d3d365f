package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagGenerator  = flag.String("generator", "", "Generator kind (grid, sharedgrid, cubesphere, uvsphere)")
	flagStream     = flag.String("stream", "", "Stream layout (single, multi)")
	flagResolution = flag.Int("resolution", 0, "Mesh resolution (1-50)")
	flagWorkers    = flag.Int("workers", -1, "Generation worker count (0 = one per CPU)")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
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
	if *flagGenerator != "" {
		cfg.Mesh.Generator = *flagGenerator
	}
	if *flagStream != "" {
		cfg.Mesh.Stream = *flagStream
	}
	if *flagResolution > 0 {
		cfg.Mesh.Resolution = *flagResolution
	}
	if *flagWorkers >= 0 {
		cfg.Mesh.Workers = *flagWorkers
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
