// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Noise    []NoiseLayer   `yaml:"noise"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// MeshConfig holds the initial generation parameters.
type MeshConfig struct {
	Generator  string `yaml:"generator"`  // grid, sharedgrid, cubesphere, uvsphere
	Stream     string `yaml:"stream"`     // single, multi
	Resolution int    `yaml:"resolution"` // subdivision level, 1-50
	Workers    int    `yaml:"workers"`    // 0 = one per CPU
}

// NoiseLayer holds one displacement layer. At most four layers are
// applied, in list order.
type NoiseLayer struct {
	Active    bool       `yaml:"active"`
	Strength  float32    `yaml:"strength"`
	Roughness float32    `yaml:"roughness"`
	Center    [3]float32 `yaml:"center"`
	Octaves   int        `yaml:"octaves"`
	Seed      int64      `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Mesh: MeshConfig{
			Generator:  "cubesphere",
			Stream:     "single",
			Resolution: 20,
			Workers:    0,
		},
		Noise: []NoiseLayer{
			{Active: true, Strength: 0.15, Roughness: 4, Octaves: 3, Seed: 42},
			{Active: true, Strength: 0.04, Roughness: 16, Octaves: 3, Seed: 1337},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
