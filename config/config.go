// Package config manages viewer configuration. Settings are resolved in
// three layers with increasing priority: built-in defaults, the YAML
// config file, and command-line flags.
package config

// GraphicsConfig holds window and presentation settings.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// ViewerConfig holds initial viewer state.
type ViewerConfig struct {
	// Wireframe enables wireframe rendering at startup.
	Wireframe bool `yaml:"wireframe"`
	// Overlay enables the performance overlay at startup.
	Overlay bool `yaml:"overlay"`
	// MeshPath is an optional mesh file to load on launch.
	MeshPath string `yaml:"mesh_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Config is the root configuration structure.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Default returns the built-in default configuration.
//
// Returns:
//   - *Config: a fresh config with default values
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Viewer: ViewerConfig{
			Wireframe: false,
			Overlay:   false,
			MeshPath:  "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate clamps or resets out-of-range values to safe defaults.
func (c *Config) Validate() {
	if c.Graphics.Width <= 0 {
		c.Graphics.Width = 1280
	}
	if c.Graphics.Height <= 0 {
		c.Graphics.Height = 720
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Logging.Level = "info"
	}
}
