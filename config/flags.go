package config

import "flag"

// Flags holds parsed command-line flag values. Pointer fields distinguish
// "not set" from zero values so only explicitly-passed flags override the
// config file.
type Flags struct {
	ConfigPath string

	width     *int
	height    *int
	vsync     *bool
	wireframe *bool
	overlay   *bool
	meshPath  *string
	logLevel  *string
	logFile   *string
	software  *bool
}

// ParseFlags registers and parses the viewer's command-line flags.
//
// Returns:
//   - *Flags: the parsed flag set
func ParseFlags() *Flags {
	f := &Flags{}

	flag.StringVar(&f.ConfigPath, "config", "objview.yaml", "path to the config file")
	f.width = flag.Int("width", 0, "window width in pixels")
	f.height = flag.Int("height", 0, "window height in pixels")
	f.vsync = flag.Bool("vsync", true, "enable vsync")
	f.wireframe = flag.Bool("wireframe", false, "start in wireframe mode")
	f.overlay = flag.Bool("overlay", false, "show the performance overlay")
	f.meshPath = flag.String("mesh", "", "mesh file to load on startup")
	f.logLevel = flag.String("log-level", "", "log level (debug, info, warn, error)")
	f.logFile = flag.String("log-file", "", "log file path")
	f.software = flag.Bool("software", false, "force the software fallback GPU adapter")

	flag.Parse()
	return f
}

// Apply overrides cfg with any flags the user passed explicitly.
//
// Parameters:
//   - cfg: the configuration to override in place
func (f *Flags) Apply(cfg *Config) {
	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["width"] {
		cfg.Graphics.Width = *f.width
	}
	if set["height"] {
		cfg.Graphics.Height = *f.height
	}
	if set["vsync"] {
		cfg.Graphics.VSync = *f.vsync
	}
	if set["wireframe"] {
		cfg.Viewer.Wireframe = *f.wireframe
	}
	if set["overlay"] {
		cfg.Viewer.Overlay = *f.overlay
	}
	if set["mesh"] {
		cfg.Viewer.MeshPath = *f.meshPath
	}
	if set["log-level"] {
		cfg.Logging.Level = *f.logLevel
	}
	if set["log-file"] {
		cfg.Logging.LogFile = *f.logFile
	}

	cfg.Validate()
}

// Software reports whether the user requested the software fallback GPU adapter.
//
// Returns:
//   - bool: true if -software was passed
func (f *Flags) Software() bool {
	return f.software != nil && *f.software
}
