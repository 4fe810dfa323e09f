package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or legacy .ini)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagBrightness = flag.Float64("brightness", 0, "Line brightness multiplier")
	flagThickness  = flag.Float64("thickness", 0, "Base line thickness in pixels")
	flagFPS        = flag.Int("fps", 0, "Frame rate cap (0 = uncapped)")
	flagNoVSync    = flag.Bool("no-vsync", false, "Disable vertical sync")
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
	if *flagBrightness > 0 {
		cfg.Graphics.Brightness = float32(*flagBrightness)
	}
	if *flagThickness > 0 {
		cfg.Graphics.Thickness = float32(*flagThickness)
	}
	if *flagFPS > 0 {
		cfg.Graphics.FPSLimit = *flagFPS
	}
	if *flagNoVSync {
		cfg.Graphics.VSync = false
	}
}
