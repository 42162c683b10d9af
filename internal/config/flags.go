package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagModel      = flag.String("model", "", "Path to the OBJ model shown by the viewer")
	flagHeadless   = flag.Bool("headless", false, "Render into memory without opening a window")
	flagFrames     = flag.Int("frames", -1, "Stop after this many frames (0 runs until closed)")
	flagWatch      = flag.Bool("watch", false, "Reload shader files when they change")
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
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagModel != "" {
		cfg.Viewer.Model = *flagModel
	}
	if *flagHeadless {
		cfg.Window.Headless = true
	}
	if *flagFrames >= 0 {
		cfg.Window.Frames = *flagFrames
	}
	if *flagWatch {
		cfg.Viewer.WatchShaders = true
	}
}
