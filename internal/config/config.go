// Package config handles configuration loading and management.
package config

// Config holds all settings shared by the viewer and the reveal widget.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Camera  CameraConfig  `yaml:"camera"`
	Light   LightConfig   `yaml:"light"`
	Reveal  RevealConfig  `yaml:"reveal"`
	Logging LoggingConfig `yaml:"logging"`
	Capture CaptureConfig `yaml:"capture"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"`  // MSAA samples, 0 disables
	Headless   bool   `yaml:"headless"` // draw into memory, no window
	Frames     int    `yaml:"frames"`   // stop after this many frames, 0 runs until closed
}

// ViewerConfig holds mesh viewer settings.
type ViewerConfig struct {
	Model          string  `yaml:"model"` // OBJ file
	Radius         float32 `yaml:"radius"`
	VertexShader   string  `yaml:"vertex_shader"`   // empty uses the built-in shader
	FragmentShader string  `yaml:"fragment_shader"` // empty uses the built-in shader
	WatchShaders   bool    `yaml:"watch_shaders"`
}

// CameraConfig holds orbit camera and projection settings.
type CameraConfig struct {
	FovY            float32 `yaml:"fov"` // degrees
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	Distance        float32 `yaml:"distance"`
	Pitch           float32 `yaml:"pitch"` // radians
	Yaw             float32 `yaml:"yaw"`   // radians
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
	AutoFit         bool    `yaml:"auto_fit"`
}

// LightConfig holds the directional light, given in eye space.
type LightConfig struct {
	Direction [3]float32 `yaml:"direction"`
	Ambient   float32    `yaml:"ambient"`
	Diffuse   float32    `yaml:"diffuse"`
}

// RevealConfig holds the reveal widget geometry.
type RevealConfig struct {
	Outer   float32        `yaml:"outer"`
	Inner   float32        `yaml:"inner"`
	Gap     float32        `yaml:"gap"` // unrevealed degrees of each turn
	Sectors []SectorConfig `yaml:"sectors"`
}

// SectorConfig describes one ring sector. Angles are degrees clockwise from +Y.
type SectorConfig struct {
	Center    [2]float32 `yaml:"center"`
	Begin     float32    `yaml:"begin"`
	End       float32    `yaml:"end"`
	Direction string     `yaml:"direction"`
	Color     [3]float32 `yaml:"color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "cvlogo",
			Width:   640,
			Height:  640,
			VSync:   true,
			Samples: 4,
		},
		Viewer: ViewerConfig{
			Model:  "assets/icosahedron.obj",
			Radius: 2 * 0.618,
		},
		Camera: CameraConfig{
			FovY:            45,
			Near:            0.1,
			Far:             100,
			Distance:        5,
			Pitch:           0.5,
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
			AutoFit:         true,
		},
		Light: LightConfig{
			Direction: [3]float32{0, 0, 1},
			Ambient:   0.2,
			Diffuse:   1,
		},
		Reveal: RevealConfig{
			Outer: 0.3,
			Inner: 0.15,
			Gap:   60,
			Sectors: []SectorConfig{
				{Center: [2]float32{0, 0.5}, Begin: 150, End: 210, Direction: "counterclockwise", Color: [3]float32{1, 0, 0}},
				{Center: [2]float32{-0.4330127, -0.25}, Begin: 30, End: 90, Direction: "counterclockwise", Color: [3]float32{0, 1, 0}},
				{Center: [2]float32{0.4330127, -0.25}, Begin: 330, End: 30, Direction: "counterclockwise", Color: [3]float32{0, 0, 1}},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "cvlogo",
		},
	}
}
