// Package renderer owns the OpenGL global state: initialisation, the
// per-scene capability set, viewport and frame clearing.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cvlogo/internal/engine/glerr"
	"github.com/Faultbox/cvlogo/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	DepthTest   bool
	Multisample bool
	Blend       bool // source-alpha blending
	CullBack    bool // cull back faces, counter-clockwise is front

	ClearColor [4]float32
}

// ViewerConfig is the state used for the lit mesh scene.
func ViewerConfig(width, height int) Config {
	return Config{
		Width:       width,
		Height:      height,
		DepthTest:   true,
		Multisample: true,
		Blend:       true,
		CullBack:    true,
		ClearColor:  [4]float32{0, 0, 0, 1},
	}
}

// WidgetConfig is the state used for the flat 2D reveal widget.
func WidgetConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		Blend:      true,
		ClearColor: [4]float32{0, 0, 0, 1},
	}
}

// Renderer handles global OpenGL state.
type Renderer struct {
	config Config
}

// New initialises OpenGL and applies cfg.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	if err := r.apply(); err != nil {
		return nil, err
	}
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) apply() error {
	cfg := r.config

	setCap(gl.DEPTH_TEST, cfg.DepthTest)
	if cfg.DepthTest {
		gl.DepthFunc(gl.LESS)
	}
	setCap(gl.MULTISAMPLE, cfg.Multisample)
	setCap(gl.BLEND, cfg.Blend)
	if cfg.Blend {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	setCap(gl.CULL_FACE, cfg.CullBack)
	if cfg.CullBack {
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	logger.Debug("renderer state applied",
		zap.Bool("depth_test", cfg.DepthTest),
		zap.Bool("multisample", cfg.Multisample),
		zap.Bool("blend", cfg.Blend),
		zap.Bool("cull_back", cfg.CullBack),
	)
	return glerr.Check("apply renderer state")
}

func setCap(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Close logs shutdown. The GL context owns everything else.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() error {
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if r.config.DepthTest {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
	return glerr.Check("clear")
}

// ReadPixels returns the RGBA contents of the back buffer, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int, error) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return nil, 0, 0, fmt.Errorf("read pixels: empty viewport %dx%d", w, h)
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	if err := glerr.Check("read pixels"); err != nil {
		return nil, 0, 0, err
	}
	return pixels, w, h, nil
}
