package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cvlogo/internal/config"
	"github.com/Faultbox/cvlogo/internal/engine/capture"
	"github.com/Faultbox/cvlogo/internal/engine/immediate"
	"github.com/Faultbox/cvlogo/internal/engine/input"
	"github.com/Faultbox/cvlogo/internal/engine/lighting"
	"github.com/Faultbox/cvlogo/internal/engine/renderer"
	"github.com/Faultbox/cvlogo/internal/engine/shader"
	"github.com/Faultbox/cvlogo/internal/engine/window"
	"github.com/Faultbox/cvlogo/internal/logger"
	"github.com/Faultbox/cvlogo/pkg/math"
)

// App owns the window, the GL state and the frame loop for one scene.
type App struct {
	config   *config.Config
	scene    Scene
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	backend  *immediate.Context
	capturer *capture.Capturer

	source  shader.Source
	watcher *shader.Watcher
}

// Run draws sc until the window closes, the frame limit is reached or an
// error occurs. Headless configs never open a window.
func Run(cfg *config.Config, sc Scene) error {
	if cfg.Window.Headless {
		_, err := RunHeadless(sc, cfg.Window.Frames)
		return err
	}

	a, err := New(cfg, sc)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Loop()
}

// New opens the window and prepares GL resources for sc.
func New(cfg *config.Config, sc Scene) (*App, error) {
	logger.Info("initializing app",
		zap.String("scene", sc.Name()),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		config:   cfg,
		scene:    sc,
		capturer: capture.New(cfg.Capture.Dir, cfg.Capture.Prefix),
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title + " - " + sc.Name(),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(sc.RendererConfig(width, height))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.source, err = shader.Load(cfg.Viewer.VertexShader, cfg.Viewer.FragmentShader, immediate.DefaultSource())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load shaders: %w", err)
	}

	a.backend, err = immediate.New(a.source, lightFromConfig(cfg.Light))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create draw backend: %w", err)
	}
	a.backend.SetLighting(sc.Lit())

	if cfg.Viewer.WatchShaders {
		if paths := a.source.Paths(); len(paths) > 0 {
			a.watcher, err = shader.NewWatcher(paths...)
			if err != nil {
				logger.Warn("shader hot reload disabled", zap.Error(err))
			} else {
				logger.Info("watching shaders", zap.Strings("files", paths))
			}
		} else {
			logger.Warn("shader hot reload needs shader files; using built-in shaders")
		}
	}

	// Fullscreen and window managers may not honour the requested size.
	winWidth, winHeight := a.window.GetSize()
	sc.HandleEvent(input.Event{Type: input.EventWindowResize, Width: winWidth, Height: winHeight})

	// Create input handler
	a.input = input.New()

	logger.Info("app initialized successfully")
	return a, nil
}

func lightFromConfig(cfg config.LightConfig) lighting.Light {
	l := lighting.Light{
		Direction: math.Vec3{X: cfg.Direction[0], Y: cfg.Direction[1], Z: cfg.Direction[2]}.Normalize(),
		Ambient:   cfg.Ambient,
		Diffuse:   cfg.Diffuse,
	}
	if peak := l.Intensity(l.Direction); peak > 1 {
		logger.Debug("light saturates surfaces facing it", zap.Float32("peak", peak))
	}
	return l
}

// Loop runs the frame loop.
func (a *App) Loop() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	frames := 0

	logger.Info("starting frame loop")

	for a.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			// Quit event received
			a.running = false
			break
		}

		if a.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			a.running = false
			break
		}
		screenshot := a.input.IsKeyPressed(sdl.SCANCODE_F12)
		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowResize {
				a.renderer.Resize(a.window.DrawableSize())
			}
			a.scene.HandleEvent(event)
		}

		// 2. Update scene state
		a.scene.Update(float32(dt))

		// 3. Render
		if err := a.renderer.Begin(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if _, err := a.scene.Draw(a.backend); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if screenshot {
			a.saveScreenshot()
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		a.reloadShaders()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			fields := append([]zap.Field{
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			}, a.scene.Fields()...)
			logger.Debug("fps", fields...)
			a.window.SetTitle(fmt.Sprintf("%s - %s (%d fps)", a.config.Window.Title, a.scene.Name(), frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		frames++
		if a.config.Window.Frames > 0 && frames >= a.config.Window.Frames {
			logger.Info("frame limit reached", zap.Int("frames", frames))
			a.running = false
		}
	}

	return nil
}

func (a *App) saveScreenshot() {
	pixels, w, h, err := a.renderer.ReadPixels()
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	path, err := a.capturer.Save(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// reloadShaders recompiles watched shaders. A broken edit keeps the previous program.
func (a *App) reloadShaders() {
	if a.watcher == nil || !a.watcher.Changed() {
		return
	}
	src, err := a.source.Reload()
	if err != nil {
		logger.Error("shader reload failed", zap.Error(err))
		return
	}
	if err := a.backend.Reload(src); err != nil {
		logger.Error("shader reload failed", zap.String("source", src.Name()), zap.Error(err))
		return
	}
	a.source = src
}

// Close releases everything New created.
func (a *App) Close() {
	logger.Info("closing app")

	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.backend != nil {
		a.backend.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
