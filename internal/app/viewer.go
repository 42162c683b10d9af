package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cvlogo/internal/config"
	"github.com/Faultbox/cvlogo/internal/engine/camera"
	"github.com/Faultbox/cvlogo/internal/engine/input"
	"github.com/Faultbox/cvlogo/internal/engine/renderer"
	"github.com/Faultbox/cvlogo/internal/logger"
	"github.com/Faultbox/cvlogo/internal/mesh"
	"github.com/Faultbox/cvlogo/internal/scene"
)

// Viewer shows three smooth-shaded copies of a mesh under an orbit camera.
type Viewer struct {
	setup      *scene.Setup
	meshes     *scene.MeshRenderer
	controller *input.Controller
}

// NewViewer prepares the scene for m: normals are synthesized here, once.
func NewViewer(cfg *config.Config, m *mesh.Mesh) (*Viewer, error) {
	setup, err := scene.NewSetup(m, cfg.Viewer.Radius)
	if err != nil {
		return nil, err
	}

	cam := camera.NewOrbitCamera()
	cam.Distance = cfg.Camera.Distance
	cam.RotationX = cfg.Camera.Pitch
	cam.RotationY = cfg.Camera.Yaw
	if cfg.Camera.DragSensitivity > 0 {
		cam.DragSensitivity = cfg.Camera.DragSensitivity
	}
	if cfg.Camera.ZoomSensitivity > 0 {
		cam.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	}

	ctrl := input.NewController(cam, input.ProjectionConfig{
		FovY: cfg.Camera.FovY,
		Near: cfg.Camera.Near,
		Far:  cfg.Camera.Far,
	}, cfg.Window.Width, cfg.Window.Height)

	if cfg.Camera.AutoFit {
		lo, hi := setup.Bounds()
		cam.FitToBounds(lo, hi, ctrl.FovY())
		logger.Debug("camera fitted to scene",
			zap.Any("min", lo),
			zap.Any("max", hi),
			zap.Float32("distance", cam.Distance),
		)
	}

	logger.Info("viewer scene ready",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
		zap.Float32("radius", cfg.Viewer.Radius),
	)

	return &Viewer{
		setup:      setup,
		meshes:     scene.NewMeshRenderer(setup),
		controller: ctrl,
	}, nil
}

// LoadViewer loads the configured model and builds the viewer scene.
func LoadViewer(cfg *config.Config) (*Viewer, error) {
	m, err := mesh.Load(cfg.Viewer.Model)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}
	c := m.Centroid()
	logger.Info("model loaded",
		zap.String("path", cfg.Viewer.Model),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
		zap.Float32s("centroid", []float32{c.X, c.Y, c.Z}))
	return NewViewer(cfg, m)
}

// Name implements Scene.
func (v *Viewer) Name() string { return "viewer" }

// RendererConfig implements Scene.
func (v *Viewer) RendererConfig(width, height int) renderer.Config {
	return renderer.ViewerConfig(width, height)
}

// Lit implements Scene.
func (v *Viewer) Lit() bool { return true }

// HandleEvent implements Scene.
func (v *Viewer) HandleEvent(e input.Event) {
	v.controller.HandleEvent(e)
}

// Update implements Scene.
func (v *Viewer) Update(dt float32) {
	v.controller.Update(dt)
}

// Draw implements Scene.
func (v *Viewer) Draw(b scene.Backend) (int, error) {
	if err := v.meshes.Draw(b, v.controller.ViewMatrix(), v.controller.ProjectionMatrix()); err != nil {
		return 0, err
	}
	return v.meshes.Triangles(), nil
}

// Fields implements Scene.
func (v *Viewer) Fields() []zap.Field {
	return []zap.Field{
		zap.Float32("distance", v.controller.Camera.Distance),
		zap.Float32("yaw", v.controller.Camera.RotationY),
		zap.Float32("pitch", v.controller.Camera.RotationX),
	}
}
