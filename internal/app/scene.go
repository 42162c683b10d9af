// Package app runs the viewer and the reveal widget: window setup, the
// frame loop, headless rendering and shader hot reload.
package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cvlogo/internal/engine/input"
	"github.com/Faultbox/cvlogo/internal/engine/renderer"
	"github.com/Faultbox/cvlogo/internal/scene"
)

// Scene is the content drawn by the frame loop.
type Scene interface {
	// Name identifies the scene in logs and the window title.
	Name() string

	// RendererConfig returns the GL state the scene is drawn with.
	RendererConfig(width, height int) renderer.Config

	// Lit reports whether the directional light applies.
	Lit() bool

	// HandleEvent processes one input event.
	HandleEvent(e input.Event)

	// Update advances time-based state. dt is in seconds.
	Update(dt float32)

	// Draw submits one frame and returns the number of triangles drawn.
	Draw(b scene.Backend) (int, error)

	// Fields describes the scene state for frame logs.
	Fields() []zap.Field
}
