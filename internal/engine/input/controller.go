package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cvlogo/internal/engine/camera"
	"github.com/Faultbox/cvlogo/pkg/math"
)

// ProjectionConfig describes the perspective projection.
type ProjectionConfig struct {
	FovY float32 // vertical field of view, degrees
	Near float32
	Far  float32
}

// Controller turns input events into the view and projection matrices
// used to draw the scene.
type Controller struct {
	Camera *camera.OrbitCamera

	projection ProjectionConfig
	aspect     float32

	dragging bool
	held     map[sdl.Scancode]bool
}

// NewController returns a controller for a viewport of the given size.
func NewController(cam *camera.OrbitCamera, proj ProjectionConfig, width, height int) *Controller {
	c := &Controller{
		Camera:     cam,
		projection: proj,
		held:       make(map[sdl.Scancode]bool),
	}
	c.Resize(width, height)
	return c
}

// Resize updates the aspect ratio. Zero sizes are ignored.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		if c.aspect == 0 {
			c.aspect = 1
		}
		return
	}
	c.aspect = float32(width) / float32(height)
}

// Aspect returns the current viewport aspect ratio.
func (c *Controller) Aspect() float32 {
	return c.aspect
}

// FovY returns the vertical field of view in radians.
func (c *Controller) FovY() float32 {
	return math.Radians(c.projection.FovY)
}

// ViewMatrix returns the camera view matrix.
func (c *Controller) ViewMatrix() math.Mat4 {
	return c.Camera.ViewMatrix()
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Controller) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY(), c.aspect, c.projection.Near, c.projection.Far)
}

// HandleEvent applies one input event.
// Left drag orbits, the wheel zooms, and held WASD/QE keys pan on Update.
func (c *Controller) HandleEvent(e Event) {
	switch e.Type {
	case EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT {
			c.dragging = true
		}
	case EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT {
			c.dragging = false
		}
	case EventMouseMove:
		if c.dragging {
			c.Camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
		}
	case EventMouseWheel:
		c.Camera.HandleZoom(e.Wheel)
	case EventKeyDown:
		c.held[e.Key] = true
	case EventKeyUp:
		delete(c.held, e.Key)
	case EventWindowResize:
		c.Resize(e.Width, e.Height)
	}
}

// Update pans the camera for keys held during this frame.
// dt is the frame time in seconds; movement is tuned for 60 frames per second.
func (c *Controller) Update(dt float32) {
	var forward, right, up float32
	if c.held[sdl.SCANCODE_W] {
		forward++
	}
	if c.held[sdl.SCANCODE_S] {
		forward--
	}
	if c.held[sdl.SCANCODE_D] {
		right++
	}
	if c.held[sdl.SCANCODE_A] {
		right--
	}
	if c.held[sdl.SCANCODE_E] {
		up++
	}
	if c.held[sdl.SCANCODE_Q] {
		up--
	}
	if forward == 0 && right == 0 && up == 0 {
		return
	}
	scale := dt * 60
	c.Camera.HandleMovement(forward*scale, right*scale, up*scale)
}
