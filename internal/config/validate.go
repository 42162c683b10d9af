package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cvlogo/internal/logger"
	"github.com/Faultbox/cvlogo/internal/reveal"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks values the app cannot run with.
func (c *Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return invalid("window size %dx%d must be positive", w.Width, w.Height)
	}
	if w.Samples < 0 {
		return invalid("window.samples %d must not be negative", w.Samples)
	}
	if w.Frames < 0 {
		return invalid("window.frames %d must not be negative", w.Frames)
	}

	if c.Viewer.Radius <= 0 {
		return invalid("viewer.radius %g must be positive", c.Viewer.Radius)
	}
	if (c.Viewer.VertexShader == "") != (c.Viewer.FragmentShader == "") {
		return invalid("viewer.vertex_shader and viewer.fragment_shader must be set together")
	}

	cam := c.Camera
	if cam.FovY <= 0 || cam.FovY >= 180 {
		return invalid("camera.fov %g must be within (0, 180)", cam.FovY)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return invalid("camera clip planes near=%g far=%g", cam.Near, cam.Far)
	}
	if cam.Distance <= 0 {
		return invalid("camera.distance %g must be positive", cam.Distance)
	}

	d := c.Light.Direction
	if d[0] == 0 && d[1] == 0 && d[2] == 0 {
		return invalid("light.direction must not be zero")
	}

	r := c.Reveal
	if r.Inner < 0 || r.Inner >= r.Outer {
		return invalid("reveal radii inner=%g outer=%g: inner must be below outer", r.Inner, r.Outer)
	}
	if r.Gap < 0 || r.Gap >= 360 {
		return invalid("reveal.gap %g must be within [0, 360)", r.Gap)
	}
	if len(r.Sectors) != 3 {
		return invalid("reveal.sectors has %d entries, want 3", len(r.Sectors))
	}
	for i, s := range r.Sectors {
		if _, err := reveal.ParseDirection(s.Direction); err != nil {
			return fmt.Errorf("%w: reveal.sectors[%d]: %w", ErrInvalid, i, err)
		}
		if s.Begin < 0 || s.Begin > 360 || s.End < 0 || s.End > 360 {
			return invalid("reveal.sectors[%d] angles %g..%g must be within [0, 360]", i, s.Begin, s.End)
		}
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
