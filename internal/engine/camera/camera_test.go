package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/cvlogo/pkg/math"
)

func near(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func TestPositionAtDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 1, Y: 2, Z: 3}

	for _, pitch := range []float32{-1, 0, 0.5, 1.2} {
		c.RotationX = pitch
		c.RotationY = pitch * 2
		if d := c.Position().Distance(c.Center); !near(d, c.Distance, 1e-4) {
			t.Errorf("pitch %v: distance %f, want %f", pitch, d, c.Distance)
		}
	}
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 2}
	c.RotationX = 0.3
	c.RotationY = 1.1

	p := c.ViewMatrix().TransformVec3(c.Center)
	if !near(p.X, 0, 1e-4) || !near(p.Y, 0, 1e-4) || !near(p.Z, -c.Distance, 1e-3) {
		t.Errorf("center in eye space = %+v, want (0, 0, %f)", p, -c.Distance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 100000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch %f, want clamp at %f", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -100000)
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch %f, want clamp at %f", c.RotationX, c.MinPitch)
	}

	yaw := c.RotationY
	c.HandleDrag(10, 0)
	if c.RotationY >= yaw {
		t.Error("dragging right should decrease yaw")
	}
}

func TestHandleZoom(t *testing.T) {
	tests := []struct {
		name  string
		delta float32
		check func(*OrbitCamera) bool
	}{
		{"in", 1, func(c *OrbitCamera) bool { return c.Distance < 5 }},
		{"out", -1, func(c *OrbitCamera) bool { return c.Distance > 5 }},
		{"clamp min", 1000, func(c *OrbitCamera) bool { return c.Distance == c.MinDistance }},
		{"clamp max", -1000, func(c *OrbitCamera) bool { return c.Distance == c.MaxDistance }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.HandleZoom(tt.delta)
			if !tt.check(c) {
				t.Errorf("unexpected distance %f", c.Distance)
			}
		})
	}
}

func TestHandleMovement(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleMovement(1, 0, 0)
	// Yaw 0 puts the eye on +Z, so forward moves the centre toward -Z.
	if c.Center.Z >= 0 || !near(c.Center.X, 0, 1e-6) {
		t.Errorf("forward moved centre to %+v", c.Center)
	}

	c = NewOrbitCamera()
	c.HandleMovement(0, 1, 0)
	if c.Center.X <= 0 {
		t.Errorf("right moved centre to %+v", c.Center)
	}

	c = NewOrbitCamera()
	c.HandleMovement(0, 0, 1)
	if c.Center.Y <= 0 {
		t.Errorf("up moved centre to %+v", c.Center)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	lo := math.Vec3{X: -2, Y: -1, Z: -2}
	hi := math.Vec3{X: 2, Y: 1, Z: 2}
	fov := math.Radians(45)

	c.FitToBounds(lo, hi, fov)

	if c.Center != (math.Vec3{}) {
		t.Errorf("center %+v, want origin", c.Center)
	}
	radius := hi.Sub(lo).Length() / 2
	if c.Distance*math32.Sin(fov/2) < radius-1e-4 {
		t.Errorf("distance %f too close for radius %f", c.Distance, radius)
	}

	// A huge box raises the zoom-out limit rather than clipping the fit.
	c.FitToBounds(lo.Scale(1000), hi.Scale(1000), fov)
	if c.Distance < 1000 || c.Distance > c.MaxDistance {
		t.Errorf("distance %f with max %f", c.Distance, c.MaxDistance)
	}
}
