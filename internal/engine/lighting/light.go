// Package lighting describes the single directional light used for smooth
// shading of the viewer's instances.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cvlogo/pkg/math"
)

// Light is a directional light fixed in eye space, with colour-material
// semantics: the lit colour is base * (Ambient + Diffuse * max(N·L, 0)).
type Light struct {
	Direction math.Vec3 // unit vector pointing towards the light, eye space
	Ambient   float32
	Diffuse   float32
}

// Default matches the classic fixed-function LIGHT0: shining down the view
// axis from behind the eye, full diffuse, 0.2 global ambient.
func Default() Light {
	return Light{
		Direction: math.Vec3{Z: 1},
		Ambient:   0.2,
		Diffuse:   1,
	}
}

// Intensity returns the lighting factor for a unit eye-space normal.
// It mirrors the fragment shader and is used to sanity check parameters.
func (l Light) Intensity(normal math.Vec3) float32 {
	return l.Ambient + l.Diffuse*math32.Max(normal.Dot(l.Direction), 0)
}
