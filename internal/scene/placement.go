// Package scene places three copies of a mesh on a ring and draws them
// through a Backend with smooth shading normals.
package scene

import (
	"github.com/Faultbox/cvlogo/internal/engine/immediate"
	"github.com/Faultbox/cvlogo/pkg/math"
)

// InstanceCount is the number of mesh copies in the scene.
const InstanceCount = 3

// DefaultRadius is the ring radius: twice the golden-ratio conjugate.
const DefaultRadius float32 = 2 * 0.618

// Placements returns the model transform of each instance.
//
// Instance i sits at RotateY(120°·i)·(radius, 0, 0) and is itself turned
// by 60° + 120°·i about Y, so every copy faces the ring centre the same way.
func Placements(radius float32) [InstanceCount]math.Mat4 {
	var out [InstanceCount]math.Mat4
	step := math.Radians(360 / InstanceCount)
	for i := range out {
		angle := step * float32(i)
		origin := math.RotateY(angle).TransformVec3(math.Vec3{X: radius})
		out[i] = math.TranslateVec(origin).Mul(math.RotateY(math.Radians(60) + angle))
	}
	return out
}

// InstanceColor returns the flat colour of instance i: red, green, blue.
func InstanceColor(i int) immediate.Color {
	return immediate.FromBits(1 << uint(i%InstanceCount))
}
