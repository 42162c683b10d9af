package scene

import (
	"fmt"

	"github.com/Faultbox/cvlogo/internal/mesh"
	"github.com/Faultbox/cvlogo/pkg/math"
)

// Setup is the immutable per-run scene state: the mesh, its normals and
// the instance transforms. Normals are computed once here and never per frame.
type Setup struct {
	Mesh      *mesh.Mesh
	Normals   mesh.NormalTable
	Instances [InstanceCount]math.Mat4
}

// NewSetup validates m, synthesizes its normals and places the instances.
func NewSetup(m *mesh.Mesh, radius float32) (*Setup, error) {
	if m == nil {
		return nil, fmt.Errorf("scene setup: %w: nil mesh", mesh.ErrMalformedMesh)
	}
	normals, err := mesh.SynthesizeNormals(m)
	if err != nil {
		return nil, fmt.Errorf("scene setup: %w", err)
	}
	return &Setup{
		Mesh:      m,
		Normals:   normals,
		Instances: Placements(radius),
	}, nil
}

// Bounds returns the world-space bounding box of all placed instances.
func (s *Setup) Bounds() (lo, hi math.Vec3) {
	first := true
	for _, t := range s.Instances {
		for _, v := range s.Mesh.Vertices {
			p := t.TransformVec3(v)
			if first {
				lo, hi = p, p
				first = false
				continue
			}
			lo = lo.Min(p)
			hi = hi.Max(p)
		}
	}
	return lo, hi
}
