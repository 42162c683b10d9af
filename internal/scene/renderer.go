package scene

import (
	"fmt"

	"github.com/Faultbox/cvlogo/internal/engine/immediate"
	"github.com/Faultbox/cvlogo/pkg/math"
)

// Backend is the drawing surface the renderer needs. Both
// immediate.Context and immediate.Recorder satisfy it.
type Backend interface {
	SetMatrices(projection, modelView math.Mat4) error
	SetColor(c immediate.Color) error
	Begin()
	Normal(n math.Vec3)
	Vertex(p math.Vec3)
	End() error
}

// MeshRenderer draws every instance of a Setup.
type MeshRenderer struct {
	Setup *Setup
}

// NewMeshRenderer returns a renderer for s.
func NewMeshRenderer(s *Setup) *MeshRenderer {
	return &MeshRenderer{Setup: s}
}

// Draw submits all instances with the given camera matrices. The first
// backend failure aborts the frame.
func (r *MeshRenderer) Draw(b Backend, view, projection math.Mat4) error {
	m := r.Setup.Mesh
	normals := r.Setup.Normals

	for i, t := range r.Setup.Instances {
		if err := b.SetMatrices(projection, view.Mul(t)); err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}
		if err := b.SetColor(InstanceColor(i)); err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}

		b.Begin()
		for _, f := range m.Faces {
			for _, idx := range f {
				b.Normal(normals[idx])
				b.Vertex(m.Vertices[idx])
			}
		}
		if err := b.End(); err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}
	}
	return nil
}

// Triangles returns how many triangles one Draw submits.
func (r *MeshRenderer) Triangles() int {
	return len(r.Setup.Mesh.Faces) * len(r.Setup.Instances)
}
