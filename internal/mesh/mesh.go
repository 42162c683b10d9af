// Package mesh holds the triangle mesh shown by the viewer and derives the
// per-vertex shading normals used for smooth lighting.
package mesh

import (
	"github.com/Faultbox/cvlogo/pkg/math"
)

// Vertex is a vertex position in model space.
type Vertex = math.Vec3

// Face is a triangle as three indices into Mesh.Vertices, wound
// counter-clockwise when seen from the front.
type Face [3]uint32

// Mesh is a static triangle mesh. It is read-only once loaded.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// Validate checks that every face index refers to an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for fi, f := range m.Faces {
		for corner, idx := range f {
			if int(idx) >= n {
				return &MalformedMeshError{Face: fi, Corner: corner, Index: int64(idx), Count: n}
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh has zero bounds.
func (m *Mesh) Bounds() (lo, hi math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}

// Centroid returns the mean vertex position.
func (m *Mesh) Centroid() math.Vec3 {
	if len(m.Vertices) == 0 {
		return math.Vec3{}
	}
	var sum math.Vec3
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float32(len(m.Vertices)))
}
