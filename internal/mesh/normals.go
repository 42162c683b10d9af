package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cvlogo/pkg/math"
)

// NormalTable holds one shading normal per vertex, parallel to Mesh.Vertices.
type NormalTable []math.Vec3

// SynthesizeNormals derives smooth shading normals from face connectivity.
//
// Each face contributes its cross-product normal, rescaled so its length is
// the apex angle asin(|ab x ac| / (|ab|*|ac|)) rather than the face area.
// The same contribution is added to all three corners. Accumulators are
// normalized at the end; a vertex touched only by degenerate faces (or by
// none) keeps the zero vector.
//
// The result depends only on the mesh, so callers compute it once at setup.
func SynthesizeNormals(m *Mesh) (NormalTable, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	normals := make(NormalTable, len(m.Vertices))
	for _, f := range m.Faces {
		n := faceContribution(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
		for _, idx := range f {
			normals[idx] = normals[idx].Add(n)
		}
	}

	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals, nil
}

// faceContribution returns the angle-weighted face normal of triangle abc.
// Collinear or coincident corners yield the zero vector.
func faceContribution(a, b, c math.Vec3) math.Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	n := ab.Cross(ac)
	nLen := n.Length()
	if nLen == 0 {
		return n
	}
	// float32 rounding can push the sine slightly past 1 on right angles.
	sin := math32.Min(nLen/(ab.Length()*ac.Length()), 1)
	return n.Scale(math32.Asin(sin) / nLen)
}
