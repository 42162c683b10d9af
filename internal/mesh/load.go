package mesh

import (
	"errors"
	"fmt"
	"os"

	"github.com/Faultbox/cvlogo/pkg/formats"
	"github.com/Faultbox/cvlogo/pkg/math"
)

// Load reads an OBJ model from disk.
//
// A missing or unreadable file wraps ErrResourceLoad. Unparseable data or a
// face index outside the vertex list wraps ErrMalformedMesh.
func Load(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceLoad, err)
	}

	obj, err := formats.ParseOBJ(data)
	if err != nil {
		if errors.Is(err, formats.ErrMalformedOBJ) || errors.Is(err, formats.ErrEmptyOBJ) {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedMesh, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrResourceLoad, path, err)
	}

	m, err := FromOBJ(obj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// FromOBJ converts parsed OBJ geometry into a validated Mesh.
func FromOBJ(obj *formats.OBJ) (*Mesh, error) {
	m := &Mesh{
		Vertices: make([]Vertex, len(obj.Positions)),
		Faces:    make([]Face, len(obj.Faces)),
	}
	for i, p := range obj.Positions {
		m.Vertices[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	for fi, f := range obj.Faces {
		for corner, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, &MalformedMeshError{Face: fi, Corner: corner, Index: int64(idx), Count: len(m.Vertices)}
			}
			m.Faces[fi][corner] = uint32(idx)
		}
	}
	return m, nil
}
