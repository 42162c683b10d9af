package mesh

import (
	"errors"
	"fmt"
)

// Mesh errors.
var (
	ErrMalformedMesh = errors.New("malformed mesh")
	ErrResourceLoad  = errors.New("resource load failed")
)

// MalformedMeshError reports a face that references a vertex outside the
// vertex list.
type MalformedMeshError struct {
	Face   int   // face position in Mesh.Faces
	Corner int   // 0, 1 or 2
	Index  int64 // offending vertex index
	Count  int   // number of vertices in the mesh
}

func (e *MalformedMeshError) Error() string {
	return fmt.Sprintf("%v: face %d corner %d references vertex %d, mesh has %d vertices",
		ErrMalformedMesh, e.Face, e.Corner, e.Index, e.Count)
}

// Unwrap lets errors.Is match ErrMalformedMesh.
func (e *MalformedMeshError) Unwrap() error {
	return ErrMalformedMesh
}
