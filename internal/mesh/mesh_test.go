package mesh

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/cvlogo/pkg/math"
)

func TestValidate(t *testing.T) {
	m := unitCube()
	if err := m.Validate(); err != nil {
		t.Errorf("valid cube failed validation: %v", err)
	}

	m.Faces = append(m.Faces, Face{0, 8, 1})
	err := m.Validate()
	var mErr *MalformedMeshError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected *MalformedMeshError, got %v", err)
	}
	if mErr.Face != 12 || mErr.Corner != 1 || mErr.Index != 8 {
		t.Errorf("unexpected error details: %+v", mErr)
	}
}

func TestBoundsAndCentroid(t *testing.T) {
	m := unitCube()
	lo, hi := m.Bounds()
	if lo != (math.Vec3{}) || hi != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("bounds = %v..%v, want origin..(1,1,1)", lo, hi)
	}
	if c := m.Centroid(); c != (math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Errorf("centroid = %v, want (0.5, 0.5, 0.5)", c)
	}

	var empty Mesh
	if lo, hi := empty.Bounds(); lo != hi {
		t.Errorf("empty mesh bounds should be zero, got %v..%v", lo, hi)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "tri.obj", "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Vertices) != 4 || len(m.Faces) != 2 {
		t.Errorf("expected 4 vertices and 2 faces, got %d and %d", len(m.Vertices), len(m.Faces))
	}
	if m.Faces[1] != (Face{0, 2, 3}) {
		t.Errorf("second fan triangle = %v, want [0 2 3]", m.Faces[1])
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want error
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.obj") },
			want: ErrResourceLoad,
		},
		{
			name: "syntax error",
			path: func(t *testing.T) string { return writeFile(t, "bad.obj", "v 0 0\nf 1 1 1\n") },
			want: ErrMalformedMesh,
		},
		{
			name: "no faces",
			path: func(t *testing.T) string { return writeFile(t, "empty.obj", "v 0 0 0\n") },
			want: ErrMalformedMesh,
		},
		{
			name: "index out of range",
			path: func(t *testing.T) string { return writeFile(t, "oob.obj", "v 0 0 0\nv 1 0 0\nf 1 2 7\n") },
			want: ErrMalformedMesh,
		},
		{
			name: "relative index before first vertex",
			path: func(t *testing.T) string { return writeFile(t, "neg.obj", "v 0 0 0\nf -1 -2 -3\n") },
			want: ErrMalformedMesh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadBundledModel(t *testing.T) {
	m, err := Load(filepath.Join("..", "..", "assets", "icosahedron.obj"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Vertices) != 12 || len(m.Faces) != 20 {
		t.Fatalf("expected 12 vertices and 20 faces, got %d/%d", len(m.Vertices), len(m.Faces))
	}

	normals, err := SynthesizeNormals(m)
	if err != nil {
		t.Fatal(err)
	}
	// On a centred regular solid every smooth normal is the radial direction.
	for i, v := range m.Vertices {
		if !near(normals[i], v.Normalize(), 1e-4) {
			t.Errorf("vertex %d: normal %+v, want %+v", i, normals[i], v.Normalize())
		}
	}
}
