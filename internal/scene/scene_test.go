package scene

import (
	"errors"
	"testing"

	"github.com/Faultbox/cvlogo/internal/engine/immediate"
	"github.com/Faultbox/cvlogo/internal/mesh"
	"github.com/Faultbox/cvlogo/pkg/math"
)

func near(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func tetrahedron() *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []mesh.Vertex{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Faces: []mesh.Face{
			{0, 2, 1},
			{0, 1, 3},
			{0, 3, 2},
			{1, 2, 3},
		},
	}
}

func TestPlacementsOnRing(t *testing.T) {
	tests := []struct {
		name   string
		radius float32
	}{
		{"default", DefaultRadius},
		{"unit", 1},
		{"large", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := Placements(tt.radius)
			var origins [InstanceCount]math.Vec3
			for i, p := range ps {
				origins[i] = p.TransformVec3(math.Vec3{})
				if !near(origins[i].Length(), tt.radius, 1e-4) {
					t.Errorf("instance %d at distance %f, want %f", i, origins[i].Length(), tt.radius)
				}
				if !near(origins[i].Y, 0, 1e-6) {
					t.Errorf("instance %d off the ring plane: y=%f", i, origins[i].Y)
				}
			}

			// Equidistant neighbours with 120° separation.
			chord := tt.radius * 1.7320508
			for i := range origins {
				j := (i + 1) % InstanceCount
				if d := origins[i].Distance(origins[j]); !near(d, chord, 1e-3*tt.radius) {
					t.Errorf("distance %d-%d = %f, want %f", i, j, d, chord)
				}
				cos := origins[i].Dot(origins[j]) / (tt.radius * tt.radius)
				if !near(cos, -0.5, 1e-4) {
					t.Errorf("cos angle %d-%d = %f, want -0.5", i, j, cos)
				}
			}
		})
	}
}

func TestPlacementsFirstInstance(t *testing.T) {
	p := Placements(2)[0]
	if got := p.Translation(); !near(got.X, 2, 1e-6) || !near(got.Z, 0, 1e-6) {
		t.Errorf("first instance at %+v, want (2,0,0)", got)
	}
	// 60° about Y takes +X to (cos60, 0, -sin60).
	d := p.TransformDirection(math.Vec3{X: 1})
	if !near(d.X, 0.5, 1e-5) || !near(d.Z, -0.8660254, 1e-5) {
		t.Errorf("first instance orientation: +X maps to %+v", d)
	}
}

func TestInstanceColor(t *testing.T) {
	want := []immediate.Color{immediate.ColorRed, immediate.ColorGreen, immediate.ColorBlue}
	for i, w := range want {
		if got := InstanceColor(i); got != w {
			t.Errorf("InstanceColor(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestNewSetup(t *testing.T) {
	s, err := NewSetup(tetrahedron(), DefaultRadius)
	if err != nil {
		t.Fatalf("NewSetup failed: %v", err)
	}
	if len(s.Normals) != len(s.Mesh.Vertices) {
		t.Errorf("expected %d normals, got %d", len(s.Mesh.Vertices), len(s.Normals))
	}
	if s.Instances != Placements(DefaultRadius) {
		t.Error("instances do not match Placements")
	}

	lo, hi := s.Bounds()
	if hi.X <= lo.X || hi.Z <= lo.Z {
		t.Errorf("degenerate bounds: %+v %+v", lo, hi)
	}
	if hi.X < DefaultRadius {
		t.Errorf("bounds should enclose the first instance: hi.X=%f", hi.X)
	}
}

func TestNewSetupRejectsBadMesh(t *testing.T) {
	m := tetrahedron()
	m.Faces = append(m.Faces, mesh.Face{0, 1, 9})

	_, err := NewSetup(m, 1)
	if !errors.Is(err, mesh.ErrMalformedMesh) {
		t.Fatalf("expected ErrMalformedMesh, got %v", err)
	}
	var me *mesh.MalformedMeshError
	if !errors.As(err, &me) || me.Index != 9 {
		t.Errorf("expected MalformedMeshError for index 9, got %v", err)
	}

	if _, err := NewSetup(nil, 1); !errors.Is(err, mesh.ErrMalformedMesh) {
		t.Errorf("nil mesh: expected ErrMalformedMesh, got %v", err)
	}
}

func TestDrawSubmitsEveryInstance(t *testing.T) {
	s, err := NewSetup(tetrahedron(), DefaultRadius)
	if err != nil {
		t.Fatal(err)
	}
	view := math.Translate(0, 0, -5)
	proj := math.Perspective(math.Radians(45), 1, 0.1, 100)

	rec := immediate.NewRecorder()
	r := NewMeshRenderer(s)
	if err := r.Draw(rec, view, proj); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if rec.MatrixLoads != InstanceCount || rec.ColorSets != InstanceCount {
		t.Errorf("expected one matrix load and colour per instance, got %d/%d", rec.MatrixLoads, rec.ColorSets)
	}
	if len(rec.Batches) != InstanceCount {
		t.Fatalf("expected %d batches, got %d", InstanceCount, len(rec.Batches))
	}
	if rec.Triangles() != r.Triangles() {
		t.Errorf("expected %d triangles, got %d", r.Triangles(), rec.Triangles())
	}

	for i, b := range rec.Batches {
		if b.Projection != proj {
			t.Errorf("batch %d: wrong projection", i)
		}
		if b.ModelView != view.Mul(s.Instances[i]) {
			t.Errorf("batch %d: model-view is not view x instance", i)
		}
		for vi, v := range b.Vertices {
			f := s.Mesh.Faces[vi/3]
			idx := f[vi%3]
			if v.Position != s.Mesh.Vertices[idx] {
				t.Fatalf("batch %d vertex %d: corner order not preserved", i, vi)
			}
			if v.Normal != s.Normals[idx] {
				t.Fatalf("batch %d vertex %d: wrong normal", i, vi)
			}
			if v.Color != InstanceColor(i) {
				t.Fatalf("batch %d vertex %d: wrong colour", i, vi)
			}
		}
	}
}

func TestDrawDoesNotMutateSetup(t *testing.T) {
	s, err := NewSetup(tetrahedron(), 1)
	if err != nil {
		t.Fatal(err)
	}
	before := append(mesh.NormalTable(nil), s.Normals...)
	verts := append([]mesh.Vertex(nil), s.Mesh.Vertices...)

	r := NewMeshRenderer(s)
	for range 3 {
		if err := r.Draw(immediate.NewRecorder(), math.Identity(), math.Identity()); err != nil {
			t.Fatal(err)
		}
	}
	for i := range before {
		if before[i] != s.Normals[i] || verts[i] != s.Mesh.Vertices[i] {
			t.Fatalf("setup changed at vertex %d", i)
		}
	}
}

func TestDrawPropagatesBackendError(t *testing.T) {
	s, err := NewSetup(tetrahedron(), 1)
	if err != nil {
		t.Fatal(err)
	}
	injected := errors.New("context lost")
	rec := immediate.NewRecorder()
	rec.Err = injected

	err = NewMeshRenderer(s).Draw(rec, math.Identity(), math.Identity())
	if !errors.Is(err, injected) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if len(rec.Batches) != 0 {
		t.Errorf("nothing should be submitted after a failure, got %d batches", len(rec.Batches))
	}
}
