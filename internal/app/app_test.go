package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/cvlogo/internal/config"
	"github.com/Faultbox/cvlogo/internal/engine/input"
	"github.com/Faultbox/cvlogo/internal/mesh"
	"github.com/Faultbox/cvlogo/internal/reveal"
)

const cubeOBJ = `# unit cube
o cube
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 0 0 1
v 1 0 1
v 1 1 1
v 0 1 1
f 1 4 3 2
f 5 6 7 8
f 1 2 6 5
f 4 8 7 3
f 1 5 8 4
f 2 3 7 6
`

func writeCube(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cube.obj")
	if err := os.WriteFile(path, []byte(cubeOBJ), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestViewerHeadless(t *testing.T) {
	cfg := config.Default()
	cfg.Viewer.Model = writeCube(t)

	v, err := LoadViewer(cfg)
	if err != nil {
		t.Fatalf("LoadViewer failed: %v", err)
	}

	stats, err := RunHeadless(v, 3)
	if err != nil {
		t.Fatalf("RunHeadless failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(stats))
	}
	for _, s := range stats {
		// 6 quads fan into 12 triangles, drawn three times.
		if s.Triangles != 36 || s.Batches != 3 {
			t.Errorf("frame %d: %d triangles in %d batches", s.Frame, s.Triangles, s.Batches)
		}
	}
}

func TestViewerCameraInput(t *testing.T) {
	cfg := config.Default()
	m, err := mesh.Load(writeCube(t))
	if err != nil {
		t.Fatal(err)
	}
	v, err := NewViewer(cfg, m)
	if err != nil {
		t.Fatal(err)
	}

	before := v.controller.Camera.Distance
	v.HandleEvent(input.Event{Type: input.EventMouseWheel, Wheel: 1})
	if v.controller.Camera.Distance >= before {
		t.Error("wheel should zoom the viewer camera")
	}
	if len(v.Fields()) == 0 {
		t.Error("viewer should describe its camera in frame logs")
	}
}

func TestLoadViewerErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Viewer.Model = filepath.Join(t.TempDir(), "missing.obj")
	if _, err := LoadViewer(cfg); !errors.Is(err, mesh.ErrResourceLoad) {
		t.Errorf("missing model: expected ErrResourceLoad, got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.obj")
	if err := os.WriteFile(bad, []byte("v 0 0 0\nv 1 0 0\nf 1 2 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Viewer.Model = bad
	if _, err := LoadViewer(cfg); !errors.Is(err, mesh.ErrMalformedMesh) {
		t.Errorf("bad index: expected ErrMalformedMesh, got %v", err)
	}
}

func TestSectorsFromDefaultConfig(t *testing.T) {
	got, err := Sectors(config.Default().Reveal)
	if err != nil {
		t.Fatalf("Sectors failed: %v", err)
	}
	want := reveal.DefaultSectors()
	for i := range want {
		g, w := got[i], want[i]
		if g.Begin != w.Begin || g.End != w.End || g.Direction != w.Direction || g.Color != w.Color {
			t.Errorf("sector %d = %+v, want %+v", i, g, w)
		}
		if math32.Abs(g.Center.X-w.Center.X) > 1e-6 || math32.Abs(g.Center.Y-w.Center.Y) > 1e-6 {
			t.Errorf("sector %d centre %v, want %v", i, g.Center, w.Center)
		}
		if g.Outer != w.Outer || g.Inner != w.Inner {
			t.Errorf("sector %d radii %v/%v", i, g.Outer, g.Inner)
		}
	}
}

func TestSectorsRejectsBadConfig(t *testing.T) {
	cfg := config.Default().Reveal
	cfg.Sectors[0].Direction = "up"
	if _, err := Sectors(cfg); !errors.Is(err, reveal.ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}

	cfg = config.Default().Reveal
	cfg.Sectors = cfg.Sectors[:1]
	if _, err := Sectors(cfg); err == nil {
		t.Error("expected error for a single sector")
	}
}

func TestRevealHeadlessCycle(t *testing.T) {
	r, err := NewReveal(config.Default().Reveal)
	if err != nil {
		t.Fatalf("NewReveal failed: %v", err)
	}

	stats, err := RunHeadless(r, 101)
	if err != nil {
		t.Fatalf("RunHeadless failed: %v", err)
	}
	if stats[0].Triangles != 0 {
		t.Errorf("first frame drew %d triangles", stats[0].Triangles)
	}
	if stats[10].Triangles != 2*3*10 {
		t.Errorf("frame 10 drew %d triangles, want 60", stats[10].Triangles)
	}
	if st := r.State(); st.Counters != [reveal.CounterCount]int{} {
		t.Errorf("expected the cycle to restart, counters %v", st.Counters)
	}
	if r.resets != 1 {
		t.Errorf("expected one completed cycle, got %d", r.resets)
	}
	if r.Lit() {
		t.Error("the widget is drawn unlit")
	}
}

func TestRunHeadlessConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Headless = true
	cfg.Window.Frames = 5

	r, err := NewReveal(cfg.Reveal)
	if err != nil {
		t.Fatal(err)
	}
	if err := Run(cfg, r); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := r.State().Counters[3]; got != 5 {
		t.Errorf("spacer counter %d after 5 frames", got)
	}
}
