package lighting

import (
	"testing"

	"github.com/Faultbox/cvlogo/pkg/math"
)

func near(a, b math.Vec3) bool {
	d := a.Sub(b)
	return d.Length() < 1e-5
}

func TestDefault(t *testing.T) {
	l := Default()
	if !near(l.Direction, math.Vec3{Z: 1}) {
		t.Errorf("default light %v should face +Z", l.Direction)
	}
	if l.Ambient != 0.2 || l.Diffuse != 1 {
		t.Errorf("default terms %v/%v, want 0.2/1", l.Ambient, l.Diffuse)
	}
}

func TestIntensity(t *testing.T) {
	l := Default()
	if got := l.Intensity(math.Vec3{Z: 1}); got < 1.1999 || got > 1.2001 {
		t.Errorf("facing light: got %v, want 1.2", got)
	}
	if got := l.Intensity(math.Vec3{Z: -1}); got != 0.2 {
		t.Errorf("facing away: got %v, want ambient 0.2", got)
	}
}
