// Package reveal draws ring sectors that grow a little every frame and
// restart together once all of them are complete.
package reveal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Faultbox/cvlogo/internal/engine/immediate"
	"github.com/Faultbox/cvlogo/pkg/math"
)

// Fineness is the number of subdivisions of a full turn.
const Fineness = 120

// indexMod is the modulus for sector indices; index Fineness is a valid
// alias of angle 2π.
const indexMod = Fineness + 1

// ErrUnknownDirection is returned by ParseDirection.
var ErrUnknownDirection = errors.New("unknown direction")

// Steps converts an angle in degrees to subdivision units, truncating.
func Steps(degrees float32) int {
	return int(Fineness * degrees / 360)
}

// Direction is the index step applied after each drawn subdivision.
type Direction int

// Traversal directions.
const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "clockwise"/"cw" and "counterclockwise"/"ccw".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clockwise", "cw":
		return Clockwise, nil
	case "counterclockwise", "counter-clockwise", "ccw":
		return CounterClockwise, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Sector is the fixed configuration of one ring sector.
type Sector struct {
	Center    math.Vec2
	Outer     float32
	Inner     float32
	Begin     int // subdivision index the reveal starts at
	End       int // subdivision index the reveal stops before
	Direction Direction
	Color     immediate.Color
}

// Painter is the part of a drawing backend the widget uses.
type Painter interface {
	SetMatrices(projection, modelView math.Mat4) error
	SetColor(c immediate.Color) error
	Begin()
	Vertex(p math.Vec3)
	End() error
}

// DrawSector emits at most step quads of s, walking from Begin toward End.
// Each quad spans angles i and i+1 whatever the direction. It returns the
// number of quads drawn. The caller owns Begin/End on p.
func DrawSector(p Painter, s Sector, step int) int {
	drawn := 0
	for i := s.Begin; step > 0 && i != s.End; step-- {
		a := angle(i)
		b := angle(i + 1)

		innerA := s.Center.Polar(s.Inner, a)
		outerA := s.Center.Polar(s.Outer, a)
		innerB := s.Center.Polar(s.Inner, b)
		outerB := s.Center.Polar(s.Outer, b)

		p.Vertex(flat(innerA))
		p.Vertex(flat(outerA))
		p.Vertex(flat(outerB))

		p.Vertex(flat(innerA))
		p.Vertex(flat(innerB))
		p.Vertex(flat(outerB))

		drawn++
		i = (i + int(s.Direction) + indexMod) % indexMod
	}
	return drawn
}

// QuadCount returns how many quads a full reveal of s draws.
func (s Sector) QuadCount() int {
	if s.Direction != Clockwise && s.Direction != CounterClockwise {
		return 0
	}
	n := 0
	for i := s.Begin; i != s.End && n < indexMod; n++ {
		i = (i + int(s.Direction) + indexMod) % indexMod
	}
	return n
}

// Validate reports configuration errors.
func (s Sector) Validate() error {
	switch {
	case s.Inner < 0 || s.Outer <= 0:
		return fmt.Errorf("radii must be positive (inner %g, outer %g)", s.Inner, s.Outer)
	case s.Inner >= s.Outer:
		return fmt.Errorf("inner radius %g must be less than outer radius %g", s.Inner, s.Outer)
	case s.Begin < 0 || s.Begin > Fineness || s.End < 0 || s.End > Fineness:
		return fmt.Errorf("begin %d and end %d must be within [0, %d]", s.Begin, s.End, Fineness)
	case s.Direction != Clockwise && s.Direction != CounterClockwise:
		return fmt.Errorf("%w: %v", ErrUnknownDirection, s.Direction)
	}
	return nil
}

func angle(i int) float32 {
	return float32(i) / Fineness * 2 * math32.Pi
}

func flat(v math.Vec2) math.Vec3 {
	return math.Vec3{X: v.X, Y: v.Y}
}
