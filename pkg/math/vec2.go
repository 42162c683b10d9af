// Package math provides the float32 vector and matrix types shared by the
// viewer and the reveal widget.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Polar returns the point at distance r from v along the angle theta,
// measured clockwise from +Y (screen up).
func (v Vec2) Polar(r, theta float32) Vec2 {
	return Vec2{r*math32.Sin(theta) + v.X, r*math32.Cos(theta) + v.Y}
}
