package reveal

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/cvlogo/internal/engine/immediate"
	"github.com/Faultbox/cvlogo/pkg/math"
)

// Default widget geometry.
const (
	DefaultOuter float32 = 0.3
	DefaultInner float32 = 0.15

	// DefaultGap is the part of the turn left unrevealed, in degrees.
	DefaultGap float32 = 60
)

// CounterCount is the number of per-frame counters: one per sector plus a
// spacer that only delays the restart.
const CounterCount = 4

// MaxStep returns the counter value at which a sector revealing the given
// number of degrees is considered complete.
func MaxStep(revealDegrees float32) int {
	return Steps(revealDegrees)
}

// DefaultSectors returns the red, green and blue sectors of the logo.
func DefaultSectors() [3]Sector {
	down := math32.Sqrt(3) * 0.25
	return [3]Sector{
		{
			Center: math.Vec2{X: 0, Y: 0.5},
			Outer:  DefaultOuter, Inner: DefaultInner,
			Begin: Steps(150), End: Steps(210),
			Direction: CounterClockwise,
			Color:     immediate.ColorRed,
		},
		{
			Center: math.Vec2{X: -down, Y: -0.25},
			Outer:  DefaultOuter, Inner: DefaultInner,
			Begin: Steps(30), End: Steps(90),
			Direction: CounterClockwise,
			Color:     immediate.ColorGreen,
		},
		{
			Center: math.Vec2{X: down, Y: -0.25},
			Outer:  DefaultOuter, Inner: DefaultInner,
			Begin: Steps(330), End: Steps(30),
			Direction: CounterClockwise,
			Color:     immediate.ColorBlue,
		},
	}
}

// State holds the animation counters. The render loop owns it and passes
// it to every Frame call.
type State struct {
	Counters [CounterCount]int
}

// Advance increments every counter. When all of them exceed max they are
// reset to zero and Advance returns true.
func (s *State) Advance(max int) bool {
	all := true
	for i := range s.Counters {
		s.Counters[i]++
		if s.Counters[i] <= max {
			all = false
		}
	}
	if !all {
		return false
	}
	s.Counters = [CounterCount]int{}
	return true
}

// Animator draws the three sectors according to a State.
type Animator struct {
	Sectors [3]Sector
	MaxStep int
}

// NewAnimator returns the default logo animator.
func NewAnimator() *Animator {
	return &Animator{
		Sectors: DefaultSectors(),
		MaxStep: MaxStep(360 - DefaultGap),
	}
}

// Frame draws one frame in normalized device coordinates and advances st.
// Counters advance only when drawing succeeded.
func (a *Animator) Frame(p Painter, st *State) (quads int, err error) {
	if err := p.SetMatrices(math.Identity(), math.Identity()); err != nil {
		return 0, fmt.Errorf("reveal matrices: %w", err)
	}

	p.Begin()
	for i, s := range a.Sectors {
		if err := p.SetColor(s.Color); err != nil {
			return quads, fmt.Errorf("reveal sector %d: %w", i, err)
		}
		quads += DrawSector(p, s, st.Counters[i])
	}
	if err := p.End(); err != nil {
		return quads, fmt.Errorf("reveal draw: %w", err)
	}

	st.Advance(a.MaxStep)
	return quads, nil
}
