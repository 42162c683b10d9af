package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cvlogo/internal/config"
	"github.com/Faultbox/cvlogo/internal/engine/immediate"
	"github.com/Faultbox/cvlogo/internal/engine/input"
	"github.com/Faultbox/cvlogo/internal/engine/renderer"
	"github.com/Faultbox/cvlogo/internal/reveal"
	"github.com/Faultbox/cvlogo/internal/scene"
	"github.com/Faultbox/cvlogo/pkg/math"
)

// Reveal draws the animated three-sector logo.
type Reveal struct {
	animator *reveal.Animator
	state    reveal.State
	resets   int
}

// NewReveal builds the widget from configuration.
func NewReveal(cfg config.RevealConfig) (*Reveal, error) {
	sectors, err := Sectors(cfg)
	if err != nil {
		return nil, err
	}
	return &Reveal{
		animator: &reveal.Animator{
			Sectors: sectors,
			MaxStep: reveal.MaxStep(360 - cfg.Gap),
		},
	}, nil
}

// Sectors converts configured sectors to widget geometry.
func Sectors(cfg config.RevealConfig) ([3]reveal.Sector, error) {
	var out [3]reveal.Sector
	if len(cfg.Sectors) != len(out) {
		return out, fmt.Errorf("reveal: %d sectors configured, want %d", len(cfg.Sectors), len(out))
	}
	for i, sc := range cfg.Sectors {
		dir, err := reveal.ParseDirection(sc.Direction)
		if err != nil {
			return out, fmt.Errorf("reveal sector %d: %w", i, err)
		}
		out[i] = reveal.Sector{
			Center:    math.Vec2{X: sc.Center[0], Y: sc.Center[1]},
			Outer:     cfg.Outer,
			Inner:     cfg.Inner,
			Begin:     reveal.Steps(sc.Begin),
			End:       reveal.Steps(sc.End),
			Direction: dir,
			Color:     immediate.RGB(sc.Color[0], sc.Color[1], sc.Color[2]),
		}
		if err := out[i].Validate(); err != nil {
			return out, fmt.Errorf("reveal sector %d: %w", i, err)
		}
	}
	return out, nil
}

// Name implements Scene.
func (r *Reveal) Name() string { return "reveal" }

// RendererConfig implements Scene.
func (r *Reveal) RendererConfig(width, height int) renderer.Config {
	return renderer.WidgetConfig(width, height)
}

// Lit implements Scene.
func (r *Reveal) Lit() bool { return false }

// HandleEvent implements Scene.
func (r *Reveal) HandleEvent(input.Event) {}

// Update implements Scene. The animation advances per drawn frame, not per second.
func (r *Reveal) Update(float32) {}

// Draw implements Scene.
func (r *Reveal) Draw(b scene.Backend) (int, error) {
	before := r.state.Counters[0]
	quads, err := r.animator.Frame(b, &r.state)
	if err != nil {
		return 0, err
	}
	if r.state.Counters[0] < before {
		r.resets++
	}
	return 2 * quads, nil
}

// State returns the current counters.
func (r *Reveal) State() reveal.State {
	return r.state
}

// Fields implements Scene.
func (r *Reveal) Fields() []zap.Field {
	return []zap.Field{
		zap.Ints("counters", r.state.Counters[:]),
		zap.Int("max_step", r.animator.MaxStep),
		zap.Int("cycles", r.resets),
	}
}
