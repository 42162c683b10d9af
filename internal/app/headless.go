package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cvlogo/internal/engine/immediate"
	"github.com/Faultbox/cvlogo/internal/logger"
)

// DefaultHeadlessFrames is used when a headless run sets no frame limit.
const DefaultHeadlessFrames = 120

// headlessStep is the fixed frame time of headless runs, in seconds.
const headlessStep = 1.0 / 60

// FrameStats is the outcome of one headless frame.
type FrameStats struct {
	Frame     int
	Triangles int
	Batches   int
}

// RunHeadless draws frames into an in-memory recorder instead of a window.
func RunHeadless(sc Scene, frames int) ([]FrameStats, error) {
	if frames <= 0 {
		frames = DefaultHeadlessFrames
	}
	log := logger.Named("headless")
	log.Info("starting headless run", zap.String("scene", sc.Name()), zap.Int("frames", frames))

	rec := immediate.NewRecorder()
	stats := make([]FrameStats, 0, frames)
	total := 0

	for i := 0; i < frames; i++ {
		rec.Reset()
		sc.Update(headlessStep)

		tris, err := sc.Draw(rec)
		if err != nil {
			return stats, fmt.Errorf("frame %d: %w", i, err)
		}
		if tris != rec.Triangles() {
			return stats, fmt.Errorf("frame %d: scene reported %d triangles, recorder saw %d", i, tris, rec.Triangles())
		}

		stats = append(stats, FrameStats{Frame: i, Triangles: tris, Batches: len(rec.Batches)})
		total += tris
		log.Debug("frame", append([]zap.Field{zap.Int("frame", i), zap.Int("triangles", tris)}, sc.Fields()...)...)
	}

	log.Info("headless run finished",
		zap.Int("frames", frames),
		zap.Int("triangles", total),
	)
	return stats, nil
}
