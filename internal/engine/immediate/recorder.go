package immediate

import (
	"errors"

	"github.com/Faultbox/cvlogo/pkg/math"
)

// RecordedVertex is one vertex captured by a Recorder.
type RecordedVertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Color    Color
}

// Batch is everything submitted between one Begin/End pair.
type Batch struct {
	Projection math.Mat4
	ModelView  math.Mat4
	Vertices   []RecordedVertex
}

// Triangles returns the number of complete triangles in the batch.
func (b *Batch) Triangles() int {
	return len(b.Vertices) / 3
}

// Recorder keeps submitted geometry in memory instead of drawing it.
// It backs headless runs and tests.
type Recorder struct {
	Batches     []Batch
	MatrixLoads int
	ColorSets   int

	// Err, when set, is returned by every call that can fail.
	Err error

	projection math.Mat4
	modelView  math.Mat4
	color      Color
	normal     math.Vec3
	open       *Batch
}

// NewRecorder returns a Recorder with identity matrices and white colour.
func NewRecorder() *Recorder {
	return &Recorder{
		projection: math.Identity(),
		modelView:  math.Identity(),
		color:      ColorWhite,
	}
}

// Reset drops recorded batches and counters, keeping current state.
func (r *Recorder) Reset() {
	r.Batches = r.Batches[:0]
	r.MatrixLoads = 0
	r.ColorSets = 0
	r.open = nil
}

// SetMatrices records the matrices used by later batches.
func (r *Recorder) SetMatrices(projection, modelView math.Mat4) error {
	if r.Err != nil {
		return r.Err
	}
	r.projection = projection
	r.modelView = modelView
	r.MatrixLoads++
	return nil
}

// SetColor sets the colour attached to subsequent vertices.
func (r *Recorder) SetColor(col Color) error {
	if r.Err != nil {
		return r.Err
	}
	r.color = col
	r.ColorSets++
	return nil
}

// Begin opens a new batch.
func (r *Recorder) Begin() {
	r.open = &Batch{Projection: r.projection, ModelView: r.modelView}
}

// Normal sets the normal attached to subsequent vertices.
func (r *Recorder) Normal(n math.Vec3) {
	r.normal = n
}

// Vertex appends a vertex to the open batch. Vertices outside Begin/End are dropped.
func (r *Recorder) Vertex(p math.Vec3) {
	if r.open == nil {
		return
	}
	r.open.Vertices = append(r.open.Vertices, RecordedVertex{Position: p, Normal: r.normal, Color: r.color})
}

// End closes the open batch.
func (r *Recorder) End() error {
	if r.Err != nil {
		return r.Err
	}
	if r.open == nil {
		return errors.New("End without Begin")
	}
	r.Batches = append(r.Batches, *r.open)
	r.open = nil
	return nil
}

// Triangles returns the total triangle count over all batches.
func (r *Recorder) Triangles() int {
	n := 0
	for i := range r.Batches {
		n += r.Batches[i].Triangles()
	}
	return n
}
