package shader

import (
	"errors"
	"fmt"
	"os"
)

// ErrResourceLoad is wrapped when a shader file cannot be read.
var ErrResourceLoad = errors.New("shader source load failed")

// Source holds GLSL text for a vertex/fragment pair. The paths are empty
// when the text came from the embedded defaults.
type Source struct {
	Vertex       string
	Fragment     string
	VertexPath   string
	FragmentPath string
}

// Name describes where the source came from, for log and error messages.
func (s Source) Name() string {
	if s.VertexPath == "" && s.FragmentPath == "" {
		return "embedded"
	}
	return s.VertexPath + "+" + s.FragmentPath
}

// Paths returns the on-disk files backing this source.
func (s Source) Paths() []string {
	var paths []string
	for _, p := range []string{s.VertexPath, s.FragmentPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Load reads shader text from vertPath and fragPath. An empty path keeps the
// corresponding stage from fallback.
func Load(vertPath, fragPath string, fallback Source) (Source, error) {
	src := fallback
	if vertPath != "" {
		text, err := readSource(vertPath)
		if err != nil {
			return Source{}, err
		}
		src.Vertex, src.VertexPath = text, vertPath
	}
	if fragPath != "" {
		text, err := readSource(fragPath)
		if err != nil {
			return Source{}, err
		}
		src.Fragment, src.FragmentPath = text, fragPath
	}
	return src, nil
}

// Reload re-reads the files behind s, keeping embedded stages as they are.
func (s Source) Reload() (Source, error) {
	return Load(s.VertexPath, s.FragmentPath, s)
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResourceLoad, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrResourceLoad, path)
	}
	return string(data), nil
}
