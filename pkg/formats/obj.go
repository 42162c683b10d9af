package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrMalformedOBJ = errors.New("malformed OBJ data")
	ErrEmptyOBJ     = errors.New("OBJ data has no faces")
)

// OBJ is the geometry of a Wavefront OBJ file. Polygons are fan
// triangulated and every face index is 0-based. Indices are resolved but
// not range checked; that is left to the consumer.
type OBJ struct {
	Positions [][3]float32
	Faces     [][3]int
	Normals   int // number of "vn" records seen
	TexCoords int // number of "vt" records seen
	Objects   []string
	Skipped   map[string]int // unsupported statements by keyword
}

// ParseOBJ parses OBJ text.
func ParseOBJ(data []byte) (*OBJ, error) {
	return DecodeOBJ(bytes.NewReader(data))
}

// DecodeOBJ parses OBJ text from r.
func DecodeOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{Skipped: make(map[string]int)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if err := obj.parseLine(sc.Text()); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedOBJ, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	if len(obj.Faces) == 0 {
		return nil, ErrEmptyOBJ
	}
	return obj, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()
	return DecodeOBJ(f)
}

func (o *OBJ) parseLine(text string) error {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		return o.parseVertex(fields[1:])
	case "f":
		return o.parseFace(fields[1:])
	case "vn":
		o.Normals++
	case "vt":
		o.TexCoords++
	case "o", "g":
		if len(fields) > 1 {
			o.Objects = append(o.Objects, fields[1])
		}
	case "s", "usemtl", "mtllib":
		// Shading groups and materials do not affect geometry.
	default:
		o.Skipped[fields[0]]++
	}
	return nil
}

// parseVertex parses "v x y z [w]".
func (o *OBJ) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var p [3]float32
	for i := range p {
		val, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return fmt.Errorf("vertex coordinate %q: %w", fields[i], err)
		}
		p[i] = float32(val)
	}
	o.Positions = append(o.Positions, p)
	return nil
}

// parseFace parses "f v1[/vt1][/vn1] v2... v3..." and fan triangulates
// polygons with more than three corners.
func (o *OBJ) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face needs at least 3 corners, got %d", len(fields))
	}
	idx := make([]int, len(fields))
	for i, f := range fields {
		ref, _, _ := strings.Cut(f, "/")
		val, err := strconv.Atoi(ref)
		if err != nil {
			return fmt.Errorf("face index %q: %w", f, err)
		}
		switch {
		case val > 0:
			idx[i] = val - 1
		case val < 0:
			// Relative to the last vertex parsed so far.
			idx[i] = len(o.Positions) + val
		default:
			return errors.New("face index 0 is not valid")
		}
	}
	for i := 1; i+1 < len(idx); i++ {
		o.Faces = append(o.Faces, [3]int{idx[0], idx[i], idx[i+1]})
	}
	return nil
}
