// Package glerr turns OpenGL error flags into Go errors.
package glerr

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrBackendCall is wrapped by every error reported by the GL driver.
var ErrBackendCall = errors.New("graphics backend call failed")

// BackendCallError records the GL operation that raised an error flag.
type BackendCallError struct {
	Op   string
	Code uint32
}

func (e *BackendCallError) Error() string {
	return fmt.Sprintf("%v: %s: %s (0x%04X)", ErrBackendCall, e.Op, CodeName(e.Code), e.Code)
}

// Unwrap lets errors.Is match ErrBackendCall.
func (e *BackendCallError) Unwrap() error {
	return ErrBackendCall
}

// Check reads the GL error flag after op. It drains any further queued
// flags so the next check starts clean, and reports the first one.
func Check(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for i := 0; i < 8; i++ {
		if gl.GetError() == gl.NO_ERROR {
			break
		}
	}
	return &BackendCallError{Op: op, Code: code}
}

// CodeName returns the symbolic name of a GL error code.
func CodeName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return "GL_UNKNOWN_ERROR"
	}
}
