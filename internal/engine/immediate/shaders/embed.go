// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ImmediateVertexShader transforms vertices submitted through the
// immediate-mode context.
//
//go:embed immediate.vert
var ImmediateVertexShader string

// ImmediateFragmentShader applies the directional light and vertex colour.
//
//go:embed immediate.frag
var ImmediateFragmentShader string
