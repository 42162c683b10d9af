package immediate

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Basic colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
)

// RGB creates an opaque color from float components.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// FromBits maps the low three bits of mask to red, green and blue.
// 1 is red, 2 green, 4 blue; combinations mix.
func FromBits(mask uint) Color {
	return Color{
		R: float32(mask & 1),
		G: float32((mask >> 1) & 1),
		B: float32((mask >> 2) & 1),
		A: 1,
	}
}
