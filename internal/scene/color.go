package scene

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Color is an opaque linear RGB triple with components in [0,1].
type Color struct {
	R, G, B float64
}

// ColorFromHex parses "#rgb" or "#rrggbb" (alpha is ignored). Malformed input
// yields black.
func ColorFromHex(hex string) Color {
	c := gg.Hex(hex)
	return Color{R: c.R, G: c.G, B: c.B}
}

// White is the default light color.
var White = Color{R: 1, G: 1, B: 1}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// RGBA converts to a gg paint color with the given alpha.
func (c Color) RGBA(alpha float64) gg.RGBA {
	return gg.RGBA2(c.R, c.G, c.B, alpha)
}

// Scale multiplies every channel by f.
func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Add sums two colors channel-wise.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Mul multiplies two colors channel-wise.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Clamp limits every channel to [0,1].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
