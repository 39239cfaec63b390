package rendering

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Blend mixes c over bg by the given opacity (0-1), ignoring the
// stored alpha bytes. This linear mix is the basis for the
// anti-aliased line and circle rasterizers.
func (c Color) Blend(bg Color, opacity float64) Color {
	opacity = clamp01(opacity)

	r1 := float64((c >> 16) & 0xFF)
	g1 := float64((c >> 8) & 0xFF)
	b1 := float64(c & 0xFF)

	r2 := float64((bg >> 16) & 0xFF)
	g2 := float64((bg >> 8) & 0xFF)
	b2 := float64(bg & 0xFF)

	r := uint32(r1*opacity + r2*(1-opacity))
	g := uint32(g1*opacity + g2*(1-opacity))
	b := uint32(b1*opacity + b2*(1-opacity))

	return Color(0xFF<<24 | r<<16 | g<<8 | b)
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" (leading '#' optional)
// into a Color. Plain RGB parses as fully opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		return Color(0xFF000000 | uint32(v)), nil
	}
	return Color(uint32(v)), nil
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
