// Package rendering provides the software rasterizer behind the
// curve visualizer: an ARGB framebuffer with anti-aliased line,
// circle, and text primitives. The windowing layer only ever sees the
// finished pixel slice via Pix.
package rendering

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-chaikin/chaikin/pkg/errors"
)

// Framebuffer is a width x height grid of ARGB pixels drawn into by
// the primitives in this package and presented wholesale each frame.
//
// Framebuffer implements draw.Image so text can be composited onto it
// with golang.org/x/image/font.
type Framebuffer struct {
	width  int
	height int
	pix    []uint32
}

// NewFramebuffer allocates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, &errors.Error{
			Op:   "rendering.NewFramebuffer",
			Kind: errors.KindInvalidArgument,
			Err:  fmt.Errorf("non-positive dimensions %dx%d", width, height),
		}
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}, nil
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Pix returns the backing pixel slice in row-major order. The slice is
// shared with the framebuffer; callers present it, they do not keep it.
func (f *Framebuffer) Pix() []uint32 { return f.pix }

// Clear fills the entire framebuffer with the given color.
func (f *Framebuffer) Clear(c Color) {
	for i := range f.pix {
		f.pix[i] = uint32(c)
	}
}

// SetPixel writes the color at (x, y). Out-of-bounds writes are
// silently dropped.
func (f *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = uint32(c)
}

// BlendPixel mixes the color over the existing pixel at (x, y) by the
// given opacity. Out-of-bounds writes are silently dropped.
func (f *Framebuffer) BlendPixel(x, y int, c Color, opacity float64) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	idx := y*f.width + x
	f.pix[idx] = uint32(c.Blend(Color(f.pix[idx]), opacity))
}

// FillRect blends the color over every pixel of the rectangle, using
// the color's own alpha as the opacity. A translucent toast background
// therefore lets the scene show through.
func (f *Framebuffer) FillRect(r Rect, c Color) {
	if r.IsEmpty() {
		return
	}
	opacity := c.Alpha()
	for y := int(r.Top); y < int(r.Bottom); y++ {
		for x := int(r.Left); x < int(r.Right); x++ {
			f.BlendPixel(x, y, c, opacity)
		}
	}
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	p := f.pix[y*f.width+x]
	return color.RGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// Set implements draw.Image, letting font.Drawer composite glyph
// coverage directly onto the framebuffer.
func (f *Framebuffer) Set(x, y int, c color.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	r, g, b, a := c.RGBA()
	f.pix[y*f.width+x] = uint32(a>>8)<<24 | uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(b>>8)
}
