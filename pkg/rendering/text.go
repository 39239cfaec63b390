package rendering

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// face is the bundled bitmap face used for toast messages. A 7x13
// fixed-width face keeps the renderer free of font file loading.
var face font.Face = basicfont.Face7x13

// MeasureText returns the pixel width and line height of the text as
// the bundled face lays it out.
func MeasureText(text string) (width, height int) {
	return font.MeasureString(face, text).Ceil(), face.Metrics().Height.Ceil()
}

// DrawText draws the text with its top-left corner at (x, y),
// compositing anti-aliased glyph coverage over the framebuffer.
func (f *Framebuffer) DrawText(x, y int, text string, c Color) {
	r, g, b, a := c.RGBAF()
	src := image.NewUniform(color.RGBA{
		R: uint8(r * maxByte),
		G: uint8(g * maxByte),
		B: uint8(b * maxByte),
		A: uint8(a * maxByte),
	})

	drawer := font.Drawer{
		Dst:  f,
		Src:  src,
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
}
