package rendering

import (
	"math"

	"github.com/go-chaikin/chaikin/pkg/curve"
)

// DrawLineAA draws an anti-aliased line from (x0, y0) to (x1, y1)
// using Xiaolin Wu's algorithm. Endpoint pixels receive partial
// coverage so lines meet cleanly at shared polyline vertices.
func (f *Framebuffer) DrawLineAA(x0, y0, x1, y1 float64, c Color) {
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)

	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if math.Abs(dx) >= 1e-6 {
		gradient = dy / dx
	}

	// First endpoint.
	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := 1 - math.Abs(x0+0.5-xend)
	xpxl1 := int(xend)
	ypxl1 := int(math.Floor(yend))
	fy := yend - math.Floor(yend)

	if steep {
		f.BlendPixel(ypxl1, xpxl1, c, (1-fy)*xgap)
		f.BlendPixel(ypxl1+1, xpxl1, c, fy*xgap)
	} else {
		f.BlendPixel(xpxl1, ypxl1, c, (1-fy)*xgap)
		f.BlendPixel(xpxl1, ypxl1+1, c, fy*xgap)
	}

	intery := yend + gradient

	// Second endpoint.
	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = math.Abs(x1 + 0.5 - xend)
	xpxl2 := int(xend)
	ypxl2 := int(math.Floor(yend))
	fy = yend - math.Floor(yend)

	if steep {
		f.BlendPixel(ypxl2, xpxl2, c, (1-fy)*xgap)
		f.BlendPixel(ypxl2+1, xpxl2, c, fy*xgap)
	} else {
		f.BlendPixel(xpxl2, ypxl2, c, (1-fy)*xgap)
		f.BlendPixel(xpxl2, ypxl2+1, c, fy*xgap)
	}

	// Span between the endpoints.
	for x := xpxl1 + 1; x < xpxl2; x++ {
		floor := math.Floor(intery)
		frac := intery - floor
		if steep {
			f.BlendPixel(int(floor), x, c, 1-frac)
			f.BlendPixel(int(floor)+1, x, c, frac)
		} else {
			f.BlendPixel(x, int(floor), c, 1-frac)
			f.BlendPixel(x, int(floor)+1, c, frac)
		}
		intery += gradient
	}
}

// DrawCircleAA draws a filled circle centered at (cx, cy) with a one
// pixel anti-aliased rim, computed from the distance field.
func (f *Framebuffer) DrawCircleAA(cx, cy, radius float64, c Color) {
	x0 := int(math.Max(cx-radius-1, 0))
	y0 := int(math.Max(cy-radius-1, 0))
	x1 := int(math.Min(cx+radius+1, float64(f.width)-1))
	y1 := int(math.Min(cy+radius+1, float64(f.height)-1))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			distance := math.Sqrt(dx*dx + dy*dy)

			if distance > radius+1 {
				continue
			}
			alpha := 1.0
			if distance > radius-1 {
				alpha = 1 - math.Min(distance-(radius-1), 1)
			}
			f.BlendPixel(x, y, c, alpha)
		}
	}
}

// Polyline draws anti-aliased lines between consecutive points.
func (f *Framebuffer) Polyline(points []curve.Point, c Color) {
	for i := 1; i < len(points); i++ {
		p, q := points[i-1], points[i]
		f.DrawLineAA(p.X, p.Y, q.X, q.Y, c)
	}
}
