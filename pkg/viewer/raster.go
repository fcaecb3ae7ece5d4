package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenPoint is a projected vertex: pixel coordinates plus view depth.
type screenPoint [3]float64

func (p screenPoint) finite() bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// near reports whether p lies within one image size of the w×h canvas.
func (p screenPoint) near(w, h float64) bool {
	return p[0] >= -w && p[0] <= 2*w && p[1] >= -h && p[1] <= 2*h
}

// fillTriangleWithDepth fills a triangle with depth testing. Smaller depth
// wins. Triangles with a non-finite corner are skipped.
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, tri [3]screenPoint, col color.RGBA) {
	for _, p := range tri {
		if !p.finite() {
			return
		}
	}
	vertices := tri

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1, z1 := vertices[0][0], vertices[0][1], vertices[0][2]
	x2, y2, z2 := vertices[1][0], vertices[1][1], vertices[1][2]
	x3, y3, z3 := vertices[2][0], vertices[2][1], vertices[2][2]

	bounds := img.Bounds()
	width := bounds.Max.X

	// Scanline algorithm with depth interpolation
	yStart := int(math.Max(0, math.Ceil(y1)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Floor(y3)))
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// The long edge 1-3 spans every scanline; the short side is
		// edge 1-2 above the middle vertex and edge 2-3 below it.
		xStart, zStart, ok := edgeAt(x1, y1, z1, x3, y3, z3, fy)
		if !ok {
			continue
		}
		var xEnd, zEnd float64
		if fy < y2 || y2 == y3 {
			xEnd, zEnd, ok = edgeAt(x1, y1, z1, x2, y2, z2, fy)
		} else {
			xEnd, zEnd, ok = edgeAt(x2, y2, z2, x3, y3, z3, fy)
		}
		if !ok {
			continue
		}

		// Ensure xStart < xEnd
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		// Clamp to image bounds
		xStartInt := int(math.Max(0, math.Ceil(xStart)))
		xEndInt := int(math.Min(float64(bounds.Max.X-1), math.Floor(xEnd)))

		// Draw horizontal line with depth testing
		for x := xStartInt; x <= xEndInt; x++ {
			// Interpolate depth
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			// Depth test - draw if closer (smaller z)
			idx := y*width + x
			if idx >= 0 && idx < len(zbuffer) && z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		// Check bounds
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// edgeAt intersects the edge (xa,ya)-(xb,yb) with scanline fy.
func edgeAt(xa, ya, za, xb, yb, zb, fy float64) (x, z float64, ok bool) {
	if ya == yb || fy < ya || fy > yb {
		return 0, 0, false
	}
	t := (fy - ya) / (yb - ya)
	return xa + t*(xb-xa), za + t*(zb-za), true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
