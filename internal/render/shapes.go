package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// roundedRectMask builds an alpha mask for a w x h rounded rectangle with
// corner radius r, antialiased by one pixel of edge coverage.
func roundedRectMask(w, h int, r float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	maxR := float64(minInt(w, h)) / 2
	if r > maxR {
		r = maxR
	}
	if r < 0.5 {
		// Square corners: every pixel inside the rect is fully covered.
		for i := range mask.Pix {
			mask.Pix[i] = 0xff
		}
		return mask
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask.SetAlpha(x, y, color.Alpha{A: roundedCoverage(float64(x)+0.5, float64(y)+0.5, float64(w), float64(h), r)})
		}
	}
	return mask
}

func roundedCoverage(px, py, w, h, r float64) uint8 {
	cx := math.Min(math.Max(px, r), w-r)
	cy := math.Min(math.Max(py, r), h-r)
	d := math.Hypot(px-cx, py-cy)
	cov := r - d + 0.5
	if cov >= 1 {
		return 0xff
	}
	if cov <= 0 {
		return 0
	}
	return uint8(cov * 255)
}

// fillRoundedRect paints a solid rounded rectangle over dst.
func fillRoundedRect(dst draw.Image, rect image.Rectangle, r float64, c color.NRGBA) {
	mask := roundedRectMask(rect.Dx(), rect.Dy(), r)
	draw.DrawMask(dst, rect, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// strokeRoundedRect draws the border of a rounded rectangle by masking out
// an inner rounded region from the outer one.
func strokeRoundedRect(dst draw.Image, rect image.Rectangle, r, width float64, c color.NRGBA) {
	if width < 1 {
		width = 1
	}
	w := rect.Dx()
	h := rect.Dy()
	outer := roundedRectMask(w, h, r)
	inset := int(width + 0.5)
	innerR := r - width
	if innerR < 0 {
		innerR = 0
	}
	inner := roundedRectMask(w-2*inset, h-2*inset, innerR)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := outer.AlphaAt(x, y).A
			if x >= inset && y >= inset && x < w-inset && y < h-inset {
				ia := inner.AlphaAt(x-inset, y-inset).A
				if ia >= a {
					a = 0
				} else {
					a -= ia
				}
			}
			if a == 0 {
				continue
			}
			sc := c
			sc.A = uint8(uint16(sc.A) * uint16(a) / 255)
			if img, ok := dst.(*image.NRGBA); ok {
				blendOver(img, rect.Min.X+x, rect.Min.Y+y, sc)
			} else {
				dst.Set(rect.Min.X+x, rect.Min.Y+y, sc)
			}
		}
	}
}

// fillCircle paints a solid antialiased disc centered at (cx, cy).
func fillCircle(dst *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	minX := int(cx - r - 1)
	maxX := int(cx + r + 2)
	minY := int(cy - r - 1)
	maxY := int(cy + r + 2)
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			cov := r - math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) + 0.5
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			sc := c
			sc.A = uint8(float64(sc.A) * cov)
			blendOver(dst, x, y, sc)
		}
	}
}

// fillStar paints a five-pointed star centered at (cx, cy) with outer
// radius r, using even-odd point-in-polygon coverage.
func fillStar(dst *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	const points = 5
	inner := r * 0.45
	verts := make([][2]float64, 0, points*2)
	for i := 0; i < points*2; i++ {
		rad := inner
		if i%2 == 0 {
			rad = r
		}
		// Start at the top point, step half a spike at a time.
		angle := -math.Pi/2 + float64(i)*math.Pi/points
		verts = append(verts, [2]float64{cx + rad*math.Cos(angle), cy + rad*math.Sin(angle)})
	}

	minX := int(cx - r - 1)
	maxX := int(cx + r + 2)
	minY := int(cy - r - 1)
	maxY := int(cy + r + 2)
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			if pointInPolygon(float64(x)+0.5, float64(y)+0.5, verts) {
				blendOver(dst, x, y, c)
			}
		}
	}
}

func pointInPolygon(px, py float64, verts [][2]float64) bool {
	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := verts[i][0], verts[i][1]
		xj, yj := verts[j][0], verts[j][1]
		if (yi > py) != (yj > py) && px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
