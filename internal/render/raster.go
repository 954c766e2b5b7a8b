package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Rasterize paints an ordered layer list into an opaque w x h image.
func Rasterize(layers []PaintLayer, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(defaultFill), image.Point{}, draw.Src)
	for _, layer := range layers {
		paintLayer(dst, layer)
	}
	return dst
}

func paintLayer(dst *image.NRGBA, layer PaintLayer) {
	b := dst.Bounds()
	switch layer.Kind {
	case PaintFill:
		draw.Draw(dst, b, image.NewUniform(layer.Color), image.Point{}, draw.Over)

	case PaintLinear:
		dx := layer.X2 - layer.X1
		dy := layer.Y2 - layer.Y1
		lenSq := dx*dx + dy*dy
		if lenSq == 0 {
			return
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				t := ((float64(x)+0.5-layer.X1)*dx + (float64(y)+0.5-layer.Y1)*dy) / lenSq
				blendOver(dst, x, y, colorAt(layer.Stops, clamp01(t)))
			}
		}

	case PaintRadial:
		if layer.Radius <= 0 {
			return
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				t := math.Hypot(float64(x)+0.5-layer.CX, float64(y)+0.5-layer.CY) / layer.Radius
				blendOver(dst, x, y, colorAt(layer.Stops, clamp01(t)))
			}
		}

	case PaintConic:
		start := layer.StartAngle * math.Pi / 180
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				// Angle measured clockwise from the top, CSS-style.
				theta := math.Atan2(float64(x)+0.5-layer.CX, layer.CY-(float64(y)+0.5))
				t := theta - start
				for t < 0 {
					t += 2 * math.Pi
				}
				blendOver(dst, x, y, colorAt(layer.Stops, t/(2*math.Pi)))
			}
		}

	case PaintBlob:
		if layer.Radius <= 0 {
			return
		}
		minX := int(layer.CX - layer.Radius)
		maxX := int(layer.CX + layer.Radius + 1)
		minY := int(layer.CY - layer.Radius)
		maxY := int(layer.CY + layer.Radius + 1)
		if minX < b.Min.X {
			minX = b.Min.X
		}
		if minY < b.Min.Y {
			minY = b.Min.Y
		}
		if maxX > b.Max.X {
			maxX = b.Max.X
		}
		if maxY > b.Max.Y {
			maxY = b.Max.Y
		}
		for y := minY; y < maxY; y++ {
			for x := minX; x < maxX; x++ {
				t := math.Hypot(float64(x)+0.5-layer.CX, float64(y)+0.5-layer.CY) / layer.Radius
				if t >= 1 {
					continue
				}
				c := layer.Color
				c.A = uint8(float64(c.A) * (1 - t))
				blendOver(dst, x, y, c)
			}
		}
	}
}

// blendOver composites src over the destination pixel in straight alpha.
func blendOver(dst *image.NRGBA, x, y int, src color.NRGBA) {
	if src.A == 0xff {
		dst.SetNRGBA(x, y, src)
		return
	}
	if src.A == 0 {
		return
	}
	d := dst.NRGBAAt(x, y)
	sa := float64(src.A) / 255
	da := float64(d.A) / 255
	outA := sa + da*(1-sa)
	if outA == 0 {
		dst.SetNRGBA(x, y, color.NRGBA{})
		return
	}
	mix := func(s, dd uint8) uint8 {
		v := (float64(s)*sa + float64(dd)*da*(1-sa)) / outA
		return uint8(v + 0.5)
	}
	dst.SetNRGBA(x, y, color.NRGBA{
		R: mix(src.R, d.R),
		G: mix(src.G, d.G),
		B: mix(src.B, d.B),
		A: uint8(outA*255 + 0.5),
	})
}

func clamp01(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
