package render

import (
	"image/color"
	"math"
	"sort"

	"appshot/internal/project"
)

// PaintKind discriminates paint layers.
type PaintKind int

const (
	// PaintFill covers the frame with a single color.
	PaintFill PaintKind = iota
	// PaintLinear is a linear gradient along an absolute-pixel axis.
	PaintLinear
	// PaintRadial is a radial gradient from an absolute-pixel center.
	PaintRadial
	// PaintConic sweeps the stop list around an absolute-pixel center.
	PaintConic
	// PaintBlob is a soft radial spot fading to transparent at Radius.
	PaintBlob
)

// Stop is a resolved gradient stop.
type Stop struct {
	Position float64
	Color    color.NRGBA
}

// PaintLayer is one back-to-front paint instruction in absolute pixels.
type PaintLayer struct {
	Kind  PaintKind
	Color color.NRGBA
	Stops []Stop

	// Linear axis endpoints.
	X1, Y1, X2, Y2 float64

	// Radial / conic / blob geometry.
	CX, CY, Radius float64
	StartAngle     float64
}

const (
	// blobFade softens blob falloff relative to mesh points.
	blobFade = 0.8
	// radialExtent matches the reference renderer's radial gradient reach.
	radialExtent = 0.8
)

var blobsBaseFill = color.NRGBA{R: 0x0d, G: 0x0d, B: 0x1a, A: 0xff}

// ResolvePaint flattens a background configuration into an ordered list of
// paint layers for a frameW x frameH frame. It never fails: malformed input
// degrades to a default fill.
func ResolvePaint(bg project.BackgroundConfig, frameW, frameH int) []PaintLayer {
	w := float64(frameW)
	h := float64(frameH)

	switch bg.Type {
	case project.BackgroundSolid:
		c := defaultFill
		if bg.Color != "" {
			c = parseHex(bg.Color)
		}
		return []PaintLayer{{Kind: PaintFill, Color: c}}

	case project.BackgroundGradient:
		return []PaintLayer{gradientLayer(bg.Gradient, w, h)}

	case project.BackgroundMesh:
		if len(bg.ColorPoints) == 0 {
			return []PaintLayer{{Kind: PaintFill, Color: defaultFill}}
		}
		// Base fill under the radial points; their fades leave gaps
		// that must not show through as transparency.
		layers := []PaintLayer{{Kind: PaintFill, Color: parseHex(bg.ColorPoints[0].Color)}}
		for _, p := range bg.ColorPoints {
			layers = append(layers, PaintLayer{
				Kind:   PaintBlob,
				Color:  parseHex(p.Color),
				CX:     p.X * w,
				CY:     p.Y * h,
				Radius: clampRadius(p.Radius * w),
			})
		}
		return layers

	case project.BackgroundGlassmorphism, project.BackgroundBlobs:
		var layers []PaintLayer
		if bg.BaseGradient != nil {
			base := *bg.BaseGradient
			// The base gradient defaults to 135 even for an explicit 0.
			if base.Angle == nil || *base.Angle == 0 {
				a := 135.0
				base.Angle = &a
			}
			layers = append(layers, gradientLayer(&base, w, h))
		} else {
			c := blobsBaseFill
			if bg.BaseColor != "" {
				c = parseHex(bg.BaseColor)
			}
			layers = append(layers, PaintLayer{Kind: PaintFill, Color: c})
		}
		for _, b := range bg.Blobs {
			layers = append(layers, PaintLayer{
				Kind:   PaintBlob,
				Color:  parseHex(b.Color),
				CX:     b.X * w,
				CY:     b.Y * h,
				Radius: clampRadius(b.Size * blobFade * w),
			})
		}
		return layers

	default:
		return []PaintLayer{{Kind: PaintFill, Color: defaultFill}}
	}
}

// gradientLayer resolves one gradient config, degrading to a solid fill
// when fewer than two usable stops exist.
func gradientLayer(g *project.GradientConfig, w, h float64) PaintLayer {
	if g == nil {
		return PaintLayer{Kind: PaintFill, Color: defaultFill}
	}
	stops := resolveStops(g.Stops)
	switch len(stops) {
	case 0:
		return PaintLayer{Kind: PaintFill, Color: defaultFill}
	case 1:
		return PaintLayer{Kind: PaintFill, Color: stops[0].Color}
	}

	cx := 0.5
	cy := 0.5
	if g.CenterX != nil {
		cx = *g.CenterX
	}
	if g.CenterY != nil {
		cy = *g.CenterY
	}
	angle := 180.0
	if g.Angle != nil {
		angle = *g.Angle
	}

	switch g.Type {
	case project.GradientRadial:
		return PaintLayer{
			Kind:   PaintRadial,
			Stops:  stops,
			CX:     cx * w,
			CY:     cy * h,
			Radius: math.Max(w, h) * radialExtent,
		}
	case project.GradientConic:
		start := g.StartAngle
		if start == 0 && g.Angle != nil {
			start = *g.Angle
		}
		return PaintLayer{
			Kind:       PaintConic,
			Stops:      stops,
			CX:         cx * w,
			CY:         cy * h,
			StartAngle: start,
		}
	default:
		// CSS angle convention: 0 points up, 90 points right, 180 down.
		rad := (angle - 90) * math.Pi / 180
		dx := math.Cos(rad)
		dy := math.Sin(rad)
		return PaintLayer{
			Kind:  PaintLinear,
			Stops: stops,
			X1:    w/2 - dx*w,
			Y1:    h/2 - dy*h,
			X2:    w/2 + dx*w,
			Y2:    h/2 + dy*h,
		}
	}
}

// resolveStops parses, clamps and orders a stop list. NaN positions are
// dropped rather than propagated into paint geometry.
func resolveStops(in []project.GradientStop) []Stop {
	out := make([]Stop, 0, len(in))
	for _, s := range in {
		if math.IsNaN(s.Position) {
			continue
		}
		pos := s.Position
		if pos < 0 {
			pos = 0
		}
		if pos > 1 {
			pos = 1
		}
		out = append(out, Stop{Position: pos, Color: parseHex(s.Color)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// colorAt samples the stop list at t in [0,1].
func colorAt(stops []Stop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return defaultFill
	}
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Position {
			continue
		}
		a := stops[i-1]
		b := stops[i]
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		return lerpColor(a.Color, b.Color, (t-a.Position)/span)
	}
	return last.Color
}

func clampRadius(r float64) float64 {
	if r < 1 || math.IsNaN(r) {
		return 1
	}
	return r
}
