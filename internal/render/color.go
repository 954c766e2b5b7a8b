package render

import (
	"image/color"
	"strings"
)

// defaultFill is the fallback paint for missing or malformed colors.
var defaultFill = color.NRGBA{R: 0x1c, G: 0x1c, B: 0x1e, A: 0xff}

// parseHex parses #rgb, #rrggbb and #rrggbbaa colors. Malformed input
// returns the default fill; bad creative data must render, not crash.
func parseHex(s string) color.NRGBA {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return defaultFill
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		r, ok1 := nibble(hex[0])
		g, ok2 := nibble(hex[1])
		b, ok3 := nibble(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return defaultFill
		}
		return color.NRGBA{R: r*16 + r, G: g*16 + g, B: b*16 + b, A: 0xff}
	case 6, 8:
		var v [4]uint8
		v[3] = 0xff
		for i := 0; i < len(hex)/2; i++ {
			hi, ok1 := nibble(hex[2*i])
			lo, ok2 := nibble(hex[2*i+1])
			if !ok1 || !ok2 {
				return defaultFill
			}
			v[i] = hi*16 + lo
		}
		return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
	default:
		return defaultFill
	}
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// lerpColor interpolates between two colors in straight-alpha space.
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
