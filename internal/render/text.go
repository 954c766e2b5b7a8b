package render

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"appshot/internal/project"
)

// Font size values are authored against a 280px wide frame; actual sizes
// scale linearly with the export width.
const fontSizeReferenceWidth = 280.0

// Text blocks are centered in a box spanning 85% of the frame width.
const textBoxRatio = 0.85

const defaultLineHeight = 1.2

// boldWeightThreshold picks the bold face for CSS-style numeric weights.
const boldWeightThreshold = 600

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() {
	fontOnce.Do(func() {
		regularFont, _ = opentype.Parse(goregular.TTF)
		boldFont, _ = opentype.Parse(gobold.TTF)
	})
}

func faceFor(weight int, size float64) (font.Face, error) {
	loadFonts()
	f := regularFont
	if weight >= boldWeightThreshold {
		f = boldFont
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// RenderText draws one localized text layer onto dst. Content resolution
// follows the locale fallback chain; an empty result draws nothing.
func RenderText(dst *image.NRGBA, txt project.LocalizedText, locale string, frameW, frameH int) {
	content := txt.Resolve(locale)
	if content == "" {
		return
	}

	size := txt.Style.FontSize * float64(frameW) / fontSizeReferenceWidth
	if size < 1 {
		size = 1
	}
	face, err := faceFor(txt.Style.FontWeight, size)
	if err != nil {
		return
	}
	defer func() {
		_ = face.Close()
	}()

	spacing := txt.Style.LetterSpacing * float64(frameW) / fontSizeReferenceWidth
	boxW := textBoxRatio * float64(frameW)
	boxLeft := (float64(frameW) - boxW) / 2

	lines := wrapText(face, content, boxW, spacing)
	lineHeight := txt.Style.LineHeight
	if lineHeight <= 0 {
		lineHeight = defaultLineHeight
	}
	lineAdvance := size * lineHeight
	blockH := lineAdvance * float64(len(lines))

	// The block is vertically centered on its anchor, not top-anchored.
	top := txt.PositionY*float64(frameH) - blockH/2
	ascent := float64(face.Metrics().Ascent.Round())

	col := parseHex(txt.Style.Color)
	for i, line := range lines {
		lineW := measureString(face, line, spacing)
		var x float64
		switch txt.Style.Alignment {
		case project.AlignLeft:
			x = boxLeft
		case project.AlignRight:
			x = boxLeft + boxW - lineW
		default:
			x = boxLeft + (boxW-lineW)/2
		}
		y := top + float64(i)*lineAdvance + ascent
		drawString(dst, face, line, x, y, spacing, col)
	}
}

// wrapText splits content into lines that fit maxWidth, breaking on spaces.
// Explicit newlines are honored; a single overlong word is kept whole.
func wrapText(face font.Face, content string, maxWidth, spacing float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(content, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if measureString(face, candidate, spacing) > maxWidth && current != "" {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

func measureString(face font.Face, s string, spacing float64) float64 {
	w := float64(font.MeasureString(face, s).Round())
	if n := len([]rune(s)); n > 1 {
		w += spacing * float64(n-1)
	}
	return w
}

func drawString(dst *image.NRGBA, face font.Face, s string, x, y, spacing float64, col color.NRGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	if spacing == 0 {
		d.DrawString(s)
		return
	}
	for _, r := range s {
		d.DrawString(string(r))
		d.Dot.X += floatToFixed(spacing)
	}
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}
