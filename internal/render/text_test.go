package render

import (
	"image"
	"testing"

	"appshot/internal/project"
)

func opaqueCanvas(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

func pixelsEqual(a, b *image.NRGBA) bool {
	if len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func headlineLayer(translations map[string]string) project.LocalizedText {
	return project.LocalizedText{
		ID:           "t1",
		Type:         "headline",
		Translations: translations,
		// White on the black test canvas so drawn glyphs are detectable.
		Style: project.TextStyle{
			FontSize:   48,
			FontWeight: 700,
			Color:      "#ffffff",
			Alignment:  project.AlignCenter,
			LineHeight: 1.2,
		},
		PositionY: 0.5,
	}
}

func TestRenderTextDrawsResolvedContent(t *testing.T) {
	canvas := opaqueCanvas(280, 600)
	before := opaqueCanvas(280, 600)

	txt := headlineLayer(map[string]string{"en": "Hello", "de": "Hallo"})
	RenderText(canvas, txt, "de", 280, 600)

	if pixelsEqual(canvas, before) {
		t.Fatal("canvas unchanged after drawing non-empty text")
	}
}

func TestRenderTextLocaleFallback(t *testing.T) {
	txt := headlineLayer(map[string]string{"en": "Hello"})

	// A missing locale falls back to the base translation and must draw
	// exactly what rendering the base locale draws.
	withFallback := opaqueCanvas(280, 600)
	RenderText(withFallback, txt, "ja", 280, 600)

	withBase := opaqueCanvas(280, 600)
	RenderText(withBase, txt, "en", 280, 600)

	if !pixelsEqual(withFallback, withBase) {
		t.Fatal("fallback render differs from base locale render")
	}

	untouched := opaqueCanvas(280, 600)
	if pixelsEqual(withFallback, untouched) {
		t.Fatal("fallback produced an empty render")
	}
}

func TestRenderTextEmptyContentDrawsNothing(t *testing.T) {
	cases := []struct {
		name string
		txt  project.LocalizedText
	}{
		{name: "no translations", txt: headlineLayer(nil)},
		{name: "empty base", txt: headlineLayer(map[string]string{"en": ""})},
		{name: "locale empty falls through to empty base", txt: headlineLayer(map[string]string{"fr": ""})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			canvas := opaqueCanvas(280, 600)
			before := opaqueCanvas(280, 600)
			RenderText(canvas, tc.txt, "fr", 280, 600)
			if !pixelsEqual(canvas, before) {
				t.Fatal("canvas changed despite empty content")
			}
		})
	}
}

func TestRenderTextScalesWithFrameWidth(t *testing.T) {
	txt := headlineLayer(map[string]string{"en": "Hi"})

	count := func(w, h int) int {
		canvas := opaqueCanvas(w, h)
		RenderText(canvas, txt, "en", w, h)
		n := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if canvas.NRGBAAt(x, y).R > 0xc8 {
					n++
				}
			}
		}
		return n
	}

	small := count(280, 600)
	large := count(560, 1200)
	if small == 0 || large == 0 {
		t.Fatalf("no glyph pixels drawn: small=%d large=%d", small, large)
	}
	// Doubling the frame width doubles the font size, so the inked area
	// grows roughly quadratically. A conservative factor of 2 catches a
	// renderer that ignores the frame width entirely.
	if large < small*2 {
		t.Fatalf("glyph area did not scale: small=%d large=%d", small, large)
	}
}

func TestWrapText(t *testing.T) {
	face, err := faceFor(400, 16)
	if err != nil {
		t.Fatalf("load face: %v", err)
	}
	defer face.Close()

	t.Run("explicit newlines honored", func(t *testing.T) {
		lines := wrapText(face, "one\ntwo", 10000, 0)
		if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
			t.Fatalf("lines = %q", lines)
		}
	})

	t.Run("wraps on spaces", func(t *testing.T) {
		lines := wrapText(face, "aaaa bbbb cccc dddd", 40, 0)
		if len(lines) < 2 {
			t.Fatalf("expected wrapping, got %q", lines)
		}
	})

	t.Run("overlong word kept whole", func(t *testing.T) {
		lines := wrapText(face, "supercalifragilistic", 10, 0)
		if len(lines) != 1 || lines[0] != "supercalifragilistic" {
			t.Fatalf("lines = %q", lines)
		}
	})
}

func TestResolveLocale(t *testing.T) {
	txt := project.LocalizedText{Translations: map[string]string{
		"en": "base",
		"de": "german",
	}}

	if got := txt.Resolve("de"); got != "german" {
		t.Fatalf("Resolve(de) = %q", got)
	}
	if got := txt.Resolve("ja"); got != "base" {
		t.Fatalf("Resolve(ja) = %q, want base fallback", got)
	}
	if got := (project.LocalizedText{}).Resolve("en"); got != "" {
		t.Fatalf("Resolve on empty = %q, want empty", got)
	}
}
