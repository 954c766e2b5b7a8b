package render

import (
	"image"
	"image/color"
	"testing"

	"appshot/internal/project"
)

func testDevice(style project.DeviceStyle) project.DeviceConfig {
	return project.DeviceConfig{
		Model: "iphone-6.9",
		Color: "natural-titanium",
		Style: style,
	}
}

func solidScreen(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func TestRenderDeviceFrameExactSize(t *testing.T) {
	for _, style := range []project.DeviceStyle{
		project.DeviceStyleRealistic,
		project.DeviceStyleFlat,
		project.DeviceStyleClay,
		project.DeviceStyleNone,
	} {
		patch := RenderDeviceFrame(testDevice(style), nil, project.FitCover, 300, 649)
		b := patch.Bounds()
		if b.Dx() != 300 || b.Dy() != 649 {
			t.Fatalf("style %s: patch is %dx%d, want 300x649", style, b.Dx(), b.Dy())
		}
	}
}

func TestRenderDeviceFrameStyleNoneHasNoChrome(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	screen := solidScreen(100, 200, red)

	patch := RenderDeviceFrame(testDevice(project.DeviceStyleNone), screen, project.FitFill, 100, 216)

	// Without chrome the screen fills the slot edge to edge with square
	// corners: every pixel is the source color, including the corners
	// where a bezel or rounded clip would show.
	for _, pt := range []image.Point{
		{0, 0}, {99, 0}, {0, 215}, {99, 215}, {50, 108},
	} {
		if got := patch.NRGBAAt(pt.X, pt.Y); got != red {
			t.Fatalf("pixel %v = %+v, want source color", pt, got)
		}
	}
}

func TestRenderDeviceFrameChromeCorners(t *testing.T) {
	patch := RenderDeviceFrame(testDevice(project.DeviceStyleRealistic), nil, project.FitCover, 300, 649)

	// Rounded bezel corners leave the very corner pixel transparent.
	if a := patch.NRGBAAt(0, 0).A; a != 0 {
		t.Fatalf("corner alpha = %#x, want transparent outside bezel radius", a)
	}
	// The bezel edge midpoint is opaque chrome.
	if a := patch.NRGBAAt(150, 0).A; a != 0xff {
		t.Fatalf("top edge alpha = %#x, want opaque bezel", a)
	}
	// Without a source image the screen center shows the placeholder.
	if got := patch.NRGBAAt(150, 324); got != screenPlaceholder {
		t.Fatalf("screen center = %+v, want placeholder", got)
	}
}

func TestRenderDeviceFrameClayFill(t *testing.T) {
	patch := RenderDeviceFrame(testDevice(project.DeviceStyleClay), nil, project.FitCover, 300, 649)
	// Just inside the screen inset the bezel shows the clay material.
	if got := patch.NRGBAAt(2, 324); got != clayFill {
		t.Fatalf("bezel pixel = %+v, want clay fill", got)
	}
}

func TestRenderDeviceFrameResolutionIndependence(t *testing.T) {
	small := RenderDeviceFrame(testDevice(project.DeviceStyleFlat), nil, project.FitCover, 100, 216)
	large := RenderDeviceFrame(testDevice(project.DeviceStyleFlat), nil, project.FitCover, 1000, 2160)

	// Sample matching relative positions away from antialiased edges.
	points := []struct{ rx, ry float64 }{
		{0.5, 0.5},  // screen center
		{0.5, 0.05}, // dynamic island
		{0.01, 0.5}, // bezel edge
	}
	for _, p := range points {
		sc := small.NRGBAAt(int(p.rx*100), int(p.ry*216))
		lc := large.NRGBAAt(int(p.rx*1000), int(p.ry*2160))
		if sc != lc {
			t.Fatalf("relative point (%v,%v): small %+v, large %+v", p.rx, p.ry, sc, lc)
		}
	}
}

func TestRenderDeviceShadow(t *testing.T) {
	dev := testDevice(project.DeviceStyleRealistic)
	dev.Shadow = true
	dev.ShadowOpacity = 0.3

	shadow, pad := RenderDeviceShadow(dev, 200, 432)
	if pad <= 0 {
		t.Fatalf("pad = %d, want positive blur padding", pad)
	}
	b := shadow.Bounds()
	if b.Dx() != 200+2*pad || b.Dy() != 432+2*pad {
		t.Fatalf("shadow is %dx%d, want slot plus padding on each side", b.Dx(), b.Dy())
	}

	// The silhouette center is darkest; the far corner has faded out.
	center := shadow.NRGBAAt(b.Dx()/2, b.Dy()/2).A
	corner := shadow.NRGBAAt(0, 0).A
	if center == 0 {
		t.Fatal("shadow center is fully transparent")
	}
	if corner >= center {
		t.Fatalf("corner alpha %#x not below center alpha %#x", corner, center)
	}
}

func TestRenderDeviceShadowBlurScaling(t *testing.T) {
	dev := testDevice(project.DeviceStyleRealistic)
	dev.Shadow = true
	dev.ShadowOpacity = 0.3

	dev.ShadowBlur = 40
	_, basePad := RenderDeviceShadow(dev, 200, 432)

	// Doubling the blur widens the padding the blur dissipates into.
	dev.ShadowBlur = 80
	_, widePad := RenderDeviceShadow(dev, 200, 432)
	if widePad <= basePad {
		t.Fatalf("pad %d at blur 80 not above pad %d at blur 40", widePad, basePad)
	}

	// Unset blur keeps the default geometry.
	dev.ShadowBlur = 0
	_, defaultPad := RenderDeviceShadow(dev, 200, 432)
	if defaultPad != basePad {
		t.Fatalf("pad %d at unset blur, want %d as with the default 40", defaultPad, basePad)
	}
}
