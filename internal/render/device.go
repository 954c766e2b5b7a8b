package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"appshot/internal/catalog"
	"appshot/internal/project"
)

// Bezel geometry as fractions of the slot. These ratios are the contract
// that makes a 300px and a 3000px render geometrically identical.
const (
	bezelRadiusRatio  = 0.165
	screenInsetRatio  = 0.018
	screenRadiusRatio = 0.147
	borderRatio       = 0.003

	islandWidthRatio   = 0.32
	islandHeightRatio  = 0.044
	islandTopRatio     = 0.035
	indicatorWidth     = 0.38
	indicatorHeight    = 0.015
	indicatorBottomPad = 0.022
)

var (
	bezelFill         = color.NRGBA{R: 0x1c, G: 0x1c, B: 0x1e, A: 0xff}
	clayFill          = color.NRGBA{R: 0xd8, G: 0xd8, B: 0xdc, A: 0xff}
	screenPlaceholder = color.NRGBA{R: 0x2c, G: 0x2c, B: 0x2e, A: 0xff}
	islandFill        = color.NRGBA{A: 0xff}
	indicatorFill     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x4d}
)

// RenderDeviceFrame draws the device patch at exactly slotW x slotH:
// bezel, clipped screen with the source image, dynamic island and home
// indicator. style=none draws the image edge to edge with zero chrome.
// Shadow, rotation and placement are applied by the assembler.
func RenderDeviceFrame(dev project.DeviceConfig, screen image.Image, fit project.ImageFit, slotW, slotH int) *image.NRGBA {
	if slotW < 1 {
		slotW = 1
	}
	if slotH < 1 {
		slotH = 1
	}
	patch := image.NewNRGBA(image.Rect(0, 0, slotW, slotH))
	chrome := dev.Style != project.DeviceStyleNone

	minSide := float64(minInt(slotW, slotH))
	outerRadius := 0.0
	if chrome {
		outerRadius = bezelRadiusRatio * minSide

		fill := bezelFill
		if dev.Style == project.DeviceStyleClay {
			fill = clayFill
		}
		fillRoundedRect(patch, patch.Bounds(), outerRadius, fill)

		if dev.Style == project.DeviceStyleRealistic {
			rim := parseHex(catalog.Bezel(dev.Color).Frame)
			strokeRoundedRect(patch, patch.Bounds(), outerRadius, borderRatio*float64(slotW), rim)
		}
	}

	// Screen region.
	insetX, insetY := 0, 0
	screenRadius := 0.0
	if chrome {
		insetX = int(screenInsetRatio*float64(slotW) + 0.5)
		insetY = int(screenInsetRatio*float64(slotH) + 0.5)
		screenRadius = screenRadiusRatio * minSide
	}
	screenRect := image.Rect(insetX, insetY, slotW-insetX, slotH-insetY)
	drawScreen(patch, screenRect, screenRadius, screen, fit)

	if chrome {
		// Dynamic island.
		iw := islandWidthRatio * float64(slotW)
		ih := islandHeightRatio * float64(slotH)
		ix := (float64(slotW) - iw) / 2
		iy := islandTopRatio * float64(slotH)
		fillRoundedRect(patch, image.Rect(int(ix), int(iy), int(ix+iw), int(iy+ih)), ih/2, islandFill)

		// Home indicator.
		hw := indicatorWidth * float64(slotW)
		hh := indicatorHeight * float64(slotH)
		hx := (float64(slotW) - hw) / 2
		hy := float64(slotH) - indicatorBottomPad*float64(slotH) - hh
		fillRoundedRect(patch, image.Rect(int(hx), int(hy), int(hx+hw), int(hy+hh)), hh/2, indicatorFill)
	}

	return patch
}

// drawScreen fills the screen region and composites the source image into
// it using the configured fit mode, clipped to the screen's rounded rect.
func drawScreen(patch *image.NRGBA, rect image.Rectangle, radius float64, src image.Image, fit project.ImageFit) {
	sw := rect.Dx()
	sh := rect.Dy()
	if sw < 1 || sh < 1 {
		return
	}

	screen := image.NewNRGBA(image.Rect(0, 0, sw, sh))
	draw.Draw(screen, screen.Bounds(), image.NewUniform(screenPlaceholder), image.Point{}, draw.Src)

	if src != nil {
		switch fit {
		case project.FitContain:
			fitted := imaging.Fit(src, sw, sh, imaging.Lanczos)
			off := image.Pt((sw-fitted.Bounds().Dx())/2, (sh-fitted.Bounds().Dy())/2)
			draw.Draw(screen, fitted.Bounds().Add(off), fitted, image.Point{}, draw.Over)
		case project.FitFill:
			resized := imaging.Resize(src, sw, sh, imaging.Lanczos)
			draw.Draw(screen, screen.Bounds(), resized, image.Point{}, draw.Over)
		default: // cover
			filled := imaging.Fill(src, sw, sh, imaging.Center, imaging.Lanczos)
			draw.Draw(screen, screen.Bounds(), filled, image.Point{}, draw.Over)
		}
	}

	mask := roundedRectMask(sw, sh, radius)
	draw.DrawMask(patch, rect, screen, image.Point{}, mask, image.Point{}, draw.Over)
}

const (
	shadowSigmaRatio   = 0.025
	shadowOffsetYRatio = 0.02
	defaultShadowAlpha = 0.3
	defaultShadowBlur  = 40
)

// RenderDeviceShadow builds the blurred silhouette drawn behind the bezel.
// The returned patch is padded on every side by the returned margin so the
// blur has room to dissipate; the assembler centers it under the device and
// nudges it down by ShadowOffsetY(slotW).
func RenderDeviceShadow(dev project.DeviceConfig, slotW, slotH int) (*image.NRGBA, int) {
	opacity := dev.ShadowOpacity
	if opacity <= 0 {
		opacity = defaultShadowAlpha
	}
	if opacity > 1 {
		opacity = 1
	}
	// ShadowBlur scales relative to the default; 0 keeps the baseline
	// blur so older projects render unchanged.
	sigma := shadowSigmaRatio * float64(slotW)
	if dev.ShadowBlur > 0 {
		sigma *= dev.ShadowBlur / defaultShadowBlur
	}
	if sigma < 1 {
		sigma = 1
	}
	pad := int(3*sigma) + 1

	patch := image.NewNRGBA(image.Rect(0, 0, slotW+2*pad, slotH+2*pad))
	silhouette := color.NRGBA{A: uint8(opacity*255 + 0.5)}
	radius := bezelRadiusRatio * float64(minInt(slotW, slotH))
	fillRoundedRect(patch, image.Rect(pad, pad, pad+slotW, pad+slotH), radius, silhouette)

	return imaging.Blur(patch, sigma), pad
}

// ShadowOffsetY is the vertical shadow displacement for a slot width.
func ShadowOffsetY(slotW int) int {
	return int(shadowOffsetYRatio*float64(slotW) + 0.5)
}
