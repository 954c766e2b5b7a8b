package render

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/disintegration/imaging"

	"appshot/internal/project"
)

// Assembler renders complete frames. It caches decoded screen images so a
// batch export does not re-decode the same file for every locale/device.
// Renders are strictly sequential; the cache is not synchronized.
type Assembler struct {
	logger *slog.Logger
	images map[string]image.Image
	failed map[string]bool
}

// NewAssembler builds an assembler. A nil logger falls back to the default.
func NewAssembler(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		logger: logger,
		images: make(map[string]image.Image),
		failed: make(map[string]bool),
	}
}

// Render produces one fully opaque frame of exactly targetW x targetH
// pixels: background, social proof, text layers, then device frames on
// top. Identical inputs produce identical output; the grain overlay is
// seeded from the render identity.
func (a *Assembler) Render(shot project.ScreenshotConfig, locale string, targetW, targetH int) (image.Image, error) {
	if targetW < 1 || targetH < 1 {
		a.logger.Warn("invalid frame size clamped",
			slog.Int("width", targetW),
			slog.Int("height", targetH),
			slog.String("screenshot_id", shot.ID),
		)
		if targetW < 1 {
			targetW = 1
		}
		if targetH < 1 {
			targetH = 1
		}
	}

	bg := shot.Template.Background
	canvas := Rasterize(ResolvePaint(bg, targetW, targetH), targetW, targetH)
	if bg.Noise != nil && bg.Noise.Enabled {
		ApplyNoise(canvas, bg.Noise.Intensity, bg.Noise.Monochrome, NoiseSeed(shot.ID, locale, targetW, targetH))
	}

	for _, el := range shot.SocialProof {
		RenderSocialProof(canvas, el, targetW, targetH)
	}

	for _, txt := range shot.Texts {
		RenderText(canvas, txt, locale, targetW, targetH)
	}

	a.drawDevices(canvas, shot, targetW, targetH)

	return canvas, nil
}

func (a *Assembler) drawDevices(canvas *image.NRGBA, shot project.ScreenshotConfig, frameW, frameH int) {
	screen := a.loadScreenImage(shot.Image)
	fit := project.FitCover
	if shot.Image != nil && shot.Image.Fit != "" {
		fit = shot.Image.Fit
	}

	for _, slot := range ResolveSlots(shot, frameW, frameH) {
		if shot.Device.Shadow && shot.Device.Style != project.DeviceStyleNone {
			shadow, _ := RenderDeviceShadow(shot.Device, slot.Width, slot.Height)
			if slot.Rotation != 0 {
				shadow = imaging.Rotate(shadow, -slot.Rotation, color.NRGBA{})
			}
			compositeCentered(canvas, shadow, slot.CenterX, slot.CenterY+float64(ShadowOffsetY(slot.Width)), slot.Opacity)
		}

		patch := RenderDeviceFrame(shot.Device, screen, fit, slot.Width, slot.Height)
		if slot.Rotation != 0 {
			// imaging rotates counter-clockwise; config rotation is
			// clockwise degrees.
			patch = imaging.Rotate(patch, -slot.Rotation, color.NRGBA{})
		}
		compositeCentered(canvas, patch, slot.CenterX, slot.CenterY, slot.Opacity)
	}
}

// loadScreenImage resolves the screenshot's source bitmap from local disk.
// Failures are logged once and degrade to the screen placeholder.
func (a *Assembler) loadScreenImage(cfg *project.ImageConfig) image.Image {
	if cfg == nil || cfg.URL == "" {
		return nil
	}
	if img, ok := a.images[cfg.URL]; ok {
		return img
	}
	if a.failed[cfg.URL] {
		return nil
	}
	img, err := imaging.Open(cfg.URL)
	if err != nil {
		a.logger.Warn("screen image unavailable, using placeholder",
			slog.String("url", cfg.URL),
			slog.Any("error", err),
		)
		a.failed[cfg.URL] = true
		return nil
	}
	a.images[cfg.URL] = img
	return img
}
