package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"appshot/internal/project"
)

// Social proof badges are authored in the same 280px-wide design space as
// text, so one unit is frameW/280 pixels before the element's own scale.

var (
	proofCardFill  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xeb}
	proofLogoFill  = color.NRGBA{R: 0x9a, G: 0x9a, B: 0xa0, A: 0xff}
	proofStarColor = color.NRGBA{R: 0xff, G: 0xb3, B: 0x00, A: 0xff}
)

// RenderSocialProof draws one enabled social proof element centered on its
// normalized anchor. Unknown variants draw nothing.
func RenderSocialProof(dst *image.NRGBA, el project.SocialProofElement, frameW, frameH int) {
	if !el.Enabled {
		return
	}
	scale := el.Style.Scale
	if scale <= 0 {
		scale = 1
	}
	u := float64(frameW) / fontSizeReferenceWidth * scale

	var patch *image.NRGBA
	switch el.Type {
	case project.ProofRating:
		patch = ratingBadge(el, u)
	case project.ProofDownloads:
		patch = pillBadge(firstNonEmpty(el.DownloadCount, "1M+")+" downloads", el, u)
	case project.ProofAward:
		patch = awardBadge(el, u)
	case project.ProofUniversity:
		patch = logosBadge(firstNonEmpty(el.LogosLabel, "Trusted by students at"), el.Logos, el, u)
	case project.ProofTestimonial:
		patch = testimonialCard(el, u)
	case project.ProofPress:
		patch = pressRow(el, u)
	case project.ProofTrustedBy:
		patch = trustedByBadge(el, u)
	case project.ProofFeatureCards:
		patch = featureCardsGrid(el, u)
	default:
		return
	}
	if patch == nil {
		return
	}

	opacity := el.Style.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	cx := el.PositionX * float64(frameW)
	cy := el.PositionY * float64(frameH)
	compositeCentered(dst, patch, cx, cy, opacity)
}

// compositeCentered blends a patch over dst, centered at (cx, cy), with a
// uniform extra opacity.
func compositeCentered(dst *image.NRGBA, patch *image.NRGBA, cx, cy, opacity float64) {
	pw := patch.Bounds().Dx()
	ph := patch.Bounds().Dy()
	ox := int(cx - float64(pw)/2)
	oy := int(cy - float64(ph)/2)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			c := patch.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			c.A = uint8(float64(c.A) * opacity)
			blendOver(dst, ox+x, oy+y, c)
		}
	}
}

func textColor(el project.SocialProofElement) color.NRGBA {
	return colorOr(el.Style.Color, color.NRGBA{R: 0x1c, G: 0x1c, B: 0x1e, A: 0xff})
}

func accentColor(el project.SocialProofElement) color.NRGBA {
	return colorOr(el.Style.SecondaryColor, proofStarColor)
}

func backgroundFill(el project.SocialProofElement) color.NRGBA {
	return colorOr(el.Style.BackgroundColor, proofCardFill)
}

func colorOr(s string, fallback color.NRGBA) color.NRGBA {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return parseHex(s)
}

// pillBadge is the shared single-line badge: rounded pill with a caption.
func pillBadge(caption string, el project.SocialProofElement, u float64) *image.NRGBA {
	face, err := faceFor(600, 9*u)
	if err != nil {
		return nil
	}
	defer func() { _ = face.Close() }()

	padX := 8 * u
	padY := 5 * u
	textW := measureString(face, caption, 0)
	w := int(textW + 2*padX)
	h := int(9*u + 2*padY)

	patch := image.NewNRGBA(image.Rect(0, 0, w, h))
	fillRoundedRect(patch, patch.Bounds(), float64(h)/2, backgroundFill(el))
	ascent := float64(face.Metrics().Ascent.Round())
	drawString(patch, face, caption, padX, padY+ascent, 0, textColor(el))
	return patch
}

func ratingBadge(el project.SocialProofElement, u float64) *image.NRGBA {
	rating := el.Rating
	if rating <= 0 || rating > 5 {
		rating = 5
	}
	caption := fmt.Sprintf("%.1f", rating)
	if el.RatingCount != "" {
		caption += " • " + el.RatingCount
	}

	face, err := faceFor(600, 9*u)
	if err != nil {
		return nil
	}
	defer func() { _ = face.Close() }()

	starR := 5 * u
	starGap := 2 * u
	starsW := 0.0
	if el.ShowStars {
		starsW = 5*(2*starR) + 4*starGap + 6*u
	}
	padX := 8 * u
	padY := 5 * u
	textW := measureString(face, caption, 0)
	w := int(starsW + textW + 2*padX)
	h := int(12*u + 2*padY)

	patch := image.NewNRGBA(image.Rect(0, 0, w, h))
	fillRoundedRect(patch, patch.Bounds(), float64(h)/2, backgroundFill(el))

	x := padX
	if el.ShowStars {
		filled := int(rating + 0.5)
		cy := float64(h) / 2
		for i := 0; i < 5; i++ {
			c := accentColor(el)
			if i >= filled {
				c.A = 0x55
			}
			fillStar(patch, x+starR, cy, starR, c)
			x += 2*starR + starGap
		}
		x += 6 * u
	}
	ascent := float64(face.Metrics().Ascent.Round())
	drawString(patch, face, caption, x, (float64(h)-9*u)/2+ascent, 0, textColor(el))
	return patch
}

func awardBadge(el project.SocialProofElement, u float64) *image.NRGBA {
	caption := firstNonEmpty(el.AwardText, "Editor's Choice")
	patch := pillBadge(caption, el, u)
	if patch == nil {
		return nil
	}
	strokeRoundedRect(patch, patch.Bounds(), float64(patch.Bounds().Dy())/2, u, accentColor(el))
	return patch
}

func logosBadge(label string, logos []string, el project.SocialProofElement, u float64) *image.NRGBA {
	face, err := faceFor(400, 7*u)
	if err != nil {
		return nil
	}
	defer func() { _ = face.Close() }()

	if len(logos) == 0 {
		logos = []string{"A", "B", "C"}
	}
	if len(logos) > 5 {
		logos = logos[:5]
	}

	boxW := 22 * u
	boxH := 10 * u
	gap := 4 * u
	rowW := float64(len(logos))*boxW + float64(len(logos)-1)*gap
	labelW := measureString(face, label, 0)
	w := int(maxFloat(rowW, labelW))
	h := int(7*u + 4*u + boxH)

	patch := image.NewNRGBA(image.Rect(0, 0, w, h))
	ascent := float64(face.Metrics().Ascent.Round())
	drawString(patch, face, label, (float64(w)-labelW)/2, ascent, 0, textColor(el))

	x := (float64(w) - rowW) / 2
	y := 7*u + 4*u
	for range logos {
		fillRoundedRect(patch, image.Rect(int(x), int(y), int(x+boxW), int(y+boxH)), 2*u, proofLogoFill)
		x += boxW + gap
	}
	return patch
}

func testimonialCard(el project.SocialProofElement, u float64) *image.NRGBA {
	quote := firstNonEmpty(el.TestimonialText, "Love this app!")
	face, err := faceFor(400, 8*u)
	if err != nil {
		return nil
	}
	defer func() { _ = face.Close() }()

	cardW := 150 * u
	pad := 10 * u
	lines := wrapText(face, "“"+quote+"”", cardW-2*pad, 0)
	lineAdvance := 8 * u * defaultLineHeight

	authorH := 0.0
	if el.TestimonialAuthor != "" {
		authorH = lineAdvance + 2*u
	}
	h := int(2*pad + lineAdvance*float64(len(lines)) + authorH)

	patch := image.NewNRGBA(image.Rect(0, 0, int(cardW), h))
	fillRoundedRect(patch, patch.Bounds(), 6*u, backgroundFill(el))

	ascent := float64(face.Metrics().Ascent.Round())
	y := pad + ascent
	for _, line := range lines {
		drawString(patch, face, line, pad, y, 0, textColor(el))
		y += lineAdvance
	}
	if el.TestimonialAuthor != "" {
		drawString(patch, face, "— "+el.TestimonialAuthor, pad, y+2*u, 0, accentColor(el))
	}
	return patch
}

func pressRow(el project.SocialProofElement, u float64) *image.NRGBA {
	names := el.PressLogos
	if len(names) == 0 {
		return nil
	}
	if len(names) > 4 {
		names = names[:4]
	}
	caption := strings.ToUpper(strings.Join(names, "   •   "))

	face, err := faceFor(600, 7*u)
	if err != nil {
		return nil
	}
	defer func() { _ = face.Close() }()

	w := int(measureString(face, caption, 0)) + 1
	h := int(9 * u)
	patch := image.NewNRGBA(image.Rect(0, 0, w, h))
	ascent := float64(face.Metrics().Ascent.Round())
	drawString(patch, face, caption, 0, ascent, 0, textColor(el))
	return patch
}

func trustedByBadge(el project.SocialProofElement, u float64) *image.NRGBA {
	caption := firstNonEmpty(el.TrustedByText, "Trusted by 1M+ users")
	face, err := faceFor(600, 8*u)
	if err != nil {
		return nil
	}
	defer func() { _ = face.Close() }()

	r := 6 * u
	overlap := 4 * u
	const facepile = 4
	pileW := 2*r + float64(facepile-1)*(2*r-overlap)
	padX := 7 * u
	padY := 4 * u
	textW := measureString(face, caption, 0)
	w := int(pileW + 5*u + textW + 2*padX)
	h := int(maxFloat(2*r, 8*u) + 2*padY)

	patch := image.NewNRGBA(image.Rect(0, 0, w, h))
	fillRoundedRect(patch, patch.Bounds(), float64(h)/2, backgroundFill(el))

	cy := float64(h) / 2
	x := padX + r
	for i := 0; i < facepile; i++ {
		c := accentColor(el)
		// Alternate tones so the overlapping discs read as avatars.
		if i%2 == 1 {
			c = proofLogoFill
		}
		fillCircle(patch, x, cy, r, c)
		x += 2*r - overlap
	}
	ascent := float64(face.Metrics().Ascent.Round())
	drawString(patch, face, caption, padX+pileW+5*u, (float64(h)-8*u)/2+ascent, 0, textColor(el))
	return patch
}

func featureCardsGrid(el project.SocialProofElement, u float64) *image.NRGBA {
	cards := el.FeatureCards
	if len(cards) == 0 {
		return nil
	}
	if len(cards) > 6 {
		cards = cards[:6]
	}

	face, err := faceFor(600, 7*u)
	if err != nil {
		return nil
	}
	defer func() { _ = face.Close() }()

	cardW := 60 * u
	cardH := 36 * u
	gap := 5 * u
	cols := 2
	rows := (len(cards) + cols - 1) / cols

	w := int(float64(cols)*cardW + float64(cols-1)*gap)
	h := int(float64(rows)*cardH + float64(rows-1)*gap)
	patch := image.NewNRGBA(image.Rect(0, 0, w, h))

	ascent := float64(face.Metrics().Ascent.Round())
	for i, card := range cards {
		col := i % cols
		row := i / cols
		x := float64(col) * (cardW + gap)
		y := float64(row) * (cardH + gap)
		fillRoundedRect(patch, image.Rect(int(x), int(y), int(x+cardW), int(y+cardH)), 5*u, colorOr(card.Color, proofLogoFill))

		labelW := measureString(face, card.Label, 0)
		lx := x + (cardW-labelW)/2
		ly := y + cardH - 6*u - 7*u + ascent
		drawString(patch, face, card.Label, lx, ly, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	}
	return patch
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
