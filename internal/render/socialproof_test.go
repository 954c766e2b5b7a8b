package render

import (
	"testing"

	"appshot/internal/project"
)

func proofElement(typ project.SocialProofType) project.SocialProofElement {
	return project.SocialProofElement{
		ID:        "sp1",
		Type:      typ,
		Enabled:   true,
		PositionX: 0.5,
		PositionY: 0.5,
		Style:     project.ProofStyle{Scale: 1, Opacity: 1},
	}
}

func TestRenderSocialProofDrawsEnabledElement(t *testing.T) {
	el := proofElement(project.ProofRating)
	el.Rating = 4.6
	el.ShowStars = true
	el.RatingCount = "12K ratings"

	canvas := opaqueCanvas(280, 600)
	before := opaqueCanvas(280, 600)
	RenderSocialProof(canvas, el, 280, 600)
	if pixelsEqual(canvas, before) {
		t.Fatal("canvas unchanged after drawing rating badge")
	}
}

func TestRenderSocialProofSkipsDisabled(t *testing.T) {
	el := proofElement(project.ProofDownloads)
	el.Enabled = false

	canvas := opaqueCanvas(280, 600)
	before := opaqueCanvas(280, 600)
	RenderSocialProof(canvas, el, 280, 600)
	if !pixelsEqual(canvas, before) {
		t.Fatal("disabled element drew pixels")
	}
}

func TestRenderSocialProofUnknownTypeDrawsNothing(t *testing.T) {
	el := proofElement("hologram")

	canvas := opaqueCanvas(280, 600)
	before := opaqueCanvas(280, 600)
	RenderSocialProof(canvas, el, 280, 600)
	if !pixelsEqual(canvas, before) {
		t.Fatal("unknown element type drew pixels")
	}
}

func TestRenderSocialProofVariants(t *testing.T) {
	variants := []project.SocialProofElement{
		func() project.SocialProofElement {
			el := proofElement(project.ProofDownloads)
			el.DownloadCount = "5M+"
			return el
		}(),
		func() project.SocialProofElement {
			el := proofElement(project.ProofAward)
			el.AwardText = "App of the Day"
			return el
		}(),
		func() project.SocialProofElement {
			el := proofElement(project.ProofTestimonial)
			el.TestimonialText = "Changed how I work."
			el.TestimonialAuthor = "A. Reviewer"
			return el
		}(),
		func() project.SocialProofElement {
			el := proofElement(project.ProofPress)
			el.PressLogos = []string{"TechDaily", "AppWeekly"}
			return el
		}(),
		func() project.SocialProofElement {
			el := proofElement(project.ProofTrustedBy)
			return el
		}(),
		func() project.SocialProofElement {
			el := proofElement(project.ProofFeatureCards)
			el.FeatureCards = []project.FeatureCard{
				{ID: "f1", Label: "Fast"},
				{ID: "f2", Label: "Private"},
			}
			return el
		}(),
	}

	for _, el := range variants {
		canvas := opaqueCanvas(280, 600)
		before := opaqueCanvas(280, 600)
		RenderSocialProof(canvas, el, 280, 600)
		if pixelsEqual(canvas, before) {
			t.Errorf("%s element drew nothing", el.Type)
		}
	}
}
