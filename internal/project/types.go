package project

// BackgroundType discriminates the background union.
type BackgroundType string

const (
	BackgroundSolid         BackgroundType = "solid"
	BackgroundGradient      BackgroundType = "gradient"
	BackgroundMesh          BackgroundType = "mesh"
	BackgroundGlassmorphism BackgroundType = "glassmorphism"
	BackgroundBlobs         BackgroundType = "blobs"
)

// DeviceStyle controls how much device chrome is drawn around the screen.
type DeviceStyle string

const (
	DeviceStyleRealistic DeviceStyle = "realistic"
	DeviceStyleClay      DeviceStyle = "clay"
	DeviceStyleFlat      DeviceStyle = "flat"
	// DeviceStyleNone draws no bezel, island or indicator; the image fills
	// the whole slot edge to edge.
	DeviceStyleNone DeviceStyle = "none"
)

// GradientKind is the gradient sub-type.
type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
	GradientConic  GradientKind = "conic"
)

// ImageFit selects how a screen image is mapped into the screen region.
type ImageFit string

const (
	FitCover   ImageFit = "cover"
	FitContain ImageFit = "contain"
	FitFill    ImageFit = "fill"
)

// TextAlignment is the intra-block text alignment.
type TextAlignment string

const (
	AlignLeft   TextAlignment = "left"
	AlignCenter TextAlignment = "center"
	AlignRight  TextAlignment = "right"
)

// GradientStop is one color stop, position normalized to [0,1].
type GradientStop struct {
	Color    string  `json:"color"`
	Position float64 `json:"position"`
}

// GradientConfig describes a linear, radial or conic gradient.
// CenterX/CenterY are normalized and default to 0.5 when nil. Angle
// defaults to 180 (top to bottom) when nil; an explicit 0 means
// bottom to top.
type GradientConfig struct {
	Type       GradientKind   `json:"type"`
	Angle      *float64       `json:"angle,omitempty"`
	CenterX    *float64       `json:"center_x,omitempty"`
	CenterY    *float64       `json:"center_y,omitempty"`
	StartAngle float64        `json:"start_angle,omitempty"`
	Stops      []GradientStop `json:"stops"`
}

// MeshColorPoint is one independently positioned color of a mesh background.
type MeshColorPoint struct {
	Color  string  `json:"color"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// BlobConfig is one soft radial blob of a glassmorphism/blobs background.
type BlobConfig struct {
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
}

// NoiseConfig toggles the procedural grain overlay.
type NoiseConfig struct {
	Enabled    bool    `json:"enabled"`
	Intensity  float64 `json:"intensity"`
	Monochrome bool    `json:"monochrome"`
}

// BackgroundConfig is a tagged union on Type. Only the fields belonging to
// the active type are meaningful; the renderer must not read the others.
type BackgroundConfig struct {
	Type  BackgroundType `json:"type"`
	Color string         `json:"color,omitempty"`

	Gradient *GradientConfig `json:"gradient,omitempty"`

	ColorPoints []MeshColorPoint `json:"color_points,omitempty"`

	BaseGradient *GradientConfig `json:"base_gradient,omitempty"`
	Blobs        []BlobConfig    `json:"blobs,omitempty"`
	BaseColor    string          `json:"base_color,omitempty"`

	Noise *NoiseConfig `json:"noise,omitempty"`
}

// DeviceConfig describes the device frame of one screenshot. Model and Color
// are catalog keys and are not validated in the render path.
type DeviceConfig struct {
	Model         string      `json:"model"`
	Color         string      `json:"color"`
	Style         DeviceStyle `json:"style"`
	Scale         float64     `json:"scale"`
	PositionX     float64     `json:"positionX"`
	PositionY     float64     `json:"positionY"`
	Shadow        bool        `json:"shadow"`
	ShadowBlur    float64     `json:"shadowBlur"`
	ShadowOpacity float64     `json:"shadowOpacity"`
	Rotation      float64     `json:"rotation"`
}

// ImageConfig references the screen capture composited into the device.
// URL must already resolve to a locally readable bitmap.
type ImageConfig struct {
	URL       string   `json:"url"`
	Fit       ImageFit `json:"fit"`
	PositionX float64  `json:"positionX"`
	PositionY float64  `json:"positionY"`
}

// TextStyle carries the typographic attributes of a text layer. FontSize is
// a design-reference value authored against a 280px wide frame.
type TextStyle struct {
	FontFamily    string        `json:"fontFamily"`
	FontSize      float64       `json:"fontSize"`
	FontWeight    int           `json:"fontWeight"`
	Color         string        `json:"color"`
	Alignment     TextAlignment `json:"alignment"`
	LineHeight    float64       `json:"lineHeight"`
	LetterSpacing float64       `json:"letterSpacing"`
}

// LocalizedText is one text layer with per-locale content.
type LocalizedText struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Translations map[string]string `json:"translations"`
	Style        TextStyle         `json:"style"`
	PositionY    float64           `json:"positionY"`
}

// Resolve returns the content for locale, falling back to the base locale
// and finally to the empty string. A missing translation is never an error.
func (t LocalizedText) Resolve(locale string) string {
	if s, ok := t.Translations[locale]; ok && s != "" {
		return s
	}
	return t.Translations[BaseLocale]
}

// BaseLocale is the final fallback of the locale resolution chain.
const BaseLocale = "en"

// SocialProofType discriminates the social proof union.
type SocialProofType string

const (
	ProofRating       SocialProofType = "rating"
	ProofDownloads    SocialProofType = "downloads"
	ProofAward        SocialProofType = "award"
	ProofUniversity   SocialProofType = "university"
	ProofTestimonial  SocialProofType = "testimonial"
	ProofPress        SocialProofType = "press"
	ProofTrustedBy    SocialProofType = "trusted-by"
	ProofFeatureCards SocialProofType = "feature-cards"
)

// FeatureCard is one tile of a feature-cards element.
type FeatureCard struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// ProofStyle carries the shared styling of a social proof element.
type ProofStyle struct {
	Scale           float64 `json:"scale"`
	Opacity         float64 `json:"opacity"`
	Color           string  `json:"color"`
	SecondaryColor  string  `json:"secondaryColor"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
}

// SocialProofElement is a tagged union over the decoration variants. Only
// the fields of the active Type are meaningful.
type SocialProofElement struct {
	ID        string          `json:"id"`
	Type      SocialProofType `json:"type"`
	Enabled   bool            `json:"enabled"`
	PositionX float64         `json:"positionX"`
	PositionY float64         `json:"positionY"`

	Rating      float64 `json:"rating,omitempty"`
	RatingCount string  `json:"ratingCount,omitempty"`
	ShowStars   bool    `json:"showStars,omitempty"`

	DownloadCount string `json:"downloadCount,omitempty"`

	AwardText string `json:"awardText,omitempty"`

	Logos      []string `json:"logos,omitempty"`
	LogosLabel string   `json:"logosLabel,omitempty"`

	TestimonialText   string `json:"testimonialText,omitempty"`
	TestimonialAuthor string `json:"testimonialAuthor,omitempty"`

	PressLogos []string `json:"pressLogos,omitempty"`

	TrustedByText string `json:"trustedByText,omitempty"`

	FeatureCards []FeatureCard `json:"featureCards,omitempty"`

	Style ProofStyle `json:"style"`
}

// TemplateConfig wraps the background and layout identity of a screenshot.
type TemplateConfig struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Background   BackgroundConfig `json:"background"`
	TextPosition string           `json:"textPosition,omitempty"`
	DeviceLayout string           `json:"deviceLayout,omitempty"`
}

// ScreenshotConfig is one exportable slide. The renderer only ever reads it.
type ScreenshotConfig struct {
	ID          string               `json:"id"`
	Order       int                  `json:"order"`
	Template    TemplateConfig       `json:"template"`
	Device      DeviceConfig         `json:"device"`
	Image       *ImageConfig         `json:"image,omitempty"`
	Texts       []LocalizedText      `json:"texts"`
	SocialProof []SocialProofElement `json:"socialProof,omitempty"`
	Layout      string               `json:"layout,omitempty"`
}

// Project groups the screenshots and locale selection of one app.
type Project struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Screenshots   []ScreenshotConfig `json:"screenshots"`
	Locales       []string           `json:"locales"`
	DefaultLocale string             `json:"defaultLocale"`
}

// ExportFormat is the encoded image format of an export run.
type ExportFormat string

const (
	FormatPNG  ExportFormat = "png"
	FormatJPEG ExportFormat = "jpeg"
)

// ExportConfig drives one batch export. Devices and Locales are opaque
// identifiers resolved against the catalogs at export time.
type ExportConfig struct {
	Devices       []string     `json:"devices"`
	Locales       []string     `json:"locales"`
	Format        ExportFormat `json:"format"`
	Quality       int          `json:"quality"`
	NamingPattern string       `json:"namingPattern"`
}
