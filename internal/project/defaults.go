package project

import "github.com/google/uuid"

var defaultTextStyle = TextStyle{
	FontFamily:    "SF Pro Display",
	FontSize:      48,
	FontWeight:    700,
	Color:         "#1c1c1e",
	Alignment:     AlignCenter,
	LineHeight:    1.2,
	LetterSpacing: 0,
}

var defaultDevice = DeviceConfig{
	Model:         "iphone-6.9",
	Color:         "natural-titanium",
	Style:         DeviceStyleRealistic,
	Scale:         0.75,
	PositionX:     0.5,
	PositionY:     0.55,
	Shadow:        true,
	ShadowBlur:    40,
	ShadowOpacity: 0.3,
	Rotation:      0,
}

// NewScreenshot builds a screenshot with factory defaults: solid white
// background, centered device and two starter text layers.
func NewScreenshot(order int) ScreenshotConfig {
	subtitleStyle := defaultTextStyle
	subtitleStyle.FontSize = 32
	subtitleStyle.FontWeight = 400
	subtitleStyle.Color = "#666666"

	return ScreenshotConfig{
		ID:    uuid.NewString(),
		Order: order,
		Template: TemplateConfig{
			ID:   "clean-white",
			Name: "Clean White",
			Background: BackgroundConfig{
				Type:  BackgroundSolid,
				Color: "#FFFFFF",
			},
			TextPosition: "top",
			DeviceLayout: "center",
		},
		Device: defaultDevice,
		Texts: []LocalizedText{
			{
				ID:           uuid.NewString(),
				Type:         "headline",
				Translations: map[string]string{BaseLocale: "Your headline here"},
				Style:        defaultTextStyle,
				PositionY:    0.08,
			},
			{
				ID:           uuid.NewString(),
				Type:         "subtitle",
				Translations: map[string]string{BaseLocale: "Add a subtitle to explain your feature"},
				Style:        subtitleStyle,
				PositionY:    0.14,
			},
		},
	}
}

// NewProject builds a project holding a single default screenshot.
func NewProject(name string) Project {
	return Project{
		ID:            uuid.NewString(),
		Name:          name,
		Screenshots:   []ScreenshotConfig{NewScreenshot(0)},
		Locales:       []string{BaseLocale},
		DefaultLocale: BaseLocale,
	}
}
