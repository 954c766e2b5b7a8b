package catalog

import "fmt"

// DeviceSpec maps a device identifier to its App Store export pixel size.
type DeviceSpec struct {
	ID          string
	Name        string
	DisplaySize string
	Width       int
	Height      int
	Category    string
	Required    bool
}

var deviceSpecs = map[string]DeviceSpec{
	"iphone-6.9":     {ID: "iphone-6.9", Name: "iPhone 16 Pro Max", DisplaySize: `6.9"`, Width: 1320, Height: 2868, Category: "iphone", Required: true},
	"iphone-6.9-alt": {ID: "iphone-6.9-alt", Name: "iPhone 15 Pro Max", DisplaySize: `6.9"`, Width: 1290, Height: 2796, Category: "iphone"},
	"iphone-6.7":     {ID: "iphone-6.7", Name: "iPhone 15 Pro Max", DisplaySize: `6.7"`, Width: 1290, Height: 2796, Category: "iphone"},
	"iphone-6.5":     {ID: "iphone-6.5", Name: "iPhone 14 Plus", DisplaySize: `6.5"`, Width: 1284, Height: 2778, Category: "iphone"},
	"iphone-6.1":     {ID: "iphone-6.1", Name: "iPhone 15", DisplaySize: `6.1"`, Width: 1179, Height: 2556, Category: "iphone"},
	"iphone-5.5":     {ID: "iphone-5.5", Name: "iPhone 8 Plus", DisplaySize: `5.5"`, Width: 1242, Height: 2208, Category: "iphone"},
	"ipad-13":        {ID: "ipad-13", Name: `iPad Pro 13"`, DisplaySize: `13"`, Width: 2064, Height: 2752, Category: "ipad", Required: true},
	"ipad-12.9":      {ID: "ipad-12.9", Name: `iPad Pro 12.9"`, DisplaySize: `12.9"`, Width: 2048, Height: 2732, Category: "ipad"},
	"ipad-11":        {ID: "ipad-11", Name: `iPad Pro 11"`, DisplaySize: `11"`, Width: 1668, Height: 2388, Category: "ipad"},
	"watch-ultra":    {ID: "watch-ultra", Name: "Apple Watch Ultra", DisplaySize: "49mm", Width: 422, Height: 514, Category: "watch"},
	"watch-series-9": {ID: "watch-series-9", Name: "Apple Watch Series 9", DisplaySize: "45mm", Width: 410, Height: 502, Category: "watch"},
	"apple-tv-4k":    {ID: "apple-tv-4k", Name: "Apple TV 4K", DisplaySize: "TV", Width: 3840, Height: 2160, Category: "tv"},
	"apple-tv-hd":    {ID: "apple-tv-hd", Name: "Apple TV HD", DisplaySize: "TV", Width: 1920, Height: 1080, Category: "tv"},
	"mac-16":         {ID: "mac-16", Name: `MacBook Pro 16"`, DisplaySize: `16"`, Width: 2880, Height: 1800, Category: "mac"},
	"mac-14":         {ID: "mac-14", Name: `MacBook Pro 14"`, DisplaySize: `14"`, Width: 2560, Height: 1600, Category: "mac"},
	"vision-pro":     {ID: "vision-pro", Name: "Apple Vision Pro", DisplaySize: "visionOS", Width: 3840, Height: 2160, Category: "vision"},
}

// Device looks up a device spec by identifier.
func Device(id string) (DeviceSpec, bool) {
	spec, ok := deviceSpecs[id]
	return spec, ok
}

// Devices returns all known device specs.
func Devices() []DeviceSpec {
	out := make([]DeviceSpec, 0, len(deviceSpecs))
	for _, spec := range deviceSpecs {
		out = append(out, spec)
	}
	return out
}

// BezelColors is a frame/bezel hex pair for a named device color.
type BezelColors struct {
	Frame string
	Bezel string
}

var bezelColors = map[string]BezelColors{
	"desert-titanium":  {Frame: "#C4A77D", Bezel: "#8B7355"},
	"natural-titanium": {Frame: "#A8A9AD", Bezel: "#6E6E73"},
	"white-titanium":   {Frame: "#F5F5F0", Bezel: "#D1D1D1"},
	"black-titanium":   {Frame: "#3B3B3D", Bezel: "#1D1D1F"},
	"ultramarine":      {Frame: "#8585FF", Bezel: "#5454CD"},
	"teal":             {Frame: "#54B4B4", Bezel: "#3A8080"},
	"pink":             {Frame: "#F5A0C0", Bezel: "#D47A9A"},
	"white":            {Frame: "#F5F5F0", Bezel: "#E0E0E0"},
	"black":            {Frame: "#1D1D1F", Bezel: "#0D0D0D"},
}

// Bezel resolves a device color key to its frame/bezel pair. A literal hex
// value is used as the frame with a 70% darker bezel tone; unknown keys fall
// back to the dark default so a bad key renders, not crashes.
func Bezel(color string) BezelColors {
	if len(color) == 7 && color[0] == '#' {
		return BezelColors{Frame: color, Bezel: darkenHex(color, 0.7)}
	}
	if c, ok := bezelColors[color]; ok {
		return c
	}
	return BezelColors{Frame: "#1F1F1F", Bezel: "#0D0D0D"}
}

func darkenHex(hex string, factor float64) string {
	parse := func(s string) int {
		n := 0
		for _, c := range s {
			n *= 16
			switch {
			case c >= '0' && c <= '9':
				n += int(c - '0')
			case c >= 'a' && c <= 'f':
				n += int(c-'a') + 10
			case c >= 'A' && c <= 'F':
				n += int(c-'A') + 10
			}
		}
		return n
	}
	r := int(float64(parse(hex[1:3])) * factor)
	g := int(float64(parse(hex[3:5])) * factor)
	b := int(float64(parse(hex[5:7])) * factor)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
