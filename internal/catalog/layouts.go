package catalog

// DeviceSlot is one device position inside a layout preset. Coordinates are
// normalized to the frame; ZIndex orders overlapping slots back to front.
// Opacity is 0..1, with 0 meaning unset (fully opaque).
type DeviceSlot struct {
	X        float64
	Y        float64
	Scale    float64
	Rotation float64
	ZIndex   int
	Opacity  float64
}

// Layout is a named arrangement of device slots.
type Layout struct {
	ID      string
	Devices []DeviceSlot
}

// LayoutCustom is the preset that defers position, scale and rotation to
// the screenshot's own DeviceConfig.
const LayoutCustom = "custom"

var layouts = map[string]Layout{
	LayoutCustom:        {ID: LayoutCustom, Devices: []DeviceSlot{{X: 0.5, Y: 0.55, Scale: 0.75, ZIndex: 1}}},
	"single-center":     {ID: "single-center", Devices: []DeviceSlot{{X: 0.5, Y: 0.55, Scale: 0.75, ZIndex: 1}}},
	"single-left":       {ID: "single-left", Devices: []DeviceSlot{{X: 0.32, Y: 0.55, Scale: 0.75, ZIndex: 1}}},
	"single-right":      {ID: "single-right", Devices: []DeviceSlot{{X: 0.68, Y: 0.55, Scale: 0.75, ZIndex: 1}}},
	"angled-right":      {ID: "angled-right", Devices: []DeviceSlot{{X: 0.5, Y: 0.55, Scale: 0.8, Rotation: 8, ZIndex: 1}}},
	"angled-left":       {ID: "angled-left", Devices: []DeviceSlot{{X: 0.5, Y: 0.55, Scale: 0.8, Rotation: -8, ZIndex: 1}}},
	"duo-overlap":       {ID: "duo-overlap", Devices: []DeviceSlot{{X: 0.38, Y: 0.58, Scale: 0.7, Rotation: -5, ZIndex: 1}, {X: 0.62, Y: 0.52, Scale: 0.7, Rotation: 5, ZIndex: 2}}},
	"duo-side-by-side":  {ID: "duo-side-by-side", Devices: []DeviceSlot{{X: 0.3, Y: 0.55, Scale: 0.55, ZIndex: 1}, {X: 0.7, Y: 0.55, Scale: 0.55, ZIndex: 1}}},
	"duo-stacked":       {ID: "duo-stacked", Devices: []DeviceSlot{{X: 0.45, Y: 0.6, Scale: 0.65, Rotation: -3, ZIndex: 1, Opacity: 0.7}, {X: 0.55, Y: 0.5, Scale: 0.7, Rotation: 3, ZIndex: 2}}},
	"trio-cascade":      {ID: "trio-cascade", Devices: []DeviceSlot{{X: 0.25, Y: 0.62, Scale: 0.5, Rotation: -8, ZIndex: 1}, {X: 0.5, Y: 0.5, Scale: 0.55, ZIndex: 2}, {X: 0.75, Y: 0.62, Scale: 0.5, Rotation: 8, ZIndex: 1}}},
	"trio-fan":          {ID: "trio-fan", Devices: []DeviceSlot{{X: 0.3, Y: 0.58, Scale: 0.45, Rotation: -15, ZIndex: 1}, {X: 0.5, Y: 0.52, Scale: 0.5, ZIndex: 2}, {X: 0.7, Y: 0.58, Scale: 0.45, Rotation: 15, ZIndex: 1}}},
	"bottom-peek":       {ID: "bottom-peek", Devices: []DeviceSlot{{X: 0.5, Y: 0.85, Scale: 0.9, ZIndex: 1}}},
	"top-peek":          {ID: "top-peek", Devices: []DeviceSlot{{X: 0.5, Y: 0.25, Scale: 0.9, ZIndex: 1}}},
	"left-edge":         {ID: "left-edge", Devices: []DeviceSlot{{X: 0.15, Y: 0.55, Scale: 0.75, ZIndex: 1}}},
	"right-edge":        {ID: "right-edge", Devices: []DeviceSlot{{X: 0.85, Y: 0.55, Scale: 0.75, ZIndex: 1}}},
	"left-edge-tilted":  {ID: "left-edge-tilted", Devices: []DeviceSlot{{X: 0.18, Y: 0.58, Scale: 0.72, Rotation: 8, ZIndex: 1}}},
	"right-edge-tilted": {ID: "right-edge-tilted", Devices: []DeviceSlot{{X: 0.82, Y: 0.58, Scale: 0.72, Rotation: -8, ZIndex: 1}}},
	"corner-left":       {ID: "corner-left", Devices: []DeviceSlot{{X: 0.22, Y: 0.72, Scale: 0.7, Rotation: 12, ZIndex: 1}}},
	"corner-right":      {ID: "corner-right", Devices: []DeviceSlot{{X: 0.78, Y: 0.72, Scale: 0.7, Rotation: -12, ZIndex: 1}}},
	"dual-edge":         {ID: "dual-edge", Devices: []DeviceSlot{{X: 0.12, Y: 0.6, Scale: 0.55, Rotation: 5, ZIndex: 1}, {X: 0.88, Y: 0.6, Scale: 0.55, Rotation: -5, ZIndex: 1}}},
	"artsy-scatter":     {ID: "artsy-scatter", Devices: []DeviceSlot{{X: 0.15, Y: 0.25, Scale: 0.32, Rotation: -15, ZIndex: 1}, {X: 0.75, Y: 0.18, Scale: 0.28, Rotation: 20, ZIndex: 2}, {X: 0.35, Y: 0.45, Scale: 0.38, Rotation: 5, ZIndex: 3}, {X: 0.82, Y: 0.55, Scale: 0.35, Rotation: -10, ZIndex: 2}, {X: 0.22, Y: 0.75, Scale: 0.33, Rotation: 12, ZIndex: 1}, {X: 0.65, Y: 0.78, Scale: 0.30, Rotation: -8, ZIndex: 2}}},
	"artsy-collage":     {ID: "artsy-collage", Devices: []DeviceSlot{{X: 0.25, Y: 0.3, Scale: 0.42, Rotation: -12, ZIndex: 2}, {X: 0.7, Y: 0.25, Scale: 0.38, Rotation: 15, ZIndex: 1}, {X: 0.45, Y: 0.65, Scale: 0.45, Rotation: 3, ZIndex: 3}, {X: 0.85, Y: 0.7, Scale: 0.35, Rotation: -18, ZIndex: 1}}},
	"dmv-hero":          {ID: "dmv-hero", Devices: []DeviceSlot{{X: 0.28, Y: 0.55, Scale: 0.65, ZIndex: 3}, {X: 0.72, Y: 0.35, Scale: 0.35, Rotation: 10, ZIndex: 1}, {X: 0.85, Y: 0.65, Scale: 0.32, Rotation: -5, ZIndex: 2}}},
	"crypto-trio":       {ID: "crypto-trio", Devices: []DeviceSlot{{X: 0.18, Y: 0.55, Scale: 0.5, Rotation: -5, ZIndex: 1}, {X: 0.5, Y: 0.5, Scale: 0.55, ZIndex: 2}, {X: 0.82, Y: 0.55, Scale: 0.5, Rotation: 5, ZIndex: 1}}},
	"calendar-quad":     {ID: "calendar-quad", Devices: []DeviceSlot{{X: 0.2, Y: 0.35, Scale: 0.4, Rotation: -8, ZIndex: 1}, {X: 0.55, Y: 0.3, Scale: 0.42, Rotation: 5, ZIndex: 2}, {X: 0.35, Y: 0.7, Scale: 0.38, Rotation: 3, ZIndex: 2}, {X: 0.75, Y: 0.65, Scale: 0.4, Rotation: -6, ZIndex: 1}}},
	"parenting-five":    {ID: "parenting-five", Devices: []DeviceSlot{{X: 0.15, Y: 0.3, Scale: 0.35, Rotation: -10, ZIndex: 1}, {X: 0.5, Y: 0.25, Scale: 0.4, Rotation: 5, ZIndex: 2}, {X: 0.85, Y: 0.35, Scale: 0.35, Rotation: 12, ZIndex: 1}, {X: 0.3, Y: 0.7, Scale: 0.38, Rotation: -5, ZIndex: 2}, {X: 0.7, Y: 0.72, Scale: 0.36, Rotation: 8, ZIndex: 1}}},
	"showcase-single":   {ID: "showcase-single", Devices: []DeviceSlot{{X: 0.5, Y: 0.58, Scale: 0.68, ZIndex: 1}}},
	"hero-right":        {ID: "hero-right", Devices: []DeviceSlot{{X: 0.72, Y: 0.55, Scale: 0.65, ZIndex: 3}, {X: 0.28, Y: 0.35, Scale: 0.35, Rotation: -10, ZIndex: 1}, {X: 0.15, Y: 0.65, Scale: 0.32, Rotation: 5, ZIndex: 2}}},
	"diagonal-stack":    {ID: "diagonal-stack", Devices: []DeviceSlot{{X: 0.25, Y: 0.7, Scale: 0.45, Rotation: -12, ZIndex: 1}, {X: 0.45, Y: 0.5, Scale: 0.5, Rotation: -5, ZIndex: 2}, {X: 0.7, Y: 0.35, Scale: 0.48, Rotation: 3, ZIndex: 3}}},
	"floating-duo":      {ID: "floating-duo", Devices: []DeviceSlot{{X: 0.35, Y: 0.45, Scale: 0.52, Rotation: -8, ZIndex: 1}, {X: 0.68, Y: 0.58, Scale: 0.55, Rotation: 6, ZIndex: 2}}},
	"edge-peek":         {ID: "edge-peek", Devices: []DeviceSlot{{X: 0.08, Y: 0.5, Scale: 0.55, Rotation: 8, ZIndex: 1}, {X: 0.55, Y: 0.55, Scale: 0.6, ZIndex: 2}}},
	"cross-panel":       {ID: "cross-panel", Devices: []DeviceSlot{{X: 0.92, Y: 0.55, Scale: 0.65, Rotation: -5, ZIndex: 2}}},
}

// LayoutByID resolves a layout preset. Unknown identifiers fall back to
// single-center rather than failing.
func LayoutByID(id string) Layout {
	if l, ok := layouts[id]; ok {
		return l
	}
	return layouts["single-center"]
}
