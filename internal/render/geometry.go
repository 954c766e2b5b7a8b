package render

import (
	"sort"

	"appshot/internal/catalog"
	"appshot/internal/project"
)

// deviceAspect is the fixed App Store screenshot ratio (1242:2688) applied
// to every slot regardless of device model.
const deviceAspect = 2688.0 / 1242.0

// Slot is the resolved placement of one device frame in frame pixel space.
type Slot struct {
	CenterX  float64
	CenterY  float64
	Width    int
	Height   int
	Rotation float64
	ZIndex   int
	Opacity  float64
}

// ResolveSlots maps a screenshot's layout preset (or its free-form device
// position for the custom layout) to absolute slots, sorted back to front.
func ResolveSlots(shot project.ScreenshotConfig, frameW, frameH int) []Slot {
	layoutID := shot.Layout
	if layoutID == "" {
		layoutID = catalog.LayoutCustom
	}
	layout := catalog.LayoutByID(layoutID)

	w := float64(frameW)
	h := float64(frameH)

	slots := make([]Slot, 0, len(layout.Devices))
	for _, d := range layout.Devices {
		x, y, scale, rotation := d.X, d.Y, d.Scale, d.Rotation
		opacity := d.Opacity
		if layoutID == catalog.LayoutCustom {
			x = shot.Device.PositionX
			y = shot.Device.PositionY
			scale = shot.Device.Scale
			rotation = shot.Device.Rotation
			opacity = 1
		}
		if scale <= 0 {
			scale = 0.75
		}
		if opacity <= 0 || opacity > 1 {
			opacity = 1
		}
		slotW := w * scale
		slots = append(slots, Slot{
			CenterX:  x * w,
			CenterY:  y * h,
			Width:    atLeast(int(slotW+0.5), 1),
			Height:   atLeast(int(slotW*deviceAspect+0.5), 1),
			Rotation: rotation,
			ZIndex:   d.ZIndex,
			Opacity:  opacity,
		})
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].ZIndex < slots[j].ZIndex })
	return slots
}

func atLeast(v, min int) int {
	if v < min {
		return min
	}
	return v
}
