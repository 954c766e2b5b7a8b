package render

import (
	"image/color"
	"math"
	"testing"

	"appshot/internal/project"
)

func deg(v float64) *float64 {
	return &v
}

func TestResolvePaintSolid(t *testing.T) {
	layers := ResolvePaint(project.BackgroundConfig{Type: project.BackgroundSolid, Color: "#ff0000"}, 100, 200)
	if len(layers) != 1 || layers[0].Kind != PaintFill {
		t.Fatalf("layers = %+v, want one fill", layers)
	}
	want := color.NRGBA{R: 0xff, A: 0xff}
	if layers[0].Color != want {
		t.Fatalf("fill color = %+v, want %+v", layers[0].Color, want)
	}
}

func TestResolvePaintMalformedColorDegrades(t *testing.T) {
	layers := ResolvePaint(project.BackgroundConfig{Type: project.BackgroundSolid, Color: "not-a-color"}, 100, 200)
	if len(layers) != 1 || layers[0].Color != defaultFill {
		t.Fatalf("layers = %+v, want default fill", layers)
	}
}

func TestResolvePaintUnknownTypeDegrades(t *testing.T) {
	layers := ResolvePaint(project.BackgroundConfig{Type: "plasma"}, 100, 200)
	if len(layers) != 1 || layers[0].Kind != PaintFill || layers[0].Color != defaultFill {
		t.Fatalf("layers = %+v, want default fill", layers)
	}
}

func TestResolvePaintGradientStopDegradation(t *testing.T) {
	cases := []struct {
		name  string
		stops []project.GradientStop
		want  color.NRGBA
	}{
		{
			name: "no stops",
			want: defaultFill,
		},
		{
			name:  "single stop",
			stops: []project.GradientStop{{Color: "#00ff00", Position: 0.5}},
			want:  color.NRGBA{G: 0xff, A: 0xff},
		},
		{
			name: "all stops NaN",
			stops: []project.GradientStop{
				{Color: "#00ff00", Position: math.NaN()},
				{Color: "#0000ff", Position: math.NaN()},
			},
			want: defaultFill,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bg := project.BackgroundConfig{
				Type:     project.BackgroundGradient,
				Gradient: &project.GradientConfig{Type: project.GradientLinear, Stops: tc.stops},
			}
			layers := ResolvePaint(bg, 100, 100)
			if len(layers) != 1 || layers[0].Kind != PaintFill {
				t.Fatalf("layers = %+v, want one fill", layers)
			}
			if layers[0].Color != tc.want {
				t.Fatalf("fill color = %+v, want %+v", layers[0].Color, tc.want)
			}
		})
	}
}

func TestResolvePaintLinearAxis(t *testing.T) {
	linear := func(angle *float64) project.BackgroundConfig {
		return project.BackgroundConfig{
			Type: project.BackgroundGradient,
			Gradient: &project.GradientConfig{
				Type:  project.GradientLinear,
				Angle: angle,
				Stops: []project.GradientStop{
					{Color: "#000000", Position: 0},
					{Color: "#ffffff", Position: 1},
				},
			},
		}
	}

	// 180 degrees flows top to bottom: the axis is vertical and Y1 < Y2.
	// An absent angle must behave exactly like 180.
	for name, bg := range map[string]project.BackgroundConfig{
		"explicit 180": linear(deg(180)),
		"absent angle": linear(nil),
	} {
		layers := ResolvePaint(bg, 100, 100)
		if len(layers) != 1 || layers[0].Kind != PaintLinear {
			t.Fatalf("%s: layers = %+v, want one linear layer", name, layers)
		}
		l := layers[0]
		if math.Abs(l.X1-l.X2) > 1e-9 {
			t.Fatalf("%s: axis not vertical: X1=%v X2=%v", name, l.X1, l.X2)
		}
		if l.Y1 >= l.Y2 {
			t.Fatalf("%s: axis not top to bottom: Y1=%v Y2=%v", name, l.Y1, l.Y2)
		}
	}

	// An explicit 0 is bottom to top, not the 180 default.
	layers := ResolvePaint(linear(deg(0)), 100, 100)
	if l := layers[0]; l.Y1 <= l.Y2 {
		t.Fatalf("explicit 0: axis not bottom to top: Y1=%v Y2=%v", l.Y1, l.Y2)
	}
}

func TestResolvePaintMesh(t *testing.T) {
	bg := project.BackgroundConfig{
		Type: project.BackgroundMesh,
		ColorPoints: []project.MeshColorPoint{
			{X: 0.2, Y: 0.3, Color: "#112233", Radius: 0.5},
			{X: 0.8, Y: 0.7, Color: "#445566", Radius: 0.4},
		},
	}
	layers := ResolvePaint(bg, 1000, 2000)
	if len(layers) != 3 {
		t.Fatalf("got %d layers, want base fill plus two blobs", len(layers))
	}
	if layers[0].Kind != PaintFill || layers[0].Color != parseHex("#112233") {
		t.Fatalf("base layer = %+v, want fill of first point color", layers[0])
	}
	blob := layers[1]
	if blob.Kind != PaintBlob || blob.CX != 200 || blob.CY != 600 || blob.Radius != 500 {
		t.Fatalf("blob layer = %+v, want 200,600 radius 500", blob)
	}
}

func TestResolvePaintBlobsBase(t *testing.T) {
	t.Run("default base color", func(t *testing.T) {
		bg := project.BackgroundConfig{Type: project.BackgroundBlobs}
		layers := ResolvePaint(bg, 100, 100)
		if len(layers) != 1 || layers[0].Color != blobsBaseFill {
			t.Fatalf("layers = %+v, want dark base fill", layers)
		}
	})

	t.Run("base gradient default angle", func(t *testing.T) {
		bg := project.BackgroundConfig{
			Type: project.BackgroundGlassmorphism,
			BaseGradient: &project.GradientConfig{
				Type: project.GradientLinear,
				Stops: []project.GradientStop{
					{Color: "#000000", Position: 0},
					{Color: "#ffffff", Position: 1},
				},
			},
		}
		layers := ResolvePaint(bg, 100, 100)
		if len(layers) != 1 || layers[0].Kind != PaintLinear {
			t.Fatalf("layers = %+v, want one linear layer", layers)
		}
		// The base gradient treats an absent or zero angle as unset and
		// falls back to 135; a 135 degree axis runs down-left to
		// up-right, so both deltas are nonzero.
		l := layers[0]
		if math.Abs(l.X1-l.X2) < 1e-9 || math.Abs(l.Y1-l.Y2) < 1e-9 {
			t.Fatalf("axis not diagonal: %+v", l)
		}
	})
}

func TestResolveStopsClampAndOrder(t *testing.T) {
	stops := resolveStops([]project.GradientStop{
		{Color: "#ffffff", Position: 1.7},
		{Color: "#000000", Position: -0.2},
		{Color: "#808080", Position: math.NaN()},
		{Color: "#ff0000", Position: 0.5},
	})
	if len(stops) != 3 {
		t.Fatalf("got %d stops, want 3 (NaN dropped)", len(stops))
	}
	if stops[0].Position != 0 || stops[1].Position != 0.5 || stops[2].Position != 1 {
		t.Fatalf("positions = %v,%v,%v, want 0,0.5,1", stops[0].Position, stops[1].Position, stops[2].Position)
	}
}

func TestColorAt(t *testing.T) {
	stops := []Stop{
		{Position: 0, Color: color.NRGBA{A: 0xff}},
		{Position: 1, Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
	mid := colorAt(stops, 0.5)
	if mid.R < 0x7e || mid.R > 0x81 {
		t.Fatalf("midpoint R = %#x, want about 0x80", mid.R)
	}
	if got := colorAt(stops, -1); got != stops[0].Color {
		t.Fatalf("below range = %+v, want first stop", got)
	}
	if got := colorAt(stops, 2); got != stops[1].Color {
		t.Fatalf("above range = %+v, want last stop", got)
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#1c1c1e", color.NRGBA{R: 0x1c, G: 0x1c, B: 0x1e, A: 0xff}},
		{"#ff000080", color.NRGBA{R: 0xff, A: 0x80}},
		{"garbage", defaultFill},
		{"", defaultFill},
		{"#12345", defaultFill},
	}
	for _, tc := range cases {
		if got := parseHex(tc.in); got != tc.want {
			t.Errorf("parseHex(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
