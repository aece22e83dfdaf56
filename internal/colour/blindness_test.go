package colour

import "testing"

func TestParseColorBlindnessType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ColorBlindnessType
		wantErr bool
	}{
		{name: "protanopia", input: "protanopia", want: Protanopia},
		{name: "deuteranopia", input: "deuteranopia", want: Deuteranopia},
		{name: "tritanopia", input: "tritanopia", want: Tritanopia},
		{name: "achromatopsia", input: "achromatopsia", want: Achromatopsia},
		{name: "unknown", input: "monochromacy", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColorBlindnessType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorBlindnessType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColorBlindnessType(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestSimulateAchromatopsiaIsGrey(t *testing.T) {
	colors := []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#123456", "#808080", "#ffffff", "#000000"}

	for _, hex := range colors {
		t.Run(hex, func(t *testing.T) {
			c, err := NewColorFromHex(hex)
			if err != nil {
				t.Fatalf("NewColorFromHex(%q) error: %v", hex, err)
			}
			got := Simulate(c, Achromatopsia)
			if got.RGB.R != got.RGB.G || got.RGB.G != got.RGB.B {
				t.Errorf("Simulate(%s, achromatopsia) = %+v, want equal channels", hex, got.RGB)
			}
		})
	}
}

func TestSimulateAchromatopsiaPreservesBrightness(t *testing.T) {
	// Luminance weighting, not simple averaging: green must come out
	// brighter than blue even though both average to 85.
	green := NewColorFromRGB(RGB{G: 255})
	blue := NewColorFromRGB(RGB{B: 255})

	greyGreen := Simulate(green, Achromatopsia)
	greyBlue := Simulate(blue, Achromatopsia)

	if greyGreen.RGB.R <= greyBlue.RGB.R {
		t.Errorf("achromatopsia grey of green (%d) should be brighter than blue (%d)",
			greyGreen.RGB.R, greyBlue.RGB.R)
	}
}

func TestSimulateProducesValidColors(t *testing.T) {
	// Every deficiency over a spread of inputs must yield a consistent
	// Color: hex, RGB and HSL mutually derived, no panics, no junk.
	inputs := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 255, G: 255, B: 0},
		{R: 37, G: 99, B: 235},
		{R: 190, G: 24, B: 93},
	}

	for _, deficiency := range ColorBlindnessTypes() {
		for _, rgb := range inputs {
			got := Simulate(NewColorFromRGB(rgb), deficiency)
			if got.Hex != got.RGB.Hex() {
				t.Errorf("Simulate(%s, %s): hex %s does not match RGB %+v", rgb.Hex(), deficiency, got.Hex, got.RGB)
			}
			if got.HSL != RGBToHSL(got.RGB) {
				t.Errorf("Simulate(%s, %s): HSL %+v does not match RGB %+v", rgb.Hex(), deficiency, got.HSL, got.RGB)
			}
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	c, err := NewColorFromHex("#2563eb")
	if err != nil {
		t.Fatalf("NewColorFromHex error: %v", err)
	}

	for _, deficiency := range ColorBlindnessTypes() {
		first := Simulate(c, deficiency)
		second := Simulate(c, deficiency)
		if first != second {
			t.Errorf("Simulate(%s) not deterministic: %+v != %+v", deficiency, first, second)
		}
	}
}

func TestSimulateProtanopiaCollapsesRedGreen(t *testing.T) {
	red := NewColorFromRGB(RGB{R: 255})
	green := NewColorFromRGB(RGB{G: 255})

	simRed := Simulate(red, Protanopia)
	simGreen := Simulate(green, Protanopia)

	before := rgbDistance(red.RGB, green.RGB)
	after := rgbDistance(simRed.RGB, simGreen.RGB)

	if after >= before {
		t.Errorf("protanopia should reduce red/green separation: before %.1f, after %.1f", before, after)
	}
}
