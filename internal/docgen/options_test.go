package docgen

import (
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
	if opts.Watermark != WatermarkNone || opts.PageFormat != PageFormatA4 || opts.Orientation != OrientationPortrait {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	opts := GenerationOptions{}
	opts.Normalize()
	if err := opts.Validate(); err != nil {
		t.Fatalf("normalized options invalid: %v", err)
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	cases := []struct {
		name string
		opts GenerationOptions
	}{
		{"watermark", GenerationOptions{Watermark: "stamped", PageFormat: PageFormatA4, Orientation: OrientationPortrait}},
		{"page format", GenerationOptions{Watermark: WatermarkNone, PageFormat: "A5", Orientation: OrientationPortrait}},
		{"orientation", GenerationOptions{Watermark: WatermarkNone, PageFormat: PageFormatA4, Orientation: "sideways"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestGeometryOrientationSwap(t *testing.T) {
	portrait := GenerationOptions{PageFormat: PageFormatA4, Orientation: OrientationPortrait}.Geometry()
	landscape := GenerationOptions{PageFormat: PageFormatA4, Orientation: OrientationLandscape}.Geometry()

	if portrait.WidthMM != 210 || portrait.HeightMM != 297 {
		t.Errorf("A4 portrait = %vx%v", portrait.WidthMM, portrait.HeightMM)
	}
	if landscape.WidthMM != portrait.HeightMM || landscape.HeightMM != portrait.WidthMM {
		t.Errorf("landscape should swap portrait dimensions, got %vx%v", landscape.WidthMM, landscape.HeightMM)
	}

	letter := GenerationOptions{PageFormat: PageFormatLetter, Orientation: OrientationPortrait}.Geometry()
	if letter.WidthMM != 215.9 || letter.HeightMM != 279.4 {
		t.Errorf("Letter portrait = %vx%v", letter.WidthMM, letter.HeightMM)
	}
}
