package render

import (
	"image/color"
	"testing"
)

// The palette is pinned to the web app's manifest colors; a wrong channel
// literal here changes every generated icon.
func TestPaletteValues(t *testing.T) {
	tests := []struct {
		name string
		got  color.RGBA
		want color.RGBA
	}{
		{"GradientTop", GradientTop, color.RGBA{R: 102, G: 110, B: 234, A: 255}},
		{"GradientBottom", GradientBottom, color.RGBA{R: 118, G: 75, B: 162, A: 255}},
		{"CornerFill", CornerFill, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"CalendarBody", CalendarBody, color.RGBA{R: 242, G: 242, B: 242, A: 255}},
		{"CalendarHeader", CalendarHeader, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestManifestSizes(t *testing.T) {
	if len(IconSizes) != 2 || IconSizes[0] != 192 || IconSizes[1] != 512 {
		t.Errorf("IconSizes = %v, want [192 512]", IconSizes)
	}
}
