package layout

import (
	"image"
	"testing"
)

func TestFracTruncates(t *testing.T) {
	tests := []struct {
		length int
		ratio  float64
		want   int
	}{
		{192, 0.15, 28}, // 28.8 truncates down, never rounds up
		{512, 0.15, 76},
		{192, 0.2, 38},
		{512, 0.2, 102},
		{70, 0.9, 63},
		{17, 0.7, 11},
		{0, 0.5, 0},
	}
	for _, tt := range tests {
		if got := Frac(tt.length, tt.ratio); got != tt.want {
			t.Errorf("Frac(%d, %v) = %d, want %d", tt.length, tt.ratio, got, tt.want)
		}
	}
}

func TestInset(t *testing.T) {
	rect := image.Rect(0, 0, 100, 100)
	if got, want := Inset(rect, 10), image.Rect(10, 10, 90, 90); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
	if got := Inset(rect, 0); got != rect {
		t.Errorf("Inset with zero padding = %v, want %v", got, rect)
	}
	// Over-insetting must still yield a normalized rectangle.
	got := Inset(rect, 60)
	if got.Min.X > got.Max.X || got.Min.Y > got.Max.Y {
		t.Errorf("Inset over-shrink not normalized: %v", got)
	}
}

func TestSplitHorizontal(t *testing.T) {
	rect := image.Rect(10, 20, 110, 120)
	top, bottom := SplitHorizontal(rect, 30)
	if want := image.Rect(10, 20, 110, 50); top != want {
		t.Errorf("top = %v, want %v", top, want)
	}
	if want := image.Rect(10, 50, 110, 120); bottom != want {
		t.Errorf("bottom = %v, want %v", bottom, want)
	}
	top, bottom = SplitHorizontal(rect, 1000)
	if top != rect || bottom.Dy() != 0 {
		t.Errorf("clamped split = %v / %v", top, bottom)
	}
}

func TestComputeIcon192(t *testing.T) {
	m := ComputeIcon(192)

	if want := image.Rect(38, 38, 154, 154); m.SafeZone != want {
		t.Errorf("SafeZone = %v, want %v", m.SafeZone, want)
	}
	if want := image.Rect(61, 55, 131, 118); m.Body != want {
		t.Errorf("Body = %v, want %v", m.Body, want)
	}
	if want := image.Rect(61, 55, 131, 67); m.Header != want {
		t.Errorf("Header = %v, want %v", m.Header, want)
	}
	if m.CornerRadius != 28 {
		t.Errorf("CornerRadius = %d, want 28", m.CornerRadius)
	}
	if m.BodyRadius != 7 {
		t.Errorf("BodyRadius = %d, want 7", m.BodyRadius)
	}
	if m.DotRadius != 5 {
		t.Errorf("DotRadius = %d, want 5", m.DotRadius)
	}
	if m.DotSpacing != 17 {
		t.Errorf("DotSpacing = %d, want 17", m.DotSpacing)
	}

	rows := m.DotRows()
	if len(rows) != 3 {
		t.Fatalf("DotRows returned %d rows, want 3", len(rows))
	}
	if len(rows[0]) != 3 || len(rows[1]) != 3 || len(rows[2]) != 2 {
		t.Fatalf("DotRows lengths = %d/%d/%d, want 3/3/2", len(rows[0]), len(rows[1]), len(rows[2]))
	}
	if want := image.Pt(72, 80); rows[0][0] != want {
		t.Errorf("first dot = %v, want %v", rows[0][0], want)
	}
	if want := image.Pt(106, 80); rows[0][2] != want {
		t.Errorf("last dot of first row = %v, want %v", rows[0][2], want)
	}
	if want := image.Pt(89, 114); rows[2][1] != want {
		t.Errorf("last dot = %v, want %v", rows[2][1], want)
	}
}

func TestComputeIcon512(t *testing.T) {
	m := ComputeIcon(512)

	if want := image.Rect(102, 102, 410, 410); m.SafeZone != want {
		t.Errorf("SafeZone = %v, want %v", m.SafeZone, want)
	}
	if want := image.Rect(163, 148, 349, 315); m.Body != want {
		t.Errorf("Body = %v, want %v", m.Body, want)
	}
	if m.CornerRadius != 76 {
		t.Errorf("CornerRadius = %d, want 76", m.CornerRadius)
	}
	if m.DotRadius != 14 {
		t.Errorf("DotRadius = %d, want 14", m.DotRadius)
	}
	if m.DotSpacing != 46 {
		t.Errorf("DotSpacing = %d, want 46", m.DotSpacing)
	}
	if got, want := m.DotRows()[0][0], image.Pt(195, 214); got != want {
		t.Errorf("first dot = %v, want %v", got, want)
	}
}

// The maskable-icon contract: every drawn glyph, including the outermost
// extent of each dot, stays inside the central 60% of the canvas.
func TestGlyphStaysInSafeZone(t *testing.T) {
	for _, size := range []int{192, 512, 96, 1024} {
		m := ComputeIcon(size)
		if !m.Body.In(m.SafeZone) {
			t.Errorf("size %d: body %v outside safe zone %v", size, m.Body, m.SafeZone)
		}
		if !m.Header.In(m.SafeZone) {
			t.Errorf("size %d: header %v outside safe zone %v", size, m.Header, m.SafeZone)
		}
		for _, row := range m.DotRows() {
			for _, center := range row {
				extent := image.Rect(
					center.X-m.DotRadius, center.Y-m.DotRadius,
					center.X+m.DotRadius+1, center.Y+m.DotRadius+1,
				)
				if !extent.In(m.SafeZone) {
					t.Errorf("size %d: dot at %v extends to %v outside safe zone %v",
						size, center, extent, m.SafeZone)
				}
			}
		}
	}
}
