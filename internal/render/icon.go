package render

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/auraflow/icongen/internal/render/layout"
)

// ComposeIcon renders the calendar glyph at the given edge length and
// returns the finished square canvas. The result is a pure function of
// size: no randomness, no time, no anti-aliasing.
func ComposeIcon(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}
	metrics := layout.ComputeIcon(size)
	bounds := image.Rect(0, 0, size, size)

	// Vertical gradient across the full canvas.
	gradient := image.NewRGBA(bounds)
	fillVerticalGradient(gradient, GradientTop, GradientBottom)

	// Round the background corners by compositing the gradient over a
	// solid base through a rounded-rectangle alpha mask. The corners keep
	// the base color and read as transparent once the platform masks the
	// icon.
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, &image.Uniform{C: CornerFill}, image.Point{}, draw.Src)
	mask := roundedRectMask(bounds, metrics.CornerRadius)
	xdraw.DrawMask(canvas, bounds, gradient, image.Point{}, mask, image.Point{}, xdraw.Over)

	// Calendar card with a lighter header band, both inside the maskable
	// safe zone.
	fillRoundedRect(canvas, metrics.Body, metrics.BodyRadius, CalendarBody)
	fillRoundedRect(canvas, metrics.Header, metrics.BodyRadius, CalendarHeader)

	// Event dots: the taper on the last row mimics a partially filled
	// month grid.
	for rowIndex, row := range metrics.DotRows() {
		fill := GradientTop
		if rowIndex == 1 {
			fill = GradientBottom
		}
		for _, center := range row {
			fillCircle(canvas, center, metrics.DotRadius, fill)
		}
	}

	return canvas, nil
}
