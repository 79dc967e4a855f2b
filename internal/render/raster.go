package render

import (
	"image"
	"image/color"
)

// Pixel-exact raster primitives. These deliberately avoid anti-aliasing:
// every pixel is either fully inside a shape or fully outside it, so two
// runs over the same geometry produce byte-identical images.

// blend returns the channel-wise linear interpolation of from and to at
// ratio, each channel truncated toward zero.
func blend(from, to color.RGBA, ratio float64) color.RGBA {
	return color.RGBA{
		R: uint8(int(float64(from.R) + (float64(to.R)-float64(from.R))*ratio)),
		G: uint8(int(float64(from.G) + (float64(to.G)-float64(from.G))*ratio)),
		B: uint8(int(float64(from.B) + (float64(to.B)-float64(from.B))*ratio)),
		A: 0xFF,
	}
}

// gradientRowColor returns the fill color of scanline y in a vertical
// gradient of the given height.
func gradientRowColor(top, bottom color.RGBA, y, height int) color.RGBA {
	return blend(top, bottom, float64(y)/float64(height))
}

// fillVerticalGradient paints every row of dst with the gradient color for
// that scanline, top color at y=0 shading toward bottom.
func fillVerticalGradient(dst *image.RGBA, top, bottom color.RGBA) {
	bounds := dst.Bounds()
	height := bounds.Dy()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		rowColor := gradientRowColor(top, bottom, y-bounds.Min.Y, height)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetRGBA(x, y, rowColor)
		}
	}
}

// insideRoundedRect reports whether pixel (x,y) lies inside rect once its
// corners are rounded with the given radius. The rounding is a hard
// quarter-circle test: within a corner square, the pixel must be at most
// radius away from the corner circle's center.
func insideRoundedRect(rect image.Rectangle, radius int, x, y int) bool {
	if !image.Pt(x, y).In(rect) {
		return false
	}
	if radius <= 0 {
		return true
	}
	// Corner circle centers; Max is exclusive, so the far centers sit at Max-1-radius.
	left := rect.Min.X + radius
	top := rect.Min.Y + radius
	right := rect.Max.X - 1 - radius
	bottom := rect.Max.Y - 1 - radius

	cx, cy := x, y
	if x < left {
		cx = left
	} else if x > right {
		cx = right
	}
	if y < top {
		cy = top
	} else if y > bottom {
		cy = bottom
	}
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= radius*radius
}

// clampRadius limits a corner radius so opposite corners cannot overlap.
func clampRadius(rect image.Rectangle, radius int) int {
	limit := rect.Dx()
	if rect.Dy() < limit {
		limit = rect.Dy()
	}
	limit /= 2
	if radius > limit {
		radius = limit
	}
	return radius
}

// roundedRectMask returns a single-channel mask over maskRect that is fully
// opaque inside the rounded rectangle and fully transparent outside it.
func roundedRectMask(maskRect image.Rectangle, radius int) *image.Alpha {
	radius = clampRadius(maskRect, radius)
	mask := image.NewAlpha(maskRect)
	for y := maskRect.Min.Y; y < maskRect.Max.Y; y++ {
		for x := maskRect.Min.X; x < maskRect.Max.X; x++ {
			if insideRoundedRect(maskRect, radius, x, y) {
				mask.SetAlpha(x, y, color.Alpha{A: 0xFF})
			}
		}
	}
	return mask
}

// fillRoundedRect paints the rounded rectangle onto dst.
func fillRoundedRect(dst *image.RGBA, rect image.Rectangle, radius int, fill color.RGBA) {
	radius = clampRadius(rect, radius)
	clipped := rect.Intersect(dst.Bounds())
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			if insideRoundedRect(rect, radius, x, y) {
				dst.SetRGBA(x, y, fill)
			}
		}
	}
}

// fillCircle paints a filled circle of the given radius centered at center.
// Containment is inclusive of the boundary, so the drawn diameter is
// 2*radius+1 pixels.
func fillCircle(dst *image.RGBA, center image.Point, radius int, fill color.RGBA) {
	box := image.Rect(center.X-radius, center.Y-radius, center.X+radius+1, center.Y+radius+1)
	box = box.Intersect(dst.Bounds())
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			dx := x - center.X
			dy := y - center.Y
			if dx*dx+dy*dy <= radius*radius {
				dst.SetRGBA(x, y, fill)
			}
		}
	}
}
