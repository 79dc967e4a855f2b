package layout

import "image"

// Every length in the icon is derived as a fraction of the canvas edge (or
// of a box derived from it), truncated to an integer, so the rendered shape
// is scale-invariant across output sizes.
const (
	cornerRadiusRatio = 0.15 // background corner rounding
	safeZoneRatio     = 0.2  // border reserved around the maskable safe zone
	bodyPaddingRatio  = 0.2  // left/right inset of the calendar inside the safe zone
	bodyHeightRatio   = 0.9  // calendar height relative to its width
	bodyOffsetRatio   = 0.15 // calendar drop from the top of the safe zone
	bodyRadiusRatio   = 0.04 // calendar corner rounding
	headerRatio       = 0.2  // header band height relative to calendar height
	dotRadiusRatio    = 0.08 // event dot radius relative to calendar width
	dotStartXRatio    = 0.7  // first dot column, in units of dot spacing
	dotStartYRatio    = 0.4  // first dot row drop, relative to calendar height
)

// Frac returns lengthPx scaled by ratio, truncated toward zero.
// Truncation (not rounding) keeps reruns byte-identical and matches the
// published icon output.
func Frac(lengthPx int, ratio float64) int {
	return int(float64(lengthPx) * ratio)
}

// Inset returns rect shrunk by paddingPx on every side.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize swaps Min and Max on any axis where they are inverted.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal cuts rect into a top band of topHeightPx (clamped to the
// rect's height) and the remainder below it.
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// IconMetrics holds every rectangle, radius and spacing needed to draw the
// calendar glyph at a given canvas size. All values are absolute pixels.
type IconMetrics struct {
	Size         int
	CornerRadius int             // rounding of the gradient background
	SafeZone     image.Rectangle // central 60% guaranteed visible after platform masking
	Body         image.Rectangle // calendar card
	Header       image.Rectangle // top band of the calendar card
	BodyRadius   int             // rounding of body and header corners
	DotRadius    int
	DotSpacing   int
	dotStart     image.Point
}

// ComputeIcon derives the icon geometry for a square canvas of the given
// edge length. size must be positive.
func ComputeIcon(size int) IconMetrics {
	canvas := image.Rect(0, 0, size, size)
	safeZone := Inset(canvas, Frac(size, safeZoneRatio))
	contentSize := safeZone.Dx()

	padding := Frac(contentSize, bodyPaddingRatio)
	bodyWidth := contentSize - 2*padding
	bodyHeight := Frac(bodyWidth, bodyHeightRatio)
	bodyLeft := safeZone.Min.X + padding
	bodyTop := safeZone.Min.Y + Frac(contentSize, bodyOffsetRatio)
	body := image.Rect(bodyLeft, bodyTop, bodyLeft+bodyWidth, bodyTop+bodyHeight)

	header, _ := SplitHorizontal(body, Frac(bodyHeight, headerRatio))

	dotSpacing := bodyWidth / 4
	dotStart := image.Pt(
		bodyLeft+Frac(dotSpacing, dotStartXRatio),
		bodyTop+Frac(bodyHeight, dotStartYRatio),
	)

	return IconMetrics{
		Size:         size,
		CornerRadius: Frac(size, cornerRadiusRatio),
		SafeZone:     safeZone,
		Body:         body,
		Header:       header,
		BodyRadius:   Frac(size, bodyRadiusRatio),
		DotRadius:    Frac(bodyWidth, dotRadiusRatio),
		DotSpacing:   dotSpacing,
		dotStart:     dotStart,
	}
}

// DotRows returns the dot centers row by row: two full rows of three and a
// trailing row of two, so the grid reads as a partially filled month.
func (m IconMetrics) DotRows() [][]image.Point {
	rowLengths := []int{3, 3, 2}
	rows := make([][]image.Point, len(rowLengths))
	for rowIndex, count := range rowLengths {
		row := make([]image.Point, count)
		for i := range row {
			row[i] = image.Pt(
				m.dotStart.X+i*m.DotSpacing,
				m.dotStart.Y+rowIndex*m.DotSpacing,
			)
		}
		rows[rowIndex] = row
	}
	return rows
}
