package render

import "image/color"

// Icon palette. The two gradient stops double as the event-dot colors.
var (
	GradientTop    = color.RGBA{R: 0x66, G: 0x6E, B: 0xEA, A: 0xFF} // #666eea
	GradientBottom = color.RGBA{R: 0x76, G: 0x4B, B: 0xA2, A: 0xFF} // #764ba2

	CornerFill     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #ffffff, behind the rounded background
	CalendarBody   = color.RGBA{R: 0xF2, G: 0xF2, B: 0xF2, A: 0xFF} // #f2f2f2
	CalendarHeader = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #ffffff
)

// IconSizes are the two edge lengths required by the web app manifest:
// a standard and a high-density maskable icon.
var IconSizes = []int{192, 512}
