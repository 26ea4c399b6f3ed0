package style

import "github.com/wcharczuk/go-chart/v2/drawing"

// Palette is the process-wide semantic color mapping shared by every chart
// constructor. It is never mutated after init.
var Palette = struct {
	Primary   drawing.Color
	Success   drawing.Color
	Danger    drawing.Color
	Warning   drawing.Color
	Info      drawing.Color
	Secondary drawing.Color

	PrimaryAlpha drawing.Color
	SuccessAlpha drawing.Color
	DangerAlpha  drawing.Color
	WarningAlpha drawing.Color
	InfoAlpha    drawing.Color

	Grid drawing.Color
	Text drawing.Color
}{
	Primary:   drawing.Color{R: 0x0d, G: 0x6e, B: 0xfd, A: 0xff},
	Success:   drawing.Color{R: 0x19, G: 0x87, B: 0x54, A: 0xff},
	Danger:    drawing.Color{R: 0xdc, G: 0x35, B: 0x45, A: 0xff},
	Warning:   drawing.Color{R: 0xff, G: 0xc1, B: 0x07, A: 0xff},
	Info:      drawing.Color{R: 0x0d, G: 0xca, B: 0xf0, A: 0xff},
	Secondary: drawing.Color{R: 0x6c, G: 0x75, B: 0x7d, A: 0xff},

	PrimaryAlpha: drawing.Color{R: 0x0d, G: 0x6e, B: 0xfd, A: 0x33},
	SuccessAlpha: drawing.Color{R: 0x19, G: 0x87, B: 0x54, A: 0x33},
	DangerAlpha:  drawing.Color{R: 0xdc, G: 0x35, B: 0x45, A: 0x33},
	WarningAlpha: drawing.Color{R: 0xff, G: 0xc1, B: 0x07, A: 0x33},
	InfoAlpha:    drawing.Color{R: 0x0d, G: 0xca, B: 0xf0, A: 0x33},

	Grid: drawing.Color{R: 0xde, G: 0xde, B: 0xde, A: 0xff},
	Text: drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
}
