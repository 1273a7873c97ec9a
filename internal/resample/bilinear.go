package resample

import (
	"math"

	"github.com/ironsheep/image-resample/internal/raster"
)

// bilinearAt interpolates the pixel at real coordinate (x, y) from its 4
// surrounding corners.
//
// Corner layout:
//
//	      x0   x1
//	    ┼────┼────┤
//	 y0 │ 00 │ 10 │
//	    ┼────┼────┤
//	 y1 │ 01 │ 11 │
//	    └────┴────┘
//
// Each corner's weight is the area of the opposite sub-rectangle in the unit
// square, so the weights sum to 1. Corner coordinates come from flooring, not
// truncation, so negative fractional coordinates land in the correct lower
// cell. Channel sums are truncated to integers.
func bilinearAt(fetch fetchFunc, channels int, x, y float64) raster.Pixel {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	// Direct hit needs no interpolation.
	if x == float64(x0) && y == float64(y0) {
		return fetch(x0, y0)
	}
	x1 := x0 + 1
	y1 := y0 + 1

	w00 := (float64(x1) - x) * (float64(y1) - y)
	w01 := (float64(x1) - x) * (y - float64(y0))
	w10 := (x - float64(x0)) * (float64(y1) - y)
	w11 := (x - float64(x0)) * (y - float64(y0))

	p00 := fetch(x0, y0)
	p01 := fetch(x0, y1)
	p10 := fetch(x1, y0)
	p11 := fetch(x1, y1)

	out := make(raster.Pixel, channels)
	for z := range out {
		out[z] = int(w00*float64(p00[z]) + w01*float64(p01[z]) + w10*float64(p10[z]) + w11*float64(p11[z]))
	}
	return out
}
