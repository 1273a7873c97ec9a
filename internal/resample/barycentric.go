package resample

import (
	"math"

	"github.com/ironsheep/image-resample/internal/raster"
)

// barycentricAt interpolates the pixel at real coordinate (x, y) from 3 of
// its 4 surrounding corners.
//
// Corners are enumerated clockwise from top-left:
//
//	┌───┬───┐
//	│ 1 │ 2 │
//	├───┼───┤
//	│ 4 │ 3 │
//	└───┴───┘
//
// The unit square is folded into two triangles along either the 1-3 [╲] or
// the 2-4 [╱] diagonal, whichever connects the pair of corners with the
// closer color-channel sums. That keeps the interpolation inside the flatter
// half of the 2x2 neighborhood. When both differences are equal the 1-3
// diagonal wins. A trailing alpha-like channel is excluded from the diagonal
// comparison only; all channels are blended.
//
// Each triangle is right-angled with area 1/2 of the unit square, so the
// barycentric weights reduce to plain coordinate offsets. Channel sums are
// truncated to integers.
func barycentricAt(fetch fetchFunc, channels int, x, y float64) raster.Pixel {
	// Channel count for the diagonal heuristic, alpha excluded.
	zColor := channels
	if channels != 1 && channels != 3 {
		zColor = channels - 1
		if zColor > 3 {
			zColor = 3
		}
	}

	x1 := int(math.Floor(x))
	y1 := int(math.Floor(y))
	x2, y2 := x1+1, y1
	x3, y3 := x1+1, y1+1
	x4, y4 := x1, y1+1

	p1 := fetch(x1, y1)
	// Direct hit needs no interpolation.
	if x == float64(x1) && y == float64(y1) {
		return p1
	}
	p2 := fetch(x2, y2)
	p3 := fetch(x3, y3)
	p4 := fetch(x4, y4)

	d13 := absInt(channelSum(p1, zColor) - channelSum(p3, zColor))
	d24 := absInt(channelSum(p2, zColor) - channelSum(p4, zColor))

	if d24 < d13 {
		// ╱ diagonal
		if x-float64(x1) < float64(y3)-y {
			// ◤ 1-2-4 triangle
			a := x - float64(x1)
			b := y - float64(y1)
			c := 1 - (a + b)
			return weighted3(channels, p1, c, p2, a, p4, b)
		}
		// ◢ 2-3-4 triangle
		a := float64(x3) - x
		b := float64(y4) - y
		c := 1 - (a + b)
		return weighted3(channels, p2, b, p3, c, p4, a)
	}

	// ╲ diagonal
	if x-float64(x1) < y-float64(y1) {
		// ◣ 1-3-4 triangle
		a := x - float64(x1)
		b := float64(y4) - y
		c := 1 - (a + b)
		return weighted3(channels, p1, b, p3, a, p4, c)
	}
	// ◥ 1-2-3 triangle
	a := float64(x2) - x
	b := y - float64(y1)
	c := 1 - (a + b)
	return weighted3(channels, p1, a, p3, b, p2, c)
}

// weighted3 blends three pixels with the given weights, truncating each
// channel sum. Terms are added in argument order.
func weighted3(channels int, pa raster.Pixel, wa float64, pb raster.Pixel, wb float64, pc raster.Pixel, wc float64) raster.Pixel {
	out := make(raster.Pixel, channels)
	for z := range out {
		out[z] = int(wa*float64(pa[z]) + wb*float64(pb[z]) + wc*float64(pc[z]))
	}
	return out
}

// channelSum adds the first n channels of a pixel.
func channelSum(p raster.Pixel, n int) int {
	sum := 0
	for z := 0; z < n; z++ {
		sum += p[z]
	}
	return sum
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
