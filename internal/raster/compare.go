package raster

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MeanDeltaE computes the mean perceptual color distance between two rasters
// of identical shape.
//
// Each pixel pair is converted to CIE Lab and compared with the CIE76 delta-E
// metric; the result is the average over all pixels. Luminance-only pixels
// are replicated into RGB before conversion, and alpha channels are ignored:
// this is a color comparison, not a compositing one.
//
// Returns an error when the two rasters differ in width, height, channel
// count or depth. A result of 0 means the images are colorimetrically
// identical; values around 2.3 correspond to a just-noticeable difference.
func MeanDeltaE(a, b *Raster) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if a.Width != b.Width || a.Height != b.Height || a.Channels != b.Channels || a.MaxVal != b.MaxVal {
		return 0, fmt.Errorf("shape mismatch: %dx%dx%d/%d vs %dx%dx%d/%d",
			a.Width, a.Height, a.Channels, a.MaxVal,
			b.Width, b.Height, b.Channels, b.MaxVal)
	}

	var total float64
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			ca := pixelColor(a.Pix[y][x], a.MaxVal)
			cb := pixelColor(b.Pix[y][x], b.MaxVal)
			total += ca.DistanceLab(cb)
		}
	}
	// DistanceLab works on a 0..1 scale; delta-E convention is 0..100.
	return total / float64(a.Width*a.Height) * 100, nil
}

// pixelColor maps a pixel's color channels onto a colorful.Color,
// normalizing samples to [0, 1].
func pixelColor(p Pixel, maxVal int) colorful.Color {
	m := float64(maxVal)
	if len(p) < 3 {
		l := float64(clampSample(p[0], maxVal)) / m
		return colorful.Color{R: l, G: l, B: l}
	}
	return colorful.Color{
		R: float64(clampSample(p[0], maxVal)) / m,
		G: float64(clampSample(p[1], maxVal)) / m,
		B: float64(clampSample(p[2], maxVal)) / m,
	}
}
