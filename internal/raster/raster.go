package raster

import "fmt"

// Pixel is an ordered vector of channel samples for one grid cell.
//
// The length of a Pixel is the channel count of its Raster and is preserved
// end-to-end by every operation in this repository: a 4-channel source
// produces 4-channel output pixels in the same channel order.
type Pixel []int

// Clone returns an independent copy of the pixel.
func (p Pixel) Clone() Pixel {
	out := make(Pixel, len(p))
	copy(out, p)
	return out
}

// Raster is a rectangular grid of integer channel samples.
//
// Pix is indexed [y][x], row 0 at the top. Every row has Width pixels and
// every pixel has Channels samples in [0, MaxVal].
type Raster struct {
	// Width is the grid width in pixels.
	Width int

	// Height is the grid height in pixels.
	Height int

	// Channels is the number of samples per pixel (Z). Always >= 1.
	// Channel order is L, LA, RGB, or RGBA; alpha, if present, is the
	// last channel.
	Channels int

	// MaxVal is the maximum sample value: 1, 255, or 65535.
	MaxVal int

	// Pix holds the samples, indexed Pix[y][x].
	Pix [][]Pixel
}

// New allocates a zero-filled raster of the given shape.
//
// Parameters:
//   - width, height: grid dimensions in pixels. Must be >= 1.
//   - channels: samples per pixel. Must be >= 1.
//   - maxVal: maximum sample value, one of 1, 255, 65535.
//
// Returns an error for any out-of-range dimension or maxVal.
func New(width, height, channels, maxVal int) (*Raster, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d", channels)
	}
	if maxVal != 1 && maxVal != 255 && maxVal != 65535 {
		return nil, fmt.Errorf("invalid maximum sample value %d", maxVal)
	}

	pix := make([][]Pixel, height)
	for y := range pix {
		row := make([]Pixel, width)
		samples := make([]int, width*channels)
		for x := range row {
			row[x] = samples[x*channels : (x+1)*channels : (x+1)*channels]
		}
		pix[y] = row
	}

	return &Raster{
		Width:    width,
		Height:   height,
		Channels: channels,
		MaxVal:   maxVal,
		Pix:      pix,
	}, nil
}

// At returns the pixel at (x, y). Coordinates must be in bounds; out-of-range
// resolution is the resampling engine's job, not the grid's.
func (r *Raster) At(x, y int) Pixel {
	return r.Pix[y][x]
}

// SetPixel copies the channel samples of p into cell (x, y).
func (r *Raster) SetPixel(x, y int, p Pixel) {
	copy(r.Pix[y][x], p)
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	out, _ := New(r.Width, r.Height, r.Channels, r.MaxVal)
	for y := range r.Pix {
		for x := range r.Pix[y] {
			copy(out.Pix[y][x], r.Pix[y][x])
		}
	}
	return out
}

// Validate checks the grid invariants: positive dimensions, rectangular rows,
// a uniform channel count >= 1, and a legal MaxVal.
//
// Sample values are not range-checked here; decoders produce in-range values
// and the resampling kernels cannot push a value outside the convex hull of
// its neighbors.
func (r *Raster) Validate() error {
	if r == nil {
		return fmt.Errorf("nil raster")
	}
	if r.Width < 1 || r.Height < 1 {
		return fmt.Errorf("invalid raster size %dx%d", r.Width, r.Height)
	}
	if r.Channels < 1 {
		return fmt.Errorf("invalid channel count %d", r.Channels)
	}
	if r.MaxVal != 1 && r.MaxVal != 255 && r.MaxVal != 65535 {
		return fmt.Errorf("invalid maximum sample value %d", r.MaxVal)
	}
	if len(r.Pix) != r.Height {
		return fmt.Errorf("row count %d does not match height %d", len(r.Pix), r.Height)
	}
	for y, row := range r.Pix {
		if len(row) != r.Width {
			return fmt.Errorf("row %d has width %d, want %d", y, len(row), r.Width)
		}
		for x, p := range row {
			if len(p) != r.Channels {
				return fmt.Errorf("pixel (%d,%d) has %d channels, want %d", x, y, len(p), r.Channels)
			}
		}
	}
	return nil
}
