package resample

import (
	"errors"
	"fmt"

	"github.com/ironsheep/image-resample/internal/raster"
)

// ErrInvalidArgument reports misuse of the resampling API: an unrecognized
// interpolation method or edge mode, a degenerate target dimension, or a
// malformed source raster. Out-of-range coordinates are never an error;
// edge modes define their behavior.
var ErrInvalidArgument = errors.New("invalid argument")

// Edge selects the policy for resolving pixel coordinates outside the
// source grid.
type Edge int

// Supported edge modes. Any other value is rejected with ErrInvalidArgument
// at every public entry point.
const (
	// EdgeRepeat clamps coordinates to the nearest edge pixel, the way
	// Photoshop extends a canvas.
	EdgeRepeat Edge = iota

	// EdgeWrap cycles coordinates around the grid (non-negative modulo),
	// tiling the image.
	EdgeWrap

	// EdgeZero extrapolates with zero-valued channels. A zero alpha channel
	// reads as fully transparent downstream, so this is the natural mode
	// when extrapolated content should be invisible.
	EdgeZero
)

// String returns the mnemonic name of the edge mode.
func (e Edge) String() string {
	switch e {
	case EdgeRepeat:
		return "repeat"
	case EdgeWrap:
		return "wrap"
	case EdgeZero:
		return "zero"
	}
	return fmt.Sprintf("edge(%d)", int(e))
}

func (e Edge) valid() bool {
	return e >= EdgeRepeat && e <= EdgeZero
}

// ParseEdge converts a mnemonic string into an Edge.
//
// Accepted values are "repeat", "wrap" and "zero"; anything else fails with
// ErrInvalidArgument.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "repeat":
		return EdgeRepeat, nil
	case "wrap":
		return EdgeWrap, nil
	case "zero":
		return EdgeZero, nil
	}
	return 0, fmt.Errorf("%w: unknown edge mode %q", ErrInvalidArgument, s)
}

// sampleEdge resolves an integer pixel coordinate, possibly outside the grid,
// to a concrete channel vector under the given edge mode.
//
// In-bounds lookups return the source pixel itself, not a copy; callers that
// retain the result must copy it. The edge mode must already be validated.
func sampleEdge(src *raster.Raster, x, y int, edge Edge) raster.Pixel {
	switch edge {
	case EdgeRepeat:
		cx := clamp(x, 0, src.Width-1)
		cy := clamp(y, 0, src.Height-1)
		return src.Pix[cy][cx]
	case EdgeWrap:
		cx := x % src.Width
		if cx < 0 {
			cx += src.Width
		}
		cy := y % src.Height
		if cy < 0 {
			cy += src.Height
		}
		return src.Pix[cy][cx]
	default: // EdgeZero
		if x < 0 || y < 0 || x > src.Width-1 || y > src.Height-1 {
			return make(raster.Pixel, src.Channels)
		}
		return src.Pix[y][x]
	}
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
