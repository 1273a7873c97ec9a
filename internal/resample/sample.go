package resample

import (
	"fmt"
	"math"

	"github.com/ironsheep/image-resample/internal/raster"
)

// SamplePixel reads one interpolated pixel at real coordinate (x, y).
//
// Parameters:
//   - src: source raster. Must satisfy the grid invariants.
//   - x, y: sample position in pixel-index space. May be fractional,
//     negative, or beyond the last pixel; the edge mode resolves any
//     out-of-range neighbor.
//   - edge: out-of-range policy (EdgeRepeat, EdgeWrap, EdgeZero).
//   - method: interpolation kernel. All three methods are accepted here.
//
// Returns the channel vector at (x, y), same length and order as the source
// pixels, or an error wrapping ErrInvalidArgument for an unrecognized edge
// mode or method or a malformed source.
//
// At an exact integer in-bounds coordinate every method returns the source
// pixel unchanged. The returned pixel is always an independent copy.
func SamplePixel(src *raster.Raster, x, y float64, edge Edge, method Method) (raster.Pixel, error) {
	if err := validateSource(src, edge); err != nil {
		return nil, err
	}

	switch method {
	case MethodNearest:
		return sampleEdge(src, int(math.Floor(x)), int(math.Floor(y)), edge).Clone(), nil
	case MethodBilinear:
		return bilinearAt(directFetch(src, edge), src.Channels, x, y).Clone(), nil
	case MethodBarycentric:
		return barycentricAt(directFetch(src, edge), src.Channels, x, y).Clone(), nil
	}
	return nil, fmt.Errorf("%w: unknown interpolation method %d", ErrInvalidArgument, int(method))
}

// validateSource rejects malformed rasters and unrecognized edge modes
// before any pixel work happens.
func validateSource(src *raster.Raster, edge Edge) error {
	if src == nil {
		return fmt.Errorf("%w: nil source raster", ErrInvalidArgument)
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if !edge.valid() {
		return fmt.Errorf("%w: unknown edge mode %d", ErrInvalidArgument, int(edge))
	}
	return nil
}
