package resample

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/image-resample/internal/raster"
)

// CoordFunc maps an output pixel's integer position to a real source
// coordinate. A displacement uses one CoordFunc per source axis. The only
// requirement is determinism for a fixed input pair; any closure qualifies.
type CoordFunc func(outX, outY int) float64

// displaceCacheSize bounds the per-partition memo cache for Displace.
// Arbitrary coordinate functions make the reuse pattern unpredictable, so a
// moderate bound keeps memory flat without giving up neighbor reuse.
const displaceCacheSize = 128

// Displace builds a new raster of the given size where every output pixel is
// interpolated from the source at the coordinate (fx(ox, oy), fy(ox, oy)).
//
// Parameters:
//   - src: source raster, read-only during the call.
//   - fx, fy: coordinate functions for the x and y source axes.
//   - width, height: output size in pixels. Must be >= 1.
//   - edge: out-of-range policy for source lookups.
//   - method: MethodBilinear or MethodBarycentric. Nearest is not offered by
//     this driver.
//
// Returns a freshly allocated raster with the source's channel count and
// depth, or an error wrapping ErrInvalidArgument.
//
// Output rows are evaluated in parallel partitions; each partition owns its
// memo cache, so no writable state is shared and the result is byte-identical
// across runs.
func Displace(src *raster.Raster, fx, fy CoordFunc, width, height int, edge Edge, method Method) (*raster.Raster, error) {
	if err := validateSource(src, edge); err != nil {
		return nil, err
	}
	if fx == nil || fy == nil {
		return nil, fmt.Errorf("%w: nil coordinate function", ErrInvalidArgument)
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: target size %dx%d", ErrInvalidArgument, width, height)
	}
	kernel, err := blendKernel(method)
	if err != nil {
		return nil, err
	}

	out, err := raster.New(width, height, src.Channels, src.MaxVal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	parallel.Line(height, func(start, end int) {
		cache := newPixelCache(src, edge, displaceCacheSize)
		for oy := start; oy < end; oy++ {
			for ox := 0; ox < width; ox++ {
				out.SetPixel(ox, oy, kernel(cache.fetch, src.Channels, fx(ox, oy), fy(ox, oy)))
			}
		}
	})

	return out, nil
}

// kernelFunc is the shape shared by the blending kernels.
type kernelFunc func(fetch fetchFunc, channels int, x, y float64) raster.Pixel

// blendKernel maps a method onto its kernel, rejecting anything the drivers
// do not offer.
func blendKernel(method Method) (kernelFunc, error) {
	switch method {
	case MethodBilinear:
		return bilinearAt, nil
	case MethodBarycentric:
		return barycentricAt, nil
	}
	return nil, fmt.Errorf("%w: method %s is not a blending kernel", ErrInvalidArgument, method)
}
