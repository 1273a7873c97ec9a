// Package resample implements the pixel interpolation engine: single-pixel
// sampling at arbitrary real coordinates, coordinate-function displacement,
// and uniform rescaling of raster grids.
//
// # Coordinate System
//
// Coordinates are real-valued positions in the source grid's pixel-index
// space, origin at the top-left corner, X rightward, Y downward. A coordinate
// may be fractional, negative, or beyond the last pixel; out-of-range
// positions are resolved by the edge mode (Repeat clamps, Wrap cycles, Zero
// extrapolates with zero-valued channels) and are never an error.
//
// # Interpolation Methods
//
// Three kernels combine neighbor samples into one output pixel:
//   - Nearest: the enclosing grid cell, found by flooring both coordinates.
//   - Bilinear: the 4 surrounding corners weighted by opposite sub-rectangle
//     area.
//   - Barycentric: the 2x2 neighborhood folded along one diagonal into two
//     triangles, the point's triangle interpolated with barycentric weights.
//     The diagonal is chosen by directional local contrast: the fold follows
//     the diagonal whose corner color sums are closer, keeping interpolation
//     within the flatter half of the neighborhood.
//
// Blended channel values are truncated, not rounded. This matches the
// reference scaler bit for bit and is deliberate; do not "fix" it.
//
// # Concurrency
//
// Every operation is a pure computation over its inputs. The only mutable
// state is the per-call memoization cache, which is private to one
// Displace/Rescale invocation (one per row partition), so concurrent calls
// on different images are safe and every call is reentrant. Output pixels
// are mutually independent; the drivers exploit this by evaluating row
// partitions in parallel, which changes evaluation order but never a pixel
// value.
//
// # Error Handling
//
// Misuse surfaces immediately as an error wrapping ErrInvalidArgument:
// unrecognized edge modes or interpolation methods, degenerate rescale
// targets, malformed source grids. There are no partial results; a call
// returns a fully populated raster or fails before producing one.
package resample
