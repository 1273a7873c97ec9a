package resample

import "fmt"

// Method selects the interpolation kernel that combines neighbor samples
// into one output pixel.
type Method int

// Supported interpolation methods. Any other value is rejected with
// ErrInvalidArgument at every public entry point.
const (
	// MethodNearest returns the enclosing grid cell unblended. Offered by
	// SamplePixel only; the displace and rescale drivers require a blending
	// kernel.
	MethodNearest Method = iota

	// MethodBilinear blends the 4 surrounding corners by opposite
	// sub-rectangle area.
	MethodBilinear

	// MethodBarycentric blends 3 corners of the diagonal-adaptive triangle
	// enclosing the sample point.
	MethodBarycentric
)

// String returns the mnemonic name of the method.
func (m Method) String() string {
	switch m {
	case MethodNearest:
		return "nearest"
	case MethodBilinear:
		return "bilinear"
	case MethodBarycentric:
		return "barycentric"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

func (m Method) valid() bool {
	return m >= MethodNearest && m <= MethodBarycentric
}

// ParseMethod converts a mnemonic string into a Method.
//
// Accepted values are "nearest", "bilinear" and "barycentric"; anything else
// fails with ErrInvalidArgument.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "nearest":
		return MethodNearest, nil
	case "bilinear":
		return MethodBilinear, nil
	case "barycentric":
		return MethodBarycentric, nil
	}
	return 0, fmt.Errorf("%w: unknown interpolation method %q", ErrInvalidArgument, s)
}
