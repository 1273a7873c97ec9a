package resample

import (
	"errors"
	"testing"

	"github.com/ironsheep/image-resample/internal/raster"
)

func TestSamplePixel_ExactHitReturnsSourcePixel(t *testing.T) {
	src := grayRaster(t, [][]int{
		{10, 20, 30},
		{40, 50, 60},
	})

	for _, method := range []Method{MethodNearest, MethodBilinear, MethodBarycentric} {
		for _, edge := range []Edge{EdgeRepeat, EdgeWrap, EdgeZero} {
			for y := 0; y < src.Height; y++ {
				for x := 0; x < src.Width; x++ {
					got, err := SamplePixel(src, float64(x), float64(y), edge, method)
					if err != nil {
						t.Fatalf("SamplePixel(%d,%d,%s,%s): %v", x, y, edge, method, err)
					}
					want := src.At(x, y)
					if got[0] != want[0] {
						t.Errorf("SamplePixel(%d,%d,%s,%s): got %d, want %d",
							x, y, edge, method, got[0], want[0])
					}
				}
			}
		}
	}
}

func TestSamplePixel_RepeatClampsToEdge(t *testing.T) {
	src := grayRaster(t, [][]int{
		{10, 20, 30},
		{40, 50, 60},
	})

	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"left of image", -5, 0, 10},
		{"right of image", 7, 0, 30},
		{"above image", 1, -3, 20},
		{"below image", 1, 9, 50},
		{"far corner", -5, 9, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SamplePixel(src, tt.x, tt.y, EdgeRepeat, MethodNearest)
			if err != nil {
				t.Fatalf("SamplePixel failed: %v", err)
			}
			if got[0] != tt.want {
				t.Errorf("got %d, want %d", got[0], tt.want)
			}
		})
	}
}

func TestSamplePixel_WrapCycles(t *testing.T) {
	src := grayRaster(t, [][]int{
		{10, 20, 30},
		{40, 50, 60},
	})

	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"x equals width", 3, 0, 10},
		{"y equals height", 0, 2, 10},
		{"one past width", 4, 1, 50},
		{"negative x", -1, 0, 30},
		{"negative y", 0, -1, 40},
		{"double wrap", 6, 4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SamplePixel(src, tt.x, tt.y, EdgeWrap, MethodNearest)
			if err != nil {
				t.Fatalf("SamplePixel failed: %v", err)
			}
			if got[0] != tt.want {
				t.Errorf("got %d, want %d", got[0], tt.want)
			}
		})
	}
}

func TestSamplePixel_ZeroOutsideBounds(t *testing.T) {
	src := rgbaRaster(t, 3, 2, []int{200, 100, 50, 255})

	outside := []struct{ x, y float64 }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {-10, -10}, {100, 100},
	}
	for _, pos := range outside {
		got, err := SamplePixel(src, pos.x, pos.y, EdgeZero, MethodNearest)
		if err != nil {
			t.Fatalf("SamplePixel(%v,%v) failed: %v", pos.x, pos.y, err)
		}
		for z, v := range got {
			if v != 0 {
				t.Errorf("SamplePixel(%v,%v) channel %d: got %d, want 0", pos.x, pos.y, z, v)
			}
		}
		if len(got) != src.Channels {
			t.Errorf("channel count: got %d, want %d", len(got), src.Channels)
		}
	}

	// In-bounds stays untouched.
	got, err := SamplePixel(src, 1, 1, EdgeZero, MethodNearest)
	if err != nil {
		t.Fatalf("SamplePixel failed: %v", err)
	}
	if got[0] != 200 || got[3] != 255 {
		t.Errorf("in-bounds pixel: got %v", got)
	}
}

func TestSamplePixel_NearestFloorsNegativeCoordinates(t *testing.T) {
	src := grayRaster(t, [][]int{
		{10, 20},
		{30, 40},
	})

	// x in (-1, 0) belongs to cell -1, which wraps to the last column.
	got, err := SamplePixel(src, -0.25, 0, EdgeWrap, MethodNearest)
	if err != nil {
		t.Fatalf("SamplePixel failed: %v", err)
	}
	if got[0] != 20 {
		t.Errorf("floor of -0.25 should select cell -1 (wraps to 20), got %d", got[0])
	}
}

func TestSamplePixel_BilinearCenter(t *testing.T) {
	src := grayRaster(t, [][]int{
		{0, 100},
		{200, 255},
	})

	got, err := SamplePixel(src, 0.5, 0.5, EdgeRepeat, MethodBilinear)
	if err != nil {
		t.Fatalf("SamplePixel failed: %v", err)
	}
	// (0+100+200+255)/4 = 138.75, truncated.
	if got[0] != 138 {
		t.Errorf("center: got %d, want 138", got[0])
	}
}

func TestSamplePixel_BarycentricCenter(t *testing.T) {
	src := grayRaster(t, [][]int{
		{0, 100},
		{200, 255},
	})

	got, err := SamplePixel(src, 0.5, 0.5, EdgeRepeat, MethodBarycentric)
	if err != nil {
		t.Fatalf("SamplePixel failed: %v", err)
	}
	// |p1-p3| = 255 > |p2-p4| = 100, so the 2-4 diagonal splits the square;
	// (0.5, 0.5) falls on the 2-3-4 side: 0.5*100 + 0*255 + 0.5*200 = 150.
	if got[0] != 150 {
		t.Errorf("center: got %d, want 150", got[0])
	}
}

func TestSamplePixel_InvalidSelectors(t *testing.T) {
	src := grayRaster(t, [][]int{{1, 2}, {3, 4}})

	if _, err := SamplePixel(src, 0, 0, Edge(42), MethodNearest); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown edge: got %v, want ErrInvalidArgument", err)
	}
	if _, err := SamplePixel(src, 0, 0, EdgeRepeat, Method(42)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown method: got %v, want ErrInvalidArgument", err)
	}
	if _, err := SamplePixel(nil, 0, 0, EdgeRepeat, MethodNearest); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil raster: got %v, want ErrInvalidArgument", err)
	}
}

func TestSamplePixel_ReturnsIndependentCopy(t *testing.T) {
	src := grayRaster(t, [][]int{{7}, {8}})

	got, err := SamplePixel(src, 0, 0, EdgeRepeat, MethodNearest)
	if err != nil {
		t.Fatalf("SamplePixel failed: %v", err)
	}
	got[0] = 999
	if src.At(0, 0)[0] != 7 {
		t.Error("mutating the result mutated the source")
	}
}

func TestParseEdge(t *testing.T) {
	tests := []struct {
		in      string
		want    Edge
		wantErr bool
	}{
		{"repeat", EdgeRepeat, false},
		{"wrap", EdgeWrap, false},
		{"zero", EdgeZero, false},
		{"mirror", 0, true},
		{"", 0, true},
		{"Repeat", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseEdge(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseEdge(%q): got err %v, want ErrInvalidArgument", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseEdge(%q): got %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"nearest", MethodNearest, false},
		{"bilinear", MethodBilinear, false},
		{"barycentric", MethodBarycentric, false},
		{"bicubic", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseMethod(%q): got err %v, want ErrInvalidArgument", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMethod(%q): got %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

// Test helpers

// grayRaster builds a single-channel 8-bit raster from rows of sample values.
func grayRaster(t *testing.T, rows [][]int) *raster.Raster {
	t.Helper()
	r, err := raster.New(len(rows[0]), len(rows), 1, 255)
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	for y, row := range rows {
		for x, v := range row {
			r.Pix[y][x][0] = v
		}
	}
	return r
}

// rgbaRaster builds a 4-channel 8-bit raster filled with a constant pixel.
func rgbaRaster(t *testing.T, width, height int, fill []int) *raster.Raster {
	t.Helper()
	r, err := raster.New(width, height, 4, 255)
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			copy(r.Pix[y][x], fill)
		}
	}
	return r
}
