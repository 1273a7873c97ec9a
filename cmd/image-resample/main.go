package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/ironsheep/image-resample/internal/raster"
	"github.com/ironsheep/image-resample/internal/resample"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		inFile      string
		outFile     string
		width       int
		height      int
		edgeName    string
		methodName  string
		wave        bool
		amplitude   float64
		period      float64
		report      bool
		showVersion bool
	)

	flag.StringVar(&inFile, "in", "", "input image (png, jpeg, gif, bmp, tiff)")
	flag.StringVar(&outFile, "out", "out.png", "output image; format follows the extension")
	flag.IntVar(&width, "width", 0, "output width in pixels (default: source width)")
	flag.IntVar(&height, "height", 0, "output height in pixels (default: source height)")
	flag.StringVar(&edgeName, "edge", "repeat", "edge mode: repeat, wrap or zero")
	flag.StringVar(&methodName, "method", "bilinear", "interpolation method: bilinear or barycentric")
	flag.BoolVar(&wave, "wave", false, "apply a sine-wave displacement instead of rescaling")
	flag.Float64Var(&amplitude, "amplitude", 8, "wave amplitude in pixels (with -wave)")
	flag.Float64Var(&period, "period", 64, "wave period in pixels (with -wave)")
	flag.BoolVar(&report, "report", false, "print a down/up round-trip color difference per method")
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.Parse()

	// Diagnostics go to stderr; stdout is reserved for the report.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if showVersion {
		fmt.Printf("image-resample %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}
	if inFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	edge, err := resample.ParseEdge(edgeName)
	if err != nil {
		log.Fatalf("bad -edge: %v", err)
	}
	method, err := resample.ParseMethod(methodName)
	if err != nil {
		log.Fatalf("bad -method: %v", err)
	}

	src, err := raster.LoadFile(inFile)
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	info := raster.Describe(src)
	log.Printf("loaded %s: %dx%d, %d channel(s), %s", inFile, info.Width, info.Height, info.Channels, info.ColorDepth)

	if width <= 0 {
		width = src.Width
	}
	if height <= 0 {
		height = src.Height
	}

	start := time.Now()
	var out *raster.Raster
	if wave {
		out, err = waveDisplace(src, width, height, amplitude, period, edge, method)
	} else {
		out, err = resample.Rescale(src, width, height, edge, method)
	}
	if err != nil {
		log.Fatalf("resample: %v", err)
	}
	log.Printf("%s %s done in %s", methodName, mode(wave), time.Since(start))

	if report {
		if err := printRoundTripReport(src, width, height, edge); err != nil {
			log.Fatalf("report: %v", err)
		}
	}

	if err := raster.SaveFile(out, outFile); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", outFile, out.Width, out.Height)
}

func mode(wave bool) string {
	if wave {
		return "displace"
	}
	return "rescale"
}

// waveDisplace warps the source with perpendicular sine waves, the classic
// displacement demo: each output row is shifted horizontally by a wave over
// y, each column vertically by a wave over x.
func waveDisplace(src *raster.Raster, width, height int, amplitude, period float64, edge resample.Edge, method resample.Method) (*raster.Raster, error) {
	fx := func(x, y int) float64 {
		return float64(x) + amplitude*math.Sin(2*math.Pi*float64(y)/period)
	}
	fy := func(x, y int) float64 {
		return float64(y) + amplitude*math.Sin(2*math.Pi*float64(x)/period)
	}
	return resample.Displace(src, fx, fy, width, height, edge, method)
}

// printRoundTripReport rescales the source down to the target size and back
// for both blending kernels and prints the mean Lab distance against the
// original, a quick numeric comparison of the two methods.
func printRoundTripReport(src *raster.Raster, width, height int, edge resample.Edge) error {
	for _, method := range []resample.Method{resample.MethodBilinear, resample.MethodBarycentric} {
		down, err := resample.Rescale(src, width, height, edge, method)
		if err != nil {
			return err
		}
		up, err := resample.Rescale(down, src.Width, src.Height, edge, method)
		if err != nil {
			return err
		}
		delta, err := raster.MeanDeltaE(src, up)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s round-trip mean delta-E: %.4f\n", method, delta)
	}
	return nil
}
