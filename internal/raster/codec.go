package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Info contains shape metadata about a raster, modeled after the information
// an image file header carries.
type Info struct {
	// Width is the grid width in pixels.
	Width int `json:"width"`

	// Height is the grid height in pixels.
	Height int `json:"height"`

	// Channels is the number of samples per pixel.
	Channels int `json:"channels"`

	// ColorDepth indicates the bit depth per channel: "1-bit", "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the last channel is an alpha channel.
	// Recomputed from the channel count, never carried over from a source file.
	HasAlpha bool `json:"has_alpha"`
}

// Describe returns metadata derived from the raster's actual shape.
//
// The channel/alpha split follows the LA / RGBA convention: 2- and 4-channel
// rasters carry alpha in the last channel, 1- and 3-channel rasters do not.
func Describe(r *Raster) Info {
	depth := "8-bit"
	switch r.MaxVal {
	case 1:
		depth = "1-bit"
	case 65535:
		depth = "16-bit"
	}
	return Info{
		Width:      r.Width,
		Height:     r.Height,
		Channels:   r.Channels,
		ColorDepth: depth,
		HasAlpha:   r.Channels == 2 || r.Channels == 4,
	}
}

// FromImage converts a standard Go image into a raster grid.
//
// Grayscale source types map to a single luminance channel; every other color
// model maps to 4 channels (RGBA, non-premultiplied). 16-bit source types
// (Gray16, RGBA64, NRGBA64) keep their full sample range with MaxVal 65535;
// everything else is 8-bit with MaxVal 255.
//
// The type switch mirrors the depth detection used when reporting image info:
// the concrete image type, not the file header, decides the depth.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		r, _ := New(width, height, 1, 255)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r.Pix[y][x][0] = int(src.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
			}
		}
		return r
	case *image.Gray16:
		r, _ := New(width, height, 1, 65535)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r.Pix[y][x][0] = int(src.Gray16At(x+bounds.Min.X, y+bounds.Min.Y).Y)
			}
		}
		return r
	case *image.RGBA64, *image.NRGBA64:
		r, _ := New(width, height, 4, 65535)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := color.NRGBA64Model.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA64)
				p := r.Pix[y][x]
				p[0], p[1], p[2], p[3] = int(c.R), int(c.G), int(c.B), int(c.A)
			}
		}
		return r
	default:
		r, _ := New(width, height, 4, 255)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
				p := r.Pix[y][x]
				p[0], p[1], p[2], p[3] = int(c.R), int(c.G), int(c.B), int(c.A)
			}
		}
		return r
	}
}

// ToImage converts a raster grid back into a standard Go image.
//
// The output type follows the channel count and depth:
//   - 1 channel: Gray (Gray16 when 16-bit)
//   - 2 channels: NRGBA with luminance replicated into RGB and alpha kept
//   - 3 channels: opaque NRGBA (NRGBA64 when 16-bit)
//   - 4 channels: NRGBA (NRGBA64 when 16-bit)
//
// 1-bit rasters are widened to 8-bit black and white. Samples are clamped to
// [0, MaxVal] on the way out.
func ToImage(r *Raster) (image.Image, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot encode raster: %w", err)
	}

	scale := 1
	if r.MaxVal == 1 {
		scale = 255
	}
	wide := r.MaxVal == 65535

	if r.Channels == 1 {
		if wide {
			img := image.NewGray16(image.Rect(0, 0, r.Width, r.Height))
			for y := 0; y < r.Height; y++ {
				for x := 0; x < r.Width; x++ {
					img.SetGray16(x, y, color.Gray16{Y: uint16(clampSample(r.Pix[y][x][0], r.MaxVal))})
				}
			}
			return img, nil
		}
		img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				img.SetGray(x, y, color.Gray{Y: uint8(clampSample(r.Pix[y][x][0], r.MaxVal) * scale)})
			}
		}
		return img, nil
	}

	if wide {
		img := image.NewNRGBA64(image.Rect(0, 0, r.Width, r.Height))
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				cr, cg, cb, ca := splitChannels(r.Pix[y][x], r.MaxVal)
				img.SetNRGBA64(x, y, color.NRGBA64{R: uint16(cr), G: uint16(cg), B: uint16(cb), A: uint16(ca)})
			}
		}
		return img, nil
	}

	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			cr, cg, cb, ca := splitChannels(r.Pix[y][x], r.MaxVal)
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(cr * scale), G: uint8(cg * scale), B: uint8(cb * scale), A: uint8(ca * scale)})
		}
	}
	return img, nil
}

// splitChannels maps a 2-, 3- or 4-channel pixel onto RGBA components,
// clamped to [0, maxVal]. 2-channel pixels replicate luminance into RGB;
// missing alpha is fully opaque.
func splitChannels(p Pixel, maxVal int) (r, g, b, a int) {
	switch len(p) {
	case 2:
		l := clampSample(p[0], maxVal)
		return l, l, l, clampSample(p[1], maxVal)
	case 3:
		return clampSample(p[0], maxVal), clampSample(p[1], maxVal), clampSample(p[2], maxVal), maxVal
	default:
		return clampSample(p[0], maxVal), clampSample(p[1], maxVal), clampSample(p[2], maxVal), clampSample(p[3], maxVal)
	}
}

// clampSample constrains a sample to [0, maxVal].
func clampSample(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// LoadFile decodes an image file into a raster grid.
//
// Supported formats are those of the imaging library: PNG, JPEG, GIF, BMP
// and TIFF, detected by content.
func LoadFile(path string) (*Raster, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return FromImage(img), nil
}

// SaveFile encodes a raster grid into an image file.
//
// The output format is chosen by the imaging library from the file extension
// (.png, .jpg, .gif, .bmp, .tif).
func SaveFile(r *Raster, path string) error {
	img, err := ToImage(r)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
