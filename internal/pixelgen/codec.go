package pixelgen

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// SaveOptions carries codec knobs shared by all formats.
type SaveOptions struct {
	Delay int  // GIF frame delay in 100ths of a second
	Gamma Real // gamma correction; 1 means none
}

// DefaultSaveOptions returns the standard encoding defaults.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{Delay: DefaultGIFDelay, Gamma: DefaultGamma}
}

// FloatToUint8 converts a bounded sample to an 8-bit pixel. Out-of-range
// input is an error, never a silent clamp: generators guarantee [0,1] and
// a violation here means an upstream bug.
func FloatToUint8(v Real) (uint8, error) {
	if !isFinite(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %v", ErrRange, v)
	}
	return uint8(math.Round(v * 255)), nil
}

// FloatToUint16 is the 16-bit variant used by the lossless PNG path.
func FloatToUint16(v Real) (uint16, error) {
	if !isFinite(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %v", ErrRange, v)
	}
	return uint16(math.Round(v * 65535)), nil
}

// applyGamma brightens or darkens a bounded sample; gamma 1 is identity.
func applyGamma(v, gamma Real) Real {
	if gamma == 1 || v <= 0 {
		return v
	}
	return math.Pow(v, 1.0/gamma)
}

// frameGray renders one T slice as an 8-bit grayscale image.
func frameGray(g *Grid, t int, gamma Real) (*image.Gray, error) {
	img := image.NewGray(image.Rect(0, 0, g.Shape.X, g.Shape.Y))
	for y := 0; y < g.Shape.Y; y++ {
		rowOff := y * img.Stride
		for x := 0; x < g.Shape.X; x++ {
			b, err := FloatToUint8(applyGamma(g.At(t, y, x), gamma))
			if err != nil {
				return nil, fmt.Errorf("frame %d at (%d,%d): %w", t, y, x, err)
			}
			img.Pix[rowOff+x] = b
		}
	}
	return img, nil
}

// frameGray16 renders one T slice as a 16-bit grayscale image.
func frameGray16(g *Grid, t int, gamma Real) (*image.Gray16, error) {
	img := image.NewGray16(image.Rect(0, 0, g.Shape.X, g.Shape.Y))
	for y := 0; y < g.Shape.Y; y++ {
		for x := 0; x < g.Shape.X; x++ {
			v, err := FloatToUint16(applyGamma(g.At(t, y, x), gamma))
			if err != nil {
				return nil, fmt.Errorf("frame %d at (%d,%d): %w", t, y, x, err)
			}
			p := y*img.Stride + x*2
			img.Pix[p+0] = uint8(v >> 8)
			img.Pix[p+1] = uint8(v)
		}
	}
	return img, nil
}

// SaveAnimatedGIF writes one GIF frame per T slice. delay is in 100ths of
// a second (e.g., 5 => 20 fps).
func SaveAnimatedGIF(g *Grid, path string, delay int, gamma Real) error {
	T := g.Shape.T
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, T),
		Delay:     make([]int, 0, T),
		LoopCount: 0,
	}
	for t := 0; t < T; t++ {
		if t%imax(1, T/100) == 0 { // ~1% steps
			DebugLog("[GIF] %.2f%%", Real(t+1)*100/Real(T))
		}
		gray, err := frameGray(g, t, gamma)
		if err != nil {
			return err
		}
		// Quantize to paletted for GIF
		pimg := image.NewPaletted(gray.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), gray, image.Point{})
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}

// seqPath builds the per-frame file name: prefix_K.ext, K zero-padded to
// the number of digits the last frame needs. A single frame keeps the
// plain path.
func seqPath(path string, t, total int) string {
	if total == 1 {
		return path
	}
	ext := filepath.Ext(path)
	prefix := strings.TrimSuffix(path, ext)
	width := 1
	if total > 1 {
		width = int(math.Log10(Real(total-1))) + 1
	}
	return fmt.Sprintf("%s_%0*d%s", prefix, width, t, ext)
}

// saveSequence writes one encoded file per T slice.
func saveSequence(g *Grid, path string, gamma Real, encode func(f *os.File, img image.Image) error) error {
	T := g.Shape.T
	for t := 0; t < T; t++ {
		var img image.Image
		var err error
		if PNG16 && strings.EqualFold(filepath.Ext(path), ".png") {
			img, err = frameGray16(g, t, gamma)
		} else {
			img, err = frameGray(g, t, gamma)
		}
		if err != nil {
			return err
		}
		f, err := os.Create(seqPath(path, t, T))
		if err != nil {
			return err
		}
		if err := encode(f, img); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Save encodes the grid to the format selected by the path's extension:
// .gif (animated), .png (sequence, 16-bit with the PNG16 flag), .jpg/.jpeg,
// .bmp, .tif/.tiff (sequences). Anything else is ErrUnsupportedFormat.
func Save(g *Grid, path string, opts SaveOptions) error {
	if opts.Delay <= 0 {
		opts.Delay = DefaultGIFDelay
	}
	if opts.Gamma <= 0 {
		opts.Gamma = DefaultGamma
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return SaveAnimatedGIF(g, path, opts.Delay, opts.Gamma)
	case ".png":
		return saveSequence(g, path, opts.Gamma, func(f *os.File, img image.Image) error {
			return png.Encode(f, img)
		})
	case ".jpg", ".jpeg":
		return saveSequence(g, path, opts.Gamma, func(f *os.File, img image.Image) error {
			return jpeg.Encode(f, img, nil)
		})
	case ".bmp":
		return saveSequence(g, path, opts.Gamma, func(f *os.File, img image.Image) error {
			return bmp.Encode(f, img)
		})
	case ".tif", ".tiff":
		return saveSequence(g, path, opts.Gamma, func(f *os.File, img image.Image) error {
			return tiff.Encode(f, img, nil)
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
