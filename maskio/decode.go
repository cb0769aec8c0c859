package maskio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG with image.Decode
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP with image.Decode
	_ "golang.org/x/image/tiff" // register TIFF with image.Decode

	"github.com/katalvlaran/morphgrid/mask"
)

// Load reads the image at path and binarizes it.
func Load(path string, opts ...Option) (*mask.Mask, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("maskio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, opts...)
}

// Decode reads a PNG, BMP or TIFF image from r and binarizes it.
// The mask has one row per image row (top to bottom) and one column per
// image column.
func Decode(r io.Reader, opts ...Option) (*mask.Mask, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("maskio: decode: %w", err)
	}

	return FromImage(img, o)
}

// FromImage binarizes an already decoded image.
func FromImage(img image.Image, o Options) (*mask.Mask, error) {
	b := img.Bounds()
	m, err := mask.New(b.Dy(), b.Dx())
	if err != nil {
		return nil, fmt.Errorf("maskio: %d×%d image: %w", b.Dx(), b.Dy(), err)
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			v := sample(img.At(b.Min.X+x, b.Min.Y+y), o.Channel)
			if (v >= o.Threshold) != o.Invert {
				m.Set(mask.Pixel{I: y, J: x}, true)
			}
		}
	}

	return m, nil
}

// sample returns the 8-bit value of c on channel ch.
func sample(c color.Color, ch Channel) uint8 {
	if ch == Alpha {
		_, _, _, a := c.RGBA()
		// RGBA() returns 16-bit values
		return uint8(a >> 8)
	}

	return color.GrayModel.Convert(c).(color.Gray).Y
}
