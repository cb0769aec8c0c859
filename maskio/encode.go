package maskio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/morphgrid/gridgraph"
	"github.com/katalvlaran/morphgrid/mask"
)

// Save writes m to path, choosing the format from the extension.
func Save(path string, m *mask.Mask) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	return writeFile(path, func(w io.Writer) error { return Encode(w, m, format) })
}

// Encode writes m as a grayscale image: foreground white, background black.
func Encode(w io.Writer, m *mask.Mask, format Format) error {
	if m == nil {
		return fmt.Errorf("maskio: nil mask: %w", mask.ErrInvalidShape)
	}

	img := ToImage(m)

	return encode(w, img, format)
}

// ToImage renders m as an *image.Gray of the same size.
func ToImage(m *mask.Mask) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for idx := 0; idx < m.Len(); idx++ {
		p := m.PixelAt(idx)
		if m.At(p) {
			img.SetGray(p.J, p.I, color.Gray{Y: 0xff})
		}
	}

	return img
}

// SaveLabels writes lm to path, choosing the format from the extension.
func SaveLabels(path string, lm *gridgraph.LabelMap) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	return writeFile(path, func(w io.Writer) error { return EncodeLabels(w, lm, format) })
}

// EncodeLabels writes lm as a paletted image. Background is black and label
// l gets LabelColor(l); with more than 255 labels colors repeat.
func EncodeLabels(w io.Writer, lm *gridgraph.LabelMap, format Format) error {
	if lm == nil {
		return fmt.Errorf("maskio: nil label map: %w", mask.ErrInvalidShape)
	}

	return encode(w, LabelsToImage(lm), format)
}

// LabelsToImage renders lm as an *image.Paletted with LabelPalette.
func LabelsToImage(lm *gridgraph.LabelMap) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, lm.Width(), lm.Height()), LabelPalette())
	for i := 0; i < lm.Height(); i++ {
		for j := 0; j < lm.Width(); j++ {
			img.SetColorIndex(j, i, paletteIndex(lm.At(mask.Pixel{I: i, J: j})))
		}
	}

	return img
}

// LabelPalette returns the 256-entry palette used by EncodeLabels:
// entry 0 is black, entry k is LabelColor(k).
func LabelPalette() color.Palette {
	pal := make(color.Palette, 256)
	pal[0] = color.RGBA{A: 0xff}
	for k := 1; k < len(pal); k++ {
		pal[k] = LabelColor(k)
	}

	return pal
}

// LabelColor returns the fixed, never-black color of label l ≥ 1.
func LabelColor(l int) color.RGBA {
	h := uint32(paletteIndex(l)) * 2654435761 // Knuth multiplicative hash
	return color.RGBA{
		R: uint8(h>>24) | 0x40,
		G: uint8(h>>16) | 0x40,
		B: uint8(h>>8) | 0x40,
		A: 0xff,
	}
}

// paletteIndex maps a label onto 0..255, keeping 0 for Background only.
func paletteIndex(l int) uint8 {
	if l <= gridgraph.Background {
		return 0
	}

	return uint8(1 + (l-1)%255)
}

func encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("maskio: encode %v: %w", format, err)
	}

	return nil
}

// writeFile creates path and hands it to fn, closing it afterwards.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("maskio: create file: %w", err)
	}

	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
