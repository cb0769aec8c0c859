package maskio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for an unknown image format or extension.
var ErrUnsupportedFormat = errors.New("maskio: unsupported format")

// DefaultThreshold is the binarization threshold used unless overridden.
const DefaultThreshold uint8 = 128

// Channel selects the 8-bit value a pixel is binarized on.
type Channel int

const (
	// Luma samples the gray level of the pixel.
	Luma Channel = iota
	// Alpha samples the pixel's opacity.
	Alpha
)

// String returns the lower-case channel name.
func (c Channel) String() string {
	switch c {
	case Luma:
		return "luma"
	case Alpha:
		return "alpha"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel maps "luma" or "alpha" (any case) to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(s) {
	case "luma", "":
		return Luma, nil
	case "alpha":
		return Alpha, nil
	default:
		return 0, fmt.Errorf("maskio: unknown channel %q", s)
	}
}

// Format is an output image encoding.
type Format int

const (
	// FormatPNG encodes with image/png.
	FormatPNG Format = iota
	// FormatBMP encodes with golang.org/x/image/bmp.
	FormatBMP
	// FormatTIFF encodes with golang.org/x/image/tiff.
	FormatTIFF
)

// String returns the format name, which is also its file extension.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + f.String() }

// ParseFormat maps a format name ("png", "bmp", "tiff" or "tif") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the Format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Options controls how an image is binarized.
type Options struct {
	// Threshold: a sample ≥ Threshold is foreground.
	Threshold uint8
	// Channel to sample.
	Channel Channel
	// Invert swaps foreground and background after thresholding.
	Invert bool
}

// Option configures Decode and Load.
type Option func(*Options)

// DefaultOptions returns Luma sampling at DefaultThreshold, not inverted.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Channel:   Luma,
		Invert:    false,
	}
}

// WithThreshold sets the binarization threshold.
func WithThreshold(t uint8) Option {
	return func(o *Options) {
		o.Threshold = t
	}
}

// WithChannel selects the sampled channel.
func WithChannel(c Channel) Option {
	return func(o *Options) {
		o.Channel = c
	}
}

// WithInvert makes pixels below the threshold foreground.
func WithInvert() Option {
	return func(o *Options) {
		o.Invert = true
	}
}
