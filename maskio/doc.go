// Package maskio converts between image files and the binary masks and
// label maps used by the rest of morphgrid.
//
// What:
//
//   - Decode / Load read a PNG, BMP or TIFF image and binarize it: a pixel
//     is foreground iff its sampled channel is ≥ the threshold.
//   - Encode / Save write a mask as a black (background) and white
//     (foreground) grayscale image.
//   - EncodeLabels / SaveLabels write a gridgraph.LabelMap as a paletted
//     image: background black, each label a fixed color.
//
// Options:
//
//   - WithThreshold(t)  binarization threshold, default 128.
//   - WithChannel(c)    Luma (default) or Alpha.
//   - WithInvert()      dark pixels become foreground (ink on paper).
//
// Grayscale is only ever thresholded here; the algorithms themselves
// operate on binary masks.
//
// Errors:
//
//   - ErrUnsupportedFormat: unknown format name or file extension.
//   - mask.ErrInvalidShape: the decoded image has no pixels.
//   - decoder, encoder and file errors, wrapped with a "maskio:" prefix.
package maskio
