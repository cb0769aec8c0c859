package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/morphgrid/mask"
)

// newLabelMap returns an all-background label map of the given shape.
func newLabelMap(height, width int) *LabelMap {
	return &LabelMap{height: height, width: width, labels: make([]int, height*width)}
}

// Height returns the number of rows.
func (lm *LabelMap) Height() int { return lm.height }

// Width returns the number of columns.
func (lm *LabelMap) Width() int { return lm.width }

// Max returns the highest label in the map (0 if there is no foreground).
func (lm *LabelMap) Max() int { return lm.n }

// InBounds reports whether p lies within the map.
// Complexity: O(1).
func (lm *LabelMap) InBounds(p mask.Pixel) bool {
	return p.I >= 0 && p.I < lm.height && p.J >= 0 && p.J < lm.width
}

// At returns the label of p, or Background outside the map.
func (lm *LabelMap) At(p mask.Pixel) int {
	if !lm.InBounds(p) {
		return Background
	}

	return lm.labels[lm.index(p)]
}

// Rows returns a freshly allocated [][]int copy of the labels.
func (lm *LabelMap) Rows() [][]int {
	rows := make([][]int, lm.height)
	for i := range rows {
		rows[i] = make([]int, lm.width)
		copy(rows[i], lm.labels[i*lm.width:(i+1)*lm.width])
	}

	return rows
}

// Sizes returns the pixel count of every label; Sizes()[0] counts background.
func (lm *LabelMap) Sizes() []int {
	sizes := make([]int, lm.n+1)
	for _, l := range lm.labels {
		sizes[l]++
	}

	return sizes
}

// CopyTo writes the labels row-major into dst.
// Returns mask.ErrBufferTooSmall, leaving dst untouched, if len(dst) < H×W.
func (lm *LabelMap) CopyTo(dst []int) error {
	if len(dst) < len(lm.labels) {
		return fmt.Errorf("gridgraph: have %d, need %d: %w", len(dst), len(lm.labels), mask.ErrBufferTooSmall)
	}
	copy(dst, lm.labels)

	return nil
}

// index maps p to a row‑major index: i*Width + j.
// Complexity: O(1).
func (lm *LabelMap) index(p mask.Pixel) int {
	return p.I*lm.width + p.J
}

// pixel converts a row‑major index back to a Pixel.
// Complexity: O(1).
func (lm *LabelMap) pixel(idx int) mask.Pixel {
	return mask.Pixel{I: idx / lm.width, J: idx % lm.width}
}
