// Package gridgraph defines core types and sentinel errors
// for component labeling of binary masks.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/morphgrid/dfs"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrLabelOutOfRange indicates a requested label is not in 1..NLabels.
	ErrLabelOutOfRange = errors.New("gridgraph: label out of range")
	// ErrNoPath indicates no path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Background is the label of every background pixel.
const Background = 0

// LabelMap assigns every pixel of a mask its component label:
// Background for background pixels, 1..Max() for foreground.
// It has the same shape as the mask it was computed from.
type LabelMap struct {
	height, width int
	n             int   // highest label assigned
	labels        []int // row-major
}

// Components is the outcome of LabelComponents.
type Components struct {
	// Labels is the label of every pixel.
	Labels *LabelMap
	// NLabels is the number of components found (== len(Traversals)).
	NLabels int
	// Traversals[l-1] is the DFS that discovered label l. Its Visited
	// sequence is exactly the set of pixels carrying that label.
	Traversals []*dfs.DFSResult
}

// Component returns the traversal that produced label.
// Returns ErrLabelOutOfRange unless 1 ≤ label ≤ NLabels.
func (c *Components) Component(label int) (*dfs.DFSResult, error) {
	if label < 1 || label > c.NLabels {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrLabelOutOfRange, label, c.NLabels)
	}

	return c.Traversals[label-1], nil
}
