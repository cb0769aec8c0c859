// Package dfs defines options and result types for depth-first traversal of
// the 8-connected foreground of a mask.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/morphgrid/mask"
)

// NoPredecessor marks the root in DFSResult.Predecessors.
const NoPredecessor = -1

// ErrIndexOutOfRange indicates a visit index outside DFSResult.Visited.
var ErrIndexOutOfRange = errors.New("dfs: visit index out of range")

// Option configures optional behavior of DFS traversal.
// Use with DFS(m, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Filter, if non-nil, is consulted for every foreground neighbor.
	// Returning false treats that pixel as background for this run.
	// The start pixel is always visited regardless of Filter.
	Filter func(p mask.Pixel) bool

	// OnVisit, if non-nil, is invoked when a pixel is appended to Visited,
	// with its visit index. Returning an error aborts the traversal.
	OnVisit func(p mask.Pixel, index int) error

	// RootLeaf, if true, always reports the root (index 0) in Leaves,
	// since it terminates every path traced back from a leaf.
	RootLeaf bool
}

// DefaultOptions returns a DFSOptions with no filter, no hook,
// and dead-end-only leaf reporting.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Filter:   nil,
		OnVisit:  nil,
		RootLeaf: false,
	}
}

// WithFilter returns an Option that restricts traversal to pixels
// accepted by fn. Passing nil clears any previous filter.
func WithFilter(fn func(p mask.Pixel) bool) Option {
	return func(o *DFSOptions) {
		o.Filter = fn
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(p mask.Pixel, index int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithRootLeaf returns an Option that always lists the root in Leaves.
func WithRootLeaf() Option {
	return func(o *DFSOptions) {
		o.RootLeaf = true
	}
}

// DFSResult captures one traversal: a spanning tree of the component
// reachable from the start pixel.
type DFSResult struct {
	// Visited lists pixels in visitation order; Visited[0] is the start.
	Visited []mask.Pixel

	// Predecessors[k] is the index in Visited of the pixel that discovered
	// Visited[k], or NoPredecessor for the root. Predecessors[k] < k.
	Predecessors []int

	// Leaves holds, in ascending order, the indices of pixels that had no
	// unvisited foreground neighbor when they were visited.
	Leaves []int
}

// Len returns the number of visited pixels.
func (r *DFSResult) Len() int {
	return len(r.Visited)
}

// IsLeaf reports whether visit index k is listed in Leaves.
func (r *DFSResult) IsLeaf(k int) bool {
	// Leaves is ascending: binary search.
	lo, hi := 0, len(r.Leaves)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case r.Leaves[mid] == k:
			return true
		case r.Leaves[mid] < k:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

// PathTo reconstructs the tree path from the root to Visited[k].
// Returns ErrIndexOutOfRange if k is not a valid visit index.
func (r *DFSResult) PathTo(k int) ([]mask.Pixel, error) {
	if k < 0 || k >= len(r.Visited) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, k, len(r.Visited))
	}

	return r.pathTo(k), nil
}

// Paths returns one root→leaf path per entry in Leaves, in the same order.
// On a skeleton these are the centerline branches seen from the root.
func (r *DFSResult) Paths() [][]mask.Pixel {
	out := make([][]mask.Pixel, 0, len(r.Leaves))
	for _, leaf := range r.Leaves {
		out = append(out, r.pathTo(leaf))
	}

	return out
}

// pathTo walks predecessors from k back to the root. k must index Visited.
func (r *DFSResult) pathTo(k int) []mask.Pixel {
	// build reversed path
	path := []mask.Pixel{}
	for cur := k; cur != NoPredecessor; cur = r.Predecessors[cur] {
		path = append(path, r.Visited[cur])
	}
	// reverse to get root → k
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
