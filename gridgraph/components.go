package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/morphgrid/dfs"
	"github.com/katalvlaran/morphgrid/mask"
)

// LabelComponents partitions the foreground of m into 8-connected
// components. Components are discovered by a row-major scan and labeled
// 1, 2, … in that order; each is produced by one dfs.DFS run started at its
// first pixel, with already-labeled pixels treated as background.
//
// opts are forwarded to every DFS run (e.g. dfs.WithRootLeaf()). A caller
// filter installed with dfs.WithFilter is combined with the labeled-pixel
// filter; pixels it rejects are left as Background.
//
// Returns mask.ErrInvalidShape if m is nil.
//
// Time:   O(W·H), every pixel is scanned once and visited by one DFS.
// Memory: O(W·H) for the label map and per-run visited flags.
func LabelComponents(m *mask.Mask, opts ...dfs.Option) (*Components, error) {
	if m == nil {
		return nil, fmt.Errorf("gridgraph: nil mask: %w", mask.ErrInvalidShape)
	}

	lm := newLabelMap(m.Height(), m.Width())

	// Resolve the caller's filter once so it can be composed.
	base := dfs.DefaultOptions()
	for _, fn := range opts {
		fn(&base)
	}
	accept := func(p mask.Pixel) bool {
		return lm.labels[lm.index(p)] == Background && (base.Filter == nil || base.Filter(p))
	}
	runOpts := make([]dfs.Option, 0, len(opts)+1)
	runOpts = append(runOpts, opts...)
	runOpts = append(runOpts, dfs.WithFilter(accept))

	comps := &Components{Labels: lm}
	for i := 0; i < m.Height(); i++ {
		for j := 0; j < m.Width(); j++ {
			p := mask.Pixel{I: i, J: j}
			if !m.At(p) || !accept(p) {
				continue // background, already labeled, or filtered out
			}

			res, err := dfs.DFS(m, p, runOpts...)
			if err != nil {
				return nil, fmt.Errorf("gridgraph: component %d at %v: %w", comps.NLabels+1, p, err)
			}

			comps.NLabels++
			for _, q := range res.Visited {
				lm.labels[lm.index(q)] = comps.NLabels
			}
			comps.Traversals = append(comps.Traversals, res)
		}
	}
	lm.n = comps.NLabels

	return comps, nil
}
