package dfs

import (
	"fmt"

	"github.com/katalvlaran/morphgrid/mask"
)

// neighborOrder is the visitation priority: axis neighbors first
// (N, W, S, E), then diagonals (NW, NE, SW, SE). Pixels are pushed in
// reverse of this order so the LIFO stack pops them in it.
var neighborOrder = [8][2]int{
	{-1, 0},  // N
	{0, -1},  // W
	{1, 0},   // S
	{0, 1},   // E
	{-1, -1}, // NW
	{-1, 1},  // NE
	{1, -1},  // SW
	{1, 1},   // SE
}

// frame is one stack entry: a pixel and the visit index that discovered it.
type frame struct {
	p    mask.Pixel
	pred int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	m       *mask.Mask
	opts    DFSOptions
	visited []bool // dense, keyed by m.Index
	res     *DFSResult
}

// DFS runs a depth-first traversal of m from start and returns the
// visitation order, the spanning-tree predecessors and the dead-end leaves.
//
// start must lie inside m; it is visited even when it is background.
// Returns mask.ErrInvalidShape for a nil mask, mask.ErrInvalidCoordinate for
// an out-of-bounds start, or the wrapped error of an OnVisit hook. No partial
// result is returned on error.
func DFS(m *mask.Mask, start mask.Pixel, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if m == nil {
		return nil, fmt.Errorf("dfs: nil mask: %w", mask.ErrInvalidShape)
	}
	if !m.InBounds(start) {
		return nil, fmt.Errorf("dfs: start %v outside %d×%d grid: %w",
			start, m.Height(), m.Width(), mask.ErrInvalidCoordinate)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize walker
	w := &dfsWalker{
		m:       m,
		opts:    dopts,
		visited: make([]bool, m.Len()),
		res: &DFSResult{
			Visited:      make([]mask.Pixel, 0, 64),
			Predecessors: make([]int, 0, 64),
		},
	}
	if dopts.RootLeaf {
		w.res.Leaves = append(w.res.Leaves, 0)
	}

	// 4. Traverse
	if err := w.run(start); err != nil {
		return nil, err
	}

	return w.res, nil
}

// foreground reports whether p takes part in this traversal.
func (w *dfsWalker) foreground(p mask.Pixel) bool {
	if !w.m.At(p) {
		return false
	}

	return w.opts.Filter == nil || w.opts.Filter(p)
}

// run drains the stack seeded with start.
func (w *dfsWalker) run(start mask.Pixel) error {
	stack := []frame{{p: start, pred: NoPredecessor}}
	var pending [8]mask.Pixel

	for len(stack) > 0 {
		// 1. Pop
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 2. A pixel may be pushed by several neighbors before it is reached
		idx := w.m.Index(top.p)
		if w.visited[idx] {
			continue
		}

		// 3. Visit
		k := len(w.res.Visited)
		w.res.Visited = append(w.res.Visited, top.p)
		w.res.Predecessors = append(w.res.Predecessors, top.pred)
		w.visited[idx] = true

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.p, k); err != nil {
				return fmt.Errorf("dfs: OnVisit hook at %v: %w", top.p, err)
			}
		}

		// 4. Collect unvisited foreground neighbors in priority order
		n := 0
		for _, d := range neighborOrder {
			q := top.p.Add(d[0], d[1])
			if !w.m.InBounds(q) || w.visited[w.m.Index(q)] || !w.foreground(q) {
				continue
			}
			pending[n] = q
			n++
		}

		// 5. Push in reverse so the first-priority neighbor is popped first
		for i := n - 1; i >= 0; i-- {
			stack = append(stack, frame{p: pending[i], pred: k})
		}

		// 6. Dead end
		if n == 0 && !(w.opts.RootLeaf && k == 0) {
			w.res.Leaves = append(w.res.Leaves, k)
		}
	}

	return nil
}
