package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/morphgrid/mask"
)

// bridgeOffsets are the 8 neighbor steps, clockwise from North.
var bridgeOffsets = [8][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

// Bridge finds a cheapest 8-connected pixel path joining component src to
// component dst, where entering a foreground pixel costs 0 and entering a
// background pixel costs 1. The cost is the number of background pixels
// that must be switched on to merge the two components, e.g. to close a
// gap in a broken skeleton.
//
// Returns the path (from a src pixel to the first dst pixel reached) and
// its cost.
//
// Behavior:
//  1. Validate labels.
//  2. Multi‐source 0–1‐BFS from all src pixels in visit order:
//     • Moving into a foreground pixel  → cost 0
//     • Moving into a background pixel  → cost 1
//  3. Stop when any dst pixel is dequeued.
//  4. Reconstruct path via predecessors.
//
// Errors: ErrLabelOutOfRange for an invalid label, ErrNoPath if dst is unreachable.
//
// Time:   O(W·H) on average.
// Memory: O(W·H) for distance and predecessor arrays.
func (c *Components) Bridge(src, dst int) (path []mask.Pixel, cost int, err error) {
	srcTree, err := c.Component(src)
	if err != nil {
		return nil, 0, err
	}
	if _, err = c.Component(dst); err != nil {
		return nil, 0, err
	}

	lm := c.Labels
	n := lm.height * lm.width
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range srcTree.Visited {
		i := lm.index(p)
		dist[i] = 0
		dq.PushBack(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if lm.labels[u] == dst {
			target = u
			break
		}
		up := lm.pixel(u)
		for _, d := range bridgeOffsets {
			vp := up.Add(d[0], d[1])
			if !lm.InBounds(vp) {
				continue
			}
			v := lm.index(vp)
			step := 0
			if lm.labels[v] == Background {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, fmt.Errorf("%w: %d → %d", ErrNoPath, src, dst)
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, lm.pixel(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
