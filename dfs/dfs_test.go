package dfs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morphgrid/dfs"
	"github.com/katalvlaran/morphgrid/mask"
)

// px is shorthand for a pixel literal.
func px(i, j int) mask.Pixel { return mask.Pixel{I: i, J: j} }

// priority lists the neighbor directions in visitation priority.
var priority = []mask.Pixel{
	{I: -1, J: 0}, {I: 0, J: -1}, {I: 1, J: 0}, {I: 0, J: 1}, // N W S E
	{I: -1, J: -1}, {I: -1, J: 1}, {I: 1, J: -1}, {I: 1, J: 1}, // NW NE SW SE
}

// reachable floods the 8-connected foreground from start with a plain BFS.
func reachable(m *mask.Mask, start mask.Pixel) map[mask.Pixel]bool {
	seen := map[mask.Pixel]bool{start: true}
	queue := []mask.Pixel{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for di := -1; di <= 1; di++ {
			for dj := -1; dj <= 1; dj++ {
				v := u.Add(di, dj)
				if v == u || !m.At(v) || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

func TestDFS_NilMask(t *testing.T) {
	res, err := dfs.DFS(nil, px(0, 0))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, mask.ErrInvalidShape)
}

func TestDFS_StartOutOfBounds(t *testing.T) {
	m := mask.MustParse("##\n##")
	for _, start := range []mask.Pixel{px(-1, 0), px(0, -1), px(2, 0), px(0, 2)} {
		res, err := dfs.DFS(m, start)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, mask.ErrInvalidCoordinate, "start %v", start)
	}
}

func TestDFS_BackgroundStart(t *testing.T) {
	m := mask.MustParse(`
		#...
		....
	`)
	res, err := dfs.DFS(m, px(1, 3))
	require.NoError(t, err)
	// The start is visited even though it is background; (0,0) is out of reach.
	assert.Equal(t, []mask.Pixel{px(1, 3)}, res.Visited)
	assert.Equal(t, []int{dfs.NoPredecessor}, res.Predecessors)
	assert.Equal(t, []int{0}, res.Leaves)
}

func TestDFS_BackgroundStartReachesForeground(t *testing.T) {
	m := mask.MustParse(`
		#..
		.#.
	`)
	res, err := dfs.DFS(m, px(0, 1))
	require.NoError(t, err)
	// W is popped before S; (1,1) is then reached diagonally from (0,0).
	assert.Equal(t, []mask.Pixel{px(0, 1), px(0, 0), px(1, 1)}, res.Visited)
	assert.Equal(t, []int{-1, 0, 1}, res.Predecessors)
	assert.Equal(t, []int{2}, res.Leaves)
}

func TestDFS_SinglePixel(t *testing.T) {
	m := mask.MustParse(`
		...
		.#.
		...
	`)
	res, err := dfs.DFS(m, px(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
	assert.Equal(t, []int{0}, res.Leaves)

	withRoot, err := dfs.DFS(m, px(1, 1), dfs.WithRootLeaf())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, withRoot.Leaves, "root leaf must not be listed twice")
}

// TestDFS_FullBlockOrder pins the exact traversal of a solid 3×3 from its center.
func TestDFS_FullBlockOrder(t *testing.T) {
	m := mask.MustParse(`
		###
		###
		###
	`)
	res, err := dfs.DFS(m, px(1, 1))
	require.NoError(t, err)

	assert.Equal(t, []mask.Pixel{
		px(1, 1), px(0, 1), px(0, 0), px(1, 0), px(2, 0),
		px(2, 1), px(2, 2), px(1, 2), px(0, 2),
	}, res.Visited)
	assert.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5, 6, 7}, res.Predecessors)
	assert.Equal(t, []int{8}, res.Leaves)
}

// TestDFS_NeighborPriority removes the higher-priority neighbors one by one
// and checks that the next one in N, W, S, E, NW, NE, SW, SE order is
// always the first pixel visited after the root.
func TestDFS_NeighborPriority(t *testing.T) {
	center := px(1, 1)
	for k := range priority {
		m, err := mask.New(3, 3)
		require.NoError(t, err)
		m.Set(center, true)
		for _, d := range priority[k:] {
			m.Set(center.Add(d.I, d.J), true)
		}

		res, err := dfs.DFS(m, center)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Len(), 2)
		want := center.Add(priority[k].I, priority[k].J)
		assert.Equal(t, want, res.Visited[1], "with priorities %d.. present", k)
		assert.Equal(t, 0, res.Predecessors[1])
	}
}

// TestDFS_StarOrder pins a branching traversal: predecessors and leaves.
func TestDFS_StarOrder(t *testing.T) {
	m := mask.MustParse(`
		#.#.#
		.###.
		#####
		.###.
		#.#.#
	`)
	res, err := dfs.DFS(m, px(2, 2))
	require.NoError(t, err)

	assert.Equal(t, []mask.Pixel{
		px(2, 2), px(1, 2), px(0, 2), px(1, 1), px(2, 1), px(2, 0),
		px(3, 1), px(3, 2), px(4, 2), px(3, 3), px(2, 3), px(1, 3),
		px(0, 4), px(2, 4), px(4, 4), px(4, 0), px(0, 0),
	}, res.Visited)
	assert.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 11, 9, 6, 3}, res.Predecessors)
	assert.Equal(t, []int{12, 13, 14, 15, 16}, res.Leaves)
}

// TestDFS_LineLeaves mirrors tracing a vertical 100-pixel line.
func TestDFS_LineLeaves(t *testing.T) {
	m, err := mask.New(420, 420)
	require.NoError(t, err)
	for i := 300; i < 400; i++ {
		m.Set(px(i, 300), true)
	}

	// From the top end: only the bottom end is a dead end.
	res, err := dfs.DFS(m, px(300, 300))
	require.NoError(t, err)
	assert.Equal(t, 100, res.Len())
	assert.Equal(t, []int{99}, res.Leaves)

	res, err = dfs.DFS(m, px(300, 300), dfs.WithRootLeaf())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 99}, res.Leaves)

	// From the middle: the walk goes north first, then south.
	res, err = dfs.DFS(m, px(333, 300), dfs.WithRootLeaf())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 33, 99}, res.Leaves)
	assert.Equal(t, px(300, 300), res.Visited[33])
	assert.Equal(t, px(399, 300), res.Visited[99])
}

// TestDFS_Block mirrors traversing a 100×50 block from its corner.
func TestDFS_Block(t *testing.T) {
	m, err := mask.New(420, 420)
	require.NoError(t, err)
	for i := 100; i < 200; i++ {
		for j := 100; j < 150; j++ {
			m.Set(px(i, j), true)
		}
	}
	for i := 200; i < 300; i++ {
		for j := 200; j < 220; j++ {
			m.Set(px(i, j), true)
		}
	}

	res, err := dfs.DFS(m, px(100, 100))
	require.NoError(t, err)
	require.Equal(t, 100*50, res.Len())
	assert.Equal(t, dfs.NoPredecessor, res.Predecessors[0])
	assert.Equal(t, 0, res.Predecessors[1])

	minP, maxP := res.Visited[0], res.Visited[0]
	for _, p := range res.Visited {
		minP.I, minP.J = min(minP.I, p.I), min(minP.J, p.J)
		maxP.I, maxP.J = max(maxP.I, p.I), max(maxP.J, p.J)
	}
	assert.Equal(t, px(100, 100), minP)
	assert.Equal(t, px(199, 149), maxP)
}

// TestDFS_RandomProperties checks completeness, tree validity and the
// dead-end definition of leaves on random masks.
func TestDFS_RandomProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 30; n++ {
		h, w := 1+rng.Intn(25), 1+rng.Intn(25)
		m, err := mask.New(h, w)
		require.NoError(t, err)
		for idx := 0; idx < m.Len(); idx++ {
			if rng.Float64() < 0.55 {
				m.Set(m.PixelAt(idx), true)
			}
		}
		fg := m.Foreground()
		if len(fg) == 0 {
			continue
		}
		start := fg[rng.Intn(len(fg))]

		res, err := dfs.DFS(m, start)
		require.NoError(t, err)

		// Completeness: exactly the reachable set, each pixel once.
		want := reachable(m, start)
		order := make(map[mask.Pixel]int, res.Len())
		for k, p := range res.Visited {
			_, dup := order[p]
			require.False(t, dup, "pixel %v visited twice", p)
			order[p] = k
		}
		assert.Equal(t, len(want), len(order))
		for p := range want {
			assert.Contains(t, order, p)
		}

		// Tree validity.
		require.Len(t, res.Predecessors, res.Len())
		assert.Equal(t, dfs.NoPredecessor, res.Predecessors[0])
		for k := 1; k < res.Len(); k++ {
			pred := res.Predecessors[k]
			require.True(t, pred >= 0 && pred < k, "predecessor %d of %d", pred, k)
			assert.True(t, res.Visited[pred].IsNeighbor(res.Visited[k]))
		}

		// Leaves: no neighbor visited later.
		for k, p := range res.Visited {
			later := false
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					if j, ok := order[p.Add(di, dj)]; ok && j > k {
						later = true
					}
				}
			}
			assert.Equal(t, !later, res.IsLeaf(k), "leaf status of %v", p)
		}
	}
}

func TestDFS_Filter(t *testing.T) {
	m := mask.MustParse(`
		####
	`)
	// Hide (0,2): the walk stops at (0,1).
	res, err := dfs.DFS(m, px(0, 0), dfs.WithFilter(func(p mask.Pixel) bool {
		return p != px(0, 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []mask.Pixel{px(0, 0), px(0, 1)}, res.Visited)
	assert.Equal(t, []int{1}, res.Leaves)

	// The start is visited even if the filter rejects it.
	res, err = dfs.DFS(m, px(0, 3), dfs.WithFilter(func(p mask.Pixel) bool {
		return p != px(0, 3)
	}))
	require.NoError(t, err)
	assert.Equal(t, px(0, 3), res.Visited[0])
	assert.Equal(t, 4, res.Len())
}

func TestDFS_OnVisit(t *testing.T) {
	m := mask.MustParse("#####")
	var seen []int
	res, err := dfs.DFS(m, px(0, 0), dfs.WithOnVisit(func(p mask.Pixel, index int) error {
		seen = append(seen, index)
		assert.Equal(t, px(0, index), p)

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.Equal(t, 5, res.Len())

	stop := errors.New("stop")
	res, err = dfs.DFS(m, px(0, 0), dfs.WithOnVisit(func(p mask.Pixel, index int) error {
		if index == 2 {
			return stop
		}

		return nil
	}))
	assert.Nil(t, res, "no partial result on hook error")
	assert.ErrorIs(t, err, stop)
	assert.ErrorContains(t, err, "OnVisit hook at (0,2)")
}

func TestDFSResult_Paths(t *testing.T) {
	// A "T": root at the top-left end of the bar.
	m := mask.MustParse(`
		#####
		..#..
		..#..
	`)
	res, err := dfs.DFS(m, px(0, 0), dfs.WithRootLeaf())
	require.NoError(t, err)

	paths := res.Paths()
	require.Len(t, paths, len(res.Leaves))
	for i, path := range paths {
		assert.Equal(t, px(0, 0), path[0], "path %d starts at root", i)
		assert.Equal(t, res.Visited[res.Leaves[i]], path[len(path)-1])
		for s := 1; s < len(path); s++ {
			assert.True(t, path[s-1].IsNeighbor(path[s]))
		}
	}

	_, err = res.PathTo(res.Len())
	assert.ErrorIs(t, err, dfs.ErrIndexOutOfRange)
	_, err = res.PathTo(-1)
	assert.ErrorIs(t, err, dfs.ErrIndexOutOfRange)

	root, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []mask.Pixel{px(0, 0)}, root)
}

// TestDFSResult_PathsMatchPathTo checks on random masks that Paths yields
// exactly one path per leaf and that each equals PathTo of that leaf.
func TestDFSResult_PathsMatchPathTo(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 20; n++ {
		h, w := 1+rng.Intn(20), 1+rng.Intn(20)
		m, err := mask.New(h, w)
		require.NoError(t, err)
		for idx := 0; idx < m.Len(); idx++ {
			if rng.Float64() < 0.5 {
				m.Set(m.PixelAt(idx), true)
			}
		}
		start := m.PixelAt(rng.Intn(m.Len()))

		for _, opts := range [][]dfs.Option{nil, {dfs.WithRootLeaf()}} {
			res, err := dfs.DFS(m, start, opts...)
			require.NoError(t, err)

			paths := res.Paths()
			require.Len(t, paths, len(res.Leaves))
			for i, leaf := range res.Leaves {
				want, err := res.PathTo(leaf)
				require.NoError(t, err)
				assert.Equal(t, want, paths[i], "leaf %d", leaf)
				assert.Equal(t, start, paths[i][0])
			}
		}
	}
}
