// Package dfs implements depth‑first traversal of the 8‑connected
// foreground of a binary mask, recording everything needed to rebuild
// paths through the traversed component.
//
// What:
//
//   - DFS(m, start, opts...): explicit‑stack traversal from start. Returns
//     the visitation order, a spanning tree (predecessor indices) and the
//     dead‑end pixels ("leaves").
//   - DFSResult.PathTo / Paths: walk predecessors back to the root, giving
//     the root→leaf branches of a skeleton's centerline.
//
// Why:
//
//   - Skeleton post‑processing: trace centerlines, find end points and
//     branch tips before vectorization.
//   - Component labeling: gridgraph runs one DFS per component and keeps
//     the traversal as the component's spanning tree.
//
// Determinism:
//
//	Neighbors are generated N, W, S, E, NW, NE, SW, SE and pushed in
//	reverse, so a pop always prefers axis neighbors over diagonals and
//	follows that order within each group. This fixes which of the many
//	valid spanning trees is produced.
//
// Key Types & Constants:
//
//   - DFSOptions, Option: Filter, OnVisit hook, RootLeaf reporting.
//   - DFSResult: Visited, Predecessors, Leaves.
//   - NoPredecessor (-1): predecessor of the root.
//
// Complexity:
//
//   - DFS:    Time O(P) for P pixels reached (8 neighbor checks each),
//     Memory O(H×W) for the dense visited flags plus O(P) stack.
//   - PathTo: Time O(path length).
//
// Errors:
//
//   - mask.ErrInvalidShape       nil mask.
//   - mask.ErrInvalidCoordinate  start outside the grid.
//   - ErrIndexOutOfRange         PathTo with an index outside Visited.
//   - hook errors                propagated from OnVisit, wrapped.
package dfs
