// Package gridgraph treats the foreground of a binary mask as an
// 8-connected graph of pixels, enabling component labeling and
// minimal-cost bridging between components.
//
// What:
//
//   - LabelComponents scans the mask row by row and runs one dfs.DFS per
//     undiscovered foreground pixel. Each run yields one component; its
//     pixels get the next label (1, 2, …) and its traversal is kept.
//   - LabelMap stores one label per pixel (Background = 0).
//   - Components.Bridge computes the fewest background pixels that must be
//     switched on to join two components (0-1 BFS).
//
// Why:
//
//   - Skeleton analysis: count strokes, pick one centerline per blob,
//     trace each component from its own spanning tree.
//   - Repair: close small gaps in a broken skeleton by bridging the
//     closest pair of components.
//
// Complexity:
//
//   - LabelComponents: O(W×H×8), Memory: O(W×H).
//   - Bridge:          O(W×H×8), Memory: O(W×H).
//
// Options:
//
//   - Any dfs.Option is forwarded to every traversal. A dfs.WithFilter
//     predicate also restricts which pixels are labeled at all.
//
// Errors:
//
//   - mask.ErrInvalidShape: nil input mask.
//   - ErrLabelOutOfRange: requested label not in 1..NLabels.
//   - ErrNoPath: no path exists between two components.
//   - mask.ErrBufferTooSmall: LabelMap.CopyTo buffer shorter than W×H.
package gridgraph
