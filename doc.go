// Package morphgrid is a binary-image morphology toolkit: it thins
// foreground regions to 1-pixel-wide skeletons, partitions them into
// 8-connected components, and records the traversal structure needed to
// rebuild centerline paths.
//
// What is in the box?
//
//	mask/      Mask, Pixel and Neighbors: the binary grid every algorithm shares
//	thinning/  Zhang–Suen parallel thinning (Skeletonize)
//	dfs/       explicit-stack 8-connected depth-first traversal + path rebuild
//	gridgraph/ component labeling (LabelComponents) and gap bridging (Bridge)
//	maskio/    PNG / BMP / TIFF ⇄ Mask and LabelMap
//	cmd/morphgrid skeletonize, label and trace from the command line
//
// Guarantees:
//
//   - Every call is synchronous, deterministic and allocates its own
//     result; inputs are never mutated and nothing is shared between calls.
//   - Invalid shapes and coordinates are reported as wrapped sentinel
//     errors (mask.ErrInvalidShape, mask.ErrInvalidCoordinate, …).
//
// Quick ASCII example:
//
//	.#.        ...
//	###   →    .#.
//	.#.        ...
//
// thins a plus sign to its center pixel.
//
//	go get github.com/katalvlaran/morphgrid
package morphgrid
