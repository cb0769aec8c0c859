// Package mask defines the binary occupancy grid shared by every morphgrid
// algorithm, together with pixel coordinates and the 8-neighbor vector used
// by the thinning predicates.
//
// What:
//
//   - Mask: an H×W grid of booleans stored row-major (index i*W + j).
//     true is foreground, false is background.
//   - Pixel: an (I, J) row/column coordinate.
//   - Neighbors: the clockwise 8-tuple [N, NE, E, SE, S, SW, W, NW] sampled
//     around a pixel; reads outside the grid are background.
//
// Why:
//
//   - Thinning, traversal and labeling all need the same bounds checks,
//     flattening and neighbor sampling; keeping them in one place keeps the
//     algorithms free of index arithmetic.
//   - Constructors copy their input, so no operation ever aliases caller
//     memory or another operation's output.
//
// Boundary adapters:
//
//   - FromRows and FromSlice reject ragged or empty input before any
//     algorithm runs.
//   - CopyTo writes into a caller-owned flat buffer and refuses to write a
//     partial result when the buffer is too small.
//   - Parse and String use a '#'/'.' text form, handy for tests and fixtures.
//
// Complexity:
//
//   - At, Set, InBounds, Index, PixelAt, Neighbors: O(1).
//   - Count, Foreground, Clone, Equal, Rows, CopyTo: O(H×W).
//
// Errors:
//
//   - ErrInvalidShape       grid is empty, ragged, or sized inconsistently.
//   - ErrInvalidCoordinate  a pixel lies outside the grid.
//   - ErrBufferTooSmall     a caller buffer cannot hold H×W elements.
package mask
