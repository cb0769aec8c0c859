// Package thinning reduces the foreground of a binary mask to a
// 1-pixel-wide topological skeleton.
//
// What:
//
//   - Skeletonize runs the classical two-subiteration parallel thinning
//     algorithm (Zhang & Suen, CACM 1984) until a fixed point.
//   - Removable exposes the per-pixel deletion predicate for a given
//     sub-pass, so callers and tests can reason about single neighborhoods.
//
// How:
//
//  1. Copy the input into a grid padded by one background pixel per side.
//  2. Record the foreground coordinates once. Thinning only ever deletes,
//     so this list covers every pixel that can be foreground later; a
//     liveness check skips the ones already removed.
//  3. Each round: evaluate sub-pass 1 for every live candidate against the
//     same snapshot, delete the marked pixels, then do the same for
//     sub-pass 2 on the updated grid.
//  4. Stop after a round that deletes nothing and strip the padding.
//
// Predicates, for P = [N, NE, E, SE, S, SW, W, NW]:
//
//	A:  2 ≤ ΣP ≤ 6
//	B:  exactly one 0→1 transition around P (cyclic)
//	C:  sub-pass 1 ¬(N∧E∧S)   sub-pass 2 ¬(N∧E∧W)
//	D:  sub-pass 1 ¬(E∧S∧W)   sub-pass 2 ¬(N∧S∧W)
//
// Complexity:
//
//   - Time:   O(R × F), R = rounds, F = initial foreground count.
//   - Memory: O((H+2)×(W+2)) for the padded grid and the removal marks.
//
// Options:
//
//   - WithOnRound(fn)  observe removed/remaining counts after every round.
//
// Errors:
//
//   - mask.ErrInvalidShape  if the input mask is nil.
package thinning
