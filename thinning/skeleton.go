package thinning

import (
	"fmt"

	"github.com/katalvlaran/morphgrid/mask"
)

// Skeletonize thins the foreground of m to a 1-pixel-wide skeleton and
// returns it as a new mask of the same shape. m is not modified.
// The result is deterministic and Skeletonize(Skeletonize(m)) equals
// Skeletonize(m).
func Skeletonize(m *mask.Mask, opts ...Option) (*mask.Mask, error) {
	// 1. Validate input
	if m == nil {
		return nil, fmt.Errorf("thinning: nil mask: %w", mask.ErrInvalidShape)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Pad so every neighborhood sample stays inside the grid
	grid, err := pad(m)
	if err != nil {
		return nil, fmt.Errorf("thinning: %w", err)
	}

	// 4. Fixed candidate list: the foreground can only shrink
	candidates := grid.Foreground()
	remaining := len(candidates)
	marks := make([]bool, grid.Len())

	// 5. Rounds until nothing is removed
	for round := 1; ; round++ {
		removed := subIterate(grid, candidates, marks, FirstPass)
		removed += subIterate(grid, candidates, marks, SecondPass)
		remaining -= removed
		if o.OnRound != nil {
			o.OnRound(round, removed, remaining)
		}
		if removed == 0 {
			break
		}
	}

	// 6. Strip padding
	return crop(grid, m.Height(), m.Width())
}

// Removable reports whether a foreground pixel with neighborhood nb is
// deleted in the given sub-pass (conditions A, B, C and D all hold).
func Removable(nb mask.Neighbors, pass SubPass) bool {
	sum := nb.Sum()
	if sum < 2 || sum > 6 {
		return false
	}
	if nb.Transitions() != 1 {
		return false
	}
	if pass == FirstPass {
		return !(nb[mask.N] && nb[mask.E] && nb[mask.S]) &&
			!(nb[mask.E] && nb[mask.S] && nb[mask.W])
	}

	return !(nb[mask.N] && nb[mask.E] && nb[mask.W]) &&
		!(nb[mask.N] && nb[mask.S] && nb[mask.W])
}

// subIterate marks every live candidate that is removable against the
// current grid, then deletes all marked pixels at once. It returns the
// number of deletions and leaves marks cleared.
func subIterate(grid *mask.Mask, candidates []mask.Pixel, marks []bool, pass SubPass) int {
	removed := 0
	for _, p := range candidates {
		if !grid.At(p) {
			continue // deleted in an earlier pass
		}
		if Removable(grid.Neighbors(p), pass) {
			marks[grid.Index(p)] = true
			removed++
		}
	}
	if removed == 0 {
		return 0
	}
	for _, p := range candidates {
		idx := grid.Index(p)
		if marks[idx] {
			grid.Set(p, false)
			marks[idx] = false
		}
	}

	return removed
}

// pad copies m into a grid with a one-pixel background border.
func pad(m *mask.Mask) (*mask.Mask, error) {
	grid, err := mask.New(m.Height()+2, m.Width()+2)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Height(); i++ {
		for j := 0; j < m.Width(); j++ {
			p := mask.Pixel{I: i, J: j}
			if m.At(p) {
				grid.Set(p.Add(1, 1), true)
			}
		}
	}

	return grid, nil
}

// crop removes the border added by pad.
func crop(grid *mask.Mask, height, width int) (*mask.Mask, error) {
	out, err := mask.New(height, width)
	if err != nil {
		return nil, fmt.Errorf("thinning: %w", err)
	}
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			p := mask.Pixel{I: i, J: j}
			if grid.At(p.Add(1, 1)) {
				out.Set(p, true)
			}
		}
	}

	return out, nil
}
