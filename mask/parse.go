package mask

import (
	"fmt"
	"strings"
)

// Parse builds a Mask from a text picture, one row per line.
// '#', '1' and 'x' mark foreground; '.' and '0' mark background.
// Blank lines and leading/trailing whitespace on each line are ignored,
// so the picture can be indented inside a Go raw string.
//
// Returns ErrInvalidShape for an empty picture, ragged rows,
// or an unrecognized character.
func Parse(s string) (*Mask, error) {
	var rows [][]bool
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for col, r := range line {
			switch r {
			case '#', '1', 'x':
				row = append(row, true)
			case '.', '0':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w: unexpected %q in row %d column %d",
					ErrInvalidShape, r, len(rows), col)
			}
		}
		rows = append(rows, row)
	}

	return FromRows(rows)
}

// MustParse is like Parse but panics on error. It is meant for fixtures
// whose text is known to be valid.
func MustParse(s string) *Mask {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}
