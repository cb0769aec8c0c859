package mask

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all morphgrid packages.
var (
	// ErrInvalidShape indicates the input is not a well-formed, non-empty,
	// rectangular 2D grid.
	ErrInvalidShape = errors.New("mask: invalid shape")

	// ErrInvalidCoordinate indicates a pixel coordinate outside the grid.
	ErrInvalidCoordinate = errors.New("mask: coordinate out of bounds")

	// ErrBufferTooSmall indicates an output buffer with fewer than H×W elements.
	ErrBufferTooSmall = errors.New("mask: output buffer too small")
)

// Pixel is a grid coordinate: I is the row, J the column.
type Pixel struct {
	I, J int
}

// Add returns p shifted by (di, dj).
func (p Pixel) Add(di, dj int) Pixel {
	return Pixel{I: p.I + di, J: p.J + dj}
}

// IsNeighbor reports whether q is one of the 8 pixels surrounding p.
func (p Pixel) IsNeighbor(q Pixel) bool {
	di, dj := p.I-q.I, p.J-q.J
	if di == 0 && dj == 0 {
		return false
	}

	return di >= -1 && di <= 1 && dj >= -1 && dj <= 1
}

// String formats p as "(i,j)".
func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d)", p.I, p.J)
}

// Positions inside a Neighbors vector, clockwise from North.
const (
	N = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// offsets maps each Neighbors position to its (di, dj) displacement.
var offsets = [8][2]int{
	N:  {-1, 0},
	NE: {-1, 1},
	E:  {0, 1},
	SE: {1, 1},
	S:  {1, 0},
	SW: {1, -1},
	W:  {0, -1},
	NW: {-1, -1},
}

// Neighbors is the 8-neighborhood of a pixel in the order
// [N, NE, E, SE, S, SW, W, NW].
type Neighbors [8]bool

// Sum returns the number of foreground neighbors.
func (nb Neighbors) Sum() int {
	sum := 0
	for _, v := range nb {
		if v {
			sum++
		}
	}

	return sum
}

// Transitions counts background→foreground steps when walking the vector
// cyclically, i.e. the pairs (P0,P1), (P1,P2), …, (P7,P0).
func (nb Neighbors) Transitions() int {
	count := 0
	for k := range nb {
		if !nb[k] && nb[(k+1)%len(nb)] {
			count++
		}
	}

	return count
}
