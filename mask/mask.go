package mask

import (
	"fmt"
	"strings"
)

// Mask is a rectangular binary grid. The zero value is not usable; build one
// with New, FromRows, FromSlice or Parse.
type Mask struct {
	height, width int
	pix           []bool // row-major, len == height*width
}

// New returns an all-background mask of the given size.
// Returns ErrInvalidShape if either dimension is < 1.
func New(height, width int) (*Mask, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %d×%d grid", ErrInvalidShape, height, width)
	}

	return &Mask{height: height, width: width, pix: make([]bool, height*width)}, nil
}

// FromRows copies a [][]bool into a new Mask.
// Returns ErrInvalidShape if rows is empty, the first row is empty,
// or any row length differs from the first.
// Complexity: O(H×W).
func FromRows(rows [][]bool) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidShape)
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidShape, i, len(row), w)
		}
	}
	m := &Mask{height: h, width: w, pix: make([]bool, h*w)}
	for i, row := range rows {
		copy(m.pix[i*w:(i+1)*w], row)
	}

	return m, nil
}

// FromSlice copies a row-major flat buffer of height×width elements.
// Returns ErrInvalidShape if a dimension is < 1 or len(pix) != height*width.
func FromSlice(pix []bool, height, width int) (*Mask, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %d×%d grid", ErrInvalidShape, height, width)
	}
	if len(pix) != height*width {
		return nil, fmt.Errorf("%w: buffer holds %d elements, %d×%d needs %d",
			ErrInvalidShape, len(pix), height, width, height*width)
	}
	m := &Mask{height: height, width: width, pix: make([]bool, len(pix))}
	copy(m.pix, pix)

	return m, nil
}

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Len returns Height()*Width().
func (m *Mask) Len() int { return len(m.pix) }

// InBounds reports whether p lies within the grid.
func (m *Mask) InBounds(p Pixel) bool {
	return p.I >= 0 && p.I < m.height && p.J >= 0 && p.J < m.width
}

// Index maps p to its row-major position i*W + j. p must be in bounds.
func (m *Mask) Index(p Pixel) int {
	return p.I*m.width + p.J
}

// PixelAt is the inverse of Index.
func (m *Mask) PixelAt(idx int) Pixel {
	return Pixel{I: idx / m.width, J: idx % m.width}
}

// At reports whether p is foreground. Pixels outside the grid are background.
func (m *Mask) At(p Pixel) bool {
	if !m.InBounds(p) {
		return false
	}

	return m.pix[m.Index(p)]
}

// Set assigns p. Coordinates outside the grid are ignored.
func (m *Mask) Set(p Pixel, v bool) {
	if !m.InBounds(p) {
		return
	}
	m.pix[m.Index(p)] = v
}

// Neighbors samples the 8-neighborhood of p, clockwise from North.
// Samples outside the grid read as background.
func (m *Mask) Neighbors(p Pixel) Neighbors {
	var nb Neighbors
	for k, d := range offsets {
		nb[k] = m.At(p.Add(d[0], d[1]))
	}

	return nb
}

// Count returns the number of foreground pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.pix {
		if v {
			n++
		}
	}

	return n
}

// Foreground returns the coordinates of all foreground pixels in row-major order.
func (m *Mask) Foreground() []Pixel {
	out := make([]Pixel, 0, m.Count())
	for idx, v := range m.pix {
		if v {
			out = append(out, m.PixelAt(idx))
		}
	}

	return out
}

// Clone returns a deep copy of m.
func (m *Mask) Clone() *Mask {
	c := &Mask{height: m.height, width: m.width, pix: make([]bool, len(m.pix))}
	copy(c.pix, m.pix)

	return c
}

// Equal reports whether o has the same shape and pixels as m.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.height != o.height || m.width != o.width {
		return false
	}
	for i, v := range m.pix {
		if o.pix[i] != v {
			return false
		}
	}

	return true
}

// Rows returns a freshly allocated [][]bool view of the mask.
func (m *Mask) Rows() [][]bool {
	rows := make([][]bool, m.height)
	for i := range rows {
		rows[i] = make([]bool, m.width)
		copy(rows[i], m.pix[i*m.width:(i+1)*m.width])
	}

	return rows
}

// CopyTo writes the mask row-major into dst.
// Returns ErrBufferTooSmall, leaving dst untouched, if len(dst) < H×W.
func (m *Mask) CopyTo(dst []bool) error {
	if len(dst) < len(m.pix) {
		return fmt.Errorf("%w: have %d, need %d", ErrBufferTooSmall, len(dst), len(m.pix))
	}
	copy(dst, m.pix)

	return nil
}

// String renders the mask one row per line, '#' for foreground and '.' for background.
func (m *Mask) String() string {
	var sb strings.Builder
	sb.Grow(m.height * (m.width + 1))
	for i := 0; i < m.height; i++ {
		for _, v := range m.pix[i*m.width : (i+1)*m.width] {
			if v {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
