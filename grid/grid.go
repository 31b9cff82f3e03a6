// Package grid implements a dense two-dimensional boolean field
// and the text map format used to describe passable terrain.
//
// A cell at position p is stored at offset p.Row*width + p.Col.
// The same layout is used for maps and for any parallel field
// of the same shape, such as a visited set.
package grid

import "fmt"

// Pos holds a grid position.
type Pos struct {
	Row, Col uint32
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Bool2D holds a boolean value for every cell of a height×width grid.
// In a map, true means passable.
type Bool2D struct {
	height, width uint32
	values        []bool
}

// New returns a grid of the given dimensions with every cell false.
func New(height, width uint32) *Bool2D {
	return &Bool2D{
		height: height,
		width:  width,
		values: make([]bool, int(height)*int(width)),
	}
}

// Open returns a grid of the given dimensions with every cell true.
func Open(height, width uint32) *Bool2D {
	m := New(height, width)
	for i := range m.values {
		m.values[i] = true
	}
	return m
}

// Height returns the number of rows.
func (m *Bool2D) Height() uint32 {
	return m.height
}

// Width returns the number of columns.
func (m *Bool2D) Width() uint32 {
	return m.width
}

// In reports whether p lies inside the grid.
func (m *Bool2D) In(p Pos) bool {
	return p.Row < m.height && p.Col < m.width
}

func (m *Bool2D) offset(p Pos) int {
	return int(p.Row)*int(m.width) + int(p.Col)
}

// Get returns the value at p. It panics if p is outside the grid.
func (m *Bool2D) Get(p Pos) bool {
	if !m.In(p) {
		panic(fmt.Sprintf("grid: position %v out of range %dx%d", p, m.height, m.width))
	}
	return m.values[m.offset(p)]
}

// Set sets the value at p. It panics if p is outside the grid.
func (m *Bool2D) Set(p Pos, v bool) {
	if !m.In(p) {
		panic(fmt.Sprintf("grid: position %v out of range %dx%d", p, m.height, m.width))
	}
	m.values[m.offset(p)] = v
}

// Clear sets every cell to false. The backing storage is reused.
func (m *Bool2D) Clear() {
	clear(m.values)
}

// Equal reports whether m and m1 have the same shape and contents.
func (m *Bool2D) Equal(m1 *Bool2D) bool {
	if m.height != m1.height || m.width != m1.width {
		return false
	}
	for i, v := range m.values {
		if m1.values[i] != v {
			return false
		}
	}
	return true
}

// Neighbors appends to dst the axis-aligned neighbours of p
// that lie inside the grid and returns the result.
// They are produced in the order south, east, west, north,
// where south is the next row down.
func (m *Bool2D) Neighbors(p Pos, dst []Pos) []Pos {
	if p.Row+1 < m.height {
		dst = append(dst, Pos{p.Row + 1, p.Col})
	}
	if p.Col+1 < m.width {
		dst = append(dst, Pos{p.Row, p.Col + 1})
	}
	if p.Col > 0 {
		dst = append(dst, Pos{p.Row, p.Col - 1})
	}
	if p.Row > 0 {
		dst = append(dst, Pos{p.Row - 1, p.Col})
	}
	return dst
}
