package game

import "fmt"

// Matrix is the fixed-size playing field. Cells are stored row-major with
// row 0 at the bottom.
type Matrix struct {
	cells [Width * Height]bool
}

// NewMatrix returns a blank matrix.
func NewMatrix() Matrix {
	return Matrix{}
}

// index maps a coordinate to its cell index. An out-of-range coordinate is a
// caller bug and panics.
func index(c Coordinate) int {
	if !c.InBounds() {
		panic(fmt.Sprintf("game: coordinate (%d,%d) outside %dx%d matrix", c.X, c.Y, Width, Height))
	}
	return c.Y*Width + c.X
}

// Occupied reports whether the cell at c is filled. Panics if c is out of range.
func (m *Matrix) Occupied(c Coordinate) bool {
	return m.cells[index(c)]
}

// Set fills or empties the cell at c. Panics if c is out of range.
func (m *Matrix) Set(c Coordinate, occupied bool) {
	m.cells[index(c)] = occupied
}

// IsClipping reports whether the piece collides with the walls, the floor or
// a filled cell. Cells above the ceiling are free.
func (m *Matrix) IsClipping(p Piece) bool {
	for _, o := range p.Offsets() {
		if o.X < 0 || o.X >= Width || o.Y < 0 {
			return true
		}
		if o.Y >= Height {
			continue
		}
		if m.cells[o.Y*Width+o.X] {
			return true
		}
	}
	return false
}

// IsPlaceable reports whether the piece lies fully inside the matrix on empty
// cells, i.e. whether it may be locked where it is.
func (m *Matrix) IsPlaceable(p Piece) bool {
	cells, ok := p.Cells()
	if !ok {
		return false
	}
	for _, c := range cells {
		if m.Occupied(c) {
			return false
		}
	}
	return true
}

// rowFull reports whether every cell of row y is filled.
func (m *Matrix) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if !m.cells[y*Width+x] {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, drops the rows above it and returns
// the number of rows removed.
func (m *Matrix) ClearFullRows() int {
	cleared := 0
	dst := 0
	for y := 0; y < Height; y++ {
		if m.rowFull(y) {
			cleared++
			continue
		}
		if dst != y {
			copy(m.cells[dst*Width:(dst+1)*Width], m.cells[y*Width:(y+1)*Width])
		}
		dst++
	}
	for y := dst; y < Height; y++ {
		for x := 0; x < Width; x++ {
			m.cells[y*Width+x] = false
		}
	}
	return cleared
}

// FilledCount returns the number of filled cells.
func (m *Matrix) FilledCount() int {
	n := 0
	for _, filled := range m.cells {
		if filled {
			n++
		}
	}
	return n
}

// Rows returns a copy of the occupancy grid with the top row first, the order
// a renderer draws it in.
func (m *Matrix) Rows() [][]bool {
	rows := make([][]bool, Height)
	for i := range rows {
		y := Height - 1 - i
		rows[i] = make([]bool, Width)
		copy(rows[i], m.cells[y*Width:(y+1)*Width])
	}
	return rows
}
