// Package board holds the logical occupancy grid of the play area
// The grid includes a one-cell border ring; game logic reads it for collisions
// and the renderer projects it onto the terminal
package board

import "github.com/lixenwraith/trophy-snake/core"

// Board is a bordered grid of cells stored row-major
type Board struct {
	rows, cols int
	cells      []Cell
}

// New creates a board of rows×cols including the border ring
func New(rows, cols int) *Board {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if b.Interior(core.Point{Row: r, Col: c}) {
				b.cells[r*cols+c] = CellEmpty
			} else {
				b.cells[r*cols+c] = CellBorder
			}
		}
	}
	return b
}

// Rows returns the full height including border
func (b *Board) Rows() int { return b.rows }

// Cols returns the full width including border
func (b *Board) Cols() int { return b.cols }

// Interior reports whether p is a playable cell
func (b *Board) Interior(p core.Point) bool {
	return p.Row >= 1 && p.Row < b.rows-1 && p.Col >= 1 && p.Col < b.cols-1
}

// InteriorRows returns the number of playable rows
func (b *Board) InteriorRows() int { return max(b.rows-2, 0) }

// InteriorCols returns the number of playable columns
func (b *Board) InteriorCols() int { return max(b.cols-2, 0) }

// Get returns the cell at p; anything outside the grid reads as border
func (b *Board) Get(p core.Point) Cell {
	if p.Row < 0 || p.Row >= b.rows || p.Col < 0 || p.Col >= b.cols {
		return CellBorder
	}
	return b.cells[p.Row*b.cols+p.Col]
}

// Set writes an interior cell
// Writes on or outside the border are dropped
// Returns false if the write was dropped
func (b *Board) Set(p core.Point, c Cell) bool {
	if !b.Interior(p) || c == CellBorder {
		return false
	}
	b.cells[p.Row*b.cols+p.Col] = c
	return true
}

// Count returns how many interior cells currently hold c
func (b *Board) Count(c Cell) int {
	n := 0
	b.EachInterior(func(_ core.Point, cell Cell) {
		if cell == c {
			n++
		}
	})
	return n
}

// Each visits every cell including the border in row-major order
func (b *Board) Each(fn func(p core.Point, c Cell)) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			fn(core.Point{Row: r, Col: c}, b.cells[r*b.cols+c])
		}
	}
}

// EachInterior visits every playable cell in row-major order
func (b *Board) EachInterior(fn func(p core.Point, c Cell)) {
	for r := 1; r < b.rows-1; r++ {
		for c := 1; c < b.cols-1; c++ {
			fn(core.Point{Row: r, Col: c}, b.cells[r*b.cols+c])
		}
	}
}

