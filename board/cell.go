package board

import "github.com/lixenwraith/trophy-snake/parameter"

// Cell is the content of one board square, stored as the glyph it renders as
type Cell rune

const (
	CellEmpty   Cell = parameter.GlyphEmpty
	CellSegment Cell = parameter.GlyphSegment
	// CellBorder marks the frame; it is never empty and never writable
	CellBorder Cell = '#'
)

// TrophyCell returns the cell for a trophy of value v (1-9)
func TrophyCell(v int) Cell {
	return Cell('0' + v)
}

// IsTrophy reports whether the cell holds a trophy digit
func (c Cell) IsTrophy() bool {
	return c >= '1' && c <= '9'
}

// TrophyValue returns the trophy digit value, or 0 for non-trophy cells
func (c Cell) TrophyValue() int {
	if !c.IsTrophy() {
		return 0
	}
	return int(c - '0')
}
