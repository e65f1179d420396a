package core

import "fmt"

// Point is a board coordinate; Row grows downward, Col grows rightward
type Point struct {
	Row, Col int
}

// Step returns the neighbouring point one cell in direction d
func (p Point) Step(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
