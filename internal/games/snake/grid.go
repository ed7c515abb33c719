package snake

import "math/rand"

// Point is a cell coordinate on the board.
type Point struct {
	X, Y int
}

// Add returns p moved by one step in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Vector()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is the square board. Cells run from 0 to Size-1 on both axes.
type Grid struct {
	size int
}

// NewGrid creates a board with size cells per edge.
func NewGrid(size int) Grid {
	return Grid{size: max(size, 1)}
}

// Size returns the number of cells per edge.
func (g Grid) Size() int {
	return g.size
}

// CellCount returns the total number of cells.
func (g Grid) CellCount() int {
	return g.size * g.size
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// Center returns the middle cell.
func (g Grid) Center() Point {
	return Point{X: g.size / 2, Y: g.size / 2}
}

// RandomCell returns a uniformly random cell.
func (g Grid) RandomCell(rng *rand.Rand) Point {
	return Point{X: rng.Intn(g.size), Y: rng.Intn(g.size)}
}
