package grid

import "snake-pathfinder/game/types"

// Cell is the occupancy class of one grid position
type Cell int

const (
	Empty Cell = iota
	Wall
	Body
	Food
)

func (c Cell) String() string {
	switch c {
	case Wall:
		return "WALL"
	case Body:
		return "BODY"
	case Food:
		return "FOOD"
	default:
		return "EMPTY"
	}
}

// Grid is a fixed width×height occupancy map. Out-of-bounds reads report Wall
// and out-of-bounds writes are dropped, so the world edge behaves as a wall.
// Not safe for concurrent use.
type Grid struct {
	width  int
	height int
	cells  []Cell
	path   []types.Point
}

// NewGrid allocates an empty grid, optionally walled along its edges
func NewGrid(width, height int, border bool) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	if border {
		g.InitializeBorder()
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside [0,width)×[0,height)
func (g *Grid) InBounds(p types.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Cell returns the class at p, Wall when out of bounds
func (g *Grid) Cell(p types.Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y*g.width+p.X]
}

// SetCell writes c at p; no-op when out of bounds
func (g *Grid) SetCell(p types.Point, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y*g.width+p.X] = c
}

// IsObstacle reports whether p is a wall (including out of bounds)
func (g *Grid) IsObstacle(p types.Point) bool {
	return g.Cell(p) == Wall
}

// InitializeBorder writes walls along the four edges
func (g *Grid) InitializeBorder() {
	for x := 0; x < g.width; x++ {
		g.SetCell(types.Point{X: x, Y: 0}, Wall)
		g.SetCell(types.Point{X: x, Y: g.height - 1}, Wall)
	}
	for y := 0; y < g.height; y++ {
		g.SetCell(types.Point{X: 0, Y: y}, Wall)
		g.SetCell(types.Point{X: g.width - 1, Y: y}, Wall)
	}
}

// Clear sets every non-wall cell to fill. Walls survive so border and
// obstacles persist across per-frame redraws.
func (g *Grid) Clear(fill Cell) {
	for i, c := range g.cells {
		if c != Wall {
			g.cells[i] = fill
		}
	}
}

// ClearObstacles removes walls from interior cells, leaving the outer ring alone
func (g *Grid) ClearObstacles() {
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			i := y*g.width + x
			if g.cells[i] == Wall {
				g.cells[i] = Empty
			}
		}
	}
}

// InteriorArea is the cell count inside the outer ring, (width-2)×(height-2)
func (g *Grid) InteriorArea() int {
	if g.width < 2 || g.height < 2 {
		return 0
	}
	return (g.width - 2) * (g.height - 2)
}

// SetPath stores the route shown by the path overlay
func (g *Grid) SetPath(path []types.Point) {
	g.path = append(g.path[:0], path...)
}

// ClearPath drops the overlay route
func (g *Grid) ClearPath() {
	g.path = g.path[:0]
}

// Path returns the overlay route; callers must not modify it
func (g *Grid) Path() []types.Point {
	return g.path
}
