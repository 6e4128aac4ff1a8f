package types

// Point is a grid coordinate, origin top-left
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Less orders points lexicographically by X then Y
func (p Point) Less(o Point) bool {
	return p.X < o.X || (p.X == o.X && p.Y < o.Y)
}

// Manhattan returns the 4-connected distance between two points
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Game constants
const (
	DefaultWidth    = 40
	DefaultHeight   = 30
	MaxFoodItems    = 3   // Food items on the grid at once
	PointsPerLevel  = 5   // Score points per level step
	MoveDelayMillis = 150 // Minimum time between logical moves
)
