package types

// Direction is a cardinal heading. None means "no move" or "no path".
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Cardinals lists the four headings in neighbour enumeration order
var Cardinals = [4]Direction{Up, Down, Left, Right}

var vectors = [...]Point{
	None:  {X: 0, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Vector returns the unit step for the direction, zero for None
func (d Direction) Vector() Point {
	if d < None || d > Right {
		return Point{}
	}
	return vectors[d]
}

// Opposite returns the reversed heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Perpendicular returns the two headings at right angles to d.
// Horizontal headings yield Up, Down; everything else yields Left, Right.
func (d Direction) Perpendicular() [2]Direction {
	if d == Left || d == Right {
		return [2]Direction{Up, Down}
	}
	return [2]Direction{Left, Right}
}

// Between returns the single step heading from one point to the next.
// The X axis is checked first; equal points give None.
func Between(from, to Point) Direction {
	switch {
	case from.X < to.X:
		return Right
	case from.X > to.X:
		return Left
	case from.Y > to.Y:
		return Up
	case from.Y < to.Y:
		return Down
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "NONE"
	}
}
