package entity

import (
	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake is the mover: Body[0] is the head, the last element is the tail.
// Body is never empty and consecutive segments are grid-adjacent.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Color     Color
	growing   bool
}

func NewSnake(startPos types.Point, dir types.Direction, color Color) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
		Color:     color,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments exposes the body for read-only callers such as the pathfinder
func (s *Snake) Segments() []types.Point {
	return s.Body
}

// Growing reports whether the next Move keeps the tail
func (s *Snake) Growing() bool {
	return s.growing
}

// Move advances the head one step along Direction. The tail is dropped
// unless growth is pending, in which case the flag is consumed instead.
// A None heading leaves the body untouched.
func (s *Snake) Move() {
	if s.Direction == types.None {
		return
	}
	newHead := s.GetHead().Add(s.Direction.Vector())

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	if s.growing {
		s.growing = false
		return
	}
	s.RemoveTail()
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow keeps the tail on the next Move
func (s *Snake) Grow() {
	s.growing = true
}

// SetDirection adopts dir unless it is the direct reversal of the current heading
func (s *Snake) SetDirection(dir types.Direction) {
	if s.Direction != types.None && dir == s.Direction.Opposite() {
		return
	}
	s.Direction = dir
}

// CheckWallCollision reports whether the head sits on a wall cell
func (s *Snake) CheckWallCollision(g *grid.Grid) bool {
	return g.Cell(s.GetHead()) == grid.Wall
}

// CheckSelfCollision reports whether the head overlaps any other segment.
// The body is examined as it is after the move, tail included.
func (s *Snake) CheckSelfCollision() bool {
	if len(s.Body) <= 1 {
		return false
	}
	head := s.GetHead()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is at p
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Draw stamps the body onto the grid
func (s *Snake) Draw(g *grid.Grid) {
	for _, p := range s.Body {
		g.SetCell(p, grid.Body)
	}
}
