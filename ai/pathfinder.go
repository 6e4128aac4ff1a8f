package ai

import (
	"fmt"
	"strings"

	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/types"
)

// Algorithm selects a concrete pathfinder
type Algorithm int

const (
	BFS Algorithm = iota
	Dijkstra
)

func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	default:
		return "bfs"
	}
}

// ParseAlgorithm maps a config name to an Algorithm
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bfs":
		return BFS, nil
	case "dijkstra":
		return Dijkstra, nil
	default:
		return BFS, fmt.Errorf("unknown pathfinding algorithm %q", name)
	}
}

// Occupancy is the read-only grid view a search needs
type Occupancy interface {
	Width() int
	Height() int
	InBounds(p types.Point) bool
	Cell(p types.Point) grid.Cell
}

// Mover exposes the snake body, head first
type Mover interface {
	Segments() []types.Point
}

// Pathfinder computes a walkable route from start to goal.
// The result excludes start and ends at goal; it is empty when the goal
// is unreachable or equal to start.
type Pathfinder interface {
	FindPath(start, goal types.Point, g Occupancy, m Mover) []types.Point
}

// New returns the pathfinder for algo, falling back to BFS
func New(algo Algorithm) Pathfinder {
	switch algo {
	case BFS:
		return &BFSPathfinder{}
	case Dijkstra:
		return &DijkstraPathfinder{}
	default:
		return &BFSPathfinder{}
	}
}

// Neighbors returns the walkable cardinal neighbours of p in Up, Down, Left, Right order.
// A neighbour is walkable when it is in bounds, not a wall, and not part of the body.
// The tail of a multi-segment body is exempt because it vacates on the same tick
// the head would arrive.
func Neighbors(p types.Point, g Occupancy, m Mover) []types.Point {
	out := make([]types.Point, 0, len(types.Cardinals))
	return appendNeighbors(out, p, g, m.Segments())
}

func appendNeighbors(out []types.Point, p types.Point, g Occupancy, body []types.Point) []types.Point {
	blocking := body
	if len(blocking) > 1 {
		blocking = blocking[:len(blocking)-1]
	}
	for _, d := range types.Cardinals {
		next := p.Add(d.Vector())
		if !g.InBounds(next) || g.Cell(next) == grid.Wall {
			continue
		}
		if contains(blocking, next) {
			continue
		}
		out = append(out, next)
	}
	return out
}

func contains(points []types.Point, p types.Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}

// PathToDirections converts a route into single-step headings starting at start
func PathToDirections(path []types.Point, start types.Point) []types.Direction {
	if len(path) == 0 {
		return nil
	}
	dirs := make([]types.Direction, 0, len(path))
	cur := start
	for _, next := range path {
		dirs = append(dirs, types.Between(cur, next))
		cur = next
	}
	return dirs
}

// reconstruct walks predecessor links back from goal and returns start-exclusive order
func reconstruct(cameFrom []int, goalIdx, startIdx, width int) []types.Point {
	var path []types.Point
	for idx := goalIdx; idx != startIdx; idx = cameFrom[idx] {
		path = append(path, types.Point{X: idx % width, Y: idx / width})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
