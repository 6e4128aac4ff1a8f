package manager

import (
	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/types"
	"snake-pathfinder/logger"

	"golang.org/x/exp/rand"
)

const (
	randomAttemptFactor = 15 // attempts per requested wall in random scatter
	safeAttemptFactor   = 20 // attempts per requested wall in validated scatter
	minReachableRatio   = 0.5
	cornerArmLength     = 3
	maxSafeObstacles    = 15
)

// Predefined patterns for GeneratePattern
var (
	XPattern = []types.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	HPattern = []types.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}
)

// ObstacleManager places interior walls. Every strategy writes walls only
// onto EMPTY cells (or cells that already are walls), and every bounded
// loop gives up quietly, so fewer walls than requested is a normal outcome.
type ObstacleManager struct {
	grid *grid.Grid
	rng  *rand.Rand
}

func NewObstacleManager(g *grid.Grid, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		grid: g,
		rng:  rng,
	}
}

// intBetween draws uniformly from [lo, hi]; ok is false for an empty range
func (om *ObstacleManager) intBetween(lo, hi int) (int, bool) {
	if hi < lo {
		return 0, false
	}
	return lo + om.rng.Intn(hi-lo+1), true
}

// randomInterior samples from x in [2, w-3], y in [2, h-3], one cell clear of the border ring
func (om *ObstacleManager) randomInterior() (types.Point, bool) {
	x, okX := om.intBetween(2, om.grid.Width()-3)
	y, okY := om.intBetween(2, om.grid.Height()-3)
	return types.Point{X: x, Y: y}, okX && okY
}

// placeWall writes a wall unless the cell holds something other than a wall
func (om *ObstacleManager) placeWall(p types.Point) bool {
	if !om.grid.InBounds(p) {
		return false
	}
	switch om.grid.Cell(p) {
	case grid.Empty:
		om.grid.SetCell(p, grid.Wall)
		return true
	default:
		return false
	}
}

// GenerateRandomObstacles scatters up to count isolated walls on empty cells
func (om *ObstacleManager) GenerateRandomObstacles(count int) int {
	placed := 0
	maxAttempts := count * randomAttemptFactor
	for attempts := 0; placed < count && attempts < maxAttempts; attempts++ {
		pos, ok := om.randomInterior()
		if !ok {
			break
		}
		if om.placeWall(pos) {
			placed++
		}
	}
	return placed
}

// GenerateBlocks tries count rectangles with sides in [minSize, maxSize].
// A rectangle is placed only when every cell under it is empty.
func (om *ObstacleManager) GenerateBlocks(count, minSize, maxSize int) int {
	w, h := om.grid.Width(), om.grid.Height()
	placed := 0
	for i := 0; i < count; i++ {
		x, okX := om.intBetween(2, w-maxSize-1)
		y, okY := om.intBetween(2, h-maxSize-1)
		if !okX || !okY {
			break
		}
		bw, _ := om.intBetween(minSize, maxSize)
		bh, _ := om.intBetween(minSize, maxSize)
		bw = min(bw, w-x-2)
		bh = min(bh, h-y-2)
		if bw <= 0 || bh <= 0 {
			continue
		}

		if !om.rectEmpty(x, y, bw, bh) {
			continue
		}
		for yy := y; yy < y+bh; yy++ {
			for xx := x; xx < x+bw; xx++ {
				om.grid.SetCell(types.Point{X: xx, Y: yy}, grid.Wall)
			}
		}
		placed++
	}
	return placed
}

func (om *ObstacleManager) rectEmpty(x, y, w, h int) bool {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if om.grid.Cell(types.Point{X: xx, Y: yy}) != grid.Empty {
				return false
			}
		}
	}
	return true
}

// GenerateCenterCross draws a plus sign centred on the grid with arms of min(w,h)/6
func (om *ObstacleManager) GenerateCenterCross() int {
	cx, cy := om.grid.Width()/2, om.grid.Height()/2
	arm := min(om.grid.Width(), om.grid.Height()) / 6
	placed := 0
	for x := cx - arm; x <= cx+arm; x++ {
		if om.placeWall(types.Point{X: x, Y: cy}) {
			placed++
		}
	}
	for y := cy - arm; y <= cy+arm; y++ {
		if om.placeWall(types.Point{X: cx, Y: y}) {
			placed++
		}
	}
	return placed
}

// GenerateCornerObstacles puts an L of arm length 3 inside each corner
func (om *ObstacleManager) GenerateCornerObstacles() int {
	w, h := om.grid.Width(), om.grid.Height()
	size := cornerArmLength
	corners := []types.Point{
		{X: 2, Y: 2},
		{X: w - 2 - size, Y: 2},
		{X: 2, Y: h - 2 - size},
		{X: w - 2 - size, Y: h - 2 - size},
	}
	placed := 0
	for _, c := range corners {
		for i := 0; i < size; i++ {
			if om.placeWall(types.Point{X: c.X + i, Y: c.Y}) {
				placed++
			}
			if om.placeWall(types.Point{X: c.X, Y: c.Y + i}) {
				placed++
			}
		}
	}
	return placed
}

// GenerateMazeWalls visits a stride-2 lattice from (3,3); each lattice cell
// becomes a wall with probability density and extends one cell toward the
// first open direction of a shuffled cardinal set
func (om *ObstacleManager) GenerateMazeWalls(density float32) int {
	w, h := om.grid.Width(), om.grid.Height()
	placed := 0
	for y := 3; y < h-2; y += 2 {
		for x := 3; x < w-2; x += 2 {
			if om.rng.Float32() >= density {
				continue
			}
			if !om.placeWall(types.Point{X: x, Y: y}) {
				continue
			}
			placed++

			dirs := types.Cardinals
			om.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
			for _, d := range dirs {
				if om.placeWall(types.Point{X: x, Y: y}.Add(d.Vector())) {
					placed++
					break
				}
			}
		}
	}
	return placed
}

// GenerateSafeObstacles scatters up to count walls, reverting any placement
// that leaves less than half the interior reachable from start
func (om *ObstacleManager) GenerateSafeObstacles(start types.Point, count int) int {
	placed := 0
	maxAttempts := count * safeAttemptFactor
	for attempts := 0; placed < count && attempts < maxAttempts; attempts++ {
		pos, ok := om.randomInterior()
		if !ok {
			break
		}
		if !om.placeWall(pos) {
			continue
		}
		if om.CanReachAllAreas(start) {
			placed++
		} else {
			om.grid.SetCell(pos, grid.Empty)
		}
	}
	return placed
}

// GeneratePattern writes walls at offset+p for each pattern point
func (om *ObstacleManager) GeneratePattern(pattern []types.Point, offset types.Point) int {
	placed := 0
	for _, p := range pattern {
		if om.placeWall(offset.Add(p)) {
			placed++
		}
	}
	return placed
}

// ReachableCount flood-fills 4-connected non-wall cells from start.
// Each cell is visited at most once; a wall or out-of-bounds start reaches nothing.
func (om *ObstacleManager) ReachableCount(start types.Point) int {
	if om.grid.IsObstacle(start) {
		return 0
	}
	w := om.grid.Width()
	visited := make([]bool, w*om.grid.Height())
	queue := make([]types.Point, 0, 64)

	queue = append(queue, start)
	visited[start.Y*w+start.X] = true
	reachable := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range types.Cardinals {
			next := cur.Add(d.Vector())
			if om.grid.IsObstacle(next) {
				continue
			}
			idx := next.Y*w + next.X
			if visited[idx] {
				continue
			}
			visited[idx] = true
			reachable++
			queue = append(queue, next)
		}
	}
	return reachable
}

// CanReachAllAreas reports whether at least half of the (w-2)×(h-2) interior is reachable from start
func (om *ObstacleManager) CanReachAllAreas(start types.Point) bool {
	return float64(om.ReachableCount(start)) >= float64(om.grid.InteriorArea())*minReachableRatio
}

// GenerateForLevel applies the strategy table for level. Levels past 6 use
// validated scatter with min(level, 15) walls.
func (om *ObstacleManager) GenerateForLevel(level int, start types.Point) int {
	var requested, placed int
	strategy := ""
	switch level {
	case 1:
		strategy, requested = "random", 3
		placed = om.GenerateRandomObstacles(3)
	case 2:
		strategy, requested = "random", 5
		placed = om.GenerateRandomObstacles(5)
	case 3:
		strategy, requested = "blocks", 2
		placed = om.GenerateBlocks(2, 2, 3)
	case 4:
		strategy = "corners"
		placed = om.GenerateCornerObstacles()
	case 5:
		strategy, requested = "cross+random", 3
		om.GenerateCenterCross()
		placed = om.GenerateRandomObstacles(3)
	case 6:
		strategy = "maze"
		placed = om.GenerateMazeWalls(0.2)
	default:
		requested = min(level, maxSafeObstacles)
		strategy = "safe"
		placed = om.GenerateSafeObstacles(start, requested)
	}

	logger.Log.Debugw("obstacles generated", "level", level, "strategy", strategy, "requested", requested, "placed", placed)
	if requested > 0 && placed < requested {
		logger.Log.Infow("obstacle placement under-delivered", "level", level, "strategy", strategy, "requested", requested, "placed", placed)
	}
	return placed
}
