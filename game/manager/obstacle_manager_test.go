package manager

import (
	"testing"

	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/types"

	"golang.org/x/exp/rand"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func countWalls(g *grid.Grid) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Cell(types.Point{X: x, Y: y}) == grid.Wall {
				n++
			}
		}
	}
	return n
}

func snapshot(g *grid.Grid) map[types.Point]grid.Cell {
	cells := make(map[types.Point]grid.Cell)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := types.Point{X: x, Y: y}
			cells[p] = g.Cell(p)
		}
	}
	return cells
}

// assertOnlyEmptyBecameWall fails if any cell changed other than EMPTY -> WALL
func assertOnlyEmptyBecameWall(t *testing.T, before map[types.Point]grid.Cell, g *grid.Grid) {
	t.Helper()
	for p, was := range before {
		now := g.Cell(p)
		if now == was {
			continue
		}
		if was != grid.Empty || now != grid.Wall {
			t.Errorf("Cell %v changed from %v to %v", p, was, now)
		}
	}
}

func TestRandomObstaclesOnlyOnEmptyCells(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		g := grid.NewGrid(20, 15, true)
		for x := 2; x < 18; x += 2 {
			g.SetCell(types.Point{X: x, Y: 5}, grid.Body)
			g.SetCell(types.Point{X: x, Y: 9}, grid.Food)
		}
		before := snapshot(g)
		walls := countWalls(g)

		om := NewObstacleManager(g, newRNG(seed))
		placed := om.GenerateRandomObstacles(40)

		assertOnlyEmptyBecameWall(t, before, g)
		if got := countWalls(g) - walls; got != placed {
			t.Errorf("seed %d: expected %d new walls, got %d", seed, placed, got)
		}
	}
}

func TestRandomObstaclesGiveUpOnFullGrid(t *testing.T) {
	g := grid.NewGrid(10, 10, true)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			g.SetCell(types.Point{X: x, Y: y}, grid.Body)
		}
	}
	om := NewObstacleManager(g, newRNG(7))
	if placed := om.GenerateRandomObstacles(10); placed != 0 {
		t.Errorf("Expected 0 placements on a full grid, got %d", placed)
	}
	if placed := om.GenerateSafeObstacles(types.Point{X: 4, Y: 4}, 10); placed != 0 {
		t.Errorf("Expected 0 safe placements on a full grid, got %d", placed)
	}
}

func TestTinyGridPlacesNothing(t *testing.T) {
	g := grid.NewGrid(4, 4, true)
	om := NewObstacleManager(g, newRNG(3))
	if placed := om.GenerateRandomObstacles(5); placed != 0 {
		t.Errorf("Expected no room for random walls, got %d", placed)
	}
	if placed := om.GenerateBlocks(3, 2, 4); placed != 0 {
		t.Errorf("Expected no room for blocks, got %d", placed)
	}
}

func TestReachableCount(t *testing.T) {
	g := grid.NewGrid(7, 7, true)
	// Split the 5x5 interior with a wall column at x=3
	for y := 1; y < 6; y++ {
		g.SetCell(types.Point{X: 3, Y: y}, grid.Wall)
	}
	om := NewObstacleManager(g, newRNG(1))

	if n := om.ReachableCount(types.Point{X: 1, Y: 1}); n != 10 {
		t.Errorf("Expected 10 reachable cells on the left side, got %d", n)
	}
	if n := om.ReachableCount(types.Point{X: 3, Y: 3}); n != 0 {
		t.Errorf("Expected 0 reachable from a wall, got %d", n)
	}
	if n := om.ReachableCount(types.Point{X: -1, Y: 3}); n != 0 {
		t.Errorf("Expected 0 reachable from out of bounds, got %d", n)
	}
	// 10 of 25 is below half
	if om.CanReachAllAreas(types.Point{X: 1, Y: 1}) {
		t.Error("Expected left half to fail the 50% check")
	}

	g.SetCell(types.Point{X: 3, Y: 3}, grid.Empty)
	if n := om.ReachableCount(types.Point{X: 1, Y: 1}); n != 21 {
		t.Errorf("Expected 21 reachable cells through the gap, got %d", n)
	}
	if !om.CanReachAllAreas(types.Point{X: 1, Y: 1}) {
		t.Error("Expected connected interior to pass the 50% check")
	}
}

func TestSafeObstaclesKeepHalfReachable(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		g := grid.NewGrid(16, 12, true)
		start := types.Point{X: 8, Y: 6}
		om := NewObstacleManager(g, newRNG(seed))
		om.GenerateBlocks(6, 2, 4)
		if !om.CanReachAllAreas(start) {
			continue
		}
		before := snapshot(g)

		placed := om.GenerateSafeObstacles(start, 15)

		assertOnlyEmptyBecameWall(t, before, g)
		if placed > 15 {
			t.Errorf("seed %d: placed %d walls, more than requested", seed, placed)
		}
		reach := om.ReachableCount(start)
		if float64(reach) < 0.5*float64(g.InteriorArea()) {
			t.Errorf("seed %d: reachable %d below half of %d", seed, reach, g.InteriorArea())
		}
		if g.Cell(start) == grid.Wall {
			t.Errorf("seed %d: wall placed on the start cell", seed)
		}
	}
}

func TestSafeObstaclesRevertWhenAlreadyCramped(t *testing.T) {
	g := grid.NewGrid(10, 10, true)
	for y := 1; y < 9; y++ {
		g.SetCell(types.Point{X: 3, Y: y}, grid.Wall)
	}
	start := types.Point{X: 1, Y: 1}
	om := NewObstacleManager(g, newRNG(11))
	walls := countWalls(g)

	if placed := om.GenerateSafeObstacles(start, 5); placed != 0 {
		t.Errorf("Expected every placement reverted, got %d", placed)
	}
	if countWalls(g) != walls {
		t.Errorf("Expected wall count %d unchanged, got %d", walls, countWalls(g))
	}
}

func TestBlocksAreWholeRectangles(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		g := grid.NewGrid(20, 16, true)
		g.SetCell(types.Point{X: 6, Y: 6}, grid.Body)
		g.SetCell(types.Point{X: 10, Y: 8}, grid.Food)
		before := snapshot(g)

		om := NewObstacleManager(g, newRNG(seed))
		om.GenerateBlocks(4, 2, 3)

		assertOnlyEmptyBecameWall(t, before, g)
		for x := 1; x < g.Width()-1; x++ {
			if g.Cell(types.Point{X: x, Y: 1}) == grid.Wall {
				t.Errorf("seed %d: block touches the row next to the border at x=%d", seed, x)
			}
		}
		for y := 1; y < g.Height()-1; y++ {
			if g.Cell(types.Point{X: 1, Y: y}) == grid.Wall {
				t.Errorf("seed %d: block touches the column next to the border at y=%d", seed, y)
			}
		}
	}
}

func TestCenterCross(t *testing.T) {
	g := grid.NewGrid(30, 30, true)
	om := NewObstacleManager(g, newRNG(1))
	if placed := om.GenerateCenterCross(); placed != 21 {
		t.Errorf("Expected 21 cross cells, got %d", placed)
	}
	for i := 10; i <= 20; i++ {
		if g.Cell(types.Point{X: 15, Y: i}) != grid.Wall {
			t.Errorf("Expected vertical arm wall at (15,%d)", i)
		}
		if g.Cell(types.Point{X: i, Y: 15}) != grid.Wall {
			t.Errorf("Expected horizontal arm wall at (%d,15)", i)
		}
	}
}

func TestCornerObstacles(t *testing.T) {
	g := grid.NewGrid(20, 20, true)
	om := NewObstacleManager(g, newRNG(1))
	if placed := om.GenerateCornerObstacles(); placed != 20 {
		t.Errorf("Expected 20 corner cells, got %d", placed)
	}
	for _, c := range []types.Point{{X: 2, Y: 2}, {X: 15, Y: 2}, {X: 2, Y: 15}, {X: 15, Y: 15}} {
		for i := 0; i < 3; i++ {
			if g.Cell(types.Point{X: c.X + i, Y: c.Y}) != grid.Wall || g.Cell(types.Point{X: c.X, Y: c.Y + i}) != grid.Wall {
				t.Errorf("Expected L-shape at corner %v", c)
			}
		}
	}
}

func TestMazeWallsDensity(t *testing.T) {
	g := grid.NewGrid(15, 15, true)
	om := NewObstacleManager(g, newRNG(5))
	if placed := om.GenerateMazeWalls(0); placed != 0 {
		t.Errorf("Expected no walls at density 0, got %d", placed)
	}

	placed := om.GenerateMazeWalls(1)
	for y := 3; y < 13; y += 2 {
		for x := 3; x < 13; x += 2 {
			if g.Cell(types.Point{X: x, Y: y}) != grid.Wall {
				t.Errorf("Expected lattice wall at (%d,%d)", x, y)
			}
		}
	}
	// 25 lattice cells, each with at most one extension
	if placed < 25 || placed > 50 {
		t.Errorf("Expected between 25 and 50 walls, got %d", placed)
	}
}

func TestGeneratePattern(t *testing.T) {
	g := grid.NewGrid(10, 10, true)
	om := NewObstacleManager(g, newRNG(1))
	if placed := om.GeneratePattern(HPattern, types.Point{X: 3, Y: 3}); placed != len(HPattern) {
		t.Errorf("Expected %d walls, got %d", len(HPattern), placed)
	}
	if placed := om.GeneratePattern(XPattern, types.Point{X: 9, Y: 9}); placed != 0 {
		t.Errorf("Expected pattern clipped by border, got %d", placed)
	}
}

func TestGenerateForLevel(t *testing.T) {
	start := types.Point{X: 20, Y: 15}
	tests := []struct {
		level   int
		minWall int
		maxWall int
	}{
		{1, 0, 3},
		{2, 0, 5},
		{4, 20, 20},
		{7, 0, 7},
		{20, 0, 15},
	}
	for _, tt := range tests {
		g := grid.NewGrid(40, 30, true)
		om := NewObstacleManager(g, newRNG(uint64(tt.level)))
		border := countWalls(g)

		om.GenerateForLevel(tt.level, start)

		added := countWalls(g) - border
		if added < tt.minWall || added > tt.maxWall {
			t.Errorf("level %d: expected %d..%d walls, got %d", tt.level, tt.minWall, tt.maxWall, added)
		}
		if tt.level >= 7 && !om.CanReachAllAreas(start) {
			t.Errorf("level %d: expected validated placement to keep the grid open", tt.level)
		}
	}
}
