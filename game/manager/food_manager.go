package manager

import (
	"snake-pathfinder/game/entity"
	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/types"
	"snake-pathfinder/logger"

	"golang.org/x/exp/rand"
)

// spawnAttempts bounds random sampling before falling back to a full scan
const spawnAttempts = 256

type FoodManager struct {
	grid         *grid.Grid
	rng          *rand.Rand
	foodList     []types.Point
	maxItems     int
	collisionMgr *CollisionManager
}

func NewFoodManager(g *grid.Grid, collisionMgr *CollisionManager, rng *rand.Rand, maxItems int) *FoodManager {
	return &FoodManager{
		grid:         g,
		rng:          rng,
		foodList:     make([]types.Point, 0, maxItems),
		maxItems:     maxItems,
		collisionMgr: collisionMgr,
	}
}

// Fill spawns food until the set is at capacity or no free cell remains
func (fm *FoodManager) Fill(snake *entity.Snake) {
	for len(fm.foodList) < fm.maxItems {
		if !fm.Spawn(snake) {
			return
		}
	}
}

// Spawn places one food item on a free interior cell. It returns false when
// the set is full or the grid has no free cell.
func (fm *FoodManager) Spawn(snake *entity.Snake) bool {
	if len(fm.foodList) >= fm.maxItems {
		return false
	}
	food, ok := fm.GenerateFood(snake)
	if !ok {
		logger.Log.Debugw("no free cell for food", "food", len(fm.foodList))
		return false
	}
	return fm.Place(food)
}

// Place adds food at p unless the set is full or p already holds food
func (fm *FoodManager) Place(p types.Point) bool {
	if len(fm.foodList) >= fm.maxItems || fm.Contains(p) {
		return false
	}
	fm.foodList = append(fm.foodList, p)
	fm.grid.SetCell(p, grid.Food)
	return true
}

// GenerateFood samples interior cells uniformly, then scans row by row once
// the sampling budget is spent
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	w, h := fm.grid.Width(), fm.grid.Height()
	if w < 3 || h < 3 {
		return types.Point{}, false
	}
	for i := 0; i < spawnAttempts; i++ {
		food := types.Point{
			X: 1 + fm.rng.Intn(w-2),
			Y: 1 + fm.rng.Intn(h-2),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake, fm.foodList) {
			return food, true
		}
	}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			food := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(food, snake, fm.foodList) {
				return food, true
			}
		}
	}
	return types.Point{}, false
}

func (fm *FoodManager) GetFoodList() []types.Point {
	return fm.foodList
}

func (fm *FoodManager) Contains(p types.Point) bool {
	for _, f := range fm.foodList {
		if f == p {
			return true
		}
	}
	return false
}

// RemoveFood drops food at p and empties its cell
func (fm *FoodManager) RemoveFood(food types.Point) {
	for i, f := range fm.foodList {
		if f == food {
			fm.grid.SetCell(food, grid.Empty)
			fm.foodList = append(fm.foodList[:i], fm.foodList[i+1:]...)
			return
		}
	}
}

// Prune removes food whose cell has been overwritten by a wall
func (fm *FoodManager) Prune() int {
	kept := fm.foodList[:0]
	removed := 0
	for _, f := range fm.foodList {
		if fm.grid.Cell(f) == grid.Wall {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	fm.foodList = kept
	return removed
}

// Closest returns the food nearest to pos by Manhattan distance; the first
// of equally near items wins
func (fm *FoodManager) Closest(pos types.Point) (types.Point, bool) {
	if len(fm.foodList) == 0 {
		return types.Point{}, false
	}
	closest := fm.foodList[0]
	best := pos.Manhattan(closest)
	for _, f := range fm.foodList[1:] {
		if d := pos.Manhattan(f); d < best {
			best = d
			closest = f
		}
	}
	return closest, true
}

func (fm *FoodManager) Clear() {
	fm.foodList = fm.foodList[:0]
}

// Draw stamps every food item onto the grid
func (fm *FoodManager) Draw() {
	for _, f := range fm.foodList {
		fm.grid.SetCell(f, grid.Food)
	}
}
