package manager

import (
	"snake-pathfinder/game/entity"
	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid *grid.Grid
}

func NewCollisionManager(g *grid.Grid) *CollisionManager {
	return &CollisionManager{
		grid: g,
	}
}

// CheckCollision classifies the snake's post-move head. Walls are checked first.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if snake.CheckWallCollision(cm.grid) {
		return WallCollision
	}
	if snake.CheckSelfCollision() {
		return SelfCollision
	}
	return NoCollision
}

// ValidateSpawnPosition checks if a position is free for a new food item:
// an empty cell, off the body, and not already holding food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, foodList []types.Point) bool {
	if cm.grid.Cell(pos) != grid.Empty {
		return false
	}
	if snake != nil && snake.Occupies(pos) {
		return false
	}
	for _, f := range foodList {
		if f == pos {
			return false
		}
	}
	return true
}

// CheckFoodCollisions checks if the head landed on any food
func (cm *CollisionManager) CheckFoodCollisions(pos types.Point, foodList []types.Point) (bool, types.Point) {
	for _, food := range foodList {
		if pos == food {
			return true, food
		}
	}
	return false, types.Point{}
}
