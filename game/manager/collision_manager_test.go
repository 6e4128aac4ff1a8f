package manager

import (
	"testing"

	"snake-pathfinder/game/entity"
	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/types"
)

func TestCheckCollision(t *testing.T) {
	g := grid.NewGrid(6, 6, true)
	cm := NewCollisionManager(g)

	s := entity.NewSnake(types.Point{X: 2, Y: 2}, types.Right, entity.Color{})
	if c := cm.CheckCollision(s); c != NoCollision {
		t.Errorf("Expected no collision, got %v", c)
	}

	s.Body[0] = types.Point{X: 5, Y: 2}
	if c := cm.CheckCollision(s); c != WallCollision {
		t.Errorf("Expected wall collision, got %v", c)
	}

	s.Body = []types.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}
	if c := cm.CheckCollision(s); c != SelfCollision {
		t.Errorf("Expected self collision, got %v", c)
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	g := grid.NewGrid(6, 6, true)
	cm := NewCollisionManager(g)
	s := entity.NewSnake(types.Point{X: 2, Y: 2}, types.Right, entity.Color{})
	food := []types.Point{{X: 3, Y: 3}}

	tests := []struct {
		pos  types.Point
		want bool
	}{
		{types.Point{X: 1, Y: 1}, true},
		{types.Point{X: 0, Y: 1}, false},
		{types.Point{X: 2, Y: 2}, false},
		{types.Point{X: 3, Y: 3}, false},
		{types.Point{X: 9, Y: 9}, false},
	}
	for _, tt := range tests {
		if got := cm.ValidateSpawnPosition(tt.pos, s, food); got != tt.want {
			t.Errorf("ValidateSpawnPosition(%v): expected %v, got %v", tt.pos, tt.want, got)
		}
	}
}

func TestCheckFoodCollisions(t *testing.T) {
	cm := NewCollisionManager(grid.NewGrid(6, 6, true))
	food := []types.Point{{X: 1, Y: 1}, {X: 4, Y: 4}}
	if hit, at := cm.CheckFoodCollisions(types.Point{X: 4, Y: 4}, food); !hit || at != food[1] {
		t.Errorf("Expected hit at %v, got %v %v", food[1], hit, at)
	}
	if hit, _ := cm.CheckFoodCollisions(types.Point{X: 2, Y: 4}, food); hit {
		t.Error("Expected no food hit")
	}
}
