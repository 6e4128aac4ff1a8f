package game

import (
	"snake-pathfinder/ai"
	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/manager"
	"snake-pathfinder/game/types"
)

// Status is the HUD snapshot handed to a Surface at the end of a frame
type Status struct {
	Score     int
	HighScore int
	Level     int
	Algorithm ai.Algorithm
	AutoPlay  bool
	State     manager.GameState
	History   []int
}

// Surface draws one frame. FillCell is called for every grid cell, FillPath
// for overlay cells that are still empty.
type Surface interface {
	Begin(width, height int)
	FillCell(p types.Point, c grid.Cell)
	FillPath(p types.Point)
	End(status Status)
}

// ScoreDisplay receives the score whenever it changes
type ScoreDisplay interface {
	UpdateScore(score int)
}

// InputSource yields the commands gathered since the last poll
type InputSource interface {
	Poll() []Command
}

type Sounds interface {
	Eat()
	LevelUp()
	GameOver()
}

type nopDisplay struct{}

func (nopDisplay) UpdateScore(int) {}

type nopSounds struct{}

func (nopSounds) Eat()      {}
func (nopSounds) LevelUp()  {}
func (nopSounds) GameOver() {}
