package game

import (
	"testing"
	"time"

	"snake-pathfinder/game/manager"
)

func TestRunHeadless(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	opts := DefaultOptions()
	opts.Width, opts.Height = 16, 12
	opts.Seed = 11
	g := NewGame(opts, clock, nil, nil)

	sum := RunHeadless(g, clock, 300)

	if !g.AutoPlay() {
		t.Error("Expected autoplay switched on")
	}
	if sum.Ticks != 300 || sum.Rounds < 1 {
		t.Errorf("Unexpected summary %+v", sum)
	}
	finished := len(sum.History)
	if g.State() == manager.GameOver {
		if finished != sum.Rounds {
			t.Errorf("Expected every round recorded, got %d of %d", finished, sum.Rounds)
		}
	} else if finished != sum.Rounds-1 {
		t.Errorf("Expected %d finished rounds, got %d", sum.Rounds-1, finished)
	}
	for _, s := range sum.History {
		if s > sum.HighScore {
			t.Errorf("Expected high score %d to cover %d", sum.HighScore, s)
		}
	}
}

func TestRunHeadlessEatsFood(t *testing.T) {
	f := newFixture(t, nil)
	f.clearArena()
	g := f.game
	g.foodMgr.Place(g.Snake().GetHead().Add(g.Snake().Direction.Vector()))

	RunHeadless(g, f.clock, 1)

	if g.Score() != 1 {
		t.Errorf("Expected the adjacent food eaten, score %d", g.Score())
	}
}

func TestAverageScore(t *testing.T) {
	if got := averageScore(nil); got != 0 {
		t.Errorf("Expected 0 for no rounds, got %v", got)
	}
	if got := averageScore([]int{1, 2, 6}); got != 3 {
		t.Errorf("Expected 3, got %v", got)
	}
}
