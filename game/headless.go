package game

import (
	"snake-pathfinder/game/manager"
	"snake-pathfinder/logger"
)

// Summary reports a headless run
type Summary struct {
	Ticks     int
	Rounds    int
	HighScore    int
	AverageScore float64
	History      []int
}

func averageScore(history []int) float64 {
	if len(history) == 0 {
		return 0
	}
	sum := 0
	for _, s := range history {
		sum += s
	}
	return float64(sum) / float64(len(history))
}

// RunHeadless drives g for the given number of moves on a manual clock.
// A finished round is logged and restarted. Autoplay is switched on if it
// was off.
func RunHeadless(g *Game, clock *ManualClock, ticks int) Summary {
	if !g.AutoPlay() {
		g.ToggleAutoPlay()
	}

	rounds := 1
	for i := 0; i < ticks; i++ {
		clock.Advance(g.MoveDelay())
		g.Update()
		if g.State() == manager.GameOver {
			logger.Log.Infow("headless round finished", "round", g.UUID, "tick", i, "score", g.Score(), "level", g.Level())
			if i < ticks-1 {
				g.Handle(CmdRestart)
				rounds++
			}
		}
	}

	if g.State() != manager.GameOver {
		logger.Log.Infow("headless run stopped", "round", g.UUID, "score", g.Score(), "level", g.Level())
	}
	history := g.ScoreHistory()
	return Summary{
		Ticks:        ticks,
		Rounds:       rounds,
		HighScore:    g.Status().HighScore,
		AverageScore: averageScore(history),
		History:      history,
	}
}
