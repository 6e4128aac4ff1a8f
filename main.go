package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"snake-pathfinder/ai"
	"snake-pathfinder/audio"
	"snake-pathfinder/config"
	"snake-pathfinder/game"
	"snake-pathfinder/logger"
	"snake-pathfinder/ui"
	"snake-pathfinder/ui/term"
)

const (
	terminalFrame = 16 * time.Millisecond
	soundVolume   = 0.3
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	frontend := flag.String("ui", "", "Frontend: raylib, term or headless")
	autoplay := flag.Bool("autoplay", false, "Start with autoplay enabled")
	algo := flag.String("algo", "", "Pathfinding algorithm: bfs or dijkstra")
	speed := flag.Int("speed", 0, "Move delay in milliseconds (lower = faster)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	ticks := flag.Int("ticks", 0, "Moves to simulate in headless mode")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// flags win over the file when given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ui":
			cfg.UI.Frontend = *frontend
		case "autoplay":
			cfg.AutoPlay.Enabled = *autoplay
		case "algo":
			cfg.AutoPlay.Algorithm = *algo
		case "speed":
			cfg.Game.MoveDelayMs = *speed
		case "seed":
			cfg.Game.Seed = *seed
		case "ticks":
			cfg.Headless.Ticks = *ticks
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Log.Infow("starting", "frontend", cfg.UI.Frontend, "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"autoplay", cfg.AutoPlay.Enabled, "algorithm", cfg.AutoPlay.Algorithm)

	if cfg.UI.Frontend == "headless" {
		runHeadless(cfg)
		return
	}

	var sounds game.Sounds
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(soundVolume)
		if err := sm.Initialize(); err != nil {
			logger.Log.Warnw("audio disabled", "error", err)
		} else {
			defer sm.Close()
		}
		sounds = sm
	}

	switch cfg.UI.Frontend {
	case "term":
		t, err := term.Open()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		defer t.Close()
		g := game.NewGame(cfg.GameOptions(), game.SystemClock{}, t, sounds)
		run(g, t, t, terminalFrame)
	default:
		r := ui.NewRenderer(cfg.Window.Width, cfg.Window.Height, "Snake - "+algorithmTitle(cfg))
		defer r.Close()
		g := game.NewGame(cfg.GameOptions(), r, r, sounds)
		// raylib paces frames through SetTargetFPS
		run(g, r, r, 0)
	}
}

// run is the frame loop: poll input, update, render, then wait for the next frame
func run(g *game.Game, in game.InputSource, surface game.Surface, frame time.Duration) {
	for {
		for _, cmd := range in.Poll() {
			if !g.Handle(cmd) {
				logger.Log.Infow("quit", "round", g.UUID, "score", g.Score(), "history", g.ScoreHistory())
				return
			}
		}
		g.Update()
		g.Render(surface)
		if frame > 0 {
			time.Sleep(frame)
		}
	}
}

func runHeadless(cfg *config.Config) {
	clock := game.NewManualClock(time.Unix(0, 0))
	g := game.NewGame(cfg.GameOptions(), clock, nil, nil)
	sum := game.RunHeadless(g, clock, cfg.Headless.Ticks)
	fmt.Printf("ticks=%d rounds=%d high=%d avg=%.2f scores=%v\n", sum.Ticks, sum.Rounds, sum.HighScore, sum.AverageScore, sum.History)
}

func algorithmTitle(cfg *config.Config) string {
	algo, _ := ai.ParseAlgorithm(cfg.AutoPlay.Algorithm)
	if algo == ai.Dijkstra {
		return "Dijkstra Pathfinding"
	}
	return "BFS Pathfinding"
}
