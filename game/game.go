package game

import (
	"fmt"
	"strings"
	"time"

	"snake-pathfinder/ai"
	"snake-pathfinder/game/entity"
	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/manager"
	"snake-pathfinder/game/types"
	"snake-pathfinder/logger"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// ReplanPolicy decides when autoplay recomputes its route
type ReplanPolicy int

const (
	// ReplanEveryTick searches again before every move
	ReplanEveryTick ReplanPolicy = iota
	// ReplanOnFood follows the cached route until it is used up or invalidated
	ReplanOnFood
)

func (r ReplanPolicy) String() string {
	if r == ReplanOnFood {
		return "food"
	}
	return "tick"
}

func ParseReplan(name string) (ReplanPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "tick":
		return ReplanEveryTick, nil
	case "food":
		return ReplanOnFood, nil
	default:
		return ReplanEveryTick, fmt.Errorf("unknown replan policy %q", name)
	}
}

var snakeColor = entity.Color{R: 0, G: 200, B: 0}

type Options struct {
	Width          int
	Height         int
	Border         bool
	MoveDelay      time.Duration
	MaxFood        int
	PointsPerLevel int
	// Seed 0 seeds from the wall clock
	Seed      uint64
	AutoPlay  bool
	Algorithm ai.Algorithm
	Replan    ReplanPolicy
}

func DefaultOptions() Options {
	return Options{
		Width:          types.DefaultWidth,
		Height:         types.DefaultHeight,
		Border:         true,
		MoveDelay:      types.MoveDelayMillis * time.Millisecond,
		MaxFood:        types.MaxFoodItems,
		PointsPerLevel: types.PointsPerLevel,
		Algorithm:      ai.BFS,
		Replan:         ReplanEveryTick,
	}
}

// Game owns the grid, the snake and the managers, and runs one move per
// elapsed move delay. It is driven from a single goroutine.
type Game struct {
	UUID string

	opts       Options
	grid       *grid.Grid
	snake      *entity.Snake
	rng        *rand.Rand
	algorithm  ai.Algorithm
	pathfinder ai.Pathfinder
	autoPlay   bool

	currentPath       []types.Direction
	currentPathPoints []types.Point

	clock    Clock
	lastMove time.Time
	display  ScoreDisplay
	sounds   Sounds

	stateMgr     *manager.StateManager
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	obstacleMgr  *manager.ObstacleManager
}

// NewGame builds a running game at level 1. Nil collaborators fall back to
// the system clock and silent no-op implementations.
func NewGame(opts Options, clock Clock, display ScoreDisplay, sounds Sounds) *Game {
	def := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.MoveDelay <= 0 {
		opts.MoveDelay = def.MoveDelay
	}
	if opts.MaxFood <= 0 {
		opts.MaxFood = def.MaxFood
	}
	if opts.PointsPerLevel <= 0 {
		opts.PointsPerLevel = def.PointsPerLevel
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if display == nil {
		display = nopDisplay{}
	}
	if sounds == nil {
		sounds = nopSounds{}
	}

	g := &Game{
		opts:      opts,
		grid:      grid.NewGrid(opts.Width, opts.Height, opts.Border),
		rng:       rand.New(rand.NewSource(seed)),
		algorithm: opts.Algorithm,
		autoPlay:  opts.AutoPlay,
		clock:     clock,
		display:   display,
		sounds:    sounds,
		stateMgr:  manager.NewStateManager(opts.PointsPerLevel),
	}
	g.pathfinder = ai.New(g.algorithm)
	g.snake = entity.NewSnake(g.center(), types.Right, snakeColor)
	g.collisionMgr = manager.NewCollisionManager(g.grid)
	g.foodMgr = manager.NewFoodManager(g.grid, g.collisionMgr, g.rng, opts.MaxFood)
	g.obstacleMgr = manager.NewObstacleManager(g.grid, g.rng)

	logger.Log.Debugw("game created", "width", opts.Width, "height", opts.Height, "seed", seed,
		"algorithm", g.algorithm, "replan", opts.Replan)
	g.startRound()
	return g
}

func (g *Game) center() types.Point {
	return types.Point{X: g.grid.Width() / 2, Y: g.grid.Height() / 2}
}

func (g *Game) startRound() {
	g.UUID = uuid.New().String()
	g.populateLevel()
	logger.Log.Infow("round started", "round", g.UUID, "autoplay", g.autoPlay, "algorithm", g.algorithm)
}

// refreshGrid restamps food and body over a grid cleared of everything but walls
func (g *Game) refreshGrid() {
	g.grid.Clear(grid.Empty)
	g.foodMgr.Draw()
	g.snake.Draw(g.grid)
}

// populateLevel places the current level's obstacles around the live snake
// and food, then tops the food set back up
func (g *Game) populateLevel() {
	g.refreshGrid()
	g.obstacleMgr.GenerateForLevel(g.stateMgr.Level(), g.snake.GetHead())
	if n := g.foodMgr.Prune(); n > 0 {
		logger.Log.Debugw("food displaced by obstacles", "count", n)
	}
	g.foodMgr.Fill(g.snake)
	g.refreshGrid()
}

func (g *Game) invalidatePath() {
	g.currentPath = nil
	g.currentPathPoints = nil
	g.grid.ClearPath()
}

// Update performs at most one move, and only once the move delay has elapsed
// since the previous one. Nothing happens unless the game is running.
func (g *Game) Update() {
	if g.stateMgr.State() != manager.Running {
		return
	}
	now := g.clock.Now()
	if now.Sub(g.lastMove) < g.opts.MoveDelay {
		return
	}
	g.lastMove = now
	g.step()
}

func (g *Game) step() {
	if g.autoPlay {
		if g.opts.Replan == ReplanEveryTick || len(g.currentPath) == 0 {
			g.updatePathfinding()
		}
		if next := g.nextAIMove(); next != types.None {
			g.snake.SetDirection(next)
		}
	}

	g.snake.Move()

	if c := g.collisionMgr.CheckCollision(g.snake); c != manager.NoCollision {
		g.stateMgr.EndGame()
		g.sounds.GameOver()
		logger.Log.Infow("game over", "round", g.UUID, "cause", c,
			"score", g.stateMgr.Score(), "level", g.stateMgr.Level(), "length", g.snake.Len())
		return
	}

	if hit, food := g.collisionMgr.CheckFoodCollisions(g.snake.GetHead(), g.foodMgr.GetFoodList()); hit {
		g.snake.Grow()
		score := g.stateMgr.AddPoint()
		g.display.UpdateScore(score)
		g.sounds.Eat()

		g.foodMgr.RemoveFood(food)
		g.refreshGrid()
		g.foodMgr.Spawn(g.snake)
		g.invalidatePath()
	}

	if g.stateMgr.CheckLevelUp() {
		g.grid.Clear(grid.Empty)
		g.grid.ClearObstacles()
		g.populateLevel()
		g.invalidatePath()
		g.sounds.LevelUp()
		logger.Log.Infow("level up", "round", g.UUID, "level", g.stateMgr.Level(), "score", g.stateMgr.Score())
		return
	}

	g.refreshGrid()
}

// FindClosestFood returns the food nearest to pos by Manhattan distance
func (g *Game) FindClosestFood(pos types.Point) (types.Point, bool) {
	return g.foodMgr.Closest(pos)
}

// updatePathfinding routes the head to the nearest food and stores both the
// route and its directions. A missing food or route clears the cache.
func (g *Game) updatePathfinding() {
	head := g.snake.GetHead()
	goal, ok := g.FindClosestFood(head)
	if !ok {
		g.invalidatePath()
		return
	}

	points := g.pathfinder.FindPath(head, goal, g.grid, g.snake)
	if len(points) == 0 {
		logger.Log.Debugw("no path", "head", head, "target", goal, "algorithm", g.algorithm)
		g.invalidatePath()
		return
	}

	g.currentPath = ai.PathToDirections(points, head)
	g.currentPathPoints = points
	g.grid.SetPath(points)
	logger.Log.Debugw("path", "head", head, "target", goal, "heading", g.snake.Direction,
		"length", len(points), "first", points[0], "algorithm", g.algorithm)
}

// nextAIMove steers the snake along the first planned step. A rejected
// reversal on a short snake turns to the first open perpendicular instead;
// on a longer snake the current heading is kept.
func (g *Game) nextAIMove() types.Direction {
	if len(g.currentPath) == 0 {
		return types.None
	}

	planned := g.currentPath[0]
	oldDir := g.snake.Direction
	g.snake.SetDirection(planned)

	if g.snake.Direction != planned {
		if g.snake.Len() < 3 {
			head := g.snake.GetHead()
			for _, alt := range oldDir.Perpendicular() {
				next := head.Add(alt.Vector())
				if g.grid.InBounds(next) && g.grid.Cell(next) != grid.Wall {
					g.snake.SetDirection(alt)
					break
				}
			}
			logger.Log.Debugw("reversal rejected", "planned", planned, "heading", g.snake.Direction)
		}
		g.currentPath = nil
		return g.snake.Direction
	}

	if g.opts.Replan == ReplanOnFood {
		g.currentPath = g.currentPath[1:]
		g.currentPathPoints = g.currentPathPoints[1:]
		g.grid.SetPath(g.currentPathPoints)
	} else {
		// the overlay stays until the next search replaces it
		g.currentPath = nil
	}
	return g.snake.Direction
}

// Handle applies one input command and reports whether the loop should keep going
func (g *Game) Handle(cmd Command) bool {
	switch cmd {
	case CmdUp, CmdDown, CmdLeft, CmdRight:
		if !g.autoPlay && g.stateMgr.State() == manager.Running {
			g.snake.SetDirection(commandDirection(cmd))
		}
	case CmdTogglePause:
		g.stateMgr.TogglePause()
	case CmdToggleAutoPlay:
		g.updatePathfinding()
		g.ToggleAutoPlay()
	case CmdSelectBFS:
		g.SetAlgorithm(ai.BFS)
	case CmdSelectDijkstra:
		g.SetAlgorithm(ai.Dijkstra)
	case CmdRestart:
		if g.stateMgr.State() == manager.GameOver {
			g.Reset()
		}
	case CmdQuit:
		return false
	}
	return true
}

func commandDirection(cmd Command) types.Direction {
	switch cmd {
	case CmdUp:
		return types.Up
	case CmdDown:
		return types.Down
	case CmdLeft:
		return types.Left
	case CmdRight:
		return types.Right
	}
	return types.None
}

func (g *Game) ToggleAutoPlay() {
	g.autoPlay = !g.autoPlay
	g.invalidatePath()
	logger.Log.Debugw("autoplay toggled", "enabled", g.autoPlay)
}

// SetAlgorithm swaps the pathfinder and drops the cached route
func (g *Game) SetAlgorithm(algo ai.Algorithm) {
	if g.algorithm == algo {
		return
	}
	g.algorithm = algo
	g.pathfinder = ai.New(algo)
	g.invalidatePath()
	logger.Log.Debugw("pathfinding algorithm switched", "algorithm", algo)
}

// Reset starts a fresh round at level 1 with the configured algorithm.
// High score and history carry over.
func (g *Game) Reset() {
	g.stateMgr.Reset()
	g.display.UpdateScore(0)

	g.foodMgr.Clear()
	g.grid.Clear(grid.Empty)
	g.grid.ClearObstacles()
	if g.opts.Border {
		g.grid.InitializeBorder()
	}
	g.snake = entity.NewSnake(g.center(), types.Right, snakeColor)

	g.algorithm = g.opts.Algorithm
	g.pathfinder = ai.New(g.algorithm)
	g.invalidatePath()
	g.lastMove = time.Time{}

	g.startRound()
}

// Render draws the grid, then the route overlay on cells that are still
// empty while autoplay is on, then hands the HUD status to the surface
func (g *Game) Render(s Surface) {
	g.refreshGrid()

	w, h := g.grid.Width(), g.grid.Height()
	s.Begin(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := types.Point{X: x, Y: y}
			s.FillCell(p, g.grid.Cell(p))
		}
	}
	if g.autoPlay {
		for _, p := range g.grid.Path() {
			if g.grid.Cell(p) == grid.Empty {
				s.FillPath(p)
			}
		}
	}
	s.End(g.Status())
}

func (g *Game) Status() Status {
	return Status{
		Score:     g.stateMgr.Score(),
		HighScore: g.stateMgr.GetHighScore(),
		Level:     g.stateMgr.Level(),
		Algorithm: g.algorithm,
		AutoPlay:  g.autoPlay,
		State:     g.stateMgr.State(),
		History:   g.stateMgr.GetScoreHistory(),
	}
}

func (g *Game) State() manager.GameState { return g.stateMgr.State() }
func (g *Game) Score() int               { return g.stateMgr.Score() }
func (g *Game) Level() int               { return g.stateMgr.Level() }
func (g *Game) AutoPlay() bool           { return g.autoPlay }
func (g *Game) Algorithm() ai.Algorithm  { return g.algorithm }
func (g *Game) Snake() *entity.Snake     { return g.snake }
func (g *Game) Grid() *grid.Grid         { return g.grid }
func (g *Game) Food() []types.Point      { return g.foodMgr.GetFoodList() }
func (g *Game) Path() []types.Point      { return g.currentPathPoints }
func (g *Game) ScoreHistory() []int      { return g.stateMgr.GetScoreHistory() }
func (g *Game) MoveDelay() time.Duration { return g.opts.MoveDelay }
