package ui

import (
	"fmt"
	"time"

	"snake-pathfinder/game"
	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/manager"
	"snake-pathfinder/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 50 // rounds shown in the score graph
	borderPadding = 10
)

var (
	pathOverlay = rl.Color{R: 255, G: 255, B: 0, A: 80}
	bodyColor   = rl.Color{R: 0, G: 200, B: 0, A: 255}
	wallColor   = rl.Color{R: 128, G: 128, B: 128, A: 255}
	foodColor   = rl.Red
)

// Renderer is the raylib window frontend. It draws frames for the game,
// shows the HUD panel, and turns key presses into commands.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	statsPanel   int32
	graphWidth   int32
	graphHeight  int32
	offsetX      int32
	offsetY      int32

	scoreText string
	lastScore int
}

// NewRenderer opens the window. Close must be called when the loop ends.
func NewRenderer(width, height int, title string) *Renderer {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(60)
	// Esc is a quit command handled by Poll
	rl.SetExitKey(rl.KeyNull)

	r := &Renderer{lastScore: -1}
	r.UpdateScore(0)
	r.UpdateDimensions()
	return r
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

// Now is the raylib clock, in seconds since the window opened
func (r *Renderer) Now() time.Time {
	return time.Unix(0, 0).Add(time.Duration(rl.GetTime() * float64(time.Second)))
}

// UpdateScore rebuilds the score label only when the value changes
func (r *Renderer) UpdateScore(score int) {
	if score == r.lastScore {
		return
	}
	r.lastScore = score
	r.scoreText = fmt.Sprintf("Score: %d", score)
}

var keyBindings = []struct {
	keys []int32
	cmd  game.Command
}{
	{[]int32{rl.KeyW, rl.KeyUp}, game.CmdUp},
	{[]int32{rl.KeyS, rl.KeyDown}, game.CmdDown},
	{[]int32{rl.KeyA, rl.KeyLeft}, game.CmdLeft},
	{[]int32{rl.KeyD, rl.KeyRight}, game.CmdRight},
	{[]int32{rl.KeyP}, game.CmdTogglePause},
	{[]int32{rl.KeySpace}, game.CmdToggleAutoPlay},
	{[]int32{rl.KeyOne}, game.CmdSelectBFS},
	{[]int32{rl.KeyTwo}, game.CmdSelectDijkstra},
	{[]int32{rl.KeyR}, game.CmdRestart},
	{[]int32{rl.KeyQ, rl.KeyEscape}, game.CmdQuit},
}

// Poll returns the commands for keys pressed this frame, in binding order
func (r *Renderer) Poll() []game.Command {
	var cmds []game.Command
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if rl.IsKeyPressed(k) {
				cmds = append(cmds, b.cmd)
				break
			}
		}
	}
	if rl.WindowShouldClose() {
		cmds = append(cmds, game.CmdQuit)
	}
	return cmds
}

func (r *Renderer) Begin(width, height int) {
	if rl.IsWindowResized() {
		r.UpdateDimensions()
	}
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = min(availableWidth/int32(width), availableHeight/int32(height))
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.cellSize*int32(height)) / 2
}

func (r *Renderer) cellRect(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) FillCell(p types.Point, c grid.Cell) {
	x, y := r.cellRect(p)
	switch c {
	case grid.Wall:
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, wallColor)
	case grid.Body:
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, bodyColor)
	case grid.Food:
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, foodColor)
	default:
		rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.DarkGray)
	}
}

func (r *Renderer) FillPath(p types.Point) {
	x, y := r.cellRect(p)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, pathOverlay)
}

func (r *Renderer) End(status game.Status) {
	fontSize := min(r.screenHeight/40, r.statsPanel/12)
	lineHeight := fontSize + fontSize/2
	r.drawStatsPanel(status, fontSize, lineHeight)

	if status.State != manager.Running {
		msg := "PAUSED - P to resume"
		if status.State == manager.GameOver {
			msg = "GAME OVER - R to restart"
		}
		w := rl.MeasureText(msg, fontSize*2)
		rl.DrawText(msg, (r.gameWidth-w)/2, r.screenHeight/2-fontSize, fontSize*2, rl.White)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawStatsPanel(status game.Status, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	autoplay := "off"
	if status.AutoPlay {
		autoplay = "on"
	}
	lines := []string{
		r.scoreText,
		fmt.Sprintf("High: %d", status.HighScore),
		fmt.Sprintf("Level: %d", status.Level),
		fmt.Sprintf("Algorithm: %s", status.Algorithm),
		fmt.Sprintf("AutoPlay: %s", autoplay),
		fmt.Sprintf("State: %s", status.State),
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	statsY += lineHeight / 2
	for _, help := range []string{"WASD/Arrows: steer", "Space: autoplay", "1/2: BFS/Dijkstra", "P: pause  R: restart", "Q/Esc: quit"} {
		rl.DrawText(help, statsX, statsY, fontSize*3/4, rl.LightGray)
		statsY += lineHeight
	}

	r.drawScoreGraph(status.History, statsX, fontSize)
}

// drawScoreGraph plots the most recent round scores at the bottom of the panel
func (r *Renderer) drawScoreGraph(history []int, graphX, fontSize int32) {
	graphY := r.screenHeight - r.graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Rounds: %d", len(history)), graphX, r.screenHeight-fontSize-5, fontSize, rl.White)

	if len(history) > maxScores {
		history = history[len(history)-maxScores:]
	}
	if len(history) < 2 {
		return
	}

	maxScore, sum := 1, 0
	for _, s := range history {
		if s > maxScore {
			maxScore = s
		}
		sum += s
	}

	scale := func(i, s int) (int32, int32) {
		x := graphX + int32(float32(r.graphWidth)*float32(i)/float32(maxScores))
		y := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(s)/float32(maxScore))
		return x, y
	}
	for j := 1; j < len(history); j++ {
		x1, y1 := scale(j-1, history[j-1])
		x2, y2 := scale(j, history[j])
		rl.DrawLine(x1, y1, x2, y2, bodyColor)
	}

	// dashed average
	avg := float32(sum) / float32(len(history))
	avgY := graphY + r.graphHeight - int32(float32(r.graphHeight)*avg/float32(maxScore))
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Yellow)
	}
}
