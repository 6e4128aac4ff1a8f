// Package term is a terminal frontend for the game built on tcell.
package term

import (
	"fmt"

	"snake-pathfinder/game"
	"snake-pathfinder/game/grid"
	"snake-pathfinder/game/manager"
	"snake-pathfinder/game/types"

	"github.com/gdamore/tcell/v2"
)

// cellWidth columns per grid cell keep cells roughly square
const cellWidth = 2

var (
	styleWall  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBody  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePath  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHint  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleAlert = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Terminal draws frames to a tcell screen and reads commands from its
// event queue without blocking
type Terminal struct {
	screen    tcell.Screen
	width     int
	height    int
	scoreText string
	lastScore int
}

// Open creates and initialises the real terminal screen
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	return New(screen), nil
}

// New wraps an initialised screen
func New(screen tcell.Screen) *Terminal {
	screen.HideCursor()
	screen.Clear()
	t := &Terminal{screen: screen, lastScore: -1}
	t.UpdateScore(0)
	return t
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) UpdateScore(score int) {
	if score == t.lastScore {
		return
	}
	t.lastScore = score
	t.scoreText = fmt.Sprintf("Score: %d", score)
}

// Poll drains the pending events
func (t *Terminal) Poll() []game.Command {
	var cmds []game.Command
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if cmd, ok := commandForKey(ev); ok {
				cmds = append(cmds, cmd)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case nil:
			return append(cmds, game.CmdQuit)
		}
	}
	return cmds
}

func commandForKey(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.CmdUp, true
	case tcell.KeyDown:
		return game.CmdDown, true
	case tcell.KeyLeft:
		return game.CmdLeft, true
	case tcell.KeyRight:
		return game.CmdRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CmdQuit, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch ev.Rune() {
	case 'w', 'W':
		return game.CmdUp, true
	case 's', 'S':
		return game.CmdDown, true
	case 'a', 'A':
		return game.CmdLeft, true
	case 'd', 'D':
		return game.CmdRight, true
	case 'p', 'P':
		return game.CmdTogglePause, true
	case ' ':
		return game.CmdToggleAutoPlay, true
	case '1':
		return game.CmdSelectBFS, true
	case '2':
		return game.CmdSelectDijkstra, true
	case 'r', 'R':
		return game.CmdRestart, true
	case 'q', 'Q':
		return game.CmdQuit, true
	}
	return 0, false
}

func (t *Terminal) Begin(width, height int) {
	t.width, t.height = width, height
	t.screen.Clear()
}

func (t *Terminal) put(p types.Point, r rune, style tcell.Style) {
	x := p.X * cellWidth
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(x+i, p.Y, r, nil, style)
	}
}

func (t *Terminal) FillCell(p types.Point, c grid.Cell) {
	switch c {
	case grid.Wall:
		t.put(p, '█', styleWall)
	case grid.Body:
		t.put(p, '█', styleBody)
	case grid.Food:
		t.put(p, '●', styleFood)
	}
}

func (t *Terminal) FillPath(p types.Point) {
	t.put(p, '·', stylePath)
}

func (t *Terminal) End(status game.Status) {
	x := t.width*cellWidth + 2
	autoplay := "off"
	if status.AutoPlay {
		autoplay = "on"
	}
	lines := []string{
		t.scoreText,
		fmt.Sprintf("High: %d", status.HighScore),
		fmt.Sprintf("Level: %d", status.Level),
		fmt.Sprintf("Algorithm: %s", status.Algorithm),
		fmt.Sprintf("AutoPlay: %s", autoplay),
	}
	row := 0
	for _, line := range lines {
		t.drawText(x, row, line, styleText)
		row++
	}
	row++
	for _, hint := range []string{"wasd/arrows steer", "space autoplay", "1/2 bfs/dijkstra", "p pause  r restart", "q quit"} {
		t.drawText(x, row, hint, styleHint)
		row++
	}

	switch status.State {
	case manager.Paused:
		t.drawText(x, row+1, "PAUSED", styleAlert)
	case manager.GameOver:
		t.drawText(x, row+1, "GAME OVER", styleAlert)
	}
	t.screen.Show()
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
