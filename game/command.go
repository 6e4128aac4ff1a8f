package game

type Command int

const (
	CmdUp Command = iota
	CmdDown
	CmdLeft
	CmdRight
	CmdTogglePause
	CmdToggleAutoPlay
	CmdSelectBFS
	CmdSelectDijkstra
	CmdRestart
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdTogglePause:
		return "pause"
	case CmdToggleAutoPlay:
		return "autoplay"
	case CmdSelectBFS:
		return "bfs"
	case CmdSelectDijkstra:
		return "dijkstra"
	case CmdRestart:
		return "restart"
	case CmdQuit:
		return "quit"
	}
	return "unknown"
}
