package manager

// GameState is the controller's run state
type GameState int

const (
	Running GameState = iota
	Paused
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Paused:
		return "PAUSED"
	case GameOver:
		return "GAME OVER"
	default:
		return "RUNNING"
	}
}

// StateManager tracks run state, score and level for one session.
// High score and history live in memory only.
type StateManager struct {
	state          GameState
	score          int
	level          int
	pointsPerLevel int
	highScore      int
	scoreHistory   []int
}

func NewStateManager(pointsPerLevel int) *StateManager {
	if pointsPerLevel <= 0 {
		pointsPerLevel = 5
	}
	return &StateManager{
		state:          Running,
		level:          1,
		pointsPerLevel: pointsPerLevel,
		scoreHistory:   make([]int, 0),
	}
}

func (sm *StateManager) State() GameState { return sm.state }
func (sm *StateManager) Score() int       { return sm.score }
func (sm *StateManager) Level() int       { return sm.level }

// TogglePause flips between Running and Paused; GameOver is left alone
func (sm *StateManager) TogglePause() {
	switch sm.state {
	case Running:
		sm.state = Paused
	case Paused:
		sm.state = Running
	}
}

// EndGame moves to GameOver and records the final score
func (sm *StateManager) EndGame() {
	if sm.state == GameOver {
		return
	}
	sm.state = GameOver
	sm.AddToHistory(sm.score)
}

// Reset starts a new round at level 1
func (sm *StateManager) Reset() {
	sm.state = Running
	sm.score = 0
	sm.level = 1
}

// AddPoint increments the score and returns the new value
func (sm *StateManager) AddPoint() int {
	sm.score++
	sm.UpdateScore(sm.score)
	return sm.score
}

// CheckLevelUp advances the level when the score sits on a multiple of
// pointsPerLevel whose level (score/pointsPerLevel + 1) is above the current one
func (sm *StateManager) CheckLevelUp() bool {
	if sm.score <= 0 || sm.score%sm.pointsPerLevel != 0 {
		return false
	}
	next := sm.score/sm.pointsPerLevel + 1
	if next <= sm.level {
		return false
	}
	sm.level = next
	return true
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) AddToHistory(score int) {
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.scoreHistory
}
