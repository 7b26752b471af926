package gamestate

// State is a top-level screen of the game.
type State int

const (
	Loading State = iota
	MainMenu
	Instructions
	Credits
	Playing
	Paused
	GameOver
	LevelComplete
	Victory
)

func (s State) String() string {
	switch s {
	case Loading:
		return "Loading"
	case MainMenu:
		return "MainMenu"
	case Instructions:
		return "Instructions"
	case Credits:
		return "Credits"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	case LevelComplete:
		return "LevelComplete"
	case Victory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Loop guards the per-tick gameplay pipeline so it is never started twice.
type Loop struct {
	running bool
	starts  int
}

// Start marks the loop running. It returns false if it was already running.
func (l *Loop) Start() bool {
	if l.running {
		return false
	}
	l.running = true
	l.starts++
	return true
}

// Stop halts the loop. Stopping a stopped loop is a no-op.
func (l *Loop) Stop() {
	l.running = false
}

func (l *Loop) Running() bool {
	return l.running
}

// Starts reports how many times the loop went from stopped to running.
func (l *Loop) Starts() int {
	return l.starts
}
