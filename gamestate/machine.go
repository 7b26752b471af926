// Package gamestate owns the top-level screen flow and the gameplay loop guard.
// It has no dependency on ebiten so transitions can be tested headless.
package gamestate

// Listener is notified on every state entry.
type Listener interface {
	// EnterLevel is called when Playing is entered with a fresh level.
	EnterLevel(index, score int)
	// EnterScreen is called for every other entry, including a resume into Playing.
	EnterScreen(state State)
}

// Machine is the game state machine. Invalid transitions return false and
// leave the machine untouched.
type Machine struct {
	state      State
	level      int
	levelCount int
	score      int
	levelScore int // score when the current level began
	loop       Loop
	listener   Listener
}

// New creates a machine in the Loading state. levelCount must be at least 1.
func New(levelCount int, listener Listener) *Machine {
	if levelCount < 1 {
		levelCount = 1
	}
	return &Machine{
		state:      Loading,
		levelCount: levelCount,
		listener:   listener,
	}
}

func (m *Machine) State() State    { return m.state }
func (m *Machine) Level() int      { return m.level }
func (m *Machine) LevelCount() int { return m.levelCount }
func (m *Machine) Score() int      { return m.score }
func (m *Machine) Running() bool   { return m.loop.Running() }

// LoopStarts reports how many times the gameplay loop has been started.
func (m *Machine) LoopStarts() int { return m.loop.Starts() }

func (m *Machine) FinishLoading() bool {
	if m.state != Loading {
		return false
	}
	m.enterScreen(MainMenu)
	return true
}

func (m *Machine) ShowInstructions() bool {
	if m.state != MainMenu {
		return false
	}
	m.enterScreen(Instructions)
	return true
}

func (m *Machine) ShowCredits() bool {
	if m.state != MainMenu {
		return false
	}
	m.enterScreen(Credits)
	return true
}

func (m *Machine) ShowMainMenu() bool {
	switch m.state {
	case Instructions, Credits, Paused, GameOver, LevelComplete, Victory:
		m.enterScreen(MainMenu)
		return true
	}
	return false
}

// StartGame begins a new session on the first level.
func (m *Machine) StartGame() bool {
	switch m.state {
	case MainMenu, GameOver, Victory:
	default:
		return false
	}
	m.score = 0
	m.enterLevel(0)
	return true
}

// Retry replays the current level with the score it started with.
func (m *Machine) Retry() bool {
	if m.state != GameOver {
		return false
	}
	m.score = m.levelScore
	m.enterLevel(m.level)
	return true
}

func (m *Machine) Pause() bool {
	if m.state != Playing {
		return false
	}
	m.enterScreen(Paused)
	return true
}

// Resume re-enters Playing without reinitializing the level.
func (m *Machine) Resume() bool {
	if m.state != Paused {
		return false
	}
	m.state = Playing
	m.loop.Start()
	m.notifyScreen(Playing)
	return true
}

func (m *Machine) TogglePause() bool {
	if m.state == Paused {
		return m.Resume()
	}
	return m.Pause()
}

func (m *Machine) GameOver(score int) bool {
	if m.state != Playing {
		return false
	}
	m.score = score
	m.enterScreen(GameOver)
	return true
}

func (m *Machine) CompleteLevel(score int) bool {
	if m.state != Playing {
		return false
	}
	m.score = score
	m.enterScreen(LevelComplete)
	return true
}

// NextLevel advances past a completed level, or to Victory after the last one.
func (m *Machine) NextLevel() bool {
	if m.state != LevelComplete {
		return false
	}
	next := m.level + 1
	if next >= m.levelCount {
		m.enterScreen(Victory)
		return true
	}
	m.enterLevel(next)
	return true
}

func (m *Machine) enterLevel(index int) {
	if index < 0 {
		index = 0
	}
	if index >= m.levelCount {
		index = m.levelCount - 1
	}
	m.level = index
	m.levelScore = m.score
	m.state = Playing
	// Stop first so a fresh level always gets its own loop start.
	m.loop.Stop()
	if m.listener != nil {
		m.listener.EnterLevel(index, m.score)
	}
	m.loop.Start()
}

func (m *Machine) enterScreen(state State) {
	m.state = state
	m.loop.Stop()
	m.notifyScreen(state)
}

func (m *Machine) notifyScreen(state State) {
	if m.listener != nil {
		m.listener.EnterScreen(state)
	}
}
