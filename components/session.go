package components

import "github.com/yohamta/donburi"

// SessionData is the per-level run state read by the scene after each tick.
type SessionData struct {
	Score int

	// GameOverTimer counts down once the player dies; GameOverDue is set
	// when it reaches zero.
	GameOverTimer int
	GameOverArmed bool
	GameOverDue   bool
}

// ArmGameOver starts the game-over countdown once.
func (s *SessionData) ArmGameOver(ticks int) {
	if s.GameOverArmed {
		return
	}
	s.GameOverArmed = true
	s.GameOverTimer = ticks
}

var Session = donburi.NewComponentType[SessionData]()
