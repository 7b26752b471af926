package systems

import (
	"testing"

	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionJump] = true
	input.Previous[cfg.ActionAttack] = true

	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionJump))
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionAttack))
	assert.Equal(t, components.ActionState{}, GetAction(input, cfg.ActionPause))
}

func TestApplyInputToIntent(t *testing.T) {
	tests := []struct {
		name          string
		current       []cfg.ActionID
		previous      []cfg.ActionID
		startDir      float64
		wantMoving    bool
		wantDirection float64
		wantJump      bool
		wantAttack    bool
	}{
		{name: "idle", startDir: cfg.DirectionRight, wantDirection: cfg.DirectionRight},
		{name: "left", current: []cfg.ActionID{cfg.ActionMoveLeft}, startDir: cfg.DirectionRight, wantMoving: true, wantDirection: cfg.DirectionLeft},
		{name: "right", current: []cfg.ActionID{cfg.ActionMoveRight}, startDir: cfg.DirectionLeft, wantMoving: true, wantDirection: cfg.DirectionRight},
		{
			name:          "right pressed while left held",
			current:       []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight},
			previous:      []cfg.ActionID{cfg.ActionMoveLeft},
			startDir:      cfg.DirectionLeft,
			wantMoving:    true,
			wantDirection: cfg.DirectionRight,
		},
		{
			name:          "both held keeps last choice",
			current:       []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight},
			previous:      []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight},
			startDir:      cfg.DirectionRight,
			wantMoving:    true,
			wantDirection: cfg.DirectionRight,
		},
		{name: "jump edge", current: []cfg.ActionID{cfg.ActionJump}, startDir: cfg.DirectionRight, wantDirection: cfg.DirectionRight, wantJump: true},
		{
			name:          "held attack does not repeat",
			current:       []cfg.ActionID{cfg.ActionAttack},
			previous:      []cfg.ActionID{cfg.ActionAttack},
			startDir:      cfg.DirectionRight,
			wantDirection: cfg.DirectionRight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.InputData{}
			for _, a := range tt.current {
				input.Current[a] = true
			}
			for _, a := range tt.previous {
				input.Previous[a] = true
			}
			intent := &components.IntentData{Direction: tt.startDir}

			applyInputToIntent(input, intent)

			assert.Equal(t, tt.wantMoving, intent.Moving)
			assert.Equal(t, tt.wantDirection, intent.Direction)
			assert.Equal(t, tt.wantJump, intent.JumpPending)
			assert.Equal(t, tt.wantAttack, intent.AttackPending)
		})
	}
}

func TestUpdateIntent_KeepsRequestsPending(t *testing.T) {
	e := newTestWorld(t, testLevel())
	press(e, cfg.ActionJump)
	UpdateIntent(e)
	press(e)
	UpdateIntent(e)

	assert.True(t, components.Intent.Get(player(t, e)).JumpPending, "cleared only by UpdatePlayer")
}

func TestAdvanceInput_FirstFramePrimes(t *testing.T) {
	input := &components.InputData{}
	var held [cfg.ActionCount]bool
	held[cfg.ActionMenuSelect] = true

	advanceInput(input, held)
	state := GetAction(input, cfg.ActionMenuSelect)
	assert.True(t, state.Pressed)
	assert.False(t, state.JustPressed, "a key held into a new world is not a fresh press")
	assert.True(t, input.Primed)

	advanceInput(input, [cfg.ActionCount]bool{})
	assert.True(t, GetAction(input, cfg.ActionMenuSelect).JustReleased)

	advanceInput(input, held)
	assert.True(t, GetAction(input, cfg.ActionMenuSelect).JustPressed)
}

func TestMenus_IgnoreSelectHeldFromPreviousScene(t *testing.T) {
	var held [cfg.ActionCount]bool
	held[cfg.ActionMenuSelect] = true
	held[cfg.ActionJump] = true

	t.Run("main menu", func(t *testing.T) {
		e := ecs.NewECS(donburi.NewWorld())
		var chosen []components.MainMenuOption
		update := NewUpdateMenu(func(o components.MainMenuOption) { chosen = append(chosen, o) })

		advanceInput(GetOrCreateInput(e), held)
		update(e)
		assert.Empty(t, chosen)

		advanceInput(GetOrCreateInput(e), [cfg.ActionCount]bool{})
		update(e)
		advanceInput(GetOrCreateInput(e), held)
		update(e)
		assert.Equal(t, []components.MainMenuOption{components.MainMenuStart}, chosen)
	})

	t.Run("result screen", func(t *testing.T) {
		e := ecs.NewECS(donburi.NewWorld())
		var chosen []components.ScreenOption
		update := NewUpdateScreenMenu(func(o components.ScreenOption) { chosen = append(chosen, o) })

		advanceInput(GetOrCreateInput(e), held)
		update(e)
		update(e)
		assert.Empty(t, chosen)
	})
}
