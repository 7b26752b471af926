package systems

import (
	"github.com/automoto/arcade-shooter/components"
	cfg "github.com/automoto/arcade-shooter/config"
	"github.com/automoto/arcade-shooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateIntent in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	var held [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -deadzone {
			held[cfg.ActionMoveLeft] = true
			gamepadUsed = true
		}
		if horizontal > deadzone {
			held[cfg.ActionMoveRight] = true
			gamepadUsed = true
		}
		if vertical < -deadzone {
			held[cfg.ActionMenuUp] = true
			gamepadUsed = true
		}
		if vertical > deadzone {
			held[cfg.ActionMenuDown] = true
			gamepadUsed = true
		}
	}

	advanceInput(input, held)

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// advanceInput shifts the action buffers by one frame. The first frame a
// world sees only primes them, so a key still held from the previous scene
// reads as held rather than just pressed.
func advanceInput(input *components.InputData, held [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = held
	if !input.Primed {
		input.Previous = held
		input.Primed = true
	}
}

// UpdateIntent turns the action buffers into the player's intent. Jump and
// attack requests stay pending until UpdatePlayer consumes them.
func UpdateIntent(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := GetOrCreateInput(ecs)
	intent := components.Intent.Get(playerEntry)
	applyInputToIntent(input, intent)
}

func applyInputToIntent(input *components.InputData, intent *components.IntentData) {
	left := GetAction(input, cfg.ActionMoveLeft)
	right := GetAction(input, cfg.ActionMoveRight)

	switch {
	case left.Pressed && !right.Pressed:
		intent.Moving = true
		intent.Direction = cfg.DirectionLeft
	case right.Pressed && !left.Pressed:
		intent.Moving = true
		intent.Direction = cfg.DirectionRight
	case left.Pressed && right.Pressed:
		// Both held: the key pressed last wins.
		if left.JustPressed {
			intent.Direction = cfg.DirectionLeft
		} else if right.JustPressed {
			intent.Direction = cfg.DirectionRight
		}
		intent.Moving = true
	default:
		intent.Moving = false
	}

	if GetAction(input, cfg.ActionJump).JustPressed {
		intent.JumpPending = true
	}
	if GetAction(input, cfg.ActionAttack).JustPressed {
		intent.AttackPending = true
	}
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
