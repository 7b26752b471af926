package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64
	JumpPower float64 // negative is up
	StartX    float64

	// Combat
	Health int

	// Dimensions
	Width       float64
	Height      float64
	FrameWidth  int
	FrameHeight int
}

// EnemyKind is the closed set of enemy archetypes.
type EnemyKind int

const (
	EnemyWalker EnemyKind = iota
	EnemyRunner
	EnemyKindCount // Must be last
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyWalker:
		return "walker"
	case EnemyRunner:
		return "runner"
	default:
		return "unknown"
	}
}

// EnemyKindConfig contains the base stats of one archetype before level multipliers.
type EnemyKindConfig struct {
	Speed       float64
	Health      int
	AttackRange float64
	Points      int
	SheetKey    string
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Kinds [EnemyKindCount]EnemyKindConfig

	// Dimensions
	Width         float64
	Height        float64
	HitboxOffsetX float64
	HitboxOffsetY float64
	HitboxWidth   float64
	HitboxHeight  float64
	FrameWidth    int
	FrameHeight   int

	// Combat
	AttackDamage        int
	AttackCooldownTicks int
	PlayerAboveRange    float64 // horizontal separation under which a player above is exempt

	// Lifecycle
	SpawnAheadX       float64 // spawn distance past the right edge of the viewport
	SpawnFeetOffset   float64 // spawn y = ground - offset
	CullMargin        float64
	PitFloorTolerance float64
	PitNudge          float64
	DeathRemovalTicks int
}

// CombatConfig contains player attack configuration values
type CombatConfig struct {
	PlayerAttackDamage int
	PlayerAttackRange  float64
	ImpactFrame        int // frame value of the attack clip that lands the hit

	// Feedback
	HitFlashTicks     int
	HitShakeIntensity float64
	HitShakeTicks     int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	LandingBand  float64 // depth below a platform top that still counts as landing
}

// TimingConfig contains fixed-step timing. All deferred effects count ticks.
type TimingConfig struct {
	TPS                int
	TickMillis         float64
	GameOverDelayTicks int
	LoadingTicks       int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	LeadFraction float64 // fraction of the viewport kept left of the player
}

// HeartConfig contains health pickup configuration
type HeartConfig struct {
	RestoreTo int
}

// CloudConfig contains decorative parallax cloud configuration
type CloudConfig struct {
	Count      int
	MinY       float64
	RangeY     float64
	MinScale   float64
	ScaleRange float64
	MinSpeed   float64
	SpeedRange float64
	Width      float64
	Height     float64
	Alpha      float32
	Seed       int64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// ScreenConfig contains the layout of a full-screen result page
// (game over, level complete, victory).
type ScreenConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColor         color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// InfoConfig contains the text of the Instructions and Credits panels
type InfoConfig struct {
	InstructionsTitle string
	Instructions      []string
	CreditsTitle      string
	Credits           []string
	BackLabel         string
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	Margin          float64
	LowHealth       int
	BarBgColor      color.RGBA
	BarColor        color.RGBA
	BarLowColor     color.RGBA
	TextColor       color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width        int
	Height       int
	GroundHeight float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Hitboxes bool // Outline collision objects and hitboxes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Timing TimingConfig
var Camera CameraConfig
var Heart HeartConfig
var Cloud CloudConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver ScreenConfig
var LevelComplete ScreenConfig
var Victory ScreenConfig
var Info InfoConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Fallback     = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:        800,
		Height:       600,
		GroundHeight: 100,
	}

	Physics = PhysicsConfig{
		Gravity:      0.6,
		MaxFallSpeed: 15,
		LandingBand:  20,
	}

	Player = PlayerConfig{
		Speed:       5,
		JumpPower:   -15,
		StartX:      100,
		Health:      100,
		Width:       64 * 4,
		Height:      128 * 1.5,
		FrameWidth:  64,
		FrameHeight: 128,
	}

	Enemy = EnemyConfig{
		Kinds: [EnemyKindCount]EnemyKindConfig{
			EnemyWalker: {Speed: 2, Health: 100, AttackRange: 150, Points: 150, SheetKey: "walker"},
			EnemyRunner: {Speed: 3, Health: 80, AttackRange: 180, Points: 250, SheetKey: "runner"},
		},

		Width:         64 * 4,
		Height:        128 * 1.5,
		HitboxOffsetX: 80,
		HitboxOffsetY: 60,
		HitboxWidth:   96,
		HitboxHeight:  136,
		FrameWidth:    64,
		FrameHeight:   128,

		AttackDamage:        10,
		AttackCooldownTicks: 60, // ~1000ms
		PlayerAboveRange:    150,

		SpawnAheadX:       100,
		SpawnFeetOffset:   188,
		CullMargin:        100,
		PitFloorTolerance: 50,
		PitNudge:          10,
		DeathRemovalTicks: 30, // ~500ms
	}

	Combat = CombatConfig{
		PlayerAttackDamage: 25,
		PlayerAttackRange:  200,
		ImpactFrame:        2,

		HitFlashTicks:     8,
		HitShakeIntensity: 6,
		HitShakeTicks:     12,
	}

	Timing = TimingConfig{
		TPS:                60,
		TickMillis:         16,
		GameOverDelayTicks: 60, // ~1000ms
		LoadingTicks:       30,
	}

	Camera = CameraConfig{
		LeadFraction: 0.3,
	}

	Heart = HeartConfig{
		RestoreTo: 100,
	}

	Cloud = CloudConfig{
		Count:      20,
		MinY:       50,
		RangeY:     200,
		MinScale:   0.5,
		ScaleRange: 0.5,
		MinSpeed:   0.1,
		SpeedRange: 0.2,
		Width:      160,
		Height:     80,
		Alpha:      0.8,
		Seed:       7,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"RESUME", "MAIN MENU"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 0x62, G: 0x62, B: 0xf8, A: 0xff},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: White,
		Title:             "ARCADE SHOOTER",
		TitleY:            160,
		MenuStartY:        260,
		MenuItemHeight:    30,
		MenuItemGap:       14,
		MenuOptions:       []string{"START", "INSTRUCTIONS", "CREDITS", "EXIT"},
	}

	GameOver = ScreenConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 0, B: 0, A: 255},
		TitleColor:        LightRed,
		TextColor:         White,
		TextColorSelected: Yellow,
		Title:             "GAME OVER",
		TitleY:            180,
		ScoreY:            240,
		MenuStartY:        300,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"RETRY", "MAIN MENU"},
	}

	LevelComplete = ScreenConfig{
		BackgroundColor:   color.RGBA{R: 0, G: 30, B: 10, A: 255},
		TitleColor:        BrightGreen,
		TextColor:         White,
		TextColorSelected: Yellow,
		Title:             "LEVEL COMPLETE",
		TitleY:            180,
		ScoreY:            240,
		MenuStartY:        300,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"CONTINUE", "MAIN MENU"},
	}

	Victory = ScreenConfig{
		BackgroundColor:   color.RGBA{R: 10, G: 10, B: 40, A: 255},
		TitleColor:        Yellow,
		TextColor:         White,
		TextColorSelected: Yellow,
		Title:             "VICTORY!",
		TitleY:            180,
		ScoreY:            240,
		MenuStartY:        300,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"PLAY AGAIN", "MAIN MENU"},
	}

	Info = InfoConfig{
		InstructionsTitle: "HOW TO PLAY",
		Instructions: []string{
			"Left / Right or A / D: move",
			"X or W: jump",
			"Z: attack",
			"Esc or P: pause",
			"Collect hearts to heal. Avoid the pits.",
			"Reach the flag at the end of each level.",
		},
		CreditsTitle: "CREDITS",
		Credits: []string{
			"Design and code: the arcade-shooter team",
			"Built with Ebitengine and donburi",
		},
		BackLabel: "BACK",
	}

	HUD = HUDConfig{
		HealthBarWidth:  200,
		HealthBarHeight: 16,
		Margin:          12,
		LowHealth:       30,
		BarBgColor:      color.RGBA{R: 40, G: 40, B: 40, A: 200},
		BarColor:        BrightGreen,
		BarLowColor:     LightRed,
		TextColor:       White,
	}
}

// GroundY returns the y coordinate of the ground surface for the viewport.
func GroundY() float64 {
	return float64(C.Height) - C.GroundHeight
}
