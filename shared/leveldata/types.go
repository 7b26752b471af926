// Package leveldata loads the level catalog: a YAML table of per-level
// behaviour plus one TMX map per level for geometry. It has no dependencies
// on ebitengine, donburi, or resolv so it can be tested headless.
package leveldata

import "image/color"

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Pit is a hazard spanning an x-range with no ground under it.
type Pit struct {
	Rect
	Active bool
}

// Theme holds cosmetic values. The simulation never reads them.
type Theme struct {
	Sky    color.RGBA
	Ground color.RGBA
	Music  string
}

// Spawn controls the per-archetype enemy spawn timers, in milliseconds.
type Spawn struct {
	WalkerInterval float64
	RunnerInterval float64

	// Decay shrinks each interval after every spawn, down to its floor.
	// Off by default; the fixed per-level intervals are the normal curve.
	Decay       bool
	WalkerFloor float64
	WalkerStep  float64
	RunnerFloor float64
	RunnerStep  float64
}

// Level is one fully resolved level.
type Level struct {
	Name  string
	Index int
	Theme Theme

	EnemySpeedMultiplier  float64
	EnemyHealthMultiplier float64
	Spawn                 Spawn

	Width   int
	Height  int
	GroundY float64
	GoalX   float64

	Platforms []Rect
	Pits      []Pit
	Hearts    []Rect
}

// catalogFile is the on-disk shape of levels.yaml.
type catalogFile struct {
	Levels []levelEntry `yaml:"levels"`
}

type levelEntry struct {
	Name    string     `yaml:"name"`
	Map     string     `yaml:"map"`
	Theme   themeEntry `yaml:"theme"`
	Enemies enemyEntry `yaml:"enemies"`
	Spawn   spawnEntry `yaml:"spawn"`
	GoalX   float64    `yaml:"goalX"`
	GroundY float64    `yaml:"groundY"`
}

type themeEntry struct {
	Sky    string `yaml:"sky"`
	Ground string `yaml:"ground"`
	Music  string `yaml:"music"`
}

type enemyEntry struct {
	SpeedMultiplier  float64 `yaml:"speedMultiplier"`
	HealthMultiplier float64 `yaml:"healthMultiplier"`
}

type spawnEntry struct {
	WalkerInterval float64 `yaml:"walkerInterval"`
	RunnerInterval float64 `yaml:"runnerInterval"`
	Decay          bool    `yaml:"decay"`
	WalkerFloor    float64 `yaml:"walkerFloor"`
	WalkerStep     float64 `yaml:"walkerStep"`
	RunnerFloor    float64 `yaml:"runnerFloor"`
	RunnerStep     float64 `yaml:"runnerStep"`
}
