package leveldata

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

// Defaults applied to anything a level leaves unset.
const (
	DefaultWidth          = 5000
	DefaultHeight         = 800
	DefaultGroundY        = 500.0
	DefaultWalkerInterval = 2000.0
	DefaultRunnerInterval = 5000.0
	DefaultWalkerFloor    = 1000.0
	DefaultWalkerStep     = 30.0
	DefaultRunnerFloor    = 3000.0
	DefaultRunnerStep     = 50.0
	DefaultGoalMargin     = 300.0

	HeartSize   = 50.0
	HeartOffset = 50.0
)

var (
	defaultSky    = color.RGBA{R: 0x62, G: 0x62, B: 0xf8, A: 0xff}
	defaultGround = color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
)

// ErrNoLevels is returned when the catalog lists no levels.
var ErrNoLevels = errors.New("level catalog is empty")

// LoadCatalog reads the YAML catalog at catalogPath and the TMX map of every
// level it lists. Map paths are relative to the catalog's directory. It takes
// an fs.FS so callers can pass embed.FS or fstest.MapFS.
func LoadCatalog(fsys fs.FS, catalogPath string) ([]Level, error) {
	raw, err := fs.ReadFile(fsys, catalogPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", catalogPath, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", catalogPath, err)
	}
	if len(file.Levels) == 0 {
		return nil, ErrNoLevels
	}

	dir := path.Dir(catalogPath)
	levels := make([]Level, 0, len(file.Levels))
	for i, entry := range file.Levels {
		level, err := buildLevel(fsys, dir, i, entry)
		if err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i, entry.Name, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func buildLevel(fsys fs.FS, dir string, index int, entry levelEntry) (Level, error) {
	level := Level{
		Name:                  entry.Name,
		Index:                 index,
		EnemySpeedMultiplier:  entry.Enemies.SpeedMultiplier,
		EnemyHealthMultiplier: entry.Enemies.HealthMultiplier,
		Spawn: Spawn{
			WalkerInterval: entry.Spawn.WalkerInterval,
			RunnerInterval: entry.Spawn.RunnerInterval,
			Decay:          entry.Spawn.Decay,
			WalkerFloor:    entry.Spawn.WalkerFloor,
			WalkerStep:     entry.Spawn.WalkerStep,
			RunnerFloor:    entry.Spawn.RunnerFloor,
			RunnerStep:     entry.Spawn.RunnerStep,
		},
		GroundY: entry.GroundY,
		GoalX:   entry.GoalX,
	}

	var err error
	if level.Theme, err = parseTheme(entry.Theme); err != nil {
		return Level{}, err
	}

	if entry.Map != "" {
		if err := loadMap(fsys, path.Join(dir, entry.Map), &level); err != nil {
			return Level{}, err
		}
	}

	applyDefaults(&level)
	if err := validateLevel(&level); err != nil {
		return Level{}, fmt.Errorf("invalid level: %w", err)
	}
	return level, nil
}

// loadMap fills geometry from the TMX object groups. A YAML goal wins over
// the map's Goal object.
func loadMap(fsys fs.FS, tmxPath string, level *Level) error {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level.Width = levelMap.Width * levelMap.TileWidth
	level.Height = levelMap.Height * levelMap.TileHeight

	heartsDefined := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Pits":
			for _, o := range og.Objects {
				level.Pits = append(level.Pits, Pit{
					Rect:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Active: pitActive(o.Properties),
				})
			}
		case "Hearts":
			heartsDefined = true
			for _, o := range og.Objects {
				w, h := o.Width, o.Height
				if w == 0 || h == 0 {
					w, h = HeartSize, HeartSize
				}
				level.Hearts = append(level.Hearts, Rect{X: o.X, Y: o.Y, W: w, H: h})
			}
		case "Goal":
			if len(og.Objects) > 0 && level.GoalX == 0 {
				level.GoalX = og.Objects[0].X
			}
			if len(og.Objects) > 0 && level.GroundY == 0 {
				if g := og.Objects[0].Properties.GetFloat("groundY"); g > 0 {
					level.GroundY = g
				}
			}
		}
	}

	if !heartsDefined {
		level.Hearts = HeartsAbovePlatforms(level.Platforms)
	}
	return nil
}

// HeartsAbovePlatforms places one heart centred above each platform.
func HeartsAbovePlatforms(platforms []Rect) []Rect {
	hearts := make([]Rect, 0, len(platforms))
	for _, p := range platforms {
		hearts = append(hearts, Rect{
			X: p.X + p.W/2 - HeartSize/2,
			Y: p.Y - HeartOffset,
			W: HeartSize,
			H: HeartSize,
		})
	}
	return hearts
}

func applyDefaults(level *Level) {
	if level.Width <= 0 {
		level.Width = DefaultWidth
	}
	if level.Height <= 0 {
		level.Height = DefaultHeight
	}
	if level.GroundY <= 0 {
		level.GroundY = DefaultGroundY
	}
	if level.EnemySpeedMultiplier == 0 {
		level.EnemySpeedMultiplier = 1
	}
	if level.EnemyHealthMultiplier == 0 {
		level.EnemyHealthMultiplier = 1
	}
	if level.Spawn.WalkerInterval == 0 {
		level.Spawn.WalkerInterval = DefaultWalkerInterval
	}
	if level.Spawn.RunnerInterval == 0 {
		level.Spawn.RunnerInterval = DefaultRunnerInterval
	}
	if level.Spawn.WalkerFloor == 0 {
		level.Spawn.WalkerFloor = DefaultWalkerFloor
	}
	if level.Spawn.WalkerStep == 0 {
		level.Spawn.WalkerStep = DefaultWalkerStep
	}
	if level.Spawn.RunnerFloor == 0 {
		level.Spawn.RunnerFloor = DefaultRunnerFloor
	}
	if level.Spawn.RunnerStep == 0 {
		level.Spawn.RunnerStep = DefaultRunnerStep
	}
	if level.GoalX == 0 {
		level.GoalX = float64(level.Width) - DefaultGoalMargin
	}
	if level.Name == "" {
		level.Name = fmt.Sprintf("Level %d", level.Index+1)
	}
}

func validateLevel(level *Level) error {
	if level.EnemySpeedMultiplier < 0 || level.EnemyHealthMultiplier < 0 {
		return fmt.Errorf("enemy multipliers must be positive, got speed=%v health=%v",
			level.EnemySpeedMultiplier, level.EnemyHealthMultiplier)
	}
	if level.Spawn.WalkerInterval < 0 || level.Spawn.RunnerInterval < 0 {
		return fmt.Errorf("spawn intervals must be positive, got walker=%v runner=%v",
			level.Spawn.WalkerInterval, level.Spawn.RunnerInterval)
	}
	if level.GoalX <= 0 || level.GoalX > float64(level.Width) {
		return fmt.Errorf("goalX %v outside level width %d", level.GoalX, level.Width)
	}
	for i, p := range level.Pits {
		if p.W <= 0 || p.X < 0 || p.Right() > float64(level.Width) {
			return fmt.Errorf("pit %d spans [%v, %v] outside level width %d", i, p.X, p.Right(), level.Width)
		}
	}
	for i, p := range level.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("platform %d has empty size %vx%v", i, p.W, p.H)
		}
	}
	return nil
}

func parseTheme(t themeEntry) (Theme, error) {
	theme := Theme{Sky: defaultSky, Ground: defaultGround, Music: t.Music}
	var err error
	if t.Sky != "" {
		if theme.Sky, err = ParseHexColor(t.Sky); err != nil {
			return Theme{}, fmt.Errorf("theme sky: %w", err)
		}
	}
	if t.Ground != "" {
		if theme.Ground, err = ParseHexColor(t.Ground); err != nil {
			return Theme{}, fmt.Errorf("theme ground: %w", err)
		}
	}
	return theme, nil
}

// ParseHexColor parses "#rrggbb" into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// pitActive reads the "active" property. Pits without it are active.
func pitActive(props tiled.Properties) bool {
	if len(props.Get("active")) == 0 {
		return true
	}
	return props.GetBool("active")
}
