package leveldata

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/lafriks/go-tiled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="50" height="8" tilewidth="100" tileheight="100" infinite="0" nextlayerid="5" nextobjectid="10">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="500" y="400" width="200" height="20"/>
  <object id="2" x="1000" y="250" width="150" height="20"/>
 </objectgroup>
 <objectgroup id="2" name="Pits">
  <object id="3" x="1800" y="500" width="200" height="300"/>
  <object id="4" x="2600" y="500" width="150" height="300">
   <properties>
    <property name="active" type="bool" value="false"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Goal">
  <object id="5" x="4600" y="0" width="10" height="500"/>
 </objectgroup>
</map>
`

const testTMXWithHearts = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="8" tilewidth="100" tileheight="100" infinite="0">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="500" y="400" width="200" height="20"/>
 </objectgroup>
 <objectgroup id="2" name="Hearts">
  <object id="2" x="900" y="300"/>
 </objectgroup>
</map>
`

func testFS(catalog string) fstest.MapFS {
	return fstest.MapFS{
		"levels/levels.yaml":  {Data: []byte(catalog)},
		"levels/level01.tmx":  {Data: []byte(testTMX)},
		"levels/hearts01.tmx": {Data: []byte(testTMXWithHearts)},
	}
}

func TestLoadCatalog_ReadsYAMLAndTMX(t *testing.T) {
	fsys := testFS(`
levels:
  - name: Meadow
    map: level01.tmx
    theme:
      sky: "#6262F8"
      ground: "#8B4513"
      music: meadow
    enemies:
      speedMultiplier: 1.5
      healthMultiplier: 2
    spawn:
      walkerInterval: 1800
      runnerInterval: 4000
`)

	levels, err := LoadCatalog(fsys, "levels/levels.yaml")
	require.NoError(t, err)
	require.Len(t, levels, 1)

	level := levels[0]
	assert.Equal(t, "Meadow", level.Name)
	assert.Equal(t, 5000, level.Width)
	assert.Equal(t, 800, level.Height)
	assert.Equal(t, 4600.0, level.GoalX)
	assert.Equal(t, DefaultGroundY, level.GroundY)
	assert.Equal(t, 1.5, level.EnemySpeedMultiplier)
	assert.Equal(t, 2.0, level.EnemyHealthMultiplier)
	assert.Equal(t, 1800.0, level.Spawn.WalkerInterval)
	assert.Equal(t, 4000.0, level.Spawn.RunnerInterval)
	assert.False(t, level.Spawn.Decay)
	assert.Equal(t, color.RGBA{R: 0x62, G: 0x62, B: 0xf8, A: 0xff}, level.Theme.Sky)
	assert.Equal(t, "meadow", level.Theme.Music)

	require.Len(t, level.Platforms, 2)
	assert.Equal(t, Rect{X: 500, Y: 400, W: 200, H: 20}, level.Platforms[0])

	require.Len(t, level.Pits, 2)
	assert.True(t, level.Pits[0].Active)
	assert.False(t, level.Pits[1].Active)

	require.Len(t, level.Hearts, 2, "one heart per platform when the map defines none")
	assert.Equal(t, Rect{X: 575, Y: 350, W: 50, H: 50}, level.Hearts[0])
}

func TestLoadCatalog_YAMLGoalOverridesMap(t *testing.T) {
	fsys := testFS(`
levels:
  - name: Override
    map: level01.tmx
    goalX: 3000
`)

	levels, err := LoadCatalog(fsys, "levels/levels.yaml")
	require.NoError(t, err)
	assert.Equal(t, 3000.0, levels[0].GoalX)
}

func TestLoadCatalog_ExplicitHearts(t *testing.T) {
	fsys := testFS(`
levels:
  - name: Hearts
    map: hearts01.tmx
`)

	levels, err := LoadCatalog(fsys, "levels/levels.yaml")
	require.NoError(t, err)

	level := levels[0]
	assert.Equal(t, 4000, level.Width)
	require.Len(t, level.Hearts, 1)
	assert.Equal(t, Rect{X: 900, Y: 300, W: HeartSize, H: HeartSize}, level.Hearts[0])
	assert.Empty(t, level.Pits, "no pit layout means no pits")
	assert.Equal(t, 4000.0-DefaultGoalMargin, level.GoalX)
}

func TestLoadCatalog_AppliesDefaults(t *testing.T) {
	fsys := testFS(`
levels:
  - map: level01.tmx
  - map: level01.tmx
    spawn:
      decay: true
`)

	levels, err := LoadCatalog(fsys, "levels/levels.yaml")
	require.NoError(t, err)
	require.Len(t, levels, 2)

	assert.Equal(t, "Level 1", levels[0].Name)
	assert.Equal(t, 1, levels[1].Index)
	assert.Equal(t, 1.0, levels[0].EnemySpeedMultiplier)
	assert.Equal(t, 1.0, levels[0].EnemyHealthMultiplier)
	assert.Equal(t, DefaultWalkerInterval, levels[0].Spawn.WalkerInterval)
	assert.Equal(t, DefaultRunnerInterval, levels[0].Spawn.RunnerInterval)

	assert.True(t, levels[1].Spawn.Decay)
	assert.Equal(t, DefaultWalkerFloor, levels[1].Spawn.WalkerFloor)
	assert.Equal(t, DefaultRunnerStep, levels[1].Spawn.RunnerStep)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
	}{
		{name: "empty catalog", catalog: "levels: []"},
		{name: "bad yaml", catalog: "levels: [name"},
		{name: "missing map", catalog: "levels:\n  - map: nope.tmx\n"},
		{name: "goal past width", catalog: "levels:\n  - map: level01.tmx\n    goalX: 9000\n"},
		{name: "negative multiplier", catalog: "levels:\n  - map: level01.tmx\n    enemies:\n      speedMultiplier: -1\n"},
		{name: "bad colour", catalog: "levels:\n  - map: level01.tmx\n    theme:\n      sky: blue\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(testFS(tt.catalog), "levels/levels.yaml")
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog_EmptyIsErrNoLevels(t *testing.T) {
	_, err := LoadCatalog(testFS("levels: []"), "levels/levels.yaml")
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestLoadCatalog_MissingCatalog(t *testing.T) {
	_, err := LoadCatalog(fstest.MapFS{}, "levels/levels.yaml")
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff4444")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}, c)

	_, err = ParseHexColor("#fff")
	assert.Error(t, err)
	_, err = ParseHexColor("#gggggg")
	assert.Error(t, err)
}

func TestPitActive(t *testing.T) {
	tests := []struct {
		name  string
		props tiled.Properties
		want  bool
	}{
		{"no property", nil, true},
		{"explicitly active", tiled.Properties{{Name: "active", Type: "bool", Value: "true"}}, true},
		{"switched off", tiled.Properties{{Name: "active", Type: "bool", Value: "false"}}, false},
		{"unrelated property", tiled.Properties{{Name: "depth", Type: "int", Value: "3"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pitActive(tt.props))
		})
	}
}
