package assets

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/automoto/arcade-shooter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevels_EmbeddedCatalog(t *testing.T) {
	levels, err := LoadLevels()
	require.NoError(t, err)
	require.Len(t, levels, 3)

	assert.Equal(t, "Meadow", levels[0].Name)
	assert.Equal(t, 5000, levels[0].Width)
	assert.Len(t, levels[0].Platforms, 6)
	assert.Len(t, levels[0].Hearts, 6, "one heart above each platform")
	assert.Empty(t, levels[0].Pits)

	assert.False(t, levels[0].Spawn.Decay)
	assert.True(t, levels[2].Spawn.Decay)

	for i, level := range levels {
		assert.Equal(t, i, level.Index)
		assert.Contains(t, config.Sound.MusicPaths, level.Theme.Music, level.Name)
		assert.Less(t, level.GoalX, float64(level.Width))
	}
}

func TestLoadLevels_InactivePit(t *testing.T) {
	levels := MustLoadLevels()
	pits := levels[1].Pits
	require.Len(t, pits, 3)
	assert.True(t, pits[0].Active)
	assert.False(t, pits[2].Active)
}

func TestEverySheetIsEmbedded(t *testing.T) {
	owners := []struct {
		name  string
		clips map[config.StateID]config.ClipDef
	}{
		{"player", config.PlayerClips},
		{config.EnemyWalker.String(), config.EnemyClips},
		{config.EnemyRunner.String(), config.EnemyClips},
	}
	for _, owner := range owners {
		for state, clip := range owner.clips {
			key := config.SheetName(owner.name, state)
			img, err := ReadImage(imageFS, ImagePath(key))
			require.NoError(t, err, key)

			frames := img.Bounds().Dx() / config.Player.FrameWidth
			assert.GreaterOrEqual(t, frames, len(clip.Frames), key)
		}
	}
}

func TestReadImage_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"images/broken.png": {Data: []byte("not a png")},
	}

	_, err := ReadImage(fsys, ImagePath("missing"))
	assert.Error(t, err)

	_, err = ReadImage(fsys, ImagePath("broken"))
	assert.ErrorContains(t, err, "decode image")
}

func TestFallbackImage(t *testing.T) {
	img := FallbackImage()
	assert.Equal(t, FallbackSize, img.Bounds().Dx())
	assert.Equal(t, FallbackSize, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}, img.RGBAAt(64, 64))
}

func TestImagePath(t *testing.T) {
	assert.Equal(t, "images/walker/dead.png", ImagePath("walker/dead"))
}
