package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advanceN(c *Clip, n int) (completions int) {
	for i := 0; i < n; i++ {
		if c.Advance() {
			completions++
		}
	}
	return completions
}

func TestClip_StaticPoseHoldsFrameZero(t *testing.T) {
	c := NewClip([]int{0}, 0, true)
	assert.Equal(t, 0, advanceN(c, 100))
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, c.Frame())
	assert.False(t, c.Done())
}

func TestClip_AdvancesWhenAccumulatorCrossesOne(t *testing.T) {
	c := NewClip([]int{0, 1, 2, 3}, 0.5, true)

	c.Advance()
	assert.Equal(t, 0, c.Index(), "0.5 has not crossed 1")
	c.Advance()
	assert.Equal(t, 1, c.Index())
	c.Advance()
	c.Advance()
	assert.Equal(t, 2, c.Index())
}

func TestClip_LoopWraps(t *testing.T) {
	c := NewClip([]int{0, 1, 2}, 1, true)

	assert.Equal(t, 0, advanceN(c, 3))
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Done())
}

func TestClip_NonLoopClampsAndCompletesOnce(t *testing.T) {
	c := NewClip([]int{0, 1, 2, 3, 4}, 1, false)

	completions := advanceN(c, 4)
	assert.Equal(t, 0, completions)
	assert.Equal(t, 4, c.Index())

	assert.True(t, c.Advance(), "fifth advance runs off the end")
	assert.Equal(t, 4, c.Index(), "clamped to the last frame")
	assert.True(t, c.Done())

	assert.Equal(t, 0, advanceN(c, 20))
	assert.Equal(t, 4, c.Frame())
}

func TestClip_RestartClearsCompletion(t *testing.T) {
	c := NewClip([]int{0, 1}, 1, false)
	advanceN(c, 2)
	require.True(t, c.Done())

	c.Restart()
	assert.False(t, c.Done())
	assert.Equal(t, 0, c.Index())
}

func TestClip_FrameUsesSheetIndices(t *testing.T) {
	c := NewClip([]int{4, 7, 9}, 1, true)
	c.Advance()
	assert.Equal(t, 7, c.Frame())
}

func TestClip_AttackReachesImpactFrame(t *testing.T) {
	// 0.15 per tick: the accumulator crosses 1 on tick 7, so frame 2 shows on tick 14.
	c := NewClip([]int{0, 1, 2, 3, 4}, 0.15, false)
	ticks := 0
	for c.Frame() != 2 {
		c.Advance()
		ticks++
		require.Less(t, ticks, 100)
	}
	assert.Equal(t, 14, ticks)
}

func TestNewClip_EmptyFramesDefaultsToSinglePose(t *testing.T) {
	c := NewClip(nil, 0.1, true)
	assert.Equal(t, []int{0}, c.Frames)
}
