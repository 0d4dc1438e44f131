package raymarch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimes(t *testing.T) {
	var stats FrameTimes

	now := time.Now()

	var reports int
	for idx := 0; idx < 120; idx++ {
		if stats.Tick(now) {
			reports++
		}

		now = now.Add(10 * time.Millisecond)
	}

	assert.Equal(t, 2, reports)
	assert.EqualValues(t, 120, stats.FrameCount)
	assert.Equal(t, 10*time.Millisecond, stats.Delta)
	assert.Equal(t, 10*time.Millisecond, stats.AverageDuration)
	assert.InDelta(t, 100.0, stats.FPS(), 1e-6)
}

func TestFrameTimesMax(t *testing.T) {
	var stats FrameTimes

	now := time.Now()
	stats.Tick(now)
	stats.Tick(now.Add(50 * time.Millisecond))
	stats.Tick(now.Add(60 * time.Millisecond))

	assert.Equal(t, 50*time.Millisecond, stats.MaxDuration)
	assert.Equal(t, 10*time.Millisecond, stats.Delta)
}

func TestFrameTimesNoFramesYet(t *testing.T) {
	var stats FrameTimes
	assert.Zero(t, stats.FPS())
}
