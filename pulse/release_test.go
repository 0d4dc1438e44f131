package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingReleaser struct {
	count int
}

func (c *countingReleaser) Release() {
	c.count++
}

func TestReleaseGuardReleasesOnce(t *testing.T) {
	res := &countingReleaser{}

	guard := NewReleaseGuard(res)
	guard.Release()
	guard.Release()

	assert.Equal(t, 1, res.count)
}

func TestReleaseGuardKeep(t *testing.T) {
	res := &countingReleaser{}

	guard := NewReleaseGuard(res)
	guard.Keep()
	guard.Release()

	assert.Equal(t, 0, res.count)
}
