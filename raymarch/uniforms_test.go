package raymarch

import (
	"testing"
	"time"
	"unsafe"

	"github.com/oliverbestmann/raymarch/glm"
	"github.com/stretchr/testify/assert"
)

func TestUniformsLayout(t *testing.T) {
	var u Uniforms

	// must match the uniform block in fragment.wgsl
	assert.EqualValues(t, 32, unsafe.Sizeof(u))
	assert.EqualValues(t, 0, unsafe.Offsetof(u.CamPos))
	assert.EqualValues(t, 12, unsafe.Offsetof(u.Time))
	assert.EqualValues(t, 16, unsafe.Offsetof(u.Resolution))
}

func TestUniformsAtTime(t *testing.T) {
	start := time.Now()
	camPos := glm.Vec3f{8, 5, 7}
	resolution := glm.Vec2f{1280, 720}

	u := UniformsAt(start, start.Add(1500*time.Millisecond), camPos, resolution)

	assert.Equal(t, float32(1.5), u.Time)
	assert.Equal(t, camPos, u.CamPos)
	assert.Equal(t, resolution, u.Resolution)
}

func TestUniformsAtTruncatesToMilliseconds(t *testing.T) {
	start := time.Now()

	u := UniformsAt(start, start.Add(2*time.Millisecond+900*time.Microsecond), glm.Vec3f{}, glm.Vec2f{})
	assert.Equal(t, float32(0.002), u.Time)

	u = UniformsAt(start, start, glm.Vec3f{}, glm.Vec2f{})
	assert.Equal(t, float32(0), u.Time)
}

func TestUniformsAtIsMonotonic(t *testing.T) {
	start := time.Now()

	var previous float32 = -1
	for ms := 0; ms < 10*60*1000; ms += 7 {
		u := UniformsAt(start, start.Add(time.Duration(ms)*time.Millisecond), glm.Vec3f{}, glm.Vec2f{})

		if u.Time <= previous {
			t.Fatalf("time did not increase at %dms: %v <= %v", ms, u.Time, previous)
		}

		previous = u.Time
	}
}

func TestUniformsAtSubMillisecondFramesShareTime(t *testing.T) {
	start := time.Now()
	frame := start.Add(time.Second + 100*time.Microsecond)

	a := UniformsAt(start, frame, glm.Vec3f{}, glm.Vec2f{})
	b := UniformsAt(start, frame.Add(800*time.Microsecond), glm.Vec3f{}, glm.Vec2f{})

	assert.Equal(t, a.Time, b.Time)
	assert.Equal(t, float32(1), b.Time)
}
