package raymarch

import (
	"structs"
	"time"

	"github.com/oliverbestmann/raymarch/glm"
)

// Uniforms mirrors the uniform block of the fragment shader, including
// the wgsl alignment rules: the vec3 camera position is directly
// followed by the time scalar, the struct is padded to 16 bytes.
type Uniforms struct {
	_ structs.HostLayout

	CamPos     glm.Vec3f
	Time       float32
	Resolution glm.Vec2f

	_ [2]float32
}

// UniformsAt computes the uniform values for a frame rendered at now.
// Time is measured in whole milliseconds since start, converted to seconds.
// Frames less than a millisecond apart share the same time. Beyond 2^24 ms
// (about 4.66 hours) float32 can no longer tell consecutive milliseconds apart.
func UniformsAt(start, now time.Time, camPos glm.Vec3f, resolution glm.Vec2f) Uniforms {
	millis := now.Sub(start).Milliseconds()

	return Uniforms{
		CamPos:     camPos,
		Time:       float32(millis) / 1000.0,
		Resolution: resolution,
	}
}
