package raymarch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/raymarch/glimpse"
	"github.com/oliverbestmann/raymarch/glm"
)

type InputSource interface {
	PollInput() glimpse.InputState
}

type FrameRenderer interface {
	RenderFrame(uniforms Uniforms) error
}

// Loop drives the application: once per iteration it polls input,
// computes the uniforms and renders a frame. It has no other state
// than the frame statistics.
type Loop struct {
	Input    InputSource
	Renderer FrameRenderer

	// captured once at startup, all frame times are relative to it
	Start time.Time

	CamPos     glm.Vec3f
	Resolution glm.Vec2f

	// clock used to compute the frame time, defaults to time.Now
	Now func() time.Time

	Stats FrameTimes
}

// Run blocks until the window is closed or escape was released.
func (l *Loop) Run() error {
	now := l.Now
	if now == nil {
		now = time.Now
	}

	for {
		input := l.Input.PollInput()
		if input.ExitRequested() {
			slog.Info("Exit requested",
				slog.Bool("close", input.CloseRequested),
				slog.Uint64("frames", l.Stats.FrameCount),
			)

			return nil
		}

		uniforms := UniformsAt(l.Start, now(), l.CamPos, l.Resolution)

		if err := l.Renderer.RenderFrame(uniforms); err != nil {
			return fmt.Errorf("render frame %d: %w", l.Stats.FrameCount, err)
		}

		if l.Stats.Tick(now()) {
			slog.Debug("Frame stats",
				slog.Float64("fps", l.Stats.FPS()),
				slog.Duration("max", l.Stats.MaxDuration),
				slog.Float64("time", float64(uniforms.Time)),
			)
		}
	}
}
