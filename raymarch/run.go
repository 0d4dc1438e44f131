package raymarch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/raymarch/glimpse"
	"github.com/oliverbestmann/raymarch/glm"
	"github.com/oliverbestmann/raymarch/pulse"
	"github.com/pkg/profile"
)

// Run opens the window, sets up the gpu and renders until the user
// quits. Every failure before the first frame is returned as an error.
func Run(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	presentMode, err := opts.WGPUPresentMode()
	if err != nil {
		return err
	}

	ctxOpts, err := opts.ContextOptions()
	if err != nil {
		return err
	}

	shaders, err := LoadShaders(opts.VertexShader, opts.FragmentShader)
	if err != nil {
		return fmt.Errorf("load shaders: %w", err)
	}

	// reject broken shaders before opening a window
	if err := shaders.Validate(); err != nil {
		return err
	}

	switch opts.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	// create a new window
	win, err := glimpse.NewWindow(opts.Width, opts.Height, opts.Title)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor(), ctxOpts)
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	width, height := win.GetSize()

	view := pulse.NewView(ctx, presentMode)
	view.Configure(width, height)

	renderer, err := NewRenderer(view, shaders, FullScreenQuad(), opts.Clear())
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	defer renderer.Release()

	loop := &Loop{
		Input:      win,
		Renderer:   renderer,
		Start:      time.Now(),
		CamPos:     opts.CamPos,
		Resolution: glm.Vec2Of[float32](width, height),
	}

	camX, camY, camZ := loop.CamPos.XYZ()

	slog.Info("Start rendering",
		slog.Float64("camX", float64(camX)),
		slog.Float64("camY", float64(camY)),
		slog.Float64("camZ", float64(camZ)),
		slog.Any("resolution", loop.Resolution),
	)

	return loop.Run()
}
