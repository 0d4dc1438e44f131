package raymarch

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/raymarch/glm"
	"github.com/oliverbestmann/raymarch/pulse"
	"github.com/pelletier/go-toml/v2"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Ray Marching"
)

// Options configure a run. The window size is fixed at compile time,
// everything else can be changed with a config file.
type Options struct {
	Width  int `toml:"-"`
	Height int `toml:"-"`

	Title string `toml:"title"`

	// position of the camera, constant for the whole run
	CamPos glm.Vec3f `toml:"cam_pos"`

	// linear rgba color the frame is cleared to
	ClearColor [4]float32 `toml:"clear_color"`

	// one of fifo, mailbox or immediate
	PresentMode string `toml:"present_mode"`

	// paths to wgsl files replacing the embedded shaders
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`

	// cpu or mem to write a profile while running
	Profile string `toml:"profile"`

	// adapter selection, see pulse.ContextOptions
	ForceFallbackAdapter bool   `toml:"force_fallback_adapter"`
	PowerPreference      string `toml:"power_preference"`

	// log level of the native webgpu library, empty keeps its default
	WGPULogLevel string `toml:"wgpu_log_level"`
}

func DefaultOptions() Options {
	return Options{
		Width:       WindowWidth,
		Height:      WindowHeight,
		Title:       WindowTitle,
		CamPos:      glm.Vec3f{8.0, 5.0, 7.0},
		ClearColor:  [4]float32{0.2, 0.2, 0.2, 1.0},
		PresentMode: "fifo",
	}
}

// LoadOptions reads options from the toml file at path. A missing file
// is not an error, the defaults are returned instead.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			slog.Debug("No config file found, using defaults", slog.String("path", path))

		case err != nil:
			return Options{}, fmt.Errorf("read config: %w", err)

		default:
			dec := toml.NewDecoder(bytes.NewReader(data))
			dec.DisallowUnknownFields()

			if err := dec.Decode(&opts); err != nil {
				return Options{}, fmt.Errorf("parse config %q: %w", path, err)
			}

			slog.Info("Loaded config", slog.String("path", path))
		}
	}

	if profile := os.Getenv("RAYMARCH_PROFILE"); profile != "" {
		opts.Profile = profile
	}

	if os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1" {
		opts.ForceFallbackAdapter = true
	}

	if level := os.Getenv("WGPU_LOG_LEVEL"); level != "" {
		opts.WGPULogLevel = level
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", o.Width, o.Height)
	}

	if _, err := o.WGPUPresentMode(); err != nil {
		return err
	}

	if _, err := o.ContextOptions(); err != nil {
		return err
	}

	switch o.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile mode %q", o.Profile)
	}

	return nil
}

func (o Options) Clear() pulse.Color {
	return pulse.ColorOf(o.ClearColor)
}

// ContextOptions returns the adapter selection for pulse.New.
func (o Options) ContextOptions() (pulse.ContextOptions, error) {
	powerPreference, err := pulse.ParsePowerPreference(o.PowerPreference)
	if err != nil {
		return pulse.ContextOptions{}, err
	}

	ctxOpts := pulse.ContextOptions{
		ForceFallbackAdapter: o.ForceFallbackAdapter,
		PowerPreference:      powerPreference,
	}

	if o.WGPULogLevel != "" {
		level, err := pulse.ParseLogLevel(o.WGPULogLevel)
		if err != nil {
			return pulse.ContextOptions{}, err
		}

		ctxOpts.LogLevel = &level
	}

	return ctxOpts, nil
}

func (o Options) WGPUPresentMode() (wgpu.PresentMode, error) {
	switch strings.ToLower(o.PresentMode) {
	case "", "fifo":
		return wgpu.PresentModeFifo, nil
	case "mailbox":
		return wgpu.PresentModeMailbox, nil
	case "immediate":
		return wgpu.PresentModeImmediate, nil
	default:
		return 0, fmt.Errorf("unknown present mode %q", o.PresentMode)
	}
}
