package pulse

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

func init() {
	// glfw and the surface must be driven from the main thread
	runtime.LockOSThread()
}

// ContextOptions select the adapter a Context is created on.
type ContextOptions struct {
	// use a software adapter even if a hardware one is available
	ForceFallbackAdapter bool

	PowerPreference wgpu.PowerPreference

	// nil keeps the log level of the native library
	LogLevel *wgpu.LogLevel
}

// ParseLogLevel maps a log level name like "warn" to the wgpu log level.
func ParseLogLevel(name string) (wgpu.LogLevel, error) {
	switch strings.ToUpper(name) {
	case "OFF":
		return wgpu.LogLevelOff, nil
	case "ERROR":
		return wgpu.LogLevelError, nil
	case "WARN":
		return wgpu.LogLevelWarn, nil
	case "INFO":
		return wgpu.LogLevelInfo, nil
	case "DEBUG":
		return wgpu.LogLevelDebug, nil
	case "TRACE":
		return wgpu.LogLevelTrace, nil
	default:
		return wgpu.LogLevelOff, fmt.Errorf("unknown wgpu log level %q", name)
	}
}

// ParsePowerPreference maps "low" or "high" to the adapter power preference.
// An empty name lets the implementation decide.
func ParsePowerPreference(name string) (wgpu.PowerPreference, error) {
	switch strings.ToLower(name) {
	case "":
		return wgpu.PowerPreferenceUndefined, nil
	case "low":
		return wgpu.PowerPreferenceLowPower, nil
	case "high":
		return wgpu.PowerPreferenceHighPerformance, nil
	default:
		return wgpu.PowerPreferenceUndefined, fmt.Errorf("unknown power preference %q", name)
	}
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

func New(sd *wgpu.SurfaceDescriptor, opts ContextOptions) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	if opts.LogLevel != nil {
		wgpu.SetLogLevel(*opts.LogLevel)
	}

	st = &Context{}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	st.Surface = instance.CreateSurface(sd)

	// the adapter must be able to present to our surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		PowerPreference:      opts.PowerPreference,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("request adapter: %w", err)
	}

	info := st.Adapter.GetInfo()
	slog.Info("Using gpu adapter",
		slog.String("name", info.Name),
		slog.Any("backend", info.BackendType),
		slog.Bool("fallback", opts.ForceFallbackAdapter),
	)

	st.Device, err = st.Adapter.RequestDevice(nil)
	if err != nil {
		return st, fmt.Errorf("request device: %w", err)
	}

	st.Queue = st.Device.GetQueue()

	return st, nil
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
