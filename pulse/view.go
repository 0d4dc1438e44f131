package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// View is the configured swap chain of a Context.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

func NewView(dev *Context, presentMode wgpu.PresentMode) *View {
	st := &View{Context: dev}

	// Print the available render formats
	caps := dev.Surface.GetCapabilities(dev.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	st.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      wgpu.TextureFormatBGRA8Unorm,
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],
	}

	return st
}

// Format is the texture format of the surface textures.
func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

func (vs *View) Configure(width, height uint32) {
	slog.Debug("Configure surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Adapter, vs.Device, vs.surfaceConfig)
}

// SurfaceFrame is a surface texture acquired for exactly one frame.
// Call Present once rendering was submitted, Release in any case.
type SurfaceFrame struct {
	Target RenderTarget

	surface *wgpu.Surface
	texture *wgpu.Texture
}

// Acquire gets the next texture of the swap chain.
func (vs *View) Acquire() (*SurfaceFrame, error) {
	texture, err := vs.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("get current texture: %w", err)
	}

	textureGuard := NewReleaseGuard(texture)
	defer textureGuard.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create surface view: %w", err)
	}

	textureGuard.Keep()

	frame := &SurfaceFrame{
		surface: vs.Surface,
		texture: texture,
		Target: RenderTarget{
			View:   view,
			Format: vs.surfaceConfig.Format,
			Width:  vs.surfaceConfig.Width,
			Height: vs.surfaceConfig.Height,
		},
	}

	return frame, nil
}

// Present shows the frame on screen. The texture is owned by the
// swap chain afterwards and will not be released by Release.
func (f *SurfaceFrame) Present() {
	f.surface.Present()
	f.texture = nil
}

func (f *SurfaceFrame) Release() {
	if f.Target.View != nil {
		f.Target.View.Release()
		f.Target.View = nil
	}

	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}
