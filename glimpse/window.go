package glimpse

import "github.com/cogentcore/webgpu/wgpu"

// Window is the presentation surface of the application: it owns the native
// window and hands out a descriptor the gpu can create a surface from.
type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// PollInput drains all pending window events and returns the
	// resulting input state.
	PollInput() InputState

	Terminate()
}
