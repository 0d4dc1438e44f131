package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape:    KeyEscape,
	glfw.KeyEnter:     KeyEnter,
	glfw.KeySpace:     KeySpace,
	glfw.KeyTab:       KeyTab,
	glfw.KeyBackspace: KeyBackspace,
	glfw.KeyLeft:      KeyLeft,
	glfw.KeyRight:     KeyRight,
	glfw.KeyUp:        KeyUp,
	glfw.KeyDown:      KeyDown,
	glfw.KeyF1:        KeyF1,
	glfw.KeyF2:        KeyF2,
	glfw.KeyF3:        KeyF3,
	glfw.KeyF4:        KeyF4,
}

type glfwWindow struct {
	win   *glfw.Window
	input InputState
}

// NewWindow opens a fixed size window without a client api. The gpu
// surface is created later from SurfaceDescriptor.
func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	slog.Info("Window created",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("title", title),
	)

	w := &glfwWindow{win: window}

	configureInput(window, &w.input)

	return w, nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) PollInput() InputState {
	g.input.nextTick()
	glfw.PollEvents()

	g.input.CloseRequested = g.win.ShouldClose()

	return g.input
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

func configureInput(window *glfw.Window, input *InputState) {
	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			input.Keys.press(key)

		case glfw.Release:
			input.Keys.release(key)
		}
	})

	window.SetCloseCallback(func(_win *glfw.Window) {
		input.CloseRequested = true
	})
}

func keyOf(glfwKey glfw.Key) (key Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Debug(
			"Unmapped key code",
			slog.Int("key", int(glfwKey)),
			slog.String("name", glfw.GetKeyName(glfwKey, 0)),
		)
	}

	return
}
