package glimpse

import "log/slog"

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool

	// keys that where just pressed after the last call to nextTick()
	JustPressed map[Key]bool

	// keys that were just released after the last call to nextTick()
	JustReleased map[Key]bool
}

func (k *KeysState) press(key Key) {
	slog.Debug("Key just pressed", slog.String("key", key.String()))

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) release(key Key) {
	slog.Debug("Key just released", slog.String("key", key.String()))

	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

// InputState is the result of draining all pending window events.
type InputState struct {
	Keys KeysState

	// set once the user asked the window to close
	CloseRequested bool
}

// ExitRequested reports whether the window was asked to close or the
// escape key was released since the previous poll. Pressing escape
// alone does not count.
func (s *InputState) ExitRequested() bool {
	return s.CloseRequested || s.Keys.JustReleased[KeyEscape]
}

func (s *InputState) nextTick() {
	s.Keys.nextTick()
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
