package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core/std"
)

// Key, Action and MouseButton are the binding's own input types; no
// remapping happens between GLFW and the receivers.
type (
	Key         = glfw.Key
	Action      = glfw.Action
	MouseButton = glfw.MouseButton
)

// KeyEvent is one keyboard transition: which key, and whether it was
// pressed, released or repeated.
type KeyEvent struct {
	Key    Key
	Action Action
}

// MouseEvent is one mouse button transition.
type MouseEvent struct {
	Button MouseButton
	Action Action
}

// eventBacklog is how far a receiver may lag before the relay starts
// dropping its events.
const eventBacklog = 256

// send delivers ev best effort: when the receiver has fallen a full buffer
// behind, the event is dropped rather than stalling the pump.
func send[T any](ch chan<- T, ev T) {
	select {
	case ch <- ev:
	default:
	}
}

// The callbacks below run on the relay goroutine, from PollEvents.

func (d *Device) onKey(_ *glfw.Window, key Key, _ int, action Action, _ glfw.ModifierKey) {
	// Keyless input (media keys and the like) carries no usable code.
	if key == glfw.KeyUnknown {
		return
	}
	send(d.kbd, KeyEvent{Key: key, Action: action})
}

func (d *Device) onMouseButton(_ *glfw.Window, button MouseButton, action Action, _ glfw.ModifierKey) {
	send(d.mouse, MouseEvent{Button: button, Action: action})
}

func (d *Device) onCursorPos(_ *glfw.Window, x, y float64) {
	send(d.cursor, std.XY[float32]{X: float32(x), Y: float32(y)})
}

func (d *Device) onScroll(_ *glfw.Window, x, y float64) {
	send(d.scroll, std.XY[float32]{X: float32(x), Y: float32(y)})
}
