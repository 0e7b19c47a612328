package sdl2

import "github.com/veandco/go-sdl2/sdl"

// Event is the binding's own tagged event value, forwarded as SDL produced
// it. Consumers type switch on the pointer kinds they care about:
// *sdl.KeyboardEvent, *sdl.MouseButtonEvent, *sdl.MouseMotionEvent and
// *sdl.MouseWheelEvent.
type Event = sdl.Event

// eventBacklog is how far the consumer may lag before the relay starts
// dropping events.
const eventBacklog = 256

// send delivers ev best effort: when the consumer has fallen a full buffer
// behind, the event is dropped rather than stalling the pump.
func send[T any](ch chan<- T, ev T) {
	select {
	case ch <- ev:
	default:
	}
}

// pump drains poll until it runs dry, dispatching each event. It reports
// whether the relay should keep pumping; anything queued behind the event
// that stopped it stays undelivered.
func (d *Device) pump(poll func() Event) bool {
	for event := poll(); event != nil; event = poll() {
		if !d.dispatch(event) {
			return false
		}
	}
	return true
}

// dispatch classifies one platform event, forwarding the input kinds and
// dropping the rest. It reports whether the relay should keep pumping;
// a window close or quit stops it.
func (d *Device) dispatch(event Event) bool {
	switch e := event.(type) {
	case *sdl.KeyboardEvent, *sdl.MouseButtonEvent, *sdl.MouseMotionEvent, *sdl.MouseWheelEvent:
		send(d.events, e)
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_CLOSE {
			return false
		}
	case *sdl.QuitEvent:
		return false
	}
	return true
}
