package sdl2

import (
	"github.com/ignite-laboratories/core/std"
	"github.com/veandco/go-sdl2/sdl"
	"log/slog"
	"sync"
)

// Device is an open window with its OpenGL context current on the goroutine
// that called Open, plus the relay goroutine feeding the Events channel.
type Device struct {
	size std.XY[int]

	window  *sdl.Window
	context sdl.GLContext
	swap    func()

	events chan Event

	stop    chan struct{}
	done    chan struct{}
	closing sync.Once
}

// Width returns the window width in pixels.
func (d *Device) Width() int {
	return d.size.X
}

// Height returns the window height in pixels.
func (d *Device) Height() int {
	return d.size.Y
}

// Size returns the window dimensions in pixels.
func (d *Device) Size() std.XY[int] {
	return d.size
}

// Events receives the relayed platform events. The channel closes once the
// relay stops, whether through Close or through a window close reported by
// the platform.
func (d *Device) Events() <-chan Event {
	return d.events
}

// Draw runs f, which is expected to issue GL calls against the current
// context, then swaps the window's buffers. GL errors are f's business, not
// checked here. Draw must be called from the goroutine that called Open,
// and not after Close.
func (d *Device) Draw(f func()) {
	f()
	d.swap()
}

// Close stops the relay goroutine if it is still pumping, waits for it,
// then tears down the context, the window and SDL itself. Close is
// idempotent and must be called from the goroutine that called Open. A
// Device that is never closed keeps its window (and, until the platform
// reports a close, its relay) until the process exits.
func (d *Device) Close() error {
	d.closing.Do(func() {
		slog.Info("closing window")
		if d.context != nil {
			sdl.GLDeleteContext(d.context)
		}
		close(d.stop)
		<-d.done
		if d.window != nil {
			d.window.Destroy()
		}
		sdl.Quit()
	})
	return nil
}
