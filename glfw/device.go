package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core/std"
	"log/slog"
	"sync"
)

// Device is an open window with its OpenGL context current on the goroutine
// that called Open, plus the relay goroutine feeding the event receivers.
type Device struct {
	size std.XY[int]

	window *glfw.Window
	swap   func()
	detach func()

	kbd    chan KeyEvent
	mouse  chan MouseEvent
	cursor chan std.XY[float32]
	scroll chan std.XY[float32]

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

// Kbd receives one KeyEvent per keyboard transition.
func (d *Device) Kbd() <-chan KeyEvent {
	return d.kbd
}

// Mouse receives one MouseEvent per button transition.
func (d *Device) Mouse() <-chan MouseEvent {
	return d.mouse
}

// Cursor receives the cursor position, in pixels from the window's top left
// corner, every time it moves.
func (d *Device) Cursor() <-chan std.XY[float32] {
	return d.cursor
}

// Scroll receives one delta per scroll step.
func (d *Device) Scroll() <-chan std.XY[float32] {
	return d.scroll
}

// Draw runs f, which is expected to issue GL calls against the current
// context, then swaps the window's buffers. GL errors are f's business, not
// checked here. Draw must be called from the goroutine that called Open,
// and not after Close.
func (d *Device) Draw(f func()) {
	f()
	d.swap()
}

// Close stops the relay goroutine, waits for it to tear the window down and
// closes the event receivers. Close is idempotent and must be called from
// the goroutine that called Open. A Device that is never closed keeps its
// relay until the process exits; that leaks a thread but nothing worse.
func (d *Device) Close() error {
	d.closing.Do(func() {
		slog.Info("closing window")
		d.detach()
		close(d.stop)
		<-d.done
	})
	return nil
}
