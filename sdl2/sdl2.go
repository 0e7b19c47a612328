package sdl2

import (
	"fmt"
	"github.com/go-gl/gl/v3.3-core/gl"
	windowing "github.com/hadronized/luminance-windowing"
	"github.com/hadronized/luminance-windowing/internal/glload"
	"github.com/ignite-laboratories/core/std"
	"github.com/veandco/go-sdl2/sdl"
	"log/slog"
	"runtime"
	"time"
)

// Open creates a window of the requested dimension with an OpenGL 3.3 core
// profile context, makes the context current on the calling goroutine and
// starts the relay goroutine that pumps SDL events into the Events channel.
// The calling goroutine is locked to its OS thread, since the context
// belongs to that thread from here on. A nil dim opens a DefaultSize
// window.
//
// Every creation failure comes back as a *windowing.DeviceError.
func Open(dim windowing.WindowDim, title string, opt windowing.WindowOpt) (*Device, error) {
	runtime.LockOSThread()

	d := &Device{
		events: make(chan Event, eventBacklog),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	synchro := make(std.Synchro)
	boot := make(chan error)

	go d.relay(synchro, boot)
	if err := <-boot; err != nil {
		return nil, &windowing.DeviceError{Err: err}
	}

	// Window creation has to happen on the goroutine that pumps events.
	var err error
	synchro.Send(func() {
		err = d.createWindow(dim, title, opt)
	})
	if err != nil {
		d.Close()
		return nil, &windowing.DeviceError{Err: err}
	}

	context, err := d.window.GLCreateContext()
	if err != nil {
		d.Close()
		return nil, &windowing.DeviceError{Err: fmt.Errorf("create context: %w", err)}
	}
	d.context = context

	if err := glload.Load(sdl.GLGetProcAddress); err != nil {
		d.Close()
		return nil, &windowing.DeviceError{Err: err}
	}
	if err := sdl.GLSetSwapInterval(1); err != nil {
		slog.Warn("set swap interval", "error", err)
	}

	slog.Info("window created",
		"title", title,
		"width", d.size.X,
		"height", d.size.Y,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
	)
	return d, nil
}

// createWindow runs on the relay goroutine. It builds the window for dim
// and applies the cursor option.
func (d *Device) createWindow(dim windowing.WindowDim, title string, opt windowing.WindowOpt) error {
	if dim == nil {
		dim = windowing.Windowed{}
	}

	size, ok := windowing.RequestedSize(dim)
	if !ok {
		size = windowing.DefaultSize
	}

	flags := uint32(sdl.WINDOW_OPENGL)
	switch dim.(type) {
	case windowing.Fullscreen:
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	case windowing.FullscreenRestricted:
		flags |= sdl.WINDOW_FULLSCREEN
	}

	handle, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(size.X), int32(size.Y),
		flags,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	// Desktop fullscreen ignores the requested size; the window knows what
	// it actually got.
	if _, ok := dim.(windowing.Fullscreen); ok {
		w, h := handle.GetSize()
		size = std.XY[int]{X: int(w), Y: int(h)}
	}

	if opt.CursorHidden() {
		if _, err := sdl.ShowCursor(sdl.DISABLE); err != nil {
			slog.Warn("hide cursor", "error", err)
		}
	}

	d.window = handle
	d.size = size
	d.swap = handle.GLSwap
	return nil
}

// relay initializes SDL's video layer and pumps its event loop, forwarding
// through dispatch until the Device is closed or the platform reports a
// window close. Teardown of the window and SDL itself belongs to Close;
// the relay only stops pumping and closes the channel.
func (d *Device) relay(synchro std.Synchro, boot chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		boot <- fmt.Errorf("sdl init: %w", err)
		return
	}

	// Context attributes must be set before the window exists.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	boot <- nil

	driver, _ := sdl.GetCurrentVideoDriver()
	slog.Debug("event relay started", "driver", driver)

	running := true
	for running {
		select {
		case <-d.stop:
			running = false
			continue
		default:
		}

		synchro.Engage()
		running = d.pump(sdl.PollEvent)

		// The pump doesn't need to cycle at more than 1kHz. Why waste
		// the cycles?
		time.Sleep(time.Millisecond)
	}

	close(d.events)
	close(d.done)
	slog.Debug("event relay stopped")
}
