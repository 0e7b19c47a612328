package glfw

import (
	"fmt"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	windowing "github.com/hadronized/luminance-windowing"
	"github.com/hadronized/luminance-windowing/internal/glload"
	"github.com/ignite-laboratories/core/std"
	"log/slog"
	"runtime"
	"time"
)

// Open creates a window of the requested dimension with an OpenGL 3.3 core
// profile context, makes the context current on the calling goroutine and
// starts the relay goroutine that pumps GLFW events into the Device's
// receivers. The calling goroutine is locked to its OS thread, since the
// context belongs to that thread from here on. A nil dim opens a
// DefaultSize window.
//
// Every creation failure comes back as a *windowing.DeviceError.
func Open(dim windowing.WindowDim, title string, opt windowing.WindowOpt) (*Device, error) {
	runtime.LockOSThread()

	d := &Device{
		detach: glfw.DetachCurrentContext,
		kbd:    make(chan KeyEvent, eventBacklog),
		mouse:  make(chan MouseEvent, eventBacklog),
		cursor: make(chan std.XY[float32], eventBacklog),
		scroll: make(chan std.XY[float32], eventBacklog),
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

	d.window.MakeContextCurrent()
	if err := glload.Load(glfw.GetProcAddress); err != nil {
		d.Close()
		return nil, &windowing.DeviceError{Err: err}
	}
	glfw.SwapInterval(1)

	slog.Info("window created",
		"title", title,
		"width", d.size.X,
		"height", d.size.Y,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
	)
	return d, nil
}

// createWindow runs on the relay goroutine. It applies the context hints,
// builds the window for dim and binds the input callbacks.
func (d *Device) createWindow(dim windowing.WindowDim, title string, opt windowing.WindowOpt) error {
	if dim == nil {
		dim = windowing.Windowed{}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// The Device reports the size it was created with, so the window must
	// keep it.
	glfw.WindowHint(glfw.Resizable, glfw.False)

	size, _ := windowing.RequestedSize(dim)
	var monitor *glfw.Monitor
	switch dim.(type) {
	case windowing.Fullscreen:
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		size = std.XY[int]{X: mode.Width, Y: mode.Height}
	case windowing.FullscreenRestricted:
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(size.X, size.Y, title, monitor, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	if opt.CursorHidden() {
		handle.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}

	handle.SetKeyCallback(d.onKey)
	handle.SetMouseButtonCallback(d.onMouseButton)
	handle.SetCursorPosCallback(d.onCursorPos)
	handle.SetScrollCallback(d.onScroll)

	d.window = handle
	d.size = size
	d.swap = handle.SwapBuffers
	return nil
}

// relay owns GLFW from init to terminate. It pumps the event loop until the
// Device is closed; GLFW itself never tells it to stop, so without Close it
// runs for the life of the process. The window close button merely marks
// the window, as this layer has no opinion on what close should mean.
func (d *Device) relay(synchro std.Synchro, boot chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		boot <- fmt.Errorf("glfw init: %w", err)
		return
	}
	boot <- nil

	slog.Debug("event relay started", "glfw", glfw.GetVersionString())

	running := true
	for running {
		select {
		case <-d.stop:
			running = false
			continue
		default:
		}

		synchro.Engage()
		glfw.PollEvents()

		// The pump doesn't need to cycle at more than 1kHz. Why waste
		// the cycles?
		time.Sleep(time.Millisecond)
	}

	if d.window != nil {
		d.window.Destroy()
	}
	glfw.Terminate()

	close(d.kbd)
	close(d.mouse)
	close(d.cursor)
	close(d.scroll)
	close(d.done)
	slog.Debug("event relay stopped")
}
