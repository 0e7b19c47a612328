// Package windowing holds the shared types for opening an OpenGL window
// through one of the backend packages, glfw and sdl2.
//
// A backend's Open call builds a window with an OpenGL 3.3 core profile
// context, makes the context current on the calling goroutine, binds the GL
// function table and starts a relay goroutine that pumps platform events
// into the Device's receivers. Delivery is best effort: events the relay
// does not recognize are dropped, and a receiver that falls a full buffer
// behind loses new events rather than stalling the pump. Events that are
// delivered arrive in the order the platform produced them.
//
// One Device at a time. The backends own process-wide platform state
// (GLFW/SDL initialization, the GL function table), so opening a second
// Device while another is open is unsupported.
package windowing
