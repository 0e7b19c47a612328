// Package glfw opens an OpenGL 3.3 core profile window through GLFW and
// relays keyboard, mouse button, cursor and scroll input over four typed
// channels.
//
// The relay goroutine pumps GLFW for the life of the Device. GLFW gives it
// no stop signal of its own, so the relay runs until Close is called or the
// process exits. Delivery is best effort: unknown keys are dropped, and a
// receiver that is a full buffer behind loses new events instead of
// stalling the pump.
package glfw
