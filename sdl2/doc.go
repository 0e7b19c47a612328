// Package sdl2 opens an OpenGL 3.3 core profile window through SDL2 and
// relays input events verbatim over a single channel.
//
// Unlike the glfw backend, the relay goroutine stops on its own when the
// platform reports a window close or quit, closing the Events channel.
// Delivery is best effort: event kinds this layer does not classify are
// dropped, and a consumer that is a full buffer behind loses new events
// instead of stalling the pump.
package sdl2
