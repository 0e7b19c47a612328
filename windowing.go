package windowing

import "github.com/ignite-laboratories/core/std"

// DefaultSize sets the window size used when a dimension requests a
// non-positive width or height.
//
// If not overridden, it defaults to 640x480px
var DefaultSize = std.XY[int]{
	X: 640,
	Y: 480,
}

// RequestedSize returns the pixel size a dimension asks for, substituting
// DefaultSize for non-positive components. The second return is false when
// the dimension carries no size of its own (Fullscreen), in which case the
// display's current mode decides.
func RequestedSize(dim WindowDim) (std.XY[int], bool) {
	switch d := dim.(type) {
	case Windowed:
		return orDefault(d.Width, d.Height), true
	case FullscreenRestricted:
		return orDefault(d.Width, d.Height), true
	default:
		return std.XY[int]{}, false
	}
}

func orDefault(w, h int) std.XY[int] {
	if w <= 0 || h <= 0 {
		return DefaultSize
	}
	return std.XY[int]{X: w, Y: h}
}
