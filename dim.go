package windowing

// WindowDim selects the size and mode of the window to create. The set of
// dimensions is closed: Windowed, Fullscreen and FullscreenRestricted.
type WindowDim interface {
	isWindowDim()
}

// Windowed requests a window of fixed pixel dimensions.
type Windowed struct {
	Width  int
	Height int
}

func (Windowed) isWindowDim() {}

// Fullscreen requests a fullscreen window sized by the primary display's
// current mode.
type Fullscreen struct{}

func (Fullscreen) isWindowDim() {}

// FullscreenRestricted requests a fullscreen window restricted to the given
// pixel dimensions rather than the display's current mode.
type FullscreenRestricted struct {
	Width  int
	Height int
}

func (FullscreenRestricted) isWindowDim() {}
