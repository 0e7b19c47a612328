package windowing

// WindowOpt carries the window options recognized by the backends. The zero
// value leaves the cursor visible.
type WindowOpt struct {
	hideCursor bool
}

// HideCursor returns a copy of the options with cursor visibility set.
func (o WindowOpt) HideCursor(hide bool) WindowOpt {
	o.hideCursor = hide
	return o
}

// CursorHidden reports whether the cursor should be hidden.
func (o WindowOpt) CursorHidden() bool {
	return o.hideCursor
}
