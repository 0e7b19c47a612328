package windowing

// DeviceError wraps the failure that aborted window or context creation.
// There is no finer taxonomy; anything that goes wrong while a backend
// builds a Device surfaces as one of these.
type DeviceError struct {
	Err error
}

func (e *DeviceError) Error() string {
	return "create device: " + e.Err.Error()
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}
