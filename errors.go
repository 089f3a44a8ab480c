package pmos

import "errors"

// Sentinel errors for the prediction entry points. Callers distinguish
// failure classes with errors.Is; wrapped messages carry the offending
// values.
var (
	// ErrInvalidResolution reports encoded video dimensions outside [1,8192].
	ErrInvalidResolution = errors.New("invalid video resolution")

	// ErrInvalidPlayerSize reports player window dimensions outside [1,8192].
	ErrInvalidPlayerSize = errors.New("invalid player size")

	// ErrInvalidHDR reports an HDR/SDR indicator that is neither 0 nor 1.
	// The Go API models the indicator as a bool, so this error only arises
	// at boundaries that accept it as an integer (HTTP, CSV).
	ErrInvalidHDR = errors.New("invalid HDR/SDR indicator")

	// ErrInvalidUpsampling reports an upsampling selector outside the enum.
	ErrInvalidUpsampling = errors.New("invalid upsampling method")

	// ErrInvalidDevice reports a device class selector outside the enum.
	ErrInvalidDevice = errors.New("invalid device class")

	// ErrMissingProfile reports a nil custom profile for DeviceCustom.
	ErrMissingProfile = errors.New("missing custom device profile")

	// ErrInvalidProfile reports a custom profile field outside its bounds.
	ErrInvalidProfile = errors.New("invalid custom device profile")

	// ErrGeometryOutOfRange reports a derived viewing angle or angular
	// resolution outside plausible bounds. The inputs were individually in
	// range but jointly describe an implausible viewing setup.
	ErrGeometryOutOfRange = errors.New("derived viewing geometry out of range")

	// ErrInvalidMetricValue reports an objective metric value outside the
	// metric's declared domain.
	ErrInvalidMetricValue = errors.New("invalid objective metric value")
)
