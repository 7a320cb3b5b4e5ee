package textedit

import "errors"

var (
	// ErrCapacityExceeded is returned when an insert would push the buffer
	// past its maximum length. The buffer is left unchanged.
	ErrCapacityExceeded = errors.New("textedit: capacity exceeded")

	// ErrInvalidOffset is returned to API callers passing an offset or range
	// outside [0, Len()]. Internal callers clamp instead.
	ErrInvalidOffset = errors.New("textedit: invalid offset")
)
