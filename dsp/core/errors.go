package core

import "errors"

var (
	// ErrInvalidConfiguration reports parameters that cannot describe a valid
	// operation, such as a band filter with a single transition frequency.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInsufficientData reports an input buffer too short for the operation.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrNumericDegenerate reports a normalization that would divide by zero.
	ErrNumericDegenerate = errors.New("numeric degenerate")

	// ErrUnsupportedPrecision reports a floating point width the engine
	// cannot represent.
	ErrUnsupportedPrecision = errors.New("unsupported precision")
)
