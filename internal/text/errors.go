package text

import "errors"

// Errors returned by text operations.
var (
	// ErrOutOfRange indicates an access or transformation outside the
	// bounds of a windowed text.
	ErrOutOfRange = errors.New("out of range")

	// ErrStaleTransformation indicates the text no longer matches the
	// content a transformation was constructed against.
	ErrStaleTransformation = errors.New("stale transformation")
)
