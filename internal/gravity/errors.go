package gravity

import "errors"

// Domain errors for potential construction and evaluation.
var (
	// ErrCapacity indicates a composite already holds MaxComponents kernels.
	ErrCapacity = errors.New("gravity: composite capacity exceeded")

	// ErrPositions indicates a position array whose length is not a
	// multiple of 3.
	ErrPositions = errors.New("gravity: position array length must be a multiple of 3")

	// ErrOutputSize indicates a caller-supplied output buffer of the
	// wrong length for the position batch.
	ErrOutputSize = errors.New("gravity: output buffer length does not match batch size")

	// ErrStep indicates a non-positive finite-difference step.
	ErrStep = errors.New("gravity: finite-difference step must be positive")

	// ErrParams indicates a parameter buffer of the wrong length for a
	// kernel type.
	ErrParams = errors.New("gravity: parameter buffer length mismatch")

	// ErrRotation indicates a rotation matrix without exactly 9 entries.
	ErrRotation = errors.New("gravity: rotation matrix must have 9 entries")
)
