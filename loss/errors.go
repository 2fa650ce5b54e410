package loss

import "github.com/pkg/errors"

// Caller contract violations reported by Evaluate. Match with errors.Is.
var (
	// ErrMissingInput is returned when a term is enabled but the tensor
	// sequence it reduces over was not supplied.
	ErrMissingInput = errors.New("loss: required input sequence is missing")

	// ErrInvalidFilterLength is returned when the CMF term is enabled and the
	// lowpass filter's last dimension is odd.
	ErrInvalidFilterLength = errors.New("loss: length of lowpass filter must be even")

	// ErrShapeMismatch is returned when data and reconstruction shapes differ,
	// or a coefficient/attribution tensor's leading dimension is not the batch size.
	ErrShapeMismatch = errors.New("loss: tensor shape mismatch")
)
