package kernels

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow indicates a rolling operator was constructed with a
// non-positive window length.
var ErrInvalidWindow = errors.New("kernels: window must be positive")

// ErrStateShape indicates a checkpoint state block's window or lane count
// does not match the kernel being restored into.
var ErrStateShape = errors.New("kernels: checkpoint state shape mismatch")

func kernelsErrorf(op string, err error) error {
	return fmt.Errorf("kernels: %s: %w", op, err)
}
