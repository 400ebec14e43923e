// SPDX-License-Identifier: MIT

package dense2

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned (or panicked with) when buffers or operands disagree
	// with the declared shape and derivative count.
	ErrShapeMismatch = errors.New("dense2: shape mismatch")

	// ErrBadVariable is returned when a variable slot is outside [0, N).
	ErrBadVariable = errors.New("dense2: variable slot out of range")
)

const (
	opNew      = "New"
	opVariable = "Variable"
	opBinary   = "Binary"
)

func denseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
