// SPDX-License-Identifier: MIT

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when buffers disagree with the declared shape and width.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrIndexBound is returned when a dense bound does not cover a referenced index,
	// or a referenced index is negative.
	ErrIndexBound = errors.New("sparse: index outside dense bound")
)

const (
	opNew     = "New"
	opToDense = "ToDense"
)

func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
