// SPDX-License-Identifier: MIT

package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when two shapes cannot be combined
	// (broadcasting, reshape size, concatenation off-axis dims).
	ErrShapeMismatch = errors.New("shape: shape mismatch")

	// ErrAxisOutOfRange is returned when an axis is outside [-ndim, ndim).
	ErrAxisOutOfRange = errors.New("shape: axis out of range")

	// ErrIndexOutOfRange is returned when an integer selector is outside the axis length.
	ErrIndexOutOfRange = errors.New("shape: index out of range")

	// ErrBadKey is returned for malformed keys: too many selectors, zero step,
	// repeated axes in a permutation.
	ErrBadKey = errors.New("shape: invalid key")

	// ErrBadShape is returned for negative dimensions or ambiguous reshape requests.
	ErrBadShape = errors.New("shape: invalid shape")
)

// Operation tags used in wrapped errors.
const (
	opSelect    = "Select"
	opBroadcast = "Broadcast"
	opPermute   = "Permute"
	opConcat    = "Concat"
	opReshape   = "Reshape"
	opAxis      = "Axis"
)

func shapeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
