// SPDX-License-Identifier: MIT

package sparse2

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsead/shape"
)

var (
	// ErrShapeMismatch is returned (or panicked with, for arithmetic) when buffers
	// disagree with the declared shape or operands cannot be broadcast together.
	// It wraps shape.ErrShapeMismatch.
	ErrShapeMismatch = fmt.Errorf("sparse2: %w", shape.ErrShapeMismatch)

	// ErrIndexBound is returned when a dense bound does not cover a referenced index,
	// or a referenced index is negative.
	ErrIndexBound = errors.New("sparse2: index outside dense bound")

	// ErrIllFormedSolve is returned when a weak-form split yields an empty or
	// non-square coupling block.
	ErrIllFormedSolve = errors.New("sparse2: ill-formed weak-form partition")

	// ErrNoIndices is returned when a system bound cannot be inferred because the
	// expression references no index.
	ErrNoIndices = errors.New("sparse2: expression references no index")
)

// Operation tags used in wrapped errors and panics.
const (
	opNew        = "New"
	opIdentity   = "Identity"
	opPlain      = "NewPlain"
	opBinary     = "Binary"
	opIndex      = "Index"
	opSet        = "Set"
	opReshape    = "Reshape"
	opBroadcast  = "BroadcastTo"
	opTranspose  = "Transpose"
	opReduce     = "Reduce"
	opSort       = "Sort"
	opConcat     = "Concatenate"
	opStack      = "Stack"
	opToDense    = "ToDense"
	opCompose    = "Compose"
	opSystem     = "System"
	opStationary = "SolveStationary"
	opWeakForm   = "WeakFormSystem"
	opSolveWeak  = "SolveWeakForm"
)

// sparse2Errorf tags err with op. Shape mismatches from package shape are
// re-labelled so that errors.Is matches ErrShapeMismatch.
func sparse2Errorf(op string, err error) error {
	if errors.Is(err, shape.ErrShapeMismatch) && !errors.Is(err, ErrShapeMismatch) {
		return fmt.Errorf("%s: %w: %w", op, ErrShapeMismatch, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
