// SPDX-License-Identifier: MIT

// Package shape implements the outer-shape arithmetic shared by the AD containers.
//
// An AD array stores every field (value, coefficients, indices) as a flat row-major
// buffer. The value buffer has the outer shape S; the term buffers have shape S+(W),
// where W is a sparse width that structural operations never touch. Package shape
// therefore only has to answer one question for each structural operation: for every
// element of the result, which flat element of the source does it come from?
//
// The answers are returned as offset tables ([]int), one entry per result element in
// row-major order:
//
//   - Select: numpy-like keys (Idx, Span, Step, All, Take) over outer axes.
//   - BroadcastMap: right-aligned broadcasting with stride-0 axes.
//   - Permute / MoveAxisLast: axis transposition.
//   - ConcatMap: destination offsets of each operand inside a concatenation.
//   - Reshape / Squeeze: size-preserving shape rewrites (no offsets needed).
//
// Errors are package sentinels (see errors.go); callers match them with errors.Is.
package shape
