// SPDX-License-Identifier: MIT
// Package align: sentinel error set.
// Every public failure of the package is one of the sentinels below and MUST
// be matched with errors.Is. The engine never panics on user input.

package align

import (
	"errors"
	"fmt"
)

// NOTE ON CLASSES
// ---------------
// ErrInvalidArgument is the class root. Each argument sentinel wraps it, so
// callers that only care about "bad call" can test for the root, while tests
// pin the exact sentinel. Context (sizes, mode strings) is added with
// fmt.Errorf("...: %w", ErrX) at the return site; errors.Is still matches.

var (
	// ErrInvalidArgument is the class of every caller-side error in this package.
	ErrInvalidArgument = errors.New("align: invalid argument")

	// ErrUnknownMode indicates a mode other than "nw" or "sw".
	ErrUnknownMode = fmt.Errorf("%w: unknown mode", ErrInvalidArgument)

	// ErrDimensionMismatch indicates the matrix is not (len(a)+1)x(len(b)+1).
	ErrDimensionMismatch = fmt.Errorf("%w: matrix dimensions do not match sequences", ErrInvalidArgument)

	// ErrModeMismatch indicates Traceback was asked for a mode the matrix was not built with.
	ErrModeMismatch = fmt.Errorf("%w: traceback mode differs from matrix mode", ErrInvalidArgument)

	// ErrNilMatrix indicates a nil *ScoreMatrix.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidArgument)

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)
)

// ErrCorruptMatrix is returned when traceback finds a cell that none of its
// predecessors explains. Matrices produced by BuildMatrix never trigger it.
var ErrCorruptMatrix = errors.New("align: no predecessor explains cell")
