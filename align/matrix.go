package align

import (
	"fmt"
	"strconv"
	"strings"
)

// matrixErrorf wraps an underlying error with ScoreMatrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("ScoreMatrix.%s(%d,%d): %w", method, row, col, err)
}

// ScoreMatrix is the dense (m+1)x(n+1) dynamic-programming table of one
// alignment. Cells live in a single row-major slice; cell (i,j) is
// data[i*c+j]. Row 0 and column 0 are the "nothing consumed yet" boundary.
//
// A ScoreMatrix remembers the Config it was built with, so Traceback can
// re-derive predecessors from the same recurrence. It is read-only once
// BuildMatrix returns and is safe for concurrent readers.
type ScoreMatrix struct {
	r, c int     // rows (m+1) and columns (n+1)
	data []int64 // flat backing storage, length == r*c
	cfg  Config  // scores and mode used to fill data
}

// newScoreMatrix allocates an r×c zero matrix. Callers guarantee r, c ≥ 1.
func newScoreMatrix(rows, cols int, cfg Config) *ScoreMatrix {
	return &ScoreMatrix{
		r:    rows,
		c:    cols,
		data: make([]int64, rows*cols),
		cfg:  cfg,
	}
}

// Rows returns m+1.
func (sm *ScoreMatrix) Rows() int {
	return sm.r
}

// Cols returns n+1.
func (sm *ScoreMatrix) Cols() int {
	return sm.c
}

// Config returns the scoring configuration the matrix was built with.
func (sm *ScoreMatrix) Config() Config {
	return sm.cfg
}

// Mode returns the mode the matrix was built with.
func (sm *ScoreMatrix) Mode() Mode {
	return sm.cfg.Mode
}

// At returns cell (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (sm *ScoreMatrix) At(row, col int) (int64, error) {
	if row < 0 || row >= sm.r || col < 0 || col >= sm.c {
		return 0, matrixErrorf("At", row, col, ErrOutOfRange)
	}

	return sm.data[row*sm.c+col], nil
}

// Row returns a copy of row i or ErrOutOfRange.
// Complexity: O(n).
func (sm *ScoreMatrix) Row(i int) ([]int64, error) {
	if i < 0 || i >= sm.r {
		return nil, matrixErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]int64, sm.c)
	copy(out, sm.data[i*sm.c:(i+1)*sm.c])

	return out, nil
}

// Cells returns a copy of the whole matrix as Rows() slices of Cols() values.
// Complexity: O(m·n).
func (sm *ScoreMatrix) Cells() [][]int64 {
	out := make([][]int64, sm.r)
	for i := range out {
		out[i] = make([]int64, sm.c)
		copy(out[i], sm.data[i*sm.c:(i+1)*sm.c])
	}

	return out
}

// get is the unchecked read used by the builder and traceback loops.
func (sm *ScoreMatrix) get(row, col int) int64 {
	return sm.data[row*sm.c+col]
}

// set is the unchecked write used only while building.
func (sm *ScoreMatrix) set(row, col int, v int64) {
	sm.data[row*sm.c+col] = v
}

// String renders one bracketed row per line, for debugging.
func (sm *ScoreMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < sm.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < sm.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(sm.data[i*sm.c+j], 10))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
