package align_test

import (
	"testing"
	"unicode/utf8"

	"github.com/katalvlaran/seqalign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAndTrace runs the two public steps the way an external caller does.
func buildAndTrace(t *testing.T, a, b string, cfg align.Config) align.Result {
	t.Helper()
	sm, err := align.BuildMatrix(a, b, cfg)
	require.NoError(t, err)
	res, err := align.Traceback(sm, a, b, cfg.Mode)
	require.NoError(t, err)

	return res
}

// path is a terse Coord list constructor.
func path(cells ...[2]int) []align.Coord {
	out := make([]align.Coord, len(cells))
	for k, c := range cells {
		out[k] = align.Coord{Row: c[0], Col: c[1]}
	}

	return out
}

// TestTraceback_LocalReference mirrors the reference local scenario and pins its exact outcome.
func TestTraceback_LocalReference(t *testing.T) {
	cfg := align.Config{Match: 2, Mismatch: -1, Gap: -1, Mode: align.Local}
	res := buildAndTrace(t, "GATTACA", "GCATGCU", cfg)

	assert.Greater(t, res.Score, int64(0))
	assert.NotEmpty(t, res.Path)
	assert.Equal(t, len(res.AlignA), len(res.AlignB))

	// Two cells hold the maximum 5: (3,4) and (6,6). Row-major picks (3,4).
	assert.Equal(t, int64(5), res.Score)
	assert.Equal(t, path([2]int{3, 4}, [2]int{2, 3}, [2]int{1, 2}, [2]int{1, 1}), res.Path)
	assert.Equal(t, "G-AT", res.AlignA)
	assert.Equal(t, "GCAT", res.AlignB)
}

// TestTraceback_GlobalIdentical checks the exact-match global scenario.
func TestTraceback_GlobalIdentical(t *testing.T) {
	cfg := align.Config{Match: 2, Mismatch: -1, Gap: -1, Mode: align.Global}
	res := buildAndTrace(t, "GATTACA", "GATTACA", cfg)

	assert.Equal(t, int64(14), res.Score, "7 matches × 2")
	assert.Equal(t, "GATTACA", res.AlignA)
	assert.Equal(t, "GATTACA", res.AlignB)
	assert.NotContains(t, res.AlignA, string(align.GapSymbol))
	assert.Len(t, res.Path, 7)
	assert.Equal(t, align.Coord{Row: 7, Col: 7}, res.Path[0], "path starts at the end cell")
	assert.Equal(t, align.Coord{Row: 1, Col: 1}, res.Path[6], "path ends next to the origin")
}

// TestTraceback_EmptyInputs covers "" vs "" in both modes.
func TestTraceback_EmptyInputs(t *testing.T) {
	for _, mode := range []align.Mode{align.Global, align.Local} {
		cfg := align.Config{Match: 1, Mismatch: -1, Gap: -1, Mode: mode}
		res := buildAndTrace(t, "", "", cfg)

		assert.Equal(t, int64(0), res.Score, "mode %s", mode)
		assert.NotNil(t, res.Path, "mode %s: path is empty, not nil", mode)
		assert.Len(t, res.Path, 0, "mode %s", mode)
		assert.Empty(t, res.AlignA)
		assert.Empty(t, res.AlignB)
	}
}

// TestTraceback_GlobalOneSideEmpty verifies all-gap alignments along the boundary.
func TestTraceback_GlobalOneSideEmpty(t *testing.T) {
	cfg := align.Config{Match: 2, Mismatch: -1, Gap: -2, Mode: align.Global}

	res := buildAndTrace(t, "ACGT", "", cfg)
	assert.Equal(t, int64(-8), res.Score)
	assert.Equal(t, "ACGT", res.AlignA)
	assert.Equal(t, "----", res.AlignB)
	assert.Equal(t, path([2]int{4, 0}, [2]int{3, 0}, [2]int{2, 0}, [2]int{1, 0}), res.Path)

	res = buildAndTrace(t, "", "ACG", cfg)
	assert.Equal(t, int64(-6), res.Score)
	assert.Equal(t, "---", res.AlignA)
	assert.Equal(t, "ACG", res.AlignB)
	assert.Equal(t, path([2]int{0, 3}, [2]int{0, 2}, [2]int{0, 1}), res.Path)
}

// TestTraceback_LocalOneSideEmpty verifies a local alignment against nothing is empty.
func TestTraceback_LocalOneSideEmpty(t *testing.T) {
	cfg := align.Config{Match: 2, Mismatch: -1, Gap: -2, Mode: align.Local}
	res := buildAndTrace(t, "ACGT", "", cfg)

	assert.Equal(t, int64(0), res.Score)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.AlignA)
}

// TestTraceback_LocalAllMismatch yields the empty alignment when no cell is positive.
func TestTraceback_LocalAllMismatch(t *testing.T) {
	cfg := align.Config{Match: 1, Mismatch: -1, Gap: -1, Mode: align.Local}
	res := buildAndTrace(t, "AAA", "TTT", cfg)

	assert.Equal(t, align.Result{Score: 0, Path: []align.Coord{}}, res)
}

// TestTraceback_GlobalNegativeScore shows penalties may drive a global score below zero.
func TestTraceback_GlobalNegativeScore(t *testing.T) {
	cfg := align.Config{Match: 1, Mismatch: -3, Gap: -5, Mode: align.Global}
	res := buildAndTrace(t, "AAAA", "TTTT", cfg)

	assert.Equal(t, int64(-12), res.Score)
	assert.Equal(t, "AAAA", res.AlignA)
	assert.Equal(t, "TTTT", res.AlignB)
}

// TestTraceback_PrecedenceUpBeforeLeft pins the diag → up → left tie-break.
func TestTraceback_PrecedenceUpBeforeLeft(t *testing.T) {
	cfg := align.Config{Match: 1, Mismatch: -1, Gap: -1, Mode: align.Global}

	// At (2,2) both up and left explain -1; up wins, then left at (0,1).
	res := buildAndTrace(t, "AC", "CA", cfg)
	assert.Equal(t, int64(-1), res.Score)
	assert.Equal(t, "-AC", res.AlignA)
	assert.Equal(t, "CA-", res.AlignB)
	assert.Equal(t, path([2]int{2, 2}, [2]int{1, 2}, [2]int{0, 1}), res.Path)

	// Gaps are placed as late in A as the precedence allows.
	res = buildAndTrace(t, "AAA", "A", cfg)
	assert.Equal(t, "AAA", res.AlignA)
	assert.Equal(t, "--A", res.AlignB)

	res = buildAndTrace(t, "A", "AAA", cfg)
	assert.Equal(t, "--A", res.AlignA)
	assert.Equal(t, "AAA", res.AlignB)
}

// TestTraceback_GlobalWithGaps checks a Needleman-Wunsch alignment that needs one gap in each side.
func TestTraceback_GlobalWithGaps(t *testing.T) {
	cfg := align.Config{Match: 1, Mismatch: -1, Gap: -1, Mode: align.Global}

	res := buildAndTrace(t, "GATTACA", "GCATGCU", cfg)
	assert.Equal(t, int64(0), res.Score)
	assert.Equal(t, "G-ATTACA", res.AlignA)
	assert.Equal(t, "GCA-TGCU", res.AlignB)

	res = buildAndTrace(t, "CAT", "CT", cfg)
	assert.Equal(t, int64(1), res.Score)
	assert.Equal(t, "CAT", res.AlignA)
	assert.Equal(t, "C-T", res.AlignB)
}

// TestTraceback_LocalFirstMaximum verifies row-major first occurrence on tied maxima.
func TestTraceback_LocalFirstMaximum(t *testing.T) {
	cfg := align.Config{Match: 1, Mismatch: -1, Gap: -1, Mode: align.Local}

	// "AB" scores 2 at (2,2) and (4,2).
	res := buildAndTrace(t, "ABAB", "AB", cfg)
	assert.Equal(t, int64(2), res.Score)
	assert.Equal(t, path([2]int{2, 2}, [2]int{1, 1}), res.Path)
	assert.Equal(t, "AB", res.AlignA)
	assert.Equal(t, "AB", res.AlignB)
}

// TestTraceback_LocalClassic uses the textbook Smith-Waterman pair.
func TestTraceback_LocalClassic(t *testing.T) {
	cfg := align.Config{Match: 3, Mismatch: -3, Gap: -2, Mode: align.Local}
	res := buildAndTrace(t, "TGTTACGG", "GGTTGACTA", cfg)

	assert.Equal(t, int64(13), res.Score)
	assert.Equal(t, "GTT-AC", res.AlignA)
	assert.Equal(t, "GTTGAC", res.AlignB)
	assert.Equal(t, align.Coord{Row: 6, Col: 7}, res.Path[0])
}

// TestTraceback_Unicode treats multi-byte symbols as single symbols.
func TestTraceback_Unicode(t *testing.T) {
	cfg := align.Config{Match: 1, Mismatch: -1, Gap: -1, Mode: align.Global}
	res := buildAndTrace(t, "héllo", "hello", cfg)

	assert.Equal(t, int64(3), res.Score)
	assert.Equal(t, "héllo", res.AlignA)
	assert.Equal(t, "hello", res.AlignB)
	assert.Equal(t, utf8.RuneCountInString(res.AlignA), utf8.RuneCountInString(res.AlignB))
}

// TestTraceback_EqualLengthProperty sweeps pairs and configs for equal-length output and score bounds.
func TestTraceback_EqualLengthProperty(t *testing.T) {
	seqs := []string{"", "A", "AC", "GATTACA", "GCATGCU", "TTTT", "ACGTACGT", "CCGGA"}
	cfgs := []align.Config{
		{Match: 2, Mismatch: -1, Gap: -1},
		{Match: 1, Mismatch: -3, Gap: -2},
		{Match: 5, Mismatch: -4, Gap: -10},
		{Match: 0, Mismatch: 0, Gap: 0},
	}

	for _, mode := range []align.Mode{align.Global, align.Local} {
		for _, base := range cfgs {
			cfg := base
			cfg.Mode = mode
			for _, a := range seqs {
				for _, b := range seqs {
					res := buildAndTrace(t, a, b, cfg)
					la := utf8.RuneCountInString(res.AlignA)
					assert.Equal(t, la, utf8.RuneCountInString(res.AlignB), "%q/%q %+v", a, b, cfg)
					assert.Len(t, res.Path, la, "one path cell per column")
					if mode == align.Local {
						assert.GreaterOrEqual(t, res.Score, int64(0))
					}
					if mode == align.Global {
						sm, _ := align.BuildMatrix(a, b, cfg)
						end, _ := sm.At(sm.Rows()-1, sm.Cols()-1)
						assert.Equal(t, end, res.Score, "global score is the corner cell")
					}
				}
			}
		}
	}
}

// TestTraceback_Idempotent verifies repeated runs give identical results.
func TestTraceback_Idempotent(t *testing.T) {
	cfg := align.Config{Match: 2, Mismatch: -1, Gap: -1, Mode: align.Local}
	first := buildAndTrace(t, "GATTACA", "GCATGCU", cfg)
	second := buildAndTrace(t, "GATTACA", "GCATGCU", cfg)
	assert.Equal(t, first, second)
}

// TestTraceback_NilMatrix rejects a nil matrix.
func TestTraceback_NilMatrix(t *testing.T) {
	_, err := align.Traceback(nil, "A", "A", align.Global)
	assert.ErrorIs(t, err, align.ErrNilMatrix)
	assert.ErrorIs(t, err, align.ErrInvalidArgument)
}

// TestTraceback_DimensionMismatch rejects sequences that do not fit the matrix.
func TestTraceback_DimensionMismatch(t *testing.T) {
	sm, err := align.BuildMatrix("AC", "G", align.DefaultConfig())
	require.NoError(t, err)

	_, err = align.Traceback(sm, "A", "G", align.Global)
	assert.ErrorIs(t, err, align.ErrDimensionMismatch)
	assert.ErrorIs(t, err, align.ErrInvalidArgument)

	_, err = align.Traceback(sm, "AC", "GG", align.Global)
	assert.ErrorIs(t, err, align.ErrDimensionMismatch)
}

// TestTraceback_UnknownMode rejects an unrecognized mode.
func TestTraceback_UnknownMode(t *testing.T) {
	sm, err := align.BuildMatrix("A", "A", align.DefaultConfig())
	require.NoError(t, err)

	_, err = align.Traceback(sm, "A", "A", "local-ish")
	assert.ErrorIs(t, err, align.ErrUnknownMode)
	assert.ErrorIs(t, err, align.ErrInvalidArgument)
}

// TestTraceback_ModeMismatch rejects tracing a matrix in a mode it was not built with.
func TestTraceback_ModeMismatch(t *testing.T) {
	sm, err := align.BuildMatrix("A", "A", align.DefaultConfig())
	require.NoError(t, err)

	_, err = align.Traceback(sm, "A", "A", align.Local)
	assert.ErrorIs(t, err, align.ErrModeMismatch)
	assert.ErrorIs(t, err, align.ErrInvalidArgument)
}
