// Package align computes pairwise sequence alignments by dynamic programming:
// global (Needleman-Wunsch) and local (Smith-Waterman) with a linear gap cost,
// plus a deterministic traceback that recovers one optimal alignment.
//
// 🚀 What is pairwise alignment?
//
//	Two sequences are laid against each other, symbol by symbol, inserting
//	gaps where needed so that the total score is maximal. Used for:
//	  • Nucleotide / protein similarity
//	  • Read-to-reference placement
//	  • Diffing any symbol stream (the engine is alphabet-agnostic)
//
// ✨ Key features:
//   - global mode ("nw"): both sequences consumed end to end
//   - local mode ("sw"): best scoring sub-region, zero floor
//   - one flat (m+1)x(n+1) int64 score matrix, single allocation
//   - reproducible traceback: fixed diagonal → up → left precedence,
//     row-major first maximum for local start cells
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	cfg := align.Config{Match: 2, Mismatch: -1, Gap: -1, Mode: align.Local}
//
//	sm, err := align.BuildMatrix("GATTACA", "GCATGCU", cfg)
//	if err != nil {
//	  // only ErrUnknownMode can happen here
//	}
//	res, err := align.Traceback(sm, "GATTACA", "GCATGCU", cfg.Mode)
//
//	// or both steps at once
//	res, err = align.Align("GATTACA", "GCATGCU", cfg)
//
// Result.Path runs from the end cell back to the start cell. Use
// Result.ForwardPath for start-to-end order.
//
// Performance:
//
//   - Time:   O(m·n) build, O(m+n) traceback (O(m·n) scan for local start)
//   - Memory: O(m·n)
//
// Errors:
//
//   - ErrUnknownMode: mode is neither "nw" nor "sw".
//   - ErrDimensionMismatch: matrix shape does not fit the given sequences.
//   - ErrModeMismatch: traceback mode differs from the build mode.
//   - ErrNilMatrix: nil *ScoreMatrix passed to Traceback.
//
// All of them satisfy errors.Is(err, ErrInvalidArgument).
package align
