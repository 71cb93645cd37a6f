package align

import "fmt"

// step is the move that explains a cell.
type step uint8

const (
	stepNone step = iota
	stepDiag      // consume a[i-1] and b[j-1]
	stepUp        // consume a[i-1] against a gap
	stepLeft      // consume b[j-1] against a gap
)

// Traceback: optimal alignment recovery
//
// Description:
//
//	Walks a completed ScoreMatrix from a mode-dependent start cell back to a
//	mode-dependent stop condition and rebuilds the aligned strings.
//
// Start cell:
//   - Global: (m, n).
//   - Local:  the maximum cell; on ties the first met in row-major order
//     (smallest row, then smallest column). A maximum of 0 yields the
//     empty alignment with Score 0.
//
// Step rule (fixed precedence, first match wins):
//
//	diag: S[i-1][j-1] + sub(a[i-1], b[j-1]) == S[i][j]
//	up:   S[i-1][j]   + gap                == S[i][j]
//	left: S[i][j-1]   + gap                == S[i][j]
//
// Stop:
//   - Global: i == 0 && j == 0.
//   - Local:  S[i][j] == 0 || i == 0 || j == 0.
//
// Every cell stepped from is appended to Path, so Path runs end to start and
// len(Path) equals the alignment length. AlignA/AlignB are reversed into
// reading order before returning.
//
// Complexity:
//
//	Time   = O(m+n) (plus O(m·n) start scan in Local mode)
//	Memory = O(m+n)
//
// Errors:
//   - ErrNilMatrix: sm is nil.
//   - ErrUnknownMode: mode is not Global or Local.
//   - ErrDimensionMismatch: sm is not (len(a)+1)x(len(b)+1).
//   - ErrModeMismatch: mode differs from sm.Mode().
//   - ErrCorruptMatrix: a cell has no consistent predecessor.
func Traceback(sm *ScoreMatrix, a, b string, mode Mode) (Result, error) {
	if sm == nil {
		return Result{}, ErrNilMatrix
	}
	if !mode.Valid() {
		return Result{}, fmt.Errorf("%q: %w", mode, ErrUnknownMode)
	}
	ra, rb := []rune(a), []rune(b)
	if sm.r != len(ra)+1 || sm.c != len(rb)+1 {
		return Result{}, fmt.Errorf("matrix %dx%d, sequences %d and %d: %w",
			sm.r, sm.c, len(ra), len(rb), ErrDimensionMismatch)
	}
	if mode != sm.cfg.Mode {
		return Result{}, fmt.Errorf("matrix %s, traceback %s: %w", sm.cfg.Mode, mode, ErrModeMismatch)
	}

	return walk(sm, ra, rb, mode)
}

// walk performs the traceback on validated input.
func walk(sm *ScoreMatrix, ra, rb []rune, mode Mode) (Result, error) {
	i, j, score := startCell(sm, mode)
	if mode == Local && score == 0 {
		return Result{Score: 0, Path: []Coord{}}, nil
	}

	path := make([]Coord, 0, i+j)
	outA := make([]rune, 0, i+j)
	outB := make([]rune, 0, i+j)

	for !halted(sm, mode, i, j) {
		path = append(path, Coord{Row: i, Col: j})

		switch predecessor(sm, ra, rb, i, j) {
		case stepDiag:
			outA = append(outA, ra[i-1])
			outB = append(outB, rb[j-1])
			i--
			j--
		case stepUp:
			outA = append(outA, ra[i-1])
			outB = append(outB, GapSymbol)
			i--
		case stepLeft:
			outA = append(outA, GapSymbol)
			outB = append(outB, rb[j-1])
			j--
		default:
			return Result{}, fmt.Errorf("cell (%d,%d): %w", i, j, ErrCorruptMatrix)
		}
	}

	reverseRunes(outA)
	reverseRunes(outB)

	return Result{
		Score:  score,
		Path:   path,
		AlignA: string(outA),
		AlignB: string(outB),
	}, nil
}

// startCell returns the traceback origin and the alignment score.
func startCell(sm *ScoreMatrix, mode Mode) (int, int, int64) {
	if mode == Global {
		i, j := sm.r-1, sm.c-1
		return i, j, sm.get(i, j)
	}

	// Strict > keeps the first maximum in row-major order.
	var bi, bj int
	var best int64
	for i := 0; i < sm.r; i++ {
		for j := 0; j < sm.c; j++ {
			if v := sm.get(i, j); v > best {
				bi, bj, best = i, j, v
			}
		}
	}

	return bi, bj, best
}

// halted reports whether the walk stops at (i, j).
func halted(sm *ScoreMatrix, mode Mode, i, j int) bool {
	if mode == Global {
		return i == 0 && j == 0
	}

	return i == 0 || j == 0 || sm.get(i, j) == 0
}

// predecessor picks the first of diag, up, left whose recomputed score
// equals cell (i, j).
func predecessor(sm *ScoreMatrix, ra, rb []rune, i, j int) step {
	cur := sm.get(i, j)
	gap := sm.cfg.Gap

	if i > 0 && j > 0 && sm.get(i-1, j-1)+sm.cfg.substitution(ra[i-1], rb[j-1]) == cur {
		return stepDiag
	}
	if i > 0 && sm.get(i-1, j)+gap == cur {
		return stepUp
	}
	if j > 0 && sm.get(i, j-1)+gap == cur {
		return stepLeft
	}

	return stepNone
}

// reverseRunes reverses s in place.
func reverseRunes(s []rune) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
