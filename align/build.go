package align

// BuildMatrix: dynamic-programming score matrix
//
// Algorithm Outline:
//  1. Let m = len(a), n = len(b) in runes. Allocate (m+1)x(n+1) matrix S.
//  2. Initialize the boundary:
//     Global: S[i][0] = i·gap, S[0][j] = j·gap
//     Local:  S[i][0] = S[0][j] = 0
//  3. For i = 1..m, j = 1..n:
//     diag = S[i-1][j-1] + (match if a[i-1] == b[j-1] else mismatch)
//     up   = S[i-1][j]   + gap
//     left = S[i][j-1]   + gap
//     Global: S[i][j] = max(diag, up, left)
//     Local:  S[i][j] = max(0, diag, up, left)
//
// Every cell is written once, row by row, and depends only on its diagonal,
// upper and left neighbours. Empty sequences leave just the boundary row or
// column. Scores are int64.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n)
//
// Errors:
//   - ErrUnknownMode: cfg.Mode is not Global or Local. Nothing is allocated.
func BuildMatrix(a, b string, cfg Config) (*ScoreMatrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return build([]rune(a), []rune(b), cfg), nil
}

// build fills the matrix for already decoded sequences and a valid cfg.
func build(ra, rb []rune, cfg Config) *ScoreMatrix {
	m, n := len(ra), len(rb)
	sm := newScoreMatrix(m+1, n+1, cfg)

	// Boundary: local mode keeps the zeros from make.
	if cfg.Mode == Global {
		for i := 1; i <= m; i++ {
			sm.set(i, 0, int64(i)*cfg.Gap)
		}
		for j := 1; j <= n; j++ {
			sm.set(0, j, int64(j)*cfg.Gap)
		}
	}

	local := cfg.Mode == Local
	for i := 1; i <= m; i++ {
		x := ra[i-1]
		for j := 1; j <= n; j++ {
			diag := sm.get(i-1, j-1) + cfg.substitution(x, rb[j-1])
			up := sm.get(i-1, j) + cfg.Gap
			left := sm.get(i, j-1) + cfg.Gap

			best := max(diag, up, left)
			if local && best < 0 {
				best = 0
			}
			sm.set(i, j, best)
		}
	}

	return sm
}
