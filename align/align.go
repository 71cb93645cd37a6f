package align

// Align builds the score matrix for a and b under cfg and traces it back in
// cfg.Mode. It is BuildMatrix followed by Traceback.
//
// Example:
//
//	res, err := align.Align("GATTACA", "GATTACA", align.DefaultConfig())
//	// res.Score == 14, res.AlignA == res.AlignB == "GATTACA"
func Align(a, b string, cfg Config) (Result, error) {
	res, _, err := AlignWithMatrix(a, b, cfg)

	return res, err
}

// AlignWithMatrix is Align that also returns the filled matrix, for callers
// that render it.
func AlignWithMatrix(a, b string, cfg Config) (Result, *ScoreMatrix, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, nil, err
	}
	ra, rb := []rune(a), []rune(b)
	sm := build(ra, rb, cfg)

	res, err := walk(sm, ra, rb, cfg.Mode)
	if err != nil {
		return Result{}, nil, err
	}

	return res, sm, nil
}
