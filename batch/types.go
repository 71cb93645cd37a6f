package batch

import (
	"errors"
	"time"

	"github.com/katalvlaran/seqalign/align"
)

var (
	// ErrNoPairs indicates a job without pairs.
	ErrNoPairs = errors.New("batch: job has no pairs")

	// ErrTooLong indicates a sequence longer than the configured bound.
	ErrTooLong = errors.New("batch: sequence exceeds maximum length")

	// ErrNotRun marks pairs skipped because the context ended.
	ErrNotRun = errors.New("batch: pair not run")
)

// Pair is one alignment request.
type Pair struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	A    string `json:"a" yaml:"a"`
	B    string `json:"b" yaml:"b"`
}

// Scoring overrides fields of a base align.Config. Nil fields keep the base value.
type Scoring struct {
	Match    *int64      `json:"match,omitempty" yaml:"match,omitempty"`
	Mismatch *int64      `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`
	Gap      *int64      `json:"gap,omitempty" yaml:"gap,omitempty"`
	Mode     *align.Mode `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// Apply returns base with the non-nil fields of s substituted, validated.
// A nil receiver returns base unchanged, still validated.
func (s *Scoring) Apply(base align.Config) (align.Config, error) {
	cfg := base
	if s != nil {
		if s.Match != nil {
			cfg.Match = *s.Match
		}
		if s.Mismatch != nil {
			cfg.Mismatch = *s.Mismatch
		}
		if s.Gap != nil {
			cfg.Gap = *s.Gap
		}
		if s.Mode != nil {
			mode, err := align.ParseMode(string(*s.Mode))
			if err != nil {
				return align.Config{}, err
			}
			cfg.Mode = mode
		}
	}
	if err := cfg.Validate(); err != nil {
		return align.Config{}, err
	}

	return cfg, nil
}

// Job is the content of a batch file.
type Job struct {
	Scoring *Scoring `json:"scoring,omitempty" yaml:"scoring,omitempty"`
	Pairs   []Pair   `json:"pairs" yaml:"pairs"`
}

// Outcome is the result of one pair. Err is nil on success.
type Outcome struct {
	Pair     Pair
	Result   align.Result
	Err      error
	Duration time.Duration
}
