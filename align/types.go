// Package align defines modes, scoring configuration and result types.
package align

import (
	"fmt"
	"strings"
)

// GapSymbol is emitted in an alignment string opposite a symbol of the other sequence.
const GapSymbol = '-'

// Mode selects alignment semantics.
//
//   - Global ("nw"): Needleman-Wunsch. Both sequences are consumed fully;
//     leading and trailing unmatched symbols cost gaps.
//
//   - Local ("sw"): Smith-Waterman. Highest scoring contiguous region;
//     scores are floored at zero so an alignment may start anywhere.
type Mode string

const (
	// Global aligns end to end.
	Global Mode = "nw"

	// Local aligns the best scoring sub-region.
	Local Mode = "sw"
)

// Valid reports whether m is Global or Local.
func (m Mode) Valid() bool {
	return m == Global || m == Local
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// ParseMode maps user input to a Mode. Accepted (case-insensitive):
// "nw", "global", "sw", "local".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nw", "global":
		return Global, nil
	case "sw", "local":
		return Local, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// Config is the scoring configuration of one alignment.
//
// Fields:
//   - Match: added per identical aligned symbol pair.
//   - Mismatch: added per differing aligned symbol pair (typically negative).
//   - Gap: added per gap in either sequence (typically negative).
//   - Mode: Global or Local.
//
// Example:
//
//	cfg := Config{
//	  Match:    2,
//	  Mismatch: -1,
//	  Gap:      -1,
//	  Mode:     Local,
//	}
type Config struct {
	Match    int64 `json:"match" yaml:"match"`
	Mismatch int64 `json:"mismatch" yaml:"mismatch"`
	Gap      int64 `json:"gap" yaml:"gap"`
	Mode     Mode  `json:"mode" yaml:"mode"`
}

// DefaultConfig returns {Match: 2, Mismatch: -1, Gap: -1, Mode: Global}.
func DefaultConfig() Config {
	return Config{
		Match:    2,
		Mismatch: -1,
		Gap:      -1,
		Mode:     Global,
	}
}

// Validate checks the mode. Score values of any sign are accepted.
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("%q: %w", c.Mode, ErrUnknownMode)
	}

	return nil
}

// substitution scores aligning x against y.
func (c Config) substitution(x, y rune) int64 {
	if x == y {
		return c.Match
	}

	return c.Mismatch
}

// Coord addresses one score matrix cell. Row 0 and Col 0 are the boundary.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Result is the outcome of a traceback.
//
// AlignA and AlignB have equal length (in runes) and read left to right.
// Path lists the visited cells from the end cell back to the start cell;
// it is empty, never nil, when no step was taken.
type Result struct {
	Score  int64   `json:"score" yaml:"score"`
	Path   []Coord `json:"path" yaml:"path"`
	AlignA string  `json:"alignA" yaml:"alignA"`
	AlignB string  `json:"alignB" yaml:"alignB"`
}

// ForwardPath returns Path in start-to-end order as a new slice.
func (r Result) ForwardPath() []Coord {
	out := make([]Coord, len(r.Path))
	for k, c := range r.Path {
		out[len(r.Path)-1-k] = c
	}

	return out
}

// Stats summarizes an alignment column by column.
type Stats struct {
	Length     int     `json:"length" yaml:"length"`
	Matches    int     `json:"matches" yaml:"matches"`
	Mismatches int     `json:"mismatches" yaml:"mismatches"`
	Gaps       int     `json:"gaps" yaml:"gaps"`
	Identity   float64 `json:"identity" yaml:"identity"`
}

// Stats counts matches, mismatches and gap columns of r.
// A column holding GapSymbol on either side counts as a gap.
// Identity is Matches/Length, or 0 for an empty alignment.
func (r Result) Stats() Stats {
	ra, rb := []rune(r.AlignA), []rune(r.AlignB)
	n := min(len(ra), len(rb))

	var s Stats
	s.Length = n
	for k := 0; k < n; k++ {
		switch {
		case ra[k] == GapSymbol || rb[k] == GapSymbol:
			s.Gaps++
		case ra[k] == rb[k]:
			s.Matches++
		default:
			s.Mismatches++
		}
	}
	if n > 0 {
		s.Identity = float64(s.Matches) / float64(n)
	}

	return s
}
