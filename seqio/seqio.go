// Package seqio loads sequences for alignment from plain text or FASTA input.
//
// Plain text: every non-blank line is concatenated with all whitespace removed.
// FASTA: records start at '>' header lines; ';' lines are comments. An empty
// input is the empty sequence, which the aligner accepts.
package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrMixedFormat indicates a '>' header after plain-text residues.
	ErrMixedFormat = errors.New("seqio: header line after unlabelled residues")

	// ErrLineTooLong indicates a single line above maxLine bytes.
	ErrLineTooLong = errors.New("seqio: line too long")
)

// maxLine bounds one input line; whole genomes on one line are out of scope.
const maxLine = 4 << 20

// Sequence is one named record.
type Sequence struct {
	Name     string
	Residues string
}

// ReadOptions tunes parsing.
type ReadOptions struct {
	// Uppercase folds residues to upper case ("acgt" aligns against "ACGT").
	Uppercase bool
}

// Read parses every record in r.
func Read(r io.Reader, opts ReadOptions) ([]Sequence, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		out     []Sequence
		cur     *Sequence
		body    strings.Builder
		plain   bool
		lineNum int
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Residues = normalize(body.String(), opts)
		out = append(out, *cur)
		body.Reset()
	}

	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, ">"):
			if plain {
				return nil, fmt.Errorf("line %d: %w", lineNum, ErrMixedFormat)
			}
			flush()
			cur = &Sequence{Name: strings.TrimSpace(line[1:])}
		default:
			if cur == nil {
				plain = true
				cur = &Sequence{}
			}
			for _, f := range strings.Fields(line) {
				body.WriteString(f)
			}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("after line %d: %w", lineNum, ErrLineTooLong)
		}
		return nil, fmt.Errorf("seqio: read: %w", err)
	}
	flush()

	return out, nil
}

// ReadSequence returns the first record of r, or the empty Sequence when r
// holds none.
func ReadSequence(r io.Reader, opts ReadOptions) (Sequence, error) {
	recs, err := Read(r, opts)
	if err != nil {
		return Sequence{}, err
	}
	if len(recs) == 0 {
		return Sequence{}, nil
	}

	return recs[0], nil
}

// ReadFile is ReadSequence over the named file.
func ReadFile(path string, opts ReadOptions) (Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sequence{}, err
	}
	defer f.Close()

	seq, err := ReadSequence(f, opts)
	if err != nil {
		return Sequence{}, fmt.Errorf("%s: %w", path, err)
	}

	return seq, nil
}

func normalize(s string, opts ReadOptions) string {
	if opts.Uppercase {
		return strings.ToUpper(s)
	}

	return s
}
