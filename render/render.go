// Package render turns alignment results into text, tables, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/batch"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates a format other than text, json or yaml.
var ErrUnknownFormat = errors.New("render: unknown format")

// ErrRagged indicates alignment strings of different lengths.
var ErrRagged = errors.New("render: alignment strings differ in length")

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "text", "json", "yaml" and "yml", case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Report is the serializable view of one alignment.
type Report struct {
	ID     string       `json:"id,omitempty" yaml:"id,omitempty"`
	Name   string       `json:"name,omitempty" yaml:"name,omitempty"`
	Config align.Config `json:"config" yaml:"config"`
	Result align.Result `json:"result" yaml:"result"`
	Stats  align.Stats  `json:"stats" yaml:"stats"`
	Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewReport bundles cfg and res with computed stats.
func NewReport(cfg align.Config, res align.Result) Report {
	return Report{Config: cfg, Result: res, Stats: res.Stats()}
}

// OutcomeReport converts a batch outcome into its report; a failed pair
// carries the error text and a zero result.
func OutcomeReport(cfg align.Config, o batch.Outcome) Report {
	rep := NewReport(cfg, o.Result)
	rep.ID, rep.Name = o.Pair.ID, o.Pair.Name
	if o.Err != nil {
		rep.Error = o.Err.Error()
	}

	return rep
}

// Encode writes v as JSON (indented) or YAML. FormatText is not an encoding
// and yields ErrUnknownFormat; use Alignment or Summary for text.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("encode %q: %w", f, ErrUnknownFormat)
}
