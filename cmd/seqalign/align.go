package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/render"
	"github.com/katalvlaran/seqalign/seqio"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errSequenceArgs reports a wrong mix of positional sequences and --file-a/--file-b.
var errSequenceArgs = errors.New("need exactly two sequences: positional arguments or --file-a/--file-b")

const alignLongDescription = `Align two sequences and print the optimal score and alignment.

Each sequence is given either as a positional argument or read from a file
(plain text or single-record FASTA) with --file-a / --file-b:

  seqalign align GATTACA GCATGCU --mode sw
  seqalign align --file-a a.fa --file-b b.fa --format json
  seqalign align --file-a a.fa GCATGCU --matrix`

// alignOutput is the json/yaml shape of one alignment.
type alignOutput struct {
	render.Report `yaml:",inline"`
	Matrix        [][]int64 `json:"matrix,omitempty" yaml:"matrix,omitempty"`
}

type alignFlags struct {
	fileA, fileB string
	uppercase    bool
	color        bool
}

func newAlignCmd() *cobra.Command {
	var f alignFlags

	cmd := &cobra.Command{
		Use:   "align [A] [B]",
		Short: "Align two sequences",
		Long:  alignLongDescription,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd.OutOrStdout(), args, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.fileA, fileAFlagName, "", "read sequence A from a file")
	flags.StringVar(&f.fileB, fileBFlagName, "", "read sequence B from a file")
	flags.BoolVar(&f.uppercase, uppercaseFlagName, false, "fold sequences to upper case before aligning")
	flags.BoolVar(&f.color, colorFlagName, isatty.IsTerminal(os.Stdout.Fd()), "color matches, mismatches and gaps")

	flags.Int(widthFlagName, viper.GetInt(widthKey), "alignment columns per block in text output")
	bindFlagToConfig(flags.Lookup(widthFlagName), widthKey)

	flags.Bool(matrixFlagName, viper.GetBool(matrixKey), "also print the score matrix")
	bindFlagToConfig(flags.Lookup(matrixFlagName), matrixKey)

	return cmd
}

func runAlign(w io.Writer, args []string, f alignFlags) error {
	cfg, err := scoringFromConfig()
	if err != nil {
		return err
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}
	a, b, err := resolveSequences(args, f.fileA, f.fileB, seqio.ReadOptions{Uppercase: f.uppercase})
	if err != nil {
		return err
	}

	start := time.Now()
	res, sm, err := align.AlignWithMatrix(a, b, cfg)
	if err != nil {
		return fmt.Errorf("align: %w", err)
	}
	slog.Debug("aligned",
		"mode", cfg.Mode,
		"rows", sm.Rows(),
		"cols", sm.Cols(),
		"score", res.Score,
		"duration", time.Since(start),
	)

	withMatrix := viper.GetBool(matrixKey)
	if format != render.FormatText {
		out := alignOutput{Report: render.NewReport(cfg, res)}
		if withMatrix {
			out.Matrix = sm.Cells()
		}

		return render.Encode(w, out, format)
	}

	if withMatrix {
		if err := render.Matrix(w, sm, a, b, res); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	return render.Alignment(w, res, render.TextOptions{Width: viper.GetInt(widthKey), Color: f.color})
}

// resolveSequences takes A and B from their file flags when set and from
// the positional arguments otherwise, in order.
func resolveSequences(args []string, fileA, fileB string, opts seqio.ReadOptions) (string, string, error) {
	rest := args
	next := func(path string) (string, error) {
		if path != "" {
			seq, err := seqio.ReadFile(path, opts)
			if err != nil {
				return "", err
			}

			return seq.Residues, nil
		}
		if len(rest) == 0 {
			return "", errSequenceArgs
		}
		s := rest[0]
		rest = rest[1:]
		if opts.Uppercase {
			s = strings.ToUpper(s)
		}

		return s, nil
	}

	a, err := next(fileA)
	if err != nil {
		return "", "", err
	}
	b, err := next(fileB)
	if err != nil {
		return "", "", err
	}
	if len(rest) != 0 {
		return "", "", errSequenceArgs
	}

	return a, b, nil
}
