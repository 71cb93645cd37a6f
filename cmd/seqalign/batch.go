package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/seqalign/batch"
	"github.com/katalvlaran/seqalign/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const batchLongDescription = `Align every pair listed in a YAML job file, concurrently.

  scoring:          # optional, overrides flags and seqalign.yaml
    mode: sw
    gap: -2
  pairs:
    - id: p1        # optional, a UUID is assigned when empty
      name: demo
      a: GATTACA
      b: GCATGCU

Results keep the order of the job file. The command fails when any pair fails,
after printing every result.`

// batchOutput is the json/yaml shape of a batch run.
type batchOutput struct {
	Results []render.Report `json:"results" yaml:"results"`
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch JOB.yaml",
		Short: "Align many pairs from a job file",
		Long:  batchLongDescription,
		Args:  cobra.ExactArgs(1),
		// batch and serve share parallel; bind the flag of the command that runs.
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelKey)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			return runBatch(ctx, cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().IntP(parallelFlagName, "p", viper.GetInt(parallelKey), "number of pairs aligned concurrently")

	return cmd
}

func runBatch(ctx context.Context, w io.Writer, path string) error {
	base, err := scoringFromConfig()
	if err != nil {
		return err
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}
	job, err := batch.LoadJobFile(path)
	if err != nil {
		return err
	}
	cfg, err := job.Scoring.Apply(base)
	if err != nil {
		return err
	}

	parallel := viper.GetInt(parallelKey)
	if parallel < 1 {
		parallel = 1
	}
	slog.Info("batch started", "job", path, "pairs", len(job.Pairs), "parallel", parallel, "mode", cfg.Mode)

	outcomes, err := batch.Run(ctx, job.Pairs, cfg,
		batch.WithParallel(parallel),
		batch.WithObserver(func(o batch.Outcome) {
			if o.Err != nil {
				slog.Warn("pair failed", "id", o.Pair.ID, "error", o.Err)
				return
			}
			slog.Debug("pair aligned", "id", o.Pair.ID, "score", o.Result.Score, "duration", o.Duration)
		}),
	)
	if err != nil {
		return fmt.Errorf("batch %s: %w", path, err)
	}

	reports := make([]render.Report, len(outcomes))
	failed := 0
	for k, o := range outcomes {
		reports[k] = render.OutcomeReport(cfg, o)
		if o.Err != nil {
			failed++
		}
	}
	slog.Info("batch finished", "job", path, "pairs", len(reports), "failed", failed)

	if format == render.FormatText {
		render.Summary(w, reports)
	} else if err := render.Encode(w, batchOutput{Results: reports}, format); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pairs failed", failed, len(reports))
	}

	return nil
}
