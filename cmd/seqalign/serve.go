package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/seqalign/metrics"
	"github.com/katalvlaran/seqalign/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the aligner over HTTP",
		Long: `Start the HTTP/JSON API (POST /v1/align, POST /v1/batch, GET /healthz,
GET /metrics). Scores from flags and config are the defaults for requests
that omit them. SIGINT or SIGTERM stops the server gracefully.`,
		Args: cobra.NoArgs,
		// batch and serve share parallel; bind the flag of the command that runs.
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelKey)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := serverConfig()
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			cmd.Printf("listening on %s\n", cfg.Addr)
			srv := server.New(cfg, metrics.NewCollector(), slog.Default())
			if err := srv.Start(ctx); err != nil {
				return fmt.Errorf("serve: %w", err)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.String(addrFlagName, viper.GetString(addrKey), "listen address")
	bindFlagToConfig(flags.Lookup(addrFlagName), addrKey)

	flags.Int(maxLengthFlagName, viper.GetInt(maxLengthKey), "maximum symbols per sequence (0 = unbounded)")
	bindFlagToConfig(flags.Lookup(maxLengthFlagName), maxLengthKey)

	flags.IntP(parallelFlagName, "p", viper.GetInt(parallelKey), "concurrent alignments per batch request")

	return cmd
}

// serverConfig layers server.* and scoring.* keys over server.DefaultConfig.
func serverConfig() (server.Config, error) {
	scoring, err := scoringFromConfig()
	if err != nil {
		return server.Config{}, err
	}

	cfg := server.DefaultConfig()
	cfg.Addr = viper.GetString(addrKey)
	cfg.Scoring = scoring
	cfg.MaxSequenceLength = viper.GetInt(maxLengthKey)
	cfg.Parallel = viper.GetInt(parallelKey)

	return cfg, nil
}
