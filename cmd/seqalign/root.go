package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/seqalign/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// logFileFlag overrides log.filename for this invocation.
var logFileFlag string

// verboseFlag switches logging to Debug.
var verboseFlag bool

const rootLongDescription = `seqalign computes optimal pairwise alignments of two symbol sequences
using Needleman-Wunsch (global, --mode nw) or Smith-Waterman (local, --mode sw)
with a linear gap cost.

Scores come from flags, SEQALIGN_* environment variables or seqalign.yaml,
in that order of precedence.`

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "seqalign",
		Short:         "Pairwise sequence alignment (Needleman-Wunsch / Smith-Waterman)",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return configErr
			}
			configureLogger(logFileFlag, verboseFlag)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds the full command tree. Flag defaults read viper, so it
// must run after the config init; tests build a fresh tree per case.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(
		newAlignCmd(),
		newBatchCmd(),
		newServeCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from log.filename)")
	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")

	flags.Int64(matchFlagName, viper.GetInt64(matchKey), "score for identical symbols")
	bindFlagToConfig(flags.Lookup(matchFlagName), matchKey)

	flags.Int64(mismatchFlagName, viper.GetInt64(mismatchKey), "score for differing symbols")
	bindFlagToConfig(flags.Lookup(mismatchFlagName), mismatchKey)

	flags.Int64(gapFlagName, viper.GetInt64(gapKey), "score for each gap position")
	bindFlagToConfig(flags.Lookup(gapFlagName), gapKey)

	flags.StringP(modeFlagName, "m", viper.GetString(modeKey), "alignment mode: nw (global) or sw (local)")
	bindFlagToConfig(flags.Lookup(modeFlagName), modeKey)

	flags.StringP(formatFlagName, "f", viper.GetString(formatKey), "output format: text, json or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), formatKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// outputFormat resolves output.format.
func outputFormat() (render.Format, error) {
	return render.ParseFormat(viper.GetString(formatKey))
}

// shutdownSignals cancel the context of long-running commands.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// signalContext derives a context cancelled by any of shutdownSignals.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
