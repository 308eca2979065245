package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smnalex/weekgen/logging"
	"github.com/smnalex/weekgen/parser"
	"github.com/smnalex/weekgen/schedule"
)

type options struct {
	legacyScale bool
	jsonLog     bool
	quiet       bool
	check       bool
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "weekgen file:<path> <time> [<time> ...]",
		Short: "Expand clock times over a week of minute offsets",
		Long: `weekgen repeats each time of day over a 7 day window and writes the
resulting minute offsets to a file as "[v0,v1,...]".

Times are hours with optional minutes, separated by ':' or '.'.
At most 8 times (56 values) can be given.

Examples:
  weekgen file:out.json 9:00
  weekgen 6.30 17:45 file:heating.json

Flags must come before the first positional argument; everything after it
is passed through as a time or file: argument.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Setup(logOut, logging.Options{JSON: opts.jsonLog, Quiet: opts.quiet})
			return run(logger, args, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.legacyScale, "legacy-scale", false, "Multiply each time by 60 before adding the day offset, as older generators did")
	cmd.Flags().BoolVar(&opts.jsonLog, "json-log", false, "Log JSON lines instead of console output")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only log warnings and errors")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Read the file back after writing and verify its content")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger zerolog.Logger, args []string, opts *options) error {
	inv, err := parser.Classify(args)
	if err != nil {
		return err
	}
	logger.Info().Str("file", inv.FileName).Msg("output file")

	values := make([]int, 0, len(inv.Times))
	for _, s := range inv.Times {
		c, err := parser.ParseTime(s)
		if err != nil {
			return err
		}
		logger.Info().Str("param", s).Int("hour", c.Hour).Int("minute", c.Minute).Int("mins", c.Minutes()).Msg("parsed time")
		values = append(values, c.Minutes())
	}
	logger.Info().Int("count", len(values)).Strs("times", inv.Times).Ints("mins", values).Msg("input times")

	scale := schedule.PerDay
	if opts.legacyScale {
		scale = schedule.Legacy
	}
	offsets, err := schedule.Generate(values, inv.FileName, scale)
	if err != nil {
		return err
	}

	content, err := schedule.WriteFile(inv.FileName, offsets)
	if err != nil {
		return err
	}
	logger.Info().Str("file", inv.FileName).Int("count", len(offsets)).Str("scale", scale.String()).Str("content", content).Msg("values written")

	if opts.check {
		if err := schedule.Verify(inv.FileName, offsets); err != nil {
			return err
		}
		logger.Info().Str("file", inv.FileName).Msg("content verified")
	}
	return nil
}
