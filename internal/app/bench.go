package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rnashapes/internal/bench"
	"rnashapes/internal/cli"
	"rnashapes/internal/writers"
)

func newBenchCmd(e *env) *cobra.Command {
	var opts cli.BenchOptions
	cmd := &cobra.Command{
		Use:   "bench [flags] FILE",
		Short: "Replay a regression file of structure/level5/level3/level1 line groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.File = args[0]
			if err := cli.ValidateBench(&opts); err != nil {
				return usageErr(err)
			}
			return runBench(cmd.Context(), e, opts)
		},
	}
	cli.RegisterBench(cmd.Flags(), &opts)
	return cmd
}

func runBench(ctx context.Context, e *env, o cli.BenchOptions) error {
	cases, err := bench.LoadCases(o.File)
	if err != nil {
		return failErr(err)
	}
	rep, err := bench.Run(ctx, cases, bench.Options{Threads: o.Threads, Source: o.File, Logger: e.log})
	if err != nil {
		return err
	}
	e.log.Info("regression finished",
		zap.String("run_id", rep.RunID),
		zap.Int("cases", rep.Cases),
		zap.Int("mistakes", rep.Mistakes()),
		zap.Float64("success_ratio", rep.SuccessRatio()),
		zap.Duration("elapsed", rep.Elapsed))

	if err := writers.WriteReport(o.Output, e.stdout, bench.ToAPI(rep, o.MaxReport), writers.Options{Pretty: o.Pretty}); err != nil {
		return outputErr(err)
	}
	if o.FailOnMismatch && rep.Mistakes() > 0 {
		return failErr(fmt.Errorf("%d of %d cases failed", rep.Mistakes(), rep.Cases))
	}
	return nil
}
