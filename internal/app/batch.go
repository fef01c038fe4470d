package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rnashapes-core/dotbracket"
	"rnashapes/internal/cli"
	"rnashapes/internal/pipeline"
	"rnashapes/internal/writers"
	"rnashapes/pkg/api"
)

func newBatchCmd(e *env) *cobra.Command {
	var opts cli.BatchOptions
	var noHeader *bool
	cmd := &cobra.Command{
		Use:   "batch [flags] FILE...",
		Short: "Shape every structure of dot-bracket files ('-' for stdin, .gz ok)",
		Long: `Shape every structure of dot-bracket files.

Records are one structure per line. A '>id' line names the next record, a
line of letters is kept as its sequence, '#' lines are comments, and fields
after the structure (RNAfold energies) are ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.AfterParseBatch(&opts, noHeader, args); err != nil {
				return usageErr(err)
			}
			return runBatch(cmd.Context(), e, opts)
		},
	}
	noHeader = cli.RegisterBatch(cmd.Flags(), &opts)
	return cmd
}

func runBatch(ctx context.Context, e *env, o cli.BatchOptions) error {
	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in, done := writers.StartShapeWriter(e.stdout, o.Output, writers.Options{
		Header: o.Header, Sort: o.Sort, Pretty: o.Pretty, Level: o.Level,
	}, thr*4)

	var shaped, skipped int
	perr := pipeline.ForEachShape(ctx, pipeline.Config{Threads: thr}, o.Files, pipeline.Core{}, func(r pipeline.Result) error {
		if r.Err != nil {
			fields := []zap.Field{
				zap.String("id", r.Record.ID),
				zap.String("file", r.Record.Source),
				zap.Int("line", r.Record.Line),
				zap.Error(r.Err),
			}
			if errors.Is(r.Err, dotbracket.ErrInvalidAlphabet) {
				fields = append(fields, zap.String("structure", r.Record.Structure))
			}
			if o.SkipInvalid {
				skipped++
				e.log.Warn("skipping invalid structure", fields...)
				return nil
			}
			e.log.Error("invalid structure", fields...)
			return failErr(fmt.Errorf("%s:%d: %w", r.Record.Source, r.Record.Line, r.Err))
		}
		select {
		case in <- toAPIShape(r):
			shaped++
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(in)
	werr := <-done

	if perr != nil {
		var ee *exitError
		if !errors.As(perr, &ee) && !errors.Is(perr, context.Canceled) {
			perr = failErr(perr)
		}
		return perr
	}
	if werr != nil {
		return outputErr(werr)
	}
	e.log.Info("batch finished",
		zap.Int("files", len(o.Files)), zap.Int("shaped", shaped), zap.Int("skipped", skipped))
	return nil
}

func toAPIShape(r pipeline.Result) api.ShapeV1 {
	return api.ShapeV1{
		ID:        r.Record.ID,
		Structure: r.Record.Structure,
		Level5:    r.Shapes.Level5,
		Level3:    r.Shapes.Level3,
		Level1:    r.Shapes.Level1,
		Stems:     r.Stems,
		Seq:       r.Record.Seq,
		Source:    r.Record.Source,
	}
}
