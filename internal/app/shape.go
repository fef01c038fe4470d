package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"rnashapes-core/dotbracket"
	"rnashapes/internal/cli"
	"rnashapes/internal/pipeline"
	"rnashapes/internal/writers"
	"rnashapes/pkg/api"
)

func runShape(ctx context.Context, e *env, o cli.ShapeOptions) error {
	structure := dotbracket.Normalize(o.Structure)
	shapes, stems, err := pipeline.Core{}.Shape(structure)
	if err != nil {
		if errors.Is(err, dotbracket.ErrInvalidAlphabet) {
			e.log.Warn("invalid dot-bracket structure", zap.String("structure", structure))
		}
		return failErr(err)
	}
	e.log.Debug("shaped structure", zap.Int("length", len(structure)), zap.Int("stems", len(stems)))

	in, done := writers.StartShapeWriter(e.stdout, o.Output, writers.Options{Level: o.Level, Pretty: o.Pretty}, 1)
	in <- api.ShapeV1{
		Structure: structure,
		Level5:    shapes.Level5,
		Level3:    shapes.Level3,
		Level1:    shapes.Level1,
		Stems:     len(stems),
	}
	close(in)
	if err := <-done; err != nil {
		return outputErr(err)
	}
	return ctx.Err()
}
