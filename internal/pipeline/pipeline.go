// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"rnashapes-core/shape"
	"rnashapes-core/stem"
	"rnashapes/internal/dbn"
)

// Shaper abstracts one structure.
type Shaper interface {
	Shape(structure string) (shape.Shapes, []stem.Stem, error)
}

// Core is the Shaper backed by rnashapes-core.
type Core struct{}

func (Core) Shape(structure string) (shape.Shapes, []stem.Stem, error) {
	s, err := shape.Find(structure)
	if err != nil {
		return shape.Shapes{}, nil, err
	}
	// Find already validated; Segment cannot fail here.
	stems, err := stem.Segment(structure)
	return s, stems, err
}

// Config controls the batch pipeline.
type Config struct {
	Threads int // worker goroutines (>=1)
}

// Result is one shaped record. Err is set when the structure was rejected.
type Result struct {
	Seq    int
	Record dbn.Record
	Shapes shape.Shapes
	Stems  int
	Err    error
}

type job struct {
	seq int
	rec dbn.Record
}

// ForEachShape reads every record of files, shapes them concurrently and calls
// visit once per record in file order. It returns the first error from
// reading or visiting, or the context error when cancelled.
func ForEachShape(ctx context.Context, cfg Config, files []string, sh Shaper, visit func(Result) error) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan Result, cfg.Threads*2)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		n := 0
		for _, fn := range files {
			err := dbn.StreamPathCtx(gctx, fn, func(r dbn.Record) error {
				select {
				case jobs <- job{seq: n, rec: r}:
					n++
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				res := Result{Seq: j.seq, Record: j.rec}
				var stems []stem.Stem
				res.Shapes, stems, res.Err = sh.Shape(j.rec.Structure)
				res.Stems = len(stems)
				select {
				case results <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: reorder to input sequence.
	var (
		verr    error
		next    int
		pending = make(map[int]Result)
	)
	for res := range results {
		if verr != nil {
			continue
		}
		pending[res.Seq] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := visit(r); err != nil {
				verr = err
				cancel()
				break
			}
		}
	}

	gerr := g.Wait()
	if verr != nil {
		return verr
	}
	if err := ctx.Err(); err != nil && (gerr == nil || errors.Is(gerr, context.Canceled)) {
		return err
	}
	return gerr
}
