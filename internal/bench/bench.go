package bench

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rnashapes-core/shape"
)

// Options tune a regression run.
type Options struct {
	Threads int // 0 = all CPUs
	Source  string
	Logger  *zap.Logger
}

// Mismatch records a case whose computed shape differs from the expected one.
type Mismatch struct {
	Line      int
	Structure string
	Got       string
	Want      string
}

// Report is the outcome of one regression run. Each case is attributed to
// the first failing level in the order 5, 3, 1.
type Report struct {
	RunID   string
	Source  string
	Cases   int
	Level5  []Mismatch
	Level3  []Mismatch
	Level1  []Mismatch
	Invalid []Mismatch
	Elapsed time.Duration
}

// Mistakes counts failed cases, invalid structures included.
func (r *Report) Mistakes() int {
	return len(r.Level5) + len(r.Level3) + len(r.Level1) + len(r.Invalid)
}

// Passed counts cases matching on all three levels.
func (r *Report) Passed() int { return r.Cases - r.Mistakes() }

// SuccessRatio is (3N - mistakes) / 3N for N cases, 0 when there are none.
func (r *Report) SuccessRatio() float64 {
	total := 3 * r.Cases
	if total == 0 {
		return 0
	}
	return float64(total-r.Mistakes()) / float64(total)
}

type outcome struct {
	level shape.Level // 0 = pass
	got   string
	want  string
	err   error
}

// Run evaluates cases concurrently and aggregates them in input order.
func Run(ctx context.Context, cases []Case, o Options) (*Report, error) {
	start := time.Now()
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}
	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	results := make([]outcome, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(thr)
	for i := range cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluate(cases[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep := &Report{RunID: uuid.NewString(), Source: o.Source, Cases: len(cases)}
	for i, res := range results {
		c := cases[i]
		m := Mismatch{Line: c.Line, Structure: c.Structure, Got: res.got, Want: res.want}
		switch {
		case res.err != nil:
			m.Got = res.err.Error()
			rep.Invalid = append(rep.Invalid, m)
			log.Warn("invalid structure in regression file",
				zap.Int("line", c.Line), zap.String("structure", c.Structure), zap.Error(res.err))
		case res.level == shape.Level5:
			rep.Level5 = append(rep.Level5, m)
		case res.level == shape.Level3:
			rep.Level3 = append(rep.Level3, m)
		case res.level == shape.Level1:
			rep.Level1 = append(rep.Level1, m)
		}
	}
	rep.Elapsed = time.Since(start)
	return rep, nil
}

func evaluate(c Case) outcome {
	got, err := shape.Find(c.Structure)
	if err != nil {
		return outcome{err: err}
	}
	for _, l := range []shape.Level{shape.Level5, shape.Level3, shape.Level1} {
		if g, w := got.At(l), c.Want.At(l); g != w {
			return outcome{level: l, got: g, want: w}
		}
	}
	return outcome{}
}
