package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"
	"unicode/utf8"

	"github.com/katalvlaran/seqalign/align"
	"golang.org/x/sync/errgroup"
)

// Option customizes Run.
type Option func(*runConfig)

type runConfig struct {
	parallel  int
	maxLength int // 0 = unbounded
	observer  func(Outcome)
}

// WithParallel bounds concurrent alignments. Panics on n < 1.
func WithParallel(n int) Option {
	if n < 1 {
		panic("batch: WithParallel(n < 1)")
	}
	return func(c *runConfig) {
		c.parallel = n
	}
}

// WithMaxLength rejects pairs whose sequences exceed n symbols with ErrTooLong.
// n == 0 disables the bound. Panics on n < 0.
func WithMaxLength(n int) Option {
	if n < 0 {
		panic("batch: WithMaxLength(n < 0)")
	}
	return func(c *runConfig) {
		c.maxLength = n
	}
}

// WithObserver registers fn to be called once per finished pair, from the
// worker goroutine. fn must be safe for concurrent use. Panics on nil.
func WithObserver(fn func(Outcome)) Option {
	if fn == nil {
		panic("batch: WithObserver(nil)")
	}
	return func(c *runConfig) {
		c.observer = fn
	}
}

// Run aligns every pair under cfg and returns one Outcome per pair in input
// order. Per-pair failures are stored in Outcome.Err. The returned error is
// non-nil only for an invalid cfg or when ctx ends; in the latter case the
// unscheduled pairs carry ErrNotRun.
//
// Default parallelism is GOMAXPROCS.
func Run(ctx context.Context, pairs []Pair, cfg align.Config, opts ...Option) ([]Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rc := runConfig{parallel: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&rc)
	}

	out := make([]Outcome, len(pairs))
	for k := range pairs {
		out[k] = Outcome{Pair: pairs[k], Err: ErrNotRun}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rc.parallel)

	for k := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[k] = runPair(pairs[k], cfg, rc.maxLength)
			if rc.observer != nil {
				rc.observer(out[k])
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}

	return out, nil
}

// runPair aligns a single pair.
func runPair(p Pair, cfg align.Config, maxLength int) Outcome {
	start := time.Now()
	if maxLength > 0 {
		if la, lb := utf8.RuneCountInString(p.A), utf8.RuneCountInString(p.B); la > maxLength || lb > maxLength {
			return Outcome{
				Pair:     p,
				Err:      fmt.Errorf("pair %s: lengths %d/%d, limit %d: %w", p.ID, la, lb, maxLength, ErrTooLong),
				Duration: time.Since(start),
			}
		}
	}
	res, err := align.Align(p.A, p.B, cfg)

	return Outcome{Pair: p, Result: res, Err: err, Duration: time.Since(start)}
}
