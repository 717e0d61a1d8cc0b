package check

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/FiveMP/FiveMP-API/internal/zone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Config controls a batch run.
type Config struct {
	Workers int
	// Progress is the interval between progress log lines. Zero disables them.
	Progress time.Duration
}

// Result holds the outcome of classifying one point.
type Result struct {
	Point
	Zones []string `json:"zones"`
	Error string   `json:"error,omitempty"`
}

// Run classifies every point against the set using a bounded worker pool.
// Results keep the order of points. A cancelled context stops the run and
// returns the context error along with whatever finished.
func Run(ctx context.Context, cfg Config, set *zone.Set, points []Point) ([]Result, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	total := len(points)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	defer close(done)
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						log.Info().
							Int64("done", p).
							Int("total", total).
							Float64("rate", rate).
							Msg("classifying points")
					}
				}
			}
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range points {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = classify(set, points[i])
			processed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	log.Debug().
		Int("points", total).
		Dur("elapsed", time.Since(start)).
		Msg("classification finished")

	return results, nil
}

func classify(set *zone.Set, p Point) Result {
	names, err := set.Locate(p.Position)
	if err != nil {
		return Result{Point: p, Error: err.Error()}
	}
	return Result{Point: p, Zones: names}
}
