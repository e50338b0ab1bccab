package propcheck

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	quickmath "xnamath.theprimeagen.com/pkg/quick-math"
)

const parallelBatchName = "sharded batch equals sequential batch"

type PropertyResult struct {
	Name    string
	Checked int
	Failed  int
	// WorstError is the largest error seen over all samples. Exact
	// properties count a failed sample as 1.
	WorstError float64
}

type Report struct {
	Results  []PropertyResult
	Duration time.Duration
}

func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Failed > 0 {
			return true
		}
	}
	return false
}

func (r Report) String() string {
	out := strings.Builder{}
	for _, res := range r.Results {
		status := "ok"
		if res.Failed > 0 {
			status = "FAIL"
		}
		fmt.Fprintf(&out, "%-4s %-45s checked=%d failed=%d worst=%g\n", status, res.Name, res.Checked, res.Failed, res.WorstError)
	}
	fmt.Fprintf(&out, "took %s\n", r.Duration)
	return out.String()
}

// Run checks every property cfg.Samples times and then runs the sharded
// batch check. A failing property is reported, not returned: the error is
// only set when ctx is done or the batch layer rejects a valid range.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (Report, error) {
	logger = logger.With("area", "propcheck")
	start := time.Now()
	r := rand.New(rand.NewSource(cfg.Seed))

	report := Report{}
	for _, p := range properties {
		res := PropertyResult{Name: p.name}
		for i := 0; i < cfg.Samples; i++ {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return report, err
				}
			}

			e, ok := p.check(r, cfg.Tolerance)
			res.Checked++
			if e > res.WorstError {
				res.WorstError = e
			}
			if !ok {
				res.Failed++
			}
		}

		if res.Failed > 0 {
			logger.Error("property failed", "property", res.Name, "failed", res.Failed, "worst", res.WorstError)
		} else {
			logger.Debug("property held", "property", res.Name, "checked", res.Checked, "worst", res.WorstError)
		}
		report.Results = append(report.Results, res)
	}

	res, err := checkShardedBatch(ctx, cfg, r)
	if err != nil {
		return report, err
	}
	if res.Failed > 0 {
		logger.Error("property failed", "property", res.Name, "failed", res.Failed)
	}
	report.Results = append(report.Results, res)
	report.Duration = time.Since(start)

	logger.Info("property check finished", "properties", len(report.Results), "failed", report.Failed(), "duration", report.Duration)
	return report, nil
}

// checkShardedBatch transforms one large batch sequentially and again split
// into cfg.Workers disjoint shards of the same destination slice, then
// compares the two element by element.
func checkShardedBatch(ctx context.Context, cfg Config, r *rand.Rand) (PropertyResult, error) {
	res := PropertyResult{Name: parallelBatchName}

	m := randomAffine(r)
	src := make([]quickmath.Vector3, cfg.Samples)
	for i := range src {
		src[i] = randomVector3(r)
	}

	sequential := make([]quickmath.Vector3, len(src))
	if err := quickmath.TransformVector3Slice(src, m, sequential); err != nil {
		return res, fmt.Errorf("sequential batch: %w", err)
	}

	sharded := make([]quickmath.Vector3, len(src))
	shard := (len(src) + cfg.Workers - 1) / cfg.Workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for start := 0; start < len(src); start += shard {
		length := min(shard, len(src)-start)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := quickmath.TransformVector3Range(src, start, m, sharded, start, length); err != nil {
				return fmt.Errorf("shard at %d: %w", start, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	for i := range src {
		res.Checked++
		if sequential[i] != sharded[i] {
			res.Failed++
			res.WorstError = max(res.WorstError, sequential[i].Distance(sharded[i]))
		}
	}

	return res, nil
}
