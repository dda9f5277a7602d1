// Package sweep runs batches of random-rule-table evolutions across a
// range of lambda values and reports complexity measures per trial.
package sweep

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/swifmaneum/cellpylib/internal/config"
	"github.com/swifmaneum/cellpylib/pkg/ca"
	"github.com/swifmaneum/cellpylib/pkg/core"
	"github.com/swifmaneum/cellpylib/pkg/rules"
	"github.com/swifmaneum/cellpylib/pkg/stats"
)

type job struct {
	lambda float64
	trial  int
	seed   int64
}

type outcome struct {
	result Result
	err    error
}

// Runner fans trials out over a worker pool. Trials are independent
// evolutions, so parallelism lives here and never inside an evolve
// call.
type Runner struct {
	cfg     *config.Config
	workers int
	log     *slog.Logger
}

// New creates a runner; workers < 1 is clamped to 1.
func New(cfg *config.Config, workers int, log *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{cfg: cfg, workers: workers, log: log}
}

// Run executes every lambda x trial combination and returns the rows
// sorted by (lambda, trial). Each trial derives its own seed from the
// sweep seed, so a sweep is reproducible end to end.
func (r *Runner) Run() ([]Result, error) {
	lambdas := r.cfg.Lambdas()
	var sets []job
	for _, lambda := range lambdas {
		for trial := 0; trial < r.cfg.Sweep.Trials; trial++ {
			sets = append(sets, job{
				lambda: lambda,
				trial:  trial,
				seed:   r.cfg.Sweep.Seed + int64(len(sets)),
			})
		}
	}
	r.log.Info("sweep starting",
		"lambdas", len(lambdas),
		"trials", r.cfg.Sweep.Trials,
		"jobs", len(sets),
		"workers", r.workers)

	jobs := make(chan job)
	outcomes := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := r.runTrial(j)
				outcomes <- outcome{result: res, err: err}
			}
		}()
	}

	go func() {
		for _, j := range sets {
			jobs <- j
		}
		close(jobs)
		wg.Wait()
		close(outcomes)
	}()

	results := make([]Result, 0, len(sets))
	var firstErr error
	done := 0
	for o := range outcomes {
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}
		results = append(results, o.result)
		done++
		if done%50 == 0 {
			r.log.Info("sweep progress", "done", done, "total", len(sets))
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Lambda != results[j].Lambda {
			return results[i].Lambda < results[j].Lambda
		}
		return results[i].Trial < results[j].Trial
	})
	return results, nil
}

// runTrial builds a table, evolves one grid under it and measures the
// history.
func (r *Runner) runTrial(j job) (Result, error) {
	start := time.Now()
	rng := core.NewRNG(j.seed)
	sw := r.cfg.Sweep

	table, actual, _, err := rules.RandomTable(rules.TableConfig{
		Lambda:           j.lambda,
		K:                sw.K,
		R:                sw.R,
		StrongQuiescence: sw.StrongQuiescence,
		Isotropic:        sw.Isotropic,
	}, rng)
	if err != nil {
		return Result{}, fmt.Errorf("lambda=%v trial=%d: %w", j.lambda, j.trial, err)
	}

	grid := r.cfg.Grid
	n := grid.RandomizedCells
	if n == 0 {
		n = grid.Width
	}
	hist, err := ca.InitRandomN(grid.Width, sw.K, n, rng)
	if err != nil {
		return Result{}, err
	}
	hist, err = ca.Evolve(hist, grid.Timesteps, sw.R, rules.Table(table), true)
	if err != nil {
		return Result{}, fmt.Errorf("lambda=%v trial=%d: %w", j.lambda, j.trial, err)
	}

	entropy, err := stats.AverageCellEntropy(hist)
	if err != nil {
		return Result{}, err
	}
	mi, err := stats.AverageMutualInformation(hist, r.cfg.Stats.TemporalDistance)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Lambda:        j.lambda,
		ActualLambda:  actual,
		Trial:         j.trial,
		Seed:          j.seed,
		K:             sw.K,
		R:             sw.R,
		CellEntropy:   entropy,
		MutualInfo:    mi,
		ElapsedMillis: time.Since(start).Milliseconds(),
	}, nil
}
