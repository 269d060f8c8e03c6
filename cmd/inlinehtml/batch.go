package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/alnah/go-inlinehtml"
)

// result holds the outcome of a single document.
type result struct {
	Job      job
	Bytes    int
	Err      error
	Duration time.Duration
}

// inlineBatch processes jobs with a bounded pool of workers. Inliner calls
// share no state, so every worker uses the same Inliner. Once ctx is done,
// remaining jobs fail with the context error without being started.
func inlineBatch(ctx context.Context, inliner *inlinehtml.Inliner, jobs []job, workers int, stdout io.Writer) []result {
	if len(jobs) == 0 {
		return nil
	}

	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]result, len(jobs))
	queue := make(chan int, len(jobs))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if err := ctx.Err(); err != nil {
					results[idx] = result{Job: jobs[idx], Err: err}
					continue
				}
				results[idx] = inlineJob(inliner, jobs[idx], stdout)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// inlineJob inlines one document and writes it to its destination.
func inlineJob(inliner *inlinehtml.Inliner, j job, stdout io.Writer) result {
	start := time.Now()
	res := result{Job: j}

	out, err := inliner.InlineFile(j.InputPath)
	if err == nil {
		res.Bytes = len(out)
		if j.OutputPath == "" {
			_, err = io.WriteString(stdout, out)
		} else {
			err = writeOutput(j.OutputPath, out)
		}
	}

	res.Err = err
	res.Duration = time.Since(start)
	return res
}

// batchError reports how many documents of a batch failed.
// It unwraps to the combined per-document errors.
type batchError struct {
	failed, total int
	err           error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d documents failed: %v", e.failed, e.total, e.err)
}

func (e *batchError) Unwrap() error {
	return e.err
}

// reportResults logs each success and combines failures into one error.
func reportResults(log *zap.Logger, results []result) error {
	var (
		errs   error
		failed int
	)

	for _, r := range results {
		if r.Err != nil {
			failed++
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", r.Job.InputPath, r.Err))
			continue
		}

		output := r.Job.OutputPath
		if output == "" {
			output = "stdout"
		}
		log.Info("inlined",
			zap.String("input", r.Job.InputPath),
			zap.String("output", output),
			zap.Int("bytes", r.Bytes),
			zap.Duration("took", r.Duration.Round(time.Millisecond)))
	}

	if len(results) > 1 {
		log.Info("batch finished",
			zap.Int("succeeded", len(results)-failed),
			zap.Int("failed", failed))
	}

	switch {
	case failed == 0:
		return nil
	case len(results) == 1:
		return errs
	default:
		return &batchError{failed: failed, total: len(results), err: errs}
	}
}
