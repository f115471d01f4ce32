package checker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"relint/internal/diag"
	"relint/internal/highlight"
)

// RunAll executes every checker against the request with bounded
// parallelism and returns one Result per checker, in checker order. A
// checker error degrades to an empty result for that checker; it is
// reported through logf and never fails the pass.
func RunAll(ctx context.Context, checkers []Checker, req Request, jobs int, logf func(format string, args ...any)) []Result {
	if len(checkers) == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(checkers) {
		jobs = len(checkers)
	}

	results := make([]Result, len(checkers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, c := range checkers {
		i, c := i, c
		g.Go(func() error {
			res, err := c.Check(gctx, req)
			if err != nil {
				if logf != nil {
					logf("checker %s failed: %v", c.Name(), err)
				}
				results[i] = emptyResult(c.Name())
				return nil
			}
			if res.Linter == "" {
				res.Linter = c.Name()
			}
			if res.Diagnostics == nil {
				res.Diagnostics = diag.LineMap{}
			}
			if res.Highlights == nil {
				res.Highlights = highlight.NewSet()
			}
			results[i] = res
			return nil
		})
	}
	// Errors are swallowed per checker above; Wait only joins.
	_ = g.Wait()
	return results
}

func emptyResult(name string) Result {
	return Result{
		Linter:      name,
		Diagnostics: diag.LineMap{},
		Highlights:  highlight.NewSet(),
	}
}
