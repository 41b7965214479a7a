package task

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/outcome/pkg/outcome"
)

// All awaits every task concurrently and returns their outcomes in
// input order. At most limit tasks run at once; limit <= 0 means no
// bound. All never short-circuits: every task is awaited regardless of
// how the others fare, so the result pairs naturally with
// outcome.Combine.
func All[T any](ctx context.Context, limit int, tasks ...Task[T]) []outcome.Outcome[T] {
	if len(tasks) == 0 {
		panic(&outcome.ArgumentError{Name: "tasks", Reason: "must contain at least one task"})
	}
	for _, t := range tasks {
		guard("tasks", t)
	}

	results := make([]outcome.Outcome[T], len(tasks))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			results[i] = t(ctx)
			return nil
		})
	}
	g.Wait()

	return results
}
