package discovery

import (
	"context"
	"errors"
	"fmt"

	"workspark/internal/domain/job"
)

var (
	// ErrTransport wraps any failure to reach or query the store.
	ErrTransport       = errors.New("job store unavailable")
	ErrInvalidCriteria = errors.New("invalid filter criteria")
)

// JobSource runs a job query against the store.
type JobSource interface {
	QueryJobs(ctx context.Context, q JobQuery) ([]job.Job, error)
}

// JobSourceFunc adapts a function to JobSource.
type JobSourceFunc func(ctx context.Context, q JobQuery) ([]job.Job, error)

func (f JobSourceFunc) QueryJobs(ctx context.Context, q JobQuery) ([]job.Job, error) {
	return f(ctx, q)
}

// Compose runs one criteria snapshot end to end: build the store query,
// fetch, then apply the budget bucket locally.
func Compose(ctx context.Context, src JobSource, c Criteria) ([]job.Job, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrTransport)
	}

	rows, err := src.QueryJobs(ctx, BuildJobQuery(c))
	if err != nil {
		if errors.Is(err, ErrTransport) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return FilterByBudget(rows, c.BudgetBucket), nil
}
