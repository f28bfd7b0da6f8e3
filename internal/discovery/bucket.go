package discovery

import (
	"fmt"

	"workspark/internal/domain/job"
)

// BudgetBucket is a coarse budget range selector.
type BudgetBucket string

const (
	BucketAll      BudgetBucket = "all"
	BucketUnder5k  BudgetBucket = "under-5k"
	Bucket5kTo15k  BudgetBucket = "5k-15k"
	Bucket15kTo50k BudgetBucket = "15k-50k"
	BucketAbove50k BudgetBucket = "above-50k"
)

func ParseBudgetBucket(s string) (BudgetBucket, error) {
	b := BudgetBucket(s)
	switch b {
	case BucketAll, BucketUnder5k, Bucket5kTo15k, Bucket15kTo50k, BucketAbove50k:
		return b, nil
	}
	return "", fmt.Errorf("unknown budget bucket %q", s)
}

// EffectiveBudget prefers the maximum and falls back to the minimum.
// A zero amount counts as unset.
func EffectiveBudget(j job.Job) (float64, bool) {
	if j.BudgetMax != nil && *j.BudgetMax != 0 {
		return *j.BudgetMax, true
	}
	if j.BudgetMin != nil && *j.BudgetMin != 0 {
		return *j.BudgetMin, true
	}
	return 0, false
}

// KeepInBucket reports whether a job passes the bucket. Jobs without any
// budget are always kept, as are unrecognised buckets.
//
// 5k-15k and 15k-50k are both inclusive, so 15000 matches either.
func KeepInBucket(j job.Job, b BudgetBucket) bool {
	if b == BucketAll || b == "" {
		return true
	}
	v, ok := EffectiveBudget(j)
	if !ok {
		return true
	}

	switch b {
	case BucketUnder5k:
		return v < 5000
	case Bucket5kTo15k:
		return v >= 5000 && v <= 15000
	case Bucket15kTo50k:
		return v >= 15000 && v <= 50000
	case BucketAbove50k:
		return v > 50000
	default:
		return true
	}
}

// FilterByBudget keeps the jobs that pass the bucket, preserving order.
func FilterByBudget(jobs []job.Job, b BudgetBucket) []job.Job {
	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if KeepInBucket(j, b) {
			out = append(out, j)
		}
	}
	return out
}
