package discovery

import (
	"testing"

	"workspark/internal/domain/job"

	"github.com/google/uuid"
)

func ptr(v float64) *float64 { return &v }

func jobWithBudget(title string, min, max *float64) job.Job {
	return job.Job{
		ID:         uuid.New(),
		Title:      title,
		BudgetType: job.BudgetFixed,
		BudgetMin:  min,
		BudgetMax:  max,
		Currency:   "INR",
		Status:     job.StatusOpen,
	}
}

var allBuckets = []BudgetBucket{BucketAll, BucketUnder5k, Bucket5kTo15k, Bucket15kTo50k, BucketAbove50k}

func TestKeepInBucket_NoBudgetAlwaysKept(t *testing.T) {
	j := jobWithBudget("tbd", nil, nil)
	for _, b := range allBuckets {
		if !KeepInBucket(j, b) {
			t.Errorf("KeepInBucket(no budget, %s) = false, want true", b)
		}
	}

	zero := jobWithBudget("zero", ptr(0), ptr(0))
	for _, b := range allBuckets {
		if !KeepInBucket(zero, b) {
			t.Errorf("KeepInBucket(zero budget, %s) = false, want true", b)
		}
	}
}

func TestEffectiveBudget_PrefersMax(t *testing.T) {
	cases := []struct {
		name     string
		min, max *float64
		want     float64
		ok       bool
	}{
		{"both", ptr(1000), ptr(9000), 9000, true},
		{"min only", ptr(1000), nil, 1000, true},
		{"max only", nil, ptr(9000), 9000, true},
		{"zero max falls back", ptr(1000), ptr(0), 1000, true},
		{"neither", nil, nil, 0, false},
	}
	for _, c := range cases {
		got, ok := EffectiveBudget(jobWithBudget(c.name, c.min, c.max))
		if got != c.want || ok != c.ok {
			t.Errorf("%s: EffectiveBudget = (%v, %v), want (%v, %v)", c.name, got, ok, c.want, c.ok)
		}
	}
}

func TestKeepInBucket_Boundaries(t *testing.T) {
	cases := []struct {
		budget float64
		bucket BudgetBucket
		want   bool
	}{
		{4999, BucketUnder5k, true},
		{5000, BucketUnder5k, false},
		{5000, Bucket5kTo15k, true},
		{15000, Bucket5kTo15k, true},
		{15000, Bucket15kTo50k, true},
		{15001, Bucket5kTo15k, false},
		{50000, Bucket15kTo50k, true},
		{50000, BucketAbove50k, false},
		{50001, BucketAbove50k, true},
		{1, BudgetBucket("mystery"), true},
	}
	for _, c := range cases {
		j := jobWithBudget("b", nil, ptr(c.budget))
		if got := KeepInBucket(j, c.bucket); got != c.want {
			t.Errorf("KeepInBucket(%v, %s) = %v, want %v", c.budget, c.bucket, got, c.want)
		}
	}
}

func TestFilterByBudget_SpecExample(t *testing.T) {
	jobs := []job.Job{
		jobWithBudget("3000", nil, ptr(3000)),
		jobWithBudget("7000", nil, ptr(7000)),
		jobWithBudget("15000", ptr(10000), ptr(15000)),
		jobWithBudget("20000", nil, ptr(20000)),
		jobWithBudget("none", nil, nil),
	}

	got := FilterByBudget(jobs, Bucket5kTo15k)
	want := []string{"7000", "15000", "none"}
	if len(got) != len(want) {
		t.Fatalf("expected %d jobs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Title != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], got[i].Title)
		}
	}
}

func TestFilterByBudget_Idempotent(t *testing.T) {
	jobs := []job.Job{
		jobWithBudget("a", ptr(100), ptr(4000)),
		jobWithBudget("b", ptr(6000), nil),
		jobWithBudget("c", nil, ptr(70000)),
		jobWithBudget("d", nil, nil),
		jobWithBudget("e", ptr(20000), ptr(30000)),
	}
	for _, b := range allBuckets {
		once := FilterByBudget(jobs, b)
		twice := FilterByBudget(once, b)
		if len(once) != len(twice) {
			t.Fatalf("bucket %s: once=%d twice=%d", b, len(once), len(twice))
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Fatalf("bucket %s: order changed at %d", b, i)
			}
		}
	}
}

func TestParseBudgetBucket(t *testing.T) {
	for _, b := range allBuckets {
		if got, err := ParseBudgetBucket(string(b)); err != nil || got != b {
			t.Errorf("ParseBudgetBucket(%q) = (%q, %v)", b, got, err)
		}
	}
	if _, err := ParseBudgetBucket("cheap"); err == nil {
		t.Error("ParseBudgetBucket(\"cheap\") expected error, got nil")
	}
}
