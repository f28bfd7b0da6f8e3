package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"workspark/internal/discovery"
)

const (
	jobsSearchPrefix = "jobs:search:"
	jobsLockPrefix   = "jobs:lock:"
)

type jobSearchCacheKeyInput struct {
	Version    int64  `json:"version"`
	Status     string `json:"status"`
	CategoryID string `json:"category_id"`
	Experience string `json:"experience"`
	Search     string `json:"search"`
	Order      bool   `json:"order"`
	Limit      int    `json:"limit"`
}

// normalizeSearchValue folds case only. Matching is case-insensitive, but
// inner whitespace is part of the substring pattern and must stay.
func normalizeSearchValue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// JobsSearchCacheKey hashes the store predicates of q together with the
// listing version. Budget buckets are not part of a JobQuery, so every bucket
// shares the cached fetch. Bumping the version orphans every older entry.
func JobsSearchCacheKey(q discovery.JobQuery, version int64) string {
	in := jobSearchCacheKeyInput{
		Version: version,
		Status:  string(q.Status),
		Search:  normalizeSearchValue(q.SearchText),
		Order:   q.OrderByCreatedDesc,
		Limit:   q.Limit,
	}
	if q.CategoryID != nil {
		in.CategoryID = q.CategoryID.String()
	}
	if q.ExperienceLevel != nil {
		in.Experience = string(*q.ExperienceLevel)
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return jobsSearchPrefix + hex.EncodeToString(sum[:])
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	return jobsLockPrefix + strings.TrimPrefix(searchKey, jobsSearchPrefix)
}
