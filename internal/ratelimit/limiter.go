// Package ratelimit decides whether a keyed request may proceed. The
// concrete window implementation is swappable (Redis-backed for shared
// deployments, in-memory for single instances and tests); callers only see
// the allow/deny verdict.
package ratelimit

import (
	"context"
	"time"
)

// Limiter is the capability injected into the HTTP layer. Allow reports
// whether one more request under key fits within limit per window. An error
// means the check itself failed; callers are expected to fail open.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Tier is one rate-limit bucket configuration.
type Tier struct {
	// Prefix namespaces the tier's keys, e.g. "ip:" or "data:ip:".
	Prefix string
	Limit  int
	Window time.Duration
}

// Key derives the bucket key for a client identifier. Callers with no
// network address share the "unknown" bucket; that is a documented
// property, not a bug.
func (t Tier) Key(identifier string) string {
	if identifier == "" {
		identifier = "unknown"
	}
	return t.Prefix + identifier
}
