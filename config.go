package veto

import "time"

// Config holds configuration for a Policy snapshot.
type Config struct {
	// Enforce selects between the policy-backed strategy and the
	// always-allow strategy. Defaults to true. Disabling enforcement
	// exists for single-user or trusted-environment deployments: every
	// check then returns allow without consulting the evaluator, the
	// deferred credential error, or anything else.
	Enforce *bool `json:"enforce,omitempty"`

	// EvaluateTimeout bounds a single evaluator invocation so
	// authorization checks cannot stall request handling indefinitely.
	// Zero means no bound. Defaults to 5s.
	EvaluateTimeout time.Duration `json:"evaluate_timeout,omitempty"`

	// CacheTTL is the time-to-live hint for decision caches. Zero means
	// the cache's own default.
	CacheTTL time.Duration `json:"cache_ttl,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	t := true
	return Config{
		Enforce:         &t,
		EvaluateTimeout: 5 * time.Second,
	}
}

func (c Config) enforceEnabled() bool { return c.Enforce == nil || *c.Enforce }
