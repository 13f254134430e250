// Package hook defines lifecycle observers for authorization checks.
// Hooks are notified before and after each policy-backed decision and can
// react — metrics, tracing, alerting — without touching the hot path.
//
// Each lifecycle event is a separate interface so hooks opt in only to the
// events they care about.
package hook

import "context"

// Hook is the base interface all hooks must implement.
type Hook interface {
	// Name returns a unique human-readable name for the hook.
	Name() string
}

// BeforeCheck is called before an authorization check is evaluated.
type BeforeCheck interface {
	OnBeforeCheck(ctx context.Context, actor, action, resource string) error
}

// AfterCheck is called after a policy-backed authorization check completes.
// evalErr is non-nil when the evaluator failed and the check collapsed to
// denial.
type AfterCheck interface {
	OnAfterCheck(ctx context.Context, actor, action, resource string, allowed bool, evalErr error) error
}
