// Package veto models authenticated actors and the authorization-check
// protocol between an actor, a requested action/resource pair, and a
// pluggable policy evaluator.
//
// A Template describes a logical identity — anonymous, system, or
// authenticated user — and is bound to a Policy snapshot to produce an
// immutable Actor. Every protected operation asks the actor for a ruling:
//
//	pol, err := veto.NewPolicy(veto.WithEvaluator(eval))
//	actor := pol.Bind(veto.User("alice", attrs, nil))
//	allowed, err := actor.IsAllowed(ctx, "read", "repository:alpha")
//
// The check fails closed: evaluator failures and missing snapshots collapse
// to denial, never to a crash or an ambiguous allow. The only error
// IsAllowed returns is *CredentialsError, signaling that the request must be
// rejected outright because credential resolution already failed.
package veto

// Action is an opaque, displayable name for what the actor wants to do.
type Action string

// String returns the action text.
func (a Action) String() string { return string(a) }

// Resource is an opaque, displayable name for the target of an action.
type Resource string

// String returns the resource text.
func (r Resource) String() string { return string(r) }

// Decision classifies the outcome of an authorization check for audit
// records and lifecycle hooks.
type Decision string

const (
	// DecisionAllow means the check granted access.
	DecisionAllow Decision = "allow"

	// DecisionDeny means the evaluator ruled against the request.
	DecisionDeny Decision = "deny"

	// DecisionDenyError means the evaluator failed internally and the
	// check collapsed to denial.
	DecisionDenyError Decision = "deny_error"

	// DecisionDenyUnbound means the actor had no policy snapshot bound.
	DecisionDenyUnbound Decision = "deny_unbound"

	// DecisionErrCredentials means a deferred credential error rejected
	// the request before the evaluator was consulted.
	DecisionErrCredentials Decision = "error_credentials"
)
