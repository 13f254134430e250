package veto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials classifies the credential rejections surfaced
	// by Actor.IsAllowed. Match with errors.Is.
	ErrInvalidCredentials = errors.New("veto: invalid credentials")

	// ErrEvaluatorFailure marks an internal policy evaluator failure. It
	// appears in logs and audit entries but never crosses the check
	// boundary; the check collapses to denial.
	ErrEvaluatorFailure = errors.New("veto: policy evaluator failure")

	// ErrMissingPolicy marks the internal invariant violation of a check
	// reaching the decision path with no bound snapshot. Logged, collapses
	// to denial, never returned.
	ErrMissingPolicy = errors.New("veto: no policy snapshot bound")

	// ErrMissingEvaluator is returned by NewPolicy when enforcement is
	// enabled and no evaluator was supplied.
	ErrMissingEvaluator = errors.New("veto: evaluator is required")
)

// CredentialsError is the only error Actor.IsAllowed returns: a credential
// resolution failure captured when the template was built and surfaced at
// check time. It signals the request must be rejected outright (for example
// an expired or unverifiable token), distinct from a policy denial.
type CredentialsError struct {
	// Err is the deferred credential error, carried as a structured value.
	Err error
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("veto: invalid credentials: %v", e.Err)
}

// Unwrap exposes the deferred error for errors.Is and errors.As chains.
func (e *CredentialsError) Unwrap() error { return e.Err }

// Is matches ErrInvalidCredentials so callers can classify the rejection
// without depending on the concrete type.
func (e *CredentialsError) Is(target error) bool { return target == ErrInvalidCredentials }
