package veto

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xraph/veto/audit"
	"github.com/xraph/veto/id"
)

// IsAllowed answers whether this actor may perform action on resource.
//
// The decision sequence is strict:
//
//  1. If the bound snapshot has enforcement disabled, the check returns
//     (true, nil) unconditionally.
//  2. If the actor carries a deferred credential error, the check returns
//     (false, *CredentialsError) without consulting the evaluator.
//  3. Otherwise the bound snapshot's evaluator decides. An evaluator
//     failure is logged and collapses to (false, nil) — an authorization
//     failure must never be indistinguishable from a crash.
//  4. An actor with no bound snapshot (test-support construction) denies
//     with (false, nil) and never panics.
//
// The only error returned is *CredentialsError.
func (a Actor) IsAllowed(ctx context.Context, action Action, resource Resource) (bool, error) {
	if a.policy != nil && !a.policy.config.enforceEnabled() {
		return true, nil
	}

	if a.deferred != nil {
		a.logger().DebugContext(ctx, "authorization rejected: credential error",
			slog.String("actor", a.Name()),
			slog.String("action", action.String()),
			slog.String("resource", resource.String()),
			slog.Any("error", a.deferred),
		)
		if a.policy != nil {
			a.policy.record(ctx, a, action, resource, DecisionErrCredentials, a.deferred.Error(), 0)
		}
		return false, &CredentialsError{Err: a.deferred}
	}

	if a.policy == nil {
		// Only reachable through test-support construction. Deny rather
		// than crash.
		a.logger().ErrorContext(ctx, "authorization denied: no policy snapshot bound",
			slog.String("actor", a.Name()),
			slog.String("action", action.String()),
			slog.String("resource", resource.String()),
			slog.Any("error", ErrMissingPolicy),
		)
		return false, nil
	}

	return a.policy.decide(ctx, a, action, resource)
}

func (a Actor) logger() *slog.Logger {
	if a.policy != nil {
		return a.policy.logger
	}
	return slog.Default()
}

// decide runs the policy-backed branch of the check: cache, hooks,
// evaluator with timeout, logging, and the audit record.
func (p *Policy) decide(ctx context.Context, actor Actor, action Action, resource Resource) (bool, error) {
	start := time.Now()

	if p.cache != nil {
		if allowed, ok := p.cache.Get(ctx, p.id.String(), actor, action, resource); ok {
			return allowed, nil
		}
	}

	if p.hooks != nil {
		p.hooks.EmitBeforeCheck(ctx, actor.Name(), action.String(), resource.String())
	}

	evalCtx := ctx
	if p.config.EvaluateTimeout > 0 {
		var cancel context.CancelFunc
		evalCtx, cancel = context.WithTimeout(ctx, p.config.EvaluateTimeout)
		defer cancel()
	}

	allowed, err := p.evaluator.Evaluate(evalCtx, actor, action, resource)
	if err != nil {
		p.logger.ErrorContext(ctx, "authorization denied: evaluator failure",
			slog.String("actor", actor.Name()),
			slog.String("action", action.String()),
			slog.String("resource", resource.String()),
			slog.Any("error", fmt.Errorf("%w: %w", ErrEvaluatorFailure, err)),
		)
		p.record(ctx, actor, action, resource, DecisionDenyError, err.Error(), time.Since(start))
		p.emitAfter(ctx, actor, action, resource, false, err)
		return false, nil
	}

	if allowed {
		p.logger.DebugContext(ctx, "access granted",
			slog.String("actor", actor.Name()),
			slog.String("action", action.String()),
			slog.String("resource", resource.String()),
		)
	} else {
		// Full actor detail on denial only, to aid audit without leaking
		// attributes on the common allow path.
		p.logger.DebugContext(ctx, "access denied",
			slog.String("actor", fmt.Sprintf("%#v", actor)),
			slog.String("action", action.String()),
			slog.String("resource", resource.String()),
		)
	}

	if p.cache != nil {
		p.cache.Set(ctx, p.id.String(), actor, action, resource, allowed)
	}

	decision := DecisionDeny
	if allowed {
		decision = DecisionAllow
	}
	p.record(ctx, actor, action, resource, decision, "", time.Since(start))
	p.emitAfter(ctx, actor, action, resource, allowed, nil)
	return allowed, nil
}

// record writes a best-effort audit entry. A failing audit store must not
// affect the decision.
func (p *Policy) record(ctx context.Context, actor Actor, action Action, resource Resource, decision Decision, reason string, took time.Duration) {
	if p.audit == nil {
		return
	}
	e := &audit.Entry{
		ID:         id.NewAuditID(),
		Actor:      actor.Name(),
		IsUser:     actor.IsUser(),
		Action:     action.String(),
		Resource:   resource.String(),
		Decision:   string(decision),
		Reason:     reason,
		Snapshot:   p.id.String(),
		EvalTimeNs: took.Nanoseconds(),
	}
	if err := p.audit.RecordDecision(ctx, e); err != nil {
		p.logger.ErrorContext(ctx, "audit record failed",
			slog.String("actor", actor.Name()),
			slog.Any("error", err),
		)
	}
}

func (p *Policy) emitAfter(ctx context.Context, actor Actor, action Action, resource Resource, allowed bool, evalErr error) {
	if p.hooks == nil {
		return
	}
	p.hooks.EmitAfterCheck(ctx, actor.Name(), action.String(), resource.String(), allowed, evalErr)
}
