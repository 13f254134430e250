package veto

import (
	"context"
	"log/slog"

	"github.com/xraph/veto/audit"
	"github.com/xraph/veto/hook"
	"github.com/xraph/veto/id"
)

// Evaluator is the boundary to the rule engine. Implementations decide
// whether the actor may perform the action on the resource.
//
// The contract: for a given policy snapshot an evaluator must be pure with
// respect to its inputs — the same (actor, action, resource) yields the same
// decision — so authorization checks stay testable and auditable.
// Implementations must honor ctx cancellation; the bound snapshot imposes
// Config.EvaluateTimeout at this boundary.
type Evaluator interface {
	Evaluate(ctx context.Context, actor Actor, action Action, resource Resource) (bool, error)
}

// Policy is an immutable policy snapshot. Binding a Template to a snapshot
// yields the Actor used for the duration of one request; rebinding a
// template against a newer snapshot produces a new Actor, never mutates an
// existing one. Two actors bound to different snapshots still compare equal.
type Policy struct {
	id        id.SnapshotID
	evaluator Evaluator
	logger    *slog.Logger
	config    Config
	cache     Cache
	audit     audit.Store
	hooks     *hook.Registry
}

// NewPolicy creates a policy snapshot with the given options. An evaluator
// is required unless enforcement is disabled in the config.
func NewPolicy(opts ...Option) (*Policy, error) {
	p := &Policy{
		id:     id.NewSnapshotID(),
		logger: slog.Default(),
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.evaluator == nil && p.config.enforceEnabled() {
		return nil, ErrMissingEvaluator
	}
	return p, nil
}

// ID returns the snapshot identifier.
func (p *Policy) ID() id.SnapshotID { return p.id }

// Bind finalizes a template against this snapshot, producing the immutable
// Actor used for one authorization decision.
func (p *Policy) Bind(tmpl Template) Actor {
	return Actor{
		name:        tmpl.name,
		isUser:      tmpl.isUser,
		attributes:  tmpl.attributes,
		credentials: tmpl.credentials,
		deferred:    tmpl.deferred,
		policy:      p,
	}
}
