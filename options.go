package veto

import (
	"log/slog"

	"github.com/xraph/veto/audit"
	"github.com/xraph/veto/hook"
)

// Option is a functional option for NewPolicy.
type Option func(*Policy)

// WithEvaluator sets the policy evaluator.
func WithEvaluator(ev Evaluator) Option { return func(p *Policy) { p.evaluator = ev } }

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option { return func(p *Policy) { p.logger = l } }

// WithConfig sets the snapshot configuration.
func WithConfig(c Config) Option { return func(p *Policy) { p.config = c } }

// WithCache sets the decision cache.
func WithCache(c Cache) Option { return func(p *Policy) { p.cache = c } }

// WithAuditStore sets the decision audit store.
func WithAuditStore(s audit.Store) Option { return func(p *Policy) { p.audit = s } }

// WithHook registers a lifecycle hook with the snapshot.
func WithHook(h hook.Hook) Option {
	return func(p *Policy) {
		if p.hooks == nil {
			p.hooks = hook.NewRegistry(p.logger)
		}
		p.hooks.Register(h)
	}
}
