package hook

import (
	"context"
	"log/slog"
)

// Named entry types pair a hook with its name for logging.

type beforeCheckEntry struct {
	name string
	hook BeforeCheck
}
type afterCheckEntry struct {
	name string
	hook AfterCheck
}

// Registry holds registered hooks and dispatches lifecycle events to them.
// A hook error is logged and never affects the decision.
type Registry struct {
	logger      *slog.Logger
	hooks       []Hook
	beforeCheck []beforeCheckEntry
	afterCheck  []afterCheckEntry
}

// NewRegistry creates a registry that logs hook failures to the given
// logger.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// Register adds a hook and type-asserts it into all applicable event
// caches. Hooks are notified in registration order.
func (r *Registry) Register(h Hook) {
	r.hooks = append(r.hooks, h)
	name := h.Name()

	if bc, ok := h.(BeforeCheck); ok {
		r.beforeCheck = append(r.beforeCheck, beforeCheckEntry{name, bc})
	}
	if ac, ok := h.(AfterCheck); ok {
		r.afterCheck = append(r.afterCheck, afterCheckEntry{name, ac})
	}
}

// Hooks returns all registered hooks.
func (r *Registry) Hooks() []Hook { return r.hooks }

// EmitBeforeCheck notifies all hooks that implement BeforeCheck.
func (r *Registry) EmitBeforeCheck(ctx context.Context, actor, action, resource string) {
	for _, e := range r.beforeCheck {
		if err := e.hook.OnBeforeCheck(ctx, actor, action, resource); err != nil {
			r.logHookError("OnBeforeCheck", e.name, err)
		}
	}
}

// EmitAfterCheck notifies all hooks that implement AfterCheck.
func (r *Registry) EmitAfterCheck(ctx context.Context, actor, action, resource string, allowed bool, evalErr error) {
	for _, e := range r.afterCheck {
		if err := e.hook.OnAfterCheck(ctx, actor, action, resource, allowed, evalErr); err != nil {
			r.logHookError("OnAfterCheck", e.name, err)
		}
	}
}

func (r *Registry) logHookError(event, name string, err error) {
	r.logger.Error("hook failed",
		slog.String("event", event),
		slog.String("hook", name),
		slog.Any("error", err),
	)
}
