package veto

import "context"

type contextKey int

const ctxKeyActor contextKey = iota

// WithActor returns a context carrying the request's actor. Transport layers
// set it once after binding; downstream code retrieves it with
// ActorFromContext.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, ctxKeyActor, actor)
}

// ActorFromContext returns the actor stored in the context, if any.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ctxKeyActor).(Actor)
	return a, ok
}
