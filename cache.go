package veto

import "context"

// Cache provides caching for authorization decisions. Keys must incorporate
// the snapshot identifier so a rebound actor never sees decisions made under
// an older snapshot.
type Cache interface {
	// Get returns a cached decision, if available.
	Get(ctx context.Context, snapshot string, actor Actor, action Action, resource Resource) (allowed bool, ok bool)

	// Set stores a decision in the cache.
	Set(ctx context.Context, snapshot string, actor Actor, action Action, resource Resource, allowed bool)

	// InvalidateActor removes all cached decisions for an actor identity
	// under the given snapshot.
	InvalidateActor(ctx context.Context, snapshot string, name Name)
}
