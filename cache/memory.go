// Package cache provides caching implementations for veto decisions.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xraph/veto"
)

// Compile-time interface check.
var _ veto.Cache = (*Memory)(nil)

// Memory is an in-memory decision cache with TTL-based expiration. Keys
// incorporate the snapshot ID, the actor's identity (name, user flag, and
// canonical attributes), the action, and the resource, so a rebound actor
// or a changed attribute set never sees a stale ruling.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	maxSize int
}

type entry struct {
	allowed   bool
	expiresAt time.Time
}

// MemoryOption configures the memory cache.
type MemoryOption func(*Memory)

// WithTTL sets the cache entry time-to-live.
func WithTTL(ttl time.Duration) MemoryOption {
	return func(m *Memory) { m.ttl = ttl }
}

// WithMaxSize sets the maximum number of cache entries.
func WithMaxSize(n int) MemoryOption {
	return func(m *Memory) { m.maxSize = n }
}

// NewMemory creates a new in-memory decision cache.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		entries: make(map[string]*entry),
		ttl:     time.Minute,
		maxSize: 10000,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns a cached decision.
func (m *Memory) Get(_ context.Context, snapshot string, actor veto.Actor, action veto.Action, resource veto.Resource) (bool, bool) {
	key := cacheKey(snapshot, actor, action, resource)
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return false, false
	}
	if time.Now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return false, false
	}
	return e.allowed, true
}

// Set stores a decision in the cache.
func (m *Memory) Set(_ context.Context, snapshot string, actor veto.Actor, action veto.Action, resource veto.Resource, allowed bool) {
	key := cacheKey(snapshot, actor, action, resource)
	m.mu.Lock()
	defer m.mu.Unlock()

	// Evict if at capacity.
	if len(m.entries) >= m.maxSize {
		m.evictExpired()
		if len(m.entries) >= m.maxSize {
			m.evictOne()
		}
	}

	m.entries[key] = &entry{
		allowed:   allowed,
		expiresAt: time.Now().Add(m.ttl),
	}
}

// InvalidateActor removes all cached decisions for an actor identity under
// the given snapshot.
func (m *Memory) InvalidateActor(_ context.Context, snapshot string, name veto.Name) {
	prefix := fmt.Sprintf("%s:%s:", snapshot, name)
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			delete(m.entries, k)
		}
	}
}

// cacheKey renders the attribute map through fmt, which sorts map keys, so
// keys are deterministic.
func cacheKey(snapshot string, actor veto.Actor, action veto.Action, resource veto.Resource) string {
	return fmt.Sprintf("%s:%s:%t:%v:%s:%s",
		snapshot,
		actor.Name(),
		actor.IsUser(),
		actor.Attributes(),
		action,
		resource,
	)
}

// evictExpired removes all expired entries. Must hold write lock.
func (m *Memory) evictExpired() {
	now := time.Now()
	for k, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, k)
		}
	}
}

// evictOne removes one arbitrary entry. Must hold write lock.
func (m *Memory) evictOne() {
	for k := range m.entries {
		delete(m.entries, k)
		return
	}
}
