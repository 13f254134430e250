// Package memory provides an in-memory implementation of the veto audit
// store. It is intended for testing and development.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/xraph/veto/audit"
	"github.com/xraph/veto/id"
	"github.com/xraph/veto/store"
)

// Compile-time interface check.
var _ store.Store = (*Store)(nil)

// errNotFound is the sentinel for missing entries.
var errNotFound = fmt.Errorf("not found")

// Store is a thread-safe in-memory audit store.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*audit.Entry
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{entries: make(map[string]*audit.Entry)}
}

// Migrate is a no-op for the memory store.
func (s *Store) Migrate(_ context.Context) error { return nil }

// Ping is a no-op for the memory store.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op for the memory store.
func (s *Store) Close() error { return nil }

func (s *Store) RecordDecision(_ context.Context, e *audit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	s.entries[e.ID.String()] = copyEntry(e)
	return nil
}

func (s *Store) GetDecision(_ context.Context, auditID id.AuditID) (*audit.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[auditID.String()]
	if !ok {
		return nil, fmt.Errorf("decision %s: %w", auditID, errNotFound)
	}
	return copyEntry(e), nil
}

func (s *Store) ListDecisions(_ context.Context, filter *audit.QueryFilter) ([]*audit.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*audit.Entry
	for _, e := range s.entries {
		if matchesFilter(e, filter) {
			result = append(result, copyEntry(e))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return paginate(result, filter), nil
}

func (s *Store) CountDecisions(_ context.Context, filter *audit.QueryFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, e := range s.entries {
		if matchesFilter(e, filter) {
			count++
		}
	}
	return count, nil
}

func (s *Store) PurgeDecisions(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for k, e := range s.entries {
		if e.CreatedAt.Before(before) {
			delete(s.entries, k)
			purged++
		}
	}
	return purged, nil
}

func matchesFilter(e *audit.Entry, f *audit.QueryFilter) bool {
	if f == nil {
		return true
	}
	if f.Actor != "" && e.Actor != f.Actor {
		return false
	}
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	if f.Resource != "" && e.Resource != f.Resource {
		return false
	}
	if f.Decision != "" && e.Decision != f.Decision {
		return false
	}
	if f.Snapshot != "" && e.Snapshot != f.Snapshot {
		return false
	}
	if f.After != nil && e.CreatedAt.Before(*f.After) {
		return false
	}
	if f.Before != nil && e.CreatedAt.After(*f.Before) {
		return false
	}
	return true
}

func paginate(entries []*audit.Entry, f *audit.QueryFilter) []*audit.Entry {
	if f == nil {
		return entries
	}
	if f.Offset > 0 {
		if f.Offset >= len(entries) {
			return nil
		}
		entries = entries[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(entries) {
		entries = entries[:f.Limit]
	}
	return entries
}

func copyEntry(e *audit.Entry) *audit.Entry {
	c := *e
	return &c
}
