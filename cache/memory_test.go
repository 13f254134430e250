package cache

import (
	"context"
	"testing"
	"time"

	"github.com/xraph/veto"
	"github.com/xraph/veto/vetotest"
)

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	actor := vetotest.FromDetails("alice", map[string]string{"role": "admin"})

	if _, ok := m.Get(ctx, "snap1", actor, "read", "doc1"); ok {
		t.Fatal("expected miss on empty cache")
	}

	m.Set(ctx, "snap1", actor, "read", "doc1", true)
	allowed, ok := m.Get(ctx, "snap1", actor, "read", "doc1")
	if !ok {
		t.Fatal("expected hit")
	}
	if !allowed {
		t.Fatal("expected cached allow")
	}

	// A different snapshot must not see the entry.
	if _, ok := m.Get(ctx, "snap2", actor, "read", "doc1"); ok {
		t.Fatal("expected miss under a different snapshot")
	}
}

func TestAttributeChangeMisses(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	admin := vetotest.FromDetails("alice", map[string]string{"role": "admin"})
	viewer := vetotest.FromDetails("alice", map[string]string{"role": "viewer"})

	m.Set(ctx, "snap1", admin, "delete", "doc1", true)
	if _, ok := m.Get(ctx, "snap1", viewer, "delete", "doc1"); ok {
		t.Fatal("same name with different attributes must miss")
	}
}

func TestTTLExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(WithTTL(10 * time.Millisecond))
	actor := vetotest.FromDetails("bob", nil)

	m.Set(ctx, "snap1", actor, "read", "doc1", true)
	time.Sleep(25 * time.Millisecond)

	if _, ok := m.Get(ctx, "snap1", actor, "read", "doc1"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestInvalidateActor(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	alice := vetotest.FromDetails("alice", nil)
	bob := vetotest.FromDetails("bob", nil)

	m.Set(ctx, "snap1", alice, "read", "doc1", true)
	m.Set(ctx, "snap1", alice, "write", "doc1", false)
	m.Set(ctx, "snap1", bob, "read", "doc1", true)

	m.InvalidateActor(ctx, "snap1", veto.Name("alice"))

	if _, ok := m.Get(ctx, "snap1", alice, "read", "doc1"); ok {
		t.Fatal("expected alice's entries to be invalidated")
	}
	if _, ok := m.Get(ctx, "snap1", bob, "read", "doc1"); !ok {
		t.Fatal("expected bob's entry to survive")
	}
}

func TestMaxSizeEviction(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(WithMaxSize(2))
	actor := vetotest.FromDetails("alice", nil)

	m.Set(ctx, "snap1", actor, "a1", "r1", true)
	m.Set(ctx, "snap1", actor, "a2", "r2", true)
	m.Set(ctx, "snap1", actor, "a3", "r3", true)

	if len(m.entries) > 2 {
		t.Fatalf("expected at most 2 entries, got %d", len(m.entries))
	}
}
