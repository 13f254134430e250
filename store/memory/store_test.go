package memory

import (
	"context"
	"testing"
	"time"

	"github.com/xraph/veto/audit"
	"github.com/xraph/veto/id"
	"github.com/xraph/veto/store"
)

// Compile-time check that *Store implements store.Store.
var _ store.Store = (*Store)(nil)

func newEntry(actor, action, decision string, at time.Time) *audit.Entry {
	return &audit.Entry{
		ID:        id.NewAuditID(),
		Actor:     actor,
		Action:    action,
		Resource:  "repository:alpha",
		Decision:  decision,
		Snapshot:  "snap_test",
		CreatedAt: at,
	}
}

func TestRecordAndGet(t *testing.T) {
	ctx := context.Background()
	s := New()

	e := newEntry("alice", "read", "allow", time.Now().UTC())
	if err := s.RecordDecision(ctx, e); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetDecision(ctx, e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Actor != "alice" || got.Decision != "allow" {
		t.Fatalf("unexpected entry: %+v", got)
	}

	if _, err := s.GetDecision(ctx, id.NewAuditID()); err == nil {
		t.Fatal("expected error for unknown ID")
	}
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Now().UTC()

	_ = s.RecordDecision(ctx, newEntry("alice", "read", "allow", now.Add(-2*time.Hour)))
	_ = s.RecordDecision(ctx, newEntry("alice", "delete", "deny", now.Add(-time.Hour)))
	_ = s.RecordDecision(ctx, newEntry("bob", "read", "allow", now))

	byActor, err := s.ListDecisions(ctx, &audit.QueryFilter{Actor: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	if len(byActor) != 2 {
		t.Fatalf("expected 2 entries for alice, got %d", len(byActor))
	}
	// Newest first.
	if byActor[0].Action != "delete" {
		t.Fatalf("expected newest entry first, got %s", byActor[0].Action)
	}

	denied, err := s.ListDecisions(ctx, &audit.QueryFilter{Decision: "deny"})
	if err != nil {
		t.Fatal(err)
	}
	if len(denied) != 1 || denied[0].Actor != "alice" {
		t.Fatalf("unexpected deny list: %+v", denied)
	}

	after := now.Add(-30 * time.Minute)
	recent, err := s.ListDecisions(ctx, &audit.QueryFilter{After: &after})
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].Actor != "bob" {
		t.Fatalf("unexpected recent list: %+v", recent)
	}
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Now().UTC()

	for i := range 5 {
		_ = s.RecordDecision(ctx, newEntry("alice", "read", "allow", now.Add(time.Duration(i)*time.Second)))
	}

	page, err := s.ListDecisions(ctx, &audit.QueryFilter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(page))
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Now().UTC()

	_ = s.RecordDecision(ctx, newEntry("alice", "read", "allow", now))
	_ = s.RecordDecision(ctx, newEntry("bob", "read", "deny", now))

	count, err := s.CountDecisions(ctx, &audit.QueryFilter{Decision: "deny"})
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected 1, got %d", count)
	}
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Now().UTC()

	_ = s.RecordDecision(ctx, newEntry("alice", "read", "allow", now.Add(-48*time.Hour)))
	_ = s.RecordDecision(ctx, newEntry("bob", "read", "allow", now))

	purged, err := s.PurgeDecisions(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if purged != 1 {
		t.Fatalf("expected 1 purged, got %d", purged)
	}

	count, err := s.CountDecisions(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected 1 remaining, got %d", count)
	}
}
