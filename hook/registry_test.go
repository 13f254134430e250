package hook

import (
	"context"
	"errors"
	"testing"
)

type recordingHook struct {
	name    string
	before  int
	after   int
	allowed []bool
	err     error
}

func (h *recordingHook) Name() string { return h.name }

func (h *recordingHook) OnBeforeCheck(_ context.Context, _, _, _ string) error {
	h.before++
	return h.err
}

func (h *recordingHook) OnAfterCheck(_ context.Context, _, _, _ string, allowed bool, _ error) error {
	h.after++
	h.allowed = append(h.allowed, allowed)
	return h.err
}

// beforeOnlyHook opts in to BeforeCheck only.
type beforeOnlyHook struct{ calls int }

func (h *beforeOnlyHook) Name() string { return "before-only" }

func (h *beforeOnlyHook) OnBeforeCheck(_ context.Context, _, _, _ string) error {
	h.calls++
	return nil
}

func TestRegistryDispatch(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)

	h := &recordingHook{name: "recorder"}
	r.Register(h)

	r.EmitBeforeCheck(ctx, "alice", "read", "doc1")
	r.EmitAfterCheck(ctx, "alice", "read", "doc1", true, nil)
	r.EmitAfterCheck(ctx, "alice", "delete", "doc1", false, nil)

	if h.before != 1 {
		t.Fatalf("expected 1 before event, got %d", h.before)
	}
	if h.after != 2 {
		t.Fatalf("expected 2 after events, got %d", h.after)
	}
	if !h.allowed[0] || h.allowed[1] {
		t.Fatalf("expected [true false], got %v", h.allowed)
	}
}

func TestRegistryPartialHook(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)

	h := &beforeOnlyHook{}
	r.Register(h)

	r.EmitBeforeCheck(ctx, "alice", "read", "doc1")
	r.EmitAfterCheck(ctx, "alice", "read", "doc1", true, nil)

	if h.calls != 1 {
		t.Fatalf("expected 1 before event, got %d", h.calls)
	}
	if len(r.Hooks()) != 1 {
		t.Fatalf("expected 1 registered hook, got %d", len(r.Hooks()))
	}
}

func TestRegistryHookErrorDoesNotPropagate(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)

	failing := &recordingHook{name: "failing", err: errors.New("boom")}
	tail := &recordingHook{name: "tail"}
	r.Register(failing)
	r.Register(tail)

	r.EmitBeforeCheck(ctx, "alice", "read", "doc1")

	// The failing hook must not stop later hooks.
	if tail.before != 1 {
		t.Fatalf("expected tail hook to run, got %d calls", tail.before)
	}
}
