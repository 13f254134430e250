package rules

import (
	"context"
	"testing"

	"github.com/xraph/veto"
	"github.com/xraph/veto/vetotest"
)

func mustSet(t *testing.T, rs ...Rule) *Set {
	t.Helper()
	s, err := NewSet(rs...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRoleAllow(t *testing.T) {
	ctx := context.Background()
	s := mustSet(t, Rule{
		Name:    "admins-do-anything",
		Effect:  EffectAllow,
		Roles:   []string{"admin"},
		Actions: []string{"*"},
	})

	admin := vetotest.FromTemplate(veto.System("ca-server", "admin"))
	allowed, err := s.Evaluate(ctx, admin, "delete", "repository:alpha")
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Fatal("expected allow for admin role")
	}

	viewer := vetotest.FromTemplate(veto.System("monitor", "viewer"))
	allowed, err = s.Evaluate(ctx, viewer, "delete", "repository:alpha")
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Fatal("expected deny for viewer role")
	}
}

func TestExplicitDenyWins(t *testing.T) {
	ctx := context.Background()
	s := mustSet(t,
		Rule{Name: "allow-all", Effect: EffectAllow},
		Rule{Name: "no-deletes", Effect: EffectDeny, Actions: []string{"delete"}},
	)

	actor := vetotest.FromDetails("alice", map[string]string{"role": "admin"})

	allowed, err := s.Evaluate(ctx, actor, "read", "repository:alpha")
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Fatal("expected allow for read")
	}

	allowed, err = s.Evaluate(ctx, actor, "delete", "repository:alpha")
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Fatal("expected the deny rule to win")
	}
}

func TestGlobMatching(t *testing.T) {
	ctx := context.Background()
	s := mustSet(t, Rule{
		Name:      "repo-readers",
		Effect:    EffectAllow,
		Actions:   []string{"read", "list"},
		Resources: []string{"repository:*"},
	})

	actor := vetotest.FromDetails("bob", nil)

	tests := []struct {
		action   veto.Action
		resource veto.Resource
		want     bool
	}{
		{"read", "repository:alpha", true},
		{"list", "repository:beta", true},
		{"read", "keystore:alpha", false},
		{"write", "repository:alpha", false},
	}
	for _, tt := range tests {
		got, err := s.Evaluate(ctx, actor, tt.action, tt.resource)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Evaluate(%s, %s) = %t, want %t", tt.action, tt.resource, got, tt.want)
		}
	}
}

func TestDefaultDeny(t *testing.T) {
	ctx := context.Background()
	s := mustSet(t)

	actor := vetotest.FromTemplate(veto.Anonymous())
	allowed, err := s.Evaluate(ctx, actor, "read", "repository:alpha")
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Fatal("empty rule set must deny")
	}
}

func TestRoleRuleSkipsRolelessActor(t *testing.T) {
	ctx := context.Background()
	s := mustSet(t, Rule{Name: "admins", Effect: EffectAllow, Roles: []string{"admin"}})

	anon := vetotest.FromTemplate(veto.Anonymous())
	allowed, err := s.Evaluate(ctx, anon, "read", "x")
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Fatal("actor without a role must not match a role rule")
	}
}

func TestNewSetRejectsUnknownEffect(t *testing.T) {
	if _, err := NewSet(Rule{Name: "broken", Effect: "maybe"}); err == nil {
		t.Fatal("expected error for unknown effect")
	}
}

func TestActorNamePatterns(t *testing.T) {
	ctx := context.Background()
	s := mustSet(t, Rule{
		Name:   "service-accounts",
		Effect: EffectAllow,
		Actors: []string{"svc-*"},
	})

	svc := vetotest.FromDetails("svc-backup", nil)
	allowed, err := s.Evaluate(ctx, svc, "read", "x")
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Fatal("expected allow for svc-* actor")
	}

	user := vetotest.FromDetails("alice", nil)
	allowed, err = s.Evaluate(ctx, user, "read", "x")
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Fatal("expected deny for non-matching actor")
	}
}
