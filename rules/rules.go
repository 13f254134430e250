// Package rules provides a small builtin rule-set evaluator for veto. It
// exists so the library is usable without an external rule engine: a Set is
// an ordered list of allow/deny rules matched by glob patterns on actor
// name, role, action, and resource. An explicit deny always wins; with no
// matching allow the ruling is deny.
//
// A Set is immutable after construction and pure with respect to its
// inputs, satisfying the veto.Evaluator contract.
package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/xraph/veto"
)

// Effect is the rule outcome — allow or deny.
type Effect string

const (
	// EffectAllow permits matching requests.
	EffectAllow Effect = "allow"

	// EffectDeny blocks matching requests.
	EffectDeny Effect = "deny"
)

// ErrInvalidRule is returned when a rule is malformed.
var ErrInvalidRule = errors.New("rules: invalid rule")

// Rule matches a class of authorization requests. Every pattern list is a
// set of globs (trailing "*" wildcard, "*" alone matches anything); an
// empty list matches everything for that dimension. Roles match against the
// actor's "role" attribute; an actor without a role attribute never matches
// a rule that names roles.
type Rule struct {
	Name      string   `json:"name"`
	Effect    Effect   `json:"effect"`
	Actors    []string `json:"actors,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	Actions   []string `json:"actions,omitempty"`
	Resources []string `json:"resources,omitempty"`
}

// Set is an immutable, evaluable collection of rules.
type Set struct {
	rules []Rule
}

// Compile-time interface check.
var _ veto.Evaluator = (*Set)(nil)

// NewSet validates the given rules and returns a Set.
func NewSet(rs ...Rule) (*Set, error) {
	for i, r := range rs {
		if r.Effect != EffectAllow && r.Effect != EffectDeny {
			return nil, fmt.Errorf("%w: rule %d (%q): unknown effect %q", ErrInvalidRule, i, r.Name, r.Effect)
		}
	}
	set := &Set{rules: make([]Rule, len(rs))}
	copy(set.rules, rs)
	return set, nil
}

// Evaluate rules on the request. An explicit deny wins over any allow;
// with no matching rule the ruling is deny.
func (s *Set) Evaluate(_ context.Context, actor veto.Actor, action veto.Action, resource veto.Resource) (bool, error) {
	var allowed bool
	for _, r := range s.rules {
		if !r.matches(actor, action, resource) {
			continue
		}
		if r.Effect == EffectDeny {
			return false, nil
		}
		allowed = true
	}
	return allowed, nil
}

func (r Rule) matches(actor veto.Actor, action veto.Action, resource veto.Resource) bool {
	if !matchAny(r.Actors, actor.Name()) {
		return false
	}
	if len(r.Roles) > 0 {
		role, ok := actor.Attribute("role")
		if !ok || !matchAny(r.Roles, role) {
			return false
		}
	}
	if !matchAny(r.Actions, action.String()) {
		return false
	}
	return matchAny(r.Resources, resource.String())
}

// matchAny reports whether any pattern matches the value. An empty pattern
// list matches everything.
func matchAny(patterns []string, value string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if matchGlob(p, value) {
			return true
		}
	}
	return false
}

// matchGlob checks if a pattern matches a value with simple glob support:
// exact match, "*", or a trailing "*" prefix match (e.g. "repository:*"
// matches "repository:alpha").
func matchGlob(pattern, value string) bool {
	if pattern == "*" || pattern == value {
		return true
	}
	if n := len(pattern); n > 0 && pattern[n-1] == '*' {
		prefix := pattern[:n-1]
		return len(value) >= len(prefix) && value[:len(prefix)] == prefix
	}
	return false
}
