package veto

import (
	"fmt"
	"maps"
)

// attrKind discriminates the Attributes variants.
type attrKind uint8

const (
	attrNone attrKind = iota
	attrRoleOnly
	attrExplicit
)

// Attributes is an actor's attribute bag: a closed variant holding either no
// attributes, a single implicit "role" attribute, or an explicit
// string-to-string mapping supplied at construction. The zero value holds no
// attributes. Attributes values are immutable; explicit mappings are copied
// on the way in and on the way out.
type Attributes struct {
	kind   attrKind
	role   string
	values map[string]string
}

// NoAttributes returns the empty attribute bag.
func NoAttributes() Attributes { return Attributes{} }

// RoleAttributes returns a bag holding the single implicit "role" attribute.
func RoleAttributes(role string) Attributes {
	return Attributes{kind: attrRoleOnly, role: role}
}

// ExplicitAttributes returns a bag holding a copy of the given mapping.
func ExplicitAttributes(values map[string]string) Attributes {
	return Attributes{kind: attrExplicit, values: maps.Clone(values)}
}

// Map canonicalizes the bag to a uniform string-to-string mapping. It always
// succeeds: the empty bag yields an empty map, a role-only bag yields
// {"role": role}, and an explicit bag yields a copy of its mapping.
func (a Attributes) Map() map[string]string {
	switch a.kind {
	case attrExplicit:
		m := maps.Clone(a.values)
		if m == nil {
			m = map[string]string{}
		}
		return m
	case attrRoleOnly:
		return map[string]string{"role": a.role}
	default:
		return map[string]string{}
	}
}

// Get returns the value of the named attribute without canonicalizing the
// whole bag. A role-only bag answers only for "role".
func (a Attributes) Get(name string) (string, bool) {
	switch a.kind {
	case attrExplicit:
		v, ok := a.values[name]
		return v, ok
	case attrRoleOnly:
		if name == "role" {
			return a.role, true
		}
		return "", false
	default:
		return "", false
	}
}

// IsEmpty reports whether the bag holds no attributes.
func (a Attributes) IsEmpty() bool {
	switch a.kind {
	case attrExplicit:
		return len(a.values) == 0
	case attrRoleOnly:
		return false
	default:
		return true
	}
}

// Len returns the number of attributes in the bag.
func (a Attributes) Len() int {
	switch a.kind {
	case attrExplicit:
		return len(a.values)
	case attrRoleOnly:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two bags are the same variant with the same
// contents. A role-only bag is not equal to an explicit bag that happens to
// contain an identical "role" entry.
func (a Attributes) Equal(b Attributes) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case attrExplicit:
		return maps.Equal(a.values, b.values)
	case attrRoleOnly:
		return a.role == b.role
	default:
		return true
	}
}

// String renders the canonical mapping. Diagnostic use only.
func (a Attributes) String() string {
	return fmt.Sprintf("%v", a.Map())
}
