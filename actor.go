package veto

import "fmt"

// Actor is the finalized, immutable representation of a request's identity,
// bound to one policy snapshot for the duration of one authorization
// decision. Actors are plain values, safe to copy and share across
// goroutines without synchronization; rebinding a template to a newer
// snapshot produces a new Actor.
type Actor struct {
	name        Name
	isUser      bool
	attributes  Attributes
	credentials *Credentials
	deferred    error
	policy      *Policy
}

// Equal compares identity only: name, user flag, and attribute bag. The
// refreshed-credential payload, deferred error, and bound snapshot are
// excluded so identity stays stable across credential refresh and across
// whichever snapshot happens to be bound.
func (a Actor) Equal(b Actor) bool {
	return a.name == b.name && a.isUser == b.isUser && a.attributes.Equal(b.attributes)
}

// EqualTemplate reports whether the actor was produced from a template with
// the same identity. Same exclusions as Equal.
func (a Actor) EqualTemplate(t Template) bool {
	return a.name == t.name && a.isUser == t.isUser && a.attributes.Equal(t.attributes)
}

// IsUser reports whether the actor is an authenticated user.
func (a Actor) IsUser() bool { return a.isUser }

// IsAnonymous reports whether the actor carries the canonical anonymous
// identity.
func (a Actor) IsAnonymous() bool { return a.EqualTemplate(Anonymous()) }

// Name returns the actor's identity text.
func (a Actor) Name() string { return a.name.String() }

// Attributes returns the canonical attribute mapping.
func (a Actor) Attributes() map[string]string { return a.attributes.Map() }

// Attribute returns the value of the named attribute.
func (a Actor) Attribute(name string) (string, bool) { return a.attributes.Get(name) }

// Credentials returns the refreshed-credential payload carried over from
// credential resolution, or nil.
func (a Actor) Credentials() *Credentials { return a.credentials }

// String renders the actor's name only — safe for audit lines shown to end
// users.
func (a Actor) String() string { return a.name.String() }

// GoString renders name, user flag, and the canonical attribute mapping.
// Diagnostic use only: attribute values are not redacted.
func (a Actor) GoString() string {
	return fmt.Sprintf("Actor(name=%q, is_user=%t, attr=%v)", a.name.String(), a.isUser, a.attributes.Map())
}

// NewUnboundActor builds an Actor with no bound policy snapshot. It exists
// for test fixtures — use the vetotest package — and actors built this way
// deny every authorization check. The credential payload and any deferred
// error on the template are dropped. Production actors are built with
// Policy.Bind.
func NewUnboundActor(tmpl Template) Actor {
	return Actor{
		name:       tmpl.name,
		isUser:     tmpl.isUser,
		attributes: tmpl.attributes,
	}
}

// NewUnboundActorFromDetails builds a policy-less, non-user Actor from a raw
// name and explicit attribute mapping. Test support only; see
// NewUnboundActor.
func NewUnboundActorFromDetails(name string, attributes map[string]string) Actor {
	return Actor{
		name:       Name(name),
		attributes: ExplicitAttributes(attributes),
	}
}
