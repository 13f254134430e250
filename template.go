package veto

// Template is the construction-time descriptor for an Actor. A template is
// built once per logical identity — at startup for the anonymous and system
// identities, per request for authenticated users — and finalized by binding
// it to a Policy snapshot. Templates are values; deriving a variant returns
// a copy and never mutates the original.
type Template struct {
	name        Name
	isUser      bool
	attributes  Attributes
	credentials *Credentials
	deferred    error
}

// Anonymous returns the canonical anonymous template: not a user, no
// attributes, no credentials. Every call yields an equal value.
func Anonymous() Template {
	return Template{name: anonymousName}
}

// System returns a template for a built-in service identity carrying a
// single implicit role attribute.
func System(name, role string) Template {
	return Template{name: Name(name), attributes: RoleAttributes(role)}
}

// User returns a template for an authenticated user with an explicit
// attribute mapping (copied) and an optional refreshed-credential payload.
func User(name string, attributes map[string]string, creds *Credentials) Template {
	return Template{
		name:        Name(name),
		isUser:      true,
		attributes:  ExplicitAttributes(attributes),
		credentials: creds,
	}
}

// WithDeferredError returns a copy of the template carrying a credential
// resolution failure. The failure must not abort request construction; it is
// surfaced only when an authorization check is attempted, as
// *CredentialsError. The error is carried as a structured value so
// diagnostic detail is not lost to a flattened string.
func (t Template) WithDeferredError(err error) Template {
	t.deferred = err
	return t
}

// Name returns the template's identity token.
func (t Template) Name() Name { return t.name }

// IsUser reports whether the template describes an authenticated user.
func (t Template) IsUser() bool { return t.isUser }

// Attributes returns the template's attribute bag.
func (t Template) Attributes() Attributes { return t.attributes }

// DeferredError returns the credential resolution failure captured at
// construction time, or nil.
func (t Template) DeferredError() error { return t.deferred }

// Equal compares identity only: name, user flag, and attribute bag. The
// credential payload and deferred error are excluded.
func (t Template) Equal(o Template) bool {
	return t.name == o.name && t.isUser == o.isUser && t.attributes.Equal(o.attributes)
}
