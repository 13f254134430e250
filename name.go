package veto

// Name is an actor's immutable identity token. Equality and hashing are by
// underlying text; the zero value is the empty name.
type Name string

// String returns the underlying text.
func (n Name) String() string { return string(n) }

// anonymousName is the well-known identity of the anonymous actor.
const anonymousName Name = "anonymous"
