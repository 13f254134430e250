// Package vetotest provides test-support constructors for policy-less
// actors. Actors built here have no bound policy snapshot and deny every
// authorization check; never route them through a production request path
// that assumes a snapshot exists.
package vetotest

import "github.com/xraph/veto"

// FromTemplate builds an unbound Actor from a template. The template's
// credential payload and deferred error are dropped.
func FromTemplate(tmpl veto.Template) veto.Actor {
	return veto.NewUnboundActor(tmpl)
}

// FromDetails builds an unbound, non-user Actor from a raw name and
// explicit attribute mapping.
func FromDetails(name string, attributes map[string]string) veto.Actor {
	return veto.NewUnboundActorFromDetails(name, attributes)
}
