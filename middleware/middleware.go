// Package middleware provides HTTP authorization middleware for veto.
package middleware

import (
	"encoding/json"
	"errors"

	"github.com/xraph/forge"

	"github.com/xraph/veto"
)

// Check pairs an action with the resource it applies to. Used by
// RequireAny and RequireAll to express composite guards.
type Check struct {
	Action   veto.Action
	Resource veto.Resource
}

// Require enforces authorization. It resolves an actor from the request
// context (Forge user > anonymous), binds it to the policy, and checks
// whether the actor may perform the given action on the resource type.
// When the route carries an "id" parameter the resource is qualified
// with it ("certificate:42").
func Require(pol *veto.Policy, action veto.Action, resourceType string) forge.Middleware {
	return func(next forge.Handler) forge.Handler {
		return func(ctx forge.Context) error {
			actor := pol.Bind(resolveTemplate(ctx))
			resource := veto.Resource(resourceType)
			if resourceID := ctx.Param("id"); resourceID != "" {
				resource = veto.Resource(resourceType + ":" + resourceID)
			}
			allowed, err := actor.IsAllowed(ctx.Context(), action, resource)
			if err != nil {
				return credentialsResponse(ctx, err)
			}
			if !allowed {
				return denyResponse(ctx)
			}
			return next(ctx)
		}
	}
}

// RequireAny allows the request if ANY of the checks pass.
func RequireAny(pol *veto.Policy, checks ...Check) forge.Middleware {
	return func(next forge.Handler) forge.Handler {
		return func(ctx forge.Context) error {
			actor := pol.Bind(resolveTemplate(ctx))
			for _, c := range checks {
				allowed, err := actor.IsAllowed(ctx.Context(), c.Action, c.Resource)
				if err == nil && allowed {
					return next(ctx)
				}
			}
			return denyResponse(ctx)
		}
	}
}

// RequireAll allows the request only if ALL checks pass.
func RequireAll(pol *veto.Policy, checks ...Check) forge.Middleware {
	return func(next forge.Handler) forge.Handler {
		return func(ctx forge.Context) error {
			actor := pol.Bind(resolveTemplate(ctx))
			for _, c := range checks {
				allowed, err := actor.IsAllowed(ctx.Context(), c.Action, c.Resource)
				if err != nil {
					return credentialsResponse(ctx, err)
				}
				if !allowed {
					return denyResponse(ctx)
				}
			}
			return next(ctx)
		}
	}
}

// resolveTemplate extracts the actor template from context.
// Priority: Forge user ID (from Authsome) → anonymous.
func resolveTemplate(ctx forge.Context) veto.Template {
	if userID := forge.UserIDFromContext(ctx.Context()); userID != "" {
		return veto.User(userID, nil, nil)
	}
	return veto.Anonymous()
}

// credentialsResponse maps credential failures to 401; anything else
// is treated as a denial.
func credentialsResponse(ctx forge.Context, err error) error {
	if !errors.Is(err, veto.ErrInvalidCredentials) {
		return denyResponse(ctx)
	}
	ctx.SetHeader("Content-Type", "application/json")
	ctx.Response().WriteHeader(401)
	return json.NewEncoder(ctx.Response()).Encode(map[string]string{"error": "invalid credentials"})
}

func denyResponse(ctx forge.Context) error {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.Response().WriteHeader(403)
	return json.NewEncoder(ctx.Response()).Encode(map[string]string{"error": "access denied"})
}
