package veto

import "time"

// Credentials is an opaque refreshed-credential payload. When credential
// resolution mints a fresh token for the caller (for example after a refresh
// flow), the payload rides along on the template and the bound actor so the
// transport layer can hand it back to the client. The core never inspects
// it, and it is excluded from actor equality.
type Credentials struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}
