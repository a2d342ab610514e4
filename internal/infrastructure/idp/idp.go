// Package idp abstracts the external identity provider. The application never
// manages credentials itself; it only validates bearer tokens issued by the
// provider and extracts the identity's email, which is the join key to the
// expositor profile.
package idp

import "context"

// Identity is the resolved caller identity attached to each request.
type Identity struct {
	Sub   string
	Email string
}

// TokenVerifier validates a raw bearer token (without the "Bearer " scheme)
// and returns the identity it belongs to. Any failure means the request is
// unauthorized; implementations do not distinguish expired from malformed.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
