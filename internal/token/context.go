package token

import "context"

type contextKey struct{}

// NewContext attaches a verified identity to the request context.
func NewContext(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// FromContext returns the caller's identity, or ok=false for an anonymous
// request. Absence of an identity is a normal state, not an error.
func FromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(*Identity)
	return identity, ok && identity != nil
}
