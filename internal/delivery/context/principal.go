package context

import (
	"context"

	"atelier/internal/domain/entity"
)

// KeyPrincipal is the key for storing the authenticated principal in context.
const KeyPrincipal ContextKey = "principal"

// GetPrincipal extracts the authenticated principal from context.Context.
// The second return value reports whether a principal was attached.
func GetPrincipal(ctx context.Context) (*entity.Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(*entity.Principal)

	return principal, ok
}

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}
