package auth

import (
	"context"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/types"
)

// Claims is the authenticated principal decoded from a bearer token.
type Claims struct {
	UserID types.UserID
	Email  string
	Role   types.Role
}

type ctxClaimsKey struct{}

// ContextWithClaims attaches the authenticated principal to the context.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxClaimsKey{}, claims)
}

// ClaimsFromContext returns the authenticated principal, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ctxClaimsKey{}).(*Claims)
	return claims, ok
}
