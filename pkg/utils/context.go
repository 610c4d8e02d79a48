package utils

import (
	"context"
)

type contextKey string

const (
	ClaimsKey contextKey = "claims"
)

// SetClaimsContext stores verified token claims on the request context
func SetClaimsContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

// GetClaimsFromContext returns the claims placed by the auth middleware
func GetClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claimsVal := ctx.Value(ClaimsKey)
	if claimsVal == nil {
		return nil, false
	}

	claims, ok := claimsVal.(*Claims)
	if !ok {
		return nil, false
	}

	return claims, true
}
