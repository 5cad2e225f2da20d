package security

import (
	"context"

	"catalog-be/internal/entity"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserId   int64
	Username string
	Roles    []entity.Role
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns nil for anonymous callers.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}

// RolesFromContext returns the caller's roles, empty when anonymous.
func RolesFromContext(ctx context.Context) []entity.Role {
	if p := PrincipalFromContext(ctx); p != nil {
		return p.Roles
	}
	return nil
}
