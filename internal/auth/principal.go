package auth

import "context"

// Authenticator turns a bearer token into the caller's identity.
type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}

// AuthenticatorFunc adapts a plain function to an Authenticator.
type AuthenticatorFunc func(ctx context.Context, bearerToken string) (Principal, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, bearerToken string) (Principal, error) {
	return f(ctx, bearerToken)
}

type principalKey struct{}

// WithPrincipal stores the authenticated caller on ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Subject returns the token subject for log lines, or "anonymous".
func Subject(ctx context.Context) string {
	if p, ok := PrincipalFromContext(ctx); ok && p.Subject != "" {
		return p.Subject
	}
	return "anonymous"
}
