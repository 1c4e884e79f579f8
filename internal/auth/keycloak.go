package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

const jwksProbeTimeout = 5 * time.Second

type jwksAuthenticator struct {
	keys   keyfunc.Keyfunc
	parser *jwt.Parser
}

// NewKeycloakAuthenticator verifies tokens against the realm's JWKS. It
// returns a nil Authenticator when auth is disabled, and fails fast when the
// JWKS endpoint cannot be reached. Key refresh stops when ctx is done.
func NewKeycloakAuthenticator(ctx context.Context, cfg Config) (Authenticator, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("auth enabled but issuer is empty")
	}

	jwksURL := cfg.JWKSURL
	if jwksURL == "" {
		jwksURL = cfg.Issuer + "/protocol/openid-connect/certs"
	}
	if err := probeJWKS(ctx, jwksURL); err != nil {
		return nil, fmt.Errorf("fetch jwks from %s: %w", jwksURL, err)
	}

	kf, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("fetch jwks from %s: %w", jwksURL, err)
	}
	return newJWKSAuthenticator(kf, cfg.Issuer, cfg.Audience), nil
}

func newJWKSAuthenticator(keys keyfunc.Keyfunc, issuer, audience string) *jwksAuthenticator {
	opts := []jwt.ParserOption{jwt.WithLeeway(5 * time.Second), jwt.WithExpirationRequired()}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &jwksAuthenticator{keys: keys, parser: jwt.NewParser(opts...)}
}

// probeJWKS fails unless the JWKS endpoint answers 200.
func probeJWKS(ctx context.Context, jwksURL string) error {
	ctx, cancel := context.WithTimeout(ctx, jwksProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jwksURL, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}
	return nil
}

func (a *jwksAuthenticator) Authenticate(ctx context.Context, bearerToken string) (Principal, error) {
	claims := jwt.MapClaims{}
	if _, err := a.parser.ParseWithClaims(bearerToken, claims, a.keys.KeyfuncCtx(ctx)); err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	p := Principal{Claims: claims}
	p.Issuer, _ = claims.GetIssuer()
	p.Subject, _ = claims.GetSubject()
	p.Audience, _ = claims.GetAudience()
	return p, nil
}
