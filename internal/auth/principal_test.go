package auth

import (
	"context"
	"testing"
)

func TestSubjectFallsBackToAnonymous(t *testing.T) {
	if got := Subject(context.Background()); got != "anonymous" {
		t.Fatalf("expected anonymous, got %q", got)
	}

	ctx := WithPrincipal(context.Background(), Principal{Subject: "user-1"})
	if got := Subject(ctx); got != "user-1" {
		t.Fatalf("expected user-1, got %q", got)
	}
}

func TestAuthenticatorFuncDelegates(t *testing.T) {
	var a Authenticator = AuthenticatorFunc(func(_ context.Context, token string) (Principal, error) {
		if token != "ok" {
			return Principal{}, ErrInvalidToken
		}
		return Principal{Subject: "svc"}, nil
	})

	if _, err := a.Authenticate(context.Background(), "bad"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	p, err := a.Authenticate(context.Background(), "ok")
	if err != nil || p.Subject != "svc" {
		t.Fatalf("unexpected result %+v, %v", p, err)
	}
}
