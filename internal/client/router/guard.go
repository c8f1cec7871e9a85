package router

import (
	"context"

	"github.com/dmitrijs2005/contactdesk/internal/client/session"
)

// CredentialReader is the part of session.Store the guard needs.
type CredentialReader interface {
	Current(ctx context.Context) (session.Credential, bool, error)
}

type Decision struct {
	Allowed  bool
	Redirect string
}

// Guard allows target when a non-empty access credential is stored,
// whatever its expiry or signature. Otherwise it redirects to sign-in; a
// store that cannot be read counts as signed out.
func Guard(ctx context.Context, store CredentialReader, target string) (Decision, error) {
	_, ok, err := store.Current(ctx)
	if err != nil || !ok {
		return Decision{Redirect: SignInPath}, err
	}
	return Decision{Allowed: true, Redirect: target}, nil
}
