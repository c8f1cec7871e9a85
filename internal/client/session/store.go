// Package session keeps the client's credential pair. The store is injected
// into everything that reads or writes it; nothing reaches it ambiently.
package session

import (
	"context"
	"errors"
)

var ErrEmptyCredential = errors.New("credential has an empty access token")

// Credential is the pair issued by registration or sign-in. Refresh is
// empty when the access value came from email verification.
type Credential struct {
	Access  string
	Refresh string
}

type Store interface {
	// Current reports ok=false when no non-empty access value is stored.
	Current(ctx context.Context) (cred Credential, ok bool, err error)
	AccessToken(ctx context.Context) (token string, ok bool, err error)
	// Set stores both values together; readers never see one without the other.
	Set(ctx context.Context, cred Credential) error
	// SetAccess records a verification token under the legacy key. It
	// becomes the access value, with no refresh value, only when no access
	// value is stored; an existing pair is left as it is.
	SetAccess(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
