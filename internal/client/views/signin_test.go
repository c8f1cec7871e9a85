package views

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/contactdesk/internal/client/router"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestSignIn(t *testing.T) {
	nav := &fakeNav{}
	auth := &fakeAuth{}
	v := NewSignInView(auth, nav, logging.Nop())
	v.Mount(context.Background())

	require.NoError(t, v.Submit("ann@x.io", []byte("pw")))
	require.True(t, v.State().SignedIn)
	require.Equal(t, "ann@x.io", auth.LastUser)
	require.Equal(t, []string{router.DashboardPath}, nav.Targets())
}

func TestSignIn_Failures(t *testing.T) {
	nav := &fakeNav{}
	v := NewSignInView(&fakeAuth{LoginErr: services.ErrSignInFailed}, nav, logging.Nop())
	v.Mount(context.Background())

	require.NoError(t, v.Submit("ann@x.io", []byte("pw")))
	require.Equal(t, MsgSignInFailed, v.State().Message)
	require.Empty(t, nav.Targets())

	v = NewSignInView(&fakeAuth{LoginErr: &services.ValidationError{Problems: []string{"email is required"}}}, nav, logging.Nop())
	v.Mount(context.Background())
	require.NoError(t, v.Submit("", []byte("pw")))
	require.Equal(t, "Email is required.", v.State().Message)
}
