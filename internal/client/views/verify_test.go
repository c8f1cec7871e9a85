package views

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/contactdesk/internal/client/router"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestVerifyEmail_Success(t *testing.T) {
	auth := &fakeAuth{}
	nav := &fakeNav{}
	v := NewVerifyEmailView(auth, nav, logging.Nop())

	v.Activate(context.Background(), "/authentication/verify-email/abc123")

	st := v.State()
	require.Equal(t, Verified, st.Status)
	require.Equal(t, "abc123", st.Token)
	require.Equal(t, "abc123", auth.LastToken)
	require.Equal(t, []string{router.DashboardPath}, nav.Targets())
}

func TestVerifyEmail_EscapedTokenSurvivesRouting(t *testing.T) {
	auth := &fakeAuth{}
	v := NewVerifyEmailView(auth, &fakeNav{}, logging.Nop())

	v.Activate(context.Background(), router.VerifyEmailPath("a/b"))

	require.Equal(t, "a/b", v.State().Token)
	require.Equal(t, "a/b", auth.LastToken)
}

func TestVerifyEmail_Failure(t *testing.T) {
	auth := &fakeAuth{VerifyErr: services.ErrInvalidOrExpiredToken}
	nav := &fakeNav{}
	v := NewVerifyEmailView(auth, nav, logging.Nop())

	v.Activate(context.Background(), "/authentication/verify-email/stale")

	st := v.State()
	require.Equal(t, VerificationFailed, st.Status)
	require.Equal(t, MsgInvalidToken, st.Message)
	require.Empty(t, nav.Targets(), "no redirect on failure")
	require.Equal(t, 1, auth.verifies, "no retry")
}

func TestVerifyEmail_NoTokenStaysVerifying(t *testing.T) {
	auth := &fakeAuth{}
	v := NewVerifyEmailView(auth, &fakeNav{}, logging.Nop())

	v.Activate(context.Background(), "/authentication/verify-email/")

	require.Equal(t, Verifying, v.State().Status)
	require.Equal(t, 0, auth.verifies)
}

func TestVerifyEmail_ReactivationRerunsExchange(t *testing.T) {
	auth := &fakeAuth{}
	v := NewVerifyEmailView(auth, &fakeNav{}, logging.Nop())

	v.Activate(context.Background(), "/authentication/verify-email/abc")
	v.Activate(context.Background(), "/authentication/verify-email/abc")
	require.Equal(t, 2, auth.verifies)
}

func TestVerifyEmail_TeardownDiscardsCompletion(t *testing.T) {
	b := newBlocker()
	nav := &fakeNav{}
	v := NewVerifyEmailView(&fakeAuth{verifyWait: b}, nav, logging.Nop())

	done := make(chan struct{})
	go func() {
		v.Activate(context.Background(), "/authentication/verify-email/abc")
		close(done)
	}()
	<-b.entered
	v.Teardown()
	<-done

	require.Equal(t, Verifying, v.State().Status)
	require.Empty(t, nav.Targets())
}

func TestVerificationStatus_String(t *testing.T) {
	require.Equal(t, "verifying", Verifying.String())
	require.Equal(t, "verified", Verified.String())
	require.Equal(t, "failed", VerificationFailed.String())
}
