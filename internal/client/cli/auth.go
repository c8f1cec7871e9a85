package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/dmitrijs2005/contactdesk/internal/client/router"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/netx"
)

const msgBusy = "A submission is already in progress."

// SignUp collects a registration draft and submits it through the sign-up
// view. On success the view moves to sign-in.
func (a *App) SignUp(ctx context.Context) error {
	a.goTo(ctx, router.SignUpPath)

	var d models.RegistrationDraft
	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"Email: ", &d.Email},
		{"Username: ", &d.Username},
		{"First name: ", &d.FirstName},
		{"Last name: ", &d.LastName},
	} {
		v, err := a.in.Line(f.label)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	pw, err := a.in.Password("Password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	confirm, err := a.in.Password("Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	d.Password, d.PasswordConfirmation = string(pw), string(confirm)

	a.signUp.SetDraft(d)
	if err := a.signUp.Submit(); errors.Is(err, services.ErrSubmissionInProgress) {
		fmt.Fprintln(a.out, msgBusy)
		return nil
	}

	st := a.signUp.State()
	if st.Message != "" {
		fmt.Fprintln(a.out, st.Message)
	}
	if st.Registered {
		fmt.Fprintln(a.out, "Account created. Follow the link in your inbox with 'verify', then sign in.")
	}
	a.settle(ctx)
	return nil
}

// SignIn prompts for credentials and submits them through the sign-in view,
// which moves to the dashboard on success.
func (a *App) SignIn(ctx context.Context) error {
	a.goTo(ctx, router.SignInPath)

	email, err := a.in.Line("Email: ")
	if err != nil {
		return err
	}
	pw, err := a.in.Password("Password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if err := a.signIn.Submit(email, pw); errors.Is(err, services.ErrSubmissionInProgress) {
		fmt.Fprintln(a.out, msgBusy)
		return nil
	}

	st := a.signIn.State()
	if st.Message != "" {
		fmt.Fprintln(a.out, st.Message)
	}
	if st.SignedIn {
		fmt.Fprintln(a.out, "Signed in.")
	}
	a.settle(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	a.goTo(ctx, router.SignInPath)
	return nil
}

// Verify opens the verification view for a bare token or for a link whose
// last path segment is the token.
func (a *App) Verify(ctx context.Context, link string) error {
	token := link
	if strings.Contains(link, "/") {
		token = netx.LastPathSegment(link)
	}
	a.goTo(ctx, router.VerifyEmailPath(token))
	return nil
}

func (a *App) ResetPassword(ctx context.Context, email string) error {
	if email == "" {
		v, err := a.in.Line("Email: ")
		if err != nil {
			return err
		}
		email = v
	}

	msg, err := a.auth.RequestPasswordReset(ctx, email)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintln(a.out, "Invalid email:", strings.Join(ve.Problems, "; "))
			return nil
		}
		fmt.Fprintln(a.out, "Password reset request failed. Please try again.")
		return nil
	}

	if msg == "" {
		msg = "If the address is registered, a reset link is on its way."
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// Status prints the stored credential's state. The claims are decoded
// without verification and only describe what the token says about itself.
func (a *App) Status(ctx context.Context) error {
	st, err := a.auth.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Location:  %s\n", a.nav.Location())
	if !st.SignedIn {
		fmt.Fprintln(a.out, "Signed in: no")
		return nil
	}
	fmt.Fprintln(a.out, "Signed in: yes")
	if st.Info == nil {
		fmt.Fprintln(a.out, "Token:     opaque")
		return nil
	}

	info := st.Info
	if info.UserID != "" {
		fmt.Fprintf(a.out, "User ID:   %s\n", info.UserID)
	}
	if info.Subject != "" {
		fmt.Fprintf(a.out, "Subject:   %s\n", info.Subject)
	}
	if info.TokenType != "" {
		fmt.Fprintf(a.out, "Type:      %s\n", info.TokenType)
	}
	const layout = "2006-01-02 15:04:05 MST"
	switch {
	case info.ExpiresAt.IsZero():
		fmt.Fprintln(a.out, "Expires:   never")
	case info.Expired:
		fmt.Fprintf(a.out, "Expired:   %s\n", info.ExpiresAt.UTC().Format(layout))
	default:
		fmt.Fprintf(a.out, "Expires:   %s\n", info.ExpiresAt.UTC().Format(layout))
	}
	return nil
}
