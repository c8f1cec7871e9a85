package views

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/client/client"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
)

type Navigator interface {
	Navigate(ctx context.Context, target string) (string, error)
}

// base carries what every view shares.
type base struct {
	lc  Lifecycle
	nav Navigator
	log logging.Logger
}

func (b *base) Mount(ctx context.Context) { b.lc.Mount(ctx) }
func (b *base) Teardown()                 { b.lc.Teardown() }

// navigate moves on only if the view that asked is still live.
func (b *base) navigate(ctx context.Context, gen uint64, target string) {
	if !b.lc.Current(gen) {
		return
	}
	if _, err := b.nav.Navigate(ctx, target); err != nil {
		b.log.Warn(ctx, "navigation failed", "target", target, "error", err)
	}
}

// validationMessage renders a local validation failure for display.
func validationMessage(err error) (string, bool) {
	var ve *services.ValidationError
	if !errors.As(err, &ve) {
		return "", false
	}
	msg := strings.Join(ve.Problems, "; ")
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:] + "."
	}
	return msg, true
}

// isUnauthenticated reports a protected call that was never sent, or one
// the backend refused, both of which send the user back to sign-in.
func isUnauthenticated(err error) bool {
	return errors.Is(err, client.ErrUnauthenticated) || errors.Is(err, client.ErrUnauthorized)
}

// failureMessage maps an operation error to what the user sees and whether
// the view should send them to sign-in.
func failureMessage(err error, fallback string) (msg string, toSignIn bool) {
	if isUnauthenticated(err) {
		return MsgNotSignedIn, true
	}
	if m, ok := validationMessage(err); ok {
		return m, false
	}
	return fallback, false
}
