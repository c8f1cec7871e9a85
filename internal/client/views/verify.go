package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/contactdesk/internal/client/router"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/netx"
)

type VerificationStatus int

const (
	Verifying VerificationStatus = iota
	Verified
	VerificationFailed
)

func (s VerificationStatus) String() string {
	switch s {
	case Verified:
		return "verified"
	case VerificationFailed:
		return "failed"
	default:
		return "verifying"
	}
}

type VerifyEmailState struct {
	Token   string
	Status  VerificationStatus
	Message string
}

// VerifyEmailView exchanges the token carried in the location it is
// activated with. Each activation runs the exchange once; there is no retry.
type VerifyEmailView struct {
	base
	auth services.AuthService

	mu    sync.Mutex
	state VerifyEmailState
}

func NewVerifyEmailView(auth services.AuthService, nav Navigator, log logging.Logger) *VerifyEmailView {
	return &VerifyEmailView{
		base: base{nav: nav, log: log.With("view", "verify-email")},
		auth: auth,
	}
}

func (v *VerifyEmailView) State() VerifyEmailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Activate mounts the view for location and runs the exchange. A location
// without a token leaves the view in Verifying and sends nothing.
func (v *VerifyEmailView) Activate(parent context.Context, location string) {
	v.Mount(parent)
	ctx, gen := v.lc.Begin()

	token := netx.LastPathSegment(location)
	v.mu.Lock()
	v.state = VerifyEmailState{Token: token, Status: Verifying}
	v.mu.Unlock()

	if token == "" {
		return
	}

	err := v.auth.VerifyEmail(ctx, token)

	committed := v.lc.Commit(gen, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if err != nil {
			v.state.Status = VerificationFailed
			v.state.Message = MsgInvalidToken
			return
		}
		v.state.Status = Verified
	})
	if !committed {
		return
	}

	if err != nil {
		v.log.Debug(ctx, "verification failed", "error", err)
		return
	}
	v.navigate(ctx, gen, router.DashboardPath)
}
