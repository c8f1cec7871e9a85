package views

import (
	"sync"

	"github.com/dmitrijs2005/contactdesk/internal/client/router"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
)

type SignInState struct {
	Message    string
	Submitting bool
	SignedIn   bool
}

type SignInView struct {
	base
	auth services.AuthService
	gate *services.Gate

	mu    sync.Mutex
	state SignInState
}

func NewSignInView(auth services.AuthService, nav Navigator, log logging.Logger) *SignInView {
	return &SignInView{
		base: base{nav: nav, log: log.With("view", "sign-in")},
		auth: auth,
		gate: services.NewGate(),
	}
}

func (v *SignInView) State() SignInState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Submit signs in and moves to the dashboard. The password buffer is wiped.
func (v *SignInView) Submit(email string, password []byte) error {
	return v.gate.Do(func() error {
		ctx, gen := v.lc.Begin()

		v.mu.Lock()
		v.state = SignInState{Submitting: true}
		v.mu.Unlock()

		_, err := v.auth.Login(ctx, email, password)

		v.lc.Commit(gen, func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			if err == nil {
				v.state.SignedIn = true
				return
			}
			if msg, ok := validationMessage(err); ok {
				v.state.Message = msg
				return
			}
			v.state.Message = MsgSignInFailed
		})

		// Re-enable the form whether or not the view is still live.
		v.mu.Lock()
		v.state.Submitting = false
		v.mu.Unlock()

		if err != nil {
			v.log.Debug(ctx, "sign-in failed", "error", err)
			return nil
		}
		v.navigate(ctx, gen, router.DashboardPath)
		return nil
	})
}
