package views

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/dmitrijs2005/contactdesk/internal/client/router"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
)

type SignUpState struct {
	Draft      models.RegistrationDraft
	Message    string
	Submitting bool
	Registered bool
}

// SignUpView registers a new account. After success it sends the user to
// sign-in, not to the dashboard, even though a credential is now stored.
type SignUpView struct {
	base
	auth services.AuthService
	gate *services.Gate

	mu    sync.Mutex
	state SignUpState
}

func NewSignUpView(auth services.AuthService, nav Navigator, log logging.Logger) *SignUpView {
	return &SignUpView{
		base: base{nav: nav, log: log.With("view", "sign-up")},
		auth: auth,
		gate: services.NewGate(),
	}
}

func (v *SignUpView) SetDraft(d models.RegistrationDraft) {
	v.mu.Lock()
	v.state.Draft = d
	v.mu.Unlock()
}

func (v *SignUpView) State() SignUpState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Submit sends the current draft. It returns ErrSubmissionInProgress when a
// submission is already running and nil otherwise; the outcome lands in
// State.
func (v *SignUpView) Submit() error {
	return v.gate.Do(func() error {
		ctx, gen := v.lc.Begin()

		v.mu.Lock()
		v.state.Submitting = true
		v.state.Message = ""
		draft := v.state.Draft
		v.mu.Unlock()

		_, err := v.auth.Register(ctx, draft)

		committed := v.lc.Commit(gen, func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			v.state.Submitting = false
			switch {
			case err == nil:
				v.state.Registered = true
			case errors.Is(err, services.ErrPasswordMismatch):
				v.state.Message = MsgPasswordMismatch
			default:
				v.state.Message = MsgRegistrationFailed
			}
		})
		if !committed {
			v.mu.Lock()
			v.state.Submitting = false
			v.mu.Unlock()
			return nil
		}

		if err != nil {
			v.log.Debug(ctx, "registration failed", "error", err)
			return nil
		}
		v.navigate(ctx, gen, router.SignInPath)
		return nil
	})
}
