package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/contactdesk/internal/client/contacts"
	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/dmitrijs2005/contactdesk/internal/client/router"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
)

type DashboardState struct {
	Loading  bool
	Loaded   bool
	Message  string
	Contacts []models.Contact
	Summary  contacts.Summary
}

// DashboardView fetches the collection on activation and keeps its summary.
// A re-fetch replaces the previous collection entirely.
type DashboardView struct {
	base
	svc services.ContactService

	mu    sync.Mutex
	state DashboardState
}

func NewDashboardView(svc services.ContactService, nav Navigator, log logging.Logger) *DashboardView {
	return &DashboardView{
		base: base{nav: nav, log: log.With("view", "dashboard")},
		svc:  svc,
	}
}

func (v *DashboardView) State() DashboardState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *DashboardView) Activate(parent context.Context) {
	v.Mount(parent)
	v.Load()
}

func (v *DashboardView) Load() {
	ctx, gen := v.lc.Begin()

	v.mu.Lock()
	v.state.Loading = true
	v.state.Message = ""
	v.mu.Unlock()

	list, err := v.svc.List(ctx)

	toSignIn := false
	committed := v.lc.Commit(gen, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.state.Loading = false
		if err != nil {
			v.state.Message, toSignIn = failureMessage(err, MsgLoadFailed)
			return
		}
		v.state.Loaded = true
		v.state.Contacts = list
		v.state.Summary = contacts.Summarize(list)
	})
	if !committed {
		return
	}

	if err != nil {
		v.log.Debug(ctx, "contacts not loaded", "error", err)
	}
	if toSignIn {
		v.navigate(ctx, gen, router.SignInPath)
	}
}
