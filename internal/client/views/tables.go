package views

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/contactdesk/internal/client/client"
	"github.com/dmitrijs2005/contactdesk/internal/client/contacts"
	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/dmitrijs2005/contactdesk/internal/client/router"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
)

type TablesState struct {
	Loading  bool
	Message  string
	Notice   string
	Query    string
	Contacts []models.Contact
	Selected *models.Contact
}

// TablesView lists, filters and edits contacts. Edits are applied to the
// fetched collection in place of a re-fetch; a new contact is appended.
type TablesView struct {
	base
	svc  services.ContactService
	gate *services.Gate

	mu    sync.Mutex
	state TablesState
}

func NewTablesView(svc services.ContactService, nav Navigator, log logging.Logger) *TablesView {
	return &TablesView{
		base: base{nav: nav, log: log.With("view", "tables")},
		svc:  svc,
		gate: services.NewGate(),
	}
}

func (v *TablesView) State() TablesState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Rows is the filtered table for the current query.
func (v *TablesView) Rows() []models.Row {
	v.mu.Lock()
	defer v.mu.Unlock()
	return contacts.FilterAndProject(v.state.Contacts, v.state.Query)
}

func (v *TablesView) SetQuery(q string) {
	v.mu.Lock()
	v.state.Query = q
	v.mu.Unlock()
}

func (v *TablesView) Activate(parent context.Context) {
	v.Mount(parent)
	v.Load()
}

func (v *TablesView) Load() {
	ctx, gen := v.lc.Begin()

	v.mu.Lock()
	v.state.Loading = true
	v.state.Message, v.state.Notice = "", ""
	v.mu.Unlock()

	list, err := v.svc.List(ctx)
	v.finish(ctx, gen, err, MsgLoadFailed, func(s *TablesState) {
		s.Contacts = list
	})
}

func (v *TablesView) Add(in models.ContactInput) error {
	return v.gate.Do(func() error {
		ctx, gen := v.lc.Begin()
		c, err := v.svc.Create(ctx, in)
		v.finish(ctx, gen, err, MsgSaveFailed, func(s *TablesState) {
			s.Contacts = contacts.Append(s.Contacts, c)
			s.Notice = "Contact added."
		})
		return nil
	})
}

func (v *TablesView) Update(id int64, in models.ContactInput) error {
	return v.gate.Do(func() error {
		ctx, gen := v.lc.Begin()
		c, err := v.svc.Update(ctx, id, in)
		v.finish(ctx, gen, err, MsgSaveFailed, func(s *TablesState) {
			s.Contacts = contacts.Replace(s.Contacts, c)
			s.Notice = "Contact updated."
		})
		return nil
	})
}

func (v *TablesView) Delete(id int64) error {
	return v.gate.Do(func() error {
		ctx, gen := v.lc.Begin()
		err := v.svc.Delete(ctx, id)
		v.finish(ctx, gen, err, MsgDeleteFailed, func(s *TablesState) {
			s.Contacts = contacts.Remove(s.Contacts, id)
			if s.Selected != nil && s.Selected.ID == id {
				s.Selected = nil
			}
			s.Notice = "Contact deleted."
		})
		return nil
	})
}

// Show fetches one contact into Selected.
func (v *TablesView) Show(id int64) {
	ctx, gen := v.lc.Begin()
	c, err := v.svc.Get(ctx, id)

	fallback := MsgLoadFailed
	var rf *client.RequestFailedError
	if errors.As(err, &rf) && rf.StatusCode == 404 {
		fallback = MsgNotFound
	}
	v.finish(ctx, gen, err, fallback, func(s *TablesState) {
		s.Selected = &c
	})
}

// finish applies the outcome of an operation if the view is still live.
func (v *TablesView) finish(ctx context.Context, gen uint64, err error, fallback string, apply func(*TablesState)) {
	toSignIn := false
	committed := v.lc.Commit(gen, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.state.Loading = false
		v.state.Message, v.state.Notice = "", ""
		if err != nil {
			v.state.Message, toSignIn = failureMessage(err, fallback)
			return
		}
		apply(&v.state)
	})
	if !committed {
		return
	}

	if err != nil {
		v.log.Debug(ctx, "tables operation failed", "error", err)
	}
	if toSignIn {
		v.navigate(ctx, gen, router.SignInPath)
	}
}
